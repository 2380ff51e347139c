package dto

import (
	"time"

	"github.com/google/uuid"
)

type GenerateGuideRequest struct {
	NotebookId uuid.UUID `json:"notebook_id" validate:"required"`
	GuideType  string    `json:"guide_type" validate:"required,oneof=audio video mindmap reports flashcards quiz infographic slidedeck datatable"`
}

type GuideResponse struct {
	Id         uuid.UUID              `json:"id"`
	NotebookId uuid.UUID              `json:"notebook_id"`
	GuideType  string                 `json:"guide_type"`
	Title      string                 `json:"title"`
	Content    map[string]interface{} `json:"content"`
	CreatedAt  time.Time              `json:"created_at"`
}

type AudioOverviewRequest struct {
	NotebookId uuid.UUID `json:"notebook_id" validate:"required"`
}

type AudioOverviewResponse struct {
	SampleRate int     `json:"sample_rate"`
	Channels   int     `json:"channels"`
	Duration   float64 `json:"duration_seconds"`
	PCM        []byte  `json:"pcm"`
}
