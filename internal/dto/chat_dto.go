package dto

import (
	"time"

	"github.com/google/uuid"
)

type SendChatRequest struct {
	NotebookId uuid.UUID `json:"notebook_id" validate:"required"`
	Query      string    `json:"query" validate:"required"`
}

type ChatTurnResponse struct {
	Seq       int64         `json:"seq"`
	Role      string        `json:"role"`
	Content   string        `json:"content"`
	Citations []CitationDTO `json:"citations,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

type CitationDTO struct {
	Index    int       `json:"index"`
	SourceId uuid.UUID `json:"source_id,omitempty"`
	Title    string    `json:"title,omitempty"`
	Resolved bool      `json:"resolved"`
}

type SendChatResponse struct {
	NotebookId uuid.UUID         `json:"notebook_id"`
	Sent       *ChatTurnResponse `json:"sent"`
	Reply      *ChatTurnResponse `json:"reply"`
}
