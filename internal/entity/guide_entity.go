package entity

import (
	"time"

	"github.com/google/uuid"
)

// GuideType is the closed set of study guide artifacts the studio can request.
type GuideType string

const (
	GuideTypeAudio       GuideType = "audio"
	GuideTypeVideo       GuideType = "video"
	GuideTypeMindmap     GuideType = "mindmap"
	GuideTypeReports     GuideType = "reports"
	GuideTypeFlashcards  GuideType = "flashcards"
	GuideTypeQuiz        GuideType = "quiz"
	GuideTypeInfographic GuideType = "infographic"
	GuideTypeSlidedeck   GuideType = "slidedeck"
	GuideTypeDatatable   GuideType = "datatable"
)

func (t GuideType) Valid() bool {
	switch t {
	case GuideTypeAudio, GuideTypeVideo, GuideTypeMindmap, GuideTypeReports,
		GuideTypeFlashcards, GuideTypeQuiz, GuideTypeInfographic,
		GuideTypeSlidedeck, GuideTypeDatatable:
		return true
	}
	return false
}

// Guide is a detached structured artifact generated from a notebook's
// sources. It is not part of the message history.
type Guide struct {
	Id         uuid.UUID
	NotebookId uuid.UUID
	Type       GuideType
	Title      string
	Content    map[string]interface{}
	CreatedAt  time.Time
}
