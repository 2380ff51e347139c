package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics for in-process background work.
const (
	TopicSourceAdded = "SOURCE_ADDED"
)

// Event types pushed to websocket clients.
const (
	TypeSourceAdded         = "SOURCE_ADDED"
	TypeSummaryReady        = "SUMMARY_READY"
	TypeAssistantResponding = "ASSISTANT_RESPONDING"
	TypeMessageAppended     = "MESSAGE_APPENDED"
	TypeGuideCompleted      = "GUIDE_COMPLETED"
	TypeGuideFailed         = "GUIDE_FAILED"
)

// Event is one notebook activity notification.
type Event struct {
	Type       string                 `json:"type"`
	NotebookId uuid.UUID              `json:"notebook_id"`
	Data       map[string]interface{} `json:"data,omitempty"`
	OccurredAt time.Time              `json:"occurred_at"`
}

func New(eventType string, notebookId uuid.UUID, data map[string]interface{}) Event {
	return Event{
		Type:       eventType,
		NotebookId: notebookId,
		Data:       data,
		OccurredAt: time.Now(),
	}
}

// SourceAddedPayload is the watermill payload that triggers background
// summary generation for a freshly added source.
type SourceAddedPayload struct {
	NotebookId uuid.UUID `json:"notebook_id"`
	SourceId   uuid.UUID `json:"source_id"`
}
