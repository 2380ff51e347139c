package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	MessageRoleUser      = "user"
	MessageRoleAssistant = "assistant"
)

// Message is one turn in a notebook conversation. Messages are append-only:
// Seq is assigned in creation order and is unique within the owning notebook.
type Message struct {
	Seq       int64
	Role      string
	Content   string
	Citations []uuid.UUID
	CreatedAt time.Time
}

func (m *Message) Clone() *Message {
	if m == nil {
		return nil
	}
	c := *m
	if m.Citations != nil {
		c.Citations = make([]uuid.UUID, len(m.Citations))
		copy(c.Citations, m.Citations)
	}
	return &c
}
