package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notebook is the aggregate root owning sources, messages and metadata for
// one workspace. Sources keep insertion order, which is also the display
// order and the citation index order. Messages are chronological and
// append-only.
type Notebook struct {
	Id        uuid.UUID
	Title     string
	Sources   []*Source
	Messages  []*Message
	UpdatedAt time.Time
	Icon      string
	BgColor   string
}

// NextMessageSeq returns the sequence number for the next appended message.
// Valid because messages are never removed or reordered.
func (n *Notebook) NextMessageSeq() int64 {
	return int64(len(n.Messages)) + 1
}

// AppendMessage appends a message with the next sequence number and bumps
// UpdatedAt.
func (n *Notebook) AppendMessage(role, content string, citations []uuid.UUID, now time.Time) *Message {
	msg := &Message{
		Seq:       n.NextMessageSeq(),
		Role:      role,
		Content:   content,
		Citations: citations,
		CreatedAt: now,
	}
	n.Messages = append(n.Messages, msg)
	n.UpdatedAt = now
	return msg
}

// AppendSource appends a source and bumps UpdatedAt.
func (n *Notebook) AppendSource(src *Source, now time.Time) {
	n.Sources = append(n.Sources, src)
	n.UpdatedAt = now
}

// Clone returns a deep copy so callers can read-modify-write without
// aliasing stored state.
func (n *Notebook) Clone() *Notebook {
	if n == nil {
		return nil
	}
	c := *n
	c.Sources = make([]*Source, len(n.Sources))
	for i, s := range n.Sources {
		c.Sources[i] = s.Clone()
	}
	c.Messages = make([]*Message, len(n.Messages))
	for i, m := range n.Messages {
		c.Messages[i] = m.Clone()
	}
	return &c
}
