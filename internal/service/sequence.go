package service

import (
	"sync"

	"github.com/google/uuid"
)

// Request slots with independent sequence counters per notebook. Chat, guide
// and audio requests do not order against each other, only against newer
// requests in their own slot.
const (
	slotChat  = "chat"
	slotGuide = "guide"
	slotAudio = "audio"
)

// requestSequencer hands out monotonically increasing sequence numbers per
// notebook and slot, and answers whether a completed request is still the
// latest. Responses carrying a superseded sequence number are discarded
// instead of merged into whichever notebook happens to be active.
type requestSequencer struct {
	mu   sync.Mutex
	seqs map[uuid.UUID]map[string]int64
}

func newRequestSequencer() *requestSequencer {
	return &requestSequencer{
		seqs: make(map[uuid.UUID]map[string]int64),
	}
}

// Next allocates the next sequence number for the notebook/slot.
func (r *requestSequencer) Next(notebookId uuid.UUID, slot string) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	slots, ok := r.seqs[notebookId]
	if !ok {
		slots = make(map[string]int64)
		r.seqs[notebookId] = slots
	}
	slots[slot]++
	return slots[slot]
}

// IsLatest reports whether seq is still the newest issued for the
// notebook/slot.
func (r *requestSequencer) IsLatest(notebookId uuid.UUID, slot string, seq int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	slots, ok := r.seqs[notebookId]
	if !ok {
		return false
	}
	return slots[slot] == seq
}
