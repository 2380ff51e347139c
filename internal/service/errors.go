package service

import "errors"

var (
	// ErrNotebookNotFound is returned when an operation targets an id the
	// store does not hold.
	ErrNotebookNotFound = errors.New("notebook not found")

	// ErrChatBusy rejects a second chat turn while one is outstanding for
	// the same notebook. Attempts are never interleaved.
	ErrChatBusy = errors.New("a chat turn is already in flight for this notebook")

	// ErrStaleResponse marks a gateway response that arrived after its
	// request was superseded or its notebook deselected. The response is
	// discarded, not merged.
	ErrStaleResponse = errors.New("stale response discarded")
)

// ValidationError rejects bad local input before any gateway call. No state
// is mutated when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation failed on " + e.Field + ": " + e.Reason
}
