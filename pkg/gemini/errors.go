package gemini

import "fmt"

// TransportError covers an unreachable backend or a non-success response.
// The caller leaves notebook state untouched when it sees one.
type TransportError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("gemini transport error: %v", e.Err)
	}
	return fmt.Sprintf("gemini transport error: status %d, body %s", e.StatusCode, e.Body)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// GuideDecodeError means the backend answered but the body could not be
// parsed into the expected structured shape. Raw keeps the undecoded text
// verbatim for diagnostics.
type GuideDecodeError struct {
	Raw string
	Err error
}

func (e *GuideDecodeError) Error() string {
	return fmt.Sprintf("guide decode error: %v", e.Err)
}

func (e *GuideDecodeError) Unwrap() error {
	return e.Err
}

// AudioGenerationError means the response lacked the expected audio payload.
// Terminal for that playback attempt, no fallback synthesis path exists.
type AudioGenerationError struct {
	Reason string
}

func (e *AudioGenerationError) Error() string {
	return "audio generation failed: " + e.Reason
}
