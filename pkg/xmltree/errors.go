package xmltree

import (
	"errors"
	"fmt"
)

// ErrStream is matched by every StreamError.
var ErrStream = errors.New("stream error")

// StreamError reports that the token source failed before a complete top-level element was
// assembled.
type StreamError struct {
	// Depth is the number of elements that were still open when the failure happened.
	// Zero means the stream broke at an element boundary.
	Depth int
	Err   error
}

func (e *StreamError) Error() string {
	return fmt.Sprintf("xml stream failed at depth %d: %v", e.Depth, e.Err)
}

func (e *StreamError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrStream.
func (e *StreamError) Is(target error) bool {
	return target == ErrStream
}

// AtBoundary reports whether the stream ended cleanly between two top-level elements.
func (e *StreamError) AtBoundary() bool {
	return e.Depth == 0
}
