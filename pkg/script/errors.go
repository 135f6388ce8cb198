package script

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedDocument is returned when the underlying document cannot
	// be tokenized.
	ErrMalformedDocument = errors.New("malformed capture script")

	// ErrUnsupportedSection is returned for a top-level section other than
	// "frames".
	ErrUnsupportedSection = errors.New("unsupported section")

	// ErrUnsupportedControl is returned when a frame names a control the
	// camera does not expose.
	ErrUnsupportedControl = errors.New("unsupported control")

	// ErrInvalidFrameNumber is returned when a frame entry key is not a
	// non-negative base-10 integer.
	ErrInvalidFrameNumber = errors.New("invalid frame number")
)

// UnexpectedEventError reports a grammar mismatch: the document produced a
// different kind of event than the grammar requires at that point. Line and
// Column are 0-based positions of the offending event.
type UnexpectedEventError struct {
	Line     int
	Column   int
	Expected EventKind
	Actual   EventKind
}

func (e *UnexpectedEventError) Error() string {
	return fmt.Sprintf("capture script error on line %d column %d: expected %s event, got %s",
		e.Line, e.Column, e.Expected, e.Actual)
}
