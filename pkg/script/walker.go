package script

import (
	"fmt"

	"github.com/tosbaja/libcamera/internal/log"
)

// walker is a thin consumer of the structural event stream. It converts
// source failures into the single ErrMalformedDocument channel and checks
// event kinds against the grammar's expectations. Events are consumed exactly
// once; a failed expectation does not consume further events.
type walker struct {
	src Source
}

// nextAny retrieves the next event without placing an expectation on it.
func (w *walker) nextAny() (Event, error) {
	ev, err := w.src.Next()
	if err != nil {
		log.Error("failed to read capture script", "err", err)
		return Event{}, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	return ev, nil
}

// next retrieves the next event and asserts its kind.
func (w *walker) next(expected EventKind) (Event, error) {
	ev, err := w.nextAny()
	if err != nil {
		return Event{}, err
	}
	if err := checkEvent(ev, expected); err != nil {
		return Event{}, err
	}
	return ev, nil
}

// scalar retrieves the next event, which must be a scalar, and hands it back
// with its literal text in Event.Value.
func (w *walker) scalar() (Event, error) {
	return w.next(EventScalar)
}

// checkEvent verifies the event kind matches the grammar's expectation.
func checkEvent(ev Event, expected EventKind) error {
	if ev.Kind != expected {
		err := &UnexpectedEventError{
			Line:     ev.Line,
			Column:   ev.Column,
			Expected: expected,
			Actual:   ev.Kind,
		}
		log.Error("capture script grammar error",
			"line", ev.Line, "column", ev.Column,
			"expected", expected.String(), "got", ev.Kind.String())
		return err
	}
	return nil
}
