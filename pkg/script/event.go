package script

import "fmt"

// EventKind identifies a structural event produced by a document source.
type EventKind int

const (
	// EventNone is the zero kind, used when no expectation is placed on the
	// next event.
	EventNone EventKind = iota
	EventStreamStart
	EventStreamEnd
	EventDocumentStart
	EventDocumentEnd
	EventAlias
	EventScalar
	EventSequenceStart
	EventSequenceEnd
	EventMappingStart
	EventMappingEnd
)

// kindNames maps event kinds to human-readable names for diagnostics.
var kindNames = map[EventKind]string{
	EventNone:          "none",
	EventStreamStart:   "stream-start",
	EventStreamEnd:     "stream-end",
	EventDocumentStart: "document-start",
	EventDocumentEnd:   "document-end",
	EventAlias:         "alias",
	EventScalar:        "scalar",
	EventSequenceStart: "sequence-start",
	EventSequenceEnd:   "sequence-end",
	EventMappingStart:  "mapping-start",
	EventMappingEnd:    "mapping-end",
}

// String returns a human-readable event kind name.
func (k EventKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("[kind %d]", int(k))
}

// Event is a discrete structural token from a document source: a boundary
// marker or a scalar carrying literal text. Line and Column are 0-based.
type Event struct {
	Kind   EventKind
	Value  string // scalar text, empty for non-scalar events
	Line   int
	Column int
}

// Source produces the structural event stream for one document. It is the
// seam between the grammar logic and the underlying tokenizer, so the parser
// can be driven by a synthetic in-memory producer in tests.
//
// Next returns the next event or an error when the underlying document is
// malformed. Events are never pushed back; the script grammar needs no
// lookahead.
type Source interface {
	Next() (Event, error)
}
