package script

import (
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// errExhausted is reported when the parser asks for events past the end of
// the document, which only happens for truncated input.
var errExhausted = errors.New("no more events")

// yamlSource adapts a YAML document to the Source interface. The document is
// decoded into a node tree up front and flattened into the event stream the
// grammar expects: a stream/document envelope around mapping, sequence and
// scalar events carrying 0-based positions.
type yamlSource struct {
	events []Event
	pos    int
	err    error // malformed document, reported on first Next
}

// newYAMLSource reads one YAML document from r. Decode errors are deferred
// and surface through Next so the parser owns the single error channel.
func newYAMLSource(r io.Reader) *yamlSource {
	s := &yamlSource{}

	var doc yaml.Node
	err := yaml.NewDecoder(r).Decode(&doc)
	switch {
	case errors.Is(err, io.EOF):
		// Empty input still carries the stream envelope, so the parser
		// fails on a missing document rather than a missing stream.
		s.events = []Event{{Kind: EventStreamStart}, {Kind: EventStreamEnd}}
	case err != nil:
		s.err = err
	default:
		s.events = append(s.events, Event{Kind: EventStreamStart})
		s.flatten(&doc)
		s.events = append(s.events, Event{Kind: EventStreamEnd})
	}

	return s
}

func (s *yamlSource) flatten(n *yaml.Node) {
	switch n.Kind {
	case yaml.DocumentNode:
		s.emit(EventDocumentStart, "", n)
		for _, c := range n.Content {
			s.flatten(c)
		}
		s.emit(EventDocumentEnd, "", n)
	case yaml.MappingNode:
		s.emit(EventMappingStart, "", n)
		for _, c := range n.Content {
			s.flatten(c)
		}
		s.emit(EventMappingEnd, "", n)
	case yaml.SequenceNode:
		s.emit(EventSequenceStart, "", n)
		for _, c := range n.Content {
			s.flatten(c)
		}
		s.emit(EventSequenceEnd, "", n)
	case yaml.ScalarNode:
		s.emit(EventScalar, n.Value, n)
	case yaml.AliasNode:
		s.emit(EventAlias, "", n)
	}
}

// emit appends an event positioned at the node. yaml.v3 positions are
// 1-based; diagnostics use the 0-based convention of the event model.
func (s *yamlSource) emit(kind EventKind, value string, n *yaml.Node) {
	line, column := n.Line-1, n.Column-1
	if line < 0 {
		line = 0
	}
	if column < 0 {
		column = 0
	}
	s.events = append(s.events, Event{Kind: kind, Value: value, Line: line, Column: column})
}

// Next implements Source.
func (s *yamlSource) Next() (Event, error) {
	if s.err != nil {
		return Event{}, s.err
	}
	if s.pos >= len(s.events) {
		return Event{}, errExhausted
	}
	ev := s.events[s.pos]
	s.pos++
	return ev, nil
}
