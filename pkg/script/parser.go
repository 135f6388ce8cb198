package script

import (
	"fmt"
	"strconv"

	"github.com/tosbaja/libcamera/internal/log"
	"github.com/tosbaja/libcamera/pkg/controls"
)

// parser drives the walker through the script grammar:
//
//	stream-start document-start mapping-start
//	  "frames" sequence-start
//	    ( mapping-start <frame> mapping-start
//	        ( <control> <value> )* mapping-end mapping-end )*
//	  sequence-end
//	mapping-end
//
// Transitions are strictly sequential with no backtracking. The first failure
// aborts the whole parse; the accumulated table is never exposed after an
// error. Trailing document-end and stream-end events need not be consumed.
type parser struct {
	w       walker
	catalog *controls.Catalog
	frames  map[uint]*controls.List
}

func newParser(src Source, catalog *controls.Catalog) *parser {
	return &parser{
		w:       walker{src: src},
		catalog: catalog,
		frames:  make(map[uint]*controls.List),
	}
}

// parseScript consumes the document preamble and the top-level mapping,
// dispatching each recognized section. Success is reached when the top
// mapping closes.
func (p *parser) parseScript() error {
	if _, err := p.w.next(EventStreamStart); err != nil {
		return err
	}
	if _, err := p.w.next(EventDocumentStart); err != nil {
		return err
	}
	if _, err := p.w.next(EventMappingStart); err != nil {
		return err
	}

	for {
		ev, err := p.w.nextAny()
		if err != nil {
			return err
		}

		if ev.Kind == EventMappingEnd {
			return nil
		}

		if err := checkEvent(ev, EventScalar); err != nil {
			return err
		}

		switch ev.Value {
		case "frames":
			if err := p.parseFrames(); err != nil {
				return err
			}
		default:
			log.Error("unsupported capture script section",
				"section", ev.Value, "line", ev.Line, "column", ev.Column)
			return fmt.Errorf("%w %q at line %d column %d",
				ErrUnsupportedSection, ev.Value, ev.Line, ev.Column)
		}
	}
}

// parseFrames consumes the frames sequence, one frame entry per element.
func (p *parser) parseFrames() error {
	if _, err := p.w.next(EventSequenceStart); err != nil {
		return err
	}

	for {
		ev, err := p.w.nextAny()
		if err != nil {
			return err
		}

		if ev.Kind == EventSequenceEnd {
			return nil
		}

		if err := p.parseFrame(ev); err != nil {
			return err
		}
	}
}

// parseFrame consumes one frame entry: a single-key mapping whose key is the
// frame number and whose value is the control mapping for that frame. A later
// entry with the same frame number overwrites the earlier one.
func (p *parser) parseFrame(ev Event) error {
	if err := checkEvent(ev, EventMappingStart); err != nil {
		return err
	}

	key, err := p.w.scalar()
	if err != nil {
		return err
	}

	frame, err := parseFrameNumber(key)
	if err != nil {
		return err
	}

	if _, err := p.w.next(EventMappingStart); err != nil {
		return err
	}

	list := controls.NewList()

	for {
		ev, err := p.w.nextAny()
		if err != nil {
			return err
		}

		if ev.Kind == EventMappingEnd {
			break
		}

		if err := p.parseControl(ev, list); err != nil {
			return err
		}
	}

	p.frames[frame] = list

	_, err = p.w.next(EventMappingEnd)
	return err
}

// parseControl consumes one control name/value pair and stores the decoded
// value in list. An unknown control name is fatal for the whole parse; a
// value that fails to decode degrades to a none-typed placeholder instead.
func (p *parser) parseControl(ev Event, list *controls.List) error {
	if err := checkEvent(ev, EventScalar); err != nil {
		return err
	}

	name := ev.Value
	ctrl, ok := p.catalog.ByName(name)
	if !ok {
		log.Error("unsupported control in capture script",
			"control", name, "line", ev.Line, "column", ev.Column)
		return fmt.Errorf("%w %q at line %d column %d",
			ErrUnsupportedControl, name, ev.Line, ev.Column)
	}

	value, err := p.w.scalar()
	if err != nil {
		return err
	}

	list.Set(ctrl.ID, unpack(ctrl, value.Value))
	return nil
}

// parseFrameNumber interprets a frame entry key as a non-negative base-10
// integer. Unparseable keys are rejected outright; entries with mistyped
// keys would otherwise silently collide on frame 0.
func parseFrameNumber(ev Event) (uint, error) {
	n, err := strconv.ParseUint(ev.Value, 10, 32)
	if err != nil {
		log.Error("invalid frame number in capture script",
			"key", ev.Value, "line", ev.Line, "column", ev.Column)
		return 0, fmt.Errorf("%w %q at line %d column %d",
			ErrInvalidFrameNumber, ev.Value, ev.Line, ev.Column)
	}
	return uint(n), nil
}
