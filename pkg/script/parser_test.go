package script

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tosbaja/libcamera/pkg/controls"
)

// stubSource replays a canned event stream, standing in for the structural
// tokenizer so grammar tests need no document at all.
type stubSource struct {
	events []Event
	pos    int
	err    error // returned once the canned events run out
}

func (s *stubSource) Next() (Event, error) {
	if s.pos >= len(s.events) {
		if s.err != nil {
			return Event{}, s.err
		}
		return Event{}, errExhausted
	}
	ev := s.events[s.pos]
	s.pos++
	return ev, nil
}

func ev(kind EventKind) Event {
	return Event{Kind: kind}
}

func scalar(text string) Event {
	return Event{Kind: EventScalar, Value: text}
}

// catalogSource satisfies ControlSource with a fixed catalog.
type catalogSource struct {
	catalog *controls.Catalog
}

func (c catalogSource) Controls() *controls.Catalog {
	return c.catalog
}

func testCatalog() ControlSource {
	return catalogSource{catalog: controls.NewCatalog(
		&controls.Control{ID: 1, Name: "AeEnable", Type: controls.TypeBool},
		&controls.Control{ID: 7, Name: "ExposureTime", Type: controls.TypeInt32},
		&controls.Control{ID: 8, Name: "AnalogueGain", Type: controls.TypeFloat},
		&controls.Control{ID: 24, Name: "FrameDuration", Type: controls.TypeInt64},
		&controls.Control{ID: 26, Name: "ScalerCrop", Type: controls.TypeRectangle},
		&controls.Control{ID: 40, Name: "CameraMode", Type: controls.TypeString},
		&controls.Control{ID: 50, Name: "TestPattern", Type: controls.TypeByte},
	)}
}

// preamble is the event prefix every well-formed script starts with.
func preamble() []Event {
	return []Event{
		ev(EventStreamStart),
		ev(EventDocumentStart),
		ev(EventMappingStart),
	}
}

// frameEntry builds the events for one frame entry with alternating
// name/value scalar pairs.
func frameEntry(frame string, pairs ...string) []Event {
	events := []Event{
		ev(EventMappingStart),
		scalar(frame),
		ev(EventMappingStart),
	}
	for _, p := range pairs {
		events = append(events, scalar(p))
	}
	events = append(events, ev(EventMappingEnd), ev(EventMappingEnd))
	return events
}

func TestParse_SingleFrame(t *testing.T) {
	events := preamble()
	events = append(events, scalar("frames"), ev(EventSequenceStart))
	events = append(events, frameEntry("5", "AeEnable", "true")...)
	events = append(events, ev(EventSequenceEnd), ev(EventMappingEnd))

	scr, err := load(testCatalog(), &stubSource{events: events})
	require.NoError(t, err)
	require.True(t, scr.Valid())

	list := scr.FrameControls(5)
	require.Equal(t, 1, list.Len())

	v, ok := list.Get(1)
	require.True(t, ok)
	b, ok := v.Bool()
	require.True(t, ok)
	assert.True(t, b)

	assert.Equal(t, 0, scr.FrameControls(6).Len())
}

func TestParse_NoTrailingEventsRequired(t *testing.T) {
	// The stream ends right after the top mapping closes; document-end and
	// stream-end are never produced. That is still a successful parse.
	events := preamble()
	events = append(events, ev(EventMappingEnd))

	scr, err := load(testCatalog(), &stubSource{events: events})
	require.NoError(t, err)
	assert.True(t, scr.Valid())
	assert.Empty(t, scr.FrameNumbers())
}

func TestParse_UnsupportedSection(t *testing.T) {
	events := preamble()
	events = append(events, Event{Kind: EventScalar, Value: "properties", Line: 1, Column: 0})

	scr, err := load(testCatalog(), &stubSource{events: events})
	require.ErrorIs(t, err, ErrUnsupportedSection)
	assert.Contains(t, err.Error(), "properties")
	assert.Nil(t, scr)
}

func TestParse_UnsupportedControl(t *testing.T) {
	// An earlier frame parses cleanly, then a later frame names an unknown
	// control. Validity is document-wide, so nothing stays queryable.
	events := preamble()
	events = append(events, scalar("frames"), ev(EventSequenceStart))
	events = append(events, frameEntry("5", "AeEnable", "true")...)
	events = append(events, frameEntry("6", "Bogus", "1")...)

	scr, err := load(testCatalog(), &stubSource{events: events})
	require.ErrorIs(t, err, ErrUnsupportedControl)
	assert.Contains(t, err.Error(), "Bogus")
	require.Nil(t, scr)

	assert.Equal(t, 0, scr.FrameControls(5).Len())
	assert.False(t, scr.Valid())
}

func TestParse_UnexpectedEvent(t *testing.T) {
	// "frames" must be followed by a sequence, not a mapping.
	events := preamble()
	events = append(events,
		scalar("frames"),
		Event{Kind: EventMappingStart, Line: 2, Column: 4},
	)

	_, err := load(testCatalog(), &stubSource{events: events})
	var uerr *UnexpectedEventError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, EventSequenceStart, uerr.Expected)
	assert.Equal(t, EventMappingStart, uerr.Actual)
	assert.Equal(t, 2, uerr.Line)
	assert.Equal(t, 4, uerr.Column)
}

func TestParse_InvalidFrameNumber(t *testing.T) {
	for _, key := range []string{"abc", "", "-1", "10.5"} {
		t.Run(key, func(t *testing.T) {
			events := preamble()
			events = append(events, scalar("frames"), ev(EventSequenceStart))
			events = append(events, frameEntry(key, "AeEnable", "true")...)
			events = append(events, ev(EventSequenceEnd), ev(EventMappingEnd))

			_, err := load(testCatalog(), &stubSource{events: events})
			assert.ErrorIs(t, err, ErrInvalidFrameNumber)
		})
	}
}

func TestParse_DuplicateControlLastWins(t *testing.T) {
	events := preamble()
	events = append(events, scalar("frames"), ev(EventSequenceStart))
	events = append(events, frameEntry("3",
		"ExposureTime", "1000",
		"ExposureTime", "3000",
	)...)
	events = append(events, ev(EventSequenceEnd), ev(EventMappingEnd))

	scr, err := load(testCatalog(), &stubSource{events: events})
	require.NoError(t, err)

	list := scr.FrameControls(3)
	require.Equal(t, 1, list.Len())
	v, ok := list.Get(7)
	require.True(t, ok)
	n, ok := v.Int32()
	require.True(t, ok)
	assert.Equal(t, int32(3000), n)
}

func TestParse_DuplicateFrameOverwrites(t *testing.T) {
	events := preamble()
	events = append(events, scalar("frames"), ev(EventSequenceStart))
	events = append(events, frameEntry("10", "AeEnable", "true")...)
	events = append(events, frameEntry("10", "AnalogueGain", "1.5")...)
	events = append(events, ev(EventSequenceEnd), ev(EventMappingEnd))

	scr, err := load(testCatalog(), &stubSource{events: events})
	require.NoError(t, err)

	list := scr.FrameControls(10)
	require.Equal(t, 1, list.Len())
	assert.False(t, list.Contains(1))
	assert.True(t, list.Contains(8))
}

func TestParse_BadBoolDegradesWithoutAborting(t *testing.T) {
	events := preamble()
	events = append(events, scalar("frames"), ev(EventSequenceStart))
	events = append(events, frameEntry("5",
		"AeEnable", "yes",
		"ExposureTime", "3000",
	)...)
	events = append(events, ev(EventSequenceEnd), ev(EventMappingEnd))

	scr, err := load(testCatalog(), &stubSource{events: events})
	require.NoError(t, err)

	list := scr.FrameControls(5)
	require.Equal(t, 2, list.Len())

	v, ok := list.Get(1)
	require.True(t, ok)
	assert.True(t, v.IsNone())

	v, ok = list.Get(7)
	require.True(t, ok)
	n, ok := v.Int32()
	require.True(t, ok)
	assert.Equal(t, int32(3000), n)
}

func TestParse_SourceFailureIsMalformedDocument(t *testing.T) {
	events := preamble()
	events = append(events, scalar("frames"))

	src := &stubSource{events: events, err: errors.New("tokenizer blew up")}
	_, err := load(testCatalog(), src)
	assert.ErrorIs(t, err, ErrMalformedDocument)
}

func TestParse_MultipleFrames(t *testing.T) {
	events := preamble()
	events = append(events, scalar("frames"), ev(EventSequenceStart))
	events = append(events, frameEntry("10", "AeEnable", "false", "ExposureTime", "3000")...)
	events = append(events, frameEntry("20", "AnalogueGain", "1.5")...)
	events = append(events, ev(EventSequenceEnd), ev(EventMappingEnd))

	scr, err := load(testCatalog(), &stubSource{events: events})
	require.NoError(t, err)

	assert.Equal(t, []uint{10, 20}, scr.FrameNumbers())
	assert.Equal(t, 2, scr.FrameControls(10).Len())
	assert.Equal(t, 1, scr.FrameControls(20).Len())

	v, ok := scr.FrameControls(20).Get(8)
	require.True(t, ok)
	f, ok := v.Float()
	require.True(t, ok)
	assert.InDelta(t, 1.5, float64(f), 1e-6)
}

func TestFrameControls_NilScript(t *testing.T) {
	var scr *Script
	assert.False(t, scr.Valid())
	assert.Equal(t, 0, scr.FrameControls(0).Len())
	assert.Nil(t, scr.FrameNumbers())
}
