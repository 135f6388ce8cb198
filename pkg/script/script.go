package script

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/tosbaja/libcamera/internal/log"
	"github.com/tosbaja/libcamera/pkg/controls"
)

// ControlSource supplies the catalog of controls a script may reference.
// A camera satisfies this with the controls it supports.
type ControlSource interface {
	Controls() *controls.Catalog
}

// Script is a parsed capture script: an immutable table of per-frame control
// overrides, queryable by frame number for the life of a capture session.
type Script struct {
	frames map[uint]*controls.List
	valid  bool
}

// Load reads and parses the capture script at path against the camera's
// control catalog. The file is closed before Load returns, on success and
// failure alike.
func Load(cam ControlSource, path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		log.Error("failed to open capture script", "path", path, "err", err)
		return nil, fmt.Errorf("open capture script %s: %w", path, err)
	}
	defer f.Close()

	return Read(cam, f)
}

// Read parses a capture script from r against the camera's control catalog.
func Read(cam ControlSource, r io.Reader) (*Script, error) {
	return load(cam, newYAMLSource(r))
}

// load runs the parser over an event source. Any failure discards the whole
// in-progress table; there is no partial result.
func load(cam ControlSource, src Source) (*Script, error) {
	p := newParser(src, cam.Controls())
	if err := p.parseScript(); err != nil {
		return nil, err
	}

	return &Script{frames: p.frames, valid: true}, nil
}

// Valid reports whether the script parsed successfully. It is safe to call
// on a nil Script.
func (s *Script) Valid() bool {
	return s != nil && s.valid
}

// FrameControls returns the control list associated with a frame number. It
// never fails: frames the script does not mention get a fresh empty list, as
// does any query against an invalid or nil script.
func (s *Script) FrameControls(frame uint) *controls.List {
	if !s.Valid() {
		return controls.NewList()
	}

	list, ok := s.frames[frame]
	if !ok {
		return controls.NewList()
	}
	return list
}

// FrameNumbers returns the scripted frame numbers, sorted ascending.
func (s *Script) FrameNumbers() []uint {
	if !s.Valid() {
		return nil
	}

	frames := make([]uint, 0, len(s.frames))
	for frame := range s.frames {
		frames = append(frames, frame)
	}
	sort.Slice(frames, func(i, j int) bool { return frames[i] < frames[j] })
	return frames
}
