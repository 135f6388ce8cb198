// Package capture runs scripted capture sessions: a frame-paced loop that
// queries the script's control table for each frame and hands non-empty
// control sets to the camera.
package capture

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tosbaja/libcamera/internal/log"
	"github.com/tosbaja/libcamera/pkg/camera"
	"github.com/tosbaja/libcamera/pkg/script"
)

// Options configures a capture session.
type Options struct {
	// Frames is the number of frames to capture.
	Frames uint

	// FrameRate is the capture pace in frames per second.
	FrameRate float64
}

// DefaultOptions returns sensible defaults for a short session.
func DefaultOptions() Options {
	return Options{
		Frames:    100,
		FrameRate: 30.0,
	}
}

// Stats summarizes a completed session.
type Stats struct {
	// Frames is the number of frames the session ran.
	Frames uint

	// Scripted is the number of frames that had scripted controls.
	Scripted uint

	// Applied is the total number of control values handed to the camera.
	Applied int
}

// Session binds a camera and a parsed capture script for one run. Each
// session carries a unique id for log correlation.
type Session struct {
	id   string
	cam  camera.Camera
	scr  *script.Script
	opts Options
}

// NewSession creates a session. The script must have parsed successfully.
func NewSession(cam camera.Camera, scr *script.Script, opts Options) (*Session, error) {
	if cam == nil {
		return nil, ErrNoCamera
	}
	if !scr.Valid() {
		return nil, ErrInvalidScript
	}

	if opts.Frames == 0 {
		opts.Frames = DefaultOptions().Frames
	}
	if opts.FrameRate <= 0 {
		opts.FrameRate = DefaultOptions().FrameRate
	}

	return &Session{
		id:   uuid.New().String(),
		cam:  cam,
		scr:  scr,
		opts: opts,
	}, nil
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Run paces through the configured frame count, applying scripted controls
// as each frame comes due. It blocks until the session completes, the
// context is cancelled, or the camera rejects a control set.
func (s *Session) Run(ctx context.Context) (Stats, error) {
	interval := time.Duration(float64(time.Second) / s.opts.FrameRate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Info("capture session started",
		"session", s.id, "camera", s.cam.Name(),
		"frames", s.opts.Frames, "fps", s.opts.FrameRate)

	var stats Stats

	for frame := uint(0); frame < s.opts.Frames; frame++ {
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		case <-ticker.C:
		}

		stats.Frames++

		list := s.scr.FrameControls(frame)
		if list.Len() == 0 {
			continue
		}

		if err := s.cam.Apply(frame, list); err != nil {
			return stats, fmt.Errorf("apply controls for frame %d: %w", frame, err)
		}

		stats.Scripted++
		stats.Applied += list.Len()
		log.Debug("applied scripted controls",
			"session", s.id, "frame", frame, "count", list.Len())
	}

	log.Info("capture session finished",
		"session", s.id, "frames", stats.Frames,
		"scripted", stats.Scripted, "applied", stats.Applied)

	return stats, nil
}
