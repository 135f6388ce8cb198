package capture

import "errors"

var (
	// ErrNoCamera is returned when a session is created without a camera.
	ErrNoCamera = errors.New("no camera")

	// ErrInvalidScript is returned when a session is created with a script
	// that failed to parse.
	ErrInvalidScript = errors.New("invalid capture script")
)
