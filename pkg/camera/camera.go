// Package camera provides the device abstraction consumed by the capture
// tools.
//
// This package follows the Interface Segregation Principle (ISP): the
// Camera interface stays minimal, and consumers that only need part of it
// (e.g. the control catalog) should depend on a narrower local interface.
package camera

import "github.com/tosbaja/libcamera/pkg/controls"

// Camera is a capture device. It exposes the catalog of controls it
// supports and accepts per-frame control sets from the capture loop.
type Camera interface {
	// Name identifies the device in logs and diagnostics.
	Name() string

	// Controls returns the catalog of supported controls. The catalog is
	// built once and stays immutable for the life of the camera.
	Controls() *controls.Catalog

	// Apply sets the given control values for the given frame.
	Apply(frame uint, list *controls.List) error
}
