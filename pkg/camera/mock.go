package camera

import (
	"sync"

	"github.com/tosbaja/libcamera/pkg/controls"
)

// Mock is a camera for testing and hardware-free runs. It exposes the
// well-known control catalog by default and records every applied control
// list for assertions.
type Mock struct {
	name    string
	catalog *controls.Catalog

	mu       sync.Mutex
	applied  map[uint]*controls.List
	applyErr error
}

// MockOption configures a Mock.
type MockOption func(*Mock)

// WithCatalog replaces the default catalog of well-known controls.
func WithCatalog(catalog *controls.Catalog) MockOption {
	return func(m *Mock) {
		m.catalog = catalog
	}
}

// WithName sets the device name reported in diagnostics.
func WithName(name string) MockOption {
	return func(m *Mock) {
		m.name = name
	}
}

// NewMock creates a mock camera.
func NewMock(opts ...MockOption) *Mock {
	m := &Mock{
		name:    "mock",
		catalog: controls.Builtin(),
		applied: make(map[uint]*controls.List),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Name implements Camera.
func (m *Mock) Name() string {
	return m.name
}

// Controls implements Camera.
func (m *Mock) Controls() *controls.Catalog {
	return m.catalog
}

// Apply implements Camera. It records the list for later inspection, unless
// an error was injected with FailWith.
func (m *Mock) Apply(frame uint, list *controls.List) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.applyErr != nil {
		return m.applyErr
	}

	m.applied[frame] = list
	return nil
}

// FailWith makes every subsequent Apply return err. Pass nil to clear.
func (m *Mock) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.applyErr = err
}

// Applied returns the control list recorded for a frame.
func (m *Mock) Applied(frame uint) (*controls.List, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	list, ok := m.applied[frame]
	return list, ok
}

// ApplyCount returns the number of frames that received controls.
func (m *Mock) ApplyCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.applied)
}

// Ensure Mock implements Camera
var _ Camera = (*Mock)(nil)
