package controls

import "sort"

// List is an unordered collection of control values scoped to one frame.
// Setting a value for an id that is already present overwrites the earlier
// value, mirroring unique-key map semantics.
//
// A List is mutated only while it is being built; afterwards it is treated
// as read-only and may be read concurrently without synchronization.
type List struct {
	values map[uint32]Value
}

// NewList creates an empty control list.
func NewList() *List {
	return &List{values: make(map[uint32]Value)}
}

// Set stores a value for the given control id. Last write wins.
func (l *List) Set(id uint32, v Value) {
	l.values[id] = v
}

// Get retrieves the value stored for a control id.
func (l *List) Get(id uint32) (Value, bool) {
	v, ok := l.values[id]
	return v, ok
}

// Contains reports whether a value is stored for the control id.
func (l *List) Contains(id uint32) bool {
	_, ok := l.values[id]
	return ok
}

// Len returns the number of stored values.
func (l *List) Len() int {
	return len(l.values)
}

// IDs returns the stored control ids, sorted ascending.
func (l *List) IDs() []uint32 {
	ids := make([]uint32, 0, len(l.values))
	for id := range l.values {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
