package controls

import "sort"

// Catalog maps control names to their descriptors so script controls can be
// identified by name. A camera builds its catalog once from the controls it
// supports; the catalog is immutable after construction and outlives any
// parse that consults it.
type Catalog struct {
	byName map[string]*Control
	byID   map[uint32]*Control
}

// NewCatalog builds a catalog from the given descriptors. A later descriptor
// with a duplicate name replaces the earlier one.
func NewCatalog(ctrls ...*Control) *Catalog {
	c := &Catalog{
		byName: make(map[string]*Control, len(ctrls)),
		byID:   make(map[uint32]*Control, len(ctrls)),
	}
	for _, ctrl := range ctrls {
		c.byName[ctrl.Name] = ctrl
		c.byID[ctrl.ID] = ctrl
	}
	return c
}

// ByName retrieves a descriptor by control name.
func (c *Catalog) ByName(name string) (*Control, bool) {
	ctrl, ok := c.byName[name]
	return ctrl, ok
}

// ByID retrieves a descriptor by numeric control id.
func (c *Catalog) ByID(id uint32) (*Control, bool) {
	ctrl, ok := c.byID[id]
	return ctrl, ok
}

// Names returns all control names, sorted alphabetically.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.byName))
	for name := range c.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of controls in the catalog.
func (c *Catalog) Len() int {
	return len(c.byName)
}
