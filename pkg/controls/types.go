// Package controls defines the typed control model shared between the camera
// abstraction and the capture script engine.
//
// A control is a named, numbered device parameter with a declared type. The
// package provides the descriptor type, a tagged value union, per-frame value
// lists and the name lookup catalog built by a camera from its supported
// controls.
package controls

// Type is the declared type tag of a control.
type Type int

const (
	// TypeNone carries no payload.
	TypeNone Type = iota
	// TypeBool is a boolean control (e.g. AeEnable).
	TypeBool
	// TypeByte is an unsigned 8-bit integer control.
	TypeByte
	// TypeInt32 is a signed 32-bit integer control.
	TypeInt32
	// TypeInt64 is a signed 64-bit integer control.
	TypeInt64
	// TypeFloat is a 32-bit floating point control.
	TypeFloat
	// TypeString is a free-form text control.
	TypeString
	// TypeRectangle is a composite rectangle control (e.g. ScalerCrop).
	TypeRectangle
	// TypeSize is a composite width/height control.
	TypeSize
)

// typeNames maps type tags to human-readable names for diagnostics.
var typeNames = map[Type]string{
	TypeNone:      "none",
	TypeBool:      "bool",
	TypeByte:      "byte",
	TypeInt32:     "int32",
	TypeInt64:     "int64",
	TypeFloat:     "float",
	TypeString:    "string",
	TypeRectangle: "Rectangle",
	TypeSize:      "Size",
}

// String returns a human-readable type name.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// Rectangle is a composite control payload describing a pixel region.
type Rectangle struct {
	X      int `yaml:"x" json:"x"`
	Y      int `yaml:"y" json:"y"`
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`
}

// Size is a composite control payload describing pixel dimensions.
type Size struct {
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`
}

// Control describes a single device parameter: a stable numeric identifier, a
// name unique within a catalog, and the declared type its values must carry.
type Control struct {
	ID   uint32
	Name string
	Type Type
}
