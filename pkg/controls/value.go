package controls

import (
	"fmt"
	"strconv"
)

// Value is an immutable tagged union holding one control value. The zero
// Value has type TypeNone and carries no payload.
type Value struct {
	typ  Type
	b    bool
	i    int64
	f    float32
	s    string
	rect Rectangle
	size Size
}

// NewBool returns a bool-typed value.
func NewBool(v bool) Value {
	return Value{typ: TypeBool, b: v}
}

// NewByte returns a byte-typed value.
func NewByte(v uint8) Value {
	return Value{typ: TypeByte, i: int64(v)}
}

// NewInt32 returns an int32-typed value.
func NewInt32(v int32) Value {
	return Value{typ: TypeInt32, i: int64(v)}
}

// NewInt64 returns an int64-typed value.
func NewInt64(v int64) Value {
	return Value{typ: TypeInt64, i: v}
}

// NewFloat returns a float-typed value.
func NewFloat(v float32) Value {
	return Value{typ: TypeFloat, f: v}
}

// NewString returns a string-typed value.
func NewString(v string) Value {
	return Value{typ: TypeString, s: v}
}

// NewRectangle returns a rectangle-typed value.
func NewRectangle(v Rectangle) Value {
	return Value{typ: TypeRectangle, rect: v}
}

// NewSize returns a size-typed value.
func NewSize(v Size) Value {
	return Value{typ: TypeSize, size: v}
}

// Type returns the active variant's type tag.
func (v Value) Type() Type {
	return v.typ
}

// IsNone reports whether the value carries no payload.
func (v Value) IsNone() bool {
	return v.typ == TypeNone
}

// Bool returns the boolean payload. The second return is false when the
// value is not bool-typed.
func (v Value) Bool() (bool, bool) {
	return v.b, v.typ == TypeBool
}

// Byte returns the byte payload.
func (v Value) Byte() (uint8, bool) {
	return uint8(v.i), v.typ == TypeByte
}

// Int32 returns the int32 payload.
func (v Value) Int32() (int32, bool) {
	return int32(v.i), v.typ == TypeInt32
}

// Int64 returns the int64 payload.
func (v Value) Int64() (int64, bool) {
	return v.i, v.typ == TypeInt64
}

// Float returns the float payload.
func (v Value) Float() (float32, bool) {
	return v.f, v.typ == TypeFloat
}

// Text returns the string payload.
func (v Value) Text() (string, bool) {
	return v.s, v.typ == TypeString
}

// Rect returns the rectangle payload.
func (v Value) Rect() (Rectangle, bool) {
	return v.rect, v.typ == TypeRectangle
}

// Dimensions returns the size payload.
func (v Value) Dimensions() (Size, bool) {
	return v.size, v.typ == TypeSize
}

// String renders the value for diagnostics and logs.
func (v Value) String() string {
	switch v.typ {
	case TypeNone:
		return "<none>"
	case TypeBool:
		return strconv.FormatBool(v.b)
	case TypeByte, TypeInt32, TypeInt64:
		return strconv.FormatInt(v.i, 10)
	case TypeFloat:
		return strconv.FormatFloat(float64(v.f), 'g', -1, 32)
	case TypeString:
		return v.s
	case TypeRectangle:
		return fmt.Sprintf("(%d, %d)/%dx%d", v.rect.X, v.rect.Y, v.rect.Width, v.rect.Height)
	case TypeSize:
		return fmt.Sprintf("%dx%d", v.size.Width, v.size.Height)
	default:
		return "<invalid>"
	}
}
