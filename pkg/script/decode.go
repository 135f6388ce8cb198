package script

import (
	"errors"
	"strconv"

	"github.com/tosbaja/libcamera/internal/log"
	"github.com/tosbaja/libcamera/pkg/controls"
)

// unpack decodes the raw scalar text of a control value according to the
// control's declared type. It is total over the type tags: every tag has an
// arm, including the composite ones that are not parsed yet.
//
// Decode failures are not fatal. A bool that is neither "true" nor "false"
// is logged and degrades to a none-typed value; malformed numbers decode to
// zero; out-of-range integers truncate to the control's width.
func unpack(ctrl *controls.Control, repr string) controls.Value {
	switch ctrl.Type {
	case controls.TypeNone:
		return controls.Value{}
	case controls.TypeBool:
		switch repr {
		case "true":
			return controls.NewBool(true)
		case "false":
			return controls.NewBool(false)
		default:
			unpackFailure(ctrl, repr)
			return controls.Value{}
		}
	case controls.TypeByte:
		return controls.NewByte(uint8(parseInt(repr)))
	case controls.TypeInt32:
		return controls.NewInt32(int32(parseInt(repr)))
	case controls.TypeInt64:
		return controls.NewInt64(parseInt(repr))
	case controls.TypeFloat:
		return controls.NewFloat(parseFloat(repr))
	case controls.TypeString:
		return controls.NewString(repr)
	case controls.TypeRectangle:
		// TODO: parse rectangles once a textual form is settled.
		return controls.Value{}
	case controls.TypeSize:
		// TODO: parse sizes once a textual form is settled.
		return controls.Value{}
	default:
		unpackFailure(ctrl, repr)
		return controls.Value{}
	}
}

// unpackFailure reports a value that does not match the lexical rules of the
// control's declared type.
func unpackFailure(ctrl *controls.Control, repr string) {
	log.Warn("unsupported value for control",
		"value", repr, "type", ctrl.Type.String(), "control", ctrl.Name)
}

// parseInt converts base-10 text to a signed 64-bit integer. Out-of-range
// input saturates at the 64-bit bound and callers truncate it to the
// control's width; anything else malformed converts to zero.
func parseInt(repr string) int64 {
	v, err := strconv.ParseInt(repr, 10, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	return v
}

// parseFloat converts a floating-point literal; malformed input converts to
// zero.
func parseFloat(repr string) float32 {
	v, err := strconv.ParseFloat(repr, 32)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	return float32(v)
}
