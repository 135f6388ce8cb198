package controls

// Well-known control descriptors. The numeric ids are stable across releases
// so that serialized control sets stay meaningful.
var (
	// AeEnable toggles the auto-exposure algorithm.
	AeEnable = &Control{ID: 1, Name: "AeEnable", Type: TypeBool}
	// AeMeteringMode selects the auto-exposure metering mode.
	AeMeteringMode = &Control{ID: 3, Name: "AeMeteringMode", Type: TypeInt32}
	// ExposureValue is EV compensation in stops.
	ExposureValue = &Control{ID: 6, Name: "ExposureValue", Type: TypeFloat}
	// ExposureTime is the manual exposure time in microseconds.
	ExposureTime = &Control{ID: 7, Name: "ExposureTime", Type: TypeInt32}
	// AnalogueGain is the manual sensor gain.
	AnalogueGain = &Control{ID: 8, Name: "AnalogueGain", Type: TypeFloat}
	// Brightness adjusts image brightness (-1.0 to +1.0).
	Brightness = &Control{ID: 9, Name: "Brightness", Type: TypeFloat}
	// Contrast adjusts image contrast.
	Contrast = &Control{ID: 10, Name: "Contrast", Type: TypeFloat}
	// AwbEnable toggles the auto white balance algorithm.
	AwbEnable = &Control{ID: 12, Name: "AwbEnable", Type: TypeBool}
	// ColourTemperature sets the white balance colour temperature in kelvin.
	ColourTemperature = &Control{ID: 14, Name: "ColourTemperature", Type: TypeInt32}
	// Saturation adjusts colour saturation.
	Saturation = &Control{ID: 15, Name: "Saturation", Type: TypeFloat}
	// Sharpness adjusts edge enhancement strength.
	Sharpness = &Control{ID: 19, Name: "Sharpness", Type: TypeFloat}
	// FrameDuration is the frame duration in microseconds.
	FrameDuration = &Control{ID: 24, Name: "FrameDuration", Type: TypeInt64}
	// ScalerCrop selects the sensor region cropped into the output frame.
	ScalerCrop = &Control{ID: 26, Name: "ScalerCrop", Type: TypeRectangle}
	// AfMode selects the autofocus mode.
	AfMode = &Control{ID: 27, Name: "AfMode", Type: TypeInt32}
	// LensPosition is the manual lens position in dioptres.
	LensPosition = &Control{ID: 32, Name: "LensPosition", Type: TypeFloat}
	// CameraMode is a free-form tuning profile name.
	CameraMode = &Control{ID: 40, Name: "CameraMode", Type: TypeString}
)

var builtin = []*Control{
	AeEnable,
	AeMeteringMode,
	ExposureValue,
	ExposureTime,
	AnalogueGain,
	Brightness,
	Contrast,
	AwbEnable,
	ColourTemperature,
	Saturation,
	Sharpness,
	FrameDuration,
	ScalerCrop,
	AfMode,
	LensPosition,
	CameraMode,
}

// Builtin returns a catalog of the well-known controls. Each call builds a
// fresh catalog so callers cannot alias each other's lookups.
func Builtin() *Catalog {
	return NewCatalog(builtin...)
}
