package registry

import "github.com/opd-ai/camctl"

// Control identifiers. Numbering mirrors the camera stack's core control id
// enumeration and must not be reordered; identifiers are wire-stable.
const (
	AeEnable uint32 = iota + 1
	AeLocked
	AeMeteringMode
	AeConstraintMode
	AeExposureMode
	ExposureValue
	ExposureTime
	AnalogueGain
	Brightness
	Contrast
	Lux
	AwbEnable
	AwbMode
	AwbLocked
	ColourGains
	ColourTemperature
	Saturation
	SensorBlackLevels
	Sharpness
	FocusFoM
	ColourCorrectionMatrix
	ScalerCrop
	DigitalGain
	FrameDuration
	FrameDurationLimits
	SensorTemperature
	SensorTimestamp
	AfMode
	AfRange
	AfSpeed
	AfMetering
	AfWindows
	AfTrigger
	AfPause
	LensPosition
	AfState
	AfPauseState
)

// AeMeteringMode values.
const (
	MeteringCentreWeighted int32 = iota
	MeteringSpot
	MeteringMatrix
	MeteringCustom
)

// AwbMode values.
const (
	AwbAuto int32 = iota
	AwbIncandescent
	AwbTungsten
	AwbFluorescent
	AwbIndoor
	AwbDaylight
	AwbCloudy
	AwbCustom
)

// AfMode values.
const (
	AfModeManual int32 = iota
	AfModeAuto
	AfModeContinuous
)

// AfTrigger values.
const (
	AfTriggerStart int32 = iota
	AfTriggerCancel
)

// controlEntry is one row of a namespace table.
type controlEntry struct {
	name string
	typ  camctl.ControlType
}

var controls = map[uint32]controlEntry{
	AeEnable:               {"AeEnable", camctl.ControlTypeBool},
	AeLocked:               {"AeLocked", camctl.ControlTypeBool},
	AeMeteringMode:         {"AeMeteringMode", camctl.ControlTypeInteger32},
	AeConstraintMode:       {"AeConstraintMode", camctl.ControlTypeInteger32},
	AeExposureMode:         {"AeExposureMode", camctl.ControlTypeInteger32},
	ExposureValue:          {"ExposureValue", camctl.ControlTypeFloat},
	ExposureTime:           {"ExposureTime", camctl.ControlTypeInteger32},
	AnalogueGain:           {"AnalogueGain", camctl.ControlTypeFloat},
	Brightness:             {"Brightness", camctl.ControlTypeFloat},
	Contrast:               {"Contrast", camctl.ControlTypeFloat},
	Lux:                    {"Lux", camctl.ControlTypeFloat},
	AwbEnable:              {"AwbEnable", camctl.ControlTypeBool},
	AwbMode:                {"AwbMode", camctl.ControlTypeInteger32},
	AwbLocked:              {"AwbLocked", camctl.ControlTypeBool},
	ColourGains:            {"ColourGains", camctl.ControlTypeFloat},
	ColourTemperature:      {"ColourTemperature", camctl.ControlTypeInteger32},
	Saturation:             {"Saturation", camctl.ControlTypeFloat},
	SensorBlackLevels:      {"SensorBlackLevels", camctl.ControlTypeInteger32},
	Sharpness:              {"Sharpness", camctl.ControlTypeFloat},
	FocusFoM:               {"FocusFoM", camctl.ControlTypeInteger32},
	ColourCorrectionMatrix: {"ColourCorrectionMatrix", camctl.ControlTypeFloat},
	ScalerCrop:             {"ScalerCrop", camctl.ControlTypeRectangle},
	DigitalGain:            {"DigitalGain", camctl.ControlTypeFloat},
	FrameDuration:          {"FrameDuration", camctl.ControlTypeInteger64},
	FrameDurationLimits:    {"FrameDurationLimits", camctl.ControlTypeInteger64},
	SensorTemperature:      {"SensorTemperature", camctl.ControlTypeFloat},
	SensorTimestamp:        {"SensorTimestamp", camctl.ControlTypeInteger64},
	AfMode:                 {"AfMode", camctl.ControlTypeInteger32},
	AfRange:                {"AfRange", camctl.ControlTypeInteger32},
	AfSpeed:                {"AfSpeed", camctl.ControlTypeInteger32},
	AfMetering:             {"AfMetering", camctl.ControlTypeInteger32},
	AfWindows:              {"AfWindows", camctl.ControlTypeRectangle},
	AfTrigger:              {"AfTrigger", camctl.ControlTypeInteger32},
	AfPause:                {"AfPause", camctl.ControlTypeInteger32},
	LensPosition:           {"LensPosition", camctl.ControlTypeFloat},
	AfState:                {"AfState", camctl.ControlTypeInteger32},
	AfPauseState:           {"AfPauseState", camctl.ControlTypeInteger32},
}
