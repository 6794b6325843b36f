package registry

import "github.com/opd-ai/camctl"

// builtinInfos carries the range descriptors for controls whose legal
// domains the camera stack documents. Controls absent from this map are
// device-dependent: their ranges come from the device at enumeration time.
var builtinInfos = buildInfos()

func buildInfos() *camctl.ControlInfoMap {
	m := camctl.NewControlInfoMap()

	m.Insert(AeEnable, camctl.NewControlInfo(
		camctl.NewBool(false), camctl.NewBool(true), camctl.NewBool(true)))
	m.Insert(AwbEnable, camctl.NewControlInfo(
		camctl.NewBool(false), camctl.NewBool(true), camctl.NewBool(true)))

	m.Insert(ExposureValue, camctl.NewControlInfo(
		camctl.NewFloat(-8.0), camctl.NewFloat(8.0), camctl.NewFloat(0.0)))
	m.Insert(Brightness, camctl.NewControlInfo(
		camctl.NewFloat(-1.0), camctl.NewFloat(1.0), camctl.NewFloat(0.0)))
	m.Insert(Contrast, camctl.NewControlInfo(
		camctl.NewFloat(0.0), camctl.NewFloat(32.0), camctl.NewFloat(1.0)))
	m.Insert(Saturation, camctl.NewControlInfo(
		camctl.NewFloat(0.0), camctl.NewFloat(32.0), camctl.NewFloat(1.0)))
	m.Insert(Sharpness, camctl.NewControlInfo(
		camctl.NewFloat(0.0), camctl.NewFloat(16.0), camctl.NewFloat(1.0)))

	m.Insert(AeMeteringMode, enumInfo(
		[]int32{MeteringCentreWeighted, MeteringSpot, MeteringMatrix, MeteringCustom},
		MeteringCentreWeighted))
	m.Insert(AwbMode, enumInfo(
		[]int32{AwbAuto, AwbIncandescent, AwbTungsten, AwbFluorescent,
			AwbIndoor, AwbDaylight, AwbCloudy, AwbCustom},
		AwbAuto))
	m.Insert(AfMode, enumInfo(
		[]int32{AfModeManual, AfModeAuto, AfModeContinuous}, AfModeManual))
	m.Insert(AfTrigger, enumInfo(
		[]int32{AfTriggerStart, AfTriggerCancel}, AfTriggerStart))

	// Array controls have no single value expressing their maximum.
	m.Insert(ColourGains, camctl.NewUnboundedControlInfo(
		camctl.NewFloat(0.0), camctl.ControlValue{}))
	m.Insert(FrameDurationLimits, camctl.NewUnboundedControlInfo(
		camctl.NewInteger64(0), camctl.ControlValue{}))
	m.Insert(AfWindows, camctl.NewUnboundedControlInfo(
		camctl.ControlValue{}, camctl.ControlValue{}))
	m.Insert(ColourCorrectionMatrix, camctl.NewUnboundedControlInfo(
		camctl.NewFloat(-16.0), camctl.ControlValue{}))

	return m
}

func enumInfo(values []int32, def int32) *camctl.ControlInfo {
	vals := make([]camctl.ControlValue, 0, len(values))
	for _, v := range values {
		vals = append(vals, camctl.NewInteger32(v))
	}
	return camctl.NewControlInfoValues(vals, camctl.NewInteger32(def))
}
