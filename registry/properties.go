package registry

import "github.com/opd-ai/camctl"

// Property identifiers. Like control identifiers these mirror the camera
// stack's numbering; the two namespaces are independent despite overlapping
// values.
const (
	Location uint32 = iota + 1
	Rotation
	Model
	UnitCellSize
	PixelArraySize
	PixelArrayOpticalBlackRectangles
	PixelArrayActiveAreas
	ScalerCropMaximum
	SensorSensitivity
	SystemDevices
)

// Location values.
const (
	CameraLocationFront int32 = iota
	CameraLocationBack
	CameraLocationExternal
)

var properties = map[uint32]controlEntry{
	Location:                         {"Location", camctl.ControlTypeInteger32},
	Rotation:                         {"Rotation", camctl.ControlTypeInteger32},
	Model:                            {"Model", camctl.ControlTypeString},
	UnitCellSize:                     {"UnitCellSize", camctl.ControlTypeSize},
	PixelArraySize:                   {"PixelArraySize", camctl.ControlTypeSize},
	PixelArrayOpticalBlackRectangles: {"PixelArrayOpticalBlackRectangles", camctl.ControlTypeRectangle},
	PixelArrayActiveAreas:            {"PixelArrayActiveAreas", camctl.ControlTypeRectangle},
	ScalerCropMaximum:                {"ScalerCropMaximum", camctl.ControlTypeRectangle},
	SensorSensitivity:                {"SensorSensitivity", camctl.ControlTypeFloat},
	SystemDevices:                    {"SystemDevices", camctl.ControlTypeInteger64},
}
