package camctl

// ControlType identifies the primitive data type stored in a ControlValue.
//
// The member set mirrors the camera stack's control type enumeration and must
// stay numerically aligned with it: values of this type cross the C API
// boundary as plain integers.
type ControlType uint32

const (
	ControlTypeNone ControlType = iota
	ControlTypeBool
	ControlTypeByte
	ControlTypeUnsigned16
	ControlTypeUnsigned32
	ControlTypeInteger32
	ControlTypeInteger64
	ControlTypeFloat
	ControlTypeString
	ControlTypeRectangle
	ControlTypeSize
	ControlTypePoint
)

// controlTypeNames maps each type tag to its display name.
var controlTypeNames = map[ControlType]string{
	ControlTypeNone:       "none",
	ControlTypeBool:       "bool",
	ControlTypeByte:       "byte",
	ControlTypeUnsigned16: "uint16",
	ControlTypeUnsigned32: "uint32",
	ControlTypeInteger32:  "int32",
	ControlTypeInteger64:  "int64",
	ControlTypeFloat:      "float",
	ControlTypeString:     "string",
	ControlTypeRectangle:  "rectangle",
	ControlTypeSize:       "size",
	ControlTypePoint:      "point",
}

// controlTypeSizes maps each type tag to the byte size of a single element.
// String elements are individual bytes; the element count carries the length.
var controlTypeSizes = map[ControlType]int{
	ControlTypeNone:       0,
	ControlTypeBool:       1,
	ControlTypeByte:       1,
	ControlTypeUnsigned16: 2,
	ControlTypeUnsigned32: 4,
	ControlTypeInteger32:  4,
	ControlTypeInteger64:  8,
	ControlTypeFloat:      4,
	ControlTypeString:     1,
	ControlTypeRectangle:  16,
	ControlTypeSize:       8,
	ControlTypePoint:      8,
}

// String returns the human-readable name of the control type.
func (t ControlType) String() string {
	if name, ok := controlTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// ElementSize returns the byte size of a single element of this type.
// Unknown types report a size of zero.
func (t ControlType) ElementSize() int {
	return controlTypeSizes[t]
}

// IsValid reports whether t is a member of the control type enumeration.
// ControlTypeNone is a valid member; it tags the empty value state.
func (t ControlType) IsValid() bool {
	_, ok := controlTypeNames[t]
	return ok
}
