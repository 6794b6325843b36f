package camctl

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

var (
	// ErrValueType indicates a value's control type does not match the
	// descriptor it was validated against.
	ErrValueType = errors.New("value type does not match descriptor")

	// ErrValueNotAllowed indicates a value is not a member of the
	// descriptor's enumerated allowed-value set.
	ErrValueNotAllowed = errors.New("value not in allowed set")

	// ErrValueOutOfRange indicates a numeric value lies outside the
	// descriptor's minimum/maximum bounds.
	ErrValueOutOfRange = errors.New("value out of range")
)

// Validate checks value against a control's descriptor. It is an explicit,
// voluntary helper: ControlList.Set never invokes it, preserving the
// reference behavior where invalid values are stored without rejection.
//
// The checks performed are: control type match, membership in the
// allowed-value set when the descriptor enumerates one, and numeric bound
// checks otherwise. Array values are checked element-wise against scalar
// bounds. Bounds that are "none", non-numeric, or unrepresentable (no
// maximum) are skipped rather than failed: Validate rejects only what the
// descriptor positively excludes.
func Validate(value ControlValue, info *ControlInfo) error {
	if info == nil {
		return nil
	}
	if t := info.domainType(); t != ControlTypeNone && value.Type() != t {
		return fmt.Errorf("%w: descriptor is %s, value is %s", ErrValueType, t, value.Type())
	}
	if allowed := info.values; len(allowed) > 0 {
		for i := range allowed {
			if value.Equal(&allowed[i]) {
				return nil
			}
		}
		return fmt.Errorf("%w: %s", ErrValueNotAllowed, value.String())
	}
	return checkBounds(value, info)
}

// domainType derives the control type a descriptor constrains, from the
// first tagged value it carries.
func (i *ControlInfo) domainType() ControlType {
	for _, v := range []*ControlValue{&i.def, &i.min, &i.max} {
		if !v.IsNone() {
			return v.Type()
		}
	}
	if len(i.values) > 0 {
		return i.values[0].Type()
	}
	return ControlTypeNone
}

func checkBounds(value ControlValue, info *ControlInfo) error {
	typ := value.Type()
	if !isNumeric(typ) {
		return nil
	}
	for i := 0; i < value.NumElements(); i++ {
		elem := numericElement(&value, i)
		if !info.min.IsNone() && info.min.Type() == typ && info.min.NumElements() == 1 {
			if elem < numericElement(&info.min, 0) {
				return fmt.Errorf("%w: %s below minimum %s", ErrValueOutOfRange, value.String(), info.min.String())
			}
		}
		if !info.noMax && !info.max.IsNone() && info.max.Type() == typ && info.max.NumElements() == 1 {
			if elem > numericElement(&info.max, 0) {
				return fmt.Errorf("%w: %s above maximum %s", ErrValueOutOfRange, value.String(), info.max.String())
			}
		}
	}
	return nil
}

func isNumeric(t ControlType) bool {
	switch t {
	case ControlTypeByte, ControlTypeUnsigned16, ControlTypeUnsigned32,
		ControlTypeInteger32, ControlTypeInteger64, ControlTypeFloat:
		return true
	}
	return false
}

// numericElement widens element i of a numeric value to float64 for
// comparison. float64 carries every representable value of the narrower
// numeric kinds except the extreme int64 range, which the built-in
// descriptors never use as bounds.
func numericElement(v *ControlValue, i int) float64 {
	off := i * v.Type().ElementSize()
	src := v.Raw()[off:]
	switch v.Type() {
	case ControlTypeByte:
		return float64(src[0])
	case ControlTypeUnsigned16:
		return float64(binary.NativeEndian.Uint16(src))
	case ControlTypeUnsigned32:
		return float64(binary.NativeEndian.Uint32(src))
	case ControlTypeInteger32:
		return float64(int32(binary.NativeEndian.Uint32(src)))
	case ControlTypeInteger64:
		return float64(int64(binary.NativeEndian.Uint64(src)))
	case ControlTypeFloat:
		return float64(math.Float32frombits(binary.NativeEndian.Uint32(src)))
	}
	return 0
}
