package camctl

import (
	"errors"
	"strings"
)

// ErrNoMaximum indicates a ControlInfo describes a control with no
// representable maximum value, such as a variable-length array control.
// It is distinct from a maximum that happens to be the "none" value: a
// bounded descriptor with an unset maximum returns a none ControlValue and
// no error.
var ErrNoMaximum = errors.New("control has no representable maximum")

// ControlInfo describes the legal domain of a control: minimum, maximum, and
// default values, plus an optional enumeration of allowed values. Built-in
// controls get their descriptors from the registry package; callers may also
// construct descriptors for vendor controls.
//
// ControlInfo is immutable after construction and safe for unsynchronized
// concurrent reads.
type ControlInfo struct {
	min    ControlValue
	max    ControlValue
	def    ControlValue
	values []ControlValue
	noMax  bool
}

// NewControlInfo returns a descriptor with explicit bounds. Any of the three
// values may be the "none" ControlValue when the corresponding bound is not
// defined.
func NewControlInfo(min, max, def ControlValue) *ControlInfo {
	return &ControlInfo{
		min: min.Clone(),
		max: max.Clone(),
		def: def.Clone(),
	}
}

// NewControlInfoValues returns a descriptor constrained to an enumerated set
// of allowed values. Following the camera stack's convention, the minimum
// and maximum are taken from the first and last element of the set. The set
// must be non-empty and should contain def.
func NewControlInfoValues(values []ControlValue, def ControlValue) *ControlInfo {
	info := &ControlInfo{
		def:    def.Clone(),
		values: make([]ControlValue, 0, len(values)),
	}
	for i := range values {
		info.values = append(info.values, values[i].Clone())
	}
	if len(info.values) > 0 {
		info.min = info.values[0].Clone()
		info.max = info.values[len(info.values)-1].Clone()
	}
	return info
}

// NewUnboundedControlInfo returns a descriptor for an array or
// variable-length control whose maximum cannot be expressed as a single
// value. Max on the result reports ErrNoMaximum.
func NewUnboundedControlInfo(min, def ControlValue) *ControlInfo {
	return &ControlInfo{
		min:   min.Clone(),
		def:   def.Clone(),
		noMax: true,
	}
}

// Min returns a copy of the minimum value, or a "none" value when the
// descriptor defines no minimum.
func (i *ControlInfo) Min() ControlValue {
	return i.min.Clone()
}

// Max returns a copy of the maximum value. For descriptors with no
// representable maximum it returns ErrNoMaximum; callers crossing a foreign
// boundary convert that to an "absent" sentinel rather than propagating.
// A bounded descriptor whose maximum is simply unset returns a "none" value
// with a nil error, so the two absences stay distinguishable.
func (i *ControlInfo) Max() (ControlValue, error) {
	if i.noMax {
		return ControlValue{}, ErrNoMaximum
	}
	return i.max.Clone(), nil
}

// Def returns a copy of the default value, or a "none" value when the
// descriptor defines no default.
func (i *ControlInfo) Def() ControlValue {
	return i.def.Clone()
}

// Values returns a newly allocated deep copy of the allowed-value set. An
// empty result means the control is unconstrained (continuous) within its
// bounds. The caller owns the returned slice.
func (i *ControlInfo) Values() []ControlValue {
	out := make([]ControlValue, 0, len(i.values))
	for j := range i.values {
		out = append(out, i.values[j].Clone())
	}
	return out
}

// String renders the descriptor as "[min..max]" with the default appended
// when one is defined, mirroring the camera stack's formatting.
func (i *ControlInfo) String() string {
	var b strings.Builder
	b.WriteString("[")
	b.WriteString(i.min.String())
	b.WriteString("..")
	if i.noMax {
		b.WriteString("<unbounded>")
	} else {
		b.WriteString(i.max.String())
	}
	b.WriteString("]")
	if !i.def.IsNone() {
		b.WriteString(" (default: ")
		b.WriteString(i.def.String())
		b.WriteString(")")
	}
	return b.String()
}

// ControlInfoMap maps control identifiers to their descriptors, preserving
// insertion order for enumeration. The registry package exposes one for the
// built-in controls; per-device maps can be built the same way.
//
// A populated map is safe for unsynchronized concurrent reads.
type ControlInfoMap struct {
	ids   []uint32
	infos map[uint32]*ControlInfo
}

// NewControlInfoMap returns an empty descriptor map.
func NewControlInfoMap() *ControlInfoMap {
	return &ControlInfoMap{
		infos: make(map[uint32]*ControlInfo),
	}
}

// Insert adds or replaces the descriptor for id.
func (m *ControlInfoMap) Insert(id uint32, info *ControlInfo) {
	if _, ok := m.infos[id]; !ok {
		m.ids = append(m.ids, id)
	}
	m.infos[id] = info
}

// Get returns the descriptor for id, or (nil, false) when the map has no
// entry. The descriptor is shared, not copied; it is immutable by contract.
func (m *ControlInfoMap) Get(id uint32) (*ControlInfo, bool) {
	info, ok := m.infos[id]
	return info, ok
}

// Len returns the number of descriptors in the map.
func (m *ControlInfoMap) Len() int {
	return len(m.infos)
}

// IDs returns the identifiers in insertion order. The caller owns the slice.
func (m *ControlInfoMap) IDs() []uint32 {
	out := make([]uint32, len(m.ids))
	copy(out, m.ids)
	return out
}
