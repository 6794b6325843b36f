package registry

import (
	"sort"

	"github.com/opd-ai/camctl"
)

// ControlName returns the name of a control identifier, or ("", false) when
// the identifier is not a known control.
func ControlName(id uint32) (string, bool) {
	entry, ok := controls[id]
	if !ok {
		return "", false
	}
	return entry.name, true
}

// ControlType returns the control type of a control identifier, or the
// ControlTypeNone sentinel when the identifier is not a known control.
func ControlType(id uint32) camctl.ControlType {
	return controls[id].typ
}

// PropertyName returns the name of a property identifier, or ("", false)
// when the identifier is not a known property.
func PropertyName(id uint32) (string, bool) {
	entry, ok := properties[id]
	if !ok {
		return "", false
	}
	return entry.name, true
}

// PropertyType returns the control type of a property identifier, or the
// ControlTypeNone sentinel when the identifier is not a known property.
func PropertyType(id uint32) camctl.ControlType {
	return properties[id].typ
}

// ControlIDs returns every known control identifier in ascending order.
// The caller owns the slice.
func ControlIDs() []uint32 {
	return sortedIDs(controls)
}

// PropertyIDs returns every known property identifier in ascending order.
// The caller owns the slice.
func PropertyIDs() []uint32 {
	return sortedIDs(properties)
}

func sortedIDs(table map[uint32]controlEntry) []uint32 {
	ids := make([]uint32, 0, len(table))
	for id := range table {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// ControlInfos returns the built-in range descriptors. The map is shared and
// immutable; callers must not insert into it.
func ControlInfos() *camctl.ControlInfoMap {
	return builtinInfos
}
