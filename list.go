package camctl

import (
	"fmt"
	"strings"
)

// ControlList is an ordered associative container mapping control or property
// identifiers to ControlValues. Lookup is by identifier; iteration follows
// insertion order, not identifier order.
//
// A list never validates the values stored into it. The camera stack's own
// list type keeps its validator private and reports nothing back from set
// operations, so invalid values can be stored without rejection; callers that
// care should run Validate against the control's ControlInfo first. This gap
// is deliberate, to match the reference behavior.
//
// ControlList is not synchronized. Concurrent reads of an unmodified list are
// safe; any concurrent mutation requires external locking.
type ControlList struct {
	entries []listEntry
	index   map[uint32]int
}

type listEntry struct {
	id    uint32
	value ControlValue
}

// NewControlList returns an empty control list.
func NewControlList() *ControlList {
	return &ControlList{
		index: make(map[uint32]int),
	}
}

// Len returns the number of entries in the list.
func (l *ControlList) Len() int {
	return len(l.entries)
}

// Contains reports whether the list has an entry for id.
func (l *ControlList) Contains(id uint32) bool {
	_, ok := l.index[id]
	return ok
}

// Get returns the value stored for id, or (nil, false) when the list has no
// such entry. The returned pointer refers to the list's own storage and is
// valid until the next Set that grows the list; mutate it only through
// ControlValue methods and only under the same locking discipline as the
// list itself.
func (l *ControlList) Get(id uint32) (*ControlValue, bool) {
	i, ok := l.index[id]
	if !ok {
		return nil, false
	}
	return &l.entries[i].value, true
}

// Set stores a deep copy of value for id. An existing entry is overwritten
// in place, keeping its position in iteration order; a new identifier is
// appended at the end.
//
// Set has no failure mode and performs no validation; see the type comment.
func (l *ControlList) Set(id uint32, value ControlValue) {
	if i, ok := l.index[id]; ok {
		l.entries[i].value = value.Clone()
		return
	}
	l.index[id] = len(l.entries)
	l.entries = append(l.entries, listEntry{id: id, value: value.Clone()})
}

// Merge copies every entry of other into l, overwriting entries with the
// same identifier. Entries new to l are appended in other's iteration order.
func (l *ControlList) Merge(other *ControlList) {
	for i := range other.entries {
		l.Set(other.entries[i].id, other.entries[i].value)
	}
}

// Clear removes all entries.
func (l *ControlList) Clear() {
	l.entries = nil
	l.index = make(map[uint32]int)
}

// Iterate returns a cursor positioned at the list's first entry, or already
// at the end for an empty list. The cursor borrows the list: it must not be
// used after the list is released, and a Set or Clear during iteration
// leaves the cursor in an undefined position.
func (l *ControlList) Iterate() *ControlListIterator {
	return &ControlListIterator{list: l}
}

// String renders the list for debugging as "{id: value, ...}" in iteration
// order.
func (l *ControlList) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i := range l.entries {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d: %s", l.entries[i].id, l.entries[i].value.String())
	}
	b.WriteString("}")
	return b.String()
}

// ControlListIterator is a forward cursor over a ControlList. It is a
// non-owning borrow; see ControlList.Iterate for the validity rules.
type ControlListIterator struct {
	list *ControlList
	pos  int
}

// End reports whether the cursor has moved past the last entry. ID and Value
// must not be called once End reports true.
func (it *ControlListIterator) End() bool {
	return it.pos >= len(it.list.entries)
}

// Next advances the cursor by one entry. Calling Next at the end is a no-op.
func (it *ControlListIterator) Next() {
	if !it.End() {
		it.pos++
	}
}

// ID returns the identifier of the current entry.
func (it *ControlListIterator) ID() uint32 {
	return it.list.entries[it.pos].id
}

// Value returns the current entry's value. The pointer refers to the list's
// storage, like ControlList.Get.
func (it *ControlListIterator) Value() *ControlValue {
	return &it.list.entries[it.pos].value
}
