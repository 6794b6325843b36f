package main

import "C"

import (
	"sync"
	"unsafe"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/camctl"
	"github.com/opd-ai/camctl/registry"
)

// Required for c-shared build mode.
func main() {}

// Handle tables. Every object handed across the boundary is registered here
// under an integer id; the unsafe.Pointer handles point at copies of those
// ids. A single counter spans all object kinds so a stale handle can never
// alias a live object of another kind.
var (
	handleMutex sync.RWMutex
	nextHandle  = 1

	lists       = make(map[int]*camctl.ControlList)
	values      = make(map[int]*camctl.ControlValue)
	iterators   = make(map[int]*camctl.ControlListIterator)
	infos       = make(map[int]*camctl.ControlInfo)
	valueArrays = make(map[int][]camctl.ControlValue)
)

// newHandleLocked allocates a fresh handle id and returns the opaque
// pointer for it. The caller must hold handleMutex and register the object
// under handleID of the result.
func newHandleLocked() unsafe.Pointer {
	id := nextHandle
	nextHandle++
	handle := new(int)
	*handle = id
	return unsafe.Pointer(handle)
}

func handleID(h unsafe.Pointer) int {
	if h == nil {
		return 0
	}
	return *(*int)(h)
}

func registerValue(v *camctl.ControlValue) unsafe.Pointer {
	handleMutex.Lock()
	defer handleMutex.Unlock()
	h := newHandleLocked()
	values[handleID(h)] = v
	return h
}

func resolveList(h unsafe.Pointer) *camctl.ControlList {
	handleMutex.RLock()
	defer handleMutex.RUnlock()
	return lists[handleID(h)]
}

func resolveValue(h unsafe.Pointer) *camctl.ControlValue {
	handleMutex.RLock()
	defer handleMutex.RUnlock()
	return values[handleID(h)]
}

func resolveIterator(h unsafe.Pointer) *camctl.ControlListIterator {
	handleMutex.RLock()
	defer handleMutex.RUnlock()
	return iterators[handleID(h)]
}

func resolveInfo(h unsafe.Pointer) *camctl.ControlInfo {
	handleMutex.RLock()
	defer handleMutex.RUnlock()
	return infos[handleID(h)]
}

// Registry namespace lookups. Names are copied into a caller-supplied
// buffer; the return value is the name length in bytes, or -1 when the
// identifier is unknown or the buffer is too small.

//export camctl_control_name
func camctl_control_name(id uint32, buf *byte, bufLen int) int {
	name, ok := registry.ControlName(id)
	if !ok {
		return -1
	}
	return copyString(name, buf, bufLen)
}

//export camctl_control_type
func camctl_control_type(id uint32) int {
	return int(registry.ControlType(id))
}

//export camctl_property_name
func camctl_property_name(id uint32, buf *byte, bufLen int) int {
	name, ok := registry.PropertyName(id)
	if !ok {
		return -1
	}
	return copyString(name, buf, bufLen)
}

//export camctl_property_type
func camctl_property_type(id uint32) int {
	return int(registry.PropertyType(id))
}

func copyString(s string, buf *byte, bufLen int) int {
	if buf == nil || len(s) > bufLen {
		return -1
	}
	dst := unsafe.Slice(buf, bufLen)
	copy(dst, s)
	return len(s)
}

// Control lists.

//export camctl_control_list_create
func camctl_control_list_create() unsafe.Pointer {
	handleMutex.Lock()
	defer handleMutex.Unlock()
	h := newHandleLocked()
	lists[handleID(h)] = camctl.NewControlList()
	return h
}

//export camctl_control_list_destroy
func camctl_control_list_destroy(list unsafe.Pointer) {
	handleMutex.Lock()
	defer handleMutex.Unlock()
	delete(lists, handleID(list))
}

//export camctl_control_list_get
func camctl_control_list_get(list unsafe.Pointer, id uint32) unsafe.Pointer {
	l := resolveList(list)
	if l == nil {
		logrus.WithFields(logrus.Fields{
			"function": "camctl_control_list_get",
			"id":       id,
		}).Error("Invalid control list handle")
		return nil
	}
	val, ok := l.Get(id)
	if !ok {
		return nil
	}
	clone := val.Clone()
	return registerValue(&clone)
}

//export camctl_control_list_set
func camctl_control_list_set(list unsafe.Pointer, id uint32, val unsafe.Pointer) {
	// The list API offers no status feedback and its validator is not
	// exposed, so an unsupported value is stored without rejection.
	l := resolveList(list)
	v := resolveValue(val)
	if l == nil || v == nil {
		logrus.WithFields(logrus.Fields{
			"function": "camctl_control_list_set",
			"id":       id,
		}).Error("Invalid handle")
		return
	}
	l.Set(id, *v)
}

// Control list iteration.

//export camctl_control_list_iter
func camctl_control_list_iter(list unsafe.Pointer) unsafe.Pointer {
	l := resolveList(list)
	if l == nil {
		return nil
	}
	handleMutex.Lock()
	defer handleMutex.Unlock()
	h := newHandleLocked()
	iterators[handleID(h)] = l.Iterate()
	return h
}

//export camctl_control_list_iter_destroy
func camctl_control_list_iter_destroy(iter unsafe.Pointer) {
	handleMutex.Lock()
	defer handleMutex.Unlock()
	delete(iterators, handleID(iter))
}

//export camctl_control_list_iter_end
func camctl_control_list_iter_end(iter unsafe.Pointer) bool {
	it := resolveIterator(iter)
	if it == nil {
		return true
	}
	return it.End()
}

//export camctl_control_list_iter_next
func camctl_control_list_iter_next(iter unsafe.Pointer) {
	if it := resolveIterator(iter); it != nil {
		it.Next()
	}
}

//export camctl_control_list_iter_id
func camctl_control_list_iter_id(iter unsafe.Pointer) uint32 {
	it := resolveIterator(iter)
	if it == nil || it.End() {
		return 0
	}
	return it.ID()
}

//export camctl_control_list_iter_value
func camctl_control_list_iter_value(iter unsafe.Pointer) unsafe.Pointer {
	it := resolveIterator(iter)
	if it == nil || it.End() {
		return nil
	}
	clone := it.Value().Clone()
	return registerValue(&clone)
}

// Control values.

//export camctl_control_value_create
func camctl_control_value_create() unsafe.Pointer {
	return registerValue(&camctl.ControlValue{})
}

//export camctl_control_value_destroy
func camctl_control_value_destroy(val unsafe.Pointer) {
	handleMutex.Lock()
	defer handleMutex.Unlock()
	delete(values, handleID(val))
}

//export camctl_control_value_type
func camctl_control_value_type(val unsafe.Pointer) int {
	v := resolveValue(val)
	if v == nil {
		return int(camctl.ControlTypeNone)
	}
	return int(v.Type())
}

//export camctl_control_value_is_none
func camctl_control_value_is_none(val unsafe.Pointer) bool {
	v := resolveValue(val)
	return v == nil || v.IsNone()
}

//export camctl_control_value_is_array
func camctl_control_value_is_array(val unsafe.Pointer) bool {
	v := resolveValue(val)
	return v != nil && v.IsArray()
}

//export camctl_control_value_num_elements
func camctl_control_value_num_elements(val unsafe.Pointer) int {
	v := resolveValue(val)
	if v == nil {
		return 0
	}
	return v.NumElements()
}

//export camctl_control_value_get
func camctl_control_value_get(val unsafe.Pointer, buf *byte, bufLen int) int {
	v := resolveValue(val)
	if v == nil {
		return -1
	}
	raw := v.Raw()
	if len(raw) == 0 {
		return 0
	}
	if buf == nil || len(raw) > bufLen {
		return -1
	}
	copy(unsafe.Slice(buf, bufLen), raw)
	return len(raw)
}

//export camctl_control_value_set
func camctl_control_value_set(val unsafe.Pointer, typ int, data *byte, isArray bool, numElements int) int {
	v := resolveValue(val)
	if v == nil {
		return -1
	}
	t := camctl.ControlType(typ)
	if !t.IsValid() || numElements < 0 {
		return -1
	}
	v.Reserve(t, isArray, numElements)
	size := numElements * t.ElementSize()
	if size == 0 {
		return 0
	}
	if data == nil {
		return -1
	}
	if err := v.SetRaw(unsafe.Slice(data, size)); err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "camctl_control_value_set",
			"type":     t.String(),
			"error":    err.Error(),
		}).Error("Raw copy-in failed")
		return -1
	}
	return 0
}

// Control info descriptors.

//export camctl_control_info_create
func camctl_control_info_create() unsafe.Pointer {
	handleMutex.Lock()
	defer handleMutex.Unlock()
	h := newHandleLocked()
	infos[handleID(h)] = camctl.NewControlInfo(
		camctl.ControlValue{}, camctl.ControlValue{}, camctl.ControlValue{})
	return h
}

//export camctl_control_info_destroy
func camctl_control_info_destroy(info unsafe.Pointer) {
	handleMutex.Lock()
	defer handleMutex.Unlock()
	delete(infos, handleID(info))
}

//export camctl_control_info_min
func camctl_control_info_min(info unsafe.Pointer) unsafe.Pointer {
	i := resolveInfo(info)
	if i == nil {
		return nil
	}
	v := i.Min()
	return registerValue(&v)
}

//export camctl_control_info_max
func camctl_control_info_max(info unsafe.Pointer) unsafe.Pointer {
	i := resolveInfo(info)
	if i == nil {
		return nil
	}
	v, err := i.Max()
	if err != nil {
		// Best-effort degradation: the boundary cannot transport the
		// error, so log it and report absence.
		logrus.WithFields(logrus.Fields{
			"function": "camctl_control_info_max",
			"error":    err.Error(),
		}).Error("Maximum unavailable")
		return nil
	}
	return registerValue(&v)
}

//export camctl_control_info_def
func camctl_control_info_def(info unsafe.Pointer) unsafe.Pointer {
	i := resolveInfo(info)
	if i == nil {
		return nil
	}
	v := i.Def()
	return registerValue(&v)
}

//export camctl_control_info_values
func camctl_control_info_values(info unsafe.Pointer, numValues *int) unsafe.Pointer {
	i := resolveInfo(info)
	if i == nil || numValues == nil {
		return nil
	}
	vals := i.Values()
	*numValues = len(vals)
	handleMutex.Lock()
	defer handleMutex.Unlock()
	h := newHandleLocked()
	valueArrays[handleID(h)] = vals
	return h
}

//export camctl_control_value_array_at
func camctl_control_value_array_at(arr unsafe.Pointer, index int) unsafe.Pointer {
	handleMutex.RLock()
	vals := valueArrays[handleID(arr)]
	handleMutex.RUnlock()
	if index < 0 || index >= len(vals) {
		return nil
	}
	clone := vals[index].Clone()
	return registerValue(&clone)
}

//export camctl_control_value_array_destroy
func camctl_control_value_array_destroy(arr unsafe.Pointer) {
	handleMutex.Lock()
	defer handleMutex.Unlock()
	delete(valueArrays, handleID(arr))
}

//export camctl_control_info_map_get
func camctl_control_info_map_get(id uint32) unsafe.Pointer {
	info, ok := registry.ControlInfos().Get(id)
	if !ok {
		return nil
	}
	handleMutex.Lock()
	defer handleMutex.Unlock()
	h := newHandleLocked()
	infos[handleID(h)] = info
	return h
}
