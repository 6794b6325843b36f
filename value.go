package camctl

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrTypeMismatch indicates a typed accessor was called on a value
	// holding a different control type or arrayness.
	ErrTypeMismatch = errors.New("control value type mismatch")

	// ErrSizeMismatch indicates a raw copy-in buffer does not match the
	// reserved payload size exactly.
	ErrSizeMismatch = errors.New("control value size mismatch")

	// ErrUnsupportedType indicates a dynamic set was attempted with a Go
	// type that has no corresponding control type.
	ErrUnsupportedType = errors.New("unsupported control value type")
)

// ControlValue holds a single dynamically-typed control or property value:
// a scalar or an array of one of the ControlType kinds, stored as raw bytes
// in the host's native representation.
//
// The zero ControlValue is the "none" state: no type, no elements, no
// payload. Reserve is the only transition out of that state. Plain struct
// assignment shares the underlying payload; use Clone for an independent
// deep copy. ControlList and ControlInfo always copy values they take in or
// hand out, so sharing only matters for values managed directly.
//
// ControlValue is not synchronized; concurrent mutation requires external
// locking.
type ControlValue struct {
	typ         ControlType
	isArray     bool
	numElements int
	payload     []byte
}

// Reserve resets the value to an uninitialized payload sized for numElements
// elements of the given type, discarding any prior contents. Byte views
// previously returned by Raw no longer reflect the value afterwards.
//
// Reserving ControlTypeNone always yields the empty "none" state regardless
// of the requested element count.
func (v *ControlValue) Reserve(typ ControlType, isArray bool, numElements int) {
	if typ == ControlTypeNone || numElements < 0 {
		*v = ControlValue{}
		return
	}
	v.typ = typ
	v.isArray = isArray
	v.numElements = numElements
	v.payload = make([]byte, numElements*typ.ElementSize())
}

// Type returns the control type tag.
func (v *ControlValue) Type() ControlType {
	return v.typ
}

// IsNone reports whether the value is in the empty "none" state.
func (v *ControlValue) IsNone() bool {
	return v.typ == ControlTypeNone
}

// IsArray reports whether the value holds an array rather than a scalar.
func (v *ControlValue) IsArray() bool {
	return v.isArray
}

// NumElements returns the number of elements stored in the value.
func (v *ControlValue) NumElements() int {
	return v.numElements
}

// Raw returns a read-only view of the value's payload in native byte layout.
// The view is NumElements()*Type().ElementSize() bytes long. Callers must
// not write through it; mutations go through SetRaw or the typed setters.
// The view is invalidated by a subsequent Reserve.
func (v *ControlValue) Raw() []byte {
	return v.payload
}

// SetRaw copies data into the reserved payload. The buffer length must match
// the reserved size exactly; a shorter or longer buffer is rejected with
// ErrSizeMismatch and the value is left unchanged.
func (v *ControlValue) SetRaw(data []byte) error {
	if len(data) != len(v.payload) {
		return fmt.Errorf("%w: got %d bytes, payload holds %d", ErrSizeMismatch, len(data), len(v.payload))
	}
	copy(v.payload, data)
	return nil
}

// Clone returns an independent deep copy of the value.
func (v *ControlValue) Clone() ControlValue {
	c := *v
	if v.payload != nil {
		c.payload = make([]byte, len(v.payload))
		copy(c.payload, v.payload)
	}
	return c
}

// Equal reports whether two values hold the same type, shape, and bytes.
func (v *ControlValue) Equal(other *ControlValue) bool {
	return v.typ == other.typ &&
		v.isArray == other.isArray &&
		v.numElements == other.numElements &&
		bytes.Equal(v.payload, other.payload)
}

// String renders the value for debugging: the scalar itself, arrays as
// "[ a, b ]", strings verbatim, and "<none>" for the empty state.
func (v *ControlValue) String() string {
	if v.IsNone() {
		return "<none>"
	}
	if v.typ == ControlTypeString {
		s, _ := v.StringValue()
		return s
	}
	elems := make([]string, 0, v.numElements)
	for i := 0; i < v.numElements; i++ {
		elems = append(elems, v.formatElement(i))
	}
	if !v.isArray {
		if len(elems) == 0 {
			return "<none>"
		}
		return elems[0]
	}
	return "[ " + strings.Join(elems, ", ") + " ]"
}

func (v *ControlValue) formatElement(i int) string {
	off := i * v.typ.ElementSize()
	src := v.payload[off:]
	switch v.typ {
	case ControlTypeBool:
		if src[0] != 0 {
			return "true"
		}
		return "false"
	case ControlTypeByte:
		return fmt.Sprintf("%d", src[0])
	case ControlTypeUnsigned16:
		return fmt.Sprintf("%d", binary.NativeEndian.Uint16(src))
	case ControlTypeUnsigned32:
		return fmt.Sprintf("%d", binary.NativeEndian.Uint32(src))
	case ControlTypeInteger32:
		return fmt.Sprintf("%d", int32(binary.NativeEndian.Uint32(src)))
	case ControlTypeInteger64:
		return fmt.Sprintf("%d", int64(binary.NativeEndian.Uint64(src)))
	case ControlTypeFloat:
		return fmt.Sprintf("%f", math.Float32frombits(binary.NativeEndian.Uint32(src)))
	case ControlTypeRectangle:
		return decodeRectangle(src).String()
	case ControlTypeSize:
		return decodeSize(src).String()
	case ControlTypePoint:
		return decodePoint(src).String()
	default:
		return "<unknown>"
	}
}

// check validates a typed access against the value's tag fields.
func (v *ControlValue) check(typ ControlType, wantArray bool) error {
	if v.typ != typ {
		return fmt.Errorf("%w: value holds %s, accessed as %s", ErrTypeMismatch, v.typ, typ)
	}
	if v.isArray != wantArray {
		if wantArray {
			return fmt.Errorf("%w: value is a scalar, accessed as array", ErrTypeMismatch)
		}
		return fmt.Errorf("%w: value is an array, accessed as scalar", ErrTypeMismatch)
	}
	return nil
}

// Typed constructors. Each returns a freshly allocated value; the input is
// copied, never aliased.

// NewBool returns a scalar bool value.
func NewBool(b bool) ControlValue {
	var v ControlValue
	v.Reserve(ControlTypeBool, false, 1)
	if b {
		v.payload[0] = 1
	}
	return v
}

// NewBoolArray returns an array-of-bool value.
func NewBoolArray(bs []bool) ControlValue {
	var v ControlValue
	v.Reserve(ControlTypeBool, true, len(bs))
	for i, b := range bs {
		if b {
			v.payload[i] = 1
		}
	}
	return v
}

// NewByte returns a scalar byte value.
func NewByte(b uint8) ControlValue {
	var v ControlValue
	v.Reserve(ControlTypeByte, false, 1)
	v.payload[0] = b
	return v
}

// NewByteArray returns an array-of-byte value.
func NewByteArray(bs []uint8) ControlValue {
	var v ControlValue
	v.Reserve(ControlTypeByte, true, len(bs))
	copy(v.payload, bs)
	return v
}

// NewUnsigned16 returns a scalar uint16 value.
func NewUnsigned16(u uint16) ControlValue {
	var v ControlValue
	v.Reserve(ControlTypeUnsigned16, false, 1)
	binary.NativeEndian.PutUint16(v.payload, u)
	return v
}

// NewUnsigned16Array returns an array-of-uint16 value.
func NewUnsigned16Array(us []uint16) ControlValue {
	var v ControlValue
	v.Reserve(ControlTypeUnsigned16, true, len(us))
	for i, u := range us {
		binary.NativeEndian.PutUint16(v.payload[i*2:], u)
	}
	return v
}

// NewUnsigned32 returns a scalar uint32 value.
func NewUnsigned32(u uint32) ControlValue {
	var v ControlValue
	v.Reserve(ControlTypeUnsigned32, false, 1)
	binary.NativeEndian.PutUint32(v.payload, u)
	return v
}

// NewUnsigned32Array returns an array-of-uint32 value.
func NewUnsigned32Array(us []uint32) ControlValue {
	var v ControlValue
	v.Reserve(ControlTypeUnsigned32, true, len(us))
	for i, u := range us {
		binary.NativeEndian.PutUint32(v.payload[i*4:], u)
	}
	return v
}

// NewInteger32 returns a scalar int32 value.
func NewInteger32(n int32) ControlValue {
	var v ControlValue
	v.Reserve(ControlTypeInteger32, false, 1)
	binary.NativeEndian.PutUint32(v.payload, uint32(n))
	return v
}

// NewInteger32Array returns an array-of-int32 value.
func NewInteger32Array(ns []int32) ControlValue {
	var v ControlValue
	v.Reserve(ControlTypeInteger32, true, len(ns))
	for i, n := range ns {
		binary.NativeEndian.PutUint32(v.payload[i*4:], uint32(n))
	}
	return v
}

// NewInteger64 returns a scalar int64 value.
func NewInteger64(n int64) ControlValue {
	var v ControlValue
	v.Reserve(ControlTypeInteger64, false, 1)
	binary.NativeEndian.PutUint64(v.payload, uint64(n))
	return v
}

// NewInteger64Array returns an array-of-int64 value.
func NewInteger64Array(ns []int64) ControlValue {
	var v ControlValue
	v.Reserve(ControlTypeInteger64, true, len(ns))
	for i, n := range ns {
		binary.NativeEndian.PutUint64(v.payload[i*8:], uint64(n))
	}
	return v
}

// NewFloat returns a scalar float32 value.
func NewFloat(f float32) ControlValue {
	var v ControlValue
	v.Reserve(ControlTypeFloat, false, 1)
	binary.NativeEndian.PutUint32(v.payload, math.Float32bits(f))
	return v
}

// NewFloatArray returns an array-of-float32 value.
func NewFloatArray(fs []float32) ControlValue {
	var v ControlValue
	v.Reserve(ControlTypeFloat, true, len(fs))
	for i, f := range fs {
		binary.NativeEndian.PutUint32(v.payload[i*4:], math.Float32bits(f))
	}
	return v
}

// NewString returns a string value. Strings are stored as byte arrays with
// one element per byte, so NumElements reports the string length.
func NewString(s string) ControlValue {
	var v ControlValue
	v.Reserve(ControlTypeString, true, len(s))
	copy(v.payload, s)
	return v
}

// NewRectangle returns a scalar rectangle value.
func NewRectangle(r Rectangle) ControlValue {
	var v ControlValue
	v.Reserve(ControlTypeRectangle, false, 1)
	encodeRectangle(v.payload, r)
	return v
}

// NewRectangleArray returns an array-of-rectangle value.
func NewRectangleArray(rs []Rectangle) ControlValue {
	var v ControlValue
	v.Reserve(ControlTypeRectangle, true, len(rs))
	for i, r := range rs {
		encodeRectangle(v.payload[i*16:], r)
	}
	return v
}

// NewSize returns a scalar size value.
func NewSize(s Size) ControlValue {
	var v ControlValue
	v.Reserve(ControlTypeSize, false, 1)
	encodeSize(v.payload, s)
	return v
}

// NewSizeArray returns an array-of-size value.
func NewSizeArray(ss []Size) ControlValue {
	var v ControlValue
	v.Reserve(ControlTypeSize, true, len(ss))
	for i, s := range ss {
		encodeSize(v.payload[i*8:], s)
	}
	return v
}

// NewPoint returns a scalar point value.
func NewPoint(p Point) ControlValue {
	var v ControlValue
	v.Reserve(ControlTypePoint, false, 1)
	encodePoint(v.payload, p)
	return v
}

// NewPointArray returns an array-of-point value.
func NewPointArray(ps []Point) ControlValue {
	var v ControlValue
	v.Reserve(ControlTypePoint, true, len(ps))
	for i, p := range ps {
		encodePoint(v.payload[i*8:], p)
	}
	return v
}

// Typed accessors. Each returns ErrTypeMismatch when the value holds a
// different type or arrayness; array accessors return fresh slices that do
// not alias the payload.

// Bool returns the scalar bool held by the value.
func (v *ControlValue) Bool() (bool, error) {
	if err := v.check(ControlTypeBool, false); err != nil {
		return false, err
	}
	return v.payload[0] != 0, nil
}

// BoolArray returns the bool elements held by the value.
func (v *ControlValue) BoolArray() ([]bool, error) {
	if err := v.check(ControlTypeBool, true); err != nil {
		return nil, err
	}
	out := make([]bool, v.numElements)
	for i := range out {
		out[i] = v.payload[i] != 0
	}
	return out, nil
}

// Byte returns the scalar byte held by the value.
func (v *ControlValue) Byte() (uint8, error) {
	if err := v.check(ControlTypeByte, false); err != nil {
		return 0, err
	}
	return v.payload[0], nil
}

// ByteArray returns the byte elements held by the value.
func (v *ControlValue) ByteArray() ([]uint8, error) {
	if err := v.check(ControlTypeByte, true); err != nil {
		return nil, err
	}
	out := make([]uint8, v.numElements)
	copy(out, v.payload)
	return out, nil
}

// Unsigned16 returns the scalar uint16 held by the value.
func (v *ControlValue) Unsigned16() (uint16, error) {
	if err := v.check(ControlTypeUnsigned16, false); err != nil {
		return 0, err
	}
	return binary.NativeEndian.Uint16(v.payload), nil
}

// Unsigned16Array returns the uint16 elements held by the value.
func (v *ControlValue) Unsigned16Array() ([]uint16, error) {
	if err := v.check(ControlTypeUnsigned16, true); err != nil {
		return nil, err
	}
	out := make([]uint16, v.numElements)
	for i := range out {
		out[i] = binary.NativeEndian.Uint16(v.payload[i*2:])
	}
	return out, nil
}

// Unsigned32 returns the scalar uint32 held by the value.
func (v *ControlValue) Unsigned32() (uint32, error) {
	if err := v.check(ControlTypeUnsigned32, false); err != nil {
		return 0, err
	}
	return binary.NativeEndian.Uint32(v.payload), nil
}

// Unsigned32Array returns the uint32 elements held by the value.
func (v *ControlValue) Unsigned32Array() ([]uint32, error) {
	if err := v.check(ControlTypeUnsigned32, true); err != nil {
		return nil, err
	}
	out := make([]uint32, v.numElements)
	for i := range out {
		out[i] = binary.NativeEndian.Uint32(v.payload[i*4:])
	}
	return out, nil
}

// Integer32 returns the scalar int32 held by the value.
func (v *ControlValue) Integer32() (int32, error) {
	if err := v.check(ControlTypeInteger32, false); err != nil {
		return 0, err
	}
	return int32(binary.NativeEndian.Uint32(v.payload)), nil
}

// Integer32Array returns the int32 elements held by the value.
func (v *ControlValue) Integer32Array() ([]int32, error) {
	if err := v.check(ControlTypeInteger32, true); err != nil {
		return nil, err
	}
	out := make([]int32, v.numElements)
	for i := range out {
		out[i] = int32(binary.NativeEndian.Uint32(v.payload[i*4:]))
	}
	return out, nil
}

// Integer64 returns the scalar int64 held by the value.
func (v *ControlValue) Integer64() (int64, error) {
	if err := v.check(ControlTypeInteger64, false); err != nil {
		return 0, err
	}
	return int64(binary.NativeEndian.Uint64(v.payload)), nil
}

// Integer64Array returns the int64 elements held by the value.
func (v *ControlValue) Integer64Array() ([]int64, error) {
	if err := v.check(ControlTypeInteger64, true); err != nil {
		return nil, err
	}
	out := make([]int64, v.numElements)
	for i := range out {
		out[i] = int64(binary.NativeEndian.Uint64(v.payload[i*8:]))
	}
	return out, nil
}

// Float returns the scalar float32 held by the value.
func (v *ControlValue) Float() (float32, error) {
	if err := v.check(ControlTypeFloat, false); err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.NativeEndian.Uint32(v.payload)), nil
}

// FloatArray returns the float32 elements held by the value.
func (v *ControlValue) FloatArray() ([]float32, error) {
	if err := v.check(ControlTypeFloat, true); err != nil {
		return nil, err
	}
	out := make([]float32, v.numElements)
	for i := range out {
		out[i] = math.Float32frombits(binary.NativeEndian.Uint32(v.payload[i*4:]))
	}
	return out, nil
}

// StringValue returns the string held by the value.
func (v *ControlValue) StringValue() (string, error) {
	if v.typ != ControlTypeString {
		return "", fmt.Errorf("%w: value holds %s, accessed as %s", ErrTypeMismatch, v.typ, ControlTypeString)
	}
	return string(v.payload), nil
}

// RectangleValue returns the scalar rectangle held by the value.
func (v *ControlValue) RectangleValue() (Rectangle, error) {
	if err := v.check(ControlTypeRectangle, false); err != nil {
		return Rectangle{}, err
	}
	return decodeRectangle(v.payload), nil
}

// RectangleArray returns the rectangle elements held by the value.
func (v *ControlValue) RectangleArray() ([]Rectangle, error) {
	if err := v.check(ControlTypeRectangle, true); err != nil {
		return nil, err
	}
	out := make([]Rectangle, v.numElements)
	for i := range out {
		out[i] = decodeRectangle(v.payload[i*16:])
	}
	return out, nil
}

// SizeValue returns the scalar size held by the value.
func (v *ControlValue) SizeValue() (Size, error) {
	if err := v.check(ControlTypeSize, false); err != nil {
		return Size{}, err
	}
	return decodeSize(v.payload), nil
}

// SizeArray returns the size elements held by the value.
func (v *ControlValue) SizeArray() ([]Size, error) {
	if err := v.check(ControlTypeSize, true); err != nil {
		return nil, err
	}
	out := make([]Size, v.numElements)
	for i := range out {
		out[i] = decodeSize(v.payload[i*8:])
	}
	return out, nil
}

// PointValue returns the scalar point held by the value.
func (v *ControlValue) PointValue() (Point, error) {
	if err := v.check(ControlTypePoint, false); err != nil {
		return Point{}, err
	}
	return decodePoint(v.payload), nil
}

// PointArray returns the point elements held by the value.
func (v *ControlValue) PointArray() ([]Point, error) {
	if err := v.check(ControlTypePoint, true); err != nil {
		return nil, err
	}
	out := make([]Point, v.numElements)
	for i := range out {
		out[i] = decodePoint(v.payload[i*8:])
	}
	return out, nil
}

// Set stores val into v, inferring the control type from the Go type.
// Supported types are the scalar and slice forms of the ControlType kinds
// plus string and nil (which resets to "none"). Unsupported types are
// rejected with ErrUnsupportedType and leave v unchanged.
func (v *ControlValue) Set(val any) error {
	switch x := val.(type) {
	case nil:
		*v = ControlValue{}
	case bool:
		*v = NewBool(x)
	case []bool:
		*v = NewBoolArray(x)
	case uint8:
		*v = NewByte(x)
	case []uint8:
		*v = NewByteArray(x)
	case uint16:
		*v = NewUnsigned16(x)
	case []uint16:
		*v = NewUnsigned16Array(x)
	case uint32:
		*v = NewUnsigned32(x)
	case []uint32:
		*v = NewUnsigned32Array(x)
	case int32:
		*v = NewInteger32(x)
	case []int32:
		*v = NewInteger32Array(x)
	case int64:
		*v = NewInteger64(x)
	case []int64:
		*v = NewInteger64Array(x)
	case float32:
		*v = NewFloat(x)
	case []float32:
		*v = NewFloatArray(x)
	case string:
		*v = NewString(x)
	case Rectangle:
		*v = NewRectangle(x)
	case []Rectangle:
		*v = NewRectangleArray(x)
	case Size:
		*v = NewSize(x)
	case []Size:
		*v = NewSizeArray(x)
	case Point:
		*v = NewPoint(x)
	case []Point:
		*v = NewPointArray(x)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, val)
	}
	return nil
}

// Get returns the value as a Go scalar, slice, or string according to the
// stored type, or nil for the "none" state.
func (v *ControlValue) Get() any {
	if v.IsNone() {
		return nil
	}
	if v.typ == ControlTypeString {
		s, _ := v.StringValue()
		return s
	}
	if v.isArray {
		switch v.typ {
		case ControlTypeBool:
			out, _ := v.BoolArray()
			return out
		case ControlTypeByte:
			out, _ := v.ByteArray()
			return out
		case ControlTypeUnsigned16:
			out, _ := v.Unsigned16Array()
			return out
		case ControlTypeUnsigned32:
			out, _ := v.Unsigned32Array()
			return out
		case ControlTypeInteger32:
			out, _ := v.Integer32Array()
			return out
		case ControlTypeInteger64:
			out, _ := v.Integer64Array()
			return out
		case ControlTypeFloat:
			out, _ := v.FloatArray()
			return out
		case ControlTypeRectangle:
			out, _ := v.RectangleArray()
			return out
		case ControlTypeSize:
			out, _ := v.SizeArray()
			return out
		case ControlTypePoint:
			out, _ := v.PointArray()
			return out
		}
		return nil
	}
	switch v.typ {
	case ControlTypeBool:
		out, _ := v.Bool()
		return out
	case ControlTypeByte:
		out, _ := v.Byte()
		return out
	case ControlTypeUnsigned16:
		out, _ := v.Unsigned16()
		return out
	case ControlTypeUnsigned32:
		out, _ := v.Unsigned32()
		return out
	case ControlTypeInteger32:
		out, _ := v.Integer32()
		return out
	case ControlTypeInteger64:
		out, _ := v.Integer64()
		return out
	case ControlTypeFloat:
		out, _ := v.Float()
		return out
	case ControlTypeRectangle:
		out, _ := v.RectangleValue()
		return out
	case ControlTypeSize:
		out, _ := v.SizeValue()
		return out
	case ControlTypePoint:
		out, _ := v.PointValue()
		return out
	}
	return nil
}
