package camctl

import (
	"bytes"
	"errors"
	"testing"
)

// TestReserveShape verifies that after Reserve the tag fields and payload
// size agree for every control type and a range of element counts.
func TestReserveShape(t *testing.T) {
	kinds := []ControlType{
		ControlTypeBool, ControlTypeByte, ControlTypeUnsigned16,
		ControlTypeUnsigned32, ControlTypeInteger32, ControlTypeInteger64,
		ControlTypeFloat, ControlTypeString, ControlTypeRectangle,
		ControlTypeSize, ControlTypePoint,
	}
	counts := []int{0, 1, 2, 7, 64}

	for _, typ := range kinds {
		for _, n := range counts {
			var v ControlValue
			v.Reserve(typ, true, n)

			if v.Type() != typ {
				t.Errorf("Reserve(%s, true, %d): Type() = %s", typ, n, v.Type())
			}
			if v.NumElements() != n {
				t.Errorf("Reserve(%s, true, %d): NumElements() = %d", typ, n, v.NumElements())
			}
			if want := n * typ.ElementSize(); len(v.Raw()) != want {
				t.Errorf("Reserve(%s, true, %d): len(Raw()) = %d, want %d", typ, n, len(v.Raw()), want)
			}
			if !v.IsArray() {
				t.Errorf("Reserve(%s, true, %d): IsArray() = false", typ, n)
			}
		}
	}
}

// TestReserveNone verifies that reserving the none type yields the empty
// state regardless of the requested count, and that Reserve discards prior
// contents.
func TestReserveNone(t *testing.T) {
	v := NewInteger32(42)
	v.Reserve(ControlTypeNone, false, 9)

	if !v.IsNone() {
		t.Error("Reserve(None) should produce the none state")
	}
	if v.NumElements() != 0 || len(v.Raw()) != 0 {
		t.Errorf("none state should be empty, got %d elements, %d bytes", v.NumElements(), len(v.Raw()))
	}

	// Re-reserving resets contents to zero.
	v = NewByteArray([]byte{1, 2, 3})
	v.Reserve(ControlTypeByte, true, 3)
	if !bytes.Equal(v.Raw(), []byte{0, 0, 0}) {
		t.Errorf("Reserve should discard prior contents, got %v", v.Raw())
	}
}

// TestZeroValueIsNone verifies the zero ControlValue is the none state.
func TestZeroValueIsNone(t *testing.T) {
	var v ControlValue
	if !v.IsNone() || v.Type() != ControlTypeNone || v.NumElements() != 0 {
		t.Error("zero ControlValue should be none with no elements")
	}
	if v.IsArray() {
		t.Error("zero ControlValue should not be an array")
	}
}

// TestCloneIsDeep verifies that mutating a clone's payload never changes
// the original.
func TestCloneIsDeep(t *testing.T) {
	orig := NewInteger32Array([]int32{10, 20, 30})
	snapshot := make([]byte, len(orig.Raw()))
	copy(snapshot, orig.Raw())

	clone := orig.Clone()
	mutated := make([]byte, len(clone.Raw()))
	if err := clone.SetRaw(mutated); err != nil {
		t.Fatalf("SetRaw on clone failed: %v", err)
	}

	if !bytes.Equal(orig.Raw(), snapshot) {
		t.Error("mutating the clone changed the original payload")
	}
	if bytes.Equal(clone.Raw(), snapshot) {
		t.Error("clone payload was not mutated")
	}
}

// TestSetRawSizeChecked verifies that copy-in rejects buffers that do not
// match the reserved size exactly.
func TestSetRawSizeChecked(t *testing.T) {
	var v ControlValue
	v.Reserve(ControlTypeInteger32, true, 2)

	if err := v.SetRaw(make([]byte, 7)); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("short buffer: err = %v, want ErrSizeMismatch", err)
	}
	if err := v.SetRaw(make([]byte, 9)); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("long buffer: err = %v, want ErrSizeMismatch", err)
	}
	if err := v.SetRaw(make([]byte, 8)); err != nil {
		t.Errorf("exact buffer: err = %v, want nil", err)
	}
}

// TestTypedRoundTrips verifies each constructor/accessor pair preserves its
// input.
func TestTypedRoundTrips(t *testing.T) {
	t.Run("Bool", func(t *testing.T) {
		v := NewBool(true)
		got, err := v.Bool()
		if err != nil || got != true {
			t.Errorf("Bool() = %v, %v", got, err)
		}
	})

	t.Run("BoolArray", func(t *testing.T) {
		in := []bool{true, false, true}
		v := NewBoolArray(in)
		got, err := v.BoolArray()
		if err != nil {
			t.Fatalf("BoolArray() error: %v", err)
		}
		for i := range in {
			if got[i] != in[i] {
				t.Errorf("BoolArray()[%d] = %v, want %v", i, got[i], in[i])
			}
		}
	})

	t.Run("Byte", func(t *testing.T) {
		v := NewByte(0xA5)
		got, err := v.Byte()
		if err != nil || got != 0xA5 {
			t.Errorf("Byte() = %v, %v", got, err)
		}
	})

	t.Run("Unsigned16", func(t *testing.T) {
		v := NewUnsigned16(0xBEEF)
		got, err := v.Unsigned16()
		if err != nil || got != 0xBEEF {
			t.Errorf("Unsigned16() = %v, %v", got, err)
		}
	})

	t.Run("Unsigned32", func(t *testing.T) {
		v := NewUnsigned32(0xDEADBEEF)
		got, err := v.Unsigned32()
		if err != nil || got != 0xDEADBEEF {
			t.Errorf("Unsigned32() = %v, %v", got, err)
		}
	})

	t.Run("Integer32", func(t *testing.T) {
		v := NewInteger32(-20000)
		got, err := v.Integer32()
		if err != nil || got != -20000 {
			t.Errorf("Integer32() = %v, %v", got, err)
		}
	})

	t.Run("Integer64", func(t *testing.T) {
		v := NewInteger64(-1 << 40)
		got, err := v.Integer64()
		if err != nil || got != -1<<40 {
			t.Errorf("Integer64() = %v, %v", got, err)
		}
	})

	t.Run("Integer64Array", func(t *testing.T) {
		in := []int64{33333, -44444}
		v := NewInteger64Array(in)
		got, err := v.Integer64Array()
		if err != nil || got[0] != in[0] || got[1] != in[1] {
			t.Errorf("Integer64Array() = %v, %v", got, err)
		}
	})

	t.Run("Float", func(t *testing.T) {
		v := NewFloat(1.5)
		got, err := v.Float()
		if err != nil || got != 1.5 {
			t.Errorf("Float() = %v, %v", got, err)
		}
	})

	t.Run("FloatArray", func(t *testing.T) {
		in := []float32{0.5, 2.25, -8}
		v := NewFloatArray(in)
		got, err := v.FloatArray()
		if err != nil {
			t.Fatalf("FloatArray() error: %v", err)
		}
		for i := range in {
			if got[i] != in[i] {
				t.Errorf("FloatArray()[%d] = %v, want %v", i, got[i], in[i])
			}
		}
	})

	t.Run("String", func(t *testing.T) {
		v := NewString("imx477")
		got, err := v.StringValue()
		if err != nil || got != "imx477" {
			t.Errorf("StringValue() = %q, %v", got, err)
		}
		if v.NumElements() != 6 {
			t.Errorf("NumElements() = %d, want 6", v.NumElements())
		}
	})

	t.Run("Rectangle", func(t *testing.T) {
		in := Rectangle{X: 10, Y: 20, Width: 640, Height: 480}
		v := NewRectangle(in)
		got, err := v.RectangleValue()
		if err != nil || got != in {
			t.Errorf("RectangleValue() = %+v, %v", got, err)
		}
	})

	t.Run("RectangleArray", func(t *testing.T) {
		in := []Rectangle{{X: 0, Y: 0, Width: 64, Height: 64}, {X: 100, Y: 100, Width: 32, Height: 32}}
		v := NewRectangleArray(in)
		got, err := v.RectangleArray()
		if err != nil || got[0] != in[0] || got[1] != in[1] {
			t.Errorf("RectangleArray() = %+v, %v", got, err)
		}
	})

	t.Run("Size", func(t *testing.T) {
		in := Size{Width: 1920, Height: 1080}
		v := NewSize(in)
		got, err := v.SizeValue()
		if err != nil || got != in {
			t.Errorf("SizeValue() = %+v, %v", got, err)
		}
	})

	t.Run("Point", func(t *testing.T) {
		in := Point{X: -4, Y: 9}
		v := NewPoint(in)
		got, err := v.PointValue()
		if err != nil || got != in {
			t.Errorf("PointValue() = %+v, %v", got, err)
		}
	})
}

// TestTypedAccessorMismatch verifies that accessing a value as the wrong
// type or arrayness fails with ErrTypeMismatch instead of misreading bytes.
func TestTypedAccessorMismatch(t *testing.T) {
	v := NewInteger32(7)

	if _, err := v.Float(); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("Float() on int32 value: err = %v, want ErrTypeMismatch", err)
	}
	if _, err := v.Integer32Array(); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("Integer32Array() on scalar: err = %v, want ErrTypeMismatch", err)
	}

	arr := NewInteger32Array([]int32{1, 2})
	if _, err := arr.Integer32(); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("Integer32() on array: err = %v, want ErrTypeMismatch", err)
	}
}

// TestDynamicSetGet verifies the any-based setter and getter over a sample
// of the supported kinds, and rejection of unsupported types.
func TestDynamicSetGet(t *testing.T) {
	tests := []struct {
		name string
		in   any
		typ  ControlType
	}{
		{"bool", true, ControlTypeBool},
		{"int32", int32(-3), ControlTypeInteger32},
		{"int64 slice", []int64{1, 2}, ControlTypeInteger64},
		{"float32", float32(2.5), ControlTypeFloat},
		{"string", "ov5647", ControlTypeString},
		{"rectangle", Rectangle{X: 1, Y: 2, Width: 3, Height: 4}, ControlTypeRectangle},
		{"size slice", []Size{{Width: 640, Height: 480}}, ControlTypeSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v ControlValue
			if err := v.Set(tt.in); err != nil {
				t.Fatalf("Set(%v) error: %v", tt.in, err)
			}
			if v.Type() != tt.typ {
				t.Errorf("Type() = %s, want %s", v.Type(), tt.typ)
			}
			got := v.Get()
			switch want := tt.in.(type) {
			case []int64:
				gotSlice := got.([]int64)
				if gotSlice[0] != want[0] || gotSlice[1] != want[1] {
					t.Errorf("Get() = %v, want %v", got, want)
				}
			case []Size:
				gotSlice := got.([]Size)
				if gotSlice[0] != want[0] {
					t.Errorf("Get() = %v, want %v", got, want)
				}
			default:
				if got != tt.in {
					t.Errorf("Get() = %v, want %v", got, tt.in)
				}
			}
		})
	}

	t.Run("unsupported", func(t *testing.T) {
		var v ControlValue
		if err := v.Set(struct{}{}); !errors.Is(err, ErrUnsupportedType) {
			t.Errorf("Set(struct{}{}): err = %v, want ErrUnsupportedType", err)
		}
	})

	t.Run("nil resets", func(t *testing.T) {
		v := NewFloat(1)
		if err := v.Set(nil); err != nil {
			t.Fatalf("Set(nil) error: %v", err)
		}
		if !v.IsNone() || v.Get() != nil {
			t.Error("Set(nil) should reset to none")
		}
	})
}

// TestValueEqual verifies equality covers tag, shape, and payload.
func TestValueEqual(t *testing.T) {
	a := NewInteger32(5)
	b := NewInteger32(5)
	c := NewInteger32(6)
	d := NewUnsigned32(5)
	arr := NewInteger32Array([]int32{5})

	if !a.Equal(&b) {
		t.Error("identical values should be equal")
	}
	if a.Equal(&c) {
		t.Error("different payloads should not be equal")
	}
	if a.Equal(&d) {
		t.Error("different types should not be equal")
	}
	if a.Equal(&arr) {
		t.Error("scalar and array should not be equal")
	}
}

// TestValueString verifies the debug formatting for scalars, arrays,
// strings, and the none state.
func TestValueString(t *testing.T) {
	tests := []struct {
		name  string
		value ControlValue
		want  string
	}{
		{"none", ControlValue{}, "<none>"},
		{"bool", NewBool(true), "true"},
		{"int64", NewInteger64(-9), "-9"},
		{"array", NewInteger32Array([]int32{1, 2}), "[ 1, 2 ]"},
		{"string", NewString("imx708"), "imx708"},
		{"rectangle", NewRectangle(Rectangle{X: 0, Y: 0, Width: 64, Height: 48}), "(0, 0)/64x48"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
