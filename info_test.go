package camctl

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInfoBounds verifies the plain accessors of a bounded descriptor.
func TestInfoBounds(t *testing.T) {
	info := NewControlInfo(NewFloat(-1), NewFloat(1), NewFloat(0))

	min := info.Min()
	f, err := min.Float()
	require.NoError(t, err)
	assert.Equal(t, float32(-1), f)

	max, err := info.Max()
	require.NoError(t, err)
	f, err = max.Float()
	require.NoError(t, err)
	assert.Equal(t, float32(1), f)

	def := info.Def()
	f, err = def.Float()
	require.NoError(t, err)
	assert.Equal(t, float32(0), f)

	assert.Empty(t, info.Values(), "bounded descriptor should have no enumerated set")
}

// TestInfoNoMaximum verifies that an unbounded descriptor reports
// ErrNoMaximum, distinguishable from a bounded descriptor whose maximum is
// simply unset.
func TestInfoNoMaximum(t *testing.T) {
	unbounded := NewUnboundedControlInfo(NewFloat(0), ControlValue{})
	_, err := unbounded.Max()
	assert.True(t, errors.Is(err, ErrNoMaximum), "Max() = %v, want ErrNoMaximum", err)

	// A bounded descriptor with an unset maximum is a different, valid
	// absence: a none value and no error.
	bounded := NewControlInfo(NewFloat(0), ControlValue{}, ControlValue{})
	max, err := bounded.Max()
	require.NoError(t, err)
	assert.True(t, max.IsNone())
}

// TestInfoValuesDerivesBounds verifies enumerated descriptors take min and
// max from the first and last allowed value.
func TestInfoValuesDerivesBounds(t *testing.T) {
	info := NewControlInfoValues(
		[]ControlValue{NewInteger32(0), NewInteger32(1), NewInteger32(2)},
		NewInteger32(0))

	min := info.Min()
	n, err := min.Integer32()
	require.NoError(t, err)
	assert.Equal(t, int32(0), n)

	max, err := info.Max()
	require.NoError(t, err)
	n, err = max.Integer32()
	require.NoError(t, err)
	assert.Equal(t, int32(2), n)

	vals := info.Values()
	require.Len(t, vals, 3)
	n, err = vals[1].Integer32()
	require.NoError(t, err)
	assert.Equal(t, int32(1), n)
}

// TestInfoValuesCallerOwned verifies Values returns an independent deep
// copy each call.
func TestInfoValuesCallerOwned(t *testing.T) {
	info := NewControlInfoValues([]ControlValue{NewInteger32(5)}, NewInteger32(5))

	first := info.Values()
	require.Len(t, first, 1)
	require.NoError(t, first[0].SetRaw([]byte{0, 0, 0, 0}))

	second := info.Values()
	require.Len(t, second, 1)
	n, err := second[0].Integer32()
	require.NoError(t, err)
	assert.Equal(t, int32(5), n, "mutating a returned set must not affect the descriptor")
}

// TestInfoAccessorsCopy verifies Min/Def hand out copies, not views of the
// descriptor's storage.
func TestInfoAccessorsCopy(t *testing.T) {
	info := NewControlInfo(NewInteger32(1), NewInteger32(9), NewInteger32(3))

	min := info.Min()
	require.NoError(t, min.SetRaw([]byte{0, 0, 0, 0}))

	again := info.Min()
	n, err := again.Integer32()
	require.NoError(t, err)
	assert.Equal(t, int32(1), n)
}

// TestInfoString verifies the debug rendering of bounded, unbounded, and
// defaulted descriptors.
func TestInfoString(t *testing.T) {
	bounded := NewControlInfo(NewInteger32(0), NewInteger32(8), NewInteger32(2))
	assert.Equal(t, "[0..8] (default: 2)", bounded.String())

	unbounded := NewUnboundedControlInfo(NewInteger32(0), ControlValue{})
	assert.Equal(t, "[0..<unbounded>]", unbounded.String())
}

// TestInfoMap verifies insertion-ordered enumeration and absent lookups.
func TestInfoMap(t *testing.T) {
	m := NewControlInfoMap()
	m.Insert(9, NewControlInfo(NewBool(false), NewBool(true), NewBool(true)))
	m.Insert(4, NewUnboundedControlInfo(ControlValue{}, ControlValue{}))
	m.Insert(9, NewControlInfo(NewBool(false), NewBool(true), NewBool(false))) // replace

	assert.Equal(t, 2, m.Len())
	assert.Equal(t, []uint32{9, 4}, m.IDs())

	info, ok := m.Get(9)
	require.True(t, ok)
	def := info.Def()
	b, err := def.Bool()
	require.NoError(t, err)
	assert.False(t, b, "replacement descriptor should be visible")

	_, ok = m.Get(77)
	assert.False(t, ok)
}
