package camctl

import (
	"encoding/binary"
	"fmt"
)

// Rectangle describes a rectangular region in pixel coordinates. The origin
// is the top-left corner; X and Y may be negative when the rectangle is
// expressed relative to another frame of reference.
//
// The in-memory layout (two int32 followed by two uint32, native endianness)
// matches the camera stack's rectangle representation so that raw value
// payloads can cross the C API boundary unmodified.
type Rectangle struct {
	X      int32
	Y      int32
	Width  uint32
	Height uint32
}

// IsNull reports whether the rectangle has zero width and zero height.
func (r Rectangle) IsNull() bool {
	return r.Width == 0 && r.Height == 0
}

// String returns the rectangle in "(x, y)/widthxheight" form.
func (r Rectangle) String() string {
	return fmt.Sprintf("(%d, %d)/%dx%d", r.X, r.Y, r.Width, r.Height)
}

// Size describes a two-dimensional extent in pixels.
type Size struct {
	Width  uint32
	Height uint32
}

// IsNull reports whether the size has zero width and zero height.
func (s Size) IsNull() bool {
	return s.Width == 0 && s.Height == 0
}

// String returns the size in "widthxheight" form.
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Point describes a pixel location. Coordinates may be negative when the
// point is expressed relative to another frame of reference.
type Point struct {
	X int32
	Y int32
}

// IsNull reports whether the point is the origin.
func (p Point) IsNull() bool {
	return p.X == 0 && p.Y == 0
}

// String returns the point in "(x, y)" form.
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// encodeRectangle writes r into dst using the native element layout.
// dst must be at least rectangle-sized; callers size it via ElementSize.
func encodeRectangle(dst []byte, r Rectangle) {
	binary.NativeEndian.PutUint32(dst[0:], uint32(r.X))
	binary.NativeEndian.PutUint32(dst[4:], uint32(r.Y))
	binary.NativeEndian.PutUint32(dst[8:], r.Width)
	binary.NativeEndian.PutUint32(dst[12:], r.Height)
}

func decodeRectangle(src []byte) Rectangle {
	return Rectangle{
		X:      int32(binary.NativeEndian.Uint32(src[0:])),
		Y:      int32(binary.NativeEndian.Uint32(src[4:])),
		Width:  binary.NativeEndian.Uint32(src[8:]),
		Height: binary.NativeEndian.Uint32(src[12:]),
	}
}

func encodeSize(dst []byte, s Size) {
	binary.NativeEndian.PutUint32(dst[0:], s.Width)
	binary.NativeEndian.PutUint32(dst[4:], s.Height)
}

func decodeSize(src []byte) Size {
	return Size{
		Width:  binary.NativeEndian.Uint32(src[0:]),
		Height: binary.NativeEndian.Uint32(src[4:]),
	}
}

func encodePoint(dst []byte, p Point) {
	binary.NativeEndian.PutUint32(dst[0:], uint32(p.X))
	binary.NativeEndian.PutUint32(dst[4:], uint32(p.Y))
}

func decodePoint(src []byte) Point {
	return Point{
		X: int32(binary.NativeEndian.Uint32(src[0:])),
		Y: int32(binary.NativeEndian.Uint32(src[4:])),
	}
}
