// Package main provides C API bindings for camctl, exposing the control
// value, control list, control info, and identifier registry model to C
// applications and foreign-language bindings over a flat function-call
// boundary.
//
// # Overview
//
// The package builds with -buildmode=c-shared. Every camctl object that
// crosses the boundary travels as an opaque handle: an unsafe.Pointer to an
// integer id resolved through package-level maps. Handles returned by a
// camctl_*_create function, by list get/iteration, or by control info
// accessors are owned by the caller and must be released with the matching
// destroy function. This differs from the in-process C++ API, where list and
// info accessors hand out borrowed pointers; a shared library cannot safely
// lend interior pointers into Go memory, so accessors return owned copies
// instead.
//
// # Error policy
//
// No failure crosses the boundary as anything but a sentinel. Absent
// identifiers and absent list entries return null or the none/zero sentinel
// of the return type. A control info with no representable maximum reports
// null from camctl_control_info_max; the underlying condition is logged.
// Raw buffer copies return -1 on size mismatch. Nothing in this package
// panics across an exported function.
//
// # Concurrency
//
// The handle tables are guarded by a read-write mutex, so handle resolution
// is safe from any thread. The objects behind the handles follow camctl's
// rules: concurrent mutation of one list or value requires caller-side
// locking.
package main
