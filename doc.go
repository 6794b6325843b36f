// Package camctl implements the control value and metadata model of a camera
// control subsystem: dynamically-typed tagged values, ordered control lists,
// and range descriptors, as used to describe and configure camera hardware
// parameters (exposure, gain, focus) without a schema fixed at compile time.
//
// The package is a pure in-memory library. It performs no I/O, never blocks,
// and owns no device state; device enumeration, frame capture, and the camera
// pipeline itself live elsewhere and consume these types.
//
// # Values
//
// ControlValue is the tagged union at the bottom of the model. It holds a
// scalar or array of one ControlType kind as raw bytes in the host's native
// layout, so payloads can cross the C API boundary unmodified:
//
//	v := camctl.NewInteger32(1500)
//	v.Type()         // camctl.ControlTypeInteger32
//	v.NumElements()  // 1
//	n, err := v.Integer32()
//
// Typed accessors return ErrTypeMismatch instead of panicking when the
// stored kind differs. Clone produces an independent deep copy; containers
// always copy values they take in or hand out.
//
// # Lists
//
// ControlList maps identifiers to values, preserving insertion order for
// iteration:
//
//	list := camctl.NewControlList()
//	list.Set(registry.ExposureTime, camctl.NewInteger32(20000))
//	list.Set(registry.AnalogueGain, camctl.NewFloat(2.0))
//
//	for it := list.Iterate(); !it.End(); it.Next() {
//	    fmt.Printf("%d = %s\n", it.ID(), it.Value())
//	}
//
// Set never validates; the camera stack's own validator is private and its
// list operations report nothing back, so storing an unsupported value
// succeeds silently. Callers needing early feedback run Validate against the
// control's ControlInfo before setting.
//
// # Ranges
//
// ControlInfo describes a control's legal domain: minimum, maximum, default,
// and an optional enumerated allowed-value set. Max is the one accessor with
// a failure mode: array and variable-length controls may have no
// representable maximum, reported as ErrNoMaximum and distinct from a
// maximum that is merely unset.
//
// The registry subpackage provides the static identifier tables and built-in
// ControlInfo descriptors; the capi subpackage exports the whole model over
// a flat C ABI for foreign callers.
//
// # Concurrency
//
// Nothing in this package is internally synchronized. Immutable data
// (ControlInfo, the registry tables) is safe for concurrent reads; a
// ControlList or ControlValue mutated from multiple goroutines needs
// external locking.
package camctl
