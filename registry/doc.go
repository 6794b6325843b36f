// Package registry provides the static identifier tables of the camera
// control subsystem: the read-only mapping from unsigned identifier to
// (name, control type) metadata, partitioned into two independent
// namespaces.
//
// # Namespaces
//
// Controls are runtime-adjustable camera parameters such as ExposureTime or
// AnalogueGain; properties are read-only facts about a device such as Model
// or PixelArraySize. The two namespaces share identifier values but never
// meaning: control 3 and property 3 are unrelated. Which namespace a lookup
// targets is implied by the function called:
//
//	name, ok := registry.ControlName(registry.ExposureTime) // "ExposureTime", true
//	typ := registry.ControlType(registry.ExposureTime)      // camctl.ControlTypeInteger32
//
//	name, ok = registry.PropertyName(registry.Model)        // "Model", true
//
// Lookups for identifiers the tables do not contain return absent ("" and
// false, or the ControlTypeNone sentinel) rather than failing: unknown
// vendor identifiers are expected traffic, not errors.
//
// # Range descriptors
//
// ControlInfos returns the built-in camctl.ControlInfoMap carrying range
// descriptors for the controls whose domains the camera stack documents,
// including enumerated mode controls and array controls with no
// representable maximum.
//
// # Concurrency
//
// All tables are populated at package initialization and never mutated
// afterwards; every function is safe for unsynchronized concurrent use.
package registry
