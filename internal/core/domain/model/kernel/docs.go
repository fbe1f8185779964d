// Package kernel provides core domain primitives shared by every aggregate of
// the walt domain model.
//
// The package includes:
//   - UUID: a time-ordered identifier value object
//   - Distance: a non-negative route length in kilometres
//   - HourOfDay and the conflict window used for driver scheduling
//
// All values are immutable and must be built through their constructors; the
// zero values fail validation.
package kernel
