package kernel

import (
	"math"

	"walt/internal/pkg/errs"
	"walt/internal/pkg/guard"
)

// ErrDistanceIsNotConstructed is returned when a zero-value Distance is used.
var ErrDistanceIsNotConstructed = errs.NewValueIsRequiredError("distance must be created via NewDistance")

// Distance is the length of a delivery route in kilometres.
// It is a non-negative, finite real number and immutable once built.
type Distance struct {
	km    float64
	guard guard.ConstructorGuard
}

// NewDistance builds a Distance, rejecting negative, NaN and infinite values.
//
// Example:
//
//	d, err := kernel.NewDistance(12.7)
//	d.Truncated() // 12
func NewDistance(km float64) (Distance, error) {
	if math.IsNaN(km) || math.IsInf(km, 0) || km < 0 {
		return Distance{}, errs.NewValueIsOutOfRangeError("distance", km, 0, math.MaxFloat64)
	}
	return Distance{km: km, guard: guard.NewConstructorGuard()}, nil
}

// Kilometres returns the raw value.
func (d Distance) Kilometres() float64 {
	return d.km
}

// Truncated returns the whole kilometres with the fractional part discarded (not rounded).
func (d Distance) Truncated() int64 {
	return int64(d.km)
}

// Add returns the sum of both distances.
func (d Distance) Add(other Distance) Distance {
	return Distance{km: d.km + other.km, guard: guard.NewConstructorGuard()}
}

// Validate reports whether the Distance came from NewDistance.
func (d Distance) Validate() error {
	return d.guard.Validate(ErrDistanceIsNotConstructed)
}

// ZeroDistance is the distance of a driver with no deliveries.
func ZeroDistance() Distance {
	return Distance{guard: guard.NewConstructorGuard()}
}
