// Package distance provides DistanceEstimator implementations.
//
// There is no routing backend: RandomEstimator draws a uniform value, which
// stands in for a real route length until one is wired.
package distance

import (
	"context"
	"math"
	"math/rand/v2"

	"walt/internal/core/domain/model/customer"
	"walt/internal/core/domain/model/kernel"
	"walt/internal/core/domain/model/restaurant"
	"walt/internal/pkg/errs"
)

// DefaultMaxDistance is the exclusive upper bound of random distances, in kilometres.
const DefaultMaxDistance = 20.0

// RandomEstimator returns distances uniformly distributed in [0, max).
type RandomEstimator struct {
	max float64
}

// NewRandomEstimator creates an estimator drawing from [0, maxKm).
func NewRandomEstimator(maxKm float64) (*RandomEstimator, error) {
	if !(maxKm > 0) || math.IsInf(maxKm, 1) {
		return nil, errs.NewValueIsOutOfRangeError("maxKm", maxKm, "0 (exclusive)", math.MaxFloat64)
	}
	return &RandomEstimator{max: maxKm}, nil
}

func (e *RandomEstimator) EstimateDistance(
	_ context.Context,
	_ *customer.Customer,
	_ *restaurant.Restaurant,
) (kernel.Distance, error) {
	return kernel.NewDistance(rand.Float64() * e.max) //nolint:gosec // not security sensitive
}

// FixedEstimator always returns the same distance.
type FixedEstimator struct {
	distance kernel.Distance
}

// NewFixedEstimator creates an estimator that reports km for every order.
func NewFixedEstimator(km float64) (*FixedEstimator, error) {
	d, err := kernel.NewDistance(km)
	if err != nil {
		return nil, err
	}
	return &FixedEstimator{distance: d}, nil
}

func (e *FixedEstimator) EstimateDistance(
	_ context.Context,
	_ *customer.Customer,
	_ *restaurant.Restaurant,
) (kernel.Distance, error) {
	return e.distance, nil
}
