package services

import (
	"context"
	"errors"
	"time"

	"walt/internal/core/domain/model/customer"
	"walt/internal/core/domain/model/delivery"
	"walt/internal/core/domain/model/driver"
	"walt/internal/core/domain/model/kernel"
	"walt/internal/core/domain/model/restaurant"
)

// ErrNoAvailableDrivers is returned when every driver of the city is busy at the requested hour.
var ErrNoAvailableDrivers = errors.New("no available drivers")

// DistanceEstimator estimates the route length of an order.
type DistanceEstimator interface {
	EstimateDistance(ctx context.Context, cust *customer.Customer, rest *restaurant.Restaurant) (kernel.Distance, error)
}

// DeliveryAssigner decides whether an order can be placed and, if so,
// builds the Delivery for the least-loaded available driver.
//
// Business rules:
//   - Customer and restaurant must be in the same city
//   - Candidates come ordered least loaded first; the first one wins
//   - Distance is estimated once, at assignment
//
// Example usage:
//
//	assigner := services.NewDeliveryAssigner(estimator)
//	candidates, _ := drivers.FindAvailable(ctx, rest.CityID(), at)
//	d, err := assigner.Assign(ctx, cust, rest, at, candidates)
//	switch {
//	case errors.Is(err, delivery.ErrCityMismatch):
//	case errors.Is(err, services.ErrNoAvailableDrivers):
//	}
type DeliveryAssigner struct {
	estimator DistanceEstimator
}

// NewDeliveryAssigner creates a DeliveryAssigner using estimator for distances.
func NewDeliveryAssigner(estimator DistanceEstimator) DeliveryAssigner {
	return DeliveryAssigner{estimator: estimator}
}

// Assign picks the first candidate and builds its Delivery.
//
// Returns:
//   - delivery.ErrCityMismatch if customer and restaurant live in different cities
//   - ErrNoAvailableDrivers if candidates is empty
//   - estimator or validation errors otherwise
func (a DeliveryAssigner) Assign(
	ctx context.Context,
	cust *customer.Customer,
	rest *restaurant.Restaurant,
	deliveryTime time.Time,
	candidates []driver.Load,
) (*delivery.Delivery, error) {
	if err := errors.Join(cust.Validate(), rest.Validate()); err != nil {
		return nil, err
	}
	if !cust.CityID().IsEqual(rest.CityID()) {
		return nil, delivery.ErrCityMismatch
	}

	chosen, err := a.pickDriver(candidates)
	if err != nil {
		return nil, err
	}

	distance, err := a.estimator.EstimateDistance(ctx, cust, rest)
	if err != nil {
		return nil, err
	}

	return delivery.NewDelivery(chosen, rest, cust, deliveryTime, distance)
}

// pickDriver returns the head of candidates, which callers keep least loaded first.
func (a DeliveryAssigner) pickDriver(candidates []driver.Load) (*driver.Driver, error) {
	if len(candidates) == 0 {
		return nil, ErrNoAvailableDrivers
	}

	chosen := candidates[0].Driver
	if err := chosen.Validate(); err != nil {
		return nil, err
	}
	return chosen, nil
}
