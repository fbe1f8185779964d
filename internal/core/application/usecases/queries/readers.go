// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models shaped for the HTTP API and the CLI.
package queries

import (
	"context"
	"time"

	"walt/internal/core/domain/model/delivery"
	"walt/internal/core/domain/model/driver"
	"walt/internal/core/domain/model/kernel"
)

// Readers are the slices of the persistence ports each query handler needs.
// ports.DeliveryRepository and ports.DriverRepository satisfy them.
type (
	DriverRankReader interface {
		DriverDistances(ctx context.Context) ([]driver.Mileage, error)
		DriverDistancesByCity(ctx context.Context, cityID kernel.UUID) ([]driver.Mileage, error)
	}

	DeliveryReader interface {
		GetAll(ctx context.Context) ([]*delivery.Delivery, error)
	}

	AvailabilityReader interface {
		FindAvailable(ctx context.Context, cityID kernel.UUID, deliveryTime time.Time) ([]driver.Load, error)
	}
)
