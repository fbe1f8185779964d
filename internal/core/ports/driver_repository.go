// Package ports defines the persistence contracts between the walt domain and
// its infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"walt/internal/core/domain/model/driver"
	"walt/internal/core/domain/model/kernel"
)

// DriverRepository is the driver directory.
type DriverRepository interface {
	// Add persists a new driver.
	Add(ctx context.Context, d *driver.Driver) error

	// Get retrieves a driver by id.
	// Returns errs.ObjectNotFoundError when the driver does not exist.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetAllByCity lists the drivers whose home city is cityID, in creation order.
	GetAllByCity(ctx context.Context, cityID kernel.UUID) ([]*driver.Driver, error)

	// FindAvailable lists the drivers of cityID that have no delivery in the
	// same hour-of-day as deliveryTime, ascending by total delivery count.
	// Ties keep creation order.
	//
	// Example:
	//   candidates, err := repo.FindAvailable(ctx, restaurant.CityID(), at)
	//   if len(candidates) == 0 {
	//       // every driver of the city is busy at this hour
	//   }
	FindAvailable(ctx context.Context, cityID kernel.UUID, deliveryTime time.Time) ([]driver.Load, error)
}
