package ports

import (
	"context"

	"walt/internal/core/domain/model/delivery"
	"walt/internal/core/domain/model/driver"
	"walt/internal/core/domain/model/kernel"
)

// DeliveryRepository is the append-only delivery ledger.
type DeliveryRepository interface {
	// Add appends a new delivery. Deliveries are never updated.
	Add(ctx context.Context, d *delivery.Delivery) error

	// GetAll lists every delivery in creation order.
	GetAll(ctx context.Context) ([]*delivery.Delivery, error)

	// DriverDistances lists every driver with its total distance, longest first.
	// Drivers without deliveries are included with a zero total.
	DriverDistances(ctx context.Context) ([]driver.Mileage, error)

	// DriverDistancesByCity lists the drivers of cityID that made at least one
	// delivery, with their total distance, longest first.
	DriverDistancesByCity(ctx context.Context, cityID kernel.UUID) ([]driver.Mileage, error)
}
