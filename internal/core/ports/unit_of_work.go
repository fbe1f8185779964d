package ports

import (
	"context"

	"walt/internal/core/domain/model/kernel"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// LockCity serializes order placement in a city until the transaction ends,
	// so two concurrent orders cannot book the same driver for the same hour.
	// Returns errs.ObjectNotFoundError for an unknown city.
	LockCity(ctx context.Context, cityID kernel.UUID) error

	// Repositories bound to the transaction started by Begin().
	CityRepository() CityRepository
	CustomerRepository() CustomerRepository
	RestaurantRepository() RestaurantRepository
	DriverRepository() DriverRepository
	DeliveryRepository() DeliveryRepository
}
