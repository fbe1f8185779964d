// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"walt/internal/core/domain/model/kernel"
	"walt/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CityLocker serializes order placement per city within a transaction.
	CityLocker interface {
		LockCity(ctx context.Context, cityID kernel.UUID) error
	}

	CityRepoFactory interface {
		CityRepository() ports.CityRepository
	}

	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	RestaurantRepoFactory interface {
		RestaurantRepository() ports.RestaurantRepository
	}

	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// CityUoW manages transactions for city registration.
	CityUoW interface {
		TxManager
		CityRepoFactory
	}

	// CityUoWFactory creates new city unit of work instances.
	CityUoWFactory interface {
		Create() CityUoW
	}

	// DirectoryUoW manages transactions for registering drivers, customers and
	// restaurants, which all check that their city exists.
	DirectoryUoW interface {
		TxManager
		CityRepoFactory
		CustomerRepoFactory
		RestaurantRepoFactory
		DriverRepoFactory
	}

	// DirectoryUoWFactory creates new directory unit of work instances.
	DirectoryUoWFactory interface {
		Create() DirectoryUoW
	}

	// UoW manages order placement, which reads the directory and appends to the ledger.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   err = uow.LockCity(ctx, restaurant.CityID())
	//   candidates, err := uow.DriverRepository().FindAvailable(ctx, restaurant.CityID(), at)
	//   // ... assign
	//   err = uow.DeliveryRepository().Add(ctx, d)
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		CityLocker
		CityRepoFactory
		CustomerRepoFactory
		RestaurantRepoFactory
		DriverRepoFactory
		DeliveryRepoFactory
	}

	// UoWFactory creates new unit of work instances for order placement.
	UoWFactory interface {
		Create() UoW
	}
)
