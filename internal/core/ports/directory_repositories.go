package ports

import (
	"context"

	"walt/internal/core/domain/model/city"
	"walt/internal/core/domain/model/customer"
	"walt/internal/core/domain/model/kernel"
	"walt/internal/core/domain/model/restaurant"
)

// CityRepository stores the cities of the directory.
type CityRepository interface {
	Add(ctx context.Context, c *city.City) error
	Get(ctx context.Context, id kernel.UUID) (*city.City, error)
	// GetByName returns errs.ObjectNotFoundError when no city has this name.
	GetByName(ctx context.Context, name string) (*city.City, error)
	GetAll(ctx context.Context) ([]*city.City, error)
}

// CustomerRepository is the customer directory.
type CustomerRepository interface {
	// Save inserts the customer or updates it in place. Calling it again with
	// the same customer has no further effect.
	Save(ctx context.Context, c *customer.Customer) error
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
}

// RestaurantRepository stores the restaurants of the directory.
type RestaurantRepository interface {
	Add(ctx context.Context, r *restaurant.Restaurant) error
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)
}
