package commands

import (
	"context"

	"walt/internal/core/domain/model/restaurant"
)

// CreateRestaurantCommandHandler registers restaurants in an existing city.
type CreateRestaurantCommandHandler struct {
	uowFactory DirectoryUoWFactory
}

// NewCreateRestaurantCommandHandler creates a handler for restaurant registration.
func NewCreateRestaurantCommandHandler(uowFactory DirectoryUoWFactory) CreateRestaurantCommandHandler {
	return CreateRestaurantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle persists the restaurant within a transaction.
// Returns errs.ObjectNotFoundError when the city does not exist.
func (h *CreateRestaurantCommandHandler) Handle(ctx context.Context, cmd CreateRestaurantCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := ensureCityExists(ctx, uow.CityRepository(), cmd.CityID()); err != nil {
		return err
	}

	restaurantEntity, err := restaurant.RestoreRestaurant(
		cmd.RestaurantID(), cmd.Name(), cmd.CityID(), cmd.Description(),
	)
	if err != nil {
		return err
	}

	if err = uow.RestaurantRepository().Add(ctx, restaurantEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
