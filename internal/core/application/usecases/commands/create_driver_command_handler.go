package commands

import (
	"context"

	"walt/internal/core/domain/model/driver"
	"walt/internal/core/domain/model/kernel"
	"walt/internal/core/ports"
)

// CreateDriverCommandHandler registers drivers in an existing city.
type CreateDriverCommandHandler struct {
	uowFactory DirectoryUoWFactory
}

// NewCreateDriverCommandHandler creates a handler for driver registration.
func NewCreateDriverCommandHandler(uowFactory DirectoryUoWFactory) CreateDriverCommandHandler {
	return CreateDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle persists the driver within a transaction.
// Returns errs.ObjectNotFoundError when the city does not exist.
func (h *CreateDriverCommandHandler) Handle(ctx context.Context, cmd CreateDriverCommand) error {
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

	driverEntity, err := driver.RestoreDriver(cmd.DriverID(), cmd.Name(), cmd.CityID())
	if err != nil {
		return err
	}

	if err = uow.DriverRepository().Add(ctx, driverEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func ensureCityExists(ctx context.Context, repo ports.CityRepository, cityID kernel.UUID) error {
	_, err := repo.Get(ctx, cityID)
	return err
}
