package commands

import (
	"context"
	"errors"
	"fmt"

	"walt/internal/core/domain/model/city"
	"walt/internal/pkg/errs"
)

// ErrCityAlreadyExists is returned when a city with the same name is already registered.
var ErrCityAlreadyExists = errors.New("city already exists")

// CreateCityCommandHandler registers cities. City names are unique.
type CreateCityCommandHandler struct {
	uowFactory CityUoWFactory
}

// NewCreateCityCommandHandler creates a handler for city registration.
func NewCreateCityCommandHandler(uowFactory CityUoWFactory) CreateCityCommandHandler {
	return CreateCityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle persists the city within a transaction.
// Returns ErrCityAlreadyExists when the name is taken.
func (h *CreateCityCommandHandler) Handle(ctx context.Context, cmd CreateCityCommand) error {
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

	cityRepo := uow.CityRepository()
	_, err := cityRepo.GetByName(ctx, cmd.Name())
	switch {
	case err == nil:
		return fmt.Errorf("%w: %s", ErrCityAlreadyExists, cmd.Name())
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	cityEntity, err := city.RestoreCity(cmd.CityID(), cmd.Name())
	if err != nil {
		return err
	}

	if err = cityRepo.Add(ctx, cityEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
