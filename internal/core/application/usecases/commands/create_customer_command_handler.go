package commands

import (
	"context"

	"walt/internal/core/domain/model/customer"
)

// CreateCustomerCommandHandler registers customers in an existing city.
type CreateCustomerCommandHandler struct {
	uowFactory DirectoryUoWFactory
}

// NewCreateCustomerCommandHandler creates a handler for customer registration.
func NewCreateCustomerCommandHandler(uowFactory DirectoryUoWFactory) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle persists the customer within a transaction.
// Returns errs.ObjectNotFoundError when the city does not exist.
func (h *CreateCustomerCommandHandler) Handle(ctx context.Context, cmd CreateCustomerCommand) error {
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

	customerEntity, err := customer.RestoreCustomer(cmd.CustomerID(), cmd.Name(), cmd.CityID(), cmd.Description())
	if err != nil {
		return err
	}

	if err = uow.CustomerRepository().Save(ctx, customerEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
