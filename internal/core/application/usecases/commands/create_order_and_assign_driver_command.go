package commands

import (
	"errors"
	"time"

	"walt/internal/core/domain/model/delivery"
	"walt/internal/core/domain/model/kernel"
	"walt/internal/pkg/guard"
)

var ErrCreateOrderAndAssignDriverCommandIsNotConstructed = errors.New(
	"CreateOrderAndAssignDriverCommand must be created via NewCreateOrderAndAssignDriverCommand constructor",
)

// CreateOrderAndAssignDriverCommand places an order of a customer at a restaurant
// for a given delivery time and assigns it to a driver.
//
// Example:
//
//	cmd, err := NewCreateOrderAndAssignDriverCommand(customerID, restaurantID, at)
//	if err != nil {
//	    return fmt.Errorf("invalid order: %w", err)
//	}
//
//	d, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrNoAvailableDrivers) {
//	    // every driver of the city is busy at that hour
//	}
type CreateOrderAndAssignDriverCommand struct { //nolint:recvcheck //using for validation
	customerID   kernel.UUID
	restaurantID kernel.UUID
	deliveryTime time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderAndAssignDriverCommand validates that both ids are set and the delivery time is not zero.
func NewCreateOrderAndAssignDriverCommand(
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	deliveryTime time.Time,
) (CreateOrderAndAssignDriverCommand, error) {
	command := CreateOrderAndAssignDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(customerID),
		command.setRestaurantID(restaurantID),
		command.setDeliveryTime(deliveryTime),
	); err != nil {
		return CreateOrderAndAssignDriverCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderAndAssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderAndAssignDriverCommandIsNotConstructed)
}

func (c CreateOrderAndAssignDriverCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c CreateOrderAndAssignDriverCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// DeliveryTime returns the requested delivery time. Its slot is the hour on kernel.Calendar().
func (c CreateOrderAndAssignDriverCommand) DeliveryTime() time.Time {
	return c.deliveryTime
}

func (c *CreateOrderAndAssignDriverCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.customerID = id
	return nil
}

func (c *CreateOrderAndAssignDriverCommand) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.restaurantID = id
	return nil
}

func (c *CreateOrderAndAssignDriverCommand) setDeliveryTime(at time.Time) error {
	if at.IsZero() {
		return delivery.ErrDeliveryTimeIsRequired
	}

	c.deliveryTime = at
	return nil
}
