package commands

import (
	"errors"
	"strings"

	"walt/internal/core/domain/model/kernel"
	"walt/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CreateCustomerCommand registers a customer located in one city.
// The description is optional free text.
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID  kernel.UUID
	name        string
	cityID      kernel.UUID
	description string

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates a command to register a customer.
// Automatically generates a unique ID for the customer.
func NewCreateCustomerCommand(name string, cityID kernel.UUID, description string) (CreateCustomerCommand, error) {
	command := CreateCustomerCommand{
		description: strings.TrimSpace(description),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(kernel.NewUUID()),
		command.setName(name),
		command.setCityID(cityID),
	); err != nil {
		return CreateCustomerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

func (c CreateCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c CreateCustomerCommand) Name() string {
	return c.name
}

func (c CreateCustomerCommand) CityID() kernel.UUID {
	return c.cityID
}

func (c CreateCustomerCommand) Description() string {
	return c.description
}

func (c *CreateCustomerCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.customerID = id
	return nil
}

func (c *CreateCustomerCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateCustomerCommand) setCityID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.cityID = id
	return nil
}
