package commands

import (
	"errors"
	"strings"

	"walt/internal/core/domain/model/kernel"
	"walt/internal/pkg/guard"
)

var ErrCreateDriverCommandIsNotConstructed = errors.New(
	"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
)

// CreateDriverCommand registers a driver working in one city.
//
// Example:
//
//	cmd, err := NewCreateDriverCommand("Mary", telAvivID)
//	if err != nil {
//	    return fmt.Errorf("invalid driver: %w", err)
//	}
//	err = handler.Handle(ctx, cmd)
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	name     string
	cityID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateDriverCommand creates a command to register a driver.
// Automatically generates a unique ID for the driver.
func NewCreateDriverCommand(name string, cityID kernel.UUID) (CreateDriverCommand, error) {
	command := CreateDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDriverID(kernel.NewUUID()),
		command.setName(name),
		command.setCityID(cityID),
	); err != nil {
		return CreateDriverCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

func (c CreateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c CreateDriverCommand) Name() string {
	return c.name
}

func (c CreateDriverCommand) CityID() kernel.UUID {
	return c.cityID
}

func (c *CreateDriverCommand) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.driverID = id
	return nil
}

func (c *CreateDriverCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateDriverCommand) setCityID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.cityID = id
	return nil
}
