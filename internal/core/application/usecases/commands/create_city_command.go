package commands

import (
	"errors"
	"strings"

	"walt/internal/core/domain/model/kernel"
	"walt/internal/pkg/guard"
)

var (
	ErrCreateCityCommandIsNotConstructed = errors.New(
		"CreateCityCommand must be created via NewCreateCityCommand constructor",
	)
	ErrNameIsRequired = errors.New("name is required")
)

// CreateCityCommand registers a new city in the directory.
//
// Example:
//
//	cmd, err := NewCreateCityCommand("Tel-Aviv")
//	if err != nil {
//	    return fmt.Errorf("invalid city: %w", err)
//	}
//
//	handler := NewCreateCityCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create city: %w", err)
//	}
//	fmt.Printf("Created city with ID: %s", cmd.CityID())
type CreateCityCommand struct { //nolint:recvcheck //using for validation
	cityID kernel.UUID
	name   string

	guard guard.ConstructorGuard
}

// NewCreateCityCommand creates a command to register a city.
// Automatically generates a unique ID for the city.
func NewCreateCityCommand(name string) (CreateCityCommand, error) {
	command := CreateCityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCityID(kernel.NewUUID()),
		command.setName(name),
	); err != nil {
		return CreateCityCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCityCommand) Validate() error {
	return c.guard.Validate(ErrCreateCityCommandIsNotConstructed)
}

// CityID returns the id the city will be stored under.
func (c CreateCityCommand) CityID() kernel.UUID {
	return c.cityID
}

func (c CreateCityCommand) Name() string {
	return c.name
}

func (c *CreateCityCommand) setCityID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.cityID = id
	return nil
}

func (c *CreateCityCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}
