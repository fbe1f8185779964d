package commands

import (
	"errors"
	"strings"

	"walt/internal/core/domain/model/kernel"
	"walt/internal/pkg/guard"
)

var ErrCreateRestaurantCommandIsNotConstructed = errors.New(
	"CreateRestaurantCommand must be created via NewCreateRestaurantCommand constructor",
)

// CreateRestaurantCommand registers a restaurant located in one city.
// The description is optional free text.
type CreateRestaurantCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	name         string
	cityID       kernel.UUID
	description  string

	guard guard.ConstructorGuard
}

// NewCreateRestaurantCommand creates a command to register a restaurant.
// Automatically generates a unique ID for the restaurant.
func NewCreateRestaurantCommand(name string, cityID kernel.UUID, description string) (CreateRestaurantCommand, error) {
	command := CreateRestaurantCommand{
		description: strings.TrimSpace(description),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRestaurantID(kernel.NewUUID()),
		command.setName(name),
		command.setCityID(cityID),
	); err != nil {
		return CreateRestaurantCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrCreateRestaurantCommandIsNotConstructed)
}

func (c CreateRestaurantCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

func (c CreateRestaurantCommand) Name() string {
	return c.name
}

func (c CreateRestaurantCommand) CityID() kernel.UUID {
	return c.cityID
}

func (c CreateRestaurantCommand) Description() string {
	return c.description
}

func (c *CreateRestaurantCommand) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.restaurantID = id
	return nil
}

func (c *CreateRestaurantCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateRestaurantCommand) setCityID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.cityID = id
	return nil
}
