// Package city provides the City entity, the geographic grouping that decides
// which customers, restaurants and drivers may transact together.
package city

import (
	"errors"
	"strings"

	"walt/internal/core/domain/model/kernel"
	"walt/internal/pkg/errs"
	"walt/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when a city is created with a blank name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCityIsNotConstructed is returned when using an improperly initialized City.
	ErrCityIsNotConstructed = errors.New("City must be created via NewCity constructor")
)

// City is identified by its id; names are unique across the directory.
type City struct {
	id    kernel.UUID
	name  string
	guard guard.ConstructorGuard
}

// NewCity creates a new City with a fresh identifier.
func NewCity(name string) (*City, error) {
	return RestoreCity(kernel.NewUUID(), name)
}

// RestoreCity rebuilds a City from persisted state.
func RestoreCity(id kernel.UUID, name string) (*City, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameIsRequired
	}

	return &City{id: id, name: name, guard: guard.NewConstructorGuard()}, nil
}

func (c *City) ID() kernel.UUID {
	return c.id
}

func (c *City) Name() string {
	return c.name
}

// Validate ensures the city was built through NewCity or RestoreCity.
func (c *City) Validate() error {
	if c == nil {
		return ErrCityIsNotConstructed
	}
	return c.guard.Validate(ErrCityIsNotConstructed)
}

// IsEqual compares cities by identity.
func (c *City) IsEqual(other *City) bool {
	return other != nil && c.id.IsEqual(other.id)
}
