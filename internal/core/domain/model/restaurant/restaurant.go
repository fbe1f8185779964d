// Package restaurant provides the Restaurant entity. A restaurant only
// serves customers of its own city.
package restaurant

import (
	"errors"
	"strings"

	"walt/internal/core/domain/model/kernel"
	"walt/internal/pkg/errs"
	"walt/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when a restaurant is created with a blank name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrRestaurantIsNotConstructed is returned when using an improperly initialized Restaurant.
	ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")
)

type Restaurant struct {
	id          kernel.UUID
	name        string
	cityID      kernel.UUID
	description string
	guard       guard.ConstructorGuard
}

// NewRestaurant creates a new Restaurant located in cityID.
func NewRestaurant(name string, cityID kernel.UUID, description string) (*Restaurant, error) {
	return RestoreRestaurant(kernel.NewUUID(), name, cityID, description)
}

// RestoreRestaurant rebuilds a Restaurant from persisted state.
func RestoreRestaurant(id kernel.UUID, name string, cityID kernel.UUID, description string) (*Restaurant, error) {
	name = strings.TrimSpace(name)

	var nameErr error
	if name == "" {
		nameErr = ErrNameIsRequired
	}
	if err := errors.Join(id.Validate(), cityID.Validate(), nameErr); err != nil {
		return nil, err
	}

	return &Restaurant{
		id:          id,
		name:        name,
		cityID:      cityID,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

func (r *Restaurant) Name() string {
	return r.name
}

func (r *Restaurant) CityID() kernel.UUID {
	return r.cityID
}

func (r *Restaurant) Description() string {
	return r.description
}

func (r *Restaurant) Validate() error {
	if r == nil {
		return ErrRestaurantIsNotConstructed
	}
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

// IsEqual compares restaurants by identity.
func (r *Restaurant) IsEqual(other *Restaurant) bool {
	return other != nil && r.id.IsEqual(other.id)
}
