// Package customer provides the Customer entity: someone who orders food
// from restaurants located in their own city.
package customer

import (
	"errors"
	"strings"

	"walt/internal/core/domain/model/kernel"
	"walt/internal/pkg/errs"
	"walt/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when a customer is created with a blank name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
)

// Customer references its City by id. The description is free text.
type Customer struct {
	id          kernel.UUID
	name        string
	cityID      kernel.UUID
	description string
	guard       guard.ConstructorGuard
}

// NewCustomer creates a new Customer living in cityID.
func NewCustomer(name string, cityID kernel.UUID, description string) (*Customer, error) {
	return RestoreCustomer(kernel.NewUUID(), name, cityID, description)
}

// RestoreCustomer rebuilds a Customer from persisted state.
func RestoreCustomer(id kernel.UUID, name string, cityID kernel.UUID, description string) (*Customer, error) {
	name = strings.TrimSpace(name)

	var nameErr error
	if name == "" {
		nameErr = ErrNameIsRequired
	}
	if err := errors.Join(id.Validate(), cityID.Validate(), nameErr); err != nil {
		return nil, err
	}

	return &Customer{
		id:          id,
		name:        name,
		cityID:      cityID,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c *Customer) ID() kernel.UUID {
	return c.id
}

func (c *Customer) Name() string {
	return c.name
}

func (c *Customer) CityID() kernel.UUID {
	return c.cityID
}

func (c *Customer) Description() string {
	return c.description
}

// Validate ensures the customer was built through a constructor.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// IsEqual compares customers by identity.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}
