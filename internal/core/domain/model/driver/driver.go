// Package driver provides the Driver entity. A driver's home city is fixed
// at creation; there is no relocation.
package driver

import (
	"errors"
	"strings"

	"walt/internal/core/domain/model/kernel"
	"walt/internal/pkg/errs"
	"walt/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when a driver is created with a blank name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
)

// Driver delivers orders inside its home city only.
type Driver struct {
	id     kernel.UUID
	name   string
	cityID kernel.UUID
	guard  guard.ConstructorGuard
}

// NewDriver creates a new Driver whose home city is cityID.
//
// Example:
//
//	tlv, _ := city.NewCity("Tel-Aviv")
//	mary, err := driver.NewDriver("Mary", tlv.ID())
func NewDriver(name string, cityID kernel.UUID) (*Driver, error) {
	return RestoreDriver(kernel.NewUUID(), name, cityID)
}

// RestoreDriver rebuilds a Driver from persisted state.
func RestoreDriver(id kernel.UUID, name string, cityID kernel.UUID) (*Driver, error) {
	name = strings.TrimSpace(name)

	var nameErr error
	if name == "" {
		nameErr = ErrNameIsRequired
	}
	if err := errors.Join(id.Validate(), cityID.Validate(), nameErr); err != nil {
		return nil, err
	}

	return &Driver{id: id, name: name, cityID: cityID, guard: guard.NewConstructorGuard()}, nil
}

func (d *Driver) ID() kernel.UUID {
	return d.id
}

func (d *Driver) Name() string {
	return d.name
}

// CityID returns the driver's home city.
func (d *Driver) CityID() kernel.UUID {
	return d.cityID
}

// Validate ensures the driver was built through a constructor.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// IsEqual compares drivers by identity.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}
