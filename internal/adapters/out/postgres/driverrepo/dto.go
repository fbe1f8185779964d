// Package driverrepo persists drivers and answers the availability lookup.
package driverrepo

import (
	"walt/internal/core/domain/model/driver"
	"walt/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO maps a driver to the "drivers" table.
type DriverDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string    `gorm:"not null"`
	CityID uuid.UUID `gorm:"type:uuid;not null;index"`
}

func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(d *driver.Driver) DriverDTO {
	return DriverDTO{ID: d.ID().Bytes(), Name: d.Name(), CityID: d.CityID().Bytes()}
}

// ToDomain rebuilds a driver from its row. Exported for read models that join drivers.
func ToDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	cityID, err := kernel.UUIDFromBytes(dto.CityID[:])
	if err != nil {
		return nil, err
	}
	return driver.RestoreDriver(id, dto.Name, cityID)
}
