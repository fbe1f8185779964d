// Package directoryrepo persists the directory entities orders refer to:
// cities, customers and restaurants.
package directoryrepo

import (
	"walt/internal/core/domain/model/city"
	"walt/internal/core/domain/model/customer"
	"walt/internal/core/domain/model/kernel"
	"walt/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
)

// CityDTO maps a city to the "cities" table. Names are unique.
type CityDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"not null;uniqueIndex"`
}

func (CityDTO) TableName() string {
	return "cities"
}

// CustomerDTO maps a customer to the "customers" table.
type CustomerDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"not null"`
	CityID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Description string
}

func (CustomerDTO) TableName() string {
	return "customers"
}

// RestaurantDTO maps a restaurant to the "restaurants" table.
type RestaurantDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"not null"`
	CityID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Description string
}

func (RestaurantDTO) TableName() string {
	return "restaurants"
}

func cityFromDomain(c *city.City) CityDTO {
	return CityDTO{ID: c.ID().Bytes(), Name: c.Name()}
}

func cityToDomain(dto CityDTO) (*city.City, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return city.RestoreCity(id, dto.Name)
}

func customerFromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:          c.ID().Bytes(),
		Name:        c.Name(),
		CityID:      c.CityID().Bytes(),
		Description: c.Description(),
	}
}

func customerToDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	cityID, err := kernel.UUIDFromBytes(dto.CityID[:])
	if err != nil {
		return nil, err
	}
	return customer.RestoreCustomer(id, dto.Name, cityID, dto.Description)
}

func restaurantFromDomain(r *restaurant.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:          r.ID().Bytes(),
		Name:        r.Name(),
		CityID:      r.CityID().Bytes(),
		Description: r.Description(),
	}
}

func restaurantToDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	cityID, err := kernel.UUIDFromBytes(dto.CityID[:])
	if err != nil {
		return nil, err
	}
	return restaurant.RestoreRestaurant(id, dto.Name, cityID, dto.Description)
}
