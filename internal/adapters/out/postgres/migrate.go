package postgres

import (
	"walt/internal/adapters/out/postgres/deliveryrepo"
	"walt/internal/adapters/out/postgres/directoryrepo"
	"walt/internal/adapters/out/postgres/driverrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the walt tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&directoryrepo.CityDTO{},
		&directoryrepo.CustomerDTO{},
		&directoryrepo.RestaurantDTO{},
		&driverrepo.DriverDTO{},
		&deliveryrepo.DeliveryDTO{},
	)
}
