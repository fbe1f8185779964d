package driverrepo

import (
	"context"
	"errors"
	"time"

	"walt/internal/core/domain/model/driver"
	"walt/internal/core/domain/model/kernel"
	"walt/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDriverRepository implements DriverRepository using GORM.
type GormDriverRepository struct {
	db *gorm.DB
}

func NewGormDriverRepository(db *gorm.DB) *GormDriverRepository {
	return &GormDriverRepository{db: db}
}

// Add saves a new driver to the database.
func (r *GormDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	if err := d.Validate(); err != nil {
		return err
	}

	dto := fromDomain(d)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a driver by ID.
func (r *GormDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DriverDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", id.String())
		}
		return nil, err
	}

	return ToDomain(dto)
}

// GetAllByCity lists the drivers of a city in creation order.
func (r *GormDriverRepository) GetAllByCity(ctx context.Context, cityID kernel.UUID) ([]*driver.Driver, error) {
	var dtos []DriverDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos, "city_id = ?", cityID.Bytes()).Error; err != nil {
		return nil, err
	}

	drivers := make([]*driver.Driver, 0, len(dtos))
	for _, dto := range dtos {
		d, err := ToDomain(dto)
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, d)
	}

	return drivers, nil
}

// loadRow is a driver joined with its lifetime delivery count.
type loadRow struct {
	DriverDTO
	DeliveryCount int
}

// FindAvailable excludes drivers with a delivery in the same hour-of-day and
// orders the rest by delivery count. Ids are time ordered, so ordering by id
// breaks ties in creation order.
func (r *GormDriverRepository) FindAvailable(
	ctx context.Context,
	cityID kernel.UUID,
	deliveryTime time.Time,
) ([]driver.Load, error) {
	var rows []loadRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			dr.id,
			dr.name,
			dr.city_id,
			COUNT(del.id) AS delivery_count
		FROM drivers dr
		LEFT JOIN deliveries del ON del.driver_id = dr.id
		WHERE dr.city_id = ?
			AND dr.id NOT IN (
				SELECT busy.driver_id
				FROM deliveries busy
				WHERE busy.delivery_hour = ?
			)
		GROUP BY dr.id, dr.name, dr.city_id
		ORDER BY delivery_count, dr.id
	`, cityID.Bytes(), kernel.HourOf(deliveryTime).Int()).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	loads := make([]driver.Load, 0, len(rows))
	for _, row := range rows {
		d, err := ToDomain(row.DriverDTO)
		if err != nil {
			return nil, err
		}
		loads = append(loads, driver.Load{Driver: d, Deliveries: row.DeliveryCount})
	}

	return loads, nil
}
