package deliveryrepo

import (
	"context"

	"walt/internal/adapters/out/postgres/driverrepo"
	"walt/internal/core/domain/model/delivery"
	"walt/internal/core/domain/model/driver"
	"walt/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormDeliveryRepository implements DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db *gorm.DB
}

func NewGormDeliveryRepository(db *gorm.DB) *GormDeliveryRepository {
	return &GormDeliveryRepository{db: db}
}

// Add appends a delivery to the ledger.
func (r *GormDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	if err := d.Validate(); err != nil {
		return err
	}

	dto := fromDomain(d)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetAll lists the ledger in creation order.
func (r *GormDeliveryRepository) GetAll(ctx context.Context) ([]*delivery.Delivery, error) {
	var dtos []DeliveryDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	deliveries := make([]*delivery.Delivery, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		deliveries = append(deliveries, d)
	}

	return deliveries, nil
}

type mileageRow struct {
	driverrepo.DriverDTO
	TotalDistance float64
}

// DriverDistances lists every driver, including those without deliveries.
func (r *GormDeliveryRepository) DriverDistances(ctx context.Context) ([]driver.Mileage, error) {
	var rows []mileageRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			dr.id,
			dr.name,
			dr.city_id,
			COALESCE(SUM(del.distance), 0) AS total_distance
		FROM drivers dr
		LEFT JOIN deliveries del ON del.driver_id = dr.id
		GROUP BY dr.id, dr.name, dr.city_id
		ORDER BY total_distance DESC, dr.id
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return toMileage(rows)
}

// DriverDistancesByCity lists only drivers of cityID with at least one delivery.
func (r *GormDeliveryRepository) DriverDistancesByCity(ctx context.Context, cityID kernel.UUID) ([]driver.Mileage, error) {
	var rows []mileageRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			dr.id,
			dr.name,
			dr.city_id,
			SUM(del.distance) AS total_distance
		FROM deliveries del
		JOIN drivers dr ON dr.id = del.driver_id
		WHERE dr.city_id = ?
		GROUP BY dr.id, dr.name, dr.city_id
		ORDER BY total_distance DESC, dr.id
	`, cityID.Bytes()).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return toMileage(rows)
}

func toMileage(rows []mileageRow) ([]driver.Mileage, error) {
	report := make([]driver.Mileage, 0, len(rows))
	for _, row := range rows {
		d, err := driverrepo.ToDomain(row.DriverDTO)
		if err != nil {
			return nil, err
		}
		total, err := kernel.NewDistance(row.TotalDistance)
		if err != nil {
			return nil, err
		}
		report = append(report, driver.Mileage{Driver: d, Total: total})
	}
	return report, nil
}
