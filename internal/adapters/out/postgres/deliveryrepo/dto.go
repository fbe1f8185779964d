// Package deliveryrepo persists the append-only delivery ledger and computes
// the rank reports over it.
package deliveryrepo

import (
	"time"

	"walt/internal/core/domain/model/delivery"
	"walt/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO maps a delivery to the "deliveries" table.
//
// DeliveryHour keeps the delivery calendar hour captured at creation. Timestamps
// come back from Postgres in the session time zone, so availability filters
// on this column instead of extracting it from DeliveryTime.
type DeliveryDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	DriverID     uuid.UUID `gorm:"type:uuid;not null;index"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null"`
	CustomerID   uuid.UUID `gorm:"type:uuid;not null"`
	DeliveryTime time.Time `gorm:"type:timestamptz;not null"`
	DeliveryHour int       `gorm:"type:smallint;not null;index"`
	Distance     float64   `gorm:"type:double precision;not null"`
}

func (DeliveryDTO) TableName() string {
	return "deliveries"
}

func fromDomain(d *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:           d.ID().Bytes(),
		DriverID:     d.DriverID().Bytes(),
		RestaurantID: d.RestaurantID().Bytes(),
		CustomerID:   d.CustomerID().Bytes(),
		DeliveryTime: d.DeliveryTime(),
		DeliveryHour: d.Hour().Int(),
		Distance:     d.Distance().Kilometres(),
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	ids := make([]kernel.UUID, 0, 4)
	for _, raw := range []uuid.UUID{dto.ID, dto.DriverID, dto.RestaurantID, dto.CustomerID} {
		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	hour, err := kernel.NewHourOfDay(dto.DeliveryHour)
	if err != nil {
		return nil, err
	}
	distance, err := kernel.NewDistance(dto.Distance)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(ids[0], ids[1], ids[2], ids[3], dto.DeliveryTime, hour, distance)
}
