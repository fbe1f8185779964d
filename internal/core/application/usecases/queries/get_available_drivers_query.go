package queries

import (
	"errors"
	"time"

	"walt/internal/core/domain/model/delivery"
	"walt/internal/core/domain/model/kernel"
	"walt/internal/pkg/guard"
)

var ErrGetAvailableDriversQueryIsNotConstructed = errors.New(
	"GetAvailableDriversQuery must be created via NewGetAvailableDriversQuery constructor",
)

// GetAvailableDriversQuery lists the drivers of a city free at a delivery time,
// least loaded first.
type GetAvailableDriversQuery struct {
	cityID       kernel.UUID
	deliveryTime time.Time

	guard guard.ConstructorGuard
}

func NewGetAvailableDriversQuery(cityID kernel.UUID, deliveryTime time.Time) (GetAvailableDriversQuery, error) {
	var timeErr error
	if deliveryTime.IsZero() {
		timeErr = delivery.ErrDeliveryTimeIsRequired
	}
	if err := errors.Join(cityID.Validate(), timeErr); err != nil {
		return GetAvailableDriversQuery{}, err
	}

	return GetAvailableDriversQuery{
		cityID:       cityID,
		deliveryTime: deliveryTime,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (q GetAvailableDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableDriversQueryIsNotConstructed)
}

func (q GetAvailableDriversQuery) CityID() kernel.UUID {
	return q.cityID
}

func (q GetAvailableDriversQuery) DeliveryTime() time.Time {
	return q.deliveryTime
}

// GetAvailableDriversQueryResponse is a candidate driver with its lifetime delivery count.
type GetAvailableDriversQueryResponse struct {
	DriverID   kernel.UUID
	Name       string
	Deliveries int
}
