package queries

import (
	"errors"
	"time"

	"walt/internal/core/domain/model/kernel"
	"walt/internal/pkg/guard"
)

var ErrGetDeliveriesQueryIsNotConstructed = errors.New(
	"GetDeliveriesQuery must be created via NewGetDeliveriesQuery constructor",
)

// GetDeliveriesQuery lists the delivery ledger in creation order.
type GetDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

func NewGetDeliveriesQuery() GetDeliveriesQuery {
	return GetDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

func (q GetDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveriesQueryIsNotConstructed)
}

// GetDeliveriesQueryResponse is one delivery of the ledger. Distance is in kilometres.
type GetDeliveriesQueryResponse struct {
	ID           kernel.UUID
	DriverID     kernel.UUID
	RestaurantID kernel.UUID
	CustomerID   kernel.UUID
	DeliveryTime time.Time
	Distance     float64
}
