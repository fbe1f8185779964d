package delivery

import (
	"errors"
	"time"

	"walt/internal/core/domain/model/customer"
	"walt/internal/core/domain/model/driver"
	"walt/internal/core/domain/model/kernel"
	"walt/internal/core/domain/model/restaurant"
	"walt/internal/pkg/errs"
)

var (
	// ErrCityMismatch is returned when the restaurant and the customer are in different cities.
	ErrCityMismatch = errors.New("restaurant and customer are in different cities")
	// ErrDriverOutsideCity is returned when the driver's home city differs from the restaurant's.
	ErrDriverOutsideCity = errors.New("driver does not work in the restaurant's city")
	// ErrDeliveryTimeIsRequired is returned for a zero delivery time.
	ErrDeliveryTimeIsRequired = errs.NewValueIsRequiredError("deliveryTime")
	// ErrDeliveryIsNotConstructed is returned when a Delivery was not built via NewDelivery or RestoreDelivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")
)

// Delivery records one driver carrying one order from a restaurant to a customer.
//
// Invariants:
//   - the restaurant and the customer share a city, and the driver lives there
//   - distance is set once at creation and never changes
//   - hour is the hour of deliveryTime on kernel.Calendar(), captured at creation so
//     that the driver's busy slot does not depend on how storage returns times
//
// A Delivery has no update or delete path.
type Delivery struct {
	id           kernel.UUID
	driverID     kernel.UUID
	restaurantID kernel.UUID
	customerID   kernel.UUID
	deliveryTime time.Time
	hour         kernel.HourOfDay
	distance     kernel.Distance

	isConstructed bool
}

// NewDelivery assigns drv to carry an order from rest to cust at deliveryTime.
//
// Example:
//
//	d, err := delivery.NewDelivery(mary, vegan, beethoven, at, distance)
//	if errors.Is(err, delivery.ErrCityMismatch) {
//	    // the order cannot be placed
//	}
func NewDelivery(
	drv *driver.Driver,
	rest *restaurant.Restaurant,
	cust *customer.Customer,
	deliveryTime time.Time,
	distance kernel.Distance,
) (*Delivery, error) {
	if err := errors.Join(drv.Validate(), rest.Validate(), cust.Validate()); err != nil {
		return nil, err
	}
	if !rest.CityID().IsEqual(cust.CityID()) {
		return nil, ErrCityMismatch
	}
	if !drv.CityID().IsEqual(rest.CityID()) {
		return nil, ErrDriverOutsideCity
	}

	return RestoreDelivery(
		kernel.NewUUID(),
		drv.ID(),
		rest.ID(),
		cust.ID(),
		deliveryTime,
		kernel.HourOf(deliveryTime),
		distance,
	)
}

// RestoreDelivery rebuilds a Delivery from persisted state.
func RestoreDelivery(
	id, driverID, restaurantID, customerID kernel.UUID,
	deliveryTime time.Time,
	hour kernel.HourOfDay,
	distance kernel.Distance,
) (*Delivery, error) {
	var timeErr error
	if deliveryTime.IsZero() {
		timeErr = ErrDeliveryTimeIsRequired
	}
	if err := errors.Join(
		id.Validate(),
		driverID.Validate(),
		restaurantID.Validate(),
		customerID.Validate(),
		distance.Validate(),
		timeErr,
	); err != nil {
		return nil, err
	}

	return &Delivery{
		id:            id,
		driverID:      driverID,
		restaurantID:  restaurantID,
		customerID:    customerID,
		deliveryTime:  deliveryTime,
		hour:          hour,
		distance:      distance,
		isConstructed: true,
	}, nil
}

// Validate ensures the delivery was built through a constructor.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

func (d *Delivery) ID() kernel.UUID {
	return d.id
}

func (d *Delivery) DriverID() kernel.UUID {
	return d.driverID
}

func (d *Delivery) RestaurantID() kernel.UUID {
	return d.restaurantID
}

func (d *Delivery) CustomerID() kernel.UUID {
	return d.customerID
}

func (d *Delivery) DeliveryTime() time.Time {
	return d.deliveryTime
}

// Hour returns the driver's busy slot for this delivery.
func (d *Delivery) Hour() kernel.HourOfDay {
	return d.hour
}

func (d *Delivery) Distance() kernel.Distance {
	return d.distance
}

// ConflictsWith reports whether this delivery keeps its driver busy at t.
func (d *Delivery) ConflictsWith(t time.Time) bool {
	return d.hour.ConflictsWith(kernel.HourOf(t))
}
