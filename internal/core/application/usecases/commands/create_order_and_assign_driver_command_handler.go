package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"walt/internal/core/domain/model/delivery"
	"walt/internal/core/domain/model/kernel"
	"walt/internal/core/domain/services"
)

// Expected business outcomes of order placement. Neither is a fault: the
// handler returns a nil delivery, writes nothing, and the error message tells
// the caller why.
var (
	ErrCityMismatch       = delivery.ErrCityMismatch
	ErrNoAvailableDrivers = services.ErrNoAvailableDrivers
)

// CreateOrderAndAssignDriverCommandHandler places orders and assigns drivers.
//
// Flow:
//  1. Load customer and restaurant; reject orders across cities
//  2. Lock the city so concurrent orders cannot book the same driver and hour
//  3. Save the customer (idempotent upsert)
//  4. Ask the driver directory for available drivers, least loaded first
//  5. Let the DeliveryAssigner pick one and estimate the distance
//  6. Append the delivery and commit
//
// Example:
//
//	d, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrCityMismatch), errors.Is(err, ErrNoAvailableDrivers):
//	    fmt.Println(err) // e.g. "no available drivers: every driver in Tel-Aviv is busy at 13:00"
//	case err != nil:
//	    return err
//	default:
//	    fmt.Println("assigned driver", d.DriverID())
//	}
type CreateOrderAndAssignDriverCommandHandler struct {
	uowFactory UoWFactory
	assigner   services.DeliveryAssigner
	logger     *slog.Logger
}

// NewCreateOrderAndAssignDriverCommandHandler creates the order placement handler.
func NewCreateOrderAndAssignDriverCommandHandler(
	uowFactory UoWFactory,
	assigner services.DeliveryAssigner,
	logger *slog.Logger,
) CreateOrderAndAssignDriverCommandHandler {
	return CreateOrderAndAssignDriverCommandHandler{
		uowFactory: uowFactory,
		assigner:   assigner,
		logger:     logger.With("component", "order_placement"),
	}
}

// Handle places the order and returns the created delivery.
// Returns ErrCityMismatch or ErrNoAvailableDrivers (wrapped with a readable
// message) for rejected orders, and errs.ObjectNotFoundError for unknown ids.
func (h *CreateOrderAndAssignDriverCommandHandler) Handle(
	ctx context.Context,
	cmd CreateOrderAndAssignDriverCommand,
) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cust, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return nil, err
	}

	rest, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID())
	if err != nil {
		return nil, err
	}

	if !cust.CityID().IsEqual(rest.CityID()) {
		cityName := h.cityName(ctx, uow, cust.CityID())
		h.logger.InfoContext(ctx, "Order rejected: restaurant outside customer's city",
			"customer", cust.Name(), "restaurant", rest.Name(), "city", cityName)
		return nil, fmt.Errorf("%w: please choose a restaurant in %s", ErrCityMismatch, cityName)
	}

	if err = uow.LockCity(ctx, rest.CityID()); err != nil {
		return nil, err
	}

	if err = uow.CustomerRepository().Save(ctx, cust); err != nil {
		return nil, err
	}

	candidates, err := uow.DriverRepository().FindAvailable(ctx, rest.CityID(), cmd.DeliveryTime())
	if err != nil {
		return nil, err
	}

	assigned, err := h.assigner.Assign(ctx, cust, rest, cmd.DeliveryTime(), candidates)
	if errors.Is(err, ErrNoAvailableDrivers) {
		cityName := h.cityName(ctx, uow, rest.CityID())
		h.logger.InfoContext(ctx, "Order rejected: no available drivers",
			"city", cityName, "hour", kernel.HourOf(cmd.DeliveryTime()).Int())
		return nil, fmt.Errorf("%w: every driver in %s is busy at %02d:00",
			ErrNoAvailableDrivers, cityName, kernel.HourOf(cmd.DeliveryTime()).Int())
	}
	if err != nil {
		return nil, err
	}

	if err = uow.DeliveryRepository().Add(ctx, assigned); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return assigned, nil
}

// cityName resolves a city for rejection messages, falling back to its id.
func (h *CreateOrderAndAssignDriverCommandHandler) cityName(ctx context.Context, uow UoW, cityID kernel.UUID) string {
	c, err := uow.CityRepository().Get(ctx, cityID)
	if err != nil {
		return cityID.String()
	}
	return c.Name()
}
