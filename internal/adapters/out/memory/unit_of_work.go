package memory

import (
	"context"
	"errors"
	"slices"

	"walt/internal/core/domain/model/kernel"
	"walt/internal/core/ports"
)

// ErrNoActiveTransaction is returned by Commit and Rollback outside of Begin.
var ErrNoActiveTransaction = errors.New("no active transaction")

// UnitOfWorkFactory creates units of work over one shared Store.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory for in-memory units of work.
//
// Example:
//
//	store := memory.NewStore()
//	factory := memory.NewUnitOfWorkFactory(store)
//	uow := factory.Create()
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork stages writes until Commit. Without Begin, repositories write
// through to the store immediately.
type UnitOfWork struct {
	store   *Store
	active  bool
	staged  []change
	holding []citySlot
}

func (uow *UnitOfWork) Begin(_ context.Context) error {
	uow.active = true
	return nil
}

func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	uow.store.apply(uow.staged)
	uow.finish()
	return nil
}

func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	uow.finish()
	return nil
}

// LockCity blocks until no other unit of work holds cityID, or ctx is done.
func (uow *UnitOfWork) LockCity(ctx context.Context, cityID kernel.UUID) error {
	if _, err := uow.CityRepository().Get(ctx, cityID); err != nil {
		return err
	}
	if !uow.active {
		return ErrNoActiveTransaction
	}

	slot := uow.store.slotFor(cityID)
	if slices.Contains(uow.holding, slot) {
		return nil
	}

	select {
	case slot <- struct{}{}:
		uow.holding = append(uow.holding, slot)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (uow *UnitOfWork) CityRepository() ports.CityRepository {
	return &cityRepository{uow: uow}
}

func (uow *UnitOfWork) CustomerRepository() ports.CustomerRepository {
	return &customerRepository{uow: uow}
}

func (uow *UnitOfWork) RestaurantRepository() ports.RestaurantRepository {
	return &restaurantRepository{uow: uow}
}

func (uow *UnitOfWork) DriverRepository() ports.DriverRepository {
	return &driverRepository{uow: uow}
}

func (uow *UnitOfWork) DeliveryRepository() ports.DeliveryRepository {
	return &deliveryRepository{uow: uow}
}

func (uow *UnitOfWork) write(c change) {
	if uow.active {
		uow.staged = append(uow.staged, c)
		return
	}
	uow.store.apply([]change{c})
}

func (uow *UnitOfWork) finish() {
	for _, slot := range uow.holding {
		<-slot
	}
	uow.holding = nil
	uow.staged = nil
	uow.active = false
}
