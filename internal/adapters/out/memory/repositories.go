package memory

import (
	"context"
	"slices"
	"time"

	"walt/internal/core/domain/model/city"
	"walt/internal/core/domain/model/customer"
	"walt/internal/core/domain/model/delivery"
	"walt/internal/core/domain/model/driver"
	"walt/internal/core/domain/model/kernel"
	"walt/internal/core/domain/model/restaurant"
	"walt/internal/core/domain/services"
	"walt/internal/pkg/errs"
)

type cityRepository struct {
	uow *UnitOfWork
}

func (r *cityRepository) Add(_ context.Context, c *city.City) error {
	if err := c.Validate(); err != nil {
		return err
	}
	r.uow.write(func(s *Store) {
		s.cities = append(s.cities, c)
	})
	return nil
}

func (r *cityRepository) Get(_ context.Context, id kernel.UUID) (*city.City, error) {
	var found *city.City
	r.uow.store.read(func(s *Store) {
		found = findBy(s.cities, func(c *city.City) bool { return c.ID().IsEqual(id) })
	})
	if found == nil {
		return nil, errs.NewObjectNotFoundError("city", id)
	}
	return found, nil
}

func (r *cityRepository) GetByName(_ context.Context, name string) (*city.City, error) {
	var found *city.City
	r.uow.store.read(func(s *Store) {
		found = findBy(s.cities, func(c *city.City) bool { return c.Name() == name })
	})
	if found == nil {
		return nil, errs.NewObjectNotFoundError("city", name)
	}
	return found, nil
}

func (r *cityRepository) GetAll(_ context.Context) ([]*city.City, error) {
	var all []*city.City
	r.uow.store.read(func(s *Store) {
		all = slices.Clone(s.cities)
	})
	return all, nil
}

type customerRepository struct {
	uow *UnitOfWork
}

func (r *customerRepository) Save(_ context.Context, c *customer.Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}
	r.uow.write(func(s *Store) {
		i := slices.IndexFunc(s.customers, func(existing *customer.Customer) bool { return existing.IsEqual(c) })
		if i < 0 {
			s.customers = append(s.customers, c)
			return
		}
		s.customers[i] = c
	})
	return nil
}

func (r *customerRepository) Get(_ context.Context, id kernel.UUID) (*customer.Customer, error) {
	var found *customer.Customer
	r.uow.store.read(func(s *Store) {
		found = findBy(s.customers, func(c *customer.Customer) bool { return c.ID().IsEqual(id) })
	})
	if found == nil {
		return nil, errs.NewObjectNotFoundError("customer", id)
	}
	return found, nil
}

type restaurantRepository struct {
	uow *UnitOfWork
}

func (r *restaurantRepository) Add(_ context.Context, rest *restaurant.Restaurant) error {
	if err := rest.Validate(); err != nil {
		return err
	}
	r.uow.write(func(s *Store) {
		s.restaurants = append(s.restaurants, rest)
	})
	return nil
}

func (r *restaurantRepository) Get(_ context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	var found *restaurant.Restaurant
	r.uow.store.read(func(s *Store) {
		found = findBy(s.restaurants, func(rest *restaurant.Restaurant) bool { return rest.ID().IsEqual(id) })
	})
	if found == nil {
		return nil, errs.NewObjectNotFoundError("restaurant", id)
	}
	return found, nil
}

type driverRepository struct {
	uow *UnitOfWork
}

func (r *driverRepository) Add(_ context.Context, d *driver.Driver) error {
	if err := d.Validate(); err != nil {
		return err
	}
	r.uow.write(func(s *Store) {
		s.drivers = append(s.drivers, d)
	})
	return nil
}

func (r *driverRepository) Get(_ context.Context, id kernel.UUID) (*driver.Driver, error) {
	var found *driver.Driver
	r.uow.store.read(func(s *Store) {
		found = findBy(s.drivers, func(d *driver.Driver) bool { return d.ID().IsEqual(id) })
	})
	if found == nil {
		return nil, errs.NewObjectNotFoundError("driver", id)
	}
	return found, nil
}

func (r *driverRepository) GetAllByCity(_ context.Context, cityID kernel.UUID) ([]*driver.Driver, error) {
	result := make([]*driver.Driver, 0)
	r.uow.store.read(func(s *Store) {
		for _, d := range s.drivers {
			if d.CityID().IsEqual(cityID) {
				result = append(result, d)
			}
		}
	})
	return result, nil
}

func (r *driverRepository) FindAvailable(
	_ context.Context,
	cityID kernel.UUID,
	deliveryTime time.Time,
) ([]driver.Load, error) {
	var loads []driver.Load
	r.uow.store.read(func(s *Store) {
		loads = services.AvailableDrivers(s.drivers, s.deliveries, cityID, deliveryTime)
	})
	return loads, nil
}

type deliveryRepository struct {
	uow *UnitOfWork
}

func (r *deliveryRepository) Add(_ context.Context, d *delivery.Delivery) error {
	if err := d.Validate(); err != nil {
		return err
	}
	r.uow.write(func(s *Store) {
		s.deliveries = append(s.deliveries, d)
	})
	return nil
}

func (r *deliveryRepository) GetAll(_ context.Context) ([]*delivery.Delivery, error) {
	var all []*delivery.Delivery
	r.uow.store.read(func(s *Store) {
		all = slices.Clone(s.deliveries)
	})
	return all, nil
}

func (r *deliveryRepository) DriverDistances(_ context.Context) ([]driver.Mileage, error) {
	var report []driver.Mileage
	r.uow.store.read(func(s *Store) {
		report = services.RankDrivers(s.drivers, s.deliveries)
	})
	return report, nil
}

func (r *deliveryRepository) DriverDistancesByCity(_ context.Context, cityID kernel.UUID) ([]driver.Mileage, error) {
	var report []driver.Mileage
	r.uow.store.read(func(s *Store) {
		report = services.RankDriversInCity(s.drivers, s.deliveries, cityID)
	})
	return report, nil
}

func findBy[T any](items []T, match func(T) bool) T {
	var zero T
	if i := slices.IndexFunc(items, match); i >= 0 {
		return items[i]
	}
	return zero
}
