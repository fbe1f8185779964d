package commands_test

import (
	"context"
	"time"

	"walt/internal/core/application/usecases/commands"
	"walt/internal/core/domain/model/city"
	"walt/internal/core/domain/model/customer"
	"walt/internal/core/domain/model/delivery"
	"walt/internal/core/domain/model/driver"
	"walt/internal/core/domain/model/kernel"
	"walt/internal/core/domain/model/restaurant"
	"walt/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// Mock implementations for testing.
type MockCityRepository struct {
	mock.Mock
}

func (m *MockCityRepository) Add(ctx context.Context, c *city.City) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCityRepository) Get(ctx context.Context, id kernel.UUID) (*city.City, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*city.City)
	return c, args.Error(1)
}

func (m *MockCityRepository) GetByName(ctx context.Context, name string) (*city.City, error) {
	args := m.Called(ctx, name)
	c, _ := args.Get(0).(*city.City)
	return c, args.Error(1)
}

func (m *MockCityRepository) GetAll(ctx context.Context) ([]*city.City, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*city.City), args.Error(1)
}

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Save(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}

type MockRestaurantRepository struct {
	mock.Mock
}

func (m *MockRestaurantRepository) Add(ctx context.Context, r *restaurant.Restaurant) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*restaurant.Restaurant)
	return r, args.Error(1)
}

type MockDriverRepository struct {
	mock.Mock
}

func (m *MockDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*driver.Driver)
	return d, args.Error(1)
}

func (m *MockDriverRepository) GetAllByCity(ctx context.Context, cityID kernel.UUID) ([]*driver.Driver, error) {
	args := m.Called(ctx, cityID)
	return args.Get(0).([]*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) FindAvailable(
	ctx context.Context,
	cityID kernel.UUID,
	deliveryTime time.Time,
) ([]driver.Load, error) {
	args := m.Called(ctx, cityID, deliveryTime)
	return args.Get(0).([]driver.Load), args.Error(1)
}

type MockDeliveryRepository struct {
	mock.Mock
}

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) GetAll(ctx context.Context) ([]*delivery.Delivery, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) DriverDistances(ctx context.Context) ([]driver.Mileage, error) {
	args := m.Called(ctx)
	return args.Get(0).([]driver.Mileage), args.Error(1)
}

func (m *MockDeliveryRepository) DriverDistancesByCity(
	ctx context.Context,
	cityID kernel.UUID,
) ([]driver.Mileage, error) {
	args := m.Called(ctx, cityID)
	return args.Get(0).([]driver.Mileage), args.Error(1)
}

// MockUoW implements every unit of work flavour used by the handlers.
type MockUoW struct {
	mock.Mock
}

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) LockCity(ctx context.Context, cityID kernel.UUID) error {
	args := m.Called(ctx, cityID)
	return args.Error(0)
}

func (m *MockUoW) CityRepository() ports.CityRepository {
	args := m.Called()
	return args.Get(0).(ports.CityRepository)
}

func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

func (m *MockUoW) RestaurantRepository() ports.RestaurantRepository {
	args := m.Called()
	return args.Get(0).(ports.RestaurantRepository)
}

func (m *MockUoW) DriverRepository() ports.DriverRepository {
	args := m.Called()
	return args.Get(0).(ports.DriverRepository)
}

func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

type MockUoWFactory struct {
	mock.Mock
}

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockCityUoWFactory struct {
	mock.Mock
}

func (m *MockCityUoWFactory) Create() commands.CityUoW {
	args := m.Called()
	return args.Get(0).(commands.CityUoW)
}

type MockDirectoryUoWFactory struct {
	mock.Mock
}

func (m *MockDirectoryUoWFactory) Create() commands.DirectoryUoW {
	args := m.Called()
	return args.Get(0).(commands.DirectoryUoW)
}

// MockDistanceEstimator returns whatever distance the test programs.
type MockDistanceEstimator struct {
	mock.Mock
}

func (m *MockDistanceEstimator) EstimateDistance(
	ctx context.Context,
	cust *customer.Customer,
	rest *restaurant.Restaurant,
) (kernel.Distance, error) {
	args := m.Called(ctx, cust, rest)
	return args.Get(0).(kernel.Distance), args.Error(1)
}

// memoryFactory adapts a ports.UnitOfWorkFactory to the narrow command factories.
type memoryFactory struct {
	factory ports.UnitOfWorkFactory
}

func (f memoryFactory) Create() commands.UoW {
	return f.factory.Create()
}

func (f memoryFactory) directory() commands.DirectoryUoWFactory {
	return directoryFactory(f)
}

func (f memoryFactory) cities() commands.CityUoWFactory {
	return cityFactory(f)
}

type directoryFactory memoryFactory

func (f directoryFactory) Create() commands.DirectoryUoW {
	return f.factory.Create()
}

type cityFactory memoryFactory

func (f cityFactory) Create() commands.CityUoW {
	return f.factory.Create()
}
