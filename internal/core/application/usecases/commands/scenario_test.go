package commands_test

import (
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"walt/internal/adapters/out/distance"
	"walt/internal/adapters/out/memory"
	"walt/internal/core/application/usecases/commands"
	"walt/internal/core/domain/model/delivery"
	"walt/internal/core/domain/model/kernel"
	"walt/internal/core/domain/services"
	"walt/internal/seed"

	"github.com/stretchr/testify/suite"
)

// ScenarioTestSuite runs order placement end to end over the in-memory
// adapter, loaded with the reference directory.
type ScenarioTestSuite struct {
	suite.Suite

	factory memoryFactory
	dir     seed.Directory
	handler commands.CreateOrderAndAssignDriverCommandHandler
	base    time.Time
}

func (s *ScenarioTestSuite) SetupTest() {
	s.factory = memoryFactory{factory: memory.NewUnitOfWorkFactory(memory.NewStore())}
	s.base = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	dir, err := seed.Load(s.T().Context(), seed.Handlers{
		CreateCity:       commands.NewCreateCityCommandHandler(s.factory.cities()),
		CreateDriver:     commands.NewCreateDriverCommandHandler(s.factory.directory()),
		CreateCustomer:   commands.NewCreateCustomerCommandHandler(s.factory.directory()),
		CreateRestaurant: commands.NewCreateRestaurantCommandHandler(s.factory.directory()),
	})
	s.Require().NoError(err)
	s.dir = dir

	estimator, err := distance.NewRandomEstimator(distance.DefaultMaxDistance)
	s.Require().NoError(err)
	s.handler = commands.NewCreateOrderAndAssignDriverCommandHandler(
		s.factory,
		services.NewDeliveryAssigner(estimator),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func (s *ScenarioTestSuite) at(hour int) time.Time {
	return s.base.Add(time.Duration(hour) * time.Hour)
}

func (s *ScenarioTestSuite) place(customerName, restaurantName string, at time.Time) (*delivery.Delivery, error) {
	cmd, err := commands.NewCreateOrderAndAssignDriverCommand(
		s.dir.Customers[customerName], s.dir.Restaurants[restaurantName], at,
	)
	s.Require().NoError(err)
	return s.handler.Handle(s.T().Context(), cmd)
}

func (s *ScenarioTestSuite) driverName(id kernel.UUID) string {
	d, err := s.factory.Create().DriverRepository().Get(s.T().Context(), id)
	s.Require().NoError(err)
	return d.Name()
}

func (s *ScenarioTestSuite) ledger() []*delivery.Delivery {
	all, err := s.factory.Create().DeliveryRepository().GetAll(s.T().Context())
	s.Require().NoError(err)
	return all
}

func (s *ScenarioTestSuite) TestSingleDelivery() {
	available, err := s.factory.Create().DriverRepository().
		FindAvailable(s.T().Context(), s.dir.Cities["Tel-Aviv"], s.at(1))
	s.Require().NoError(err)
	s.Len(available, 3)

	d, err := s.place("Beethoven", "vegan", s.at(1))

	s.Require().NoError(err)
	s.True(d.CustomerID().IsEqual(s.dir.Customers["Beethoven"]))
	s.Len(s.ledger(), 1)
}

func (s *ScenarioTestSuite) TestCityMismatch_CreatesNoDelivery() {
	d, err := s.place("Beethoven", "meat", s.at(1))

	s.Nil(d)
	s.Require().ErrorIs(err, commands.ErrCityMismatch)
	s.Contains(err.Error(), "Tel-Aviv")
	s.Empty(s.ledger())
}

func (s *ScenarioTestSuite) TestMultipleCustomers_PickDistinctDrivers() {
	hour := 1
	for _, name := range []string{"Beethoven", "Rachmaninoff", "Bach"} {
		_, err := s.place(name, "cafe", s.at(hour))
		s.Require().NoError(err)
		hour++
	}

	names := make([]string, 0, 3)
	for _, d := range s.ledger() {
		names = append(names, s.driverName(d.DriverID()))
	}
	s.Equal([]string{"Mary", "Patricia", "Daniel"}, names)

	// Mary already delivers at hour 1
	d, err := s.place("Beethoven", "vegan", s.at(1))
	s.Require().NoError(err)
	s.Equal("Patricia", s.driverName(d.DriverID()))
}

func (s *ScenarioTestSuite) TestLeastLoadedAvailableDriverWins() {
	expected := []struct {
		hour   int
		driver string
	}{
		{hour: 1, driver: "Mary"},
		{hour: 2, driver: "Patricia"},
		{hour: 2, driver: "Daniel"},
		{hour: 3, driver: "Mary"},
		// Mary is the busiest but the only one free at hour 2
		{hour: 2, driver: "Mary"},
	}

	for _, step := range expected {
		d, err := s.place("Bach", "cafe", s.at(step.hour))

		s.Require().NoError(err)
		s.Equal(step.driver, s.driverName(d.DriverID()), "hour %d", step.hour)
	}
}

func (s *ScenarioTestSuite) TestNoAvailableDrivers_AfterCityIsExhausted() {
	for range seed.DriversIn("Jerusalem") {
		_, err := s.place("Mozart", "meat", s.at(1))
		s.Require().NoError(err)
	}

	d, err := s.place("Mozart", "meat", s.at(1))

	s.Nil(d)
	s.Require().ErrorIs(err, commands.ErrNoAvailableDrivers)
	s.Len(s.ledger(), len(seed.DriversIn("Jerusalem")))
}

func (s *ScenarioTestSuite) TestSameHourOnAnotherDay_Conflicts() {
	_, err := s.place("Bach", "cafe", s.at(1))
	s.Require().NoError(err)
	first := s.ledger()[0]

	next, err := s.place("Bach", "cafe", s.at(25))

	s.Require().NoError(err)
	s.False(next.DriverID().IsEqual(first.DriverID()))
}

func (s *ScenarioTestSuite) TestSameInstantWithDifferentOffsets_Conflicts() {
	local := time.Date(2024, 1, 1, 13, 0, 0, 0, time.FixedZone("UTC+2", 2*3600))
	drivers := len(seed.DriversIn("Jerusalem"))

	placed := 0
	for i := range 2 * drivers {
		at := local
		if i%2 == 1 {
			at = local.UTC()
		}
		if _, err := s.place("Mozart", "meat", at); err == nil {
			placed++
		} else {
			s.Require().ErrorIs(err, commands.ErrNoAvailableDrivers)
		}
	}

	s.Equal(drivers, placed)
	seen := make(map[kernel.UUID]bool)
	for _, d := range s.ledger() {
		s.False(seen[d.DriverID()], "driver booked twice at one instant")
		seen[d.DriverID()] = true
	}
}

func (s *ScenarioTestSuite) TestRandomDeliveries_KeepInvariants() {
	for _, customerName := range seed.CustomerNames() {
		for _, restaurantName := range seed.RestaurantNames() {
			_, _ = s.place(customerName, restaurantName, s.at(rand.IntN(25))) //nolint:gosec // test data
		}
	}

	busy := make(map[kernel.UUID]map[kernel.HourOfDay]bool)
	for _, d := range s.ledger() {
		s.GreaterOrEqual(d.Distance().Kilometres(), 0.0)
		s.Less(d.Distance().Kilometres(), distance.DefaultMaxDistance)

		hours, ok := busy[d.DriverID()]
		if !ok {
			hours = make(map[kernel.HourOfDay]bool)
			busy[d.DriverID()] = hours
		}
		s.False(hours[d.Hour()], "driver booked twice at %02d:00", d.Hour())
		hours[d.Hour()] = true
	}
}

func (s *ScenarioTestSuite) TestConcurrentOrders_NeverDoubleBook() {
	const callers = 20
	var wg sync.WaitGroup
	ctx, cancel := context.WithTimeout(s.T().Context(), 5*time.Second)
	defer cancel()

	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cmd, _ := commands.NewCreateOrderAndAssignDriverCommand(
				s.dir.Customers["Bach"], s.dir.Restaurants["cafe"], s.at(9),
			)
			_, _ = s.handler.Handle(ctx, cmd)
		}()
	}
	wg.Wait()

	ledger := s.ledger()
	s.Len(ledger, len(seed.DriversIn("Tel-Aviv")))
	seen := make(map[kernel.UUID]bool)
	for _, d := range ledger {
		s.False(seen[d.DriverID()])
		seen[d.DriverID()] = true
	}
}

func TestScenarioTestSuite(t *testing.T) {
	suite.Run(t, new(ScenarioTestSuite))
}
