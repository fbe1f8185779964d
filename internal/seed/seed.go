// Package seed loads the reference directory: four cities with their
// drivers, customers and restaurants. It backs `walt seed` and the
// end-to-end scenario tests.
package seed

import (
	"context"
	"fmt"

	"walt/internal/core/application/usecases/commands"
	"walt/internal/core/domain/model/kernel"
)

type person struct {
	name        string
	city        string
	description string
}

var (
	cities = []string{"Jerusalem", "Tel-Aviv", "Beer-Sheva", "Haifa"}

	drivers = []person{
		{name: "Mary", city: "Tel-Aviv"},
		{name: "Patricia", city: "Tel-Aviv"},
		{name: "Jennifer", city: "Haifa"},
		{name: "James", city: "Beer-Sheva"},
		{name: "John", city: "Beer-Sheva"},
		{name: "Robert", city: "Jerusalem"},
		{name: "David", city: "Jerusalem"},
		{name: "Daniel", city: "Tel-Aviv"},
		{name: "Noa", city: "Haifa"},
		{name: "Ofri", city: "Haifa"},
		{name: "Neta", city: "Jerusalem"},
	}

	customers = []person{
		{name: "Beethoven", city: "Tel-Aviv", description: "Ludwig van Beethoven"},
		{name: "Mozart", city: "Jerusalem", description: "Wolfgang Amadeus Mozart"},
		{name: "Chopin", city: "Haifa", description: "Frédéric François Chopin"},
		{name: "Rachmaninoff", city: "Tel-Aviv", description: "Sergei Rachmaninoff"},
		{name: "Bach", city: "Tel-Aviv", description: "Sebastian Bach. Johann"},
	}

	restaurants = []person{
		{name: "meat", city: "Jerusalem", description: "All meat restaurant"},
		{name: "vegan", city: "Tel-Aviv", description: "Only vegan"},
		{name: "cafe", city: "Tel-Aviv", description: "Coffee shop"},
		{name: "chinese", city: "Tel-Aviv", description: "chinese restaurant"},
		{name: "restaurant", city: "Tel-Aviv", description: "mexican restaurant"},
	}
)

// Handlers are the directory commands the seed goes through.
type Handlers struct {
	CreateCity       commands.CreateCityCommandHandler
	CreateDriver     commands.CreateDriverCommandHandler
	CreateCustomer   commands.CreateCustomerCommandHandler
	CreateRestaurant commands.CreateRestaurantCommandHandler
}

// Directory maps names of the loaded entities to their ids.
type Directory struct {
	Cities      map[string]kernel.UUID
	Drivers     map[string]kernel.UUID
	Customers   map[string]kernel.UUID
	Restaurants map[string]kernel.UUID
}

// CustomerNames lists the seeded customers in load order.
func CustomerNames() []string {
	names := make([]string, 0, len(customers))
	for _, c := range customers {
		names = append(names, c.name)
	}
	return names
}

// DriversIn lists the seeded drivers of a city in load order.
func DriversIn(city string) []string {
	var names []string
	for _, d := range drivers {
		if d.city == city {
			names = append(names, d.name)
		}
	}
	return names
}

// Load creates the reference directory and returns the ids it assigned.
// Loading twice fails with commands.ErrCityAlreadyExists.
func Load(ctx context.Context, h Handlers) (Directory, error) {
	dir := Directory{
		Cities:      make(map[string]kernel.UUID, len(cities)),
		Drivers:     make(map[string]kernel.UUID, len(drivers)),
		Customers:   make(map[string]kernel.UUID, len(customers)),
		Restaurants: make(map[string]kernel.UUID, len(restaurants)),
	}

	for _, name := range cities {
		cmd, err := commands.NewCreateCityCommand(name)
		if err != nil {
			return Directory{}, err
		}
		if err = h.CreateCity.Handle(ctx, cmd); err != nil {
			return Directory{}, fmt.Errorf("seed city %s: %w", name, err)
		}
		dir.Cities[name] = cmd.CityID()
	}

	for _, d := range drivers {
		cmd, err := commands.NewCreateDriverCommand(d.name, dir.Cities[d.city])
		if err != nil {
			return Directory{}, err
		}
		if err = h.CreateDriver.Handle(ctx, cmd); err != nil {
			return Directory{}, fmt.Errorf("seed driver %s: %w", d.name, err)
		}
		dir.Drivers[d.name] = cmd.DriverID()
	}

	for _, c := range customers {
		cmd, err := commands.NewCreateCustomerCommand(c.name, dir.Cities[c.city], c.description)
		if err != nil {
			return Directory{}, err
		}
		if err = h.CreateCustomer.Handle(ctx, cmd); err != nil {
			return Directory{}, fmt.Errorf("seed customer %s: %w", c.name, err)
		}
		dir.Customers[c.name] = cmd.CustomerID()
	}

	for _, r := range restaurants {
		cmd, err := commands.NewCreateRestaurantCommand(r.name, dir.Cities[r.city], r.description)
		if err != nil {
			return Directory{}, err
		}
		if err = h.CreateRestaurant.Handle(ctx, cmd); err != nil {
			return Directory{}, fmt.Errorf("seed restaurant %s: %w", r.name, err)
		}
		dir.Restaurants[r.name] = cmd.RestaurantID()
	}

	return dir, nil
}

// RestaurantNames lists the seeded restaurants in load order.
func RestaurantNames() []string {
	names := make([]string, 0, len(restaurants))
	for _, r := range restaurants {
		names = append(names, r.name)
	}
	return names
}
