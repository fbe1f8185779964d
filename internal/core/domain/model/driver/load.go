package driver

import "walt/internal/core/domain/model/kernel"

// Load pairs a driver with the number of deliveries it has ever made.
// Availability lookups return candidates as Loads, least loaded first.
type Load struct {
	Driver     *Driver
	Deliveries int
}

// Mileage pairs a driver with the total distance of its deliveries.
// Rank reports are ordered sequences of Mileage.
type Mileage struct {
	Driver *Driver
	Total  kernel.Distance
}

// TotalKilometres returns the total with the fractional part discarded.
func (m Mileage) TotalKilometres() int64 {
	return m.Total.Truncated()
}
