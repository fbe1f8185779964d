package services

import (
	"slices"
	"time"

	"walt/internal/core/domain/model/delivery"
	"walt/internal/core/domain/model/driver"
	"walt/internal/core/domain/model/kernel"
)

// AvailableDrivers is the in-memory form of the driver directory lookup.
//
// It keeps the drivers of cityID that have no delivery conflicting with
// deliveryTime and orders them by ascending delivery count. Ties keep the
// order of drivers, which callers supply in creation order.
func AvailableDrivers(
	drivers []*driver.Driver,
	deliveries []*delivery.Delivery,
	cityID kernel.UUID,
	deliveryTime time.Time,
) []driver.Load {
	counts := make(map[kernel.UUID]int, len(drivers))
	busy := make(map[kernel.UUID]bool)
	for _, d := range deliveries {
		counts[d.DriverID()]++
		if d.ConflictsWith(deliveryTime) {
			busy[d.DriverID()] = true
		}
	}

	loads := make([]driver.Load, 0, len(drivers))
	for _, drv := range drivers {
		if !drv.CityID().IsEqual(cityID) || busy[drv.ID()] {
			continue
		}
		loads = append(loads, driver.Load{Driver: drv, Deliveries: counts[drv.ID()]})
	}

	slices.SortStableFunc(loads, func(a, b driver.Load) int {
		return a.Deliveries - b.Deliveries
	})
	return loads
}

// RankDrivers lists every driver with the total distance of its deliveries,
// longest first. Drivers without deliveries are included with a zero total.
func RankDrivers(drivers []*driver.Driver, deliveries []*delivery.Delivery) []driver.Mileage {
	totals := sumDistances(deliveries)

	report := make([]driver.Mileage, 0, len(drivers))
	for _, drv := range drivers {
		total, ok := totals[drv.ID()]
		if !ok {
			total = kernel.ZeroDistance()
		}
		report = append(report, driver.Mileage{Driver: drv, Total: total})
	}

	sortByTotalDesc(report)
	return report
}

// RankDriversInCity is RankDrivers restricted to drivers of cityID.
// Unlike RankDrivers, only drivers with at least one delivery are listed.
func RankDriversInCity(
	drivers []*driver.Driver,
	deliveries []*delivery.Delivery,
	cityID kernel.UUID,
) []driver.Mileage {
	totals := sumDistances(deliveries)

	report := make([]driver.Mileage, 0)
	for _, drv := range drivers {
		total, ok := totals[drv.ID()]
		if !ok || !drv.CityID().IsEqual(cityID) {
			continue
		}
		report = append(report, driver.Mileage{Driver: drv, Total: total})
	}

	sortByTotalDesc(report)
	return report
}

func sumDistances(deliveries []*delivery.Delivery) map[kernel.UUID]kernel.Distance {
	totals := make(map[kernel.UUID]kernel.Distance)
	for _, d := range deliveries {
		total, ok := totals[d.DriverID()]
		if !ok {
			total = kernel.ZeroDistance()
		}
		totals[d.DriverID()] = total.Add(d.Distance())
	}
	return totals
}

func sortByTotalDesc(report []driver.Mileage) {
	slices.SortStableFunc(report, func(a, b driver.Mileage) int {
		switch {
		case a.Total.Kilometres() > b.Total.Kilometres():
			return -1
		case a.Total.Kilometres() < b.Total.Kilometres():
			return 1
		default:
			return 0
		}
	})
}
