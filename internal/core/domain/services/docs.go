// Package services provides domain services that orchestrate business operations
// across multiple domain entities of the walt delivery system.
//
// The package includes:
//   - DeliveryAssigner: decides whether an order can be placed and picks its driver
//   - AvailableDrivers: the conflict-window and least-loaded ordering rules
//   - RankDrivers / RankDriversInCity: total-distance reports
//
// The functions work over in-memory collections; storage adapters either call
// them directly or express the same rules in their query language.
package services
