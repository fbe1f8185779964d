// Package delivery provides the Delivery aggregate, the only record created
// by order placement.
//
// Key business rules:
//   - Orders across cities are rejected (ErrCityMismatch)
//   - The assigned driver must work in the restaurant's city
//   - Distance is fixed at creation
//   - A driver is busy for the whole calendar hour of each of its deliveries,
//     regardless of the date
package delivery
