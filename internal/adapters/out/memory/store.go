// Package memory implements the walt persistence ports in process memory.
//
// It backs the CLI and the scenario tests, and serves as the STORAGE=memory
// mode of the server. Availability and rank reports are computed with the pure
// functions of the domain services package, so both adapters share one
// definition of the business rules.
//
// Transactions are optimistic buffers: writes made after Begin are staged on
// the unit of work and applied atomically on Commit. Reads always see the
// committed state. LockCity takes a per-city mutex held until Commit or
// Rollback, which serializes order placement within a city.
package memory

import (
	"sync"

	"walt/internal/core/domain/model/city"
	"walt/internal/core/domain/model/customer"
	"walt/internal/core/domain/model/delivery"
	"walt/internal/core/domain/model/driver"
	"walt/internal/core/domain/model/kernel"
	"walt/internal/core/domain/model/restaurant"
)

// Store holds the committed state. Slices keep insertion order, which is
// the creation order the availability tie-break relies on.
type Store struct {
	mu          sync.RWMutex
	cities      []*city.City
	customers   []*customer.Customer
	restaurants []*restaurant.Restaurant
	drivers     []*driver.Driver
	deliveries  []*delivery.Delivery

	cityLocks sync.Map // kernel.UUID -> citySlot
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// change mutates the committed state; callers hold s.mu for writing.
type change func(s *Store)

func (s *Store) apply(changes []change) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range changes {
		c(s)
	}
}

func (s *Store) read(fn func(s *Store)) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fn(s)
}

// citySlot is a one-token semaphore; holding the token means owning the city.
type citySlot chan struct{}

func (s *Store) slotFor(cityID kernel.UUID) citySlot {
	slot, _ := s.cityLocks.LoadOrStore(cityID, make(citySlot, 1))
	return slot.(citySlot)
}
