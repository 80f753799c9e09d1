// Package inmem provides an in-memory order store implementing the same unit
// of work and repository ports as the PostgreSQL adapter. It backs tests and
// local development where a database is unwanted; semantics, including
// optimistic locking, match the durable adapter.
package inmem

import (
	"sync"
	"time"

	"sales/internal/core/domain/model/order"
)

// Store holds committed order state. Aggregates are stored as private
// snapshots; readers and writers always work on copies, so no caller can
// mutate committed state without going through a unit of work.
type Store struct {
	mu     sync.RWMutex
	orders map[string]*order.Order
}

// NewStore creates an empty in-memory order store.
func NewStore() *Store {
	return &Store{
		orders: make(map[string]*order.Order),
	}
}

// snapshot rebuilds an aggregate copy through RestoreOrder so stored state
// never aliases caller state. The version override lets commits advance the
// stored version without touching the caller's aggregate.
func snapshot(aggregate *order.Order, version int) (*order.Order, error) {
	return order.RestoreOrder(
		aggregate.ID(),
		aggregate.CustomerID(),
		aggregate.VehicleID(),
		aggregate.TotalPrice(),
		aggregate.Status(),
		aggregate.CreatedAt(),
		copyTime(aggregate.UpdatedAt()),
		copyTime(aggregate.PaidAt()),
		copyTime(aggregate.ConfirmedAt()),
		copyTime(aggregate.CancelledAt()),
		aggregate.CancellationReason(),
		version,
	)
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
