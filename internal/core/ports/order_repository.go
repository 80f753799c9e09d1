// Package ports defines the persistence and collaborator contracts consumed by
// the application layer. These interfaces decouple the domain from
// infrastructure and keep command handlers testable.
package ports

import (
	"context"
	"time"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Writes performed through a repository obtained from a UnitOfWork are staged
// until the unit of work commits.
//
// Error contract:
//   - Get returns errs.ObjectNotFoundError when no order has the given id
//   - Update and Delete return errs.VersionConflictError when the stored
//     version moved since the aggregate was loaded
//   - unexpected storage failures surface as errs.PersistenceError
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, guarded by the
	// aggregate's version counter.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves every order. An empty result is valid, not an error.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllByCustomer retrieves the orders placed by one customer,
	// matched exactly on customer id.
	GetAllByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	// GetAllAwaitingPaymentOlderThan retrieves orders that entered
	// AwaitingPayment before the cutoff. Used by the payment timeout job.
	GetAllAwaitingPaymentOlderThan(ctx context.Context, cutoff time.Time) ([]*order.Order, error)

	// Delete removes an order aggregate, guarded by its version counter.
	// Deletion is legal from any status, including terminal ones.
	Delete(ctx context.Context, aggregate *order.Order) error
}
