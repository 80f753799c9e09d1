package inmem

import (
	"context"
	"errors"
	"sort"
	"time"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/core/ports"
	"sales/internal/pkg/errs"
)

// ErrNoActiveTransaction is returned by Commit and Rollback when Begin was
// never called or the unit of work already completed.
var ErrNoActiveTransaction = errors.New("no active transaction")

type opKind int

const (
	opAdd opKind = iota
	opUpdate
	opDelete
)

type stagedOp struct {
	kind      opKind
	aggregate *order.Order
}

// UnitOfWorkFactory creates in-memory unit of work instances over one shared
// store.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory bound to the given store.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create produces a new unit of work ready to begin a transaction.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork stages writes until Commit, then applies them atomically under
// the store lock with the same version checks the database adapter performs.
// Reads always observe committed state. Not safe for concurrent use; each
// operation gets its own instance.
type UnitOfWork struct {
	store  *Store
	active bool
	staged []stagedOp
}

// Begin starts the transaction. Repeated calls are a no-op.
func (uow *UnitOfWork) Begin(_ context.Context) error {
	uow.active = true
	return nil
}

// Commit applies every staged write atomically. Version checks run against
// committed state; the first failure aborts the whole batch and nothing is
// applied.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	uow.store.mu.Lock()
	defer uow.store.mu.Unlock()

	// Validate the whole batch before touching the store.
	for _, op := range uow.staged {
		if err := uow.check(op); err != nil {
			return err
		}
	}

	for _, op := range uow.staged {
		key := op.aggregate.ID().String()
		switch op.kind {
		case opAdd:
			stored, err := snapshot(op.aggregate, op.aggregate.Version())
			if err != nil {
				return errs.NewPersistenceError("add order", err)
			}
			uow.store.orders[key] = stored
		case opUpdate:
			stored, err := snapshot(op.aggregate, op.aggregate.Version()+1)
			if err != nil {
				return errs.NewPersistenceError("update order", err)
			}
			uow.store.orders[key] = stored
		case opDelete:
			delete(uow.store.orders, key)
		}
	}

	uow.active = false
	uow.staged = nil
	return nil
}

func (uow *UnitOfWork) check(op stagedOp) error {
	key := op.aggregate.ID().String()
	stored, exists := uow.store.orders[key]

	switch op.kind {
	case opAdd:
		if exists {
			return errs.NewPersistenceError("add order",
				errors.New("order already exists: "+key))
		}
	case opUpdate, opDelete:
		if !exists {
			return errs.NewObjectNotFoundError("orderId", key)
		}
		if stored.Version() != op.aggregate.Version() {
			return errs.NewVersionConflictError("orderId", key, op.aggregate.Version())
		}
	}

	return nil
}

// Rollback discards all staged writes.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	uow.active = false
	uow.staged = nil
	return nil
}

// OrderRepository returns the repository view of this unit of work.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &repository{uow: uow}
}

// repository implements ports.OrderRepository over the unit of work. Writes
// are staged; reads go straight to committed store state.
type repository struct {
	uow *UnitOfWork
}

func (r *repository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.uow.staged = append(r.uow.staged, stagedOp{kind: opAdd, aggregate: aggregate})
	return nil
}

func (r *repository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.uow.staged = append(r.uow.staged, stagedOp{kind: opUpdate, aggregate: aggregate})
	return nil
}

func (r *repository) Delete(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.uow.staged = append(r.uow.staged, stagedOp{kind: opDelete, aggregate: aggregate})
	return nil
}

func (r *repository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	store := r.uow.store
	store.mu.RLock()
	defer store.mu.RUnlock()

	stored, exists := store.orders[id.String()]
	if !exists {
		return nil, errs.NewObjectNotFoundError("orderId", id.String())
	}

	return snapshot(stored, stored.Version())
}

func (r *repository) GetAll(_ context.Context) ([]*order.Order, error) {
	return r.collect(func(*order.Order) bool { return true })
}

func (r *repository) GetAllByCustomer(_ context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	return r.collect(func(o *order.Order) bool {
		return o.CustomerID().IsEqual(customerID)
	})
}

func (r *repository) GetAllAwaitingPaymentOlderThan(_ context.Context, cutoff time.Time) ([]*order.Order, error) {
	return r.collect(func(o *order.Order) bool {
		return o.Status() == order.AwaitingPayment &&
			o.UpdatedAt() != nil && o.UpdatedAt().Before(cutoff)
	})
}

func (r *repository) collect(match func(*order.Order) bool) ([]*order.Order, error) {
	store := r.uow.store
	store.mu.RLock()
	defer store.mu.RUnlock()

	orders := make([]*order.Order, 0)
	for _, stored := range store.orders {
		if !match(stored) {
			continue
		}
		copied, err := snapshot(stored, stored.Version())
		if err != nil {
			return nil, err
		}
		orders = append(orders, copied)
	}

	// Map iteration order is random; sort for deterministic output.
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].ID().String() < orders[j].ID().String()
	})

	return orders, nil
}
