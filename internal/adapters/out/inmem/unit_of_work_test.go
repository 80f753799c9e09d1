package inmem_test

import (
	"testing"
	"time"

	"sales/internal/adapters/out/inmem"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	price, err := kernel.NewMoney(decimal.NewFromInt(18000), "EUR")
	require.NoError(t, err)
	aggregate, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), price)
	require.NoError(t, err)
	return aggregate
}

func TestUnitOfWork_AddAndGet(t *testing.T) {
	ctx := t.Context()
	factory := inmem.NewUnitOfWorkFactory(inmem.NewStore())
	aggregate := newTestOrder(t)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.OrderRepository().Add(ctx, aggregate))
	require.NoError(t, uow.Commit(ctx))

	loaded, err := factory.Create().OrderRepository().Get(ctx, aggregate.ID())
	require.NoError(t, err)
	assert.True(t, loaded.ID().IsEqual(aggregate.ID()))
	assert.Equal(t, order.Pending, loaded.Status())
	assert.True(t, loaded.TotalPrice().IsEqual(aggregate.TotalPrice()))
}

func TestUnitOfWork_ReadsReturnCopies(t *testing.T) {
	ctx := t.Context()
	factory := inmem.NewUnitOfWorkFactory(inmem.NewStore())
	aggregate := newTestOrder(t)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.OrderRepository().Add(ctx, aggregate))
	require.NoError(t, uow.Commit(ctx))

	loaded, err := factory.Create().OrderRepository().Get(ctx, aggregate.ID())
	require.NoError(t, err)

	// Mutating the returned aggregate must not leak into committed state.
	require.NoError(t, loaded.CompleteProcessing())

	reloaded, err := factory.Create().OrderRepository().Get(ctx, aggregate.ID())
	require.NoError(t, err)
	assert.Equal(t, order.Pending, reloaded.Status())
}

func TestUnitOfWork_RollbackDiscardsWrites(t *testing.T) {
	ctx := t.Context()
	factory := inmem.NewUnitOfWorkFactory(inmem.NewStore())
	aggregate := newTestOrder(t)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.OrderRepository().Add(ctx, aggregate))
	require.NoError(t, uow.Rollback(ctx))

	_, err := factory.Create().OrderRepository().Get(ctx, aggregate.ID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestUnitOfWork_CommitWithoutBegin(t *testing.T) {
	ctx := t.Context()
	factory := inmem.NewUnitOfWorkFactory(inmem.NewStore())

	uow := factory.Create()
	require.ErrorIs(t, uow.Commit(ctx), inmem.ErrNoActiveTransaction)
	require.ErrorIs(t, uow.Rollback(ctx), inmem.ErrNoActiveTransaction)
}

func TestUnitOfWork_UpdateAdvancesVersion(t *testing.T) {
	ctx := t.Context()
	factory := inmem.NewUnitOfWorkFactory(inmem.NewStore())
	aggregate := newTestOrder(t)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.OrderRepository().Add(ctx, aggregate))
	require.NoError(t, uow.Commit(ctx))

	step := factory.Create()
	require.NoError(t, step.Begin(ctx))
	loaded, err := step.OrderRepository().Get(ctx, aggregate.ID())
	require.NoError(t, err)
	require.NoError(t, loaded.CompleteProcessing())
	require.NoError(t, step.OrderRepository().Update(ctx, loaded))
	require.NoError(t, step.Commit(ctx))

	reloaded, err := factory.Create().OrderRepository().Get(ctx, aggregate.ID())
	require.NoError(t, err)
	assert.Equal(t, order.AwaitingPayment, reloaded.Status())
	assert.Equal(t, 2, reloaded.Version())
}

func TestUnitOfWork_StaleUpdateConflicts(t *testing.T) {
	ctx := t.Context()
	factory := inmem.NewUnitOfWorkFactory(inmem.NewStore())
	aggregate := newTestOrder(t)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.OrderRepository().Add(ctx, aggregate))
	require.NoError(t, uow.Commit(ctx))

	// Two units of work load the same committed version.
	first := factory.Create()
	require.NoError(t, first.Begin(ctx))
	firstLoad, err := first.OrderRepository().Get(ctx, aggregate.ID())
	require.NoError(t, err)

	second := factory.Create()
	require.NoError(t, second.Begin(ctx))
	secondLoad, err := second.OrderRepository().Get(ctx, aggregate.ID())
	require.NoError(t, err)

	require.NoError(t, firstLoad.CompleteProcessing())
	require.NoError(t, first.OrderRepository().Update(ctx, firstLoad))
	require.NoError(t, first.Commit(ctx))

	require.NoError(t, secondLoad.Cancel("duplicate request"))
	require.NoError(t, second.OrderRepository().Update(ctx, secondLoad))
	err = second.Commit(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrVersionConflict)

	// The losing write left no trace.
	reloaded, err := factory.Create().OrderRepository().Get(ctx, aggregate.ID())
	require.NoError(t, err)
	assert.Equal(t, order.AwaitingPayment, reloaded.Status())
}

func TestUnitOfWork_Delete(t *testing.T) {
	ctx := t.Context()
	factory := inmem.NewUnitOfWorkFactory(inmem.NewStore())
	aggregate := newTestOrder(t)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.OrderRepository().Add(ctx, aggregate))
	require.NoError(t, uow.Commit(ctx))

	del := factory.Create()
	require.NoError(t, del.Begin(ctx))
	require.NoError(t, del.OrderRepository().Delete(ctx, aggregate))
	require.NoError(t, del.Commit(ctx))

	_, err := factory.Create().OrderRepository().Get(ctx, aggregate.ID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestUnitOfWork_GetAllByCustomer(t *testing.T) {
	ctx := t.Context()
	factory := inmem.NewUnitOfWorkFactory(inmem.NewStore())
	price, err := kernel.NewMoney(decimal.NewFromInt(9000), "USD")
	require.NoError(t, err)
	customerID := kernel.NewUUID()

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	for range 2 {
		aggregate, orderErr := order.NewOrder(customerID, kernel.NewUUID(), price)
		require.NoError(t, orderErr)
		require.NoError(t, uow.OrderRepository().Add(ctx, aggregate))
	}
	other, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), price)
	require.NoError(t, err)
	require.NoError(t, uow.OrderRepository().Add(ctx, other))
	require.NoError(t, uow.Commit(ctx))

	result, err := factory.Create().OrderRepository().GetAllByCustomer(ctx, customerID)
	require.NoError(t, err)
	assert.Len(t, result, 2)
	for _, aggregate := range result {
		assert.True(t, aggregate.CustomerID().IsEqual(customerID))
	}
}

func TestUnitOfWork_GetAllAwaitingPaymentOlderThan(t *testing.T) {
	ctx := t.Context()
	factory := inmem.NewUnitOfWorkFactory(inmem.NewStore())

	awaiting := newTestOrder(t)
	require.NoError(t, awaiting.CompleteProcessing())
	pending := newTestOrder(t)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.OrderRepository().Add(ctx, awaiting))
	require.NoError(t, uow.OrderRepository().Add(ctx, pending))
	require.NoError(t, uow.Commit(ctx))

	repo := factory.Create().OrderRepository()

	result, err := repo.GetAllAwaitingPaymentOlderThan(ctx, time.Now().UTC().Add(time.Minute))
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.True(t, result[0].ID().IsEqual(awaiting.ID()))

	result, err = repo.GetAllAwaitingPaymentOlderThan(ctx, time.Now().UTC().Add(-time.Minute))
	require.NoError(t, err)
	assert.Empty(t, result)
}
