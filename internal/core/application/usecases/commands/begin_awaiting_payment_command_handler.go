package commands

import (
	"context"

	"sales/internal/pkg/errs"
)

// BeginAwaitingPaymentCommandHandler moves an order from Pending to
// AwaitingPayment within a single transaction.
type BeginAwaitingPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewBeginAwaitingPaymentCommandHandler creates the handler.
func NewBeginAwaitingPaymentCommandHandler(uowFactory OrderUoWFactory) BeginAwaitingPaymentCommandHandler {
	return BeginAwaitingPaymentCommandHandler{uowFactory: uowFactory}
}

// Handle loads the order, applies CompleteProcessing, and commits.
// A missing order fails with ObjectNotFoundError; an illegal transition
// propagates unchanged and nothing is committed.
func (h BeginAwaitingPaymentCommandHandler) Handle(ctx context.Context, cmd BeginAwaitingPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.CompleteProcessing(); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return errs.NewPersistenceError("commit", err)
	}

	return nil
}
