package commands

import (
	"context"
	"time"

	"sales/internal/pkg/errs"
)

// StalePaymentCancellationReason is recorded on orders cancelled because the
// payment window elapsed.
const StalePaymentCancellationReason = "payment window expired"

// CancelStalePaymentsCommandHandler cancels orders stuck in AwaitingPayment
// past the configured window. It is invoked periodically by a background job.
type CancelStalePaymentsCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelStalePaymentsCommandHandler creates the handler.
func NewCancelStalePaymentsCommandHandler(uowFactory OrderUoWFactory) CancelStalePaymentsCommandHandler {
	return CancelStalePaymentsCommandHandler{uowFactory: uowFactory}
}

// Handle cancels every awaiting-payment order older than the window and
// returns how many were cancelled. All cancellations commit atomically.
func (h CancelStalePaymentsCommandHandler) Handle(ctx context.Context, cmd CancelStalePaymentsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	cutoff := time.Now().UTC().Add(-cmd.Window())
	stale, err := repo.GetAllAwaitingPaymentOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	for _, aggregate := range stale {
		if err = aggregate.Cancel(StalePaymentCancellationReason); err != nil {
			return 0, err
		}
		if err = repo.Update(ctx, aggregate); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, errs.NewPersistenceError("commit", err)
	}

	return len(stale), nil
}
