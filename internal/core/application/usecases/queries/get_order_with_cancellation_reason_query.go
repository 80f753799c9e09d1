package queries

import (
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/guard"
)

var ErrGetOrderWithCancellationReasonQueryIsNotConstructed = errors.New(
	"GetOrderWithCancellationReasonQuery must be created via NewGetOrderWithCancellationReasonQuery constructor",
)

// GetOrderWithCancellationReasonQuery retrieves one order by id together with
// its cancellation reason, if any.
type GetOrderWithCancellationReasonQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderWithCancellationReasonQuery creates a query for the given order id.
func NewGetOrderWithCancellationReasonQuery(orderID kernel.UUID) (GetOrderWithCancellationReasonQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderWithCancellationReasonQuery{}, err
	}

	return GetOrderWithCancellationReasonQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderWithCancellationReasonQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderWithCancellationReasonQueryIsNotConstructed)
}

// OrderID returns the requested order's identifier.
func (q GetOrderWithCancellationReasonQuery) OrderID() kernel.UUID {
	return q.orderID
}
