package commands

import (
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/guard"
)

var ErrBeginAwaitingPaymentCommandIsNotConstructed = errors.New(
	"BeginAwaitingPaymentCommand must be created via NewBeginAwaitingPaymentCommand constructor",
)

// BeginAwaitingPaymentCommand requests that an order finish processing and
// start awaiting payment.
type BeginAwaitingPaymentCommand struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewBeginAwaitingPaymentCommand creates the command for the given order id.
func NewBeginAwaitingPaymentCommand(orderID kernel.UUID) (BeginAwaitingPaymentCommand, error) {
	if err := orderID.Validate(); err != nil {
		return BeginAwaitingPaymentCommand{}, err
	}

	return BeginAwaitingPaymentCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c BeginAwaitingPaymentCommand) Validate() error {
	return c.guard.Validate(ErrBeginAwaitingPaymentCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c BeginAwaitingPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}
