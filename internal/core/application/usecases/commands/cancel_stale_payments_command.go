package commands

import (
	"errors"
	"time"

	"sales/internal/pkg/guard"
)

var ErrCancelStalePaymentsCommandIsNotConstructed = errors.New(
	"CancelStalePaymentsCommand must be created via NewCancelStalePaymentsCommand constructor",
)

// CancelStalePaymentsCommand requests cancellation of every order that has
// been awaiting payment longer than the given window.
type CancelStalePaymentsCommand struct {
	window time.Duration

	guard guard.ConstructorGuard
}

// NewCancelStalePaymentsCommand creates the command with the payment window.
func NewCancelStalePaymentsCommand(window time.Duration) (CancelStalePaymentsCommand, error) {
	if window <= 0 {
		return CancelStalePaymentsCommand{}, errors.New("payment window must be positive")
	}

	return CancelStalePaymentsCommand{
		window: window,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelStalePaymentsCommand) Validate() error {
	return c.guard.Validate(ErrCancelStalePaymentsCommandIsNotConstructed)
}

// Window returns how long an order may await payment before it is cancelled.
func (c CancelStalePaymentsCommand) Window() time.Duration {
	return c.window
}
