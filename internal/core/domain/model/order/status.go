package order

import (
	"sales/internal/pkg/errs"
)

// Status represents the lifecycle state of a sales order. It implements a
// state machine with defined transitions so orders only ever move forward
// along the business workflow.
//
// State transitions:
//
//	Pending ──> AwaitingPayment ──> Paid ──> Confirmed
//	   │               │             │
//	   └───────────────┴─────────────┴──────> Cancelled
//
// Confirmed and Cancelled are terminal; no transition leaves them.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: the order was created and is being processed.
	Pending

	// AwaitingPayment indicates processing finished and payment is expected.
	AwaitingPayment

	// Paid indicates payment was received for the order.
	Paid

	// Confirmed indicates the sale was finalized. Terminal.
	Confirmed

	// Cancelled indicates the order was cancelled with a reason. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "Unknown",
		Pending:         "Pending",
		AwaitingPayment: "AwaitingPayment",
		Paid:            "Paid",
		Confirmed:       "Confirmed",
		Cancelled:       "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:         "Pending",
		AwaitingPayment: "AwaitingPayment",
		Paid:            "Paid",
		Confirmed:       "Confirmed",
		Cancelled:       "Cancelled",
	}
}

// Validate checks that the Status is one of the defined lifecycle states.
// Unknown (0) and out-of-range values are invalid. Used when reconstructing
// orders from persistence or parsing external input.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the human-readable name of the status. It implements
// fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no transition leaves this status.
func (s Status) IsTerminal() bool {
	return s == Confirmed || s == Cancelled
}

// CompleteProcessing transitions the status to AwaitingPayment.
//
// Valid transitions:
//   - Pending -> AwaitingPayment
//
// Any other source status fails with InvalidStatusTransitionError.
func (s Status) CompleteProcessing() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidStatusTransitionError("CompleteProcessing", s.String())
	}

	return AwaitingPayment, nil
}

// ConfirmPayment transitions the status to Paid.
//
// Valid transitions:
//   - AwaitingPayment -> Paid
//
// Any other source status fails with InvalidStatusTransitionError.
func (s Status) ConfirmPayment() (Status, error) {
	if s != AwaitingPayment {
		return 0, errs.NewInvalidStatusTransitionError("ConfirmPayment", s.String())
	}

	return Paid, nil
}

// Confirm transitions the status to Confirmed.
//
// Valid transitions:
//   - Paid -> Confirmed
//
// Any other source status fails with InvalidStatusTransitionError.
// Confirmed is a final state with no further transitions.
func (s Status) Confirm() (Status, error) {
	if s != Paid {
		return 0, errs.NewInvalidStatusTransitionError("Confirm", s.String())
	}

	return Confirmed, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//   - AwaitingPayment -> Cancelled
//   - Paid -> Cancelled
//
// Confirmed and already-Cancelled orders cannot be cancelled; those fail
// with InvalidStatusTransitionError rather than silently no-opping.
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != AwaitingPayment && s != Paid {
		return 0, errs.NewInvalidStatusTransitionError("Cancel", s.String())
	}

	return Cancelled, nil
}
