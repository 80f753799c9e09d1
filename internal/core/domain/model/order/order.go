package order

import (
	"errors"
	"strings"
	"time"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders in
	// circulation passed validation.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order is the aggregate root linking a customer to a vehicle purchase.
// It owns the order lifecycle from creation through payment to confirmation
// or cancellation.
//
// Order follows these invariants:
//   - customerId and vehicleId are never the zero identity
//   - totalPrice is a valid Money value
//   - status only moves forward along the defined transition graph
//   - paidAt/confirmedAt/cancelledAt are set exactly once, by the transition
//     entering the matching status
//   - cancellationReason is present if and only if the order is Cancelled
//   - updatedAt is refreshed on every successful transition and absent before
//     the first one; createdAt is fixed at construction
//
// All fields are private; mutation happens exclusively through the guarded
// transition methods.
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	vehicleID  kernel.UUID
	totalPrice kernel.Money

	status Status

	createdAt   time.Time
	updatedAt   *time.Time
	paidAt      *time.Time
	confirmedAt *time.Time
	cancelledAt *time.Time

	cancellationReason string

	// version supports optimistic locking at commit time. It is read and
	// advanced by the persistence adapters, never by transitions.
	version int

	isConstructed bool
}

// NewOrder creates a new Order for the given customer, vehicle, and price.
// A fresh unique id is assigned, the status starts at Pending, createdAt is
// set to the current UTC time, and all optional timestamps are unset.
//
// Validation failures (zero identity, unconstructed price) are reported as a
// joined error so the caller sees every problem at once.
func NewOrder(customerID, vehicleID kernel.UUID, totalPrice kernel.Money) (*Order, error) {
	order := &Order{
		id:            kernel.NewUUID(),
		status:        Pending,
		createdAt:     time.Now().UTC(),
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setCustomerID(customerID),
		order.setVehicleID(vehicleID),
		order.setTotalPrice(totalPrice),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder rebuilds an Order from persisted state. It is intended for
// repository adapters only; it re-validates identity, price, status, and the
// cancellation-reason invariant, but does not re-run transition rules.
func RestoreOrder(
	id, customerID, vehicleID kernel.UUID,
	totalPrice kernel.Money,
	status Status,
	createdAt time.Time,
	updatedAt, paidAt, confirmedAt, cancelledAt *time.Time,
	cancellationReason string,
	version int,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("id", err)
	}

	order := &Order{
		id:                 id,
		status:             status,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
		paidAt:             paidAt,
		confirmedAt:        confirmedAt,
		cancelledAt:        cancelledAt,
		cancellationReason: cancellationReason,
		version:            version,
		isConstructed:      true,
	}

	if err := errors.Join(
		order.setCustomerID(customerID),
		order.setVehicleID(vehicleID),
		order.setTotalPrice(totalPrice),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if (status == Cancelled) != (cancellationReason != "") {
		return nil, errs.NewValueIsInvalidError("cancellationReason")
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder, preventing use of zero-value structs.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the purchasing customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// VehicleID returns the purchased vehicle's identifier.
func (o *Order) VehicleID() kernel.UUID {
	return o.vehicleID
}

// TotalPrice returns the order's total price.
func (o *Order) TotalPrice() kernel.Money {
	return o.totalPrice
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the construction timestamp. Never modified afterwards.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the time of the last successful transition.
// Nil until the first transition occurs.
func (o *Order) UpdatedAt() *time.Time {
	return o.updatedAt
}

// PaidAt returns the time payment was confirmed. Nil before Paid.
func (o *Order) PaidAt() *time.Time {
	return o.paidAt
}

// ConfirmedAt returns the time the order was confirmed. Nil before Confirmed.
func (o *Order) ConfirmedAt() *time.Time {
	return o.confirmedAt
}

// CancelledAt returns the time the order was cancelled. Nil unless Cancelled.
func (o *Order) CancelledAt() *time.Time {
	return o.cancelledAt
}

// CancellationReason returns the reason the order was cancelled.
// Empty unless the order is Cancelled.
func (o *Order) CancellationReason() string {
	return o.cancellationReason
}

// Version returns the optimistic-locking version counter.
func (o *Order) Version() int {
	return o.version
}

// CompleteProcessing moves the order from Pending to AwaitingPayment.
// Fails with InvalidStatusTransitionError from any other status.
func (o *Order) CompleteProcessing() error {
	newStatus, err := o.status.CompleteProcessing()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// ConfirmPayment moves the order from AwaitingPayment to Paid and records
// paidAt. Fails with InvalidStatusTransitionError from any other status.
func (o *Order) ConfirmPayment() error {
	newStatus, err := o.status.ConfirmPayment()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	o.status = newStatus
	o.paidAt = &now
	o.touch()
	return nil
}

// Confirm moves the order from Paid to Confirmed and records confirmedAt.
// Confirmed is terminal. Fails with InvalidStatusTransitionError from any
// other status.
func (o *Order) Confirm() error {
	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	o.status = newStatus
	o.confirmedAt = &now
	o.touch()
	return nil
}

// Cancel moves the order to Cancelled from Pending, AwaitingPayment, or Paid,
// recording cancelledAt and the reason. A blank reason fails with
// ValueIsRequiredError regardless of the current status; cancelling a
// Confirmed or already-Cancelled order fails with InvalidStatusTransitionError.
func (o *Order) Cancel(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	o.status = newStatus
	o.cancelledAt = &now
	o.cancellationReason = reason
	o.touch()
	return nil
}

func (o *Order) touch() {
	now := time.Now().UTC()
	o.updatedAt = &now
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("vehicleId", err)
	}
	o.vehicleID = vehicleID
	return nil
}

func (o *Order) setTotalPrice(totalPrice kernel.Money) error {
	if err := totalPrice.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("totalPrice", err)
	}
	o.totalPrice = totalPrice
	return nil
}
