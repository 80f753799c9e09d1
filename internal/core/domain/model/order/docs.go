// Package order provides the sales order aggregate and its lifecycle rules.
//
// The package includes:
//   - Order: the aggregate root holding identity, parties, price, status,
//     and lifecycle timestamps
//   - Status: a state machine enforcing the legal transitions
//
// Key business rules:
//   - Orders require a valid customer, vehicle, and non-negative price
//   - The lifecycle is Pending -> AwaitingPayment -> Paid -> Confirmed
//   - Cancellation is possible from any non-terminal status and requires
//     a reason
//   - Confirmed and Cancelled are terminal
//
// All mutation goes through the aggregate's transition methods; validation
// and transition failures are returned as typed errors from the errs package
// so callers can branch on kind.
package order
