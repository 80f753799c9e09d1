// Package queries contains the read operations of the order lifecycle service.
// Query handlers bypass the domain model and read projection rows straight
// from the store, returning explicit response structs.
package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderResponse is the standard order projection returned by order queries.
// The cancellation reason is deliberately absent; retrieving it requires the
// dedicated with-cancellation-reason query.
type OrderResponse struct {
	ID            uuid.UUID       `json:"id"`
	CustomerID    uuid.UUID       `json:"customerId"`
	VehicleID     uuid.UUID       `json:"vehicleId"`
	Status        string          `json:"status"`
	PriceAmount   decimal.Decimal `json:"priceAmount"`
	PriceCurrency string          `json:"priceCurrency"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     *time.Time      `json:"updatedAt,omitempty"`
	PaidAt        *time.Time      `json:"paidAt,omitempty"`
	ConfirmedAt   *time.Time      `json:"confirmedAt,omitempty"`
	CancelledAt   *time.Time      `json:"cancelledAt,omitempty"`
}

// OrderWithCancellationReasonResponse extends the standard projection with the
// cancellation reason. The reason is empty unless the order is cancelled.
type OrderWithCancellationReasonResponse struct {
	OrderResponse
	CancellationReason string `json:"cancellationReason,omitempty"`
}
