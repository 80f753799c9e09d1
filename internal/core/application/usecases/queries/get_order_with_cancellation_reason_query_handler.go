package queries

import (
	"context"

	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderWithCancellationReasonQueryHandler reads a single order projection
// including the cancellation reason.
type GetOrderWithCancellationReasonQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderWithCancellationReasonQueryHandler creates the handler.
func NewGetOrderWithCancellationReasonQueryHandler(db *gorm.DB) GetOrderWithCancellationReasonQueryHandler {
	return GetOrderWithCancellationReasonQueryHandler{db: db}
}

// Handle returns the order projection with its cancellation reason.
// The reason is the empty string for non-cancelled orders.
// A missing order yields errs.ObjectNotFoundError.
func (h GetOrderWithCancellationReasonQueryHandler) Handle(
	ctx context.Context,
	query GetOrderWithCancellationReasonQuery,
) (OrderWithCancellationReasonResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderWithCancellationReasonResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			vehicle_id,
			status,
			price_amount,
			price_currency,
			created_at,
			updated_at,
			paid_at,
			confirmed_at,
			cancelled_at,
			cancellation_reason
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Rows()
	if err != nil {
		return OrderWithCancellationReasonResponse{}, errs.NewPersistenceError("query order", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderWithCancellationReasonResponse{}, errs.NewPersistenceError("query order", err)
		}
		return OrderWithCancellationReasonResponse{},
			errs.NewObjectNotFoundError("orderId", query.OrderID().String())
	}

	var (
		resp   OrderWithCancellationReasonResponse
		status int
		reason *string
	)

	err = rows.Scan(
		&resp.ID,
		&resp.CustomerID,
		&resp.VehicleID,
		&status,
		&resp.PriceAmount,
		&resp.PriceCurrency,
		&resp.CreatedAt,
		&resp.UpdatedAt,
		&resp.PaidAt,
		&resp.ConfirmedAt,
		&resp.CancelledAt,
		&reason,
	)
	if err != nil {
		return OrderWithCancellationReasonResponse{}, errs.NewPersistenceError("scan order", err)
	}

	resp.Status = order.Status(status).String()
	resp.CreatedAt = resp.CreatedAt.UTC()
	normalizeTimes(&resp.OrderResponse)
	if reason != nil {
		resp.CancellationReason = *reason
	}

	if err = rows.Err(); err != nil {
		return OrderWithCancellationReasonResponse{}, errs.NewPersistenceError("query order", err)
	}

	return resp, nil
}
