package queries

import (
	"context"

	"sales/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetCustomerOrdersQueryHandler lists the order projections belonging to one
// customer. An unknown customer id simply yields an empty result; customers
// are owned by another service and not validated here.
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersQueryHandler creates a handler for per-customer listings.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle returns the customer's orders, matched exactly on customer id,
// sorted by creation time, newest first.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE customer_id = ?
		ORDER BY created_at DESC, id
	`, query.CustomerID().String()).Rows()
	if err != nil {
		return nil, errs.NewPersistenceError("query customer orders", err)
	}
	defer rows.Close()

	for rows.Next() {
		resp, scanErr := scanOrderResponse(rows)
		if scanErr != nil {
			return nil, errs.NewPersistenceError("scan customer orders", scanErr)
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewPersistenceError("query customer orders", err)
	}

	return orders, nil
}
