package queries

import (
	"context"

	"sales/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler lists every order projection in the database.
// Results are sorted by creation time, newest first, for stable output.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order listings.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle returns every order. An empty store yields an empty slice, not an
// error.
func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT ` + orderColumns + `
		FROM orders
		ORDER BY created_at DESC, id
	`).Rows()
	if err != nil {
		return nil, errs.NewPersistenceError("query orders", err)
	}
	defer rows.Close()

	for rows.Next() {
		resp, scanErr := scanOrderResponse(rows)
		if scanErr != nil {
			return nil, errs.NewPersistenceError("scan orders", scanErr)
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewPersistenceError("query orders", err)
	}

	return orders, nil
}
