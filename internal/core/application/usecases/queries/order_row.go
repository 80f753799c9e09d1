package queries

import (
	"database/sql"
	"time"

	"sales/internal/core/domain/model/order"
)

// orderColumns is the projection shared by all order queries except the
// cancellation reason, which only the dedicated query selects.
const orderColumns = `
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
	cancelled_at
`

func scanOrderResponse(rows *sql.Rows) (OrderResponse, error) {
	var (
		resp   OrderResponse
		status int
	)

	err := rows.Scan(
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
	)
	if err != nil {
		return OrderResponse{}, err
	}

	resp.Status = order.Status(status).String()
	resp.CreatedAt = resp.CreatedAt.UTC()
	normalizeTimes(&resp)

	return resp, nil
}

func normalizeTimes(resp *OrderResponse) {
	for _, ts := range []**time.Time{&resp.UpdatedAt, &resp.PaidAt, &resp.ConfirmedAt, &resp.CancelledAt} {
		if *ts != nil {
			utc := (**ts).UTC()
			*ts = &utc
		}
	}
}
