package ports

import (
	"context"

	"sales/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// VehiclePrice is the pricing information returned by the vehicle service.
type VehiclePrice struct {
	VehicleID kernel.UUID
	Model     string
	Price     decimal.Decimal
	Currency  string
}

// VehiclePricing looks up the current price of a vehicle in the external
// vehicle service.
//
// Error contract:
//   - an unknown vehicle yields errs.ObjectNotFoundError ("unknown vehicle" is
//     a caller problem, not an outage)
//   - transport failures, timeouts, and malformed payloads yield
//     errs.ExternalServiceError
type VehiclePricing interface {
	GetVehiclePrice(ctx context.Context, vehicleID kernel.UUID) (*VehiclePrice, error)
}
