// Package orderrepo persists order aggregates in PostgreSQL through GORM,
// converting between the domain model and its relational representation.
package orderrepo

import (
	"time"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the database row backing an order aggregate. Timestamps are
// owned by the domain model, so GORM's automatic time tracking is disabled.
// The version column guards updates and deletes against concurrent writers.
type OrderDTO struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID         uuid.UUID       `gorm:"type:uuid;index"`
	VehicleID          uuid.UUID       `gorm:"type:uuid"`
	PriceAmount        decimal.Decimal `gorm:"type:numeric(19,4)"`
	PriceCurrency      string          `gorm:"type:char(3)"`
	Status             int             `gorm:"index"`
	CreatedAt          time.Time       `gorm:"autoCreateTime:false"`
	UpdatedAt          *time.Time      `gorm:"autoUpdateTime:false"`
	PaidAt             *time.Time
	ConfirmedAt        *time.Time
	CancelledAt        *time.Time
	CancellationReason *string
	Version            int
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var reason *string
	if r := aggregate.CancellationReason(); r != "" {
		reason = &r
	}

	return OrderDTO{
		ID:                 aggregate.ID().Bytes(),
		CustomerID:         aggregate.CustomerID().Bytes(),
		VehicleID:          aggregate.VehicleID().Bytes(),
		PriceAmount:        aggregate.TotalPrice().Amount(),
		PriceCurrency:      aggregate.TotalPrice().Currency(),
		Status:             int(aggregate.Status()),
		CreatedAt:          aggregate.CreatedAt(),
		UpdatedAt:          aggregate.UpdatedAt(),
		PaidAt:             aggregate.PaidAt(),
		ConfirmedAt:        aggregate.ConfirmedAt(),
		CancelledAt:        aggregate.CancelledAt(),
		CancellationReason: reason,
		Version:            aggregate.Version(),
	}
}

// toDomain rebuilds an order aggregate from a database row via RestoreOrder,
// which re-validates the persisted state.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	vehicleID, err := kernel.UUIDFromBytes(dto.VehicleID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.PriceAmount, dto.PriceCurrency)
	if err != nil {
		return nil, err
	}

	var reason string
	if dto.CancellationReason != nil {
		reason = *dto.CancellationReason
	}

	return order.RestoreOrder(
		id, customerID, vehicleID,
		price,
		order.Status(dto.Status),
		dto.CreatedAt.UTC(),
		utcOrNil(dto.UpdatedAt),
		utcOrNil(dto.PaidAt),
		utcOrNil(dto.ConfirmedAt),
		utcOrNil(dto.CancelledAt),
		reason,
		dto.Version,
	)
}

func utcOrNil(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	utc := t.UTC()
	return &utc
}
