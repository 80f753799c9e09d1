package commands

import (
	"context"
	"errors"
	"fmt"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/core/ports"
	"sales/internal/pkg/errs"
)

// CreateOrderCommandHandler opens new sales orders. It resolves the vehicle's
// current price through the pricing collaborator, builds the aggregate, and
// persists it in one transaction.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	pricing    ports.VehiclePricing
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, pricing ports.VehiclePricing) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		pricing:    pricing,
	}
}

// Handle processes the order creation command and returns the new order's id.
// An unknown vehicle is a validation failure, not an outage, and performs no
// store write. Pricing transport failures propagate as ExternalServiceError.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	vehiclePrice, err := h.pricing.GetVehiclePrice(ctx, cmd.VehicleID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("vehicleId",
			fmt.Errorf("vehicle %s not found", cmd.VehicleID()))
	}
	if err != nil {
		return kernel.UUID{}, err
	}

	totalPrice, err := kernel.NewMoney(vehiclePrice.Price, vehiclePrice.Currency)
	if err != nil {
		return kernel.UUID{}, err
	}

	aggregate, err := order.NewOrder(cmd.CustomerID(), cmd.VehicleID(), totalPrice)
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, errs.NewPersistenceError("commit", err)
	}

	return aggregate.ID(), nil
}
