package cmd

import (
	"net/http"
	"time"

	"sales/internal/adapters/out/postgres"
	"sales/internal/adapters/out/vehicleclient"
	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/application/usecases/queries"
	"sales/internal/core/ports"

	"gorm.io/gorm"
)

const defaultPaymentTimeout = 30 * time.Minute

// CompositionRoot builds every handler of the service from its configuration
// and shared infrastructure.
type CompositionRoot struct {
	gormDB         *gorm.DB
	uowFactory     *postgres.GormUnitOfWorkFactory
	vehiclePricing ports.VehiclePricing
	paymentTimeout time.Duration
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	timeout := defaultPaymentTimeout
	if configs.PaymentTimeout != "" {
		if parsed, err := time.ParseDuration(configs.PaymentTimeout); err == nil && parsed > 0 {
			timeout = parsed
		}
	}

	return CompositionRoot{
		gormDB:         gormDB,
		uowFactory:     postgres.NewGormUnitOfWorkFactory(gormDB),
		vehiclePricing: vehicleclient.NewClient(configs.VehicleServiceURL, &http.Client{Timeout: 10 * time.Second}),
		paymentTimeout: timeout,
	}
}

// PaymentTimeout returns the configured payment window.
func (c *CompositionRoot) PaymentTimeout() time.Duration {
	return c.paymentTimeout
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.vehiclePricing)
}

func (c *CompositionRoot) CreateBeginAwaitingPaymentCommandHandler() commands.BeginAwaitingPaymentCommandHandler {
	return commands.NewBeginAwaitingPaymentCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateConfirmPaymentCommandHandler() commands.ConfirmPaymentCommandHandler {
	return commands.NewConfirmPaymentCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	return commands.NewConfirmOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelStalePaymentsCommandHandler() commands.CancelStalePaymentsCommandHandler {
	return commands.NewCancelStalePaymentsCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderWithCancellationReasonQueryHandler() queries.GetOrderWithCancellationReasonQueryHandler {
	return queries.NewGetOrderWithCancellationReasonQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
