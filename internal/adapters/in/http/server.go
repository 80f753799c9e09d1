// Package http exposes the order lifecycle service over REST using echo.
// Handlers translate between HTTP and the application's commands and queries;
// domain errors map onto status codes in one place.
package http

import (
	"errors"
	"net/http"
	"time"

	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/application/usecases/queries"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// lastCustomerCookie remembers the customer whose orders were listed last, so
// the default-customer endpoint can answer without an explicit id.
const lastCustomerCookie = "LastCustomerId"

const lastCustomerCookieTTL = time.Hour

// Server wires HTTP routes to the application's command and query handlers.
type Server struct {
	createOrder     commands.CreateOrderCommandHandler
	beginAwaiting   commands.BeginAwaitingPaymentCommandHandler
	confirmPayment  commands.ConfirmPaymentCommandHandler
	confirmOrder    commands.ConfirmOrderCommandHandler
	cancelOrder     commands.CancelOrderCommandHandler
	deleteOrder     commands.DeleteOrderCommandHandler
	getOrder        queries.GetOrderQueryHandler
	getOrderReason  queries.GetOrderWithCancellationReasonQueryHandler
	getAllOrders    queries.GetAllOrdersQueryHandler
	getCustOrders   queries.GetCustomerOrdersQueryHandler
}

// NewServer creates the HTTP server facade over the given handlers.
func NewServer(
	createOrder commands.CreateOrderCommandHandler,
	beginAwaiting commands.BeginAwaitingPaymentCommandHandler,
	confirmPayment commands.ConfirmPaymentCommandHandler,
	confirmOrder commands.ConfirmOrderCommandHandler,
	cancelOrder commands.CancelOrderCommandHandler,
	deleteOrder commands.DeleteOrderCommandHandler,
	getOrder queries.GetOrderQueryHandler,
	getOrderReason queries.GetOrderWithCancellationReasonQueryHandler,
	getAllOrders queries.GetAllOrdersQueryHandler,
	getCustOrders queries.GetCustomerOrdersQueryHandler,
) *Server {
	return &Server{
		createOrder:    createOrder,
		beginAwaiting:  beginAwaiting,
		confirmPayment: confirmPayment,
		confirmOrder:   confirmOrder,
		cancelOrder:    cancelOrder,
		deleteOrder:    deleteOrder,
		getOrder:       getOrder,
		getOrderReason: getOrderReason,
		getAllOrders:   getAllOrders,
		getCustOrders:  getCustOrders,
	}
}

// RegisterRoutes attaches all order routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1/orders")

	g.POST("", s.handleCreateOrder)
	g.GET("", s.handleGetAllOrders)
	g.GET("/default-customer", s.handleGetDefaultCustomerOrders)
	g.GET("/customer/:customerId", s.handleGetCustomerOrders)
	g.GET("/:id", s.handleGetOrder)
	g.GET("/:id/with-cancellation-reason", s.handleGetOrderWithCancellationReason)
	g.POST("/:id/await-payment", s.handleAwaitPayment)
	g.POST("/:id/confirm-payment", s.handleConfirmPayment)
	g.POST("/:id/confirm", s.handleConfirm)
	g.POST("/:id/cancel", s.handleCancel)
	g.DELETE("/:id", s.handleDelete)
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type createOrderRequest struct {
	CustomerID string `json:"customerId"`
	VehicleID  string `json:"vehicleId"`
}

type createOrderResponse struct {
	ID string `json:"id"`
}

type cancelOrderRequest struct {
	Reason string `json:"reason"`
}

// writeError maps domain error categories onto HTTP status codes.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidStatusTransition), errors.Is(err, errs.ErrVersionConflict):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrExternalService):
		code = http.StatusBadGateway
	}

	return ctx.JSON(code, errorResponse{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func parseUUIDParam(ctx echo.Context, name string) (kernel.UUID, bool) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, false
	}
	return id, true
}

func (s *Server) handleCreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "customerId must be a valid UUID")
	}

	vehicleID, err := kernel.UUIDFromString(req.VehicleID)
	if err != nil {
		return badRequest(ctx, "vehicleId must be a valid UUID")
	}

	cmd, err := commands.NewCreateOrderCommand(customerID, vehicleID)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := s.createOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createOrderResponse{ID: orderID.String()})
}

func (s *Server) handleGetAllOrders(ctx echo.Context) error {
	orders, err := s.getAllOrders.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

func (s *Server) handleGetOrder(ctx echo.Context) error {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return badRequest(ctx, "id must be a valid UUID")
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.getOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, resp)
}

func (s *Server) handleGetOrderWithCancellationReason(ctx echo.Context) error {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return badRequest(ctx, "id must be a valid UUID")
	}

	query, err := queries.NewGetOrderWithCancellationReasonQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.getOrderReason.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, resp)
}

func (s *Server) handleGetCustomerOrders(ctx echo.Context) error {
	customerID, ok := parseUUIDParam(ctx, "customerId")
	if !ok {
		return badRequest(ctx, "customerId must be a valid UUID")
	}

	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.getCustOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	s.rememberCustomer(ctx, customerID)
	return ctx.JSON(http.StatusOK, orders)
}

func (s *Server) handleGetDefaultCustomerOrders(ctx echo.Context) error {
	cookie, err := ctx.Cookie(lastCustomerCookie)
	if err != nil {
		return badRequest(ctx, "no customer remembered; list a customer's orders first")
	}

	customerID, err := kernel.UUIDFromString(cookie.Value)
	if err != nil {
		return badRequest(ctx, "remembered customer id is invalid")
	}

	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.getCustOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// rememberCustomer refreshes the last-customer cookie after a successful
// per-customer listing.
func (s *Server) rememberCustomer(ctx echo.Context, customerID kernel.UUID) {
	ctx.SetCookie(&http.Cookie{
		Name:     lastCustomerCookie,
		Value:    customerID.String(),
		Path:     "/",
		Expires:  time.Now().Add(lastCustomerCookieTTL),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
}

func (s *Server) handleAwaitPayment(ctx echo.Context) error {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return badRequest(ctx, "id must be a valid UUID")
	}

	cmd, err := commands.NewBeginAwaitingPaymentCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.beginAwaiting.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) handleConfirmPayment(ctx echo.Context) error {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return badRequest(ctx, "id must be a valid UUID")
	}

	cmd, err := commands.NewConfirmPaymentCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.confirmPayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) handleConfirm(ctx echo.Context) error {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return badRequest(ctx, "id must be a valid UUID")
	}

	cmd, err := commands.NewConfirmOrderCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.confirmOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) handleCancel(ctx echo.Context) error {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return badRequest(ctx, "id must be a valid UUID")
	}

	var req cancelOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(id, req.Reason)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.cancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) handleDelete(ctx echo.Context) error {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return badRequest(ctx, "id must be a valid UUID")
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
