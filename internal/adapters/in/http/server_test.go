package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpadapter "sales/internal/adapters/in/http"
	"sales/internal/adapters/out/inmem"
	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/application/usecases/queries"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/ports"
	"sales/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type inmemUoWFactory struct {
	factory *inmem.UnitOfWorkFactory
}

func (f inmemUoWFactory) Create() commands.OrderUoW {
	return f.factory.Create()
}

type stubPricing struct {
	err error
}

func (p stubPricing) GetVehiclePrice(_ context.Context, vehicleID kernel.UUID) (*ports.VehiclePrice, error) {
	if p.err != nil {
		return nil, p.err
	}
	return &ports.VehiclePrice{
		VehicleID: vehicleID,
		Model:     "Hatchback",
		Price:     decimal.NewFromInt(19999),
		Currency:  "USD",
	}, nil
}

// newTestServer builds an echo instance backed by the in-memory store.
// Query handlers run against the database and are exercised in their own
// integration suite; command routes are fully testable here.
func newTestServer(pricing ports.VehiclePricing) (*echo.Echo, inmemUoWFactory) {
	factory := inmemUoWFactory{factory: inmem.NewUnitOfWorkFactory(inmem.NewStore())}

	server := httpadapter.NewServer(
		commands.NewCreateOrderCommandHandler(factory, pricing),
		commands.NewBeginAwaitingPaymentCommandHandler(factory),
		commands.NewConfirmPaymentCommandHandler(factory),
		commands.NewConfirmOrderCommandHandler(factory),
		commands.NewCancelOrderCommandHandler(factory),
		commands.NewDeleteOrderCommandHandler(factory),
		queries.GetOrderQueryHandler{},
		queries.GetOrderWithCancellationReasonQueryHandler{},
		queries.GetAllOrdersQueryHandler{},
		queries.GetCustomerOrdersQueryHandler{},
	)

	e := echo.New()
	server.RegisterRoutes(e)
	return e, factory
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func createOrderViaAPI(t *testing.T, e *echo.Echo) string {
	t.Helper()
	body := `{"customerId":"` + kernel.NewUUID().String() + `","vehicleId":"` + kernel.NewUUID().String() + `"}`
	rec := doJSON(e, http.MethodPost, "/api/v1/orders", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.ID)
	return resp.ID
}

func TestCreateOrder(t *testing.T) {
	t.Run("should create order and return its id", func(t *testing.T) {
		e, _ := newTestServer(stubPricing{})

		id := createOrderViaAPI(t, e)

		_, err := kernel.UUIDFromString(id)
		require.NoError(t, err)
	})

	t.Run("should reject malformed customer id", func(t *testing.T) {
		e, _ := newTestServer(stubPricing{})

		rec := doJSON(e, http.MethodPost, "/api/v1/orders",
			`{"customerId":"not-a-uuid","vehicleId":"`+kernel.NewUUID().String()+`"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should return 400 for unknown vehicle", func(t *testing.T) {
		e, _ := newTestServer(stubPricing{
			err: errs.NewObjectNotFoundError("vehicleId", "missing"),
		})

		rec := doJSON(e, http.MethodPost, "/api/v1/orders",
			`{"customerId":"`+kernel.NewUUID().String()+`","vehicleId":"`+kernel.NewUUID().String()+`"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should return 502 when pricing is unreachable", func(t *testing.T) {
		e, _ := newTestServer(stubPricing{
			err: errs.NewExternalServiceError("vehicle-service", nil),
		})

		rec := doJSON(e, http.MethodPost, "/api/v1/orders",
			`{"customerId":"`+kernel.NewUUID().String()+`","vehicleId":"`+kernel.NewUUID().String()+`"}`)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}

func TestOrderTransitions(t *testing.T) {
	t.Run("full lifecycle over the API", func(t *testing.T) {
		e, _ := newTestServer(stubPricing{})
		id := createOrderViaAPI(t, e)

		for _, step := range []string{"await-payment", "confirm-payment", "confirm"} {
			rec := doJSON(e, http.MethodPost, "/api/v1/orders/"+id+"/"+step, "")
			assert.Equal(t, http.StatusNoContent, rec.Code, step)
		}
	})

	t.Run("should return 409 for illegal transition", func(t *testing.T) {
		e, _ := newTestServer(stubPricing{})
		id := createOrderViaAPI(t, e)

		rec := doJSON(e, http.MethodPost, "/api/v1/orders/"+id+"/confirm-payment", "")

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("should return 404 for unknown order", func(t *testing.T) {
		e, _ := newTestServer(stubPricing{})

		rec := doJSON(e, http.MethodPost,
			"/api/v1/orders/"+kernel.NewUUID().String()+"/await-payment", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("should return 400 for malformed order id", func(t *testing.T) {
		e, _ := newTestServer(stubPricing{})

		rec := doJSON(e, http.MethodPost, "/api/v1/orders/oops/await-payment", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCancelOrder(t *testing.T) {
	t.Run("should cancel with reason", func(t *testing.T) {
		e, factory := newTestServer(stubPricing{})
		id := createOrderViaAPI(t, e)

		rec := doJSON(e, http.MethodPost, "/api/v1/orders/"+id+"/cancel",
			`{"reason":"customer walked away"}`)

		assert.Equal(t, http.StatusNoContent, rec.Code)

		orderID, err := kernel.UUIDFromString(id)
		require.NoError(t, err)
		aggregate, err := factory.Create().OrderRepository().Get(t.Context(), orderID)
		require.NoError(t, err)
		assert.Equal(t, "customer walked away", aggregate.CancellationReason())
	})

	t.Run("should reject blank reason", func(t *testing.T) {
		e, _ := newTestServer(stubPricing{})
		id := createOrderViaAPI(t, e)

		rec := doJSON(e, http.MethodPost, "/api/v1/orders/"+id+"/cancel", `{"reason":"   "}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDeleteOrder(t *testing.T) {
	t.Run("should delete existing order", func(t *testing.T) {
		e, _ := newTestServer(stubPricing{})
		id := createOrderViaAPI(t, e)

		rec := doJSON(e, http.MethodDelete, "/api/v1/orders/"+id, "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("should return 404 for unknown order", func(t *testing.T) {
		e, _ := newTestServer(stubPricing{})

		rec := doJSON(e, http.MethodDelete, "/api/v1/orders/"+kernel.NewUUID().String(), "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDefaultCustomerOrders(t *testing.T) {
	t.Run("should return 400 without remembered customer", func(t *testing.T) {
		e, _ := newTestServer(stubPricing{})

		rec := doJSON(e, http.MethodGet, "/api/v1/orders/default-customer", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should return 400 for corrupted cookie", func(t *testing.T) {
		e, _ := newTestServer(stubPricing{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/default-customer", nil)
		req.AddCookie(&http.Cookie{Name: "LastCustomerId", Value: "garbage"})
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
