// Package vehicleclient implements the vehicle pricing port over the vehicle
// service's REST API.
package vehicleclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/ports"
	"sales/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const serviceName = "vehicle-service"

const defaultTimeout = 10 * time.Second

// Client calls the vehicle service to resolve vehicle prices.
// It implements ports.VehiclePricing.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a pricing client for the vehicle service at baseURL.
// A nil httpClient gets a default one with a request timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// vehicleResponse mirrors the vehicle service's JSON payload. The price comes
// as a string to avoid float rounding on the wire.
type vehicleResponse struct {
	ID       uuid.UUID `json:"id"`
	Model    string    `json:"model"`
	Price    string    `json:"price"`
	Currency string    `json:"currency"`
}

// GetVehiclePrice fetches the current price of one vehicle.
// A 404 from the service means the vehicle does not exist and yields
// ObjectNotFoundError; transport failures and malformed payloads yield
// ExternalServiceError.
func (c *Client) GetVehiclePrice(ctx context.Context, vehicleID kernel.UUID) (*ports.VehiclePrice, error) {
	if err := vehicleID.Validate(); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/api/v1/vehicles/%s", c.baseURL, vehicleID.String())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errs.NewExternalServiceError(serviceName, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.NewExternalServiceError(serviceName, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errs.NewObjectNotFoundError("vehicleId", vehicleID.String())
	case resp.StatusCode != http.StatusOK:
		return nil, errs.NewExternalServiceError(serviceName,
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var payload vehicleResponse
	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errs.NewExternalServiceError(serviceName,
			fmt.Errorf("decode response: %w", err))
	}

	price, err := decimal.NewFromString(payload.Price)
	if err != nil {
		return nil, errs.NewExternalServiceError(serviceName,
			fmt.Errorf("parse price %q: %w", payload.Price, err))
	}

	// A payload that cannot form a valid Money (negative price, bad currency
	// code) is the service misbehaving, not the caller.
	if _, err = kernel.NewMoney(price, payload.Currency); err != nil {
		return nil, errs.NewExternalServiceError(serviceName,
			fmt.Errorf("invalid price data %s %q: %w", payload.Price, payload.Currency, err))
	}

	id, err := kernel.UUIDFromBytes(payload.ID[:])
	if err != nil {
		return nil, errs.NewExternalServiceError(serviceName,
			fmt.Errorf("parse vehicle id: %w", err))
	}

	return &ports.VehiclePrice{
		VehicleID: id,
		Model:     payload.Model,
		Price:     price,
		Currency:  payload.Currency,
	}, nil
}
