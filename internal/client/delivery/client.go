package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/govipola/storefront/internal/config"
	"github.com/govipola/storefront/internal/domain"
)

const createPath = "/api/deliveries/create"

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a client for the delivery service
func NewClient(cfg config.DeliveryConfig, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// DeliveryRequest is the delivery creation payload. Items is the
// comma-joined product names, ScheduledDate the ISO-8601 local datetime the
// user picked; both are part of the delivery service's wire contract.
type DeliveryRequest struct {
	OrderNumber   string `json:"orderNumber"`
	Customer      string `json:"customer"`
	Address       string `json:"address"`
	Items         string `json:"items"`
	ScheduledDate string `json:"scheduledDate"`
}

// NewDeliveryRequest builds the wire payload joining the committed order to
// the validated delivery details.
func NewDeliveryRequest(orderID string, snapshot domain.CartSnapshot, details domain.DeliveryDetails) DeliveryRequest {
	return DeliveryRequest{
		OrderNumber:   orderID,
		Customer:      details.Customer,
		Address:       details.Address,
		Items:         strings.Join(snapshot.ItemNames(), ", "),
		ScheduledDate: details.ScheduledDate,
	}
}

// Create schedules a delivery for an already-committed order. Any 2xx
// response is success.
func (c *Client) Create(ctx context.Context, req DeliveryRequest) error {
	jsonData, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal delivery request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+createPath, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to execute delivery request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read delivery response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("delivery service error for order %s: status %d, body: %s", req.OrderNumber, resp.StatusCode, string(body))
	}

	return nil
}
