package orders

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

const createPath = "/api/orders/create"

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a client for the order service
func NewClient(cfg config.OrdersConfig, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// OrderRequest is the order creation payload. The field shapes are the order
// service's wire contract and must not drift.
type OrderRequest struct {
	CustomerID     string         `json:"customerId"`
	Items          []OrderItem    `json:"items"`
	TotalAmount    float64        `json:"totalAmount"`
	PaymentDetails paymentPayload `json:"paymentDetails"`
}

type OrderItem struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// paymentPayload is the wire shape of the payment leg. Card fields are only
// present for card payments.
type paymentPayload struct {
	Method     string `json:"method"`
	CardNumber string `json:"cardNumber,omitempty"`
	ExpiryDate string `json:"expiryDate,omitempty"`
	CVV        string `json:"cvv,omitempty"`
}

// OrderResult carries the server-issued order identifier. OrderID is empty
// when the response held neither an "id" nor an "orderNumber" key; the
// orchestrator decides what to do about that.
type OrderResult struct {
	OrderID string
}

// NewOrderRequest builds the wire payload from a cart snapshot and the chosen
// payment details.
func NewOrderRequest(customerID string, snapshot domain.CartSnapshot, payment domain.PaymentDetails) OrderRequest {
	items := make([]OrderItem, 0, len(snapshot.Lines))
	for _, line := range snapshot.Lines {
		items = append(items, OrderItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.Price,
		})
	}
	return OrderRequest{
		CustomerID:     customerID,
		Items:          items,
		TotalAmount:    snapshot.Total,
		PaymentDetails: encodePayment(payment),
	}
}

func encodePayment(p domain.PaymentDetails) paymentPayload {
	switch pd := p.(type) {
	case domain.CardPayment:
		return paymentPayload{
			Method:     "Credit Card",
			CardNumber: pd.CardNumber,
			ExpiryDate: pd.ExpiryDate,
			CVV:        pd.CVV,
		}
	default:
		return paymentPayload{Method: "Cash on Delivery"}
	}
}

// Create submits an order. Any 2xx response is success; the idempotency key
// rides a header so the body stays on contract.
func (c *Client) Create(ctx context.Context, req OrderRequest, idempotencyKey string) (*OrderResult, error) {
	jsonData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+createPath, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if idempotencyKey != "" {
		httpReq.Header.Set("Idempotency-Key", idempotencyKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to execute order request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read order response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("order service error: status %d, body: %s", resp.StatusCode, string(body))
	}

	return &OrderResult{OrderID: extractOrderID(body)}, nil
}

// extractOrderID pulls the order identifier from a success response body,
// accepting either key and either a string or numeric value.
func extractOrderID(body []byte) string {
	var payload struct {
		ID          json.RawMessage `json:"id"`
		OrderNumber json.RawMessage `json:"orderNumber"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if id := decodeIdentifier(payload.ID); id != "" {
		return id
	}
	return decodeIdentifier(payload.OrderNumber)
}

func decodeIdentifier(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}
