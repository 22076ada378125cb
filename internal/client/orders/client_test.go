package orders

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/govipola/storefront/internal/config"
	"github.com/govipola/storefront/internal/domain"
)

func testSnapshot() domain.CartSnapshot {
	return domain.CartSnapshot{
		Lines: []domain.CartLine{
			{ProductID: "p1", Name: "Tomatoes", Price: 500, Quantity: 2},
		},
		Total: 1000,
	}
}

func newTestClient(baseURL string) *Client {
	return NewClient(config.OrdersConfig{BaseURL: baseURL, Timeout: 5 * time.Second}, zap.NewNop())
}

func TestCreate_SendsContractPayload(t *testing.T) {
	var gotPath, gotKey string
	var gotBody map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("Idempotency-Key")
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"O99"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	req := NewOrderRequest("cus-1", testSnapshot(), domain.CashPayment{})

	result, err := client.Create(context.Background(), req, "key-123")

	require.NoError(t, err)
	assert.Equal(t, "O99", result.OrderID)
	assert.Equal(t, "/api/orders/create", gotPath)
	assert.Equal(t, "key-123", gotKey)

	assert.Equal(t, "cus-1", gotBody["customerId"])
	assert.Equal(t, 1000.0, gotBody["totalAmount"])
	items := gotBody["items"].([]interface{})
	require.Len(t, items, 1)
	item := items[0].(map[string]interface{})
	assert.Equal(t, "p1", item["productId"])
	assert.Equal(t, 2.0, item["quantity"])
	assert.Equal(t, 500.0, item["price"])

	payment := gotBody["paymentDetails"].(map[string]interface{})
	assert.Equal(t, "Cash on Delivery", payment["method"])
	assert.NotContains(t, payment, "cardNumber")
}

func TestCreate_CardPaymentPayload(t *testing.T) {
	var gotBody map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &gotBody))
		w.Write([]byte(`{"id":"O1"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	req := NewOrderRequest("cus-1", testSnapshot(), domain.CardPayment{
		CardNumber: "4242424242424242",
		ExpiryDate: "12/26",
		CVV:        "123",
	})

	_, err := client.Create(context.Background(), req, "key-123")

	require.NoError(t, err)
	payment := gotBody["paymentDetails"].(map[string]interface{})
	assert.Equal(t, "Credit Card", payment["method"])
	assert.Equal(t, "4242424242424242", payment["cardNumber"])
	assert.Equal(t, "12/26", payment["expiryDate"])
	assert.Equal(t, "123", payment["cvv"])
}

func TestCreate_AcceptsOrderNumberKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"orderNumber":12345}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	result, err := client.Create(context.Background(), NewOrderRequest("cus-1", testSnapshot(), domain.CashPayment{}), "k")

	require.NoError(t, err)
	assert.Equal(t, "12345", result.OrderID)
}

func TestCreate_MissingIdentifierYieldsEmptyOrderID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"status":"accepted"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	result, err := client.Create(context.Background(), NewOrderRequest("cus-1", testSnapshot(), domain.CashPayment{}), "k")

	require.NoError(t, err, "a committed order must not be failed over a missing id")
	assert.Empty(t, result.OrderID)
}

func TestCreate_Non2xxIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	result, err := client.Create(context.Background(), NewOrderRequest("cus-1", testSnapshot(), domain.CashPayment{}), "k")

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "status 500")
}
