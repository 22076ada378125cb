package delivery

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

func newTestClient(baseURL string) *Client {
	return NewClient(config.DeliveryConfig{BaseURL: baseURL, Timeout: 5 * time.Second}, zap.NewNop())
}

func testRequest() DeliveryRequest {
	snapshot := domain.CartSnapshot{
		Lines: []domain.CartLine{
			{ProductID: "p1", Name: "Tomatoes", Price: 500, Quantity: 2},
			{ProductID: "p2", Name: "King Coconut", Price: 120, Quantity: 1},
		},
		Total: 1120,
	}
	details := domain.DeliveryDetails{
		Customer:      "A. Silva",
		Address:       "12 Lake Rd",
		ScheduledDate: "2024-06-01T10:00",
		Payment:       domain.CashPayment{},
	}
	return NewDeliveryRequest("O99", snapshot, details)
}

func TestCreate_SendsContractPayload(t *testing.T) {
	var gotPath string
	var gotBody map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &gotBody))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"D1"}`))
	}))
	defer server.Close()

	err := newTestClient(server.URL).Create(context.Background(), testRequest())

	require.NoError(t, err)
	assert.Equal(t, "/api/deliveries/create", gotPath)
	assert.Equal(t, "O99", gotBody["orderNumber"])
	assert.Equal(t, "A. Silva", gotBody["customer"])
	assert.Equal(t, "12 Lake Rd", gotBody["address"])
	assert.Equal(t, "Tomatoes, King Coconut", gotBody["items"])
	assert.Equal(t, "2024-06-01T10:00", gotBody["scheduledDate"])
}

func TestCreate_Non2xxIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no couriers", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	err := newTestClient(server.URL).Create(context.Background(), testRequest())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "order O99")
	assert.Contains(t, err.Error(), "status 503")
}
