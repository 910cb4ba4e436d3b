package telr_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelrbs/internal/telr"
)

func newTestClient(handler http.HandlerFunc) (*telr.Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := telr.NewClient(telr.Config{
		Endpoint: server.URL,
		StoreID:  "12345",
		AuthKey:  "test-key",
		TestMode: true,
	})
	return client, server
}

func TestCreateOrder(t *testing.T) {
	var captured map[string]interface{}

	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"method": "create",
			"order": map[string]interface{}{
				"ref": "OrderRef123",
				"url": "https://secure.telr.com/gateway/process.html?o=OrderRef123",
			},
		})
	})
	defer server.Close()

	order, err := client.CreateOrder(context.Background(), &telr.CreateOrderParams{
		CartID:      "HB-2025-0001",
		Amount:      "960.00",
		Currency:    "AED",
		Description: "Hotel booking HB-2025-0001 - Rove Downtown",
		Customer: telr.Customer{
			Ref:   "user-1",
			Email: "guest@example.com",
			Name:  telr.CustomerName{Forenames: "Ayesha", Surname: "Khan"},
		},
		ReturnURLs: telr.ReturnURLs{
			Authorised: "https://app.example.com/payment/success",
			Declined:   "https://app.example.com/payment/declined",
			Cancelled:  "https://app.example.com/payment/cancelled",
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "OrderRef123", order.Ref)
	assert.Contains(t, order.URL, "OrderRef123")

	// Wire shape: method create, store credentials, test flag set
	assert.Equal(t, "create", captured["method"])
	assert.Equal(t, "12345", captured["store"])
	assert.Equal(t, "test-key", captured["authkey"])

	orderSection := captured["order"].(map[string]interface{})
	assert.Equal(t, "HB-2025-0001", orderSection["cartid"])
	assert.Equal(t, "1", orderSection["test"])
	assert.Equal(t, "960.00", orderSection["amount"])
	assert.Equal(t, "AED", orderSection["currency"])
	assert.Equal(t, "sale", orderSection["trantype"])
}

func TestCreateOrderGatewayError(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"method": "create",
			"error": map[string]interface{}{
				"message": "E04:Invalid store ID",
				"note":    "Check the store number",
			},
		})
	})
	defer server.Close()

	_, err := client.CreateOrder(context.Background(), &telr.CreateOrderParams{
		CartID: "HB-2025-0002", Amount: "100.00", Currency: "AED",
	})

	require.Error(t, err)
	var gatewayErr *telr.GatewayError
	require.ErrorAs(t, err, &gatewayErr)
	assert.Contains(t, gatewayErr.Error(), "E04:Invalid store ID")
}

func TestCreateOrderMissingCredentials(t *testing.T) {
	client := telr.NewClient(telr.Config{Endpoint: "https://secure.telr.com/gateway/order.json"})

	_, err := client.CreateOrder(context.Background(), &telr.CreateOrderParams{CartID: "x"})
	assert.ErrorIs(t, err, telr.ErrNotConfigured)
}

func TestCreateOrderMissingRef(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"method": "create",
			"order":  map[string]interface{}{"ref": ""},
		})
	})
	defer server.Close()

	_, err := client.CreateOrder(context.Background(), &telr.CreateOrderParams{CartID: "x"})
	assert.ErrorIs(t, err, telr.ErrInvalidResponse)
}

func TestCheckOrder(t *testing.T) {
	var captured map[string]interface{}

	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"method": "check",
			"order": map[string]interface{}{
				"ref":    "OrderRef123",
				"cartid": "HB-2025-0001",
				"amount": "960.00",
				"status": map[string]interface{}{"code": 3, "text": "Paid"},
				"transaction": map[string]interface{}{
					"ref": "TXN-1", "status": "A", "code": "123456",
				},
			},
		})
	})
	defer server.Close()

	order, err := client.CheckOrder(context.Background(), "OrderRef123")

	require.NoError(t, err)
	require.NotNil(t, order.Status)
	assert.Equal(t, telr.StatusAuthorised, order.Status.Code)
	assert.Equal(t, "HB-2025-0001", order.CartID)

	assert.Equal(t, "check", captured["method"])
	orderSection := captured["order"].(map[string]interface{})
	assert.Equal(t, "OrderRef123", orderSection["ref"])
}

func TestCheckOrderMissingStatus(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"method": "check",
			"order":  map[string]interface{}{"ref": "OrderRef123"},
		})
	})
	defer server.Close()

	_, err := client.CheckOrder(context.Background(), "OrderRef123")
	assert.ErrorIs(t, err, telr.ErrInvalidResponse)
}

func TestStatusText(t *testing.T) {
	assert.Equal(t, "Authorised", telr.StatusText(telr.StatusAuthorised))
	assert.Equal(t, "Declined", telr.StatusText(telr.StatusDeclined))
	assert.Equal(t, "Cancelled", telr.StatusText(telr.StatusCancelled))
	assert.Equal(t, "Unknown", telr.StatusText(99))
}
