package payments_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelrbs/internal/payments"
	"hotelrbs/internal/reservations"
	"hotelrbs/internal/shared/config"
	"hotelrbs/internal/telr"
)

type mockSessionRepo struct {
	sessions map[string]*reservations.BookingSession
}

func newMockSessionRepo() *mockSessionRepo {
	return &mockSessionRepo{sessions: map[string]*reservations.BookingSession{}}
}

func (m *mockSessionRepo) Create(_ context.Context, session *reservations.BookingSession) error {
	m.sessions[session.BookingReferenceID] = session
	return nil
}

func (m *mockSessionRepo) GetByReference(_ context.Context, ref string) (*reservations.BookingSession, error) {
	session, ok := m.sessions[ref]
	if !ok {
		return nil, reservations.ErrSessionNotFound
	}
	copied := *session
	return &copied, nil
}

func (m *mockSessionRepo) GetByOrderRef(_ context.Context, orderRef string) (*reservations.BookingSession, error) {
	for _, session := range m.sessions {
		if session.PaymentOrderRef == orderRef {
			copied := *session
			return &copied, nil
		}
	}
	return nil, reservations.ErrSessionNotFound
}

func (m *mockSessionRepo) Update(_ context.Context, session *reservations.BookingSession) error {
	m.sessions[session.BookingReferenceID] = session
	return nil
}

func (m *mockSessionRepo) FailActiveByUser(_ context.Context, _ uuid.UUID, _ string) error {
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		Telr: config.TelrConfig{
			Currency:      "AED",
			ReturnBaseURL: "https://app.example.com/",
		},
	}
}

func capturedSession(repo *mockSessionRepo, userID uuid.UUID) *reservations.BookingSession {
	session := &reservations.BookingSession{
		ID:                 uuid.New(),
		UserID:             userID,
		BookingReferenceID: "202510011200000001",
		Status:             reservations.StatusGuestDetailsCaptured,
		HotelCode:          "1377073",
		HotelName:          "Rove Downtown",
		BookingCode:        "BC-1",
		Currency:           "AED",
		TotalFare:          960.005,
		GuestNationality:   "AE",
	}
	session.SetGuestDetails(&reservations.GuestDetails{
		BookingReferenceID: session.BookingReferenceID,
		Rooms: []reservations.RoomGuests{
			{Guests: []reservations.GuestName{
				{Title: "Mr", FirstName: "Ayesha", LastName: "Khan", Type: "Adult"},
			}},
		},
		Email:      "guest@example.com",
		Phone:      "971509876543",
		Address:    "JLT Cluster F",
		City:       "Dubai",
		Country:    "AE",
		CapturedAt: time.Now(),
	})
	repo.sessions[session.BookingReferenceID] = session
	return session
}

func newGateway(t *testing.T, captured *map[string]interface{}) (*telr.Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(captured))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"method": "create",
			"order": map[string]interface{}{
				"ref": "OrderRef123",
				"url": "https://secure.telr.com/gateway/process.html?o=OrderRef123",
			},
		})
	}))
	return telr.NewClient(telr.Config{Endpoint: server.URL, StoreID: "1", AuthKey: "k"}), server
}

func TestCreateOrder(t *testing.T) {
	userID := uuid.New()
	repo := newMockSessionRepo()
	session := capturedSession(repo, userID)

	var captured map[string]interface{}
	gateway, server := newGateway(t, &captured)
	defer server.Close()

	svc := payments.NewService(repo, gateway, testConfig())

	resp, err := svc.CreateOrder(context.Background(), userID, &payments.CreatePaymentOrderRequest{
		BookingReferenceID: session.BookingReferenceID,
	})

	require.NoError(t, err)
	assert.Equal(t, "OrderRef123", resp.OrderRef)
	assert.Contains(t, resp.CheckoutURL, "OrderRef123")
	assert.Equal(t, "960.01", resp.Amount) // server-side fare, rounded to 2 decimals
	assert.Equal(t, "AED", resp.Currency)
	assert.Equal(t, string(reservations.StatusPaymentPending), resp.SessionStatus)

	// Session advanced and carries the gateway ref
	stored := repo.sessions[session.BookingReferenceID]
	assert.Equal(t, reservations.StatusPaymentPending, stored.Status)
	assert.Equal(t, "OrderRef123", stored.PaymentOrderRef)
	assert.Equal(t, "Initiated", stored.PaymentStatus)

	// Gateway payload: cart id is the booking reference, return URLs carry it too
	orderSection := captured["order"].(map[string]interface{})
	assert.Equal(t, session.BookingReferenceID, orderSection["cartid"])
	assert.Equal(t, "960.01", orderSection["amount"])
	assert.Equal(t, "AED", orderSection["currency"])

	customer := captured["customer"].(map[string]interface{})
	name := customer["name"].(map[string]interface{})
	assert.Equal(t, "Ayesha", name["forenames"])
	assert.Equal(t, "Khan", name["surname"])

	returnSection := captured["return"].(map[string]interface{})
	assert.Equal(t,
		"https://app.example.com/payment/success?booking_ref="+session.BookingReferenceID,
		returnSection["authorised"])
}

func TestCreateOrderDefaultDescription(t *testing.T) {
	userID := uuid.New()
	repo := newMockSessionRepo()
	session := capturedSession(repo, userID)

	var captured map[string]interface{}
	gateway, server := newGateway(t, &captured)
	defer server.Close()

	svc := payments.NewService(repo, gateway, testConfig())

	_, err := svc.CreateOrder(context.Background(), userID, &payments.CreatePaymentOrderRequest{
		BookingReferenceID: session.BookingReferenceID,
	})
	require.NoError(t, err)

	orderSection := captured["order"].(map[string]interface{})
	assert.Equal(t, "Hotel booking "+session.BookingReferenceID+" - Rove Downtown", orderSection["description"])
}

func TestCreateOrderWrongOwner(t *testing.T) {
	repo := newMockSessionRepo()
	session := capturedSession(repo, uuid.New())

	svc := payments.NewService(repo, nil, testConfig())

	_, err := svc.CreateOrder(context.Background(), uuid.New(), &payments.CreatePaymentOrderRequest{
		BookingReferenceID: session.BookingReferenceID,
	})
	assert.ErrorIs(t, err, payments.ErrNotSessionOwner)
}

func TestCreateOrderSessionNotReady(t *testing.T) {
	userID := uuid.New()
	repo := newMockSessionRepo()
	session := capturedSession(repo, userID)
	session.Status = reservations.StatusReserved

	svc := payments.NewService(repo, nil, testConfig())

	_, err := svc.CreateOrder(context.Background(), userID, &payments.CreatePaymentOrderRequest{
		BookingReferenceID: session.BookingReferenceID,
	})
	assert.ErrorIs(t, err, payments.ErrPaymentNotReady)

	// Terminal sessions are not payable either
	session.Status = reservations.StatusConfirmed
	_, err = svc.CreateOrder(context.Background(), userID, &payments.CreatePaymentOrderRequest{
		BookingReferenceID: session.BookingReferenceID,
	})
	assert.ErrorIs(t, err, payments.ErrPaymentNotReady)
}

func TestCreateOrderMissingGuestDetails(t *testing.T) {
	userID := uuid.New()
	repo := newMockSessionRepo()
	session := capturedSession(repo, userID)
	session.ClearGuestDetails()

	svc := payments.NewService(repo, nil, testConfig())

	_, err := svc.CreateOrder(context.Background(), userID, &payments.CreatePaymentOrderRequest{
		BookingReferenceID: session.BookingReferenceID,
	})
	assert.ErrorIs(t, err, payments.ErrGuestDetailsMissing)
}

func TestCreateOrderSessionNotFound(t *testing.T) {
	svc := payments.NewService(newMockSessionRepo(), nil, testConfig())

	_, err := svc.CreateOrder(context.Background(), uuid.New(), &payments.CreatePaymentOrderRequest{
		BookingReferenceID: "missing-ref",
	})
	assert.ErrorIs(t, err, reservations.ErrSessionNotFound)
}
