package bookings_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelrbs/internal/bookings"
	"hotelrbs/internal/reservations"
	"hotelrbs/internal/shared/config"
	"hotelrbs/internal/shared/constants"
	"hotelrbs/internal/telr"
	"hotelrbs/internal/travzilla"
)

// --- Mock booking repository ---

type mockBookingRepo struct {
	byID        map[uuid.UUID]*bookings.Booking
	byReference map[string]*bookings.Booking
	createErr   error
}

func newMockBookingRepo() *mockBookingRepo {
	return &mockBookingRepo{
		byID:        map[uuid.UUID]*bookings.Booking{},
		byReference: map[string]*bookings.Booking{},
	}
}

func (m *mockBookingRepo) Create(_ context.Context, booking *bookings.Booking) error {
	if m.createErr != nil {
		return m.createErr
	}
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	m.byID[booking.ID] = booking
	m.byReference[booking.BookingReferenceID] = booking
	return nil
}

func (m *mockBookingRepo) GetByID(_ context.Context, id uuid.UUID) (*bookings.Booking, error) {
	booking, ok := m.byID[id]
	if !ok {
		return nil, bookings.ErrBookingNotFound
	}
	copied := *booking
	return &copied, nil
}

func (m *mockBookingRepo) GetByReference(_ context.Context, ref string) (*bookings.Booking, error) {
	booking, ok := m.byReference[ref]
	if !ok {
		return nil, bookings.ErrBookingNotFound
	}
	copied := *booking
	return &copied, nil
}

func (m *mockBookingRepo) GetUserBookings(_ context.Context, userID uuid.UUID, query bookings.BookingListQuery) ([]bookings.Booking, int64, error) {
	var out []bookings.Booking
	for _, booking := range m.byID {
		if booking.UserID == userID {
			out = append(out, *booking)
		}
	}
	return out, int64(len(out)), nil
}

func (m *mockBookingRepo) MarkCancelled(_ context.Context, id uuid.UUID, cancelledAt time.Time) error {
	booking, ok := m.byID[id]
	if !ok || booking.Status != bookings.StatusConfirmed {
		return bookings.ErrBookingNotFound
	}
	booking.Status = bookings.StatusCancelled
	booking.CancelledAt = &cancelledAt
	return nil
}

// --- Mock session repository ---

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

// --- Mock notifier ---

type mockNotifier struct {
	published []string
	email     string
	name      string
	err       error
}

func (m *mockNotifier) PublishBookingConfirmed(_ context.Context, booking *bookings.Booking, recipientEmail, recipientName string) error {
	if m.err != nil {
		return m.err
	}
	m.published = append(m.published, booking.BookingReferenceID)
	m.email = recipientEmail
	m.name = recipientName
	return nil
}

// --- Fake HTTP backends ---

type fakeVendor struct {
	bookStatus   travzilla.Status
	cancelStatus travzilla.Status
	bookCalls    int
	lastBook     travzilla.BookRequest
}

func (f *fakeVendor) server(t *testing.T) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/HotelBook":
			f.bookCalls++
			require.NoError(t, json.NewDecoder(r.Body).Decode(&f.lastBook))
			json.NewEncoder(w).Encode(travzilla.BookResponse{
				Status:             f.bookStatus,
				ConfirmationNumber: "TRZ-88210045",
				BookingId:          "1900771",
				BookingStatus:      "Confirmed",
			})
		case "/Cancel":
			json.NewEncoder(w).Encode(travzilla.CancelResponse{
				Status:             f.cancelStatus,
				ConfirmationNumber: "TRZ-88210045",
			})
		default:
			t.Errorf("unexpected vendor call: %s", r.URL.Path)
		}
	}))
}

func fakeGateway(statusCode int) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"method": "check",
			"order": map[string]interface{}{
				"ref":    "OrderRef123",
				"status": map[string]interface{}{"code": statusCode, "text": telr.StatusText(statusCode)},
			},
		})
	}))
}

func testConfig() *config.Config {
	return &config.Config{
		Redis: config.RedisConfig{ConfirmLockTTL: 10 * time.Minute},
	}
}

func paidSession(repo *mockSessionRepo, userID uuid.UUID) *reservations.BookingSession {
	session := &reservations.BookingSession{
		ID:                 uuid.New(),
		UserID:             userID,
		BookingReferenceID: "202510011200000001",
		Status:             reservations.StatusPaymentPending,
		HotelCode:          "1377073",
		HotelName:          "Rove Downtown",
		BookingCode:        "BC-1",
		CheckIn:            "2025-10-01",
		CheckOut:           "2025-10-04",
		Currency:           "AED",
		TotalFare:          960.004,
		GuestNationality:   "AE",
		PaymentOrderRef:    "OrderRef123",
		PaymentStatus:      "Initiated",
	}
	session.SetGuestDetails(&reservations.GuestDetails{
		BookingReferenceID: session.BookingReferenceID,
		Rooms: []reservations.RoomGuests{
			{Guests: []reservations.GuestName{
				{Title: "Mr", FirstName: "Ayesha", LastName: "Khan", Type: "Adult"},
			}},
		},
		Email:      "guest@example.com",
		Phone:      "9812345678",
		CapturedAt: time.Now(),
	})
	repo.sessions[session.BookingReferenceID] = session
	return session
}

func TestConfirmPayNow(t *testing.T) {
	userID := uuid.New()
	sessions := newMockSessionRepo()
	session := paidSession(sessions, userID)
	repo := newMockBookingRepo()

	vendor := &fakeVendor{bookStatus: travzilla.Status{Code: "200"}}
	vendorServer := vendor.server(t)
	defer vendorServer.Close()

	gatewayServer := fakeGateway(telr.StatusAuthorised)
	defer gatewayServer.Close()

	redisClient, redisMock := redismock.NewClientMock()
	redisMock.ExpectSetNX(constants.BuildConfirmLockKey(session.BookingReferenceID), "1", 10*time.Minute).SetVal(true)

	notifier := &mockNotifier{}
	svc := bookings.NewService(repo, sessions,
		travzilla.NewClient(travzilla.Config{BaseURL: vendorServer.URL}),
		telr.NewClient(telr.Config{Endpoint: gatewayServer.URL, StoreID: "1", AuthKey: "k"}),
		redisClient, testConfig())
	svc.SetNotificationService(notifier)

	resp, err := svc.Confirm(context.Background(), userID, &bookings.ConfirmBookingRequest{OrderRef: "OrderRef123"})

	require.NoError(t, err)
	assert.Equal(t, "TRZ-88210045", resp.ConfirmationNumber)
	assert.Equal(t, bookings.StatusConfirmed.String(), resp.Status)
	assert.Equal(t, bookings.PaymentPaid, resp.PaymentStatus)
	assert.InDelta(t, 960.00, resp.TotalFare, 0.001)

	// Vendor payload: fixed booking/payment modes and the numeric phone
	assert.Equal(t, 1, vendor.bookCalls)
	assert.Equal(t, "Voucher", vendor.lastBook.BookingType)
	assert.Equal(t, "Limit", vendor.lastBook.PaymentMode)
	assert.Equal(t, int64(919812345678), vendor.lastBook.PhoneNumber)
	assert.Equal(t, session.BookingReferenceID, vendor.lastBook.BookingReferenceId)

	// Session reached its terminal state; the order ref stays so a replayed
	// confirm can still resolve it
	closed := sessions.sessions[session.BookingReferenceID]
	assert.Equal(t, reservations.StatusConfirmed, closed.Status)
	assert.Equal(t, "OrderRef123", closed.PaymentOrderRef)
	assert.Empty(t, closed.PrebookSnapshot)
	gd, _ := closed.GuestDetails()
	assert.Nil(t, gd)

	// Confirmation notification went out to the lead guest
	require.Len(t, notifier.published, 1)
	assert.Equal(t, "guest@example.com", notifier.email)
	assert.Equal(t, "Ayesha Khan", notifier.name)

	require.NoError(t, redisMock.ExpectationsWereMet())
}

func TestConfirmPayLater(t *testing.T) {
	userID := uuid.New()
	sessions := newMockSessionRepo()
	session := paidSession(sessions, userID)
	session.Status = reservations.StatusGuestDetailsCaptured
	session.PaymentOrderRef = ""
	repo := newMockBookingRepo()

	vendor := &fakeVendor{bookStatus: travzilla.Status{Code: "200"}}
	vendorServer := vendor.server(t)
	defer vendorServer.Close()

	redisClient, redisMock := redismock.NewClientMock()
	redisMock.ExpectSetNX(constants.BuildConfirmLockKey(session.BookingReferenceID), "1", 10*time.Minute).SetVal(true)

	svc := bookings.NewService(repo, sessions,
		travzilla.NewClient(travzilla.Config{BaseURL: vendorServer.URL}),
		nil, redisClient, testConfig())

	resp, err := svc.Confirm(context.Background(), userID, &bookings.ConfirmBookingRequest{
		BookingReferenceID: session.BookingReferenceID,
		PayLater:           true,
	})

	require.NoError(t, err)
	assert.Equal(t, bookings.StatusConfirmed.String(), resp.Status)
	assert.Equal(t, bookings.PaymentPending, resp.PaymentStatus)

	closed := sessions.sessions[session.BookingReferenceID]
	assert.Equal(t, reservations.StatusConfirmedPendingPayment, closed.Status)
}

func TestConfirmPaymentDeclined(t *testing.T) {
	userID := uuid.New()
	sessions := newMockSessionRepo()
	session := paidSession(sessions, userID)
	repo := newMockBookingRepo()

	gatewayServer := fakeGateway(telr.StatusDeclined)
	defer gatewayServer.Close()

	redisClient, _ := redismock.NewClientMock()
	svc := bookings.NewService(repo, sessions, nil,
		telr.NewClient(telr.Config{Endpoint: gatewayServer.URL, StoreID: "1", AuthKey: "k"}),
		redisClient, testConfig())

	_, err := svc.Confirm(context.Background(), userID, &bookings.ConfirmBookingRequest{OrderRef: "OrderRef123"})

	assert.ErrorIs(t, err, bookings.ErrPaymentNotAuthorised)
	failed := sessions.sessions[session.BookingReferenceID]
	assert.Equal(t, reservations.StatusFailed, failed.Status)
	assert.Equal(t, "payment declined", failed.FailureReason)
	assert.Empty(t, repo.byReference)
}

func TestConfirmReplayReturnsStoredBooking(t *testing.T) {
	userID := uuid.New()
	sessions := newMockSessionRepo()
	session := paidSession(sessions, userID)
	repo := newMockBookingRepo()

	vendor := &fakeVendor{bookStatus: travzilla.Status{Code: "200"}}
	vendorServer := vendor.server(t)
	defer vendorServer.Close()

	gatewayServer := fakeGateway(telr.StatusAuthorised)
	defer gatewayServer.Close()

	redisClient, redisMock := redismock.NewClientMock()
	redisMock.ExpectSetNX(constants.BuildConfirmLockKey(session.BookingReferenceID), "1", 10*time.Minute).SetVal(true)

	svc := bookings.NewService(repo, sessions,
		travzilla.NewClient(travzilla.Config{BaseURL: vendorServer.URL}),
		telr.NewClient(telr.Config{Endpoint: gatewayServer.URL, StoreID: "1", AuthKey: "k"}),
		redisClient, testConfig())

	first, err := svc.Confirm(context.Background(), userID, &bookings.ConfirmBookingRequest{OrderRef: "OrderRef123"})
	require.NoError(t, err)
	assert.Equal(t, "TRZ-88210045", first.ConfirmationNumber)

	// Refreshing the gateway return URL replays confirm with the same order
	// ref: the stored confirmation comes back and the supplier is not called
	// again. Only one lock acquisition is expected.
	replay, err := svc.Confirm(context.Background(), userID, &bookings.ConfirmBookingRequest{OrderRef: "OrderRef123"})
	require.NoError(t, err)
	assert.Equal(t, first.ConfirmationNumber, replay.ConfirmationNumber)
	assert.Equal(t, first.BookingReferenceID, replay.BookingReferenceID)
	assert.Equal(t, 1, vendor.bookCalls)

	require.NoError(t, redisMock.ExpectationsWereMet())
}

func TestConfirmBadRequest(t *testing.T) {
	redisClient, _ := redismock.NewClientMock()
	svc := bookings.NewService(newMockBookingRepo(), newMockSessionRepo(), nil, nil, redisClient, testConfig())

	_, err := svc.Confirm(context.Background(), uuid.New(), &bookings.ConfirmBookingRequest{})
	assert.ErrorIs(t, err, bookings.ErrBadConfirmRequest)

	// Booking reference without the pay-later flag is not enough either
	_, err = svc.Confirm(context.Background(), uuid.New(), &bookings.ConfirmBookingRequest{
		BookingReferenceID: "some-ref",
	})
	assert.ErrorIs(t, err, bookings.ErrBadConfirmRequest)
}

func TestConfirmWrongOwner(t *testing.T) {
	sessions := newMockSessionRepo()
	paidSession(sessions, uuid.New())

	redisClient, _ := redismock.NewClientMock()
	svc := bookings.NewService(newMockBookingRepo(), sessions, nil, nil, redisClient, testConfig())

	_, err := svc.Confirm(context.Background(), uuid.New(), &bookings.ConfirmBookingRequest{OrderRef: "OrderRef123"})
	assert.ErrorIs(t, err, bookings.ErrNotBookingOwner)
}

func TestConfirmLockHeld(t *testing.T) {
	userID := uuid.New()
	sessions := newMockSessionRepo()
	session := paidSession(sessions, userID)

	gatewayServer := fakeGateway(telr.StatusAuthorised)
	defer gatewayServer.Close()

	redisClient, redisMock := redismock.NewClientMock()
	redisMock.ExpectSetNX(constants.BuildConfirmLockKey(session.BookingReferenceID), "1", 10*time.Minute).SetVal(false)

	svc := bookings.NewService(newMockBookingRepo(), sessions, nil,
		telr.NewClient(telr.Config{Endpoint: gatewayServer.URL, StoreID: "1", AuthKey: "k"}),
		redisClient, testConfig())

	_, err := svc.Confirm(context.Background(), userID, &bookings.ConfirmBookingRequest{OrderRef: "OrderRef123"})
	assert.ErrorIs(t, err, bookings.ErrConfirmInProgress)
}

func TestConfirmVendorRejected(t *testing.T) {
	userID := uuid.New()
	sessions := newMockSessionRepo()
	session := paidSession(sessions, userID)
	repo := newMockBookingRepo()

	vendor := &fakeVendor{bookStatus: travzilla.Status{Code: "500", Description: "Supplier failure"}}
	vendorServer := vendor.server(t)
	defer vendorServer.Close()

	gatewayServer := fakeGateway(telr.StatusAuthorised)
	defer gatewayServer.Close()

	redisClient, redisMock := redismock.NewClientMock()
	redisMock.ExpectSetNX(constants.BuildConfirmLockKey(session.BookingReferenceID), "1", 10*time.Minute).SetVal(true)

	svc := bookings.NewService(repo, sessions,
		travzilla.NewClient(travzilla.Config{BaseURL: vendorServer.URL}),
		telr.NewClient(telr.Config{Endpoint: gatewayServer.URL, StoreID: "1", AuthKey: "k"}),
		redisClient, testConfig())

	_, err := svc.Confirm(context.Background(), userID, &bookings.ConfirmBookingRequest{OrderRef: "OrderRef123"})

	assert.ErrorIs(t, err, bookings.ErrVendorBookFailed)
	failed := sessions.sessions[session.BookingReferenceID]
	assert.Equal(t, reservations.StatusFailed, failed.Status)
	assert.Empty(t, repo.byReference)
}

func TestConfirmMissingGuestDetails(t *testing.T) {
	userID := uuid.New()
	sessions := newMockSessionRepo()
	session := paidSession(sessions, userID)
	session.ClearGuestDetails()

	gatewayServer := fakeGateway(telr.StatusAuthorised)
	defer gatewayServer.Close()

	redisClient, _ := redismock.NewClientMock()
	svc := bookings.NewService(newMockBookingRepo(), sessions, nil,
		telr.NewClient(telr.Config{Endpoint: gatewayServer.URL, StoreID: "1", AuthKey: "k"}),
		redisClient, testConfig())

	_, err := svc.Confirm(context.Background(), userID, &bookings.ConfirmBookingRequest{OrderRef: "OrderRef123"})
	assert.ErrorIs(t, err, bookings.ErrGuestDetailsMissing)
}

func TestGatewayWebhookAuthorisedConfirms(t *testing.T) {
	userID := uuid.New()
	sessions := newMockSessionRepo()
	session := paidSession(sessions, userID)
	repo := newMockBookingRepo()

	vendor := &fakeVendor{bookStatus: travzilla.Status{Code: "200"}}
	vendorServer := vendor.server(t)
	defer vendorServer.Close()

	gatewayServer := fakeGateway(telr.StatusAuthorised)
	defer gatewayServer.Close()

	redisClient, redisMock := redismock.NewClientMock()
	redisMock.ExpectSetNX(constants.BuildConfirmLockKey(session.BookingReferenceID), "1", 10*time.Minute).SetVal(true)

	svc := bookings.NewService(repo, sessions,
		travzilla.NewClient(travzilla.Config{BaseURL: vendorServer.URL}),
		telr.NewClient(telr.Config{Endpoint: gatewayServer.URL, StoreID: "1", AuthKey: "k"}),
		redisClient, testConfig())

	resp, err := svc.HandleGatewayWebhook(context.Background(), "OrderRef123", telr.StatusAuthorised)

	require.NoError(t, err)
	assert.Equal(t, "TRZ-88210045", resp.ConfirmationNumber)
	assert.Equal(t, 1, vendor.bookCalls)

	// Gateways redeliver webhooks; the replay returns the stored booking
	// without another supplier call
	replay, err := svc.HandleGatewayWebhook(context.Background(), "OrderRef123", telr.StatusAuthorised)
	require.NoError(t, err)
	assert.Equal(t, resp.ConfirmationNumber, replay.ConfirmationNumber)
	assert.Equal(t, 1, vendor.bookCalls)

	require.NoError(t, redisMock.ExpectationsWereMet())
}

func TestGatewayWebhookSpoofedAuthorisation(t *testing.T) {
	userID := uuid.New()
	sessions := newMockSessionRepo()
	session := paidSession(sessions, userID)
	repo := newMockBookingRepo()

	// The notification claims authorised but the gateway says declined
	gatewayServer := fakeGateway(telr.StatusDeclined)
	defer gatewayServer.Close()

	redisClient, _ := redismock.NewClientMock()
	svc := bookings.NewService(repo, sessions, nil,
		telr.NewClient(telr.Config{Endpoint: gatewayServer.URL, StoreID: "1", AuthKey: "k"}),
		redisClient, testConfig())

	_, err := svc.HandleGatewayWebhook(context.Background(), "OrderRef123", telr.StatusAuthorised)

	assert.ErrorIs(t, err, bookings.ErrPaymentNotAuthorised)
	assert.Equal(t, reservations.StatusFailed, sessions.sessions[session.BookingReferenceID].Status)
	assert.Empty(t, repo.byReference)
}

func TestGatewayWebhookDeclinedFailsSession(t *testing.T) {
	userID := uuid.New()
	sessions := newMockSessionRepo()
	session := paidSession(sessions, userID)

	redisClient, _ := redismock.NewClientMock()
	svc := bookings.NewService(newMockBookingRepo(), sessions, nil, nil, redisClient, testConfig())

	_, err := svc.HandleGatewayWebhook(context.Background(), "OrderRef123", telr.StatusDeclined)

	require.NoError(t, err)
	failed := sessions.sessions[session.BookingReferenceID]
	assert.Equal(t, reservations.StatusFailed, failed.Status)
	assert.Equal(t, "payment declined", failed.FailureReason)

	// A late decline for an already-closed session changes nothing
	failed.Status = reservations.StatusConfirmed
	_, err = svc.HandleGatewayWebhook(context.Background(), "OrderRef123", telr.StatusDeclined)
	require.NoError(t, err)
	assert.Equal(t, reservations.StatusConfirmed, sessions.sessions[session.BookingReferenceID].Status)
}

func TestGatewayWebhookUnknownOrder(t *testing.T) {
	redisClient, _ := redismock.NewClientMock()
	svc := bookings.NewService(newMockBookingRepo(), newMockSessionRepo(), nil, nil, redisClient, testConfig())

	_, err := svc.HandleGatewayWebhook(context.Background(), "no-such-order", telr.StatusAuthorised)
	assert.ErrorIs(t, err, reservations.ErrSessionNotFound)
}

func TestGetResultStoredBooking(t *testing.T) {
	userID := uuid.New()
	repo := newMockBookingRepo()
	repo.Create(context.Background(), &bookings.Booking{
		UserID:             userID,
		BookingReferenceID: "ref-1",
		ConfirmationNumber: "TRZ-88210045",
		Status:             bookings.StatusConfirmed,
		PaymentStatus:      bookings.PaymentPaid,
	})
	repo.Create(context.Background(), &bookings.Booking{
		UserID:             userID,
		BookingReferenceID: "ref-2",
		ConfirmationNumber: "TRZ-88210046",
		Status:             bookings.StatusConfirmed,
		PaymentStatus:      bookings.PaymentPending,
	})

	redisClient, _ := redismock.NewClientMock()
	svc := bookings.NewService(repo, newMockSessionRepo(), nil, nil, redisClient, testConfig())

	result, err := svc.GetResult(context.Background(), userID, "ref-1")
	require.NoError(t, err)
	assert.True(t, result.Confirmed)
	assert.Equal(t, "Paid", result.PaymentStatusText)

	// Pay-later bookings are confirmed without any gateway involvement
	result, err = svc.GetResult(context.Background(), userID, "ref-2")
	require.NoError(t, err)
	assert.True(t, result.Confirmed)
	assert.Equal(t, "Pending (pay at the hotel)", result.PaymentStatusText)
}

func TestGetResultInFlightSession(t *testing.T) {
	userID := uuid.New()
	sessions := newMockSessionRepo()
	session := paidSession(sessions, userID)

	gatewayServer := fakeGateway(telr.StatusPending)
	defer gatewayServer.Close()

	redisClient, _ := redismock.NewClientMock()
	svc := bookings.NewService(newMockBookingRepo(), sessions, nil,
		telr.NewClient(telr.Config{Endpoint: gatewayServer.URL, StoreID: "1", AuthKey: "k"}),
		redisClient, testConfig())

	result, err := svc.GetResult(context.Background(), userID, session.BookingReferenceID)

	require.NoError(t, err)
	assert.False(t, result.Confirmed)
	assert.Equal(t, string(reservations.StatusPaymentPending), result.SessionStatus)
	assert.Equal(t, "Pending", result.PaymentStatusText)
}

func TestGetResultFailedSession(t *testing.T) {
	userID := uuid.New()
	sessions := newMockSessionRepo()
	session := paidSession(sessions, userID)
	session.Status = reservations.StatusFailed
	session.FailureReason = "payment declined"

	redisClient, _ := redismock.NewClientMock()
	svc := bookings.NewService(newMockBookingRepo(), sessions, nil, nil, redisClient, testConfig())

	result, err := svc.GetResult(context.Background(), userID, session.BookingReferenceID)

	require.NoError(t, err)
	assert.False(t, result.Confirmed)
	assert.Equal(t, string(reservations.StatusFailed), result.SessionStatus)
	assert.Equal(t, "payment declined", result.FailureReason)
}

func TestCancel(t *testing.T) {
	userID := uuid.New()
	repo := newMockBookingRepo()
	booking := &bookings.Booking{
		UserID:             userID,
		BookingReferenceID: "ref-1",
		ConfirmationNumber: "TRZ-88210045",
		Status:             bookings.StatusConfirmed,
		PaymentStatus:      bookings.PaymentPaid,
	}
	repo.Create(context.Background(), booking)

	vendor := &fakeVendor{cancelStatus: travzilla.Status{Code: "200"}}
	vendorServer := vendor.server(t)
	defer vendorServer.Close()

	redisClient, _ := redismock.NewClientMock()
	svc := bookings.NewService(repo, newMockSessionRepo(),
		travzilla.NewClient(travzilla.Config{BaseURL: vendorServer.URL}),
		nil, redisClient, testConfig())

	resp, err := svc.Cancel(context.Background(), userID, booking.ID)

	require.NoError(t, err)
	assert.Equal(t, bookings.StatusCancelled.String(), resp.Status)
	assert.NotNil(t, resp.CancelledAt)

	// Second cancel is rejected
	_, err = svc.Cancel(context.Background(), userID, booking.ID)
	assert.ErrorIs(t, err, bookings.ErrAlreadyCancelled)
}

func TestCancelWrongOwner(t *testing.T) {
	repo := newMockBookingRepo()
	booking := &bookings.Booking{
		UserID:             uuid.New(),
		BookingReferenceID: "ref-1",
		Status:             bookings.StatusConfirmed,
	}
	repo.Create(context.Background(), booking)

	redisClient, _ := redismock.NewClientMock()
	svc := bookings.NewService(repo, newMockSessionRepo(), nil, nil, redisClient, testConfig())

	_, err := svc.Cancel(context.Background(), uuid.New(), booking.ID)
	assert.ErrorIs(t, err, bookings.ErrNotBookingOwner)
}

func TestCancelSupplierRejection(t *testing.T) {
	userID := uuid.New()
	repo := newMockBookingRepo()
	booking := &bookings.Booking{
		UserID:             userID,
		BookingReferenceID: "ref-1",
		ConfirmationNumber: "TRZ-88210045",
		Status:             bookings.StatusConfirmed,
	}
	repo.Create(context.Background(), booking)

	vendor := &fakeVendor{cancelStatus: travzilla.Status{Code: "400", Description: "Past cancellation deadline"}}
	vendorServer := vendor.server(t)
	defer vendorServer.Close()

	redisClient, _ := redismock.NewClientMock()
	svc := bookings.NewService(repo, newMockSessionRepo(),
		travzilla.NewClient(travzilla.Config{BaseURL: vendorServer.URL}),
		nil, redisClient, testConfig())

	_, err := svc.Cancel(context.Background(), userID, booking.ID)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Past cancellation deadline")
	stored, _ := repo.GetByID(context.Background(), booking.ID)
	assert.Equal(t, bookings.StatusConfirmed, stored.Status)
}

func TestGetHistory(t *testing.T) {
	userID := uuid.New()
	repo := newMockBookingRepo()
	repo.Create(context.Background(), &bookings.Booking{
		UserID:             userID,
		BookingReferenceID: "ref-1",
		Status:             bookings.StatusConfirmed,
	})

	redisClient, _ := redismock.NewClientMock()
	svc := bookings.NewService(repo, newMockSessionRepo(), nil, nil, redisClient, testConfig())

	resp, err := svc.GetHistory(context.Background(), userID, bookings.BookingListQuery{})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.TotalCount)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 10, resp.Limit)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "ref-1", resp.Bookings[0].BookingReferenceID)
}

func TestGetHistoryForOtherUserIsEmpty(t *testing.T) {
	repo := newMockBookingRepo()
	repo.Create(context.Background(), &bookings.Booking{
		UserID:             uuid.New(),
		BookingReferenceID: "ref-1",
		Status:             bookings.StatusConfirmed,
	})

	redisClient, _ := redismock.NewClientMock()
	svc := bookings.NewService(repo, newMockSessionRepo(), nil, nil, redisClient, testConfig())

	resp, err := svc.GetHistory(context.Background(), uuid.New(), bookings.BookingListQuery{})

	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.TotalCount)
	assert.Empty(t, resp.Bookings)
}
