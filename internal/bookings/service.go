package bookings

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"hotelrbs/internal/reservations"
	"hotelrbs/internal/shared/config"
	"hotelrbs/internal/shared/constants"
	"hotelrbs/internal/telr"
	"hotelrbs/internal/travzilla"
	"hotelrbs/pkg/cache"
	"hotelrbs/pkg/logger"
)

var (
	ErrNotBookingOwner = errors.New("booking belongs to another customer")
	// ErrBadConfirmRequest is returned when neither a pay-now order ref nor a
	// pay-later booking reference was supplied.
	ErrBadConfirmRequest    = errors.New("either order_ref or booking_reference_id with pay_later must be provided")
	ErrSessionClosed        = errors.New("booking session is no longer active")
	ErrPaymentNotAuthorised = errors.New("payment was not authorised")
	ErrGuestDetailsMissing  = errors.New("guest details missing from booking session")
	ErrConfirmInProgress    = errors.New("booking confirmation already in progress")
	ErrVendorBookFailed     = errors.New("hotel booking was rejected by the supplier")
	ErrAlreadyCancelled     = errors.New("booking is already cancelled")
)

// defaultPhonePrefix is prepended to bare 10-digit local numbers before the
// vendor call.
const defaultPhonePrefix = "91"

// NotificationService publishes booking lifecycle events. Implemented by the
// notifications package; declared here to keep the dependency one-way.
type NotificationService interface {
	PublishBookingConfirmed(ctx context.Context, booking *Booking, recipientEmail, recipientName string) error
}

type Service interface {
	Confirm(ctx context.Context, userID uuid.UUID, req *ConfirmBookingRequest) (*BookingResponse, error)
	HandleGatewayWebhook(ctx context.Context, orderRef string, statusCode int) (*BookingResponse, error)
	GetHistory(ctx context.Context, userID uuid.UUID, query BookingListQuery) (*BookingListResponse, error)
	GetResult(ctx context.Context, userID uuid.UUID, bookingReferenceID string) (*BookingResultResponse, error)
	Cancel(ctx context.Context, userID uuid.UUID, bookingID uuid.UUID) (*BookingResponse, error)
	SetCacheService(cacheService cache.Service)
	SetNotificationService(notifier NotificationService)
}

type service struct {
	repo         Repository
	sessions     reservations.Repository
	vendor       *travzilla.Client
	gateway      *telr.Client
	redisClient  *redis.Client
	cacheService cache.Service
	notifier     NotificationService
	cfg          *config.Config
}

func NewService(repo Repository, sessions reservations.Repository, vendor *travzilla.Client, gateway *telr.Client, redisClient *redis.Client, cfg *config.Config) Service {
	return &service{
		repo:        repo,
		sessions:    sessions,
		vendor:      vendor,
		gateway:     gateway,
		redisClient: redisClient,
		cfg:         cfg,
	}
}

// SetCacheService injects the cache service dependency
func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

// SetNotificationService injects the notification publisher dependency
func (s *service) SetNotificationService(notifier NotificationService) {
	s.notifier = notifier
}

// mintClientReference builds the per-attempt vendor reference: a
// second-resolution timestamp and a 3-digit random suffix.
func mintClientReference() string {
	return fmt.Sprintf("%s#%03d", time.Now().Format("20060102150405"), rand.Intn(1000))
}

// normalizePhone converts a free-form phone string to the numeric wire
// format: digits only, leading zero stripped, country prefix added to bare
// 10-digit local numbers.
func normalizePhone(raw string) int64 {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := strings.TrimPrefix(b.String(), "0")

	if len(digits) == 10 {
		digits = defaultPhonePrefix + digits
	} else if len(digits) < 10 {
		digits = defaultPhonePrefix + fmt.Sprintf("%010s", digits)
	}

	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func roundFare(fare float64) float64 {
	rounded, _ := decimal.NewFromFloat(fare).Round(2).Float64()
	return rounded
}

// Confirm reconciles a payment result into a vendor booking. The vendor
// HotelBook call runs at most once per booking reference: a Redis SETNX lock
// guards the in-flight window and the terminal session state guards replays.
// Replaying confirm after completion returns the stored confirmation.
func (s *service) Confirm(ctx context.Context, userID uuid.UUID, req *ConfirmBookingRequest) (*BookingResponse, error) {
	session, payLater, err := s.resolveSession(ctx, req)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, ErrNotBookingOwner
	}

	// Replay after completion: hand back the stored confirmation.
	if session.Status == reservations.StatusConfirmed || session.Status == reservations.StatusConfirmedPendingPayment {
		booking, err := s.repo.GetByReference(ctx, session.BookingReferenceID)
		if err != nil {
			return nil, err
		}
		resp := booking.ToResponse()
		return &resp, nil
	}
	if session.Status == reservations.StatusFailed {
		return nil, ErrSessionClosed
	}

	paymentStatus := PaymentPaid
	if payLater {
		if !session.Status.CanConfirmPayLater() {
			return nil, ErrSessionClosed
		}
		paymentStatus = PaymentPending
	} else {
		if !session.Status.CanConfirmPayNow() {
			return nil, ErrSessionClosed
		}
		if err := s.verifyPayment(ctx, session); err != nil {
			return nil, err
		}
	}

	guests, err := session.GuestDetails()
	if err != nil {
		return nil, fmt.Errorf("failed to decode guest details: %w", err)
	}
	if guests == nil || len(guests.Rooms) == 0 || len(guests.Rooms[0].Guests) == 0 {
		return nil, ErrGuestDetailsMissing
	}

	lockKey := constants.BuildConfirmLockKey(session.BookingReferenceID)
	acquired, err := s.redisClient.SetNX(ctx, lockKey, "1", s.cfg.Redis.ConfirmLockTTL).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire confirmation lock: %w", err)
	}
	if !acquired {
		return nil, ErrConfirmInProgress
	}

	booking, err := s.bookWithVendor(ctx, session, guests, paymentStatus)
	if err != nil {
		// The lock stays for pre-call failures too; the session is FAILED
		// either way and there is no automatic retry.
		return nil, err
	}

	s.invalidateUserBookings(ctx, userID)
	logger.GetDefault().LogBookingConfirmed(ctx, booking.BookingReferenceID,
		booking.ConfirmationNumber, booking.HotelCode, userID.String())

	if s.notifier != nil {
		lead := guests.Rooms[0].Guests[0]
		name := strings.TrimSpace(lead.FirstName + " " + lead.LastName)
		if err := s.notifier.PublishBookingConfirmed(ctx, booking, guests.Email, name); err != nil {
			// Best effort: the booking stands even when the notification
			// pipeline is down.
			log.Printf("Failed to publish confirmation for booking %s: %v", booking.BookingReferenceID, err)
		}
	}

	resp := booking.ToResponse()
	return &resp, nil
}

// HandleGatewayWebhook applies an asynchronous payment notification from the
// gateway. The notified status is advisory only: an authorised notification
// runs the same verified, lock-guarded confirm path as the browser return, so
// a customer who pays but never comes back via the redirect still ends up with
// a confirmed booking. Definitive failure statuses close the session.
func (s *service) HandleGatewayWebhook(ctx context.Context, orderRef string, statusCode int) (*BookingResponse, error) {
	session, err := s.sessions.GetByOrderRef(ctx, orderRef)
	if err != nil {
		return nil, err
	}

	switch statusCode {
	case telr.StatusAuthorised:
		return s.Confirm(ctx, session.UserID, &ConfirmBookingRequest{OrderRef: orderRef})
	case telr.StatusDeclined, telr.StatusCancelled:
		if session.Status.IsTerminal() {
			return nil, nil
		}
		s.failSession(ctx, session, "payment "+strings.ToLower(telr.StatusText(statusCode)))
		return nil, nil
	default:
		log.Printf("Ignoring gateway webhook for order %s with status %s", orderRef, telr.StatusText(statusCode))
		return nil, nil
	}
}

// resolveSession finds the session named by the confirm request and reports
// whether the pay-later path applies.
func (s *service) resolveSession(ctx context.Context, req *ConfirmBookingRequest) (*reservations.BookingSession, bool, error) {
	switch {
	case req.OrderRef != "":
		session, err := s.sessions.GetByOrderRef(ctx, req.OrderRef)
		return session, false, err
	case req.PayLater && req.BookingReferenceID != "":
		session, err := s.sessions.GetByReference(ctx, req.BookingReferenceID)
		return session, true, err
	default:
		return nil, false, ErrBadConfirmRequest
	}
}

// verifyPayment checks the gateway order and fails the session on a
// definitive non-authorised status.
func (s *service) verifyPayment(ctx context.Context, session *reservations.BookingSession) error {
	order, err := s.gateway.CheckOrder(ctx, session.PaymentOrderRef)
	if err != nil {
		return fmt.Errorf("gateway status check failed: %w", err)
	}
	if order.Status.Code != telr.StatusAuthorised {
		statusText := telr.StatusText(order.Status.Code)
		log.Printf("Payment for session %s not authorised: %s", session.BookingReferenceID, statusText)
		s.failSession(ctx, session, "payment "+strings.ToLower(statusText))
		return ErrPaymentNotAuthorised
	}
	session.PaymentStatus = "Authorised"
	return nil
}

// bookWithVendor submits the HotelBook call and persists the outcome. Any
// vendor rejection moves the session to FAILED; there is no retry and no
// compensating void of the payment order.
func (s *service) bookWithVendor(ctx context.Context, session *reservations.BookingSession, guests *reservations.GuestDetails, paymentStatus string) (*Booking, error) {
	customerDetails := make([]travzilla.CustomerDetail, 0, len(guests.Rooms))
	for _, room := range guests.Rooms {
		names := make([]travzilla.CustomerName, 0, len(room.Guests))
		for _, g := range room.Guests {
			names = append(names, travzilla.CustomerName{
				Title:     g.Title,
				FirstName: g.FirstName,
				LastName:  g.LastName,
				Type:      g.Type,
				Age:       g.Age,
			})
		}
		customerDetails = append(customerDetails, travzilla.CustomerDetail{CustomerNames: names})
	}

	nationality := session.GuestNationality
	if nationality == "" {
		nationality = guests.Nationality
	}

	clientReference := mintClientReference()
	bookReq := &travzilla.BookRequest{
		BookingCode:        session.BookingCode,
		CustomerDetails:    customerDetails,
		BookingType:        "Voucher",
		ClientReferenceId:  clientReference,
		BookingReferenceId: session.BookingReferenceID,
		PaymentMode:        "Limit",
		GuestNationality:   nationality,
		TotalFare:          roundFare(session.TotalFare),
		EmailId:            guests.Email,
		PhoneNumber:        normalizePhone(guests.Phone),
	}

	bookResp, err := s.vendor.Book(ctx, bookReq)
	if err != nil {
		s.failSession(ctx, session, "supplier booking call failed")
		return nil, fmt.Errorf("supplier booking call failed: %w", err)
	}
	if !bookResp.Status.OK() {
		log.Printf("Supplier rejected booking %s: %s %s",
			session.BookingReferenceID, bookResp.Status.Code, bookResp.Status.Description)
		s.failSession(ctx, session, "supplier rejected the booking")
		return nil, ErrVendorBookFailed
	}

	booking := &Booking{
		UserID:             session.UserID,
		BookingReferenceID: session.BookingReferenceID,
		ConfirmationNumber: bookResp.ConfirmationNumber,
		VendorBookingID:    bookResp.BookingId,
		ClientReferenceID:  clientReference,
		Status:             StatusConfirmed,
		PaymentStatus:      paymentStatus,
		PaymentOrderRef:    session.PaymentOrderRef,
		HotelCode:          session.HotelCode,
		HotelName:          session.HotelName,
		CheckIn:            session.CheckIn,
		CheckOut:           session.CheckOut,
		Currency:           session.Currency,
		TotalFare:          roundFare(session.TotalFare),
		GuestNationality:   nationality,
		GuestSnapshot:      session.GuestSnapshot,
	}
	if err := s.repo.Create(ctx, booking); err != nil {
		// The vendor booking exists; surface the reference so support can
		// reconcile manually.
		log.Printf("Booked with supplier but failed to persist booking %s (confirmation %s): %v",
			session.BookingReferenceID, bookResp.ConfirmationNumber, err)
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	// Session reaches its terminal state; snapshot fields move to the booking
	// row. The order ref stays on the session so a replayed confirm with the
	// same order_ref still resolves here and returns the stored confirmation.
	if paymentStatus == PaymentPending {
		session.Status = reservations.StatusConfirmedPendingPayment
	} else {
		session.Status = reservations.StatusConfirmed
		session.PaymentStatus = PaymentPaid
	}
	session.PrebookSnapshot = ""
	session.ClearGuestDetails()
	if err := s.sessions.Update(ctx, session); err != nil {
		log.Printf("Failed to close session %s after confirmation: %v", session.BookingReferenceID, err)
	}

	return booking, nil
}

func (s *service) failSession(ctx context.Context, session *reservations.BookingSession, reason string) {
	session.Status = reservations.StatusFailed
	session.FailureReason = reason
	if err := s.sessions.Update(ctx, session); err != nil {
		log.Printf("Failed to mark session %s as failed: %v", session.BookingReferenceID, err)
	}
}

func (s *service) GetHistory(ctx context.Context, userID uuid.UUID, query BookingListQuery) (*BookingListResponse, error) {
	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = 10
	}

	cacheKey := constants.BuildUserBookingsKey(userID.String(), query.Page)
	if query.Status == "" && s.cacheService != nil {
		var cached BookingListResponse
		if err := s.cacheService.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	bookings, totalCount, err := s.repo.GetUserBookings(ctx, userID, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking history: %w", err)
	}

	responses := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		responses = append(responses, bookings[i].ToResponse())
	}

	resp := &BookingListResponse{
		Bookings:   responses,
		TotalCount: totalCount,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: CalculateTotalPages(totalCount, query.Limit),
	}

	if query.Status == "" && s.cacheService != nil {
		if err := s.cacheService.Set(ctx, cacheKey, resp, constants.TTL_USER_BOOKINGS); err != nil {
			log.Printf("Failed to cache booking history for user %s: %v", userID, err)
		}
	}

	return resp, nil
}

// GetResult backs the post-payment reconciliation page. A stored booking row
// is authoritative: pay-later bookings count as confirmed without any gateway
// call. Before the row exists the session state is reported, with a live
// gateway status for an in-flight pay-now session.
func (s *service) GetResult(ctx context.Context, userID uuid.UUID, bookingReferenceID string) (*BookingResultResponse, error) {
	booking, err := s.repo.GetByReference(ctx, bookingReferenceID)
	if err == nil {
		if booking.UserID != userID {
			return nil, ErrNotBookingOwner
		}
		resp := booking.ToResponse()
		statusText := "Paid"
		if booking.IsPayLater() {
			statusText = "Pending (pay at the hotel)"
		}
		return &BookingResultResponse{
			Confirmed:         true,
			Booking:           &resp,
			PaymentStatusText: statusText,
		}, nil
	}
	if !errors.Is(err, ErrBookingNotFound) {
		return nil, err
	}

	session, err := s.sessions.GetByReference(ctx, bookingReferenceID)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, ErrNotBookingOwner
	}

	result := &BookingResultResponse{
		SessionStatus: string(session.Status),
		FailureReason: session.FailureReason,
	}
	if session.Status == reservations.StatusPaymentPending && session.PaymentOrderRef != "" {
		order, err := s.gateway.CheckOrder(ctx, session.PaymentOrderRef)
		if err != nil {
			log.Printf("Gateway status check failed for session %s: %v", bookingReferenceID, err)
		} else {
			result.PaymentStatusText = telr.StatusText(order.Status.Code)
		}
	}
	return result, nil
}

// Cancel voids a confirmed booking at the supplier, then marks the row
// cancelled.
func (s *service) Cancel(ctx context.Context, userID uuid.UUID, bookingID uuid.UUID) (*BookingResponse, error) {
	booking, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		return nil, ErrNotBookingOwner
	}
	if booking.IsCancelled() {
		return nil, ErrAlreadyCancelled
	}

	cancelResp, err := s.vendor.Cancel(ctx, &travzilla.CancelRequest{
		ConfirmationNumber: booking.ConfirmationNumber,
	})
	if err != nil {
		return nil, fmt.Errorf("supplier cancellation failed: %w", err)
	}
	if !cancelResp.Status.OK() {
		return nil, fmt.Errorf("supplier rejected cancellation: %s %s",
			cancelResp.Status.Code, cancelResp.Status.Description)
	}

	now := time.Now()
	if err := s.repo.MarkCancelled(ctx, bookingID, now); err != nil {
		return nil, fmt.Errorf("failed to mark booking cancelled: %w", err)
	}

	s.invalidateUserBookings(ctx, userID)
	logger.GetDefault().LogBookingCancelled(ctx, booking.BookingReferenceID,
		booking.ConfirmationNumber, userID.String())

	booking.Status = StatusCancelled
	booking.CancelledAt = &now
	resp := booking.ToResponse()
	return &resp, nil
}

func (s *service) invalidateUserBookings(ctx context.Context, userID uuid.UUID) {
	if s.cacheService == nil {
		return
	}
	pattern := constants.CACHE_KEY_USER_BOOKINGS + userID.String() + ":*"
	if err := s.cacheService.DeletePattern(ctx, pattern); err != nil {
		log.Printf("Failed to invalidate booking cache for user %s: %v", userID, err)
	}
}
