package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"hotelrbs/internal/reservations"
	"hotelrbs/internal/shared/config"
	"hotelrbs/internal/telr"
)

var (
	ErrNotSessionOwner = errors.New("booking session belongs to another customer")
	// ErrPaymentNotReady is returned when the session has not captured guest
	// details yet, or the booking was already paid, confirmed or failed.
	ErrPaymentNotReady     = errors.New("booking session is not ready for payment")
	ErrGuestDetailsMissing = errors.New("guest details must be captured before payment")
)

type Service interface {
	CreateOrder(ctx context.Context, userID uuid.UUID, req *CreatePaymentOrderRequest) (*PaymentOrderResponse, error)
}

type service struct {
	sessions reservations.Repository
	gateway  *telr.Client
	cfg      *config.Config
}

func NewService(sessions reservations.Repository, gateway *telr.Client, cfg *config.Config) Service {
	return &service{
		sessions: sessions,
		gateway:  gateway,
		cfg:      cfg,
	}
}

// CreateOrder registers a hosted-checkout order with the gateway for the
// session's total fare and moves the session to PAYMENT_PENDING. The amount
// and currency always come from the server-side session, never the caller.
func (s *service) CreateOrder(ctx context.Context, userID uuid.UUID, req *CreatePaymentOrderRequest) (*PaymentOrderResponse, error) {
	session, err := s.sessions.GetByReference(ctx, req.BookingReferenceID)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, ErrNotSessionOwner
	}
	if !session.Status.CanInitiatePayment() {
		return nil, ErrPaymentNotReady
	}

	guests, err := session.GuestDetails()
	if err != nil {
		return nil, fmt.Errorf("failed to decode guest details: %w", err)
	}
	if guests == nil || len(guests.Rooms) == 0 || len(guests.Rooms[0].Guests) == 0 {
		return nil, ErrGuestDetailsMissing
	}

	amount := decimal.NewFromFloat(session.TotalFare).StringFixed(2)

	description := req.Description
	if description == "" {
		description = fmt.Sprintf("Hotel booking %s - %s", session.BookingReferenceID, session.HotelName)
	}

	lead := guests.Rooms[0].Guests[0]
	base := strings.TrimRight(s.cfg.Telr.ReturnBaseURL, "/")

	order, err := s.gateway.CreateOrder(ctx, &telr.CreateOrderParams{
		CartID:      session.BookingReferenceID,
		Amount:      amount,
		Currency:    s.cfg.Telr.Currency,
		Description: description,
		Customer: telr.Customer{
			Ref:   userID.String(),
			Email: guests.Email,
			Name: telr.CustomerName{
				Forenames: lead.FirstName,
				Surname:   lead.LastName,
			},
			Address: telr.CustomerAddress{
				Line1:   guests.Address,
				City:    guests.City,
				Country: guests.Country,
			},
			Phone: guests.Phone,
		},
		ReturnURLs: telr.ReturnURLs{
			Authorised: fmt.Sprintf("%s/payment/success?booking_ref=%s", base, session.BookingReferenceID),
			Declined:   fmt.Sprintf("%s/payment/declined?booking_ref=%s", base, session.BookingReferenceID),
			Cancelled:  fmt.Sprintf("%s/payment/cancelled?booking_ref=%s", base, session.BookingReferenceID),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("gateway order creation failed: %w", err)
	}

	session.PaymentOrderRef = order.Ref
	session.PaymentStatus = "Initiated"
	session.Status = reservations.StatusPaymentPending
	if err := s.sessions.Update(ctx, session); err != nil {
		// The gateway order exists but the session was not advanced; the
		// customer can safely retry, which creates a fresh order.
		log.Printf("Failed to persist payment order %s on session %s: %v",
			order.Ref, session.BookingReferenceID, err)
		return nil, fmt.Errorf("failed to update booking session: %w", err)
	}

	return &PaymentOrderResponse{
		BookingReferenceID: session.BookingReferenceID,
		OrderRef:           order.Ref,
		CheckoutURL:        order.URL,
		Amount:             amount,
		Currency:           s.cfg.Telr.Currency,
		SessionStatus:      string(session.Status),
	}, nil
}
