package reservations

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"hotelrbs/internal/travzilla"
	"hotelrbs/pkg/logger"
)

var (
	ErrNotSessionOwner = errors.New("booking session belongs to another customer")
	ErrSessionClosed   = errors.New("booking session is no longer active")
	ErrPrebookRejected = errors.New("the selected rate is no longer available")
	// ErrGuestDetailsDiscarded is returned when the submitted bundle was
	// captured against a different booking reference. The stored snapshot is
	// discarded and the caller must re-enter guest details.
	ErrGuestDetailsDiscarded = errors.New("guest details do not match the active reservation; please re-enter them")
	ErrInvalidGuestAge       = errors.New("child guests require an age between 0 and 17")
	ErrNoAdultInRoom         = errors.New("every room needs at least one adult guest")
)

const maxChildAge = 17

type Service interface {
	Reserve(ctx context.Context, userID uuid.UUID, req *CreateReservationRequest) (*SessionResponse, error)
	SaveGuestDetails(ctx context.Context, userID uuid.UUID, bookingReferenceID string, req *GuestDetailsRequest) (*SessionResponse, error)
	GetSession(ctx context.Context, userID uuid.UUID, bookingReferenceID string) (*SessionResponse, error)
}

type service struct {
	repo   Repository
	vendor *travzilla.Client
}

func NewService(repo Repository, vendor *travzilla.Client) Service {
	return &service{
		repo:   repo,
		vendor: vendor,
	}
}

// mintBookingReference builds a new operator reference: a second-resolution
// timestamp plus a random suffix. Uniqueness is backed by the unique index on
// booking_sessions.
func mintBookingReference() string {
	return fmt.Sprintf("%s%04d", time.Now().Format("20060102150405"), rand.Intn(10000))
}

func roundFare(fare float64) float64 {
	rounded, _ := decimal.NewFromFloat(fare).Round(2).Float64()
	return rounded
}

func (s *service) Reserve(ctx context.Context, userID uuid.UUID, req *CreateReservationRequest) (*SessionResponse, error) {
	if userID == uuid.Nil {
		return nil, ErrNotSessionOwner
	}

	// Lock/validate the rate at the vendor before minting a reference
	prebook, err := s.vendor.Prebook(ctx, &travzilla.PrebookRequest{
		BookingCode: req.BookingCode,
		PaymentMode: "Limit",
	})
	if err != nil {
		return nil, fmt.Errorf("prebook call failed: %w", err)
	}
	if !prebook.Status.OK() {
		log.Printf("Prebook rejected for booking code %s: %s %s",
			req.BookingCode, prebook.Status.Code, prebook.Status.Description)
		return nil, ErrPrebookRejected
	}

	// One active reference per customer: supersede anything in flight
	if err := s.repo.FailActiveByUser(ctx, userID, "superseded by a newer reservation"); err != nil {
		return nil, fmt.Errorf("failed to supersede prior sessions: %w", err)
	}

	snapshot, err := json.Marshal(prebook.HotelResult)
	if err != nil {
		return nil, fmt.Errorf("failed to store prebook snapshot: %w", err)
	}

	nationality := req.GuestNationality
	if nationality == "" {
		nationality = "AE"
	}

	currency := prebook.HotelResult.Currency
	if currency == "" {
		currency = prebook.HotelResult.Rooms.Currency
	}

	session := &BookingSession{
		UserID:             userID,
		BookingReferenceID: mintBookingReference(),
		Status:             StatusReserved,
		HotelCode:          req.HotelCode,
		HotelName:          req.HotelName,
		BookingCode:        req.BookingCode,
		CheckIn:            req.CheckIn,
		CheckOut:           req.CheckOut,
		Currency:           currency,
		TotalFare:          roundFare(prebook.HotelResult.Rooms.FareAmount()),
		GuestNationality:   nationality,
		PrebookSnapshot:    string(snapshot),
	}

	if err := s.repo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create booking session: %w", err)
	}
	logger.GetDefault().LogReservationCreated(ctx, session.BookingReferenceID, session.HotelCode, userID.String())

	resp := session.ToResponse()
	return &resp, nil
}

// validateGuests enforces the per-room guest rules: at least one adult, and
// every child carries an integer age in [0,17].
func validateGuests(rooms []RoomGuests) error {
	for _, room := range rooms {
		adults := 0
		for _, guest := range room.Guests {
			switch guest.Type {
			case "Adult":
				adults++
			case "Child":
				if guest.Age == nil || *guest.Age < 0 || *guest.Age > maxChildAge {
					return ErrInvalidGuestAge
				}
			}
		}
		if adults == 0 {
			return ErrNoAdultInRoom
		}
	}
	return nil
}

func (s *service) SaveGuestDetails(ctx context.Context, userID uuid.UUID, bookingReferenceID string, req *GuestDetailsRequest) (*SessionResponse, error) {
	session, err := s.repo.GetByReference(ctx, bookingReferenceID)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, ErrNotSessionOwner
	}

	// A bundle captured against a different reference is never reused. Drop
	// whatever snapshot the session holds and make the caller start over.
	if req.BookingReferenceID != session.BookingReferenceID {
		session.ClearGuestDetails()
		if session.Status == StatusGuestDetailsCaptured {
			session.Status = StatusReserved
		}
		if err := s.repo.Update(ctx, session); err != nil {
			return nil, fmt.Errorf("failed to reset session: %w", err)
		}
		return nil, ErrGuestDetailsDiscarded
	}

	if !session.Status.CanCaptureGuests() {
		return nil, ErrSessionClosed
	}

	if err := validateGuests(req.Rooms); err != nil {
		return nil, err
	}

	details := &GuestDetails{
		BookingReferenceID: session.BookingReferenceID,
		Rooms:              req.Rooms,
		Email:              req.Email,
		Phone:              req.Phone,
		Address:            req.Address,
		City:               req.City,
		Country:            req.Country,
		Nationality:        req.Nationality,
		CapturedAt:         time.Now().UTC(),
	}

	if err := session.SetGuestDetails(details); err != nil {
		return nil, fmt.Errorf("failed to store guest details: %w", err)
	}
	session.Status = StatusGuestDetailsCaptured

	if err := s.repo.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update booking session: %w", err)
	}

	resp := session.ToResponse()
	return &resp, nil
}

func (s *service) GetSession(ctx context.Context, userID uuid.UUID, bookingReferenceID string) (*SessionResponse, error) {
	session, err := s.repo.GetByReference(ctx, bookingReferenceID)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, ErrNotSessionOwner
	}

	resp := session.ToResponse()
	return &resp, nil
}
