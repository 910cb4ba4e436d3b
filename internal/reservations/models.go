package reservations

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// BookingSession is the server-side record of one booking attempt, keyed by
// the operator-minted booking reference. It replaces per-client scratch
// state: the reference, the prebook snapshot, the guest-detail bundle and the
// payment order ref all live here.
type BookingSession struct {
	ID                 uuid.UUID     `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID             uuid.UUID     `gorm:"type:uuid;index;not null" json:"user_id"`
	BookingReferenceID string        `gorm:"uniqueIndex;not null" json:"booking_reference_id"`
	Status             SessionStatus `gorm:"type:varchar(30);not null;default:'RESERVED'" json:"status"`

	// Stay snapshot captured at reservation time
	HotelCode        string  `gorm:"not null" json:"hotel_code"`
	HotelName        string  `json:"hotel_name"`
	BookingCode      string  `gorm:"not null" json:"booking_code"`
	CheckIn          string  `gorm:"type:varchar(10)" json:"check_in"`
	CheckOut         string  `gorm:"type:varchar(10)" json:"check_out"`
	Currency         string  `gorm:"type:varchar(3)" json:"currency"`
	TotalFare        float64 `json:"total_fare"`
	GuestNationality string  `gorm:"type:varchar(2)" json:"guest_nationality"`

	// Vendor prebook payload, stored verbatim for the result surface
	PrebookSnapshot string `gorm:"type:text" json:"-"`

	// Versioned guest-detail bundle; empty until captured
	GuestSnapshot   string     `gorm:"type:text" json:"-"`
	GuestCapturedAt *time.Time `json:"guest_captured_at,omitempty"`

	// Pay-now bookkeeping
	PaymentOrderRef string `gorm:"index" json:"payment_order_ref,omitempty"`
	PaymentStatus   string `gorm:"type:varchar(20)" json:"payment_status,omitempty"`

	FailureReason string `json:"failure_reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (BookingSession) TableName() string {
	return "booking_sessions"
}

// GuestName is one guest on the booking. Age is required for children.
type GuestName struct {
	Title     string `json:"title" validate:"required"`
	FirstName string `json:"first_name" validate:"required,min=1,max=100"`
	LastName  string `json:"last_name" validate:"required,min=1,max=100"`
	Type      string `json:"type" validate:"required,oneof=Adult Child"`
	Age       *int   `json:"age,omitempty"`
}

// RoomGuests groups the guests of one room.
type RoomGuests struct {
	Guests []GuestName `json:"guests" validate:"required,min=1,dive"`
}

// GuestDetails is the captured guest bundle, stored as one versioned
// snapshot. BookingReferenceID records which session the details were
// entered against.
type GuestDetails struct {
	BookingReferenceID string       `json:"booking_reference_id"`
	Rooms              []RoomGuests `json:"rooms"`
	Email              string       `json:"email"`
	Phone              string       `json:"phone"`
	Address            string       `json:"address,omitempty"`
	City               string       `json:"city,omitempty"`
	Country            string       `json:"country,omitempty"`
	Nationality        string       `json:"nationality,omitempty"`
	CapturedAt         time.Time    `json:"captured_at"`
}

// SetGuestDetails stores the bundle on the session.
func (s *BookingSession) SetGuestDetails(gd *GuestDetails) error {
	data, err := json.Marshal(gd)
	if err != nil {
		return err
	}
	s.GuestSnapshot = string(data)
	s.GuestCapturedAt = &gd.CapturedAt
	return nil
}

// GuestDetails returns the stored bundle, or nil when none was captured.
func (s *BookingSession) GuestDetails() (*GuestDetails, error) {
	if s.GuestSnapshot == "" {
		return nil, nil
	}
	var gd GuestDetails
	if err := json.Unmarshal([]byte(s.GuestSnapshot), &gd); err != nil {
		return nil, err
	}
	return &gd, nil
}

// ClearGuestDetails discards the stored bundle.
func (s *BookingSession) ClearGuestDetails() {
	s.GuestSnapshot = ""
	s.GuestCapturedAt = nil
}

// ToResponse converts the session to its API shape.
func (s *BookingSession) ToResponse() SessionResponse {
	resp := SessionResponse{
		ID:                 s.ID.String(),
		BookingReferenceID: s.BookingReferenceID,
		Status:             string(s.Status),
		HotelCode:          s.HotelCode,
		HotelName:          s.HotelName,
		BookingCode:        s.BookingCode,
		CheckIn:            s.CheckIn,
		CheckOut:           s.CheckOut,
		Currency:           s.Currency,
		TotalFare:          s.TotalFare,
		GuestNationality:   s.GuestNationality,
		PaymentOrderRef:    s.PaymentOrderRef,
		PaymentStatus:      s.PaymentStatus,
		FailureReason:      s.FailureReason,
		GuestCapturedAt:    s.GuestCapturedAt,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
	if s.PrebookSnapshot != "" {
		resp.Prebook = json.RawMessage(s.PrebookSnapshot)
	}
	if gd, err := s.GuestDetails(); err == nil && gd != nil {
		resp.GuestDetails = gd
	}
	return resp
}
