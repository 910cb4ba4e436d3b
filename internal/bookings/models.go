package bookings

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"hotelrbs/internal/reservations"
)

// Booking is one confirmed hotel booking. It is written exactly once, when
// the vendor accepts the HotelBook call, and doubles as the customer's
// booking history.
type Booking struct {
	ID                 uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID             uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	BookingReferenceID string    `gorm:"uniqueIndex;not null" json:"booking_reference_id"`

	// Vendor-issued identifiers
	ConfirmationNumber string `gorm:"index" json:"confirmation_number"`
	VendorBookingID    string `json:"vendor_booking_id,omitempty"`
	ClientReferenceID  string `json:"client_reference_id"`

	Status          Status `gorm:"type:varchar(20);check:status IN ('CONFIRMED', 'CANCELLED');default:'CONFIRMED'" json:"status"`
	PaymentStatus   string `gorm:"type:varchar(10)" json:"payment_status"` // Paid | Pending
	PaymentOrderRef string `json:"payment_order_ref,omitempty"`

	// Stay snapshot carried over from the booking session
	HotelCode        string  `gorm:"not null" json:"hotel_code"`
	HotelName        string  `json:"hotel_name"`
	CheckIn          string  `gorm:"type:varchar(10)" json:"check_in"`
	CheckOut         string  `gorm:"type:varchar(10)" json:"check_out"`
	Currency         string  `gorm:"type:varchar(3)" json:"currency"`
	TotalFare        float64 `json:"total_fare"`
	GuestNationality string  `gorm:"type:varchar(2)" json:"guest_nationality"`

	// Guest bundle as booked, for the result page and confirmation email
	GuestSnapshot string `gorm:"type:text" json:"-"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
}

// TableName sets the table name for Booking
func (Booking) TableName() string {
	return "bookings"
}

func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// IsPayLater reports whether payment is still due at the property.
func (b *Booking) IsPayLater() bool {
	return b.PaymentStatus == PaymentPending
}

// GuestDetails returns the guest bundle as booked, or nil when the snapshot
// is missing.
func (b *Booking) GuestDetails() (*reservations.GuestDetails, error) {
	if b.GuestSnapshot == "" {
		return nil, nil
	}
	var gd reservations.GuestDetails
	if err := json.Unmarshal([]byte(b.GuestSnapshot), &gd); err != nil {
		return nil, err
	}
	return &gd, nil
}

// ToResponse converts the booking to its API shape.
func (b *Booking) ToResponse() BookingResponse {
	resp := BookingResponse{
		ID:                 b.ID.String(),
		BookingReferenceID: b.BookingReferenceID,
		ConfirmationNumber: b.ConfirmationNumber,
		VendorBookingID:    b.VendorBookingID,
		ClientReferenceID:  b.ClientReferenceID,
		Status:             string(b.Status),
		PaymentStatus:      b.PaymentStatus,
		HotelCode:          b.HotelCode,
		HotelName:          b.HotelName,
		CheckIn:            b.CheckIn,
		CheckOut:           b.CheckOut,
		Currency:           b.Currency,
		TotalFare:          b.TotalFare,
		GuestNationality:   b.GuestNationality,
		CreatedAt:          b.CreatedAt,
		CancelledAt:        b.CancelledAt,
	}
	if gd, err := b.GuestDetails(); err == nil && gd != nil {
		resp.GuestDetails = gd
	}
	return resp
}
