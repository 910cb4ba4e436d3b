package bookings

import (
	"time"

	"hotelrbs/internal/reservations"
)

type BookingResponse struct {
	ID                 string                     `json:"id"`
	BookingReferenceID string                     `json:"booking_reference_id"`
	ConfirmationNumber string                     `json:"confirmation_number"`
	VendorBookingID    string                     `json:"vendor_booking_id,omitempty"`
	ClientReferenceID  string                     `json:"client_reference_id"`
	Status             string                     `json:"status"`
	PaymentStatus      string                     `json:"payment_status"`
	HotelCode          string                     `json:"hotel_code"`
	HotelName          string                     `json:"hotel_name"`
	CheckIn            string                     `json:"check_in"`
	CheckOut           string                     `json:"check_out"`
	Currency           string                     `json:"currency"`
	TotalFare          float64                    `json:"total_fare"`
	GuestNationality   string                     `json:"guest_nationality"`
	GuestDetails       *reservations.GuestDetails `json:"guest_details,omitempty"`
	CreatedAt          time.Time                  `json:"created_at"`
	CancelledAt        *time.Time                 `json:"cancelled_at,omitempty"`
}

type BookingListResponse struct {
	Bookings   []BookingResponse `json:"bookings"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
}

// BookingResultResponse backs the post-payment reconciliation page. When no
// booking row exists yet it reports the session state instead, including the
// live gateway status for an in-flight pay-now session.
type BookingResultResponse struct {
	Confirmed         bool             `json:"confirmed"`
	Booking           *BookingResponse `json:"booking,omitempty"`
	SessionStatus     string           `json:"session_status,omitempty"`
	PaymentStatusText string           `json:"payment_status_text,omitempty"`
	FailureReason     string           `json:"failure_reason,omitempty"`
}
