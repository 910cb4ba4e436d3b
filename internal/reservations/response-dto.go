package reservations

import (
	"encoding/json"
	"time"
)

// session state as exposed to the client
type SessionResponse struct {
	ID                 string          `json:"id"`
	BookingReferenceID string          `json:"booking_reference_id"`
	Status             string          `json:"status"`
	HotelCode          string          `json:"hotel_code"`
	HotelName          string          `json:"hotel_name,omitempty"`
	BookingCode        string          `json:"booking_code"`
	CheckIn            string          `json:"check_in,omitempty"`
	CheckOut           string          `json:"check_out,omitempty"`
	Currency           string          `json:"currency,omitempty"`
	TotalFare          float64         `json:"total_fare"`
	GuestNationality   string          `json:"guest_nationality,omitempty"`
	Prebook            json.RawMessage `json:"prebook,omitempty"`
	GuestDetails       *GuestDetails   `json:"guest_details,omitempty"`
	GuestCapturedAt    *time.Time      `json:"guest_captured_at,omitempty"`
	PaymentOrderRef    string          `json:"payment_order_ref,omitempty"`
	PaymentStatus      string          `json:"payment_status,omitempty"`
	FailureReason      string          `json:"failure_reason,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}
