package reservations

// reservation (prebook) request payload
type CreateReservationRequest struct {
	BookingCode      string `json:"booking_code" validate:"required"`
	HotelCode        string `json:"hotel_code" validate:"required"`
	HotelName        string `json:"hotel_name,omitempty"`
	CheckIn          string `json:"check_in" validate:"required"`
	CheckOut         string `json:"check_out" validate:"required"`
	GuestNationality string `json:"guest_nationality,omitempty"`
}

// guest-details capture payload. BookingReferenceID must match the session
// the details are submitted against.
type GuestDetailsRequest struct {
	BookingReferenceID string       `json:"booking_reference_id" validate:"required"`
	Rooms              []RoomGuests `json:"rooms" validate:"required,min=1,dive"`
	Email              string       `json:"email" validate:"required,email"`
	Phone              string       `json:"phone" validate:"required"`
	Address            string       `json:"address,omitempty"`
	City               string       `json:"city,omitempty"`
	Country            string       `json:"country,omitempty"`
	Nationality        string       `json:"nationality,omitempty" validate:"omitempty,len=2"`
}
