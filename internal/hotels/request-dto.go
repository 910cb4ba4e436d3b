package hotels

// occupancy of one requested room
type PaxRoomRequest struct {
	Adults       int   `json:"adults" validate:"required,min=1,max=8"`
	Children     int   `json:"children" validate:"min=0,max=4"`
	ChildrenAges []int `json:"children_ages,omitempty"`
}

// availability search payload
type SearchHotelsRequest struct {
	CheckIn            string           `json:"check_in" validate:"required"`  // yyyy-mm-dd
	CheckOut           string           `json:"check_out" validate:"required"` // yyyy-mm-dd
	HotelCodes         string           `json:"hotel_codes,omitempty"`
	CityCode           string           `json:"city_code,omitempty"`
	GuestNationality   string           `json:"guest_nationality,omitempty"`
	PaxRooms           []PaxRoomRequest `json:"pax_rooms" validate:"required,min=1,dive"`
	IsDetailedResponse bool             `json:"is_detailed_response"`
}

// static content lookup for one hotel
type HotelDetailsRequest struct {
	HotelCode string `json:"hotel_code" validate:"required"`
	Language  string `json:"language,omitempty"`
}

// live room offers lookup for one hotel
type HotelRoomsRequest struct {
	CheckIn          string           `json:"check_in" validate:"required"`
	CheckOut         string           `json:"check_out" validate:"required"`
	HotelCode        string           `json:"hotel_code" validate:"required"`
	GuestNationality string           `json:"guest_nationality,omitempty"`
	PaxRooms         []PaxRoomRequest `json:"pax_rooms" validate:"required,min=1,dive"`
}

// ranged booking lookup (admin)
type BookingDetailsByDateRequest struct {
	FromDate string `json:"from_date" validate:"required"`
	ToDate   string `json:"to_date" validate:"required"`
}
