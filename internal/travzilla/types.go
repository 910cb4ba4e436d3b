package travzilla

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Status is the envelope every vendor response carries.
// Code is a string on the wire ("200", "201", "400", ...).
type Status struct {
	Code        string `json:"Code"`
	Description string `json:"Description"`
}

// OK reports whether the vendor accepted the request.
func (s Status) OK() bool {
	return s.Code == "200" || s.Code == "201"
}

// StatusError is returned when the vendor answered HTTP 200 but flagged the
// request as failed in the Status envelope.
type StatusError struct {
	Status Status
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("vendor status %s: %s", e.Status.Code, e.Status.Description)
}

// PaxRoom describes the occupancy of one requested room.
type PaxRoom struct {
	Adults       int   `json:"Adults"`
	Children     int   `json:"Children"`
	ChildrenAges []int `json:"ChildrenAges,omitempty"`
}

// SearchRequest mirrors the vendor Search payload.
type SearchRequest struct {
	CheckIn            string    `json:"CheckIn"`  // yyyy-mm-dd
	CheckOut           string    `json:"CheckOut"` // yyyy-mm-dd
	HotelCodes         string    `json:"HotelCodes,omitempty"`
	CityCode           string    `json:"CityCode,omitempty"`
	GuestNationality   string    `json:"GuestNationality"`
	PaxRooms           []PaxRoom `json:"PaxRooms"`
	ResponseTime       float64   `json:"ResponseTime,omitempty"`
	IsDetailedResponse bool      `json:"IsDetailedResponse"`
}

// CancelPolicy is carried unchanged from prebook to the caller.
type CancelPolicy struct {
	FromDate           string      `json:"FromDate,omitempty"`
	ChargeType         string      `json:"ChargeType,omitempty"`
	CancellationCharge json.Number `json:"CancellationCharge,omitempty"`
}

// Room is a vendor room/rate offer. The BookingCode identifies this exact
// room/rate/availability combination from search through prebook to booking.
// The vendor is loose with numeric types: TotalFare arrives as a string in
// some payloads and a number in others, hence json.Number.
type Room struct {
	Name           string         `json:"Name"`
	BookingCode    string         `json:"BookingCode"`
	Price          float64        `json:"Price,omitempty"`
	Currency       string         `json:"Currency,omitempty"`
	MealType       string         `json:"MealType,omitempty"`
	Inclusion      string         `json:"Inclusion,omitempty"`
	TotalFare      json.Number    `json:"TotalFare,omitempty"`
	TotalTax       json.Number    `json:"TotalTax,omitempty"`
	Refundable     bool           `json:"Refundable,omitempty"`
	WithTransfers  string         `json:"WithTransfers,omitempty"`
	Amenities      []string       `json:"Amenities,omitempty"`
	CancelPolicies []CancelPolicy `json:"CancelPolicies,omitempty"`
}

// FareAmount returns the room's total fare, falling back to the nightly
// price when the vendor omitted TotalFare.
func (r Room) FareAmount() float64 {
	if r.TotalFare != "" {
		if f, err := strconv.ParseFloat(r.TotalFare.String(), 64); err == nil {
			return f
		}
	}
	return r.Price
}

// HotelResult is one hotel in a search response.
type HotelResult struct {
	HotelCode  string  `json:"HotelCode"`
	HotelName  string  `json:"HotelName"`
	Address    string  `json:"Address,omitempty"`
	StarRating string  `json:"StarRating,omitempty"`
	FrontImage string  `json:"FrontImage,omitempty"`
	Currency   string  `json:"Currency,omitempty"`
	Rooms      []Room  `json:"Rooms,omitempty"`
}

// SearchResponse is the vendor Search result.
type SearchResponse struct {
	Status      Status        `json:"Status"`
	HotelResult []HotelResult `json:"HotelResult,omitempty"`
}

// HotelDetailsRequest asks for static content of one hotel.
type HotelDetailsRequest struct {
	HotelCode string `json:"HotelCode"`
	Language  string `json:"Language,omitempty"`
}

// HotelDetails is the vendor's static hotel content.
type HotelDetails struct {
	HotelCode       string   `json:"HotelCode"`
	HotelName       string   `json:"HotelName"`
	Address         string   `json:"Address,omitempty"`
	CityName        string   `json:"CityName,omitempty"`
	CountryName     string   `json:"CountryName,omitempty"`
	StarRating      string   `json:"StarRating,omitempty"`
	Description     string   `json:"Description,omitempty"`
	HotelFacilities []string `json:"HotelFacilities,omitempty"`
	Images          []string `json:"Images,omitempty"`
}

// HotelDetailsResponse wraps the details payload.
type HotelDetailsResponse struct {
	Status       Status         `json:"Status"`
	HotelDetails []HotelDetails `json:"HotelDetails,omitempty"`
}

// HotelRoomRequest asks for live room offers of one hotel.
type HotelRoomRequest struct {
	CheckIn          string    `json:"CheckIn"`
	CheckOut         string    `json:"CheckOut"`
	HotelCode        string    `json:"HotelCode"`
	GuestNationality string    `json:"GuestNationality"`
	PaxRooms         []PaxRoom `json:"PaxRooms"`
}

// HotelRoomResponse wraps live room offers.
type HotelRoomResponse struct {
	Status      Status        `json:"Status"`
	HotelResult []HotelResult `json:"HotelResult,omitempty"`
}

// PrebookRequest locks/validates a rate shortly before final booking.
type PrebookRequest struct {
	BookingCode string `json:"BookingCode"`
	PaymentMode string `json:"PaymentMode"`
}

// PrebookHotel is the single-hotel result of a prebook. Unlike search, the
// vendor returns Rooms as one object here, not an array.
type PrebookHotel struct {
	HotelCode      string         `json:"HotelCode,omitempty"`
	Currency       string         `json:"Currency,omitempty"`
	Rooms          Room           `json:"Rooms"`
	RateConditions []string       `json:"RateConditions,omitempty"`
	CancelPolicies []CancelPolicy `json:"CancelPolicies,omitempty"`
}

// PrebookResponse is the vendor Prebook result.
type PrebookResponse struct {
	Status      Status       `json:"Status"`
	HotelResult PrebookHotel `json:"HotelResult,omitempty"`
}

// CustomerName is one guest on the final booking. Age is required for
// children.
type CustomerName struct {
	Title     string `json:"Title"`
	FirstName string `json:"FirstName"`
	LastName  string `json:"LastName"`
	Type      string `json:"Type"` // "Adult" or "Child"
	Age       *int   `json:"Age,omitempty"`
}

// CustomerDetail groups the guests of one room.
type CustomerDetail struct {
	CustomerNames []CustomerName `json:"CustomerNames"`
}

// BookRequest is the final HotelBook payload. PhoneNumber is numeric on the
// wire per the vendor's API example.
type BookRequest struct {
	BookingCode        string           `json:"BookingCode"`
	CustomerDetails    []CustomerDetail `json:"CustomerDetails"`
	BookingType        string           `json:"BookingType"` // "Confirm" or "Voucher"
	ClientReferenceId  string           `json:"ClientReferenceId"`
	BookingReferenceId string           `json:"BookingReferenceId"`
	PaymentMode        string           `json:"PaymentMode"` // "Limit" or "Credit"
	GuestNationality   string           `json:"GuestNationality"`
	TotalFare          float64          `json:"TotalFare"`
	EmailId            string           `json:"EmailId"`
	PhoneNumber        int64            `json:"PhoneNumber"`
}

// BookResponse is the vendor HotelBook result.
type BookResponse struct {
	Status             Status `json:"Status"`
	ConfirmationNumber string `json:"ConfirmationNumber,omitempty"`
	BookingId          string `json:"BookingId,omitempty"`
	ClientReferenceId  string `json:"ClientReferenceId,omitempty"`
	BookingStatus      string `json:"BookingStatus,omitempty"`
}

// CancelRequest voids a confirmed booking at the vendor.
type CancelRequest struct {
	ConfirmationNumber string `json:"ConfirmationNumber"`
}

// CancelResponse is the vendor Cancel result.
type CancelResponse struct {
	Status             Status      `json:"Status"`
	ConfirmationNumber string      `json:"ConfirmationNumber,omitempty"`
	RefundAmount       json.Number `json:"RefundAmount,omitempty"`
	CancellationCharge json.Number `json:"CancellationCharge,omitempty"`
}

// Country is one entry of the static country list.
type Country struct {
	Code string `json:"Code"`
	Name string `json:"Name"`
}

// CountryListResponse wraps the static country list.
type CountryListResponse struct {
	Status      Status    `json:"Status"`
	CountryList []Country `json:"CountryList,omitempty"`
}

// CityListRequest asks for the cities of one country.
type CityListRequest struct {
	CountryCode string `json:"CountryCode"`
}

// City is one entry of a country's city list.
type City struct {
	Code string `json:"Code"`
	Name string `json:"Name"`
}

// CityListResponse wraps a country's city list.
type CityListResponse struct {
	Status   Status `json:"Status"`
	CityList []City `json:"CityList,omitempty"`
}

// HotelCodeListRequest asks for the hotel codes of one city.
type HotelCodeListRequest struct {
	CityCode           string `json:"CityCode"`
	IsDetailedResponse bool   `json:"IsDetailedResponse"`
}

// HotelCodeListResponse wraps the hotel-code list.
type HotelCodeListResponse struct {
	Status Status        `json:"Status"`
	Hotels []HotelResult `json:"Hotels,omitempty"`
}

// BookingDetailRequest looks up one booking by the operator's reference.
type BookingDetailRequest struct {
	BookingReferenceId string `json:"BookingReferenceId"`
}

// BookingDetail is the vendor's record of a booking.
type BookingDetail struct {
	ConfirmationNo     string      `json:"ConfirmationNo,omitempty"`
	BookingReferenceId string      `json:"BookingReferenceId,omitempty"`
	BookingStatus      string      `json:"BookingStatus,omitempty"`
	HotelName          string      `json:"HotelName,omitempty"`
	CheckIn            string      `json:"CheckIn,omitempty"`
	CheckOut           string      `json:"CheckOut,omitempty"`
	TotalFare          json.Number `json:"TotalFare,omitempty"`
	Currency           string      `json:"Currency,omitempty"`
}

// BookingDetailResponse wraps a booking lookup.
type BookingDetailResponse struct {
	Status        Status         `json:"Status"`
	BookingDetail *BookingDetail `json:"BookingDetail,omitempty"`
}

// BookingDetailsByDateRequest lists bookings created inside a date range.
type BookingDetailsByDateRequest struct {
	FromDate string `json:"FromDate"`
	ToDate   string `json:"ToDate"`
}

// BookingDetailsByDateResponse wraps a ranged booking lookup.
type BookingDetailsByDateResponse struct {
	Status         Status          `json:"Status"`
	BookingDetails []BookingDetail `json:"BookingDetails,omitempty"`
}
