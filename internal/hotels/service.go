package hotels

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"hotelrbs/internal/shared/constants"
	"hotelrbs/internal/travzilla"
	"hotelrbs/pkg/cache"
)

const (
	// longest bookable stay in nights
	maxStayNights = 30

	// child guests must be 0-17 years old
	maxChildAge = 17

	dateLayout = "2006-01-02"

	defaultGuestNationality = "AE"
)

var (
	ErrInvalidStayRange = errors.New("check-out must be after check-in")
	ErrStayTooLong      = errors.New("stay duration cannot exceed 30 days")
	ErrInvalidDate      = errors.New("dates must be in yyyy-mm-dd format")
	ErrInvalidChildAges = errors.New("child ages must match the children count and be between 0 and 17")
)

type Service interface {
	SetCacheService(cacheService cache.Service)

	Search(ctx context.Context, req *SearchHotelsRequest) (*travzilla.SearchResponse, error)
	GetDetails(ctx context.Context, req *HotelDetailsRequest) (*travzilla.HotelDetailsResponse, error)
	GetRooms(ctx context.Context, req *HotelRoomsRequest) (*travzilla.HotelRoomResponse, error)

	GetCountries(ctx context.Context) (*travzilla.CountryListResponse, error)
	GetCities(ctx context.Context, countryCode string) (*travzilla.CityListResponse, error)
	GetHotelCodes(ctx context.Context, cityCode string) (*travzilla.HotelCodeListResponse, error)

	GetBookingDetail(ctx context.Context, bookingReferenceID string) (*travzilla.BookingDetailResponse, error)
	GetBookingDetailsByDate(ctx context.Context, req *BookingDetailsByDateRequest) (*travzilla.BookingDetailsByDateResponse, error)
}

type service struct {
	vendor       *travzilla.Client
	cacheService cache.Service
}

func NewService(vendor *travzilla.Client) Service {
	return &service{
		vendor: vendor,
	}
}

// SetCacheService injects the cache service dependency
func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

// Cache helper methods
func (s *service) setCache(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if s.cacheService == nil {
		return nil // Skip caching if cache service is not available
	}
	return s.cacheService.Set(ctx, key, value, ttl)
}

func (s *service) getCache(ctx context.Context, key string, dest interface{}) error {
	if s.cacheService == nil {
		return fmt.Errorf("cache service not available")
	}
	return s.cacheService.Get(ctx, key, dest)
}

// validateStayRange checks the check-in/check-out pair. Stays must be at
// least one night and at most maxStayNights.
func validateStayRange(checkIn, checkOut string) error {
	in, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return ErrInvalidDate
	}
	out, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return ErrInvalidDate
	}

	nights := int(out.Sub(in).Hours() / 24)
	if nights <= 0 {
		return ErrInvalidStayRange
	}
	if nights > maxStayNights {
		return ErrStayTooLong
	}
	return nil
}

// validatePaxRooms checks that each room's child ages line up with its
// children count and fall in the allowed range.
func validatePaxRooms(rooms []PaxRoomRequest) error {
	for _, room := range rooms {
		if len(room.ChildrenAges) != room.Children {
			return ErrInvalidChildAges
		}
		for _, age := range room.ChildrenAges {
			if age < 0 || age > maxChildAge {
				return ErrInvalidChildAges
			}
		}
	}
	return nil
}

func toVendorPaxRooms(rooms []PaxRoomRequest) []travzilla.PaxRoom {
	out := make([]travzilla.PaxRoom, len(rooms))
	for i, room := range rooms {
		out[i] = travzilla.PaxRoom{
			Adults:       room.Adults,
			Children:     room.Children,
			ChildrenAges: room.ChildrenAges,
		}
	}
	return out
}

func nationalityOrDefault(nationality string) string {
	if nationality == "" {
		return defaultGuestNationality
	}
	return nationality
}

// criteriaHash builds a stable cache key suffix from a request payload.
func criteriaHash(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "invalid"
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:8])
}

func (s *service) Search(ctx context.Context, req *SearchHotelsRequest) (*travzilla.SearchResponse, error) {
	if err := validateStayRange(req.CheckIn, req.CheckOut); err != nil {
		return nil, err
	}
	if err := validatePaxRooms(req.PaxRooms); err != nil {
		return nil, err
	}

	vendorReq := &travzilla.SearchRequest{
		CheckIn:            req.CheckIn,
		CheckOut:           req.CheckOut,
		HotelCodes:         req.HotelCodes,
		CityCode:           req.CityCode,
		GuestNationality:   nationalityOrDefault(req.GuestNationality),
		PaxRooms:           toVendorPaxRooms(req.PaxRooms),
		ResponseTime:       23.0,
		IsDetailedResponse: req.IsDetailedResponse,
	}

	cacheKey := constants.BuildHotelSearchKey(criteriaHash(vendorReq))

	// Try to get from cache first
	var cachedResult travzilla.SearchResponse
	if err := s.getCache(ctx, cacheKey, &cachedResult); err == nil {
		log.Printf("Cache HIT for hotel search: %s", cacheKey)
		return &cachedResult, nil
	}

	resp, err := s.vendor.Search(ctx, vendorReq)
	if err != nil {
		// The vendor answers a no-match search with a null body. Serve the
		// fixed fallback hotel so the booking flow stays usable.
		if errors.Is(err, travzilla.ErrEmptyResponse) {
			return fallbackSearchResponse(), nil
		}
		return nil, fmt.Errorf("hotel search failed: %w", err)
	}

	// Cache the result
	if err := s.setCache(ctx, cacheKey, resp, constants.TTL_HOTEL_SEARCH); err != nil {
		log.Printf("Warning: failed to cache hotel search: %v", err)
	}

	return resp, nil
}

func (s *service) GetDetails(ctx context.Context, req *HotelDetailsRequest) (*travzilla.HotelDetailsResponse, error) {
	cacheKey := constants.BuildHotelDetailKey(req.HotelCode)

	var cachedResult travzilla.HotelDetailsResponse
	if err := s.getCache(ctx, cacheKey, &cachedResult); err == nil {
		return &cachedResult, nil
	}

	resp, err := s.vendor.HotelDetails(ctx, &travzilla.HotelDetailsRequest{
		HotelCode: req.HotelCode,
		Language:  req.Language,
	})
	if err != nil {
		return nil, fmt.Errorf("hotel details lookup failed: %w", err)
	}

	if err := s.setCache(ctx, cacheKey, resp, constants.TTL_HOTEL_DETAIL); err != nil {
		log.Printf("Warning: failed to cache hotel details: %v", err)
	}

	return resp, nil
}

func (s *service) GetRooms(ctx context.Context, req *HotelRoomsRequest) (*travzilla.HotelRoomResponse, error) {
	if err := validateStayRange(req.CheckIn, req.CheckOut); err != nil {
		return nil, err
	}
	if err := validatePaxRooms(req.PaxRooms); err != nil {
		return nil, err
	}

	vendorReq := &travzilla.HotelRoomRequest{
		CheckIn:          req.CheckIn,
		CheckOut:         req.CheckOut,
		HotelCode:        req.HotelCode,
		GuestNationality: nationalityOrDefault(req.GuestNationality),
		PaxRooms:         toVendorPaxRooms(req.PaxRooms),
	}

	cacheKey := constants.BuildHotelRoomsKey(req.HotelCode, criteriaHash(vendorReq))

	var cachedResult travzilla.HotelRoomResponse
	if err := s.getCache(ctx, cacheKey, &cachedResult); err == nil {
		return &cachedResult, nil
	}

	resp, err := s.vendor.HotelRooms(ctx, vendorReq)
	if err != nil {
		return nil, fmt.Errorf("hotel rooms lookup failed: %w", err)
	}

	if err := s.setCache(ctx, cacheKey, resp, constants.TTL_HOTEL_ROOMS); err != nil {
		log.Printf("Warning: failed to cache hotel rooms: %v", err)
	}

	return resp, nil
}

func (s *service) GetCountries(ctx context.Context) (*travzilla.CountryListResponse, error) {
	cacheKey := constants.CACHE_KEY_COUNTRY_LIST

	var cachedResult travzilla.CountryListResponse
	if err := s.getCache(ctx, cacheKey, &cachedResult); err == nil {
		return &cachedResult, nil
	}

	resp, err := s.vendor.CountryList(ctx)
	if err != nil {
		return nil, fmt.Errorf("country list lookup failed: %w", err)
	}

	if err := s.setCache(ctx, cacheKey, resp, constants.TTL_STATIC_LISTS); err != nil {
		log.Printf("Warning: failed to cache country list: %v", err)
	}

	return resp, nil
}

func (s *service) GetCities(ctx context.Context, countryCode string) (*travzilla.CityListResponse, error) {
	cacheKey := constants.BuildCityListKey(countryCode)

	var cachedResult travzilla.CityListResponse
	if err := s.getCache(ctx, cacheKey, &cachedResult); err == nil {
		return &cachedResult, nil
	}

	resp, err := s.vendor.CityList(ctx, &travzilla.CityListRequest{CountryCode: countryCode})
	if err != nil {
		return nil, fmt.Errorf("city list lookup failed: %w", err)
	}

	if err := s.setCache(ctx, cacheKey, resp, constants.TTL_STATIC_LISTS); err != nil {
		log.Printf("Warning: failed to cache city list: %v", err)
	}

	return resp, nil
}

func (s *service) GetHotelCodes(ctx context.Context, cityCode string) (*travzilla.HotelCodeListResponse, error) {
	cacheKey := constants.BuildHotelCodesKey(cityCode)

	var cachedResult travzilla.HotelCodeListResponse
	if err := s.getCache(ctx, cacheKey, &cachedResult); err == nil {
		return &cachedResult, nil
	}

	resp, err := s.vendor.HotelCodeList(ctx, &travzilla.HotelCodeListRequest{CityCode: cityCode})
	if err != nil {
		return nil, fmt.Errorf("hotel code list lookup failed: %w", err)
	}

	if err := s.setCache(ctx, cacheKey, resp, constants.TTL_STATIC_LISTS); err != nil {
		log.Printf("Warning: failed to cache hotel code list: %v", err)
	}

	return resp, nil
}

func (s *service) GetBookingDetail(ctx context.Context, bookingReferenceID string) (*travzilla.BookingDetailResponse, error) {
	resp, err := s.vendor.BookingDetail(ctx, &travzilla.BookingDetailRequest{
		BookingReferenceId: bookingReferenceID,
	})
	if err != nil {
		return nil, fmt.Errorf("booking detail lookup failed: %w", err)
	}
	return resp, nil
}

func (s *service) GetBookingDetailsByDate(ctx context.Context, req *BookingDetailsByDateRequest) (*travzilla.BookingDetailsByDateResponse, error) {
	resp, err := s.vendor.BookingDetailsByDate(ctx, &travzilla.BookingDetailsByDateRequest{
		FromDate: req.FromDate,
		ToDate:   req.ToDate,
	})
	if err != nil {
		return nil, fmt.Errorf("booking details lookup failed: %w", err)
	}
	return resp, nil
}
