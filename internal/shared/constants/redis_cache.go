package constants

import (
	"fmt"
	"time"
)

// Redis Cache Configuration
// This file centralizes all Redis cache keys and TTL values for the HotelRBS application
// Pattern: hotelrbs:{module}:{operation}:{identifier}:{params?}

// ================== CACHE TTL DURATIONS ==================

// Static Data (Long TTL: rarely changes)
const (
	TTL_STATIC_LONG   = 24 * time.Hour // 24 hours - for country/city/hotel-code lists
	TTL_STATIC_MEDIUM = 12 * time.Hour // 12 hours - for hotel descriptive content
	TTL_STATIC_SHORT  = 6 * time.Hour  // 6 hours - for user profiles
)

// Semi-Static Data (Medium TTL: changes occasionally)
const (
	TTL_SEMI_STATIC_MEDIUM = 2 * time.Hour    // 2 hours - for hotel details
	TTL_SEMI_STATIC_QUICK  = 15 * time.Minute // 15 minutes - for room option lists
)

// Dynamic Data (Short TTL: changes frequently)
const (
	TTL_DYNAMIC_MEDIUM = 10 * time.Minute // 10 minutes - for booking history
	TTL_DYNAMIC_SHORT  = 5 * time.Minute  // 5 minutes - for search results
)

// ================== REDIS KEY PREFIXES ==================

const (
	CACHE_PREFIX = "hotelrbs"
)

// ================== HOTELS MODULE ==================

// Hotel Cache Keys
const (
	// Availability searches (keyed by a hash of the search criteria)
	CACHE_KEY_HOTEL_SEARCH = CACHE_PREFIX + ":hotels:search:" // + criteria-hash

	// Individual hotel content
	CACHE_KEY_HOTEL_DETAIL = CACHE_PREFIX + ":hotels:detail:code:" // + hotel-code
	CACHE_KEY_HOTEL_ROOMS  = CACHE_PREFIX + ":hotels:rooms:code:"  // + hotel-code:criteria-hash

	// Static lookup lists
	CACHE_KEY_COUNTRY_LIST = CACHE_PREFIX + ":hotels:countries:all"
	CACHE_KEY_CITY_LIST    = CACHE_PREFIX + ":hotels:cities:country:" // + country-code
	CACHE_KEY_HOTEL_CODES  = CACHE_PREFIX + ":hotels:codes:city:"     // + city-code
)

// Hotel Cache TTLs
const (
	TTL_HOTEL_SEARCH = TTL_DYNAMIC_SHORT       // 5 minutes
	TTL_HOTEL_DETAIL = TTL_SEMI_STATIC_MEDIUM  // 2 hours
	TTL_HOTEL_ROOMS  = TTL_SEMI_STATIC_QUICK   // 15 minutes
	TTL_STATIC_LISTS = TTL_STATIC_LONG         // 24 hours
)

// ================== RESERVATIONS MODULE ==================

// Booking session keys. The session row lives in Postgres; Redis carries a
// hot copy so the checkout flow never touches the database on reads.
const (
	CACHE_KEY_SESSION = CACHE_PREFIX + ":reservations:session:ref:" // + booking-reference-id
)

// ================== BOOKINGS MODULE ==================

// Booking Cache Keys
const (
	CACHE_KEY_USER_BOOKINGS  = CACHE_PREFIX + ":bookings:user:uuid:"   // + user-id:page:X
	CACHE_KEY_BOOKING_DETAIL = CACHE_PREFIX + ":bookings:detail:ref:"  // + booking-reference-id

	// Confirmation idempotency lock. SETNX on this key guards the vendor
	// book call so a reference is confirmed at most once.
	LOCK_KEY_BOOKING_CONFIRM = CACHE_PREFIX + ":bookings:confirm:lock:ref:" // + booking-reference-id
)

// Booking Cache TTLs
const (
	TTL_USER_BOOKINGS  = TTL_DYNAMIC_MEDIUM // 10 minutes
	TTL_BOOKING_DETAIL = TTL_DYNAMIC_MEDIUM // 10 minutes
)

// ================== AUTH MODULE ==================

// Auth Cache Keys
const (
	CACHE_KEY_USER_PROFILE = CACHE_PREFIX + ":auth:user:profile:uuid:" // + user-id
)

// Auth Cache TTLs
const (
	TTL_USER_PROFILE = TTL_STATIC_SHORT // 6 hours
)

// ================== WISHLIST MODULE ==================

// Wishlist Cache Keys
const (
	CACHE_KEY_USER_WISHLIST = CACHE_PREFIX + ":wishlist:user:uuid:" // + user-id
)

// Wishlist Cache TTLs
const (
	TTL_USER_WISHLIST = TTL_DYNAMIC_MEDIUM // 10 minutes
)

// ================== CACHE INVALIDATION PATTERNS ==================

// Patterns for cache invalidation (used with Redis KEYS command or manual invalidation)
const (
	// Hotel content invalidation patterns
	PATTERN_INVALIDATE_HOTELS_ALL = CACHE_PREFIX + ":hotels:*"

	// User-related invalidation patterns
	PATTERN_INVALIDATE_USER_ALL = CACHE_PREFIX + ":*:user:*" // + user-id + *
)

// ================== HELPER FUNCTIONS ==================

func BuildHotelSearchKey(criteriaHash string) string {
	return CACHE_KEY_HOTEL_SEARCH + criteriaHash
}

func BuildHotelDetailKey(hotelCode string) string {
	return CACHE_KEY_HOTEL_DETAIL + hotelCode
}

func BuildHotelRoomsKey(hotelCode, criteriaHash string) string {
	return CACHE_KEY_HOTEL_ROOMS + hotelCode + ":" + criteriaHash
}

func BuildCityListKey(countryCode string) string {
	return CACHE_KEY_CITY_LIST + countryCode
}

func BuildHotelCodesKey(cityCode string) string {
	return CACHE_KEY_HOTEL_CODES + cityCode
}

func BuildSessionKey(bookingReferenceID string) string {
	return CACHE_KEY_SESSION + bookingReferenceID
}

func BuildConfirmLockKey(bookingReferenceID string) string {
	return LOCK_KEY_BOOKING_CONFIRM + bookingReferenceID
}

func BuildUserBookingsKey(userID string, page int) string {
	return CACHE_KEY_USER_BOOKINGS + userID + ":page:" + fmt.Sprintf("%d", page)
}

func BuildBookingDetailKey(bookingReferenceID string) string {
	return CACHE_KEY_BOOKING_DETAIL + bookingReferenceID
}

func BuildUserWishlistKey(userID string) string {
	return CACHE_KEY_USER_WISHLIST + userID
}

func BuildUserProfileKey(userID string) string {
	return CACHE_KEY_USER_PROFILE + userID
}
