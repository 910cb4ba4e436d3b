package wishlist

import (
	"time"

	"github.com/google/uuid"
)

// Item is one saved hotel. The snapshot columns let the list render without
// a vendor round trip.
type Item struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	HotelCode string    `gorm:"not null" json:"hotel_code"`

	HotelName  string  `json:"hotel_name"`
	CityName   string  `json:"city_name,omitempty"`
	StarRating int     `json:"star_rating,omitempty"`
	Price      float64 `json:"price,omitempty"`
	Currency   string  `gorm:"type:varchar(3)" json:"currency,omitempty"`
	FrontImage string  `json:"front_image,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName sets the table name for Item
func (Item) TableName() string {
	return "wishlist_items"
}

// AddItemRequest saves a hotel to the customer's wishlist.
type AddItemRequest struct {
	HotelCode  string  `json:"hotel_code" validate:"required"`
	HotelName  string  `json:"hotel_name" validate:"required"`
	CityName   string  `json:"city_name,omitempty"`
	StarRating int     `json:"star_rating,omitempty" validate:"omitempty,min=0,max=5"`
	Price      float64 `json:"price,omitempty"`
	Currency   string  `json:"currency,omitempty" validate:"omitempty,len=3"`
	FrontImage string  `json:"front_image,omitempty"`
}

// ListResponse is the customer's saved hotels.
type ListResponse struct {
	Items []Item `json:"items"`
	Total int    `json:"total"`
}
