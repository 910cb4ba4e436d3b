package database

import (
	"hotelrbs/internal/bookings"
	"hotelrbs/internal/reservations"
	"hotelrbs/internal/users"
	"hotelrbs/internal/wishlist"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&reservations.BookingSession{},
		&bookings.Booking{},
		&wishlist.Item{},
	)
}
