package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds critical database constraints for concurrency control
func MigrateConstraints(db *gorm.DB) error {
	// One wishlist row per user and hotel
	err := db.Exec(`
		ALTER TABLE wishlist_items
		ADD CONSTRAINT IF NOT EXISTS unique_hotel_per_user
		UNIQUE (user_id, hotel_code);
	`).Error
	if err != nil {
		return err
	}

	// Session lookups during the booking flow hit this constantly
	err = db.Exec(`
		CREATE INDEX CONCURRENTLY IF NOT EXISTS idx_booking_sessions_reference
		ON booking_sessions (booking_reference_id);
	`).Error
	if err != nil {
		return err
	}

	// Booking history is always scoped to the owning user
	err = db.Exec(`
		CREATE INDEX CONCURRENTLY IF NOT EXISTS idx_bookings_user_id
		ON bookings (user_id);
	`).Error
	if err != nil {
		return err
	}

	return nil
}
