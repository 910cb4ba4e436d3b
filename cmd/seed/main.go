package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"hotelrbs/internal/bookings"
	"hotelrbs/internal/reservations"
	"hotelrbs/internal/shared/config"
	"hotelrbs/internal/shared/database"
	"hotelrbs/internal/users"
	"hotelrbs/internal/wishlist"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting HotelRBS Database Seeder...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	// Clean database
	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	// Seed data
	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in the correct order (respecting foreign key constraints)
func (s *Seeder) CleanDatabase() error {
	// Delete in reverse dependency order
	tables := []string{
		"wishlist_items",
		"bookings",
		"booking_sessions",
		"users",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return tx.Commit().Error
}

// SeedAll seeds all required data
func (s *Seeder) SeedAll() error {
	ctx := context.Background()

	// Seed users first (no dependencies)
	userIDs, err := s.SeedUsers()
	if err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	// Seed wishlist items for the demo user
	if err := s.SeedWishlist(userIDs["user1"]); err != nil {
		return fmt.Errorf("failed to seed wishlist: %w", err)
	}

	// Seed a confirmed booking plus a completed session for the demo user
	if err := s.SeedBookings(userIDs["user1"]); err != nil {
		return fmt.Errorf("failed to seed bookings: %w", err)
	}

	// Clear Redis cache to ensure fresh state
	if err := s.db.Redis.FlushDB(ctx).Err(); err != nil {
		log.Printf("Warning: Failed to clear Redis cache: %v", err)
	}

	return nil
}

// SeedUsers creates 3 users: 1 admin and 2 regular users
func (s *Seeder) SeedUsers() (map[string]uuid.UUID, error) {
	fmt.Println("  👤 Seeding users...")

	userIDs := make(map[string]uuid.UUID)

	// Hash password for all users (using "qwerty")
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("qwerty"), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usersData := []struct {
		key         string
		firstName   string
		lastName    string
		email       string
		phone       string
		nationality string
		city        string
		country     string
		role        users.Role
	}{
		{"admin", "Admin", "User", "admin@hotelrbs.com", "971501234567", "AE", "Dubai", "AE", users.RoleAdmin},
		{"user1", "Ayesha", "Khan", "ayesha.khan@gmail.com", "971509876543", "AE", "Dubai", "AE", users.RoleUser},
		{"user2", "Rohan", "Mehta", "rohan.mehta@gmail.com", "919812345678", "IN", "Mumbai", "IN", users.RoleUser},
	}

	for _, userData := range usersData {
		user := users.User{
			ID:          uuid.New(),
			FirstName:   userData.firstName,
			LastName:    userData.lastName,
			Email:       userData.email,
			Password:    string(hashedPassword),
			Role:        userData.role,
			Phone:       userData.phone,
			Nationality: userData.nationality,
			City:        userData.city,
			Country:     userData.country,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&user).Error; err != nil {
			return nil, fmt.Errorf("failed to create user %s: %w", userData.email, err)
		}

		userIDs[userData.key] = user.ID
		fmt.Printf("    ✅ Created user: %s (%s)\n", user.Email, user.Role)
	}

	return userIDs, nil
}

// SeedWishlist saves a few hotels to the demo user's wishlist
func (s *Seeder) SeedWishlist(userID uuid.UUID) error {
	fmt.Println("  ❤️ Seeding wishlist items...")

	itemsData := []struct {
		hotelCode  string
		hotelName  string
		cityName   string
		starRating int
		price      float64
		frontImage string
	}{
		{"1402689", "Atlantis The Palm", "Dubai", 5, 1850.00, "https://images.example.com/hotels/1402689/front.jpg"},
		{"1377073", "Rove Downtown", "Dubai", 3, 320.00, "https://images.example.com/hotels/1377073/front.jpg"},
		{"1421988", "Address Beach Resort", "Dubai", 5, 1240.00, "https://images.example.com/hotels/1421988/front.jpg"},
	}

	for _, itemData := range itemsData {
		item := wishlist.Item{
			ID:         uuid.New(),
			UserID:     userID,
			HotelCode:  itemData.hotelCode,
			HotelName:  itemData.hotelName,
			CityName:   itemData.cityName,
			StarRating: itemData.starRating,
			Price:      itemData.price,
			Currency:   "AED",
			FrontImage: itemData.frontImage,
			CreatedAt:  time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&item).Error; err != nil {
			return fmt.Errorf("failed to create wishlist item %s: %w", item.HotelCode, err)
		}

		fmt.Printf("    ✅ Saved hotel: %s (%s)\n", item.HotelName, item.HotelCode)
	}

	return nil
}

// SeedBookings creates one confirmed booking with its completed session
func (s *Seeder) SeedBookings(userID uuid.UUID) error {
	fmt.Println("  🏨 Seeding bookings...")

	age := 8
	guestDetails := reservations.GuestDetails{
		BookingReferenceID: "SEED-REF-0001",
		Rooms: []reservations.RoomGuests{
			{
				Guests: []reservations.GuestName{
					{Title: "Mr", FirstName: "Ayesha", LastName: "Khan", Type: "Adult"},
					{Title: "Ms", FirstName: "Zara", LastName: "Khan", Type: "Child", Age: &age},
				},
			},
		},
		Email:       "ayesha.khan@gmail.com",
		Phone:       "971509876543",
		City:        "Dubai",
		Country:     "AE",
		Nationality: "AE",
		CapturedAt:  time.Now().Add(-48 * time.Hour),
	}

	snapshot, err := json.Marshal(guestDetails)
	if err != nil {
		return fmt.Errorf("failed to marshal guest snapshot: %w", err)
	}

	checkIn := time.Now().AddDate(0, 0, 14).Format("2006-01-02")
	checkOut := time.Now().AddDate(0, 0, 17).Format("2006-01-02")

	session := reservations.BookingSession{
		ID:                 uuid.New(),
		UserID:             userID,
		BookingReferenceID: "SEED-REF-0001",
		Status:             reservations.StatusConfirmed,
		HotelCode:          "1377073",
		HotelName:          "Rove Downtown",
		BookingCode:        "RD-STD-DBL-BB",
		CheckIn:            checkIn,
		CheckOut:           checkOut,
		Currency:           "AED",
		TotalFare:          960.00,
		GuestNationality:   "AE",
		PaymentStatus:      "Authorised",
		CreatedAt:          time.Now().Add(-48 * time.Hour),
		UpdatedAt:          time.Now().Add(-47 * time.Hour),
	}

	if err := s.db.PostgreSQL.Create(&session).Error; err != nil {
		return fmt.Errorf("failed to create booking session: %w", err)
	}

	booking := bookings.Booking{
		ID:                 uuid.New(),
		UserID:             userID,
		BookingReferenceID: "SEED-REF-0001",
		ConfirmationNumber: "TRZ-88210045",
		VendorBookingID:    "1900771",
		ClientReferenceID:  "20250830120000#417",
		Status:             bookings.StatusConfirmed,
		PaymentStatus:      bookings.PaymentPaid,
		HotelCode:          "1377073",
		HotelName:          "Rove Downtown",
		CheckIn:            checkIn,
		CheckOut:           checkOut,
		Currency:           "AED",
		TotalFare:          960.00,
		GuestNationality:   "AE",
		GuestSnapshot:      string(snapshot),
		CreatedAt:          time.Now().Add(-47 * time.Hour),
		UpdatedAt:          time.Now().Add(-47 * time.Hour),
	}

	if err := s.db.PostgreSQL.Create(&booking).Error; err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	fmt.Printf("    ✅ Created booking: %s (%s)\n", booking.BookingReferenceID, booking.ConfirmationNumber)
	return nil
}
