package notifications

import (
	"context"

	"hotelrbs/internal/bookings"
)

// BookingServiceAdapter implements the bookings.NotificationService interface
// and adapts confirmations to the email notification pipeline
type BookingServiceAdapter struct {
	service NotificationService
}

// NewBookingServiceAdapter creates a new adapter for booking notifications
func NewBookingServiceAdapter(service NotificationService) *BookingServiceAdapter {
	return &BookingServiceAdapter{
		service: service,
	}
}

// PublishBookingConfirmed implements the bookings.NotificationService interface
func (b *BookingServiceAdapter) PublishBookingConfirmed(ctx context.Context, booking *bookings.Booking, recipientEmail, recipientName string) error {
	templateData := map[string]interface{}{
		"hotel_name":          booking.HotelName,
		"confirmation_number": booking.ConfirmationNumber,
		"check_in":            booking.CheckIn,
		"check_out":           booking.CheckOut,
		"currency":            booking.Currency,
		"total_fare":          booking.TotalFare,
		"payment_status":      booking.PaymentStatus,
	}

	return b.service.SendBookingNotification(ctx, booking.UserID, recipientEmail, recipientName,
		booking.ID, booking.BookingReferenceID, NotificationTypeBookingConfirmed, templateData)
}
