package notifications

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationBuilder(t *testing.T) {
	userID := uuid.New()
	bookingID := uuid.New()

	notification := NewNotificationBuilder().
		WithType(NotificationTypeBookingConfirmed).
		WithRecipient(userID, "guest@example.com", "Ayesha Khan").
		WithSubject("Booking Confirmed").
		WithTemplateData(map[string]interface{}{"hotel_name": "Rove Downtown"}).
		WithBookingContext(bookingID, "ref-1").
		Build()

	assert.NotEqual(t, uuid.Nil, notification.ID)
	assert.Equal(t, NotificationTypeBookingConfirmed, notification.Type)
	assert.Equal(t, NotificationPriorityHigh, notification.Priority)
	assert.Equal(t, userID, notification.RecipientID)
	assert.Equal(t, "guest@example.com", notification.RecipientEmail)
	require.NotNil(t, notification.BookingID)
	assert.Equal(t, bookingID, *notification.BookingID)
	assert.Equal(t, "ref-1", notification.BookingReferenceID)
	assert.Equal(t, NotificationStatusPending, notification.Status)
	assert.Equal(t, 3, notification.MaxRetries)
}

func TestDefaultPriorities(t *testing.T) {
	assert.Equal(t, NotificationPriorityHigh, GetDefaultPriority(NotificationTypeBookingConfirmed))
	assert.Equal(t, NotificationPriorityMedium, GetDefaultPriority(NotificationTypeBookingCancelled))
}

func TestPartitionKeyIsRecipient(t *testing.T) {
	userID := uuid.New()
	notification := NewNotificationBuilder().
		WithType(NotificationTypeBookingConfirmed).
		WithRecipient(userID, "guest@example.com", "Ayesha Khan").
		Build()

	// Per-recipient ordering on the topic
	assert.Equal(t, userID.String(), notification.GetPartitionKey())
}

func TestRetryLifecycle(t *testing.T) {
	notification := NewNotificationBuilder().
		WithType(NotificationTypeBookingConfirmed).
		WithMaxRetries(2).
		Build()

	assert.False(t, notification.ShouldRetry()) // not failed yet

	notification.MarkFailed(errors.New("smtp timeout"))
	assert.Equal(t, NotificationStatusFailed, notification.Status)
	require.NotNil(t, notification.LastError)
	assert.True(t, notification.ShouldRetry())

	notification.IncrementRetry()
	assert.Equal(t, NotificationStatusRetrying, notification.Status)

	notification.MarkFailed(errors.New("smtp timeout"))
	notification.IncrementRetry()
	assert.Equal(t, NotificationStatusExpired, notification.Status)
	assert.False(t, notification.ShouldRetry())
}

func TestExpiredNotificationNeverRetries(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	notification := NewNotificationBuilder().
		WithType(NotificationTypeBookingConfirmed).
		WithExpiration(&past).
		Build()
	notification.MarkFailed(errors.New("smtp timeout"))

	assert.True(t, notification.IsExpired())
	assert.False(t, notification.ShouldRetry())
}

func TestMarkSent(t *testing.T) {
	notification := NewNotificationBuilder().WithType(NotificationTypeBookingConfirmed).Build()
	notification.MarkSent()

	assert.Equal(t, NotificationStatusSent, notification.Status)
	assert.NotNil(t, notification.SentAt)
}

func TestGenerateContentBookingConfirmed(t *testing.T) {
	svc := &SMTPEmailService{config: &SMTPConfig{FromEmail: "noreply@hotelrbs.com", FromName: "HotelRBS"}}

	notification := NewNotificationBuilder().
		WithType(NotificationTypeBookingConfirmed).
		WithRecipient(uuid.New(), "guest@example.com", "Ayesha Khan").
		WithSubject("Booking Confirmed").
		WithTemplateData(map[string]interface{}{
			"hotel_name":          "Rove Downtown",
			"confirmation_number": "TRZ-88210045",
			"check_in":            "2025-10-01",
			"check_out":           "2025-10-04",
			"currency":            "AED",
			"total_fare":          960.00,
			"payment_status":      "Paid",
		}).
		WithBookingContext(uuid.New(), "ref-1").
		Build()

	htmlBody, textBody := svc.generateContent(notification)

	assert.Contains(t, htmlBody, "Rove Downtown")
	assert.Contains(t, htmlBody, "TRZ-88210045")
	assert.Contains(t, htmlBody, "AED 960.00")
	assert.NotContains(t, htmlBody, "Payment is due at the hotel")
	assert.Contains(t, textBody, "Ayesha Khan")
	assert.Contains(t, textBody, "ref-1")
}

func TestGenerateContentPayLaterMentionsHotelPayment(t *testing.T) {
	svc := &SMTPEmailService{config: &SMTPConfig{FromEmail: "noreply@hotelrbs.com"}}

	notification := NewNotificationBuilder().
		WithType(NotificationTypeBookingConfirmed).
		WithRecipient(uuid.New(), "guest@example.com", "Ayesha Khan").
		WithTemplateData(map[string]interface{}{
			"hotel_name":     "Rove Downtown",
			"currency":       "AED",
			"total_fare":     960.00,
			"payment_status": "Pending",
		}).
		Build()

	htmlBody, _ := svc.generateContent(notification)
	assert.Contains(t, htmlBody, "Payment is due at the hotel")
}

func TestGenerateContentBookingCancelled(t *testing.T) {
	svc := &SMTPEmailService{config: &SMTPConfig{FromEmail: "noreply@hotelrbs.com"}}

	notification := NewNotificationBuilder().
		WithType(NotificationTypeBookingCancelled).
		WithRecipient(uuid.New(), "guest@example.com", "Ayesha Khan").
		WithTemplateData(map[string]interface{}{
			"hotel_name":          "Rove Downtown",
			"confirmation_number": "TRZ-88210045",
		}).
		Build()

	htmlBody, textBody := svc.generateContent(notification)
	assert.Contains(t, htmlBody, "has been cancelled")
	assert.Contains(t, textBody, "TRZ-88210045")
}

func TestValidateSMTPConfig(t *testing.T) {
	valid := &SMTPConfig{
		Host:      "smtp.gmail.com",
		Port:      587,
		Username:  "noreply@hotelrbs.com",
		Password:  "secret",
		FromEmail: "noreply@hotelrbs.com",
	}
	_, err := NewSMTPEmailService(valid)
	assert.NoError(t, err)

	missingHost := *valid
	missingHost.Host = ""
	_, err = NewSMTPEmailService(&missingHost)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "host"))

	badPort := *valid
	badPort.Port = 0
	_, err = NewSMTPEmailService(&badPort)
	assert.Error(t, err)

	_, err = NewSMTPEmailService(nil)
	assert.Error(t, err)
}
