package notifications

import (
	"context"
	"crypto/tls"
	"fmt"
	"log"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"hotelrbs/internal/shared/config"
)

// EmailService interface for sending emails
type EmailService interface {
	SendNotification(ctx context.Context, notification *EmailNotification) error
	SendHTML(ctx context.Context, to, subject, htmlBody, textBody string) error
}

// SMTPConfig holds SMTP configuration
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
	UseTLS    bool
	Timeout   time.Duration
}

// NewSMTPConfig builds the SMTP settings from the shared email config.
func NewSMTPConfig(ec config.EmailConfig) *SMTPConfig {
	return &SMTPConfig{
		Host:      ec.SMTPHost,
		Port:      ec.SMTPPort,
		Username:  ec.SMTPUsername,
		Password:  ec.SMTPPassword,
		FromEmail: ec.FromEmail,
		FromName:  "HotelRBS",
		UseTLS:    true,
		Timeout:   30 * time.Second,
	}
}

// SMTPEmailService is a real SMTP implementation of the EmailService interface
type SMTPEmailService struct {
	config *SMTPConfig
}

// NewSMTPEmailService creates a new SMTP email service
func NewSMTPEmailService(config *SMTPConfig) (*SMTPEmailService, error) {
	if err := validateSMTPConfig(config); err != nil {
		return nil, fmt.Errorf("invalid SMTP configuration: %w", err)
	}
	return &SMTPEmailService{config: config}, nil
}

// validateSMTPConfig validates SMTP configuration
func validateSMTPConfig(config *SMTPConfig) error {
	if config == nil {
		return fmt.Errorf("SMTP config is nil")
	}

	if config.Host == "" {
		return fmt.Errorf("SMTP host is required")
	}

	if config.Port <= 0 || config.Port > 65535 {
		return fmt.Errorf("SMTP port must be between 1 and 65535")
	}

	if config.Username == "" {
		return fmt.Errorf("SMTP username is required")
	}

	if config.Password == "" {
		return fmt.Errorf("SMTP password is required")
	}

	if config.FromEmail == "" {
		return fmt.Errorf("From email is required")
	}

	return nil
}

// SendNotification renders and sends a notification via email
func (s *SMTPEmailService) SendNotification(ctx context.Context, notification *EmailNotification) error {
	log.Printf("📧 [SMTP] Sending %s notification to %s (%s)",
		notification.Type,
		notification.RecipientEmail,
		notification.RecipientName,
	)

	htmlBody, textBody := s.generateContent(notification)
	return s.SendHTML(ctx, notification.RecipientEmail, notification.Subject, htmlBody, textBody)
}

// SendHTML sends an HTML email
func (s *SMTPEmailService) SendHTML(ctx context.Context, to, subject, htmlBody, textBody string) error {
	message := s.buildMessage(to, subject, htmlBody, textBody)

	auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	var err error
	if s.config.UseTLS {
		err = s.sendWithSTARTTLS(addr, auth, to, message)
	} else {
		err = smtp.SendMail(addr, auth, s.config.FromEmail, []string{to}, message)
	}

	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	log.Printf("📧 [SMTP] Email sent successfully to %s", to)
	return nil
}

// sendWithSTARTTLS sends email with STARTTLS encryption (recommended for Gmail)
func (s *SMTPEmailService) sendWithSTARTTLS(addr string, auth smtp.Auth, to string, message []byte) error {
	client, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer client.Quit()

	tlsconfig := &tls.Config{
		InsecureSkipVerify: false,
		ServerName:         s.config.Host,
	}

	if err = client.StartTLS(tlsconfig); err != nil {
		return fmt.Errorf("failed to start TLS: %w", err)
	}

	if auth != nil {
		if err = client.Auth(auth); err != nil {
			return fmt.Errorf("failed to authenticate: %w", err)
		}
	}

	if err = client.Mail(s.config.FromEmail); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}

	if err = client.Rcpt(to); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}

	_, err = w.Write(message)
	if err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return w.Close()
}

// buildMessage creates the email message with proper headers
func (s *SMTPEmailService) buildMessage(to, subject, htmlBody, textBody string) []byte {
	headers := make(map[string]string)
	headers["From"] = fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromEmail)
	headers["To"] = to
	headers["Subject"] = subject
	headers["MIME-Version"] = "1.0"
	headers["Date"] = time.Now().Format(time.RFC1123Z)

	boundary := "boundary_" + strconv.FormatInt(time.Now().UnixNano(), 10)
	headers["Content-Type"] = fmt.Sprintf("multipart/alternative; boundary=%s", boundary)

	message := ""
	for k, v := range headers {
		message += fmt.Sprintf("%s: %s\r\n", k, v)
	}
	message += "\r\n"

	if textBody != "" {
		message += fmt.Sprintf("--%s\r\n", boundary)
		message += "Content-Type: text/plain; charset=UTF-8\r\n"
		message += "\r\n"
		message += textBody + "\r\n"
	}

	if htmlBody != "" {
		message += fmt.Sprintf("--%s\r\n", boundary)
		message += "Content-Type: text/html; charset=UTF-8\r\n"
		message += "\r\n"
		message += htmlBody + "\r\n"
	}

	message += fmt.Sprintf("--%s--\r\n", boundary)

	return []byte(message)
}

// generateContent creates email content for the notification types
func (s *SMTPEmailService) generateContent(notification *EmailNotification) (string, string) {
	data := notification.TemplateData

	switch notification.Type {
	case NotificationTypeBookingConfirmed:
		paymentLine := ""
		if data["payment_status"] == "Pending" {
			paymentLine = "<p><strong>Payment is due at the hotel.</strong></p>"
		}

		htmlBody := fmt.Sprintf(`
			<h2>✅ Booking Confirmed</h2>
			<p>Hi %s,</p>
			<p>Your stay at <strong>%s</strong> is confirmed!</p>
			<p>Confirmation Number: <strong>%s</strong></p>
			<p>Booking Reference: %s</p>
			<p>Check-in: %s &nbsp; Check-out: %s</p>
			<p>Total Fare: %s %.2f</p>
			%s
			<p>Best regards,<br>HotelRBS Team</p>
		`,
			notification.RecipientName,
			data["hotel_name"],
			data["confirmation_number"],
			notification.BookingReferenceID,
			data["check_in"],
			data["check_out"],
			data["currency"],
			data["total_fare"],
			paymentLine,
		)

		textBody := fmt.Sprintf(
			"Hi %s,\n\nYour stay at %s is confirmed!\nConfirmation Number: %s\nBooking Reference: %s\nCheck-in: %s  Check-out: %s\nTotal Fare: %s %.2f\n\nBest regards,\nHotelRBS Team",
			notification.RecipientName,
			data["hotel_name"],
			data["confirmation_number"],
			notification.BookingReferenceID,
			data["check_in"],
			data["check_out"],
			data["currency"],
			data["total_fare"],
		)

		return htmlBody, textBody

	case NotificationTypeBookingCancelled:
		htmlBody := fmt.Sprintf(`
			<h2>❌ Booking Cancelled</h2>
			<p>Hi %s,</p>
			<p>Your booking at <strong>%s</strong> has been cancelled.</p>
			<p>Confirmation Number: %s</p>
			<p>Best regards,<br>HotelRBS Team</p>
		`,
			notification.RecipientName,
			data["hotel_name"],
			data["confirmation_number"],
		)

		textBody := fmt.Sprintf(
			"Hi %s,\n\nYour booking at %s has been cancelled.\nConfirmation Number: %s\n\nBest regards,\nHotelRBS Team",
			notification.RecipientName,
			data["hotel_name"],
			data["confirmation_number"],
		)

		return htmlBody, textBody

	default:
		htmlBody := fmt.Sprintf(`
			<h2>%s</h2>
			<p>Hi %s,</p>
			<p>This is a notification from HotelRBS.</p>
			<p>Best regards,<br>HotelRBS Team</p>
		`,
			notification.Subject,
			notification.RecipientName,
		)

		textBody := fmt.Sprintf(
			"Hi %s,\n\nThis is a notification from HotelRBS.\n\nBest regards,\nHotelRBS Team",
			notification.RecipientName,
		)

		return htmlBody, textBody
	}
}

type MockEmailService struct{}

// NewMockEmailService creates a new mock email service
func NewMockEmailService() *MockEmailService {
	return &MockEmailService{}
}

// SendNotification sends a mock notification
func (s *MockEmailService) SendNotification(ctx context.Context, notification *EmailNotification) error {
	log.Printf("📧 [MOCK] Sending %s notification to %s (%s)",
		notification.Type,
		notification.RecipientEmail,
		notification.RecipientName,
	)
	return nil
}

// SendHTML sends a mock HTML email
func (s *MockEmailService) SendHTML(ctx context.Context, to, subject, htmlBody, textBody string) error {
	log.Printf("📧 [MOCK] To: %s, Subject: %s", to, subject)
	log.Printf("📧 [MOCK] HTML Body: %s", strings.TrimSpace(htmlBody))
	return nil
}
