package notifications

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"hotelrbs/internal/shared/config"
)

type NotificationService interface {
	SendNotification(ctx context.Context, notification *EmailNotification) error

	SendBookingNotification(ctx context.Context, userID uuid.UUID, email, name string,
		bookingID uuid.UUID, bookingReferenceID string, notificationType NotificationType,
		templateData map[string]interface{}) error

	Start(ctx context.Context) error
	Stop() error
	HealthCheck(ctx context.Context) error
}

type ServiceConfig struct {
	KafkaBrokers       []string
	NotificationTopic  string
	ConsumerGroupID    string
	NumConsumerWorkers int
	Email              config.EmailConfig
}

// NewServiceConfig builds the notification pipeline settings from the shared
// config.
func NewServiceConfig(cfg *config.Config) *ServiceConfig {
	return &ServiceConfig{
		KafkaBrokers:       cfg.Kafka.Brokers,
		NotificationTopic:  cfg.Kafka.NotificationTopic,
		ConsumerGroupID:    cfg.Kafka.ConsumerGroup,
		NumConsumerWorkers: 3,
		Email:              cfg.Email,
	}
}

type EmailNotificationService struct {
	config       *ServiceConfig
	producer     NotificationProducer
	consumer     NotificationConsumer
	emailService EmailService

	// State
	isRunning bool
	mu        sync.RWMutex
	ctx       context.Context
	cancel    context.CancelFunc
}

func NewEmailNotificationService(config *ServiceConfig) (NotificationService, error) {
	if config == nil {
		return nil, fmt.Errorf("notification service config is required")
	}

	var emailService EmailService
	if config.Email.SMTPHost == "" || config.Email.SMTPUsername == "" {
		// No SMTP credentials; render and log instead of sending.
		log.Printf("📧 SMTP not configured, using mock email service")
		emailService = NewMockEmailService()
	} else {
		smtpService, err := NewSMTPEmailService(NewSMTPConfig(config.Email))
		if err != nil {
			return nil, fmt.Errorf("failed to create SMTP email service: %w", err)
		}
		emailService = smtpService
	}

	producerConfig := DefaultKafkaProducerConfig()
	producerConfig.Brokers = config.KafkaBrokers
	producerConfig.NotificationTopic = config.NotificationTopic

	producer, err := NewKafkaNotificationProducer(producerConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification producer: %w", err)
	}

	consumerConfig := DefaultConsumerConfig()
	consumerConfig.Brokers = config.KafkaBrokers
	consumerConfig.Topics = []string{config.NotificationTopic}
	consumerConfig.GroupID = config.ConsumerGroupID

	consumer, err := NewKafkaNotificationConsumer(consumerConfig, emailService)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification consumer: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	log.Printf("📧 Email notification service initialized (brokers: %v, topic: %s)",
		config.KafkaBrokers, config.NotificationTopic)

	return &EmailNotificationService{
		config:       config,
		producer:     producer,
		consumer:     consumer,
		emailService: emailService,
		isRunning:    false,
		ctx:          ctx,
		cancel:       cancel,
	}, nil
}

func (ens *EmailNotificationService) Start(ctx context.Context) error {
	ens.mu.Lock()
	defer ens.mu.Unlock()

	if ens.isRunning {
		return fmt.Errorf("notification service is already running")
	}

	log.Printf("🚀 Starting Email Notification Service...")

	err := ens.consumer.StartConsumers(ens.ctx, ens.config.NumConsumerWorkers)
	if err != nil {
		return fmt.Errorf("failed to start consumers: %w", err)
	}

	ens.isRunning = true
	log.Printf("✅ Email Notification Service started successfully")

	return nil
}

func (ens *EmailNotificationService) Stop() error {
	ens.mu.Lock()
	defer ens.mu.Unlock()

	if !ens.isRunning {
		return fmt.Errorf("notification service is not running")
	}

	log.Printf("🛑 Stopping Email Notification Service...")

	ens.cancel()

	if err := ens.consumer.Stop(); err != nil {
		log.Printf("Error stopping consumer: %v", err)
	}

	if err := ens.producer.Close(); err != nil {
		log.Printf("Error closing producer: %v", err)
	}

	ens.isRunning = false
	log.Printf("✅ Email Notification Service stopped")

	return nil
}

func (ens *EmailNotificationService) SendNotification(ctx context.Context, notification *EmailNotification) error {
	return ens.producer.PublishNotification(ctx, notification)
}

func (ens *EmailNotificationService) SendBookingNotification(ctx context.Context, userID uuid.UUID, email, name string,
	bookingID uuid.UUID, bookingReferenceID string, notificationType NotificationType,
	templateData map[string]interface{}) error {

	notification := NewNotificationBuilder().
		WithType(notificationType).
		WithRecipient(userID, email, name).
		WithBookingContext(bookingID, bookingReferenceID).
		WithTemplateData(templateData).
		Build()

	notification.Subject = generateSubject(notificationType, templateData)

	return ens.producer.PublishNotification(ctx, notification)
}

func (ens *EmailNotificationService) HealthCheck(ctx context.Context) error {
	ens.mu.RLock()
	isRunning := ens.isRunning
	ens.mu.RUnlock()

	if !isRunning {
		return fmt.Errorf("notification service is not running")
	}

	if err := ens.producer.HealthCheck(ctx); err != nil {
		return fmt.Errorf("producer health check failed: %w", err)
	}

	if err := ens.consumer.HealthCheck(ctx); err != nil {
		return fmt.Errorf("consumer health check failed: %w", err)
	}

	return nil
}

// generateSubject generates appropriate subjects for the notification types
func generateSubject(notificationType NotificationType, data map[string]interface{}) string {
	switch notificationType {
	case NotificationTypeBookingConfirmed:
		if hotelName, ok := data["hotel_name"]; ok {
			return fmt.Sprintf("✅ Booking Confirmed at %s", hotelName)
		}
		return "✅ Your hotel booking is confirmed!"

	case NotificationTypeBookingCancelled:
		if hotelName, ok := data["hotel_name"]; ok {
			return fmt.Sprintf("❌ Booking Cancelled at %s", hotelName)
		}
		return "❌ Your hotel booking has been cancelled"

	default:
		return "📧 Notification from HotelRBS"
	}
}
