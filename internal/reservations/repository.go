package reservations

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrSessionNotFound = errors.New("booking session not found")

type Repository interface {
	Create(ctx context.Context, session *BookingSession) error
	GetByReference(ctx context.Context, bookingReferenceID string) (*BookingSession, error)
	GetByOrderRef(ctx context.Context, orderRef string) (*BookingSession, error)
	Update(ctx context.Context, session *BookingSession) error
	FailActiveByUser(ctx context.Context, userID uuid.UUID, reason string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

func (r *repository) Create(ctx context.Context, session *BookingSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *repository) GetByReference(ctx context.Context, bookingReferenceID string) (*BookingSession, error) {
	var session BookingSession
	err := r.db.WithContext(ctx).Where("booking_reference_id = ?", bookingReferenceID).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (r *repository) GetByOrderRef(ctx context.Context, orderRef string) (*BookingSession, error) {
	var session BookingSession
	err := r.db.WithContext(ctx).Where("payment_order_ref = ?", orderRef).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (r *repository) Update(ctx context.Context, session *BookingSession) error {
	return r.db.WithContext(ctx).Save(session).Error
}

// FailActiveByUser marks every non-terminal session of the user as FAILED.
// One active reference per customer.
func (r *repository) FailActiveByUser(ctx context.Context, userID uuid.UUID, reason string) error {
	return r.db.WithContext(ctx).Model(&BookingSession{}).
		Where("user_id = ? AND status IN ?", userID, []string{
			string(StatusReserved),
			string(StatusGuestDetailsCaptured),
			string(StatusPaymentPending),
		}).
		Updates(map[string]interface{}{
			"status":         StatusFailed,
			"failure_reason": reason,
		}).Error
}
