package wishlist

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrItemNotFound = errors.New("wishlist item not found")
	ErrAlreadySaved = errors.New("hotel is already on the wishlist")
)

type Repository interface {
	Add(ctx context.Context, item *Item) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Item, error)
	Remove(ctx context.Context, userID uuid.UUID, hotelCode string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Add(ctx context.Context, item *Item) error {
	err := r.db.WithContext(ctx).Create(item).Error
	if err != nil {
		// unique_hotel_per_user constraint
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "unique_hotel_per_user") {
			return ErrAlreadySaved
		}
		return err
	}
	return nil
}

func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]Item, error) {
	var items []Item
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *repository) Remove(ctx context.Context, userID uuid.UUID, hotelCode string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND hotel_code = ?", userID, hotelCode).
		Delete(&Item{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}
