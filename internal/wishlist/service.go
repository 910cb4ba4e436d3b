package wishlist

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"hotelrbs/internal/shared/constants"
	"hotelrbs/pkg/cache"
)

type Service interface {
	Add(ctx context.Context, userID uuid.UUID, req *AddItemRequest) (*Item, error)
	List(ctx context.Context, userID uuid.UUID) (*ListResponse, error)
	Remove(ctx context.Context, userID uuid.UUID, hotelCode string) error
	SetCacheService(cacheService cache.Service)
}

type service struct {
	repo         Repository
	cacheService cache.Service
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// SetCacheService injects the cache service dependency
func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

func (s *service) Add(ctx context.Context, userID uuid.UUID, req *AddItemRequest) (*Item, error) {
	item := &Item{
		UserID:     userID,
		HotelCode:  req.HotelCode,
		HotelName:  req.HotelName,
		CityName:   req.CityName,
		StarRating: req.StarRating,
		Price:      req.Price,
		Currency:   req.Currency,
		FrontImage: req.FrontImage,
	}
	if err := s.repo.Add(ctx, item); err != nil {
		return nil, err
	}
	s.invalidate(ctx, userID)
	return item, nil
}

func (s *service) List(ctx context.Context, userID uuid.UUID) (*ListResponse, error) {
	cacheKey := constants.BuildUserWishlistKey(userID.String())
	if s.cacheService != nil {
		var cached ListResponse
		if err := s.cacheService.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch wishlist: %w", err)
	}

	resp := &ListResponse{
		Items: items,
		Total: len(items),
	}

	if s.cacheService != nil {
		if err := s.cacheService.Set(ctx, cacheKey, resp, constants.TTL_USER_WISHLIST); err != nil {
			log.Printf("Failed to cache wishlist for user %s: %v", userID, err)
		}
	}

	return resp, nil
}

func (s *service) Remove(ctx context.Context, userID uuid.UUID, hotelCode string) error {
	if err := s.repo.Remove(ctx, userID, hotelCode); err != nil {
		return err
	}
	s.invalidate(ctx, userID)
	return nil
}

func (s *service) invalidate(ctx context.Context, userID uuid.UUID) {
	if s.cacheService == nil {
		return
	}
	if err := s.cacheService.Delete(ctx, constants.BuildUserWishlistKey(userID.String())); err != nil {
		log.Printf("Failed to invalidate wishlist cache for user %s: %v", userID, err)
	}
}
