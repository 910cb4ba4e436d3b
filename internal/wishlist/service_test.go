package wishlist_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelrbs/internal/wishlist"
)

type mockRepo struct {
	items     map[uuid.UUID]map[string]*wishlist.Item
	listCalls int
}

func newMockRepo() *mockRepo {
	return &mockRepo{items: map[uuid.UUID]map[string]*wishlist.Item{}}
}

func (m *mockRepo) Add(_ context.Context, item *wishlist.Item) error {
	byCode, ok := m.items[item.UserID]
	if !ok {
		byCode = map[string]*wishlist.Item{}
		m.items[item.UserID] = byCode
	}
	if _, exists := byCode[item.HotelCode]; exists {
		return wishlist.ErrAlreadySaved
	}
	item.ID = uuid.New()
	byCode[item.HotelCode] = item
	return nil
}

func (m *mockRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]wishlist.Item, error) {
	m.listCalls++
	var out []wishlist.Item
	for _, item := range m.items[userID] {
		out = append(out, *item)
	}
	return out, nil
}

func (m *mockRepo) Remove(_ context.Context, userID uuid.UUID, hotelCode string) error {
	byCode := m.items[userID]
	if _, ok := byCode[hotelCode]; !ok {
		return wishlist.ErrItemNotFound
	}
	delete(byCode, hotelCode)
	return nil
}

// memoryCache is an in-memory stand-in for the Redis cache service.
type memoryCache struct {
	store map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{store: map[string][]byte{}}
}

func (m *memoryCache) Get(_ context.Context, key string, dest interface{}) error {
	data, ok := m.store[key]
	if !ok {
		return errors.New("cache miss")
	}
	return json.Unmarshal(data, dest)
}

func (m *memoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.store[key] = data
	return nil
}

func (m *memoryCache) Delete(_ context.Context, key string) error {
	delete(m.store, key)
	return nil
}

func (m *memoryCache) DeletePattern(_ context.Context, _ string) error { return nil }
func (m *memoryCache) Exists(_ context.Context, key string) bool {
	_, ok := m.store[key]
	return ok
}
func (m *memoryCache) MGet(_ context.Context, _ []string, _ interface{}) error        { return nil }
func (m *memoryCache) MSet(_ context.Context, _ map[string]interface{}, _ time.Duration) error { return nil }
func (m *memoryCache) GetOrSet(ctx context.Context, key string, ttl time.Duration, fetcher func() (interface{}, error), dest interface{}) error {
	if err := m.Get(ctx, key, dest); err == nil {
		return nil
	}
	value, err := fetcher()
	if err != nil {
		return err
	}
	if err := m.Set(ctx, key, value, ttl); err != nil {
		return err
	}
	return m.Get(ctx, key, dest)
}
func (m *memoryCache) Ping(_ context.Context) error { return nil }

func addRequest() *wishlist.AddItemRequest {
	return &wishlist.AddItemRequest{
		HotelCode:  "1402689",
		HotelName:  "Atlantis The Palm",
		CityName:   "Dubai",
		StarRating: 5,
		Price:      1850.00,
		Currency:   "AED",
	}
}

func TestAddAndList(t *testing.T) {
	repo := newMockRepo()
	svc := wishlist.NewService(repo)
	userID := uuid.New()

	item, err := svc.Add(context.Background(), userID, addRequest())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, item.ID)
	assert.Equal(t, userID, item.UserID)

	resp, err := svc.List(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, "Atlantis The Palm", resp.Items[0].HotelName)
}

func TestAddDuplicate(t *testing.T) {
	repo := newMockRepo()
	svc := wishlist.NewService(repo)
	userID := uuid.New()

	_, err := svc.Add(context.Background(), userID, addRequest())
	require.NoError(t, err)

	_, err = svc.Add(context.Background(), userID, addRequest())
	assert.ErrorIs(t, err, wishlist.ErrAlreadySaved)

	// The same hotel is fine on another customer's list
	_, err = svc.Add(context.Background(), uuid.New(), addRequest())
	assert.NoError(t, err)
}

func TestListUsesCache(t *testing.T) {
	repo := newMockRepo()
	svc := wishlist.NewService(repo)
	svc.SetCacheService(newMemoryCache())
	userID := uuid.New()

	_, err := svc.Add(context.Background(), userID, addRequest())
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		resp, err := svc.List(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Total)
	}
	assert.Equal(t, 1, repo.listCalls)
}

func TestAddInvalidatesCache(t *testing.T) {
	repo := newMockRepo()
	svc := wishlist.NewService(repo)
	svc.SetCacheService(newMemoryCache())
	userID := uuid.New()

	_, err := svc.Add(context.Background(), userID, addRequest())
	require.NoError(t, err)
	resp, err := svc.List(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)

	second := addRequest()
	second.HotelCode = "1377073"
	second.HotelName = "Rove Downtown"
	_, err = svc.Add(context.Background(), userID, second)
	require.NoError(t, err)

	// Cached page was dropped, list reflects the new item
	resp, err = svc.List(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
}

func TestRemove(t *testing.T) {
	repo := newMockRepo()
	svc := wishlist.NewService(repo)
	svc.SetCacheService(newMemoryCache())
	userID := uuid.New()

	_, err := svc.Add(context.Background(), userID, addRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Remove(context.Background(), userID, "1402689"))

	resp, err := svc.List(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Total)

	err = svc.Remove(context.Background(), userID, "1402689")
	assert.ErrorIs(t, err, wishlist.ErrItemNotFound)
}
