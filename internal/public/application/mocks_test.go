package application

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/storeatlas/directory-services/api/internal/public/domain"
)

type mockStoreRepository struct {
	mock.Mock
}

func (m *mockStoreRepository) Find(ctx context.Context, filter StoreFilter, paging Paging) ([]domain.Store, error) {
	args := m.Called(ctx, filter, paging)
	stores, _ := args.Get(0).([]domain.Store)
	return stores, args.Error(1)
}

func (m *mockStoreRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockStoreRepository) FindAll(ctx context.Context) ([]domain.Store, error) {
	args := m.Called(ctx)
	stores, _ := args.Get(0).([]domain.Store)
	return stores, args.Error(1)
}

func (m *mockStoreRepository) FindByID(ctx context.Context, id string) (*domain.Store, error) {
	args := m.Called(ctx, id)
	store, _ := args.Get(0).(*domain.Store)
	return store, args.Error(1)
}

func (m *mockStoreRepository) FindBySlug(ctx context.Context, slug string) (*domain.Store, error) {
	args := m.Called(ctx, slug)
	store, _ := args.Get(0).(*domain.Store)
	return store, args.Error(1)
}

func (m *mockStoreRepository) FindByIDs(ctx context.Context, ids []string) ([]domain.Store, error) {
	args := m.Called(ctx, ids)
	stores, _ := args.Get(0).([]domain.Store)
	return stores, args.Error(1)
}

func (m *mockStoreRepository) FindSlugs(ctx context.Context, base string) ([]string, error) {
	args := m.Called(ctx, base)
	slugs, _ := args.Get(0).([]string)
	return slugs, args.Error(1)
}

func (m *mockStoreRepository) FindNearby(ctx context.Context, lng, lat, maxDistanceMeters float64, limit int) ([]domain.Store, error) {
	args := m.Called(ctx, lng, lat, maxDistanceMeters, limit)
	stores, _ := args.Get(0).([]domain.Store)
	return stores, args.Error(1)
}

func (m *mockStoreRepository) Search(ctx context.Context, query string, limit int) ([]domain.Store, error) {
	args := m.Called(ctx, query, limit)
	stores, _ := args.Get(0).([]domain.Store)
	return stores, args.Error(1)
}

func (m *mockStoreRepository) Create(ctx context.Context, store *domain.Store) error {
	args := m.Called(ctx, store)
	return args.Error(0)
}

func (m *mockStoreRepository) Update(ctx context.Context, store *domain.Store) error {
	args := m.Called(ctx, store)
	return args.Error(0)
}

type mockReviewRepository struct {
	mock.Mock
}

func (m *mockReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *mockReviewRepository) FindByStore(ctx context.Context, storeID string) ([]domain.Review, error) {
	args := m.Called(ctx, storeID)
	reviews, _ := args.Get(0).([]domain.Review)
	return reviews, args.Error(1)
}

func (m *mockReviewRepository) FindAll(ctx context.Context) ([]domain.Review, error) {
	args := m.Called(ctx)
	reviews, _ := args.Get(0).([]domain.Review)
	return reviews, args.Error(1)
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *mockUserRepository) ToggleHeart(ctx context.Context, userID, storeID string) (*domain.User, error) {
	args := m.Called(ctx, userID, storeID)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}
