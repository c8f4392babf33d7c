package public

import (
	"context"

	"github.com/stretchr/testify/mock"

	publicapp "github.com/storeatlas/directory-services/api/internal/public/application"
	"github.com/storeatlas/directory-services/api/internal/public/domain"
)

type mockStoreQueryService struct {
	mock.Mock
}

func (m *mockStoreQueryService) List(ctx context.Context, paging publicapp.Paging) (publicapp.StorePage, error) {
	args := m.Called(ctx, paging)
	return args.Get(0).(publicapp.StorePage), args.Error(1)
}

func (m *mockStoreQueryService) DetailBySlug(ctx context.Context, slug string) (*domain.Store, error) {
	args := m.Called(ctx, slug)
	store, _ := args.Get(0).(*domain.Store)
	return store, args.Error(1)
}

func (m *mockStoreQueryService) ListByTag(ctx context.Context, tag string) ([]domain.Store, error) {
	args := m.Called(ctx, tag)
	stores, _ := args.Get(0).([]domain.Store)
	return stores, args.Error(1)
}

func (m *mockStoreQueryService) Tags(ctx context.Context) ([]domain.TagCount, error) {
	args := m.Called(ctx)
	counts, _ := args.Get(0).([]domain.TagCount)
	return counts, args.Error(1)
}

func (m *mockStoreQueryService) TopStores(ctx context.Context, limit int) ([]domain.TopStore, error) {
	args := m.Called(ctx, limit)
	ranked, _ := args.Get(0).([]domain.TopStore)
	return ranked, args.Error(1)
}

func (m *mockStoreQueryService) Nearby(ctx context.Context, lng, lat, maxDistanceMeters float64, limit int) ([]domain.Store, error) {
	args := m.Called(ctx, lng, lat, maxDistanceMeters, limit)
	stores, _ := args.Get(0).([]domain.Store)
	return stores, args.Error(1)
}

func (m *mockStoreQueryService) Search(ctx context.Context, query string, limit int) ([]domain.Store, error) {
	args := m.Called(ctx, query, limit)
	stores, _ := args.Get(0).([]domain.Store)
	return stores, args.Error(1)
}

func (m *mockStoreQueryService) HeartedStores(ctx context.Context, userID string) ([]domain.Store, error) {
	args := m.Called(ctx, userID)
	stores, _ := args.Get(0).([]domain.Store)
	return stores, args.Error(1)
}

type mockStoreCommandService struct {
	mock.Mock
}

func (m *mockStoreCommandService) Create(ctx context.Context, cmd publicapp.CreateStoreCommand) (*domain.Store, error) {
	args := m.Called(ctx, cmd)
	store, _ := args.Get(0).(*domain.Store)
	return store, args.Error(1)
}

func (m *mockStoreCommandService) Update(ctx context.Context, cmd publicapp.UpdateStoreCommand) (*domain.Store, error) {
	args := m.Called(ctx, cmd)
	store, _ := args.Get(0).(*domain.Store)
	return store, args.Error(1)
}

type mockReviewCommandService struct {
	mock.Mock
}

func (m *mockReviewCommandService) Add(ctx context.Context, cmd publicapp.AddReviewCommand) (*domain.Review, error) {
	args := m.Called(ctx, cmd)
	review, _ := args.Get(0).(*domain.Review)
	return review, args.Error(1)
}

type mockHeartService struct {
	mock.Mock
}

func (m *mockHeartService) ToggleHeart(ctx context.Context, userID, storeID string) (*domain.User, error) {
	args := m.Called(ctx, userID, storeID)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}
