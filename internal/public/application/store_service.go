package application

import (
	"context"

	"github.com/storeatlas/directory-services/api/internal/public/domain"
)

// Defaults for the query read models.
const (
	DefaultPageSize     = 4
	DefaultNearbyMeters = 10000
	DefaultNearbyLimit  = 10
	DefaultSearchLimit  = 5
)

// storeQueryService is the concrete implementation of StoreQueryService.
type storeQueryService struct {
	stores  StoreRepository
	reviews ReviewRepository
	users   UserRepository
}

// NewStoreQueryService creates a new store query service.
func NewStoreQueryService(stores StoreRepository, reviews ReviewRepository, users UserRepository) StoreQueryService {
	return &storeQueryService{stores: stores, reviews: reviews, users: users}
}

// List returns one page of stores, newest first, with pagination totals.
// The page fetch and the count are independent reads and run concurrently.
func (s *storeQueryService) List(ctx context.Context, paging Paging) (StorePage, error) {
	if paging.Page <= 0 {
		paging.Page = 1
	}
	if paging.Limit <= 0 {
		paging.Limit = DefaultPageSize
	}

	type findResult struct {
		stores []domain.Store
		err    error
	}
	found := make(chan findResult, 1)
	go func() {
		stores, err := s.stores.Find(ctx, StoreFilter{}, paging)
		found <- findResult{stores: stores, err: err}
	}()

	total, countErr := s.stores.Count(ctx)
	res := <-found
	if res.err != nil {
		return StorePage{}, res.err
	}
	if countErr != nil {
		return StorePage{}, countErr
	}

	pages := int((total + int64(paging.Limit) - 1) / int64(paging.Limit))
	return StorePage{
		Stores: res.stores,
		Page:   paging.Page,
		Pages:  pages,
		Total:  total,
	}, nil
}

// DetailBySlug returns a store with its reviews joined at read time.
func (s *storeQueryService) DetailBySlug(ctx context.Context, slug string) (*domain.Store, error) {
	store, err := s.stores.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	reviews, err := s.reviews.FindByStore(ctx, store.ID)
	if err != nil {
		return nil, err
	}
	store.Reviews = reviews
	return store, nil
}

func (s *storeQueryService) ListByTag(ctx context.Context, tag string) ([]domain.Store, error) {
	filter := StoreFilter{Tag: tag}
	if tag == "" {
		filter.Tagged = true
	}
	return s.stores.Find(ctx, filter, Paging{})
}

// Tags fetches all stores and applies the tag aggregation client-side so the
// unwind/group/sort steps stay independently testable.
func (s *storeQueryService) Tags(ctx context.Context) ([]domain.TagCount, error) {
	stores, err := s.stores.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return domain.CountTags(stores), nil
}

// TopStores joins every store against its reviews and ranks by average
// rating. Stores with fewer than two reviews never appear.
func (s *storeQueryService) TopStores(ctx context.Context, limit int) ([]domain.TopStore, error) {
	stores, err := s.stores.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	reviews, err := s.reviews.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return domain.RankTopStores(stores, reviews, limit), nil
}

func (s *storeQueryService) Nearby(ctx context.Context, lng, lat, maxDistanceMeters float64, limit int) ([]domain.Store, error) {
	if maxDistanceMeters <= 0 {
		maxDistanceMeters = DefaultNearbyMeters
	}
	if limit <= 0 {
		limit = DefaultNearbyLimit
	}
	return s.stores.FindNearby(ctx, lng, lat, maxDistanceMeters, limit)
}

func (s *storeQueryService) Search(ctx context.Context, query string, limit int) ([]domain.Store, error) {
	if query == "" {
		return []domain.Store{}, nil
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	return s.stores.Search(ctx, query, limit)
}

func (s *storeQueryService) HeartedStores(ctx context.Context, userID string) ([]domain.Store, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(user.Hearts) == 0 {
		return []domain.Store{}, nil
	}
	return s.stores.FindByIDs(ctx, user.Hearts)
}
