package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/storeatlas/directory-services/api/internal/public/domain"
)

func newQueryService() (*mockStoreRepository, *mockReviewRepository, *mockUserRepository, StoreQueryService) {
	stores := &mockStoreRepository{}
	reviews := &mockReviewRepository{}
	users := &mockUserRepository{}
	return stores, reviews, users, NewStoreQueryService(stores, reviews, users)
}

func TestListDefaultsAndTotals(t *testing.T) {
	stores, _, _, svc := newQueryService()
	listed := []domain.Store{{ID: "1"}, {ID: "2"}}
	stores.On("Find", mock.Anything, StoreFilter{}, Paging{Page: 1, Limit: DefaultPageSize}).Return(listed, nil)
	stores.On("Count", mock.Anything).Return(int64(9), nil)

	page, err := svc.List(context.Background(), Paging{})

	require.NoError(t, err)
	assert.Equal(t, listed, page.Stores)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, int64(9), page.Total)
	// 9 stores at 4 per page round up to 3 pages.
	assert.Equal(t, 3, page.Pages)
	stores.AssertExpectations(t)
}

func TestListPropagatesErrors(t *testing.T) {
	findErr := errors.New("find failed")

	stores, _, _, svc := newQueryService()
	stores.On("Find", mock.Anything, mock.Anything, mock.Anything).Return(nil, findErr)
	stores.On("Count", mock.Anything).Return(int64(0), nil)

	_, err := svc.List(context.Background(), Paging{Page: 2, Limit: 4})
	assert.ErrorIs(t, err, findErr)

	countErr := errors.New("count failed")
	stores2, _, _, svc2 := newQueryService()
	stores2.On("Find", mock.Anything, mock.Anything, mock.Anything).Return([]domain.Store{}, nil)
	stores2.On("Count", mock.Anything).Return(int64(0), countErr)

	_, err = svc2.List(context.Background(), Paging{Page: 1, Limit: 4})
	assert.ErrorIs(t, err, countErr)
}

func TestDetailBySlugJoinsReviews(t *testing.T) {
	stores, reviews, _, svc := newQueryService()
	store := &domain.Store{ID: "abc", Slug: "coffee-corner"}
	joined := []domain.Review{{ID: "r1", Store: "abc"}}
	stores.On("FindBySlug", mock.Anything, "coffee-corner").Return(store, nil)
	reviews.On("FindByStore", mock.Anything, "abc").Return(joined, nil)

	got, err := svc.DetailBySlug(context.Background(), "coffee-corner")

	require.NoError(t, err)
	assert.Equal(t, joined, got.Reviews)
	stores.AssertExpectations(t)
	reviews.AssertExpectations(t)
}

func TestDetailBySlugNotFound(t *testing.T) {
	stores, _, _, svc := newQueryService()
	stores.On("FindBySlug", mock.Anything, "missing").Return(nil, domain.ErrNotFound)

	_, err := svc.DetailBySlug(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListByTag(t *testing.T) {
	stores, _, _, svc := newQueryService()
	stores.On("Find", mock.Anything, StoreFilter{Tag: "Wifi"}, Paging{}).Return([]domain.Store{{ID: "1"}}, nil)

	got, err := svc.ListByTag(context.Background(), "Wifi")

	require.NoError(t, err)
	assert.Len(t, got, 1)
	stores.AssertExpectations(t)
}

func TestListByTagEmptyMatchesAnyTagged(t *testing.T) {
	stores, _, _, svc := newQueryService()
	stores.On("Find", mock.Anything, StoreFilter{Tagged: true}, Paging{}).Return([]domain.Store{}, nil)

	_, err := svc.ListByTag(context.Background(), "")

	require.NoError(t, err)
	stores.AssertExpectations(t)
}

func TestTags(t *testing.T) {
	stores, _, _, svc := newQueryService()
	stores.On("FindAll", mock.Anything).Return([]domain.Store{
		{ID: "1", Tags: []string{"Wifi"}},
		{ID: "2", Tags: []string{"Wifi", "Licensed"}},
	}, nil)

	counts, err := svc.Tags(context.Background())

	require.NoError(t, err)
	require.Len(t, counts, 2)
	assert.Equal(t, domain.TagCount{Tag: "Wifi", Count: 2}, counts[0])
}

func TestTopStores(t *testing.T) {
	stores, reviews, _, svc := newQueryService()
	stores.On("FindAll", mock.Anything).Return([]domain.Store{{ID: "a"}, {ID: "b"}}, nil)
	reviews.On("FindAll", mock.Anything).Return([]domain.Review{
		{Store: "a", Rating: 5},
		{Store: "a", Rating: 4},
		{Store: "b", Rating: 5},
	}, nil)

	top, err := svc.TopStores(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "a", top[0].ID)
	assert.Equal(t, 4.5, top[0].AverageRating)
}

func TestNearbyDefaults(t *testing.T) {
	stores, _, _, svc := newQueryService()
	stores.On("FindNearby", mock.Anything, -79.38, 43.65, float64(DefaultNearbyMeters), DefaultNearbyLimit).
		Return([]domain.Store{{ID: "1"}}, nil)

	got, err := svc.Nearby(context.Background(), -79.38, 43.65, 0, 0)

	require.NoError(t, err)
	assert.Len(t, got, 1)
	stores.AssertExpectations(t)
}

func TestSearchEmptyQuery(t *testing.T) {
	stores, _, _, svc := newQueryService()

	got, err := svc.Search(context.Background(), "", 5)

	require.NoError(t, err)
	assert.Empty(t, got)
	stores.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
}

func TestSearchDefaultsLimit(t *testing.T) {
	stores, _, _, svc := newQueryService()
	stores.On("Search", mock.Anything, "coffee", DefaultSearchLimit).Return([]domain.Store{{ID: "1"}}, nil)

	got, err := svc.Search(context.Background(), "coffee", 0)

	require.NoError(t, err)
	assert.Len(t, got, 1)
	stores.AssertExpectations(t)
}

func TestHeartedStores(t *testing.T) {
	stores, _, users, svc := newQueryService()
	users.On("FindByID", mock.Anything, "u1").Return(&domain.User{ID: "u1", Hearts: []string{"a", "b"}}, nil)
	stores.On("FindByIDs", mock.Anything, []string{"a", "b"}).Return([]domain.Store{{ID: "a"}, {ID: "b"}}, nil)

	got, err := svc.HeartedStores(context.Background(), "u1")

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestHeartedStoresNoHearts(t *testing.T) {
	stores, _, users, svc := newQueryService()
	users.On("FindByID", mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)

	got, err := svc.HeartedStores(context.Background(), "u1")

	require.NoError(t, err)
	assert.Empty(t, got)
	stores.AssertNotCalled(t, "FindByIDs", mock.Anything, mock.Anything)
}
