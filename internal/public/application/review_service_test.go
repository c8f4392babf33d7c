package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/storeatlas/directory-services/api/internal/public/domain"
)

func TestAddReview(t *testing.T) {
	reviews := &mockReviewRepository{}
	stores := &mockStoreRepository{}
	svc := NewReviewCommandService(reviews, stores)

	stores.On("FindByID", mock.Anything, "abc").Return(&domain.Store{ID: "abc"}, nil)
	reviews.On("Create", mock.Anything, mock.AnythingOfType("*domain.Review")).Return(nil)

	review, err := svc.Add(context.Background(), AddReviewCommand{
		Store:  "abc",
		Author: "u1",
		Text:   "  great spot  ",
		Rating: 5,
	})

	require.NoError(t, err)
	assert.Equal(t, "great spot", review.Text)
	assert.False(t, review.Created.IsZero())
	reviews.AssertExpectations(t)
}

func TestAddReviewInvalidRating(t *testing.T) {
	reviews := &mockReviewRepository{}
	stores := &mockStoreRepository{}
	svc := NewReviewCommandService(reviews, stores)

	_, err := svc.Add(context.Background(), AddReviewCommand{Store: "abc", Author: "u1", Rating: 7})

	_, ok := domain.AsValidationError(err)
	assert.True(t, ok)
	reviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	stores.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestAddReviewStoreMustExist(t *testing.T) {
	reviews := &mockReviewRepository{}
	stores := &mockStoreRepository{}
	svc := NewReviewCommandService(reviews, stores)

	stores.On("FindByID", mock.Anything, "missing").Return(nil, domain.ErrNotFound)

	_, err := svc.Add(context.Background(), AddReviewCommand{Store: "missing", Author: "u1", Rating: 3})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	reviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestToggleHeart(t *testing.T) {
	users := &mockUserRepository{}
	stores := &mockStoreRepository{}
	svc := NewHeartService(users, stores)

	stores.On("FindByID", mock.Anything, "abc").Return(&domain.Store{ID: "abc"}, nil)
	users.On("ToggleHeart", mock.Anything, "u1", "abc").Return(&domain.User{ID: "u1", Hearts: []string{"abc"}}, nil)

	user, err := svc.ToggleHeart(context.Background(), "u1", "abc")

	require.NoError(t, err)
	assert.True(t, user.HasHearted("abc"))
	users.AssertExpectations(t)
}

func TestToggleHeartStoreMustExist(t *testing.T) {
	users := &mockUserRepository{}
	stores := &mockStoreRepository{}
	svc := NewHeartService(users, stores)

	stores.On("FindByID", mock.Anything, "missing").Return(nil, domain.ErrNotFound)

	_, err := svc.ToggleHeart(context.Background(), "u1", "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	users.AssertNotCalled(t, "ToggleHeart", mock.Anything, mock.Anything, mock.Anything)
}
