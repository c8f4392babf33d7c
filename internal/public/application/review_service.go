package application

import (
	"context"
	"time"

	"github.com/storeatlas/directory-services/api/internal/public/domain"
)

// reviewCommandService is the concrete implementation of ReviewCommandService.
type reviewCommandService struct {
	reviews ReviewRepository
	stores  StoreRepository
}

// NewReviewCommandService creates a new review command service.
func NewReviewCommandService(reviews ReviewRepository, stores StoreRepository) ReviewCommandService {
	return &reviewCommandService{reviews: reviews, stores: stores}
}

// Add persists a review for the given store and author. Both references must
// be present and the store must exist; a user may review a store repeatedly.
func (s *reviewCommandService) Add(ctx context.Context, cmd AddReviewCommand) (*domain.Review, error) {
	review := &domain.Review{
		Store:   cmd.Store,
		Author:  cmd.Author,
		Text:    cmd.Text,
		Rating:  cmd.Rating,
		Created: time.Now().UTC(),
	}
	review.Normalize()
	if err := review.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.stores.FindByID(ctx, review.Store); err != nil {
		return nil, err
	}

	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}
