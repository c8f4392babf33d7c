package application

import (
	"context"

	"github.com/storeatlas/directory-services/api/internal/public/domain"
)

// heartService is the concrete implementation of HeartService.
type heartService struct {
	users  UserRepository
	stores StoreRepository
}

// NewHeartService creates a new heart service.
func NewHeartService(users UserRepository, stores StoreRepository) HeartService {
	return &heartService{users: users, stores: stores}
}

// ToggleHeart adds the store to the user's hearts when absent and removes it
// when present, returning the updated user.
func (s *heartService) ToggleHeart(ctx context.Context, userID, storeID string) (*domain.User, error) {
	if _, err := s.stores.FindByID(ctx, storeID); err != nil {
		return nil, err
	}
	return s.users.ToggleHeart(ctx, userID, storeID)
}
