package application

import (
	"context"

	"github.com/storeatlas/directory-services/api/internal/public/domain"
)

// StoreRepository is the port for store reads and writes.
type StoreRepository interface {
	Find(ctx context.Context, filter StoreFilter, paging Paging) ([]domain.Store, error)
	Count(ctx context.Context) (int64, error)
	FindAll(ctx context.Context) ([]domain.Store, error)
	FindByID(ctx context.Context, id string) (*domain.Store, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Store, error)
	FindByIDs(ctx context.Context, ids []string) ([]domain.Store, error)
	FindSlugs(ctx context.Context, base string) ([]string, error)
	FindNearby(ctx context.Context, lng, lat, maxDistanceMeters float64, limit int) ([]domain.Store, error)
	Search(ctx context.Context, query string, limit int) ([]domain.Store, error)
	Create(ctx context.Context, store *domain.Store) error
	Update(ctx context.Context, store *domain.Store) error
}

// ReviewRepository is the port for review reads and writes.
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	FindByStore(ctx context.Context, storeID string) ([]domain.Review, error)
	FindAll(ctx context.Context) ([]domain.Review, error)
}

// UserRepository is the port for heart toggling against the users collection.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	ToggleHeart(ctx context.Context, userID, storeID string) (*domain.User, error)
}

// StoreFilter expresses list criteria for stores.
type StoreFilter struct {
	// Tag restricts to stores carrying the tag. When empty and Tagged is
	// set, any store with at least one tag matches.
	Tag    string
	Tagged bool
}

// Paging controls pagination of the store list.
type Paging struct {
	Page  int
	Limit int
}

// StorePage is one page of the store list plus pagination totals.
type StorePage struct {
	Stores []domain.Store
	Page   int
	Pages  int
	Total  int64
}

// StoreQueryService describes the read use-cases over stores.
type StoreQueryService interface {
	List(ctx context.Context, paging Paging) (StorePage, error)
	DetailBySlug(ctx context.Context, slug string) (*domain.Store, error)
	ListByTag(ctx context.Context, tag string) ([]domain.Store, error)
	Tags(ctx context.Context) ([]domain.TagCount, error)
	TopStores(ctx context.Context, limit int) ([]domain.TopStore, error)
	Nearby(ctx context.Context, lng, lat, maxDistanceMeters float64, limit int) ([]domain.Store, error)
	Search(ctx context.Context, query string, limit int) ([]domain.Store, error)
	HeartedStores(ctx context.Context, userID string) ([]domain.Store, error)
}

// CreateStoreCommand captures validated handler input for a new store.
type CreateStoreCommand struct {
	Name        string
	Description string
	Tags        []string
	Address     string
	Coordinates []float64
	Photo       string
	Author      string
}

// UpdateStoreCommand captures an owner's edit of an existing store.
type UpdateStoreCommand struct {
	ID          string
	Author      string
	Name        string
	Description string
	Tags        []string
	Address     string
	Coordinates []float64
	Photo       string
}

// StoreCommandService describes the write use-cases over stores.
type StoreCommandService interface {
	Create(ctx context.Context, cmd CreateStoreCommand) (*domain.Store, error)
	Update(ctx context.Context, cmd UpdateStoreCommand) (*domain.Store, error)
}

// AddReviewCommand associates a review with a store and an author.
type AddReviewCommand struct {
	Store  string
	Author string
	Text   string
	Rating int
}

// ReviewCommandService describes the review write use-case.
type ReviewCommandService interface {
	Add(ctx context.Context, cmd AddReviewCommand) (*domain.Review, error)
}

// HeartService toggles favorite membership for a user.
type HeartService interface {
	ToggleHeart(ctx context.Context, userID, storeID string) (*domain.User, error)
}
