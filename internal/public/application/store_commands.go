package application

import (
	"context"
	"time"

	"github.com/storeatlas/directory-services/api/internal/public/domain"
)

// storeCommandService is the concrete implementation of StoreCommandService.
type storeCommandService struct {
	stores StoreRepository
}

// NewStoreCommandService creates a new store command service.
func NewStoreCommandService(stores StoreRepository) StoreCommandService {
	return &storeCommandService{stores: stores}
}

// Create validates the input, derives a slug from the existing slug set and
// persists the store. Slug derivation is check-then-act; see domain.DeriveSlug.
func (s *storeCommandService) Create(ctx context.Context, cmd CreateStoreCommand) (*domain.Store, error) {
	store := &domain.Store{
		Name:        cmd.Name,
		Description: cmd.Description,
		Tags:        append([]string{}, cmd.Tags...),
		Created:     time.Now().UTC(),
		Location: domain.Location{
			Type:        "Point",
			Coordinates: append([]float64{}, cmd.Coordinates...),
			Address:     cmd.Address,
		},
		Photo:  cmd.Photo,
		Author: cmd.Author,
	}
	store.Normalize()
	if err := store.Validate(); err != nil {
		return nil, err
	}

	slug, err := s.deriveSlug(ctx, store.Name)
	if err != nil {
		return nil, err
	}
	store.Slug = slug

	if err := s.stores.Create(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}

// Update rejects non-owners before any mutation and regenerates the slug only
// when the name actually changed.
func (s *storeCommandService) Update(ctx context.Context, cmd UpdateStoreCommand) (*domain.Store, error) {
	existing, err := s.stores.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}
	if existing.Author != cmd.Author {
		return nil, domain.ErrNotOwner
	}

	updated := &domain.Store{
		ID:          existing.ID,
		Name:        cmd.Name,
		Slug:        existing.Slug,
		Description: cmd.Description,
		Tags:        append([]string{}, cmd.Tags...),
		Created:     existing.Created,
		Location: domain.Location{
			Type:        "Point",
			Coordinates: append([]float64{}, cmd.Coordinates...),
			Address:     cmd.Address,
		},
		Photo:  cmd.Photo,
		Author: existing.Author,
	}
	updated.Normalize()
	if err := updated.Validate(); err != nil {
		return nil, err
	}

	if updated.Name != existing.Name {
		slug, err := s.deriveSlug(ctx, updated.Name)
		if err != nil {
			return nil, err
		}
		updated.Slug = slug
	}

	if err := s.stores.Update(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// deriveSlug scans the persisted slugs sharing the base and derives the next
// free one. A name that slugifies to nothing cannot be addressed by URL, so it
// is rejected before any write.
func (s *storeCommandService) deriveSlug(ctx context.Context, name string) (string, error) {
	base := domain.Slugify(name)
	if base == "" {
		verr := &domain.ValidationError{}
		verr.Add("name", "store name must contain at least one letter or digit")
		return "", verr
	}
	existing, err := s.stores.FindSlugs(ctx, base)
	if err != nil {
		return "", err
	}
	return domain.DeriveSlug(existing, name), nil
}
