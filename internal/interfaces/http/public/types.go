package public

import (
	"time"

	"github.com/storeatlas/directory-services/api/internal/public/domain"
)

type locationResponse struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
	Address     string    `json:"address"`
}

type storeSummaryResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Slug        string           `json:"slug"`
	Description string           `json:"description,omitempty"`
	Tags        []string         `json:"tags,omitempty"`
	Location    locationResponse `json:"location"`
	Photo       string           `json:"photo,omitempty"`
	Created     time.Time        `json:"created"`
}

type storeDetailResponse struct {
	storeSummaryResponse
	Author  string           `json:"author"`
	Reviews []reviewResponse `json:"reviews"`
}

type storeListResponse struct {
	Items []storeSummaryResponse `json:"items"`
	Page  int                    `json:"page"`
	Pages int                    `json:"pages"`
	Total int64                  `json:"total"`
}

type reviewResponse struct {
	ID      string    `json:"id"`
	Store   string    `json:"store"`
	Author  string    `json:"author"`
	Text    string    `json:"text,omitempty"`
	Rating  int       `json:"rating"`
	Created time.Time `json:"created"`
}

type topStoreResponse struct {
	storeSummaryResponse
	AverageRating float64 `json:"averageRating"`
	ReviewCount   int     `json:"reviewCount"`
}

type tagListResponse struct {
	Tag    string                 `json:"tag,omitempty"`
	Tags   []domain.TagCount      `json:"tags"`
	Stores []storeSummaryResponse `json:"stores"`
}

func buildStoreSummaryResponse(store domain.Store) storeSummaryResponse {
	return storeSummaryResponse{
		ID:          store.ID,
		Name:        store.Name,
		Slug:        store.Slug,
		Description: store.Description,
		Tags:        store.Tags,
		Location: locationResponse{
			Type:        store.Location.Type,
			Coordinates: store.Location.Coordinates,
			Address:     store.Location.Address,
		},
		Photo:   store.Photo,
		Created: store.Created,
	}
}

func buildStoreDetailResponse(store domain.Store) storeDetailResponse {
	reviews := make([]reviewResponse, 0, len(store.Reviews))
	for _, review := range store.Reviews {
		reviews = append(reviews, buildReviewResponse(review))
	}
	return storeDetailResponse{
		storeSummaryResponse: buildStoreSummaryResponse(store),
		Author:               store.Author,
		Reviews:              reviews,
	}
}

func buildReviewResponse(review domain.Review) reviewResponse {
	return reviewResponse{
		ID:      review.ID,
		Store:   review.Store,
		Author:  review.Author,
		Text:    review.Text,
		Rating:  review.Rating,
		Created: review.Created,
	}
}

func buildStoreSummaries(stores []domain.Store) []storeSummaryResponse {
	items := make([]storeSummaryResponse, 0, len(stores))
	for _, store := range stores {
		items = append(items, buildStoreSummaryResponse(store))
	}
	return items
}
