package domain

import "sort"

// Defaults for the aggregation read models.
const (
	DefaultTopStoreLimit = 10

	// minTopStoreReviews excludes stores whose average would rest on a
	// single review.
	minTopStoreReviews = 2
)

// TagCount is one entry of the tag aggregation.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// CountTags unwinds every (store, tag) pair, groups by tag value and counts
// occurrences. The result is sorted by count descending, then tag ascending
// so equal counts come out in a deterministic order.
func CountTags(stores []Store) []TagCount {
	counts := make(map[string]int)
	for _, store := range stores {
		for _, tag := range store.Tags {
			counts[tag]++
		}
	}

	result := make([]TagCount, 0, len(counts))
	for tag, count := range counts {
		result = append(result, TagCount{Tag: tag, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Tag < result[j].Tag
	})
	return result
}

// TopStore is a store annotated with the average rating of its reviews.
type TopStore struct {
	Store
	AverageRating float64 `json:"averageRating"`
	ReviewCount   int     `json:"reviewCount"`
}

// RankTopStores joins reviews onto stores by store id, keeps stores with at
// least two reviews, averages their ratings and returns the best limit stores
// sorted by average descending. Ties keep the underlying scan order.
func RankTopStores(stores []Store, reviews []Review, limit int) []TopStore {
	if limit <= 0 {
		limit = DefaultTopStoreLimit
	}

	byStore := make(map[string][]Review, len(stores))
	for _, review := range reviews {
		byStore[review.Store] = append(byStore[review.Store], review)
	}

	ranked := make([]TopStore, 0, len(stores))
	for _, store := range stores {
		joined := byStore[store.ID]
		if len(joined) < minTopStoreReviews {
			continue
		}
		sum := 0
		for _, review := range joined {
			sum += review.Rating
		}
		ranked = append(ranked, TopStore{
			Store:         store,
			AverageRating: float64(sum) / float64(len(joined)),
			ReviewCount:   len(joined),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].AverageRating > ranked[j].AverageRating
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
