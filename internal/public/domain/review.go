package domain

import (
	"strings"
	"time"
)

// Rating bounds for a review.
const (
	MinRating = 1
	MaxRating = 5
)

// Review is a rating plus free text left by one user for one store.
// A user may review the same store more than once.
type Review struct {
	ID      string
	Store   string
	Author  string
	Text    string
	Rating  int
	Created time.Time
}

// Normalize trims the review text.
func (r *Review) Normalize() {
	r.Text = strings.TrimSpace(r.Text)
}

// Validate blocks persistence when the store or author reference is absent
// or the rating is out of range.
func (r Review) Validate() error {
	verr := &ValidationError{}
	if strings.TrimSpace(r.Store) == "" {
		verr.Add("store", "store reference is required")
	}
	if strings.TrimSpace(r.Author) == "" {
		verr.Add("author", "author reference is required")
	}
	if r.Rating < MinRating || r.Rating > MaxRating {
		verr.Add("rating", "rating must be between 1 and 5")
	}
	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}
