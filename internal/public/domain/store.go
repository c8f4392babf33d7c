package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// MaxDescriptionRunes limits store descriptions to keep payloads sane.
const MaxDescriptionRunes = 2000

// Location is a GeoJSON point plus a human-readable address.
type Location struct {
	Type        string
	Coordinates []float64
	Address     string
}

// Longitude returns the first coordinate, 0 when coordinates are missing.
func (l Location) Longitude() float64 {
	if len(l.Coordinates) > 0 {
		return l.Coordinates[0]
	}
	return 0
}

// Latitude returns the second coordinate, 0 when coordinates are missing.
func (l Location) Latitude() float64 {
	if len(l.Coordinates) > 1 {
		return l.Coordinates[1]
	}
	return 0
}

// Store represents a directory listing owned by a user.
// Reviews is populated only by detail reads; it is a join, not stored state.
type Store struct {
	ID          string
	Name        string
	Slug        string
	Description string
	Tags        []string
	Created     time.Time
	Location    Location
	Photo       string
	Author      string
	Reviews     []Review
}

// Normalize trims whitespace on the free-text fields and drops empty tags.
func (s *Store) Normalize() {
	s.Name = strings.TrimSpace(s.Name)
	s.Description = strings.TrimSpace(s.Description)
	s.Location.Address = strings.TrimSpace(s.Location.Address)
	s.Photo = strings.TrimSpace(s.Photo)
	if s.Location.Type == "" {
		s.Location.Type = "Point"
	}
	tags := make([]string, 0, len(s.Tags))
	for _, tag := range s.Tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		tags = append(tags, tag)
	}
	s.Tags = tags
}

// Validate reports every field-level problem that must block a write.
func (s Store) Validate() error {
	verr := &ValidationError{}
	if strings.TrimSpace(s.Name) == "" {
		verr.Add("name", "store name is required")
	}
	if utf8.RuneCountInString(s.Description) > MaxDescriptionRunes {
		verr.Add("description", "description is too long")
	}
	if len(s.Location.Coordinates) != 2 {
		verr.Add("location.coordinates", "coordinates are required")
	} else {
		lng, lat := s.Location.Coordinates[0], s.Location.Coordinates[1]
		if lng < -180 || lng > 180 {
			verr.Add("location.coordinates", "longitude must be between -180 and 180")
		}
		if lat < -90 || lat > 90 {
			verr.Add("location.coordinates", "latitude must be between -90 and 90")
		}
	}
	if strings.TrimSpace(s.Location.Address) == "" {
		verr.Add("location.address", "address is required")
	}
	if strings.TrimSpace(s.Author) == "" {
		verr.Add("author", "author is required")
	}
	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}
