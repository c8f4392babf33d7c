package domain

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "simple name", input: "Coffee Corner", expected: "coffee-corner"},
		{name: "already lower", input: "coffee", expected: "coffee"},
		{name: "punctuation collapses", input: "Maple & Thyme", expected: "maple-thyme"},
		{name: "leading and trailing junk", input: "  --Best!! Pizza--  ", expected: "best-pizza"},
		{name: "digits survive", input: "Store 24", expected: "store-24"},
		{name: "consecutive separators", input: "a   b---c", expected: "a-b-c"},
		{name: "empty", input: "", expected: ""},
		{name: "only punctuation", input: "!!!", expected: ""},
		{name: "accented letters kept", input: "Café Olé", expected: "café-olé"},
		{name: "non-latin letters kept", input: "カフェ 東京", expected: "カフェ-東京"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}

func TestSlugPattern(t *testing.T) {
	re := regexp.MustCompile("(?i)" + SlugPattern("coffee-corner"))

	assert.True(t, re.MatchString("coffee-corner"))
	assert.True(t, re.MatchString("coffee-corner-2"))
	assert.True(t, re.MatchString("coffee-corner-10"))
	assert.True(t, re.MatchString("Coffee-Corner"))
	assert.False(t, re.MatchString("coffee-corner-west"))
	assert.False(t, re.MatchString("coffee"))
	assert.False(t, re.MatchString("the-coffee-corner"))
}

func TestSlugPatternEscapesMeta(t *testing.T) {
	// QuoteMeta keeps a base containing regex specials from widening the match.
	re := regexp.MustCompile(SlugPattern("a.b"))
	assert.True(t, re.MatchString("a.b"))
	assert.False(t, re.MatchString("axb"))
}

func TestDeriveSlug(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		input    string
		expected string
	}{
		{
			name:     "no clash yields base",
			existing: []string{"other-store"},
			input:    "Coffee Corner",
			expected: "coffee-corner",
		},
		{
			name:     "single clash yields suffix two",
			existing: []string{"coffee-corner"},
			input:    "Coffee Corner",
			expected: "coffee-corner-2",
		},
		{
			name:     "suffixed clashes count toward n",
			existing: []string{"coffee-corner", "coffee-corner-2"},
			input:    "Coffee Corner",
			expected: "coffee-corner-3",
		},
		{
			name:     "clash match is case-insensitive",
			existing: []string{"Coffee-Corner"},
			input:    "Coffee Corner",
			expected: "coffee-corner-2",
		},
		{
			name:     "longer slugs sharing the prefix do not clash",
			existing: []string{"coffee-corner-west", "coffee-corner-annex"},
			input:    "Coffee Corner",
			expected: "coffee-corner",
		},
		{
			name:     "empty name yields empty slug",
			existing: []string{"whatever"},
			input:    "  !! ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DeriveSlug(tt.existing, tt.input))
		})
	}
}
