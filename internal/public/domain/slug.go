package domain

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Slugify lower-cases a store name and hyphenates it into a URL-safe base
// slug. Letters and digits of any script are kept; everything else collapses
// into single hyphens.
func Slugify(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	pendingHyphen := false
	for _, r := range lower {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}

// SlugPattern returns the case-insensitive-ready regular expression source
// matching a base slug and its numeric disambiguation suffixes. The same
// pattern drives both DeriveSlug and the repository's slug scan.
func SlugPattern(base string) string {
	return "^(" + regexp.QuoteMeta(base) + ")(-[0-9]*)?$"
}

// DeriveSlug derives the slug for a store named name given the slugs already
// persisted for the same base. With no clashes it returns the base itself;
// otherwise it appends -<n+1> where n is the number of clashing slugs.
//
// Check-then-act: concurrent creations with the same base name can still
// produce duplicate slugs. Known gap, inherited deliberately.
func DeriveSlug(existing []string, name string) string {
	base := Slugify(name)
	if base == "" {
		return ""
	}
	re := regexp.MustCompile("(?i)" + SlugPattern(base))
	clashes := 0
	for _, slug := range existing {
		if re.MatchString(slug) {
			clashes++
		}
	}
	if clashes == 0 {
		return base
	}
	return fmt.Sprintf("%s-%d", base, clashes+1)
}
