package tree

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// defaultSlug prefixes ids of nodes without a category.
const defaultSlug = "skill"

// NewID returns a collision-free node id of the form "<slug>-<uuid>".
// The slug is derived from category so ids stay readable in exports.
func NewID(category string) string {
	return Slug(category) + "-" + uuid.NewString()
}

// Slug lowercases s and replaces every run of non-alphanumeric characters
// with a single dash. An empty result falls back to "skill".
func Slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	out := strings.TrimSuffix(b.String(), "-")
	if out == "" {
		return defaultSlug
	}
	return out
}
