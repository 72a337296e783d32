package models

import (
	"regexp"
	"strings"
)

var (
	slugInvalid = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpaces  = regexp.MustCompile(`\s+`)
	slugHyphens = regexp.MustCompile(`-+`)
)

// Slugify derives a URL-safe slug from a display name: lowercase, trimmed,
// invalid characters stripped, whitespace runs and repeated hyphens collapsed
// to a single hyphen. Idempotent.
func Slugify(name string) string {
	s := strings.TrimSpace(strings.ToLower(name))
	s = slugInvalid.ReplaceAllString(s, "")
	s = slugSpaces.ReplaceAllString(s, "-")
	s = slugHyphens.ReplaceAllString(s, "-")
	return s
}
