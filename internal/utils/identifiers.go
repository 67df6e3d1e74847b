package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s-]+`)
	whitespaceRun   = regexp.MustCompile(`[\s-]+`)
)

// Slugify derives a composer identifier from a display name: lowercased,
// non-alphanumerics stripped, whitespace collapsed to single hyphens.
// Deterministic and idempotent: Slugify(Slugify(x)) == Slugify(x).
func Slugify(name string) string {
	slug := strings.ToLower(name)
	slug = nonAlphanumeric.ReplaceAllString(slug, "")
	slug = whitespaceRun.ReplaceAllString(strings.TrimSpace(slug), "-")
	return slug
}

// WorkID composes the natural key for a Work. The catalog system is lowercased
// so "Op" and "op" land on the same row.
func WorkID(composerID, catalogSystem, catalogNumber string) string {
	return fmt.Sprintf("%s/%s-%s", composerID, strings.ToLower(catalogSystem), catalogNumber)
}

// MovementID composes the natural key for a Movement within a Work.
func MovementID(workID string, number int) string {
	return fmt.Sprintf("%s/%d", workID, number)
}
