package utils

import (
	"regexp"
	"strings"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9-]+`)
	slugHyphenRuns   = regexp.MustCompile(`-+`)
)

// GenerateSlug normalizes input into a URL-safe slug:
// lowercase, spaces to hyphens, strip everything outside [a-z0-9-],
// collapse hyphen runs, trim leading/trailing hyphens.
// Returns "" when nothing alphanumeric survives.
func GenerateSlug(input string) string {
	slug := strings.ToLower(input)
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = slugInvalidChars.ReplaceAllString(slug, "")
	slug = slugHyphenRuns.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
