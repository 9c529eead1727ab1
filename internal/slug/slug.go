// Package slug provides URL-friendly slug generation from arbitrary strings.
package slug

import (
	"regexp"
	"strings"
)

// nonAlphanumeric matches runs of anything that isn't a lowercase letter or digit.
var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Make creates a URL-friendly slug from the given string: lowercased, with
// every run of non-alphanumeric characters collapsed to a single hyphen and
// leading/trailing hyphens stripped.
// Example: "Tech Notes!!" -> "tech-notes"
func Make(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = nonAlphanumeric.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}
