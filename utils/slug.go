package utils

import (
	"strings"
	"unicode"
)

// Slugify lowercases the input and collapses every non-alphanumeric run into
// a single dash. Letters outside ASCII (Persian titles included) survive
// untouched so slugs stay readable.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastDash := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
		} else if !lastDash {
			b.WriteRune('-')
			lastDash = true
		}
	}
	return strings.Trim(b.String(), "-")
}
