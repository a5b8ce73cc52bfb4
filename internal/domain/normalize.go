package domain

import (
	"strings"
	"unicode"
)

// Slugify derives a URL slug from a track title:
//   - trims and lowercases
//   - letters and digits are kept
//   - every other run of characters becomes a single "-"
//
// Leading and trailing separators are dropped. An all-symbol title yields "".
func Slugify(title string) string {
	title = strings.ToLower(strings.TrimSpace(title))

	var b strings.Builder
	b.Grow(len(title))
	pendingDash := false
	for _, r := range title {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	return b.String()
}
