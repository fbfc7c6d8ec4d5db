package transcript

import (
	"regexp"
	"strings"
	"unicode"
)

var whitespaceRE = regexp.MustCompile(`\s+`)

// CollapseWhitespace reduces all whitespace runs to single spaces and
// trims the result.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(s, " "))
}

// Normalize canonicalizes text for comparison: case-folded, everything
// that is neither a word character nor whitespace stripped, whitespace
// collapsed. Applied identically to queries and candidate windows so
// comparisons are symmetric. Idempotent.
func Normalize(s string) string {
	s = strings.ToLower(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '_':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	return CollapseWhitespace(b.String())
}
