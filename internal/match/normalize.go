package match

import (
	"strings"
	"unicode"
)

// Normalize folds case and drops separators, so "Leaf", "LEAF" and "le_af"
// all compare equal.
func Normalize(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if r == '_' || r == '-' || unicode.IsSpace(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}
