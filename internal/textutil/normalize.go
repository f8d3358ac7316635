package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// NormalizeComment folds case and collapses every run of characters that are
// neither letters nor digits into a single space. The result has no leading or
// trailing whitespace.
func NormalizeComment(text string) string {
	folded := cases.Fold().String(text)
	var b strings.Builder
	b.Grow(len(folded))
	pendingSpace := false
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(r)
			continue
		}
		pendingSpace = true
	}
	return b.String()
}

// CollapseWhitespace replaces every whitespace run (including tabs and
// newlines) with a single space and trims the ends.
func CollapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
