package textutil

import (
	"sort"
	"strings"
)

// IsBlank reports whether text is empty after trimming Unicode whitespace.
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}

// Tokenize splits text on runs of Unicode whitespace. Order and repeats are
// preserved.
func Tokenize(text string) []string {
	return strings.Fields(text)
}

// TokenSet returns the distinct tokens of text in ascending order.
func TokenSet(text string) []string {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return nil
	}
	sort.Strings(tokens)
	out := tokens[:1]
	for _, token := range tokens[1:] {
		if token != out[len(out)-1] {
			out = append(out, token)
		}
	}
	return out
}

// IntersectionSize counts the tokens shared by two sets produced by TokenSet.
// Both inputs must be sorted and free of duplicates.
func IntersectionSize(a, b []string) int {
	var i, j, shared int
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			shared++
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return shared
}
