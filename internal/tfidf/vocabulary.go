package tfidf

// Vocabulary is a bijection between tokens and dense indices [0, Len()).
type Vocabulary struct {
	index  map[string]int
	tokens []string
}

func newVocabulary() *Vocabulary {
	return &Vocabulary{index: make(map[string]int)}
}

// add returns the index of token, assigning the next free index on first sight.
func (v *Vocabulary) add(token string) int {
	if idx, ok := v.index[token]; ok {
		return idx
	}
	idx := len(v.tokens)
	v.index[token] = idx
	v.tokens = append(v.tokens, token)
	return idx
}

// Index returns the index assigned to token.
func (v *Vocabulary) Index(token string) (int, bool) {
	if v == nil {
		return 0, false
	}
	idx, ok := v.index[token]
	return idx, ok
}

// Token returns the token stored at idx, or "" when idx is out of range.
func (v *Vocabulary) Token(idx int) string {
	if v == nil || idx < 0 || idx >= len(v.tokens) {
		return ""
	}
	return v.tokens[idx]
}

// Len returns the number of distinct tokens.
func (v *Vocabulary) Len() int {
	if v == nil {
		return 0
	}
	return len(v.tokens)
}
