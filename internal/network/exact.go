package network

import "context"

// Exact connects every pair of documents whose texts are equal and not blank.
func (b *Builder) Exact(ctx context.Context) (*EdgeSet, error) {
	return b.build(ctx, ModelExact, 0, b.exactMatch)
}

func (b *Builder) exactMatch(i, j int) bool {
	if b.blank[i] || b.blank[j] {
		return false
	}
	return b.texts[i] == b.texts[j]
}
