package network

import "context"

// Cosine connects documents whose TF-IDF vectors have cosine similarity of at
// least threshold. Vectors are cached across calls.
func (b *Builder) Cosine(ctx context.Context, threshold float64) (*EdgeSet, error) {
	if err := ModelCosine.ValidateParameter(threshold); err != nil {
		return nil, err
	}
	vectors := b.tfidf()
	return b.build(ctx, ModelCosine, threshold, func(i, j int) bool {
		if b.blank[i] || b.blank[j] {
			return false
		}
		return vectors.Cosine(i, j) >= threshold
	})
}
