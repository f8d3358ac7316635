package network

import (
	"context"

	"simnet/internal/textutil"
)

// BOWCount connects documents sharing at least minMatches distinct tokens.
func (b *Builder) BOWCount(ctx context.Context, minMatches int) (*EdgeSet, error) {
	if err := ModelBOW.ValidateParameter(float64(minMatches)); err != nil {
		return nil, err
	}
	sets := b.tokenSets()
	return b.build(ctx, ModelBOW, float64(minMatches), func(i, j int) bool {
		if b.blank[i] || b.blank[j] {
			return false
		}
		return textutil.IntersectionSize(sets[i], sets[j]) >= minMatches
	})
}

// Jaccard connects documents whose token sets overlap by at least threshold,
// measured as |A ∩ B| / |A ∪ B|.
func (b *Builder) Jaccard(ctx context.Context, threshold float64) (*EdgeSet, error) {
	if err := ModelJaccard.ValidateParameter(threshold); err != nil {
		return nil, err
	}
	sets := b.tokenSets()
	return b.build(ctx, ModelJaccard, threshold, func(i, j int) bool {
		if b.blank[i] || b.blank[j] {
			return false
		}
		return jaccard(sets[i], sets[j]) >= threshold
	})
}

// jaccard expects two non-empty sorted token sets.
func jaccard(a, b []string) float64 {
	shared := textutil.IntersectionSize(a, b)
	union := len(a) + len(b) - shared
	return float64(shared) / float64(union)
}
