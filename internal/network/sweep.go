package network

import (
	"context"
	"fmt"

	"simnet/internal/logging"
	"simnet/internal/textutil"
)

// Sweep runs model once per parameter and returns the edge sets in parameter
// order. Every parameter is validated before any work starts. Exact takes no
// parameter and always yields exactly one set.
func (b *Builder) Sweep(ctx context.Context, model Model, params []float64) ([]*EdgeSet, error) {
	if !model.Parameterized() {
		set, err := b.Exact(ctx)
		if err != nil {
			return nil, err
		}
		b.logSet(set)
		return []*EdgeSet{set}, nil
	}
	if len(params) == 0 {
		return nil, fmt.Errorf("%w: %s sweep has no parameters", ErrInvalidParameter, model)
	}
	for _, p := range params {
		if err := model.ValidateParameter(p); err != nil {
			return nil, err
		}
	}

	sets := make([]*EdgeSet, 0, len(params))
	for _, p := range params {
		set, err := b.Run(ctx, model, p)
		if err != nil {
			return nil, err
		}
		b.logSet(set)
		sets = append(sets, set)
	}
	return sets, nil
}

func (b *Builder) logSet(set *EdgeSet) {
	param := set.Model.FormatParameter(set.Parameter)
	if param == "" {
		param = "-"
	}
	b.logger.Info("edge set ready",
		logging.String(logging.FieldModel, string(set.Model)),
		logging.String("parameter", param),
		logging.Int("edges", set.Len()),
	)
}

// PairScores reports every model's raw score for one pair of documents.
type PairScores struct {
	Source      string
	Target      string
	SourceBlank bool
	TargetBlank bool
	Exact       bool
	Shared      int
	Jaccard     float64
	Cosine      float64
}

// Scores computes the raw scores behind every matcher for positions i and j.
// Blank documents score zero everywhere.
func (b *Builder) Scores(i, j int) PairScores {
	s := PairScores{
		Source:      b.ids[i],
		Target:      b.ids[j],
		SourceBlank: b.blank[i],
		TargetBlank: b.blank[j],
	}
	if i == j || s.SourceBlank || s.TargetBlank {
		return s
	}
	sets := b.tokenSets()
	s.Exact = b.exactMatch(i, j)
	s.Shared = textutil.IntersectionSize(sets[i], sets[j])
	s.Jaccard = jaccard(sets[i], sets[j])
	s.Cosine = b.tfidf().Cosine(i, j)
	return s
}
