package network

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"simnet/internal/corpus"
	"simnet/internal/logging"
	"simnet/internal/textutil"
	"simnet/internal/tfidf"
)

// Builder computes edge sets over one immutable corpus. Token sets and TF-IDF
// vectors are built on first use and shared by every later invocation.
//
// A Builder is not safe for concurrent use by multiple goroutines; the
// WithWorkers fan-out happens inside a single invocation.
type Builder struct {
	ids     []string
	texts   []string
	blank   []bool
	sets    [][]string
	vectors *tfidf.Corpus

	workers int
	logger  *slog.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithWorkers evaluates pair rows on up to n goroutines. Values below 2 keep
// the loop sequential.
func WithWorkers(n int) Option {
	return func(b *Builder) {
		if n < 1 {
			n = 1
		}
		b.workers = n
	}
}

// WithLogger attaches a logger for per-edge-set summaries.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) { b.logger = logger }
}

// NewBuilder prepares c for matching.
func NewBuilder(c *corpus.Corpus, opts ...Option) *Builder {
	n := c.Len()
	b := &Builder{
		ids:     make([]string, n),
		texts:   make([]string, n),
		blank:   make([]bool, n),
		workers: 1,
	}
	for i := 0; i < n; i++ {
		b.ids[i] = c.At(i).ID
	}
	copy(b.texts, c.Texts())
	for i, text := range b.texts {
		b.blank[i] = textutil.IsBlank(text)
	}
	for _, opt := range opts {
		opt(b)
	}
	b.logger = logging.NewComponentLogger(b.logger, "network")
	return b
}

// Len returns the number of documents.
func (b *Builder) Len() int {
	return len(b.ids)
}

// ID returns the id of the document at position i.
func (b *Builder) ID(i int) string {
	return b.ids[i]
}

func (b *Builder) tokenSets() [][]string {
	if b.sets == nil {
		b.sets = make([][]string, len(b.texts))
		for i, text := range b.texts {
			b.sets[i] = textutil.TokenSet(text)
		}
	}
	return b.sets
}

func (b *Builder) tfidf() *tfidf.Corpus {
	if b.vectors == nil {
		b.vectors = tfidf.NewCorpus(b.texts)
	}
	if b.workers > 1 {
		b.vectors.Warm()
	}
	return b.vectors
}

// Run invokes a single matcher. Exact ignores param.
func (b *Builder) Run(ctx context.Context, model Model, param float64) (*EdgeSet, error) {
	if err := model.ValidateParameter(param); err != nil {
		return nil, err
	}
	switch model {
	case ModelExact:
		return b.Exact(ctx)
	case ModelBOW:
		return b.BOWCount(ctx, int(param))
	case ModelJaccard:
		return b.Jaccard(ctx, param)
	case ModelCosine:
		return b.Cosine(ctx, param)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownModel, string(model))
	}
}

func (b *Builder) build(ctx context.Context, model Model, param float64, match func(i, j int) bool) (*EdgeSet, error) {
	started := time.Now()
	pairs, err := collectPairs(ctx, len(b.ids), b.workers, match)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", model, err)
	}
	set := &EdgeSet{Model: model, Parameter: param, Edges: make([]Edge, len(pairs))}
	for k, p := range pairs {
		set.Edges[k] = Edge{Source: b.ids[p.j], Target: b.ids[p.i]}
	}
	b.logger.Debug("edge set built",
		logging.String(logging.FieldModel, set.Label()),
		logging.Int("documents", len(b.ids)),
		logging.Int("pairs", PairCount(len(b.ids))),
		logging.Int("edges", set.Len()),
		logging.Duration("elapsed", time.Since(started)),
	)
	return set, nil
}
