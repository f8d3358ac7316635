package network

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// pair holds two corpus positions with j < i.
type pair struct {
	i, j int
}

// PairCount returns the number of unordered pairs over n documents.
func PairCount(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}

// collectPairs enumerates every unordered pair (i, j), j < i, exactly once and
// returns those accepted by match, ordered by i then j. With workers > 1 rows
// are evaluated concurrently; match must then be safe for concurrent use.
// Cancellation is checked between rows.
func collectPairs(ctx context.Context, n, workers int, match func(i, j int) bool) ([]pair, error) {
	if n < 2 {
		return nil, nil
	}
	if workers <= 1 {
		var out []pair
		for i := 1; i < n; i++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			for j := 0; j < i; j++ {
				if match(i, j) {
					out = append(out, pair{i: i, j: j})
				}
			}
		}
		return out, nil
	}

	rows := make([][]pair, n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 1; i < n; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			var row []pair
			for j := 0; j < i; j++ {
				if match(i, j) {
					row = append(row, pair{i: i, j: j})
				}
			}
			rows[i] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	total := 0
	for _, row := range rows {
		total += len(row)
	}
	out := make([]pair, 0, total)
	for _, row := range rows {
		out = append(out, row...)
	}
	return out, nil
}
