package search

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Sweep runs one Generator per parameter set with at most parallel
// searches at a time (parallel < 1 means no limit). Results are returned
// in input order. Random runs get distinct streams derived from the
// configured seed.
//
// The only error is the context's: once ctx is done, searches that have
// not started are skipped and their Result is left zero.
func Sweep(ctx context.Context, params []Params, parallel int, opts ...Option) ([]Result, error) {
	base := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&base)
		}
	}

	results := make([]Result, len(params))
	g, gctx := errgroup.WithContext(ctx)
	if parallel > 0 {
		g.SetLimit(parallel)
	}
	for i, p := range params {
		o := base
		if o.Random {
			o.Seed = deriveSeed(base.Seed, uint64(i))
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = newGenerator(p, o).Generate(gctx)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}

	return results, ctx.Err()
}
