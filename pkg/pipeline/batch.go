package pipeline

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ExecuteBatch runs Execute for every entry of opts with at most limit runs
// in flight (limit <= 0 uses GOMAXPROCS). Results are returned in input order.
// The first failure cancels the remaining runs; its error is returned together
// with whatever results completed.
func (r *Runner) ExecuteBatch(ctx context.Context, opts []Options, limit int) ([]*Result, error) {
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	results := make([]*Result, len(opts))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i := range opts {
		i := i
		g.Go(func() error {
			res, err := r.Execute(ctx, opts[i])
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	err := g.Wait()
	return results, err
}
