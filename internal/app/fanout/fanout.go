// Package fanout runs one function over many items with a cap on how many
// run at once, and returns a per-item outcome in input order.
package fanout

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome for one item: Value on success, Err otherwise.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for every item with at most limit calls in flight. A limit
// below 1 means no cap. Failures do not stop the other items.
//
// Once ctx is done, items that have not started record ctx.Err() without
// calling fn. Calls already running finish normally; fn decides whether to
// honor ctx. Run returns after every call has finished.
func Run[T, R any](ctx context.Context, limit int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	// errgroup only bounds concurrency here. Per-item failures land in
	// results, so every goroutine returns nil and Wait never reports one.
	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, item := range items {
		if err := ctx.Err(); err != nil {
			results[i].Err = err
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			v, err := fn(ctx, item)
			results[i] = Result[R]{Value: v, Err: err}
			return nil
		})
	}

	_ = g.Wait()
	return results
}
