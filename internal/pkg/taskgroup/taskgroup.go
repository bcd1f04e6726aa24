// Package taskgroup runs a fixed set of tasks concurrently and joins them
// as one unit: every task must succeed for the group to succeed.
package taskgroup

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Run launches fn(ctx, i) for i in [0, n) and waits for all of them.
// Results keep index order. If any task fails, the context handed to the
// others is cancelled, Run still waits for every task to return, and the
// first error is returned with no results.
func Run[T any](ctx context.Context, n int, fn func(ctx context.Context, i int) (T, error)) ([]T, error) {
	return RunLimit(ctx, -1, n, fn)
}

// RunLimit is Run with at most limit tasks in flight; limit < 1 means no cap.
func RunLimit[T any](ctx context.Context, limit, n int, fn func(ctx context.Context, i int) (T, error)) ([]T, error) {
	if n <= 0 {
		return []T{}, nil
	}

	eg, egCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		eg.SetLimit(limit)
	}

	results := make([]T, n)
	for i := 0; i < n; i++ {
		i := i
		eg.Go(func() error {
			v, err := fn(egCtx, i)
			if err != nil {
				return err
			}
			results[i] = v
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
