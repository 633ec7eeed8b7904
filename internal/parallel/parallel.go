// SPDX-License-Identifier: MIT

// Package parallel runs bulk data-parallel work over disjoint index ranges.
//
// Each index is visited by exactly one goroutine, so callers may write one
// output slot per index without locking. Work is split into at most
// `workers` contiguous chunks scheduled through an errgroup; the first error
// cancels the chunks that have not yet finished and is returned as-is.
package parallel

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// For calls fn(i) for every i in [0, n) using at most workers goroutines.
// workers < 1 is treated as 1. Complexity: O(n) calls to fn.
func For(n, workers int, fn func(i int)) {
	_ = ForErr(n, workers, func(i int) error {
		fn(i)

		return nil
	})
}

// ForErr is For with a failure channel. The returned error is the first one
// produced by fn; remaining indices may be skipped once it occurs.
func ForErr(n, workers int, fn func(i int) error) error {
	if n <= 0 {
		return nil
	}
	workers = clamp(workers, n)

	// Inline path: no goroutines, deterministic 0..n-1 order.
	if workers == 1 {
		for i := 0; i < n; i++ {
			if err := fn(i); err != nil {
				return err
			}
		}

		return nil
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(workers)

	chunk := (n + workers - 1) / workers
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err // a sibling already failed; its error wins in Wait
				}
				if err := fn(i); err != nil {
					return err
				}
			}

			return nil
		})
	}

	return g.Wait()
}

// clamp bounds workers to [1, n].
func clamp(workers, n int) int {
	if workers < 1 {
		return 1
	}
	if workers > n {
		return n
	}

	return workers
}
