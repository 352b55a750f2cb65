package fcm

import (
	"golang.org/x/sync/errgroup"
)

// forEachChunk calls fn(lo, hi) over [0,n) split into at most workers
// contiguous half-open ranges. With workers <= 1 (or n small) it runs fn(0,n)
// on the calling goroutine. The first non-nil error wins.
//
// Chunks never overlap, so kernels that write only indices in [lo,hi) are
// race-free and produce the same bits as the sequential path.
func forEachChunk(n, workers int, fn func(lo, hi int) error) error {
	if workers <= 1 || n <= 1 {
		return fn(0, n)
	}
	if workers > n {
		workers = n
	}

	chunk := (n + workers - 1) / workers
	var g errgroup.Group
	var lo int
	for lo = 0; lo < n; lo += chunk {
		lo, hi := lo, min(lo+chunk, n)
		g.Go(func() error {
			return fn(lo, hi)
		})
	}

	return g.Wait()
}
