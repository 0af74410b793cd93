package dynamo

import (
	"context"
	"sync"
)

// DetectRange runs d over the start values lo..hi (inclusive) and returns one
// result per value in order. Work is split into contiguous chunks across
// workers; each slot of the output is written by exactly one goroutine.
func DetectRange(ctx context.Context, d *Detector, lo, hi Value, workers int) ([]Orbit, []bool, error) {
	if hi < lo {
		return nil, nil, nil
	}
	n := int(hi-lo) + 1
	orbits := make([]Orbit, n)
	found := make([]bool, n)

	err := ParallelFor(ctx, n, 256, workers, func(start, end int) {
		for i := start; i < end; i++ {
			orbits[i], found[i] = d.Detect(lo + Value(i))
		}
	})
	if err != nil {
		return nil, nil, err
	}
	return orbits, found, nil
}

// ParallelFor executes fn in parallel over the range [0, n). Ranges smaller
// than minChunk, or a single worker, run on the calling goroutine. The
// context is checked before each chunk starts.
func ParallelFor(ctx context.Context, n, minChunk, workers int, fn func(start, end int)) error {
	if minChunk < 1 {
		minChunk = 1
	}
	if n <= minChunk || workers <= 1 {
		for start := 0; start < n; start += minChunk {
			if err := ctx.Err(); err != nil {
				return err
			}
			fn(start, min(start+minChunk, n))
		}
		return ctx.Err()
	}

	if n/minChunk < workers {
		workers = n / minChunk
	}
	if workers < 1 {
		workers = 1
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := min(start+chunkSize, n)
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
	return ctx.Err()
}
