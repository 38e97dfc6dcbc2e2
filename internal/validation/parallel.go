package validation

import (
	"context"
	"golang.org/x/sync/errgroup"
	"runtime"
)

// ValidateBatchParallel is ValidateBatch split into contiguous chunks that
// are validated concurrently. Every chunk writes only its own range of the
// result slice.
func ValidateBatchParallel(ctx context.Context, identifiers []string, workers int) ([]bool, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]bool, len(identifiers))
	if len(identifiers) == 0 {
		return results, nil
	}

	chunk := (len(identifiers) + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for start := 0; start < len(identifiers); start += chunk {
		if gctx.Err() != nil {
			break
		}

		start, end := start, min(start+chunk, len(identifiers))

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			for i := start; i < end; i++ {
				results[i] = IsValid(identifiers[i])
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
