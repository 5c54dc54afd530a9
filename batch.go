package cratedigger

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// OpenCrates opens multiple crate files concurrently.
//
// Each decode owns its own buffer and produces its own tree, so crates
// are parsed in parallel with up to runtime.NumCPU() goroutines and no
// coordination. Results are returned in the same order as the input
// paths.
//
// If any file fails to open, an error naming the failed path is
// returned. For batch operations that should continue past individual
// failures, open files one at a time and count per-file results instead.
func OpenCrates(ctx context.Context, paths ...string) ([]*Crate, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*Crate, len(paths))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			crate, err := OpenCrate(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = crate
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
