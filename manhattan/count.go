// Package manhattan implements L1 coverage counting: the number of
// distinct cells within Manhattan distance radius of at least one
// positive cell of a grid, with boundary pruning or toroidal folding.
package manhattan

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridcover/grid"
)

// Count returns the number of distinct cells lying within L1 distance
// radius of at least one positive cell of g. The positive cells
// themselves are always part of the coverage. By default coverage is
// clipped at the grid edge; WithWraparound folds it onto the torus
// instead. A grid with no positive cells counts 0 for any radius.
//
// Returns ErrNilGrid, ErrNegativeRadius, ErrOptionViolation, or the
// context's error on cancellation.
// Complexity: O(P·r²) time for P positive cells.
func Count[T grid.Value](g *grid.Grid[T], radius int, opts ...Option) (int, error) {
	covered, err := cover(g, radius, opts)
	if err != nil {
		return 0, err
	}

	return covered.Len(), nil
}

// Covered returns the covered cells themselves, sorted row-major
// (Y first, then X). Validation and coverage semantics are identical to
// Count; len(Covered(...)) always equals Count(...).
// Complexity: O(P·r² + n log n) for n covered cells.
func Covered[T grid.Value](g *grid.Grid[T], radius int, opts ...Option) ([]grid.Coord, error) {
	covered, err := cover(g, radius, opts)
	if err != nil {
		return nil, err
	}

	return covered.Coords(), nil
}

// cover validates inputs, unions every per-center neighborhood with the
// centers themselves, and folds the union when wraparound is requested.
func cover[T grid.Value](g *grid.Grid[T], radius int, opts []Option) (grid.CoordSet, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if radius < 0 {
		return nil, fmt.Errorf("%w (%d)", ErrNegativeRadius, radius)
	}

	centers := g.PositiveCells()
	if len(centers) == 0 {
		return grid.NewCoordSet(0), nil
	}

	width, height := g.Dims()
	// Wraparound keeps spilled coordinates for the folding pass;
	// otherwise they are pruned at the edge.
	prune := !o.Wraparound

	union := grid.NewCoordSet(len(centers) + ballSize(radius))
	var err error
	if o.Workers > 1 && len(centers) > 1 {
		err = fanOut(o, centers, radius, width, height, prune, union)
	} else {
		err = generate(o.Ctx, centers, radius, width, height, prune, union)
	}
	if err != nil {
		return nil, err
	}

	for _, c := range centers {
		union.Add(c)
	}
	if o.Wraparound {
		union = union.Fold(width, height)
	}

	return union, nil
}

// generate emits every center's neighborhood into union on the calling
// goroutine, checking for cancellation once per center.
func generate(ctx context.Context, centers []grid.Coord, radius, width, height int, prune bool, union grid.CoordSet) error {
	for _, c := range centers {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		emit(union, c, radius, width, height, prune)
	}

	return nil
}

// fanOut splits the centers into contiguous chunks, one per worker,
// builds partial coverage sets concurrently, and merges them into
// union. Set union is commutative and associative, so the merged result
// is identical to sequential generation for every input.
func fanOut(o Options, centers []grid.Coord, radius, width, height int, prune bool, union grid.CoordSet) error {
	workers := o.Workers
	if workers > len(centers) {
		workers = len(centers)
	}
	chunk := (len(centers) + workers - 1) / workers

	parts := make([]grid.CoordSet, workers)
	eg, ctx := errgroup.WithContext(o.Ctx)
	for i := 0; i < workers; i++ {
		i := i // pin per iteration: captured by the goroutine below (pre-1.22 loop semantics)
		lo := i * chunk
		hi := lo + chunk
		if hi > len(centers) {
			hi = len(centers)
		}
		if lo >= hi {
			break
		}
		eg.Go(func() error {
			part := grid.NewCoordSet((hi - lo) * ballSize(radius))
			if err := generate(ctx, centers[lo:hi], radius, width, height, prune, part); err != nil {
				return err
			}
			parts[i] = part

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	for _, part := range parts {
		union.Merge(part)
	}

	return nil
}
