// Package manhattan counts how many distinct cells of a grid lie within
// Manhattan (L1) distance of its positive cells.
//
// What:
//
//   - Neighborhood builds the L1 ball around one center, minus the center,
//     from a single quadrant and four reflections.
//   - Count unions all per-center neighborhoods, adds the centers back,
//     and returns the number of distinct covered cells.
//   - Covered returns the covered cells themselves, sorted row-major.
//   - Boundary policy: clip at the edge (default) or fold onto a torus
//     (WithWraparound).
//   - WithWorkers fans neighborhood generation across goroutines; results
//     are identical to sequential execution for every input.
//
// Why:
//
//   - Influence maps: how much area a set of units or sensors reaches.
//   - Epidemic / diffusion reach: cells touched within n steps.
//   - Toroidal worlds: coverage on wrap-around maps without edge bias.
//
// Complexity:
//
//   - Neighborhood: O(r²) time and memory per center.
//   - Count / Covered: O(P·r²) time for P positive cells; Covered adds an
//     O(n log n) sort of the n covered cells.
//
// Options:
//
//   - WithWraparound: fold coverage onto the torus instead of pruning.
//   - WithWorkers(n): generate neighborhoods on n goroutines (default 1).
//   - WithContext(ctx): cooperative cancellation between centers.
//
// Errors:
//
//   - ErrNilGrid: a nil grid pointer was passed.
//   - ErrNegativeRadius: radius below zero (radius 0 is valid and covers
//     exactly the centers).
//   - ErrOptionViolation: an invalid Option value was supplied.
package manhattan
