// Package grid stores rectangular 2D numeric fields and the coordinate
// machinery used to reason about cells, distances, and cell sets.
//
// What:
//
//   - Grid[T] wraps a rectangular [][]T of any numeric element type,
//     deep-copied and validated at construction.
//   - Coord identifies a cell by column (X) and row (Y) and offers L1
//     distance, bounds testing, and toroidal wrapping.
//   - CoordSet is a deduplicating set of coordinates with merge and
//     torus-fold operations.
//   - PositiveCells extracts every cell with value strictly above zero,
//     in deterministic row-major order.
//   - FromMatrix / Dense bridge to and from gonum dense matrices.
//
// Why:
//
//   - Coverage analysis: which cells of a field hold activity, and where.
//   - Toroidal worlds: wrap coordinates instead of clipping at the edge.
//   - Interop: feed numeric matrices straight in, or hand grids to gonum.
//
// Complexity:
//
//   - New / FromCoords / FromMatrix / Dense / Transpose: O(W×H) time and memory.
//   - PositiveCells: O(W×H) time.
//   - Coord.L1 / Coord.In / Coord.Wrap: O(1).
//   - CoordSet.Add / Has / Len: O(1); Merge / Fold: O(n); Coords: O(n log n).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrCoordOutOfBounds: a coordinate falls outside the requested dimensions.
//   - ErrNilMatrix: a nil gonum matrix was supplied.
package grid
