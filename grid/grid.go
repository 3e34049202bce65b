// Package grid provides an immutable rectangular field of numeric cell
// values. It supports:
//
//   - Construction from 2D slices, coordinate lists, or gonum matrices
//   - Extraction of positive cells in deterministic row-major order
//   - Transposition for symmetry checks
//
// Indexing is cells[y][x]: X addresses the column, Y addresses the row.
package grid

// Grid is an immutable rectangular field of numeric cell values.
// Width counts columns, Height counts rows; the zero value is unusable,
// construct with New, FromCoords, or FromMatrix.
type Grid[T Value] struct {
	width, height int
	cells         [][]T
}

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func New[T Value](values [][]T) (*Grid[T], error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]T, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]T, w)
		copy(cells[y], values[y])
	}

	return &Grid[T]{width: w, height: h, cells: cells}, nil
}

// FromCoords builds a width×height integer grid holding 1 at every
// listed coordinate and 0 elsewhere. Duplicates are collapsed.
// Returns ErrEmptyGrid for non-positive dimensions and
// ErrCoordOutOfBounds when a coordinate falls outside them.
// Complexity: O(W×H + len(coords)) time, O(W×H) memory.
func FromCoords(width, height int, coords []Coord) (*Grid[int], error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]int, height)
	for y := 0; y < height; y++ {
		cells[y] = make([]int, width)
	}
	for _, c := range coords {
		if !c.In(width, height) {
			return nil, ErrCoordOutOfBounds
		}
		cells[c.Y][c.X] = 1
	}

	return &Grid[int]{width: width, height: height, cells: cells}, nil
}

// Width returns the number of columns.
// Complexity: O(1).
func (g *Grid[T]) Width() int {
	return g.width
}

// Height returns the number of rows.
// Complexity: O(1).
func (g *Grid[T]) Height() int {
	return g.height
}

// Dims returns (width, height).
// Complexity: O(1).
func (g *Grid[T]) Dims() (width, height int) {
	return g.width, g.height
}

// At returns the value stored at column x, row y.
// Indexing outside the grid panics like any slice access.
// Complexity: O(1).
func (g *Grid[T]) At(x, y int) T {
	return g.cells[y][x]
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// PositiveCells returns the coordinates of every cell whose value is
// strictly greater than zero, scanned row by row, left to right. The
// slice is freshly allocated; it is empty when no cell is positive.
// Complexity: O(W×H) time.
func (g *Grid[T]) PositiveCells() []Coord {
	var out []Coord
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y][x] > 0 {
				out = append(out, Coord{X: x, Y: y})
			}
		}
	}

	return out
}

// Transpose returns a new Grid with rows and columns exchanged: the
// value at column x, row y moves to column y, row x.
// Complexity: O(W×H) time and memory.
func (g *Grid[T]) Transpose() *Grid[T] {
	cells := make([][]T, g.width)
	for y := 0; y < g.width; y++ {
		cells[y] = make([]T, g.height)
		for x := 0; x < g.height; x++ {
			cells[y][x] = g.cells[x][y]
		}
	}

	return &Grid[T]{width: g.height, height: g.width, cells: cells}
}
