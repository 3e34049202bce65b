package grid

import "gonum.org/v1/gonum/mat"

// FromMatrix copies a gonum matrix into a float64 Grid. Matrix row i,
// column j lands at column j, row i, so mat and Grid agree on layout.
// Returns ErrNilMatrix for a nil matrix and ErrEmptyGrid when either
// dimension is zero.
// Complexity: O(W×H) time and memory.
func FromMatrix(m mat.Matrix) (*Grid[float64], error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	rows, cols := m.Dims()
	if rows == 0 || cols == 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		cells[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			cells[i][j] = m.At(i, j)
		}
	}

	return &Grid[float64]{width: cols, height: rows, cells: cells}, nil
}

// Dense copies g into a gonum dense matrix with Height rows and Width
// columns, converting every cell to float64.
// Complexity: O(W×H) time and memory.
func Dense[T Value](g *Grid[T]) *mat.Dense {
	d := mat.NewDense(g.height, g.width, nil)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			d.Set(y, x, float64(g.cells[y][x]))
		}
	}

	return d
}
