package grid

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrCoordOutOfBounds indicates a coordinate outside the grid dimensions.
	ErrCoordOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrNilMatrix indicates a nil matrix was supplied.
	ErrNilMatrix = errors.New("grid: matrix is nil")
)
