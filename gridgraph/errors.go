package gridgraph

import "errors"

var (
	// ErrInvalidDimensions indicates a grid with a non-positive row or column count.
	ErrInvalidDimensions = errors.New("gridgraph: rows and cols must be positive")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
	// ErrSameEndpoints indicates start and end refer to the same cell.
	ErrSameEndpoints = errors.New("gridgraph: start and end must differ")
)
