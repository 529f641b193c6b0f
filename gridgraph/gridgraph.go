// Package gridgraph provides utilities to treat an R×C grid as an implicit
// graph with 4-connectivity. It supports:
//
//   - Bounds checks and packed row-major indexing
//   - Deterministic neighbor enumeration (right, down, left, up)
//   - Endpoint validation for search requests
//   - Connected components under an optional edge filter
package gridgraph

import (
	"fmt"
	"math"
)

// NewGrid constructs a Grid with the given bounds.
// Returns ErrInvalidDimensions if rows or cols is not positive, or if
// rows*cols does not fit in an int.
// Complexity: O(1).
func NewGrid(rows, cols int) (Grid, error) {
	if err := checkDimensions(rows, cols); err != nil {
		return Grid{}, err
	}

	return Grid{Rows: rows, Cols: cols}, nil
}

// checkDimensions rejects non-positive bounds and bounds whose packed key
// space rows*cols overflows int.
func checkDimensions(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, rows, cols)
	}
	if rows > math.MaxInt/cols {
		return fmt.Errorf("%w: %dx%d overflows the cell index", ErrInvalidDimensions, rows, cols)
	}

	return nil
}

// Default returns the DefaultRows×DefaultCols grid.
func Default() Grid {
	return Grid{Rows: DefaultRows, Cols: DefaultCols}
}

// InBounds reports whether c lies within [0,Rows)×[0,Cols).
// Complexity: O(1).
func (g Grid) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

// Size returns the number of cells, Rows×Cols.
func (g Grid) Size() int {
	return g.Rows * g.Cols
}

// Index maps c to its row-major key: Row*Cols + Col.
// The caller must ensure c is in bounds.
// Complexity: O(1).
func (g Grid) Index(c Coordinate) int {
	return c.Row*g.Cols + c.Col
}

// CoordinateAt converts a row-major key back to a Coordinate.
// Complexity: O(1).
func (g Grid) CoordinateAt(idx int) Coordinate {
	return Coordinate{Row: idx / g.Cols, Col: idx % g.Cols}
}

// Neighbors returns the in-bounds neighbors of c in Offsets4 order,
// skipping edges rejected by filter.
func (g Grid) Neighbors(c Coordinate, filter EdgeFilter) []Coordinate {
	out := make([]Coordinate, 0, len(Offsets4))
	for _, d := range Offsets4 {
		n := c.Add(d)
		if !g.InBounds(n) {
			continue
		}
		if filter != nil && !filter(c, n) {
			continue
		}
		out = append(out, n)
	}

	return out
}

// Validate checks the caller-side preconditions of a search request:
// positive bounds whose product fits in an int, both endpoints in bounds,
// and start != end.
func (g Grid) Validate(start, end Coordinate) error {
	if err := checkDimensions(g.Rows, g.Cols); err != nil {
		return err
	}
	if !g.InBounds(start) {
		return fmt.Errorf("%w: start (%s) outside %dx%d", ErrOutOfBounds, start, g.Rows, g.Cols)
	}
	if !g.InBounds(end) {
		return fmt.Errorf("%w: end (%s) outside %dx%d", ErrOutOfBounds, end, g.Rows, g.Cols)
	}
	if start == end {
		return fmt.Errorf("%w: both at (%s)", ErrSameEndpoints, start)
	}

	return nil
}

// Manhattan returns |Δrow| + |Δcol| between a and b.
func Manhattan(a, b Coordinate) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

// Adjacent reports whether a and b are 4-adjacent.
func Adjacent(a, b Coordinate) bool {
	return Manhattan(a, b) == 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
