// Package gridgraph defines core types and neighbor orders
// for the gridgraph package of github.com/katalvlaran/gridsearch.
package gridgraph

import "strconv"

// Default bounds of the visualizer grid.
const (
	DefaultRows = 20
	DefaultCols = 20
)

// Coordinate identifies a single grid cell. It is a value type; two
// coordinates are equal when both components are equal.
type Coordinate struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// At is shorthand for Coordinate{Row: row, Col: col}.
func At(row, col int) Coordinate {
	return Coordinate{Row: row, Col: col}
}

// Add returns c shifted by offset o.
func (c Coordinate) Add(o Offset) Coordinate {
	return Coordinate{Row: c.Row + o.DRow, Col: c.Col + o.DCol}
}

// String renders c as "row,col".
func (c Coordinate) String() string {
	return strconv.Itoa(c.Row) + "," + strconv.Itoa(c.Col)
}

// Offset is a unit step between 4-adjacent cells.
type Offset struct {
	DRow, DCol int
}

var (
	// Right, Down, Left and Up are the four orthogonal steps.
	Right = Offset{DRow: 0, DCol: 1}
	Down  = Offset{DRow: 1, DCol: 0}
	Left  = Offset{DRow: 0, DCol: -1}
	Up    = Offset{DRow: -1, DCol: 0}
)

// Offsets4 is the expansion order shared by every walker: right, down, left, up.
var Offsets4 = [4]Offset{Right, Down, Left, Up}

// ReverseOffsets4 is Offsets4 reversed. A LIFO walker pushing in this order
// pops neighbors in Offsets4 order.
var ReverseOffsets4 = [4]Offset{Up, Left, Down, Right}

// EdgeFilter reports whether the edge from→to may be traversed.
// A nil EdgeFilter allows every edge.
type EdgeFilter func(from, to Coordinate) bool

// Grid is an immutable R×C bounds description. Cells are never stored;
// adjacency is derived from coordinates.
type Grid struct {
	Rows, Cols int
}
