package search

import (
	"fmt"

	"github.com/katalvlaran/gridsearch/gridgraph"
)

// Func is the common signature of BFS, DFS and AStar.
type Func func(g gridgraph.Grid, start, end Coordinate, opts ...Option) (*Result, error)

// FuncFor returns the walker implementing alg.
func FuncFor(alg Algorithm) (Func, error) {
	switch alg {
	case AlgorithmBFS:
		return BFS, nil
	case AlgorithmDFS:
		return DFS, nil
	case AlgorithmAStar:
		return AStar, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
	}
}

// Search runs alg on a rows×cols grid from start to end.
// It is the single entry point the visualizer front end calls once per
// algorithm; each call allocates its own state and shares nothing with
// other calls.
func Search(alg Algorithm, start, end Coordinate, rows, cols int, opts ...Option) (*Result, error) {
	fn, err := FuncFor(alg)
	if err != nil {
		return nil, err
	}

	return fn(gridgraph.Grid{Rows: rows, Cols: cols}, start, end, opts...)
}

// Comparison holds one result slot per algorithm. A failed run leaves its
// Result nil and its error set; the other slots are unaffected.
type Comparison struct {
	BFS, DFS, AStar          *Result
	BFSErr, DFSErr, AStarErr error
}

// Result returns the slot for alg.
func (c *Comparison) Result(alg Algorithm) (*Result, error) {
	switch alg {
	case AlgorithmBFS:
		return c.BFS, c.BFSErr
	case AlgorithmDFS:
		return c.DFS, c.DFSErr
	case AlgorithmAStar:
		return c.AStar, c.AStarErr
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
	}
}

// Set stores res and err in the slot for alg. Unknown algorithms are ignored.
func (c *Comparison) Set(alg Algorithm, res *Result, err error) {
	switch alg {
	case AlgorithmBFS:
		c.BFS, c.BFSErr = res, err
	case AlgorithmDFS:
		c.DFS, c.DFSErr = res, err
	case AlgorithmAStar:
		c.AStar, c.AStarErr = res, err
	}
}

// Compare runs BFS, DFS and A* in that order on the same input, the way the
// visualizer's "run" action does. Runs are independent; options are applied
// to each run separately.
func Compare(g gridgraph.Grid, start, end Coordinate, opts ...Option) *Comparison {
	cmp := &Comparison{}
	for _, alg := range Algorithms {
		fn, _ := FuncFor(alg)
		res, err := fn(g, start, end, opts...)
		cmp.Set(alg, res, err)
	}

	return cmp
}
