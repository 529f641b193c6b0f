// Package search implements the three grid walkers of the visualizer:
// breadth-first search, depth-first search and A*, plus path reconstruction.
//
// What
//
//   - BFS, DFS and AStar share one signature (Func) and one output (Result):
//   - Trace:   coordinates in processing order, each at most once
//   - Parent:  coordinate → predecessor; the start has no entry
//   - Reached: whether the end was processed
//   - Search dispatches on an Algorithm value; Compare runs all three.
//   - ReconstructPath turns a parent map into a start→end path.
//
// Determinism
//
//	Every walker expands neighbors right, down, left, up (DFS pushes them in
//	reverse so it pops them in that order). A* breaks fScore ties by
//	insertion order. Identical input always yields identical traces.
//
// Per-algorithm bookkeeping
//
//   - BFS marks visited on enqueue; parents give shortest paths.
//   - DFS marks visited on pop; the first recorded parent of a cell is kept.
//   - A* keeps gScore per cell and decreases keys in place; parents give
//     shortest paths under unit cost.
//
// Complexity (N = rows × cols)
//
//   - BFS, DFS: O(N) time and memory.
//   - AStar:    O(N log N) time, O(N) memory.
//
// Usage
//
//	res, err := search.Search(search.AlgorithmAStar, gridgraph.At(0, 0), gridgraph.At(19, 19), 20, 20)
//	if err != nil {
//		// ErrInvalidInput, ErrUnknownAlgorithm, ErrOptionViolation, ErrMaxSteps or a hook error
//	}
//	if !res.Reached {
//		// render "not found"
//	}
//	path := res.Path()
//
// Options
//
//   - WithOnVisit(fn):        hook per trace entry; returning an error aborts.
//   - WithFilterNeighbor(fn): skip edges for which fn(from, to) == false.
//   - WithMaxSteps(n):        stop with ErrMaxSteps after n trace entries.
//
// Errors
//
//   - ErrInvalidInput     wraps gridgraph.ErrInvalidDimensions, ErrOutOfBounds, ErrSameEndpoints.
//   - ErrUnknownAlgorithm for an Algorithm outside BFS, DFS, A*.
//   - ErrOptionViolation  for invalid options (negative MaxSteps).
//   - ErrMaxSteps         when the step cap is hit; the partial Result is returned.
//   - Wrapped OnVisit errors; the partial Result is returned.
//
// An unreachable end is not an error: Reached is false and Path is nil.
package search
