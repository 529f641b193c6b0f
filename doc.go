// Package gridsearch is the engine behind a grid search visualizer: it runs
// breadth-first search, depth-first search and A* on the same R×C grid
// (20×20 by default) with four-directional movement and reports, per
// algorithm, the order in which cells were processed and the path found.
//
// What is in the module?
//
//	gridgraph/ the grid as an implicit graph: Coordinate, bounds, packed
//	           keys, neighbor order, endpoint validation, components
//	search/    BFS, DFS, A*, path reconstruction, Search and Compare
//	internal/  server configuration, metrics, middleware and HTTP handlers
//	cmd/       gridsearch (CLI) and gridsearch-server (HTTP for the UI)
//
// Quick ASCII example, BFS from S to E on a 3×3 grid:
//
//	+---+
//	|S*E|
//	|.  |
//	|   |
//	+---+
//	bfs: trace=4 path=3
//
// Every walker expands neighbors right, down, left, up, so identical input
// always gives identical traces. The core packages carry no dependencies
// beyond the standard library; rendering and animation belong to the caller.
//
//	go get github.com/katalvlaran/gridsearch
package gridsearch
