package search

import "github.com/katalvlaran/gridsearch/gridgraph"

// DFS runs depth-first search on g with an explicit stack.
//
// Visited is checked and marked on pop, so a coordinate may sit on the stack
// several times; stale copies are discarded when popped and the trace holds
// each coordinate at most once. Neighbors are pushed up, left, down, right,
// which pops them right, down, left, up.
//
// A neighbor's parent is recorded the first time it is pushed and never
// overwritten, even if a later push comes from a different cell. The
// reconstructed path is therefore a valid start→end walk but not always the
// route the stack actually followed, and never guaranteed shortest.
//
// Errors match BFS.
//
// Complexity: O(R·C) time; the stack holds at most 4·R·C entries.
func DFS(g gridgraph.Grid, start, end Coordinate, opts ...Option) (*Result, error) {
	w, err := newWalker(AlgorithmDFS, g, start, end, opts)
	if err != nil {
		return nil, err
	}

	visited := make([]bool, g.Size())
	stack := make([]Coordinate, 0, g.Size())
	stack = append(stack, start)

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		ci := g.Index(cur)
		if visited[ci] {
			continue
		}
		visited[ci] = true

		done, err := w.visit(cur)
		if done {
			return w.res, err
		}

		for _, d := range gridgraph.ReverseOffsets4 {
			nbr := cur.Add(d)
			if !w.passable(cur, nbr) || visited[g.Index(nbr)] {
				continue
			}
			// first writer wins
			if _, ok := w.res.Parent[nbr]; !ok {
				w.res.Parent[nbr] = cur
			}
			stack = append(stack, nbr)
		}
	}

	return w.res, nil
}
