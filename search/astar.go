package search

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/gridsearch/gridgraph"
)

// astarRunner holds the mutable state of a single A* execution.
type astarRunner struct {
	*walker
	gScore []int       // index → best known cost from start; math.MaxInt if unknown
	inOpen []*openItem // index → live heap entry, nil when not in the open set
	open   openSet     // min-heap on (fScore, insertion sequence)
	seq    int         // next insertion sequence number
}

// AStar runs A* on g with unit edge costs and the Manhattan heuristic,
// which is admissible and consistent on a 4-connected grid, so every parent
// chain it produces is a shortest path.
//
// The open set is a binary heap keyed by fScore; among equal fScores the
// coordinate inserted first is selected. When a neighbor's gScore improves
// while it is already open, its scores are refreshed in place (decrease-key)
// instead of inserting a duplicate. Each selected coordinate is appended to
// the trace once.
//
// Errors match BFS.
//
// Complexity: O(R·C·log(R·C)) time, O(R·C) memory.
func AStar(g gridgraph.Grid, start, end Coordinate, opts ...Option) (*Result, error) {
	base, err := newWalker(AlgorithmAStar, g, start, end, opts)
	if err != nil {
		return nil, err
	}
	r := &astarRunner{
		walker: base,
		gScore: make([]int, g.Size()),
		inOpen: make([]*openItem, g.Size()),
		open:   make(openSet, 0, g.Size()),
	}
	r.init()

	return r.res, r.process()
}

// init sets every gScore to +∞ and pushes start with g=0, f=h(start).
func (r *astarRunner) init() {
	for i := range r.gScore {
		r.gScore[i] = math.MaxInt
	}
	heap.Init(&r.open)
	r.gScore[r.grid.Index(r.start)] = 0
	r.push(r.start, gridgraph.Manhattan(r.start, r.end))
}

// push inserts c into the open set with the given fScore.
func (r *astarRunner) push(c Coordinate, f int) {
	item := &openItem{coord: c, f: f, seq: r.seq}
	r.seq++
	heap.Push(&r.open, item)
	r.inOpen[r.grid.Index(c)] = item
}

// process selects the lowest-f coordinate until end is selected or the
// open set is empty, relaxing the four neighbors of each selection.
func (r *astarRunner) process() error {
	for r.open.Len() > 0 {
		item := heap.Pop(&r.open).(*openItem)
		cur := item.coord
		ci := r.grid.Index(cur)
		r.inOpen[ci] = nil

		done, err := r.visit(cur)
		if done {
			return err
		}

		tentative := r.gScore[ci] + 1
		for _, d := range gridgraph.Offsets4 {
			nbr := cur.Add(d)
			if !r.passable(cur, nbr) {
				continue
			}
			ni := r.grid.Index(nbr)
			if tentative >= r.gScore[ni] {
				continue
			}
			r.res.Parent[nbr] = cur
			r.gScore[ni] = tentative
			f := tentative + gridgraph.Manhattan(nbr, r.end)
			if open := r.inOpen[ni]; open != nil {
				open.f = f
				heap.Fix(&r.open, open.index)
				continue
			}
			r.push(nbr, f)
		}
	}

	return nil
}
