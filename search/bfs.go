package search

import "github.com/katalvlaran/gridsearch/gridgraph"

// bfsWalker adds the FIFO queue and enqueue-time visited flags.
type bfsWalker struct {
	*walker
	queue   []Coordinate
	visited []bool
}

// BFS runs breadth-first search on g from start until end is dequeued or
// the queue is exhausted.
//
// Coordinates are marked visited when enqueued, so none is enqueued twice;
// the trace is the dequeue order. Neighbors are expanded right, down, left,
// up. Every parent chain in the result is a shortest path in edge count.
//
// Returns ErrInvalidInput for bad bounds or endpoints, ErrOptionViolation
// for bad options, ErrMaxSteps or a wrapped OnVisit error when stopped early.
// Unreachable end is not an error: Result.Reached is false.
//
// Complexity: O(R·C) time and memory.
func BFS(g gridgraph.Grid, start, end Coordinate, opts ...Option) (*Result, error) {
	base, err := newWalker(AlgorithmBFS, g, start, end, opts)
	if err != nil {
		return nil, err
	}
	w := &bfsWalker{
		walker:  base,
		queue:   make([]Coordinate, 0, g.Size()),
		visited: make([]bool, g.Size()),
	}

	// Seed queue with start (no parent)
	w.enqueue(start)

	return w.res, w.loop()
}

// enqueue marks c visited and appends it to the queue.
func (w *bfsWalker) enqueue(c Coordinate) {
	w.visited[w.grid.Index(c)] = true
	w.queue = append(w.queue, c)
}

// loop processes the queue until end is dequeued, the queue empties, or a
// hook or limit stops the run.
func (w *bfsWalker) loop() error {
	for len(w.queue) > 0 {
		cur := w.queue[0]
		w.queue = w.queue[1:]

		done, err := w.visit(cur)
		if done {
			return err
		}
		w.enqueueNeighbors(cur)
	}

	return nil
}

// enqueueNeighbors enqueues every unseen, passable neighbor of cur and
// records cur as its parent.
func (w *bfsWalker) enqueueNeighbors(cur Coordinate) {
	for _, d := range gridgraph.Offsets4 {
		nbr := cur.Add(d)
		if !w.passable(cur, nbr) || w.visited[w.grid.Index(nbr)] {
			continue
		}
		w.res.Parent[nbr] = cur
		w.enqueue(nbr)
	}
}
