package search

import (
	"fmt"

	"github.com/katalvlaran/gridsearch/gridgraph"
)

// walker holds the state every algorithm shares: bounds, endpoints,
// options and the result being filled in.
type walker struct {
	grid  gridgraph.Grid
	start Coordinate
	end   Coordinate
	opts  Options
	res   *Result
}

// newWalker validates input and options and returns a walker with an
// empty result sized for the grid.
func newWalker(alg Algorithm, g gridgraph.Grid, start, end Coordinate, opts []Option) (*walker, error) {
	if err := g.Validate(start, end); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.Size()
	return &walker{
		grid:  g,
		start: start,
		end:   end,
		opts:  o,
		res: &Result{
			Algorithm: alg,
			Start:     start,
			End:       end,
			Trace:     make([]Coordinate, 0, n),
			Parent:    make(map[Coordinate]Coordinate, n),
		},
	}, nil
}

// passable reports whether the edge from→to exists: to is in bounds and
// the neighbor filter accepts it.
func (w *walker) passable(from, to Coordinate) bool {
	if !w.grid.InBounds(to) {
		return false
	}
	if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(from, to) {
		return false
	}

	return true
}

// visit appends c to the trace and runs OnVisit. It reports done when c is
// the end, and ErrMaxSteps when the step cap is hit first.
func (w *walker) visit(c Coordinate) (done bool, err error) {
	w.res.Trace = append(w.res.Trace, c)
	step := len(w.res.Trace) - 1
	if w.opts.OnVisit != nil {
		if err = w.opts.OnVisit(c, step); err != nil {
			return true, fmt.Errorf("search: %s OnVisit error at (%s): %w", w.res.Algorithm, c, err)
		}
	}
	if c == w.end {
		w.res.Reached = true
		return true, nil
	}
	if w.opts.MaxSteps > 0 && len(w.res.Trace) >= w.opts.MaxSteps {
		return true, fmt.Errorf("%w: %s stopped after %d steps", ErrMaxSteps, w.res.Algorithm, w.opts.MaxSteps)
	}

	return false, nil
}
