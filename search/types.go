// Package search defines the result type, tunable options and error
// definitions for the grid search walkers.
package search

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridsearch/gridgraph"
)

// Coordinate is re-exported so callers of this package rarely need to import gridgraph.
type Coordinate = gridgraph.Coordinate

// Sentinel errors for search execution.
var (
	// ErrInvalidInput wraps a violated caller-side precondition
	// (bad bounds, out-of-bounds endpoint, start == end).
	ErrInvalidInput = errors.New("search: invalid input")

	// ErrUnknownAlgorithm is returned for an Algorithm value or name outside BFS, DFS, A*.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrMaxSteps is returned when the trace hits the WithMaxSteps cap
	// before the end is reached. The partial result is returned with it.
	ErrMaxSteps = errors.New("search: step limit reached")
)

// Algorithm selects one of the three walkers.
type Algorithm int

const (
	// AlgorithmBFS is breadth-first search (FIFO queue, mark on enqueue).
	AlgorithmBFS Algorithm = iota
	// AlgorithmDFS is depth-first search (LIFO stack, mark on pop).
	AlgorithmDFS
	// AlgorithmAStar is A* with the Manhattan heuristic.
	AlgorithmAStar
)

// Algorithms lists every algorithm in the order the visualizer runs them.
var Algorithms = []Algorithm{AlgorithmBFS, AlgorithmDFS, AlgorithmAStar}

// String returns the short lowercase name: "bfs", "dfs" or "astar".
func (a Algorithm) String() string {
	switch a {
	case AlgorithmBFS:
		return "bfs"
	case AlgorithmDFS:
		return "dfs"
	case AlgorithmAStar:
		return "astar"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a case-insensitive name to an Algorithm.
// Accepted: "bfs", "dfs", "astar", "a*", "a-star".
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bfs":
		return AlgorithmBFS, nil
	case "dfs":
		return AlgorithmDFS, nil
	case "astar", "a*", "a-star":
		return AlgorithmAStar, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if a < AlgorithmBFS || a > AlgorithmAStar {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}

	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = parsed

	return nil
}

// Option configures a walker via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation
// when the walker is invoked.
type Option func(*Options)

// Options holds hooks and limits shared by all walkers.
type Options struct {
	// OnVisit is called after a coordinate is appended to the trace,
	// with its 0-based position. A non-nil error aborts the run.
	OnVisit func(c Coordinate, step int) error

	// FilterNeighbor can skip edges by returning false.
	// Called for each in-bounds edge current→neighbor.
	FilterNeighbor gridgraph.EdgeFilter

	// MaxSteps, if > 0, caps the trace length. 0 disables the cap.
	MaxSteps int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no hooks, no filtering and no step cap.
func DefaultOptions() Options {
	return Options{
		OnVisit:        nil,
		FilterNeighbor: nil,
		MaxSteps:       0,
	}
}

// WithOnVisit registers a hook run for every trace entry; returning an
// error from it stops the walker.
func WithOnVisit(fn func(c Coordinate, step int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithFilterNeighbor skips edges for which fn returns false.
func WithFilterNeighbor(fn gridgraph.EdgeFilter) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithMaxSteps caps the trace length.
//
//	n > 0: stop with ErrMaxSteps once the trace holds n entries without reaching end
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// Result holds the outcome of one walker run:
//   - Trace: coordinates in the order they were processed.
//   - Parent: coordinate → the coordinate it was reached from; start has no entry.
//   - Reached: whether End was processed.
//
// A Result is not modified after it is returned.
type Result struct {
	Algorithm Algorithm
	Start     Coordinate
	End       Coordinate
	Trace     []Coordinate
	Parent    map[Coordinate]Coordinate
	Reached   bool
}

// Path returns the start→end path, or nil when End was not reached.
func (r *Result) Path() []Coordinate {
	if r == nil || !r.Reached {
		return nil
	}

	return ReconstructPath(r.Parent, r.End)
}

// PathLength returns the number of coordinates on Path (edges + 1),
// or 0 when End was not reached.
func (r *Result) PathLength() int {
	return len(r.Path())
}

// Visited reports whether c appears in the trace.
func (r *Result) Visited(c Coordinate) bool {
	for _, t := range r.Trace {
		if t == c {
			return true
		}
	}

	return false
}
