package api

import (
	"github.com/katalvlaran/gridsearch/search"
)

// searchRequest is the body of POST /api/search and POST /api/compare.
// Rows and Cols fall back to the server's configured grid when zero.
type searchRequest struct {
	Algorithm string             `json:"algorithm"`
	Start     *search.Coordinate `json:"start"`
	End       *search.Coordinate `json:"end"`
	Rows      int                `json:"rows"`
	Cols      int                `json:"cols"`
}

// resultResponse is the wire form of one search.Result.
// Path is empty and PathLength zero when the end was not reached.
type resultResponse struct {
	Algorithm   string              `json:"algorithm"`
	Reached     bool                `json:"reached"`
	Trace       []search.Coordinate `json:"trace"`
	Path        []search.Coordinate `json:"path"`
	TraceLength int                 `json:"trace_length"`
	PathLength  int                 `json:"path_length"`
}

// slotResponse is one algorithm's entry in a compare response: either the
// result fields or an error message.
type slotResponse struct {
	*resultResponse
	Error string `json:"error,omitempty"`
}

type compareResponse struct {
	BFS   slotResponse `json:"bfs"`
	DFS   slotResponse `json:"dfs"`
	AStar slotResponse `json:"astar"`
}

func newResultResponse(res *search.Result) *resultResponse {
	path := res.Path()
	if path == nil {
		path = []search.Coordinate{}
	}
	trace := res.Trace
	if trace == nil {
		trace = []search.Coordinate{}
	}

	return &resultResponse{
		Algorithm:   res.Algorithm.String(),
		Reached:     res.Reached,
		Trace:       trace,
		Path:        path,
		TraceLength: len(trace),
		PathLength:  len(path),
	}
}

func newSlotResponse(res *search.Result, err error) slotResponse {
	if err != nil {
		return slotResponse{Error: err.Error()}
	}

	return slotResponse{resultResponse: newResultResponse(res)}
}
