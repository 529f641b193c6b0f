package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/internal/metrics"
	"github.com/katalvlaran/gridsearch/search"
)

// SearchHandler serves the search and compare endpoints.
type SearchHandler struct {
	grid     gridgraph.Grid
	maxCells int
	log      *logrus.Logger
}

// NewSearchHandler creates a SearchHandler. grid supplies the bounds used
// when a request omits rows/cols; maxCells caps rows*cols per request.
func NewSearchHandler(grid gridgraph.Grid, maxCells int, log *logrus.Logger) *SearchHandler {
	return &SearchHandler{grid: grid, maxCells: maxCells, log: log}
}

// Search handles POST /api/search.
func (h *SearchHandler) Search(c *gin.Context) {
	req, g, ok := h.bind(c)
	if !ok {
		return
	}

	alg, err := search.ParseAlgorithm(req.Algorithm)
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	res, err := search.Search(alg, *req.Start, *req.End, g.Rows, g.Cols)
	if err != nil {
		h.respondSearchError(c, alg, err)

		return
	}
	observe(res)

	c.JSON(http.StatusOK, newResultResponse(res))
}

// Compare handles POST /api/compare. The three algorithms run in parallel on
// independent state; a failure in one is reported in its slot only.
func (h *SearchHandler) Compare(c *gin.Context) {
	req, g, ok := h.bind(c)
	if !ok {
		return
	}

	if err := g.Validate(*req.Start, *req.End); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	cmp := runParallel(g, *req.Start, *req.End)
	for _, alg := range search.Algorithms {
		if res, err := cmp.Result(alg); err != nil {
			h.log.WithError(err).WithField("algorithm", alg.String()).Warn("compare: run failed")
		} else {
			observe(res)
		}
	}

	c.JSON(http.StatusOK, compareResponse{
		BFS:   newSlotResponse(cmp.BFS, cmp.BFSErr),
		DFS:   newSlotResponse(cmp.DFS, cmp.DFSErr),
		AStar: newSlotResponse(cmp.AStar, cmp.AStarErr),
	})
}

// bind decodes the request body and resolves the grid it targets. It writes
// the error response itself and reports ok=false on failure.
func (h *SearchHandler) bind(c *gin.Context) (*searchRequest, gridgraph.Grid, bool) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return nil, gridgraph.Grid{}, false
	}
	if req.Start == nil || req.End == nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "start and end are required")

		return nil, gridgraph.Grid{}, false
	}

	g := h.grid
	if req.Rows != 0 {
		g.Rows = req.Rows
	}
	if req.Cols != 0 {
		g.Cols = req.Cols
	}
	if g.Rows > 0 && g.Cols > 0 && g.Rows > h.maxCells/g.Cols {
		respondError(c, http.StatusBadRequest, ErrCodeGridTooLarge,
			fmt.Sprintf("grid %dx%d exceeds %d cells", g.Rows, g.Cols, h.maxCells))

		return nil, gridgraph.Grid{}, false
	}

	return &req, g, true
}

func (h *SearchHandler) respondSearchError(c *gin.Context, alg search.Algorithm, err error) {
	if errors.Is(err, search.ErrInvalidInput) {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}
	h.log.WithError(err).WithField("algorithm", alg.String()).Error("search failed")
	respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
}

// runParallel runs every algorithm in its own goroutine. Each goroutine
// writes only its own slot and always returns nil, so one failure never
// cancels the others.
func runParallel(g gridgraph.Grid, start, end search.Coordinate) *search.Comparison {
	results := make([]*search.Result, len(search.Algorithms))
	errs := make([]error, len(search.Algorithms))

	var eg errgroup.Group
	for i, alg := range search.Algorithms {
		eg.Go(func() error {
			fn, err := search.FuncFor(alg)
			if err != nil {
				errs[i] = err

				return nil
			}
			results[i], errs[i] = fn(g, start, end)

			return nil
		})
	}
	_ = eg.Wait()

	cmp := &search.Comparison{}
	for i, alg := range search.Algorithms {
		cmp.Set(alg, results[i], errs[i])
	}

	return cmp
}

func observe(res *search.Result) {
	alg := res.Algorithm.String()
	metrics.TraceLength.WithLabelValues(alg).Observe(float64(len(res.Trace)))
	metrics.SearchesTotal.WithLabelValues(alg, strconv.FormatBool(res.Reached)).Inc()
}
