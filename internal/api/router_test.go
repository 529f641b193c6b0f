package api_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/internal/api"
	"github.com/katalvlaran/gridsearch/internal/middleware"
)

func newFullRouter() http.Handler {
	return api.NewRouter(&api.RouterDeps{
		Log:         testLogger(),
		Grid:        gridgraph.Default(),
		MaxCells:    10_000,
		CORSOrigins: []string{"http://localhost:5173"},
		Version:     "test",
	})
}

func TestRouter_Health(t *testing.T) {
	w := doRequest(newFullRouter(), http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "test", body["version"])
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestRouter_ErrorCarriesRequestID(t *testing.T) {
	w := doRequest(newFullRouter(), http.MethodPost, "/api/search", `{"algorithm":"bfs"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decode(t, w)
	assert.Equal(t, w.Header().Get(middleware.RequestIDHeader), body["request_id"])
}

func TestRouter_MetricsExposed(t *testing.T) {
	r := newFullRouter()
	doRequest(r, http.MethodPost, "/api/search",
		`{"algorithm":"dfs","start":{"row":0,"col":0},"end":{"row":0,"col":3}}`)

	w := doRequest(r, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "gridsearch_search_trace_length")
	assert.Contains(t, w.Body.String(), "gridsearch_http_requests_total")
}

func TestRouter_CORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/search", strings.NewReader(""))
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	w := httptest.NewRecorder()
	newFullRouter().ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}
