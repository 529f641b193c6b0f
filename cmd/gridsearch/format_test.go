package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/search"
)

func TestRenderGrid(t *testing.T) {
	g := gridgraph.Grid{Rows: 3, Cols: 3}
	res, err := search.BFS(g, gridgraph.At(0, 0), gridgraph.At(0, 2))
	require.NoError(t, err)

	want := strings.Join([]string{
		"+---+",
		"|S*E|",
		"|.  |",
		"|   |",
		"+---+",
		"",
	}, "\n")
	assert.Equal(t, want, renderGrid(g, res))
	assert.Equal(t, "bfs: trace=4 path=3", summary(res))
}

func TestSummary_NotFound(t *testing.T) {
	res := &search.Result{Algorithm: search.AlgorithmDFS, Trace: make([]search.Coordinate, 7)}
	assert.Equal(t, "dfs: trace=7 path=Not Found", summary(res))
}

func TestRun_Text(t *testing.T) {
	out, err := executeArgs(t, "run", "--alg", "bfs", "--rows", "3", "--cols", "3", "--start", "0,0", "--end", "0,2")
	require.NoError(t, err)
	assert.Contains(t, out, "|S*E|")
	assert.True(t, strings.HasSuffix(out, "bfs: trace=4 path=3\n"), out)
}

func TestRun_MaxStepsPrintsPartial(t *testing.T) {
	out, err := executeArgs(t, "run", "--alg", "bfs", "--max-steps", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "bfs: trace=2 path=Not Found")
}

func TestRun_JSON(t *testing.T) {
	out, err := executeArgs(t, "run", "--alg", "dfs", "--format", "json")
	require.NoError(t, err)

	var got resultOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "dfs", got.Algorithm)
	assert.True(t, got.Reached)
	assert.Equal(t, 39, got.TraceLength)
	assert.Equal(t, 39, got.PathLength)
	assert.Equal(t, gridgraph.At(0, 0), got.Path[0])
	assert.Equal(t, gridgraph.At(19, 19), got.Path[len(got.Path)-1])
}

func TestCompare_YAML(t *testing.T) {
	out, err := executeArgs(t, "compare", "--format", "yaml")
	require.NoError(t, err)

	var got comparisonOutput
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, 400, got.BFS.TraceLength)
	assert.Equal(t, 39, got.DFS.TraceLength)
	assert.Equal(t, 400, got.AStar.TraceLength)
	for _, r := range []resultOutput{got.BFS, got.DFS, got.AStar} {
		assert.Equal(t, 39, r.PathLength, r.Algorithm)
		assert.Empty(t, r.Error)
	}
}

func TestCompare_TextShowsEveryAlgorithm(t *testing.T) {
	out, err := executeArgs(t, "compare", "--rows", "4", "--cols", "4", "--end", "3,3")
	require.NoError(t, err)
	for _, alg := range search.Algorithms {
		assert.Contains(t, out, alg.String()+": trace=")
	}
	assert.Equal(t, 3, strings.Count(out, "+----+\n|S"))
}

func TestCompare_ErrorSlot(t *testing.T) {
	out, err := executeArgs(t, "compare", "--end", "0,19", "--max-steps", "25", "--format", "json")
	require.NoError(t, err)

	var got comparisonOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Contains(t, got.BFS.Error, "step limit")
	assert.False(t, got.BFS.Reached)
	assert.Equal(t, 25, got.BFS.TraceLength)
	assert.Empty(t, got.DFS.Error)
	assert.True(t, got.DFS.Reached)
	assert.Equal(t, 20, got.DFS.TraceLength)
	assert.Equal(t, 20, got.AStar.TraceLength)
}
