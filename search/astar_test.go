package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/search"
)

func TestAStar_InvalidInput(t *testing.T) {
	res, err := search.AStar(gridgraph.Default(), gridgraph.At(0, 0), gridgraph.At(0, 20))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, search.ErrInvalidInput)
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
}

func TestAStar_Adjacent(t *testing.T) {
	res, err := search.AStar(gridgraph.Default(), gridgraph.At(0, 0), gridgraph.At(0, 1))
	require.NoError(t, err)
	assert.True(t, res.Reached)
	assert.Equal(t, []search.Coordinate{{Row: 0, Col: 0}, {Row: 0, Col: 1}}, res.Trace)
	assert.Equal(t, []search.Coordinate{{Row: 0, Col: 0}, {Row: 0, Col: 1}}, res.Path())
}

// TestAStar_StraightLine: on a row, only the cells on the line keep the
// minimal fScore, so A* walks straight to the end.
func TestAStar_StraightLine(t *testing.T) {
	g := gridgraph.Default()
	start, end := gridgraph.At(10, 0), gridgraph.At(10, 19)

	res, err := search.AStar(g, start, end)
	require.NoError(t, err)
	require.True(t, res.Reached)
	assert.Len(t, res.Trace, 20)
	assert.Equal(t, 20, res.PathLength())

	bfs, err := search.BFS(g, start, end)
	require.NoError(t, err)
	assert.Less(t, len(res.Trace), len(bfs.Trace))
}

// TestAStar_TieBreakFIFO: when every cell shares the same fScore, insertion
// order decides, which makes A* process cells exactly like BFS.
func TestAStar_TieBreakFIFO(t *testing.T) {
	g, err := gridgraph.NewGrid(3, 3)
	require.NoError(t, err)

	res, err := search.AStar(g, gridgraph.At(0, 0), gridgraph.At(2, 2))
	require.NoError(t, err)
	bfs, err := search.BFS(g, gridgraph.At(0, 0), gridgraph.At(2, 2))
	require.NoError(t, err)

	assert.Equal(t, bfs.Trace, res.Trace)
	assert.Equal(t, []search.Coordinate{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}}, res.Path())
}

func TestAStar_Corners(t *testing.T) {
	res, err := search.AStar(gridgraph.Default(), gridgraph.At(0, 0), gridgraph.At(19, 19))
	require.NoError(t, err)
	assert.Equal(t, 39, res.PathLength())
	assert.Len(t, res.Trace, 400)
}

// TestAStar_Detour routes around a wall with a single gap; the path must
// still be shortest and match BFS in length.
//
//	col:  0 1 2 3 4
//	row0  S . | . E
//	row1  . . | . .
//	row2  . . . . .   (gap at row 2)
func TestAStar_Detour(t *testing.T) {
	g, err := gridgraph.NewGrid(3, 5)
	require.NoError(t, err)
	wall := func(from, to search.Coordinate) bool {
		crossing := (from.Col == 2 && to.Col == 3) || (from.Col == 3 && to.Col == 2)
		return !crossing || from.Row == 2
	}
	start, end := gridgraph.At(0, 0), gridgraph.At(0, 4)

	res, err := search.AStar(g, start, end, search.WithFilterNeighbor(wall))
	require.NoError(t, err)
	require.True(t, res.Reached)
	bfs, err := search.BFS(g, start, end, search.WithFilterNeighbor(wall))
	require.NoError(t, err)

	assert.Equal(t, bfs.PathLength(), res.PathLength())
	assert.Equal(t, 9, res.PathLength())
	assertValidPath(t, res)
}

// TestAStar_RefreshOpenScore: (3,2) is first opened from (2,2) with g=5 and
// later reached from (3,3) with g=3 while still open. Its fScore drops from
// 10 to 8 in place, so it is selected right after (3,3) instead of at f=10.
//
//	. . # . .
//	. # . . .
//	. . . # S
//	. . . . .
func TestAStar_RefreshOpenScore(t *testing.T) {
	g, err := gridgraph.NewGrid(4, 5)
	require.NoError(t, err)
	walls := map[search.Coordinate]bool{{Row: 0, Col: 2}: true, {Row: 1, Col: 1}: true, {Row: 2, Col: 3}: true}
	filter := search.WithFilterNeighbor(func(_, to search.Coordinate) bool { return !walls[to] })
	start, end := gridgraph.At(2, 4), gridgraph.At(0, 0)

	res, err := search.AStar(g, start, end, filter)
	require.NoError(t, err)
	require.True(t, res.Reached)

	assert.Equal(t, []search.Coordinate{
		{Row: 2, Col: 4}, {Row: 1, Col: 4}, {Row: 1, Col: 3}, {Row: 0, Col: 4}, {Row: 1, Col: 2}, {Row: 0, Col: 3}, {Row: 3, Col: 4}, {Row: 2, Col: 2},
		{Row: 3, Col: 3}, {Row: 3, Col: 2}, {Row: 2, Col: 1}, {Row: 3, Col: 1}, {Row: 2, Col: 0}, {Row: 3, Col: 0}, {Row: 1, Col: 0}, {Row: 0, Col: 0},
	}, res.Trace)
	assert.Equal(t, gridgraph.At(3, 3), res.Parent[gridgraph.At(3, 2)])
	assertUniqueTrace(t, res)
	assertValidPath(t, res)

	bfs, err := search.BFS(g, start, end, filter)
	require.NoError(t, err)
	require.True(t, bfs.Reached)
	assert.Equal(t, bfs.PathLength(), res.PathLength())
	assert.Equal(t, 9, res.PathLength())
}
