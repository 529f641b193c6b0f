package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/search"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// Cell glyphs for the ASCII grid.
const (
	glyphStart     = 'S'
	glyphEnd       = 'E'
	glyphPath      = '*'
	glyphVisited   = '.'
	glyphUnvisited = ' '
)

// resultOutput is the JSON/YAML form of one run.
type resultOutput struct {
	Algorithm   string              `json:"algorithm" yaml:"algorithm"`
	Reached     bool                `json:"reached" yaml:"reached"`
	TraceLength int                 `json:"trace_length" yaml:"trace_length"`
	PathLength  int                 `json:"path_length" yaml:"path_length"`
	Trace       []search.Coordinate `json:"trace" yaml:"trace"`
	Path        []search.Coordinate `json:"path" yaml:"path"`
	Error       string              `json:"error,omitempty" yaml:"error,omitempty"`
}

type comparisonOutput struct {
	BFS   resultOutput `json:"bfs" yaml:"bfs"`
	DFS   resultOutput `json:"dfs" yaml:"dfs"`
	AStar resultOutput `json:"astar" yaml:"astar"`
}

func newResultOutput(alg search.Algorithm, res *search.Result, err error) resultOutput {
	out := resultOutput{Algorithm: alg.String(), Trace: []search.Coordinate{}, Path: []search.Coordinate{}}
	if err != nil {
		out.Error = err.Error()
	}
	if res == nil {
		return out
	}
	if res.Trace != nil {
		out.Trace = res.Trace
	}
	if p := res.Path(); p != nil {
		out.Path = p
	}
	out.Reached = res.Reached
	out.TraceLength = len(out.Trace)
	out.PathLength = len(out.Path)

	return out
}

func encode(w io.Writer, format string, v any) error {
	switch format {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	}
}

func writeResult(w io.Writer, format string, g gridgraph.Grid, res *search.Result) error {
	if format != formatText {
		return encode(w, format, newResultOutput(res.Algorithm, res, nil))
	}
	if _, err := io.WriteString(w, renderGrid(g, res)); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, summary(res))

	return err
}

func writeComparison(w io.Writer, format string, g gridgraph.Grid, cmp *search.Comparison) error {
	if format != formatText {
		return encode(w, format, comparisonOutput{
			BFS:   newResultOutput(search.AlgorithmBFS, cmp.BFS, cmp.BFSErr),
			DFS:   newResultOutput(search.AlgorithmDFS, cmp.DFS, cmp.DFSErr),
			AStar: newResultOutput(search.AlgorithmAStar, cmp.AStar, cmp.AStarErr),
		})
	}

	for i, alg := range search.Algorithms {
		if i > 0 {
			fmt.Fprintln(w)
		}
		res, err := cmp.Result(alg)
		if res == nil {
			fmt.Fprintf(w, "%s: error: %v\n", alg, err)
			continue
		}
		fmt.Fprint(w, renderGrid(g, res))
		fmt.Fprintln(w, summary(res))
	}

	return nil
}

// summary renders "alg: trace=N path=M", with "Not Found" in place of the
// path length when the end was not reached.
func summary(res *search.Result) string {
	path := "Not Found"
	if res.Reached {
		path = fmt.Sprint(res.PathLength())
	}

	return fmt.Sprintf("%s: trace=%d path=%s", res.Algorithm, len(res.Trace), path)
}

// renderGrid draws g framed by +, - and |. Start and end are S and E, path
// cells *, other visited cells '.', unvisited cells blank.
func renderGrid(g gridgraph.Grid, res *search.Result) string {
	cells := make([]rune, g.Size())
	for i := range cells {
		cells[i] = glyphUnvisited
	}
	for _, c := range res.Trace {
		if g.InBounds(c) {
			cells[g.Index(c)] = glyphVisited
		}
	}
	for _, c := range res.Path() {
		cells[g.Index(c)] = glyphPath
	}
	cells[g.Index(res.Start)] = glyphStart
	cells[g.Index(res.End)] = glyphEnd

	var b strings.Builder
	border := "+" + strings.Repeat("-", g.Cols) + "+\n"
	b.WriteString(border)
	for r := 0; r < g.Rows; r++ {
		b.WriteByte('|')
		b.WriteString(string(cells[r*g.Cols : (r+1)*g.Cols]))
		b.WriteString("|\n")
	}
	b.WriteString(border)

	return b.String()
}
