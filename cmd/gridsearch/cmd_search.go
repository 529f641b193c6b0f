package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/search"
)

// gridFlags are the flags shared by run and compare.
type gridFlags struct {
	start, end string
	rows, cols int
	maxSteps   int
}

func (f *gridFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.start, "start", "0,0", "Start cell as row,col")
	cmd.Flags().StringVar(&f.end, "end", "19,19", "End cell as row,col")
	cmd.Flags().IntVar(&f.rows, "rows", gridgraph.DefaultRows, "Grid rows")
	cmd.Flags().IntVar(&f.cols, "cols", gridgraph.DefaultCols, "Grid columns")
	cmd.Flags().IntVar(&f.maxSteps, "max-steps", 0, "Stop after this many visited cells (0 = no limit)")
}

// resolve parses the endpoints and builds the grid and the search options.
func (f *gridFlags) resolve() (gridgraph.Grid, search.Coordinate, search.Coordinate, []search.Option, error) {
	start, err := parseCoordinate(f.start)
	if err != nil {
		return gridgraph.Grid{}, start, start, nil, err
	}
	end, err := parseCoordinate(f.end)
	if err != nil {
		return gridgraph.Grid{}, start, end, nil, err
	}
	g, err := gridgraph.NewGrid(f.rows, f.cols)
	if err != nil {
		return g, start, end, nil, err
	}

	opts := []search.Option{search.WithMaxSteps(f.maxSteps)}
	if log.IsLevelEnabled(logrus.DebugLevel) {
		opts = append(opts, search.WithOnVisit(func(c search.Coordinate, step int) error {
			log.WithFields(logrus.Fields{"cell": c.String(), "step": step}).Debug("visit")

			return nil
		}))
	}

	return g, start, end, opts, nil
}

func newRunCmd() *cobra.Command {
	var (
		flags gridFlags
		alg   string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one algorithm and print its trace and path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := search.ParseAlgorithm(alg)
			if err != nil {
				return err
			}
			g, start, end, opts, err := flags.resolve()
			if err != nil {
				return err
			}

			res, err := search.Search(a, start, end, g.Rows, g.Cols, opts...)
			if err != nil && res == nil {
				return err
			}
			if err != nil {
				log.WithError(err).Warn("search stopped early")
			}

			return writeResult(cmd.OutOrStdout(), flagFmt, g, res)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&alg, "alg", "bfs", "Algorithm: bfs|dfs|astar")

	return cmd
}

func newCompareCmd() *cobra.Command {
	var flags gridFlags
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run BFS, DFS and A* on the same endpoints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, start, end, opts, err := flags.resolve()
			if err != nil {
				return err
			}
			if err := g.Validate(start, end); err != nil {
				return err
			}

			cmp := search.Compare(g, start, end, opts...)
			for _, a := range search.Algorithms {
				if _, err := cmp.Result(a); err != nil {
					log.WithError(err).WithField("algorithm", a.String()).Warn("run failed")
				}
			}

			return writeComparison(cmd.OutOrStdout(), flagFmt, g, cmp)
		},
	}
	flags.register(cmd)

	return cmd
}
