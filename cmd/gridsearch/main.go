// Command gridsearch runs BFS, DFS and A* on a grid from the terminal and
// prints the visited cells and path as an ASCII grid, JSON or YAML.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Build-time variables set via ldflags.
var (
	version   = "0.1.0"
	commit    = ""
	buildDate = ""
)

var (
	flagFmt      string
	flagLogLevel string
	log          = logrus.New()
)

func versionString() string {
	if commit != "" && buildDate != "" {
		return fmt.Sprintf("gridsearch version %s (commit: %s, built: %s)", version, commit, buildDate)
	}
	return fmt.Sprintf("gridsearch version %s-dev", version)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "gridsearch",
		Short:   "gridsearch: compare BFS, DFS and A* on a 4-connected grid",
		Version: versionString(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(flagLogLevel)
			if err != nil {
				return fmt.Errorf("invalid --log-level: %w", err)
			}
			log.SetLevel(level)
			log.SetOutput(cmd.ErrOrStderr())
			switch flagFmt {
			case formatText, formatJSON, formatYAML:
				return nil
			default:
				return fmt.Errorf("invalid --format %q: must be text, json or yaml", flagFmt)
			}
		},
		SilenceUsage: true,
	}
	root.SetVersionTemplate("{{.Version}}\n")

	root.PersistentFlags().StringVar(&flagFmt, "format", formatText, "Output format: text|json|yaml")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug|info|warn|error")

	root.AddCommand(newRunCmd())
	root.AddCommand(newCompareCmd())

	return root
}

func main() {
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
