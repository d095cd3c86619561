// Package cli implements the roundtrip command-line interface.
//
// The CLI wraps the graph and tsp packages with two commands: solve reads a
// distance-matrix instance and prints the optimal round trip, generate
// writes a random instance for benchmarking and tests. Output is styled
// with lipgloss; diagnostics go to a charmbracelet/log logger carried in
// the command context. Defaults can be set in a TOML config file and
// overridden per run with flags.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/roundtrip/graph"
	"github.com/katalvlaran/roundtrip/tsp"
)

var (
	version = "dev" // semantic version, injected via ldflags
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// SetVersion records the build identification shown by --version. The main
// package calls it with values injected at link time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute builds the command tree and runs it against ctx. The returned
// error is the command's own error; the caller maps it to an exit code.
func Execute(ctx context.Context) error {
	var (
		verbose    bool
		configPath string
		cfg        Config
	)

	root := &cobra.Command{
		Use:           appName,
		Short:         "Exact travelling-salesman solver for symmetric distance matrices",
		Long:          `roundtrip solves the symmetric travelling-salesman problem exactly with the Held-Karp dynamic program. It reads instances as distance matrices or edge lists, prints the optimal tour with per-leg details, and generates random instances for experiments.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))

			loaded, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			cfg = loaded

			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("%s %s\ncommit: %s\nbuilt: %s\n", appName, version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file")

	root.AddCommand(newSolveCmd(&cfg))
	root.AddCommand(newGenerateCmd())

	return root.ExecuteContext(ctx)
}

// ExitCode maps a command error onto the documented process exit codes:
// 0 success, 2 invalid input, 3 unsolvable, 4 instance too large,
// 5 arithmetic overflow, 1 anything else. SIGINT (130) is handled by the
// main package.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case invalidInput(err):
		return 2
	case errors.Is(err, tsp.ErrIncompleteGraph):
		return 3
	case errors.Is(err, tsp.ErrTooManyCities):
		return 4
	case errors.Is(err, tsp.ErrOverflow):
		return 5
	default:
		return 1
	}
}

// invalidInput reports whether err is one of the graph validation or
// parsing sentinels, i.e. the instance itself is at fault.
func invalidInput(err error) bool {
	for _, sentinel := range []error{
		graph.ErrNoCities,
		graph.ErrNonSquare,
		graph.ErrNonZeroDiagonal,
		graph.ErrAsymmetry,
		graph.ErrNegativeWeight,
		graph.ErrInvalidWeight,
		graph.ErrOutOfRange,
		graph.ErrBadFormat,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}

	return false
}
