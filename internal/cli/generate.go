package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/roundtrip/graph"
)

// generateOpts holds the flags of the generate command.
type generateOpts struct {
	seed        int64
	maxDistance float64
	output      string
}

func newGenerateCmd() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate <n>",
		Short: "Generate a random symmetric instance in matrix format",
		Long: `Generate writes a random n-city instance with integer distances drawn
uniformly from [1, max-distance]. The same seed always produces the same
instance; seed 0 selects a fixed default seed.

Examples:
  roundtrip generate 10
  roundtrip generate 15 --seed 7 -o cities.txt
  roundtrip generate 12 | roundtrip solve -`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runGenerate(c.Context(), &opts, args[0])
		},
	}

	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "RNG seed (0 = fixed default seed)")
	cmd.Flags().Float64Var(&opts.maxDistance, "max-distance", 100, "largest distance to draw")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty or \"-\")")

	return cmd
}

func runGenerate(ctx context.Context, opts *generateOpts, arg string) error {
	logger := loggerFromContext(ctx)

	n, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("city count %q: %w", arg, graph.ErrBadFormat)
	}

	m, err := graph.Random(n, opts.maxDistance, opts.seed)
	if err != nil {
		return err
	}
	logger.Debugf("generated %d cities (seed %d, max distance %g)", n, opts.seed, opts.maxDistance)

	out, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := writeInstance(out, m); err != nil {
		return err
	}
	if toFile := opts.output != "" && opts.output != "-"; toFile {
		printSuccess("wrote %d-city instance to %s", n, opts.output)
	}

	return nil
}

// writeInstance emits the instance in the matrix input format: a city-count
// header followed by the rows, re-readable by the solve command.
func writeInstance(w io.Writer, m *graph.Matrix) error {
	if _, err := fmt.Fprintln(w, m.CityCount()); err != nil {
		return err
	}
	_, err := io.WriteString(w, m.String())

	return err
}

// nopCloser gives os.Stdout a no-op Close so openOutput can return a
// uniform io.WriteCloser.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns a writer for path; empty or "-" selects stdout,
// anything else creates (or truncates) the file.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{os.Stdout}, nil
	}

	return os.Create(path)
}
