package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/roundtrip/graph"
	"github.com/katalvlaran/roundtrip/tsp"
)

// solveOpts holds the flags of the solve command.
type solveOpts struct {
	format     string // input format name: auto, matrix, edges
	maxCities  int    // admission ceiling override (0 = config/built-in)
	force      bool   // raise the ceiling to the instance size
	jsonOut    bool   // machine-readable output
	noProgress bool   // suppress the spinner
}

func newSolveCmd(cfg *Config) *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve <file>",
		Short: "Solve a travelling-salesman instance exactly",
		Long: `Solve reads a symmetric distance-matrix instance and prints the optimal
round trip starting and ending at city 0.

The input is a city count followed by either a full matrix or an edge list;
"auto" picks between them by shape. Pass "-" to read from stdin. "INF" or
"∞" marks a missing edge.

Examples:
  roundtrip solve cities.txt
  roundtrip generate 10 | roundtrip solve -
  roundtrip solve --format edges --json sparse.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runSolve(c.Context(), cfg, &opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "auto", "input format: auto, matrix or edges")
	cmd.Flags().IntVar(&opts.maxCities, "max-cities", 0, "admission ceiling (0 = config or built-in default)")
	cmd.Flags().BoolVar(&opts.force, "force", false, "raise the ceiling to the instance size (the hard cap still applies)")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "print the solution as JSON")
	cmd.Flags().BoolVar(&opts.noProgress, "no-progress", false, "disable the progress spinner")

	return cmd
}

func runSolve(ctx context.Context, cfg *Config, opts *solveOpts, source string) error {
	logger := loggerFromContext(ctx)

	format, err := graph.ParseFormatName(opts.format)
	if err != nil {
		return err
	}

	m, err := readInstance(source, format)
	if err != nil {
		return err
	}
	n := m.CityCount()

	solverOpt := tsp.DefaultOptions()
	solverOpt.MaxCities = resolveCeiling(opts, cfg, n)
	if opts.force && !opts.jsonOut && n > tsp.DefaultMaxCities {
		printWarning("forcing %d cities past the default ceiling of %d; expect a long fill", n, tsp.DefaultMaxCities)
	}
	logger.Debugf("solving %d cities (ceiling %d, format %s)", n, solverOpt.MaxCities, format)

	var spin *Spinner
	if !opts.jsonOut && !opts.noProgress && cfg.Output.Progress {
		spin = newSpinnerWithContext(ctx, "filling subset table")
		solverOpt.Progress = func(done, total uint64) {
			spin.SetPercent(float64(done) / float64(total))
		}
		spin.Start()
	}

	start := time.Now()
	res, err := solveInterruptible(ctx, m, solverOpt)
	elapsed := time.Since(start)
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		return err
	}
	logger.Debugf("explored %d states in %s", res.States, elapsed.Round(time.Millisecond))

	if opts.jsonOut {
		return writeSolutionJSON(os.Stdout, n, res, elapsed)
	}
	renderSolution(m, res, elapsed, cfg.Output.RouteDetailLimit, displayName(source), format)

	return nil
}

// resolveCeiling picks the admission ceiling for one run: --force raises it
// to the instance size, then the flag, then the config file, then the
// built-in default. The hard cap stays with the solver.
func resolveCeiling(opts *solveOpts, cfg *Config, n int) int {
	switch {
	case opts.force:
		return n
	case opts.maxCities > 0:
		return opts.maxCities
	case cfg.Solver.MaxCities > 0:
		return cfg.Solver.MaxCities
	default:
		return tsp.DefaultMaxCities
	}
}

// solveInterruptible runs the solver in a worker goroutine so a cancelled
// context (SIGINT) returns promptly even mid-fill. The abandoned worker is
// harmless: the process exits right after.
func solveInterruptible(ctx context.Context, m *graph.Matrix, opt tsp.Options) (tsp.TSResult, error) {
	type outcome struct {
		res tsp.TSResult
		err error
	}

	ch := make(chan outcome, 1)
	go func() {
		res, err := tsp.Solve(m, opt)
		ch <- outcome{res: res, err: err}
	}()

	select {
	case <-ctx.Done():
		return tsp.TSResult{}, ctx.Err()
	case out := <-ch:
		return out.res, out.err
	}
}

// readInstance opens and parses the instance; "-" reads stdin.
func readInstance(source string, format graph.Format) (*graph.Matrix, error) {
	if source == "-" {
		return graph.ParseFormat(os.Stdin, format)
	}

	f, err := os.Open(source)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return graph.ParseFormat(f, format)
}

func displayName(source string) string {
	if source == "-" {
		return "stdin"
	}

	return source
}

// solution is the machine-readable result shape for --json.
type solution struct {
	Cities    int     `json:"cities"`
	Cost      float64 `json:"cost"`
	Tour      []int   `json:"tour"`
	States    uint64  `json:"states"`
	ElapsedMS int64   `json:"elapsed_ms"`
}

func writeSolutionJSON(w io.Writer, cities int, res tsp.TSResult, elapsed time.Duration) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(solution{
		Cities:    cities,
		Cost:      res.Cost,
		Tour:      res.Tour,
		States:    res.States,
		ElapsedMS: elapsed.Milliseconds(),
	})
}

// renderSolution prints the styled report: instance summary, matrix echo
// for small instances, the optimal tour, the per-leg breakdown, and stats.
func renderSolution(m *graph.Matrix, res tsp.TSResult, elapsed time.Duration, detailLimit int, source string, format graph.Format) {
	n := m.CityCount()
	if detailLimit <= 0 {
		detailLimit = defaultRouteDetailLimit
	}

	printNewline()
	fmt.Println(StyleTitle.Render("Optimal round trip"))
	printKeyValue("source", source)
	printKeyValue("format", format.String())
	printKeyValue("cities", strconv.Itoa(n))

	if n <= detailLimit {
		printNewline()
		fmt.Print(renderMatrix(m))
	} else {
		printDetail("matrix echo omitted for %d cities", n)
	}

	printNewline()
	printSuccess("minimum cost %s", StyleNumber.Render(formatWeight(res.Cost)))
	printInfo("tour %s", StyleValue.Render(formatTour(res.Tour)))

	if n <= detailLimit {
		printNewline()
		renderRoute(m, res.Tour)
	}

	printNewline()
	printStats(n, res.States, elapsed)
}

// renderRoute prints one line per leg with the running total.
func renderRoute(m *graph.Matrix, tour []int) {
	var running float64
	for i := 0; i < len(tour)-1; i++ {
		leg, err := m.At(tour[i], tour[i+1])
		if err != nil {
			return
		}
		running += leg
		fmt.Printf("  %s  %8s  %s\n",
			StyleValue.Render(fmt.Sprintf("%2d %s %2d", tour[i], iconArrow, tour[i+1])),
			formatWeight(leg),
			StyleDim.Render("total "+formatWeight(running)))
	}
}

// printStats prints the run statistics on one dim line.
func printStats(n int, states uint64, elapsed time.Duration) {
	rows := uint64(1) << uint(n-1)
	line := fmt.Sprintf("%d states · table %d×%d · %s",
		states, rows, n, elapsed.Round(time.Millisecond))
	printDetail("%s", line)
}
