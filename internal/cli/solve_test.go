package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/katalvlaran/roundtrip/graph"
	"github.com/katalvlaran/roundtrip/tsp"
)

func TestDisplayName(t *testing.T) {
	if got := displayName("-"); got != "stdin" {
		t.Errorf("displayName(-) = %q, want stdin", got)
	}
	if got := displayName("cities.txt"); got != "cities.txt" {
		t.Errorf("displayName(cities.txt) = %q", got)
	}
}

func TestReadInstanceFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cities.txt")
	content := "4\n0 10 15 20\n10 0 35 25\n15 35 0 30\n20 25 30 0\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write instance: %v", err)
	}

	m, err := readInstance(path, graph.FormatAuto)
	if err != nil {
		t.Fatalf("readInstance: %v", err)
	}
	if m.CityCount() != 4 {
		t.Errorf("CityCount = %d, want 4", m.CityCount())
	}
}

func TestReadInstanceMissingFile(t *testing.T) {
	if _, err := readInstance(filepath.Join(t.TempDir(), "nope.txt"), graph.FormatAuto); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestWriteSolutionJSON(t *testing.T) {
	res := tsp.TSResult{
		Tour:   []int{0, 2, 3, 1, 0},
		Cost:   80,
		States: 12,
	}

	var buf bytes.Buffer
	if err := writeSolutionJSON(&buf, 4, res, 3*time.Millisecond); err != nil {
		t.Fatalf("writeSolutionJSON: %v", err)
	}

	var got solution
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if got.Cities != 4 || got.Cost != 80 || got.States != 12 || got.ElapsedMS != 3 {
		t.Errorf("decoded solution = %+v", got)
	}
	if len(got.Tour) != 5 || got.Tour[1] != 2 {
		t.Errorf("decoded tour = %v", got.Tour)
	}
}

func TestResolveCeiling(t *testing.T) {
	tests := []struct {
		name string
		opts solveOpts
		cfg  Config
		n    int
		want int
	}{
		{"built-in default", solveOpts{}, Config{}, 8, tsp.DefaultMaxCities},
		{"config beats default", solveOpts{}, Config{Solver: SolverConfig{MaxCities: 15}}, 8, 15},
		{"flag beats config", solveOpts{maxCities: 18}, Config{Solver: SolverConfig{MaxCities: 15}}, 8, 18},
		{"force beats flag and config", solveOpts{force: true, maxCities: 18}, Config{Solver: SolverConfig{MaxCities: 15}}, 23, 23},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveCeiling(&tt.opts, &tt.cfg, tt.n); got != tt.want {
				t.Errorf("resolveCeiling = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestResolveCeilingForceKeepsHardCap(t *testing.T) {
	// --force raises the ceiling to n, but the solver still clamps to its
	// hard cap; an oversized forced instance is rejected, not attempted.
	m, err := graph.Random(25, 10, 1)
	if err != nil {
		t.Fatalf("graph.Random: %v", err)
	}

	opt := tsp.DefaultOptions()
	opt.MaxCities = resolveCeiling(&solveOpts{force: true}, &Config{}, 25)
	if opt.MaxCities != 25 {
		t.Fatalf("forced ceiling = %d, want 25", opt.MaxCities)
	}

	if _, err = tsp.Solve(m, opt); !errors.Is(err, tsp.ErrTooManyCities) {
		t.Fatalf("want ErrTooManyCities past the hard cap, got %v", err)
	}
}

func TestSolveInterruptibleCancelled(t *testing.T) {
	m, err := graph.Random(16, 100, 1)
	if err != nil {
		t.Fatalf("graph.Random: %v", err)
	}

	// Cancel before the fill finishes; the DP on 16 cities is far slower
	// than the select below.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := solveInterruptible(ctx, m, tsp.DefaultOptions()); !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}

func TestSolveInterruptibleCompletes(t *testing.T) {
	m, err := graph.New([][]float64{
		{0, 10, 15, 20},
		{10, 0, 35, 25},
		{15, 35, 0, 30},
		{20, 25, 30, 0},
	})
	if err != nil {
		t.Fatalf("graph.New: %v", err)
	}

	res, err := solveInterruptible(context.Background(), m, tsp.DefaultOptions())
	if err != nil {
		t.Fatalf("solveInterruptible: %v", err)
	}
	if res.Cost != 80 {
		t.Errorf("Cost = %v, want 80", res.Cost)
	}
}
