// Package tsp_test — shared fixtures and assertion helpers.
//
// Policy:
//   - Deterministic instances only: handcrafted metrics, ring metrics, and
//     seeded graph.Random draws. No wall-clock or RNG flakiness.
//   - Helpers fail fast via t.Fatalf with a uniform "want/got" shape.
//   - Brute force is the independent oracle for small n; it shares no code
//     with the engine under test.
package tsp_test

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/katalvlaran/roundtrip/graph"
)

// epsTiny is the tolerance for float comparisons that should be exact up to
// representation (integer-valued weights, stabilized totals).
const epsTiny = 1e-12

// Repeat runs f k times; determinism tests lean on it.
func Repeat(t *testing.T, k int, f func(t *testing.T)) {
	t.Helper()
	for i := 0; i < k; i++ {
		f(t)
	}
}

// mustNoErr fails the test on any error.
func mustNoErr(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// mustErrIs asserts errors.Is(err, want).
func mustErrIs(t *testing.T, err, want error) {
	t.Helper()
	if !errors.Is(err, want) {
		t.Fatalf("want %v, got %v", want, err)
	}
}

// mustEqualInts asserts element-wise equality of int slices.
func mustEqualInts(t *testing.T, want, got []int) {
	t.Helper()
	if !slices.Equal(want, got) {
		t.Fatalf("want %v, got %v", want, got)
	}
}

// mustFloatClose asserts |want-got| ≤ eps.
func mustFloatClose(t *testing.T, want, got, eps float64) {
	t.Helper()
	if math.Abs(want-got) > eps {
		t.Fatalf("want %.12g, got %.12g (eps %g)", want, got, eps)
	}
}

// mkMatrix builds a validated matrix or fails the test.
func mkMatrix(t *testing.T, rows [][]float64) *graph.Matrix {
	t.Helper()
	m, err := graph.New(rows)
	if err != nil {
		t.Fatalf("graph.New: %v", err)
	}

	return m
}

// fourCityWeights is the classic 4-city instance with optimum 80.
func fourCityWeights() [][]float64 {
	return [][]float64{
		{0, 10, 15, 20},
		{10, 0, 35, 25},
		{15, 35, 0, 30},
		{20, 25, 30, 0},
	}
}

// ringWeights builds the cycle metric d(i,j) = min(|i-j|, n-|i-j|); the
// optimal tour is the perimeter with cost exactly n.
func ringWeights(n int) [][]float64 {
	rows := make([][]float64, n)
	var i, j, d int
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			d = i - j
			if d < 0 {
				d = -d
			}
			if n-d < d {
				d = n - d
			}
			rows[i][j] = float64(d)
		}
	}

	return rows
}

// weightsRows reshapes a matrix into [][]float64 for the brute-force oracle.
func weightsRows(m *graph.Matrix) [][]float64 {
	var (
		n    = m.CityCount()
		flat = m.Weights()
		rows = make([][]float64, n)
		i    int
	)
	for i = 0; i < n; i++ {
		rows[i] = flat[i*n : (i+1)*n]
	}

	return rows
}

// bruteForceBest exhaustively minimizes over all (n-1)! interior orders,
// returning +Inf when no finite cycle exists. Only sane for n ≤ 9.
func bruteForceBest(w [][]float64) float64 {
	var (
		n    = len(w)
		best = math.Inf(1)
		used = make([]bool, n)
		rec  func(last, placed int, cost float64)
	)
	rec = func(last, placed int, cost float64) {
		if cost >= best {
			return // cannot improve on the incumbent
		}
		if placed == n-1 {
			if total := cost + w[last][0]; total < best {
				best = total
			}

			return
		}
		for c := 1; c < n; c++ {
			if used[c] {
				continue
			}
			used[c] = true
			rec(c, placed+1, cost+w[last][c])
			used[c] = false
		}
	}
	rec(0, 0, 0)

	return best
}

// permuteWeights relabels cities: city i becomes perm[i].
func permuteWeights(w [][]float64, perm []int) [][]float64 {
	var (
		n    = len(w)
		out  = make([][]float64, n)
		i, j int
	)
	for i = 0; i < n; i++ {
		out[i] = make([]float64, n)
	}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			out[perm[i]][perm[j]] = w[i][j]
		}
	}

	return out
}
