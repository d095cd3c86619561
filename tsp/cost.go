// Package tsp — independent tour-cost recomputation.
//
// TourCost deliberately shares no state with the DP engine: it walks the
// returned tour edge by edge against the matrix. Solve's reported Cost and
// TourCost's sum are both stabilized through round1e9, so the round-trip
// comparison is an exact equality, not an epsilon check.
package tsp

import (
	"math"

	"github.com/katalvlaran/roundtrip/graph"
)

// round1e9 snaps x to the 1e-9 grid for cross-platform stability of
// reported totals. At magnitudes of 2⁵³ and above a float64 carries no
// fractional part (and the scale product would overflow), so x is already
// on the grid and returns unchanged.
func round1e9(x float64) float64 {
	if math.Abs(x) >= 1<<53 {
		return x
	}

	return math.Round(x*roundScale) / roundScale
}

// TourCost sums the edge weights along a closed tour over g.
//
// Contracts:
//   - tour must satisfy ValidateTour(tour, g.CityCount()).
//   - The accumulation order is tour order, matching what a caller would
//     compute by hand from the returned path.
//
// Errors:
//   - ErrNilGraph for a nil matrix.
//   - ErrBadTour for a malformed tour.
//   - ErrIncompleteGraph if the tour crosses a +Inf (missing) edge.
//   - ErrOverflow if finite weights sum past the float64 range.
//
// Complexity: O(n) time, O(1) memory.
func TourCost(g *graph.Matrix, tour []int) (float64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	n := g.CityCount()
	if err := ValidateTour(tour, n); err != nil {
		return 0, err
	}

	var (
		sum  float64 // running total in tour order
		step float64 // current edge weight
		i    int     // tour position
	)
	for i = 0; i < n; i++ {
		// Endpoints validated above; At cannot fail here.
		step, _ = g.At(tour[i], tour[i+1])
		if math.IsInf(step, 1) {
			return 0, ErrIncompleteGraph
		}
		sum += step
		if math.IsInf(sum, 1) {
			return 0, ErrOverflow
		}
	}

	return round1e9(sum), nil
}
