// Package tsp — Solve: admission, trivial cases, and engine dispatch.
//
// Validation staging mirrors the rest of the module: argument guards first
// (nil graph), then admission control against the exponential state space,
// then the n == 1 fast path, and only then the DP engine. Every rejection
// happens before the arena is allocated.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/roundtrip/graph"
)

// Solve computes the exact minimum-cost Hamiltonian cycle over all cities of
// g, starting and ending at city 0.
//
// Contracts:
//   - g was built by the graph package, so shape, symmetry, diagonal, and
//     sign invariants already hold; +Inf entries mean "no edge".
//   - The returned Tour has length n+1 with Tour[0] == Tour[n] == 0 and the
//     interior a permutation of {1..n-1}; Cost equals
//     TourCost(g, Tour) exactly.
//   - Deterministic: identical inputs yield identical results; cost ties
//     resolve to the first-found minimum.
//
// Errors:
//   - ErrNilGraph for a nil matrix.
//   - ErrTooManyCities (wrapped with the counts) when n exceeds the
//     effective Options.MaxCities.
//   - ErrIncompleteGraph when no finite-cost cycle exists.
//   - ErrOverflow when finite costs sum past the float64 range.
//
// Complexity: O(n²·2ⁿ) time, O(n·2ⁿ) memory, all scoped to this call.
func Solve(g *graph.Matrix, opt Options) (TSResult, error) {
	if g == nil {
		return TSResult{}, ErrNilGraph
	}
	opt = opt.normalized()

	n := g.CityCount()
	if n > opt.MaxCities {
		return TSResult{}, fmt.Errorf("tsp: %d cities with ceiling %d: %w", n, opt.MaxCities, ErrTooManyCities)
	}

	// Single city: the trivial cycle, no DP table needed.
	if n == 1 {
		return TSResult{Tour: []int{0, 0}, Cost: 0}, nil
	}

	return newDPEngine(g, opt.Progress).run()
}
