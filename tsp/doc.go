// Package tsp solves the symmetric Traveling Salesman Problem exactly with
// Held–Karp dynamic programming over city subsets.
//
// Contract in one paragraph: Solve consumes a validated graph.Matrix and
// returns the minimum-cost Hamiltonian cycle through all n cities, starting
// and ending at city 0, as a closed tour of n+1 indices plus its total cost.
// The answer is exact, deterministic, and reproducible across platforms
// (costs are stabilized to 1e-9).
//
// Design principles:
//   - Dense DP arena: two flat tables, cost and parent, logically
//     [2^(n-1)][n] and indexed mask*n+last, allocated once per call and
//     released on return. Subset masks cover cities 1..n-1 only; bit k
//     stands for city k+1.
//   - Fill order by rising subset size: subsets of equal popcount are walked
//     with a same-popcount successor, so every cost(S\{c}, ·) is final
//     before cost(S, c) reads it.
//   - Strict sentinel errors, all raised before or during the fill, never
//     after a partial answer: ErrNilGraph, ErrTooManyCities,
//     ErrIncompleteGraph, ErrOverflow.
//   - Admission control: the state space is exponential, so Solve rejects
//     n above Options.MaxCities (default 20, hard ceiling 24) instead of
//     attempting the allocation.
//   - No I/O and no goroutines; an optional Progress callback observes the
//     fill at a sparse stride.
//
// Complexity: O(n²·2ⁿ) time, O(n·2ⁿ) memory; practical for roughly n ≤ 20.
//
// TourCost recomputes a tour's cost independently of the DP tables, which is
// the round-trip check: TourCost(g, res.Tour) == res.Cost for every
// successful Solve.
package tsp
