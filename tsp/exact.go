// Package tsp — the Held–Karp engine.
//
// State model:
//   - cost(S, c): minimum distance of a path that starts at city 0, visits
//     exactly the cities of S, and ends at c ∈ S. Stored flat at offset
//     mask*n + c in a 2^(n-1)·n arena; unreachable cells stay +Inf.
//   - parent(S, c): the predecessor city p realizing cost(S, c), or -1.
//     Indices into the same arena, so reconstruction is a plain walk.
//
// Fill discipline:
//   - Base: cost({c}, c) = w(0,c) for every finite start edge.
//   - Sizes 2..n-1 in order; within a size, masks rise via the
//     same-popcount successor. Predecessors p scan ascending, and a strict
//     "<" keeps the first-found minimum on ties, so output is deterministic.
//   - +Inf operands are skipped (missing edge / unreachable state); a +Inf
//     produced by adding two finite values is an overflow and aborts.
//
// Closing and reconstruction follow the classical recipe: min over c of
// cost(Full, c) + w(c, 0), then peel cities backward off the full mask via
// parent pointers.
package tsp

import (
	"math"

	"github.com/katalvlaran/roundtrip/graph"
)

// dpEngine owns the per-call state of one Held–Karp run. Everything here
// lives exactly as long as the Solve call.
type dpEngine struct {
	n int       // number of cities
	w []float64 // dense weights, length n*n, offset u*n+v

	cost   []float64 // DP arena, length 2^(n-1) * n
	parent []int     // predecessor arena, same shape, -1 = none

	progress ProgressFunc // optional fill observer, may be nil
	done     uint64       // finalized (subset, last) cells so far
	total    uint64       // fillStates(n), fixed up front
}

// newDPEngine prefetches the dense weight buffer and sizes the counters.
// The arena itself is allocated in run, after admission has passed.
func newDPEngine(g *graph.Matrix, progress ProgressFunc) *dpEngine {
	n := g.CityCount()

	return &dpEngine{
		n:        n,
		w:        g.Weights(),
		progress: progress,
		total:    fillStates(n),
	}
}

// tick counts one finalized cell and emits a sparse progress update.
// The completion call is issued separately by finish.
func (e *dpEngine) tick() {
	e.done++
	if e.progress != nil && e.done < e.total && e.done%progressStride == 0 {
		e.progress(e.done, e.total)
	}
}

// finish emits the single completion update.
func (e *dpEngine) finish() {
	if e.progress != nil {
		e.progress(e.total, e.total)
	}
}

// run executes fill, closing, and reconstruction for n ≥ 2.
//
// Errors: ErrOverflow as soon as two finite costs sum past float64;
// ErrIncompleteGraph when no finite closure exists.
//
// Complexity: O(n²·2ⁿ) time, O(n·2ⁿ) memory.
func (e *dpEngine) run() (TSResult, error) {
	var (
		inf       = math.Inf(1)          // unreachable-state marker
		maskCount = 1 << uint(e.n-1)     // number of subsets of {1..n-1}
		full      = maskCount - 1        // the complete subset
		cells     = maskCount * e.n      // arena length
	)

	// Arena allocation: every cell starts unreachable and parentless.
	e.cost = make([]float64, cells)
	e.parent = make([]int, cells)
	var idx int
	for idx = 0; idx < cells; idx++ {
		e.cost[idx] = inf
		e.parent[idx] = -1
	}

	// Base case: single-city subsets reached directly from the start.
	var (
		c, p int     // current / predecessor city
		d    float64 // weight under inspection
	)
	for c = 1; c < e.n; c++ {
		d = e.w[c] // w(0, c)
		if !math.IsInf(d, 1) {
			idx = cityBit(c)*e.n + c
			e.cost[idx] = d
			e.parent[idx] = 0
		}
		e.tick()
	}

	// Fill by rising subset size; all cost(S\{c}, ·) cells are final when
	// cost(S, c) reads them.
	var (
		size, mask, prev int     // subset size / mask / mask without c
		base, step, cand float64 // predecessor cost / edge / candidate
		best             float64 // running minimum for (mask, c)
		bestP            int     // its predecessor city, -1 = none
	)
	for size = 2; size <= e.n-1; size++ {
		for mask = (1 << uint(size)) - 1; mask <= full; mask = nextSubsetSameSize(mask) {
			for c = 1; c < e.n; c++ {
				if mask&cityBit(c) == 0 {
					continue
				}
				prev = mask &^ cityBit(c)
				best, bestP = inf, -1
				for p = 1; p < e.n; p++ {
					if prev&cityBit(p) == 0 {
						continue
					}
					base = e.cost[prev*e.n+p]
					if math.IsInf(base, 1) {
						continue
					}
					step = e.w[p*e.n+c]
					if math.IsInf(step, 1) {
						continue
					}
					cand = base + step
					if math.IsInf(cand, 1) {
						return TSResult{}, ErrOverflow
					}
					if cand < best {
						best, bestP = cand, p
					}
				}
				if bestP >= 0 {
					idx = mask*e.n + c
					e.cost[idx] = best
					e.parent[idx] = bestP
				}
				e.tick()
			}
		}
	}
	e.finish()

	// Closing: best terminal city c, returning over w(c, 0).
	var (
		through, back float64 // path cost to c / closing edge
		bestCost      = inf   // minimum full-cycle cost
		bestLast      = -1    // terminal city achieving it
	)
	for c = 1; c < e.n; c++ {
		through = e.cost[full*e.n+c]
		if math.IsInf(through, 1) {
			continue
		}
		back = e.w[c*e.n] // w(c, 0)
		if math.IsInf(back, 1) {
			continue
		}
		cand = through + back
		if math.IsInf(cand, 1) {
			return TSResult{}, ErrOverflow
		}
		if cand < bestCost {
			bestCost, bestLast = cand, c
		}
	}
	if bestLast < 0 {
		return TSResult{}, ErrIncompleteGraph
	}

	// Reconstruction: walk parents backward from (full, bestLast), clearing
	// one bit per step; position 0 and n close the cycle at the start city.
	tour := make([]int, e.n+1)
	tour[0], tour[e.n] = 0, 0
	mask, c = full, bestLast
	var i int
	for i = e.n - 1; i >= 1; i-- {
		tour[i] = c
		p = e.parent[mask*e.n+c]
		mask &^= cityBit(c)
		c = p
	}

	return TSResult{Tour: tour, Cost: round1e9(bestCost), States: e.done}, nil
}
