// Package graph — deterministic random instance generation.
//
// Random exists for benchmarks, tests, and the CLI's generate command; it is
// not part of the solving path. Determinism policy: the zero seed maps to a
// fixed default, so "no seed given" still reproduces bit-for-bit.
package graph

import (
	"math"
	"math/rand"
)

// defaultRNGSeed replaces a zero seed so that default runs stay reproducible.
const defaultRNGSeed int64 = 1

// maxDrawBound is the exclusive ceiling on Random's maxWeight: the inclusive
// draw bound ⌊maxWeight⌋ must fit the generator's int64 span, and float64
// values past int64 range convert with an implementation-defined result.
const maxDrawBound = float64(1 << 63)

// rngFromSeed builds the generator stream for Random.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// Random builds a complete symmetric instance with a zero diagonal and
// integer-valued weights drawn uniformly from [1, ⌊maxWeight⌋].
//
// Contracts:
//   - n ≥ 1; maxWeight finite, ≥ 1, and below 2⁶³ so that ⌊maxWeight⌋ fits
//     the generator's int64 draw span.
//   - Identical (n, maxWeight, seed) triples yield identical matrices;
//     seed == 0 selects the fixed default seed.
//
// Errors: ErrNoCities, ErrInvalidWeight.
//
// Complexity: O(n²) time and memory.
func Random(n int, maxWeight float64, seed int64) (*Matrix, error) {
	if n < 1 {
		return nil, ErrNoCities
	}
	if math.IsNaN(maxWeight) || math.IsInf(maxWeight, 0) || maxWeight < 1 {
		return nil, ErrInvalidWeight
	}
	if maxWeight >= maxDrawBound {
		return nil, ErrInvalidWeight
	}

	var (
		rng  = rngFromSeed(seed)      // deterministic weight stream
		span = int64(maxWeight)       // inclusive upper bound ⌊maxWeight⌋
		rows = make([][]float64, n)   // weight grid under construction
		i, j int                      // upper-triangle cursors
		x    float64                  // drawn weight
	)
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, n)
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			x = float64(1 + rng.Int63n(span))
			rows[i][j] = x
			rows[j][i] = x
		}
	}

	return New(rows)
}
