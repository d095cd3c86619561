// Package tsp — public types, options, and sentinel errors.
//
// Conventions:
//   - Sentinels carry "tsp: " prefixed messages and are matched with
//     errors.Is; Solve wraps ErrTooManyCities with the offending counts,
//     everything else returns bare.
//   - Options is a plain value; zero fields mean "use the default".
//     DefaultOptions returns the canonical baseline.
package tsp

import "errors"

var (
	// ErrNilGraph reports a nil *graph.Matrix handed to Solve or TourCost.
	ErrNilGraph = errors.New("tsp: nil graph")

	// ErrTooManyCities reports an instance above the admission ceiling.
	// The exponential state space makes this a resource guard, not a
	// correctness limit; raise Options.MaxCities to admit more.
	ErrTooManyCities = errors.New("tsp: city count exceeds the admission ceiling")

	// ErrIncompleteGraph reports that no finite-cost Hamiltonian cycle
	// exists: some required transition is +Inf (missing edge).
	ErrIncompleteGraph = errors.New("tsp: no finite-cost hamiltonian cycle")

	// ErrOverflow reports that two finite costs summed past the float64
	// range. The solve aborts immediately with no partial result.
	ErrOverflow = errors.New("tsp: accumulated cost exceeds float64 range")

	// ErrBadTour reports a tour that is not a closed walk over all cities:
	// wrong length, endpoints differing from 0, an index out of range, or a
	// repeated interior city.
	ErrBadTour = errors.New("tsp: malformed tour")
)

const (
	// DefaultMaxCities is the admission ceiling applied when
	// Options.MaxCities is zero or negative. At n = 20 the two DP tables
	// take roughly 160 MB; past that the cost climbs steeply.
	DefaultMaxCities = 20

	// MaxSupportedCities is the hard ceiling; MaxCities values above it are
	// clamped. At n = 24 the tables reach several gigabytes, the edge of
	// what a single solve call can sanely hold.
	MaxSupportedCities = 24

	// progressStride is how many finalized DP cells pass between Progress
	// callbacks; sparse enough to keep the fill loop unburdened.
	progressStride = 4096

	// roundScale stabilizes reported costs to 1e-9 so that the DP total and
	// an independent recomputation agree exactly across platforms.
	roundScale = 1e9
)

// ProgressFunc observes the DP fill. done counts finalized (subset, last)
// cells, total is fixed at (n-1)·2^(n-2) for n ≥ 2. Called every
// progressStride cells and exactly once more with done == total when the
// fill completes. Must be cheap; it runs on the solving goroutine.
type ProgressFunc func(done, total uint64)

// Options tunes a single Solve call.
type Options struct {
	// MaxCities is the admission ceiling on the city count. Zero or
	// negative means DefaultMaxCities; values above MaxSupportedCities
	// clamp to it.
	MaxCities int

	// Progress, when non-nil, receives sparse fill updates. nil disables
	// reporting entirely.
	Progress ProgressFunc
}

// DefaultOptions returns the canonical baseline: DefaultMaxCities ceiling,
// no progress reporting.
func DefaultOptions() Options {
	return Options{MaxCities: DefaultMaxCities}
}

// normalized resolves defaulting and clamping; Solve works on the result.
func (o Options) normalized() Options {
	if o.MaxCities <= 0 {
		o.MaxCities = DefaultMaxCities
	}
	if o.MaxCities > MaxSupportedCities {
		o.MaxCities = MaxSupportedCities
	}

	return o
}

// TSResult is the outcome of a successful Solve.
type TSResult struct {
	// Tour is the closed visiting order: n+1 indices, Tour[0] == Tour[n]
	// == 0, interior a permutation of {1..n-1}.
	Tour []int

	// Cost is the tour's total distance, stabilized to 1e-9.
	Cost float64

	// States counts DP cells finalized during the fill (0 when n == 1);
	// diagnostics for drivers that report work done.
	States uint64
}
