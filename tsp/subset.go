// Package tsp — subset-mask arithmetic for the Held–Karp state space.
//
// A subset of cities {1..n-1} is a bitmask of n-1 bits with bit k standing
// for city k+1; city 0 (the fixed start) never appears in a mask. The fill
// walks masks in strictly rising popcount so that every proper subset of S
// is finalized before S itself is touched.
package tsp

// cityBit returns the mask bit for city c.
// Contract: 1 ≤ c; callers never pass the start city.
func cityBit(c int) int {
	return 1 << uint(c-1)
}

// nextSubsetSameSize returns the next-larger mask with the same popcount
// (Gosper's hack). Iteration per size s starts at (1<<s)-1 and stops once
// the result exceeds the full mask.
// Contract: mask > 0.
func nextSubsetSameSize(mask int) int {
	low := mask & -mask        // lowest set bit
	lifted := mask + low       // carry the lowest run one position up
	shifted := (mask ^ lifted) >> 2

	return lifted | shifted/low // refill the run at the bottom
}

// fillStates returns the number of (subset, last) DP cells for n cities:
// Σ over s=1..n-1 of s·C(n-1, s) = (n-1)·2^(n-2). Zero for n < 2.
func fillStates(n int) uint64 {
	if n < 2 {
		return 0
	}

	return uint64(n-1) << uint(n-2)
}
