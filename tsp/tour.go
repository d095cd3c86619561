// Package tsp — tour shape validation and copying.
package tsp

// ValidateTour checks that tour is the canonical closed form produced by
// Solve: length n+1, both endpoints at city 0, and the interior visiting
// every city of {1..n-1} exactly once. For n == 1 the only valid tour is
// [0, 0].
//
// Errors: ErrBadTour on any violation.
//
// Complexity: O(n) time, O(n) memory for the seen-set.
func ValidateTour(tour []int, n int) error {
	if n < 1 || len(tour) != n+1 {
		return ErrBadTour
	}
	if tour[0] != 0 || tour[n] != 0 {
		return ErrBadTour
	}

	var (
		seen = make([]bool, n) // visit marks, city 0 preseeded
		i, c int               // position / city
	)
	seen[0] = true
	for i = 1; i < n; i++ {
		c = tour[i]
		if c < 1 || c >= n || seen[c] {
			return ErrBadTour
		}
		seen[c] = true
	}

	return nil
}

// CopyTour returns an independent copy of tour; nil stays nil.
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)

	return out
}
