// White-box checks for the subset-enumeration kernels. These live in
// package tsp so the bit-twiddling stays unexported.
package tsp

import (
	"math/bits"
	"testing"
)

func TestCityBit(t *testing.T) {
	cases := []struct {
		city int
		want int
	}{
		{city: 1, want: 1},
		{city: 2, want: 2},
		{city: 3, want: 4},
		{city: 10, want: 1 << 9},
		{city: 24, want: 1 << 23},
	}
	for _, tc := range cases {
		if got := cityBit(tc.city); got != tc.want {
			t.Fatalf("cityBit(%d) = %d, want %d", tc.city, got, tc.want)
		}
	}
}

// TestNextSubsetSameSize_Enumerates walks every popcount class of a 5-bit
// universe and checks count, order, and coverage against the binomials.
func TestNextSubsetSameSize_Enumerates(t *testing.T) {
	const width = 5
	wantCounts := []int{0, 5, 10, 10, 5, 1} // C(5, size)

	var (
		full       = 1<<width - 1
		mask, seen int
		prev       int
		count      int
	)
	for size := 1; size <= width; size++ {
		seen, count, prev = 0, 0, 0
		for mask = 1<<size - 1; mask <= full; mask = nextSubsetSameSize(mask) {
			if bits.OnesCount(uint(mask)) != size {
				t.Fatalf("size %d: mask %b has popcount %d", size, mask, bits.OnesCount(uint(mask)))
			}
			if mask <= prev {
				t.Fatalf("size %d: mask %b did not increase past %b", size, mask, prev)
			}
			seen |= mask
			prev = mask
			count++
		}
		if count != wantCounts[size] {
			t.Fatalf("size %d: enumerated %d masks, want %d", size, count, wantCounts[size])
		}
		if seen != full {
			t.Fatalf("size %d: union %b does not cover the universe", size, seen)
		}
	}
}

func TestNextSubsetSameSize_KnownSuccessors(t *testing.T) {
	cases := []struct {
		mask, want int
	}{
		{mask: 0b011, want: 0b101},
		{mask: 0b101, want: 0b110},
		{mask: 0b110, want: 0b1001},
		{mask: 0b0111, want: 0b1011},
		{mask: 0b1100, want: 0b10001},
	}
	for _, tc := range cases {
		if got := nextSubsetSameSize(tc.mask); got != tc.want {
			t.Fatalf("next(%b) = %b, want %b", tc.mask, got, tc.want)
		}
	}
}

func TestFillStates(t *testing.T) {
	cases := []struct {
		n    int
		want uint64
	}{
		{n: 0, want: 0},
		{n: 1, want: 0},
		{n: 2, want: 1},
		{n: 3, want: 4},
		{n: 4, want: 12},
		{n: 5, want: 32},
		{n: 13, want: 24576},
		{n: 20, want: 19 << 18},
	}
	for _, tc := range cases {
		if got := fillStates(tc.n); got != tc.want {
			t.Fatalf("fillStates(%d) = %d, want %d", tc.n, got, tc.want)
		}
	}
}

// fillStates must equal the number of (subset, last) cells the engine
// touches: sum over sizes of size·C(n-1, size).
func TestFillStates_MatchesEnumeration(t *testing.T) {
	for n := 2; n <= 10; n++ {
		var (
			width = n - 1
			full  = 1<<width - 1
			mask  int
			cells uint64
		)
		for size := 1; size <= width; size++ {
			for mask = 1<<size - 1; mask <= full; mask = nextSubsetSameSize(mask) {
				cells += uint64(size)
			}
		}
		if got := fillStates(n); got != cells {
			t.Fatalf("n=%d: fillStates=%d, enumerated %d", n, got, cells)
		}
	}
}
