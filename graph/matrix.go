// Package graph — Matrix: the validated symmetric distance model.
//
// A Matrix is constructed once, checked against every invariant, and never
// mutated. The solver treats it as a read-only oracle: CityCount() for n,
// At(i, j) for checked lookups, Weights() for a dense prefetch.
package graph

import (
	"math"
	"strconv"
	"strings"
)

// symTol is the structural tolerance for the zero-diagonal and symmetry
// checks. Weights that differ by no more than symTol are considered equal,
// which absorbs round-off introduced by upstream distance computations.
const symTol = 1e-12

// Matrix is an immutable n×n symmetric distance matrix with a zero diagonal
// and non-negative weights. +Inf entries mean "no edge". Safe for concurrent
// readers: no method mutates state after construction.
type Matrix struct {
	n int       // number of cities
	w []float64 // dense row-major weights, length n*n, offset i*n+j
}

// New builds a Matrix from literal weights, deep-copying the input.
//
// Contracts:
//   - weights must be square (len(weights[i]) == len(weights) for all i)
//     with at least one row.
//   - weights[i][i] must be zero (within symTol); weights[i][j] must equal
//     weights[j][i] (within symTol); finite weights must be non-negative;
//     NaN and -Inf are rejected; +Inf marks a missing edge.
//
// Errors: ErrNoCities, ErrNonSquare, ErrInvalidWeight, ErrNegativeWeight,
// ErrNonZeroDiagonal, ErrAsymmetry — the first violation in scan order.
//
// Complexity: O(n²) time and memory.
func New(weights [][]float64) (*Matrix, error) {
	n := len(weights)
	if n < 1 {
		return nil, ErrNoCities
	}

	var (
		i, j int     // row / column cursors
		x    float64 // weight under inspection
	)

	// Shape first: every row must carry exactly n entries.
	for i = 0; i < n; i++ {
		if len(weights[i]) != n {
			return nil, ErrNonSquare
		}
	}

	// Value scan in row-major order: numeric policy, sign, diagonal.
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			x = weights[i][j]
			if math.IsNaN(x) || math.IsInf(x, -1) {
				return nil, ErrInvalidWeight
			}
			if x < 0 {
				return nil, ErrNegativeWeight
			}
			if i == j && x > symTol {
				return nil, ErrNonZeroDiagonal
			}
		}
	}

	// Symmetry over the strict upper triangle.
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if math.Abs(weights[i][j]-weights[j][i]) > symTol {
				return nil, ErrAsymmetry
			}
		}
	}

	// Flatten into the dense row-major buffer; the caller keeps ownership of
	// the input and cannot reach the copy.
	w := make([]float64, n*n)
	for i = 0; i < n; i++ {
		copy(w[i*n:(i+1)*n], weights[i])
	}

	return &Matrix{n: n, w: w}, nil
}

// CityCount returns the number of cities n.
//
// Complexity: O(1).
func (m *Matrix) CityCount() int { return m.n }

// At returns the distance between cities i and j.
//
// Errors: ErrOutOfRange if i or j is outside [0, n).
//
// Complexity: O(1).
func (m *Matrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, ErrOutOfRange
	}

	return m.w[i*m.n+j], nil
}

// Weights returns a fresh copy of the dense row-major weight buffer
// (length n*n, offset i*n+j). Mutating the copy does not affect the Matrix.
//
// Complexity: O(n²) time and memory.
func (m *Matrix) Weights() []float64 {
	w := make([]float64, len(m.w))
	copy(w, m.w)

	return w
}

// String renders the matrix as n whitespace-separated rows, one per line,
// with "∞" for missing edges. Debugging aid; presentation layers do their
// own formatting.
//
// Complexity: O(n²).
func (m *Matrix) String() string {
	var (
		sb   strings.Builder // output accumulator
		i, j int             // row / column cursors
		x    float64         // current weight
	)
	for i = 0; i < m.n; i++ {
		for j = 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			x = m.w[i*m.n+j]
			if math.IsInf(x, 1) {
				sb.WriteString("∞")
			} else {
				sb.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
