// Package graph — sentinel errors.
//
// Naming and usage conventions:
//   - Messages are prefixed "graph: " and state the violated invariant.
//   - Callers match with errors.Is; constructors return sentinels bare, the
//     parser wraps them with "line N:" context via fmt.Errorf("%d: %w", ...).
//   - Validation reports the first violation in a fixed scan order
//     (shape → values → diagonal → symmetry), so a matrix with several
//     defects yields a deterministic error.
package graph

import "errors"

var (
	// ErrNoCities reports an instance with no cities (n < 1).
	ErrNoCities = errors.New("graph: need at least one city")

	// ErrNonSquare reports a weight table whose row count or row lengths
	// disagree with the declared city count.
	ErrNonSquare = errors.New("graph: matrix is not square")

	// ErrNonZeroDiagonal reports |w[i][i]| > symTol for some i.
	ErrNonZeroDiagonal = errors.New("graph: non-zero diagonal entry")

	// ErrAsymmetry reports |w[i][j] - w[j][i]| > symTol for some i, j.
	ErrAsymmetry = errors.New("graph: matrix is not symmetric")

	// ErrNegativeWeight reports a finite weight below zero.
	ErrNegativeWeight = errors.New("graph: negative weight")

	// ErrInvalidWeight reports a NaN or -Inf weight, or an unusable
	// generation bound. +Inf is not invalid: it encodes a missing edge.
	ErrInvalidWeight = errors.New("graph: weight is NaN or -Inf")

	// ErrOutOfRange reports a city index outside [0, n).
	ErrOutOfRange = errors.New("graph: city index out of range")

	// ErrBadFormat reports unparsable input text: malformed numbers,
	// wrong field counts, or a missing city-count header.
	ErrBadFormat = errors.New("graph: malformed input")
)
