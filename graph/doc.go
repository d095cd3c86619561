// Package graph holds the distance-matrix model consumed by the solver.
//
// What it provides:
//   - Matrix: an immutable, validated n×n symmetric distance matrix with a
//     zero diagonal and non-negative weights. Cities are dense indices in
//     [0, n); +Inf marks a missing edge.
//   - Constructors: New (from literal weights), Parse/ParseFormat (from the
//     two text formats), Random (deterministic instance generation).
//
// Design principles:
//   - Validate eagerly: a Matrix either satisfies every invariant or is never
//     constructed. No mutation path exists afterward, so concurrent readers
//     need no synchronization.
//   - Strict sentinel errors (errors.Is), with line context wrapped in by the
//     parser at the boundary.
//   - Dense row-major storage (offset i*n+j); Weights() hands callers a flat
//     copy so hot loops avoid per-cell error handling.
//
// Complexity: construction and validation are O(n²) time, O(n²) memory;
// lookups are O(1).
package graph
