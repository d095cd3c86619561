// Package roundtrip solves the symmetric travelling-salesman problem
// exactly: given a distance matrix, it finds the provably cheapest cycle
// that starts at city 0, visits every other city once, and returns home.
//
// What's inside?
//
//	A small, deterministic toolkit built around the Held-Karp dynamic
//	program:
//		• graph/ — validated symmetric distance matrices: construction,
//		  text parsing (matrix and edge-list formats), random instances
//		• tsp/   — the exact solver: subset dynamic program, tour
//		  validation and pricing, progress reporting
//		• cmd/roundtrip + internal/cli — the batch driver: solve and
//		  generate commands, styled output, TOML configuration
//
// Why roundtrip?
//
//   - Exact answers – the optimum, not an approximation, for n up to ~24
//   - Deterministic – same input, same tour, same cost, every run
//   - Strict inputs – symmetry, zero diagonal and weight sanity are
//     validated up front with matchable sentinel errors
//
// Quick start:
//
//	m, err := graph.New(distances)
//	if err != nil { ... }
//	res, err := tsp.Solve(m, tsp.DefaultOptions())
//	if err != nil { ... }
//	fmt.Println(res.Tour, res.Cost)
//
//	go get github.com/katalvlaran/roundtrip
package roundtrip
