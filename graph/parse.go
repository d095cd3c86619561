// Package graph — text-format parsing.
//
// Two batch formats share a one-line header holding the city count n:
//
//	matrix    n lines follow, each with n whitespace-separated weights;
//	edge list any number of "from to weight" lines; both directions are
//	          assigned, unlisted pairs stay at +Inf (no edge).
//
// The tokens "INF" (any case) and "∞" denote +Inf in either format.
// Auto-detection picks the matrix form iff exactly n data lines follow and
// each carries n fields; anything else is read as an edge list. An edge list
// whose line and field counts both happen to equal n is therefore read as a
// matrix — callers that know better pass FormatEdgeList explicitly.
//
// Every parse ends in New, so a parsed Matrix satisfies the same invariants
// as a literal one. Errors keep their sentinel identity under errors.Is and
// carry "line N:" context where a single line is at fault.
package graph

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Format selects the input layout for ParseFormat.
type Format int

const (
	// FormatAuto detects matrix vs edge-list from the line shape.
	FormatAuto Format = iota
	// FormatMatrix expects n rows of n weights after the header.
	FormatMatrix
	// FormatEdgeList expects "from to weight" triples after the header.
	FormatEdgeList
)

// String returns the flag-friendly name of the format.
func (f Format) String() string {
	switch f {
	case FormatMatrix:
		return "matrix"
	case FormatEdgeList:
		return "edges"
	default:
		return "auto"
	}
}

// ParseFormatName maps a flag value ("auto", "matrix", "edges") to a Format.
//
// Errors: ErrBadFormat for unknown names.
func ParseFormatName(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "auto", "":
		return FormatAuto, nil
	case "matrix":
		return FormatMatrix, nil
	case "edges", "edgelist", "edge-list":
		return FormatEdgeList, nil
	default:
		return FormatAuto, fmt.Errorf("graph: format %q: %w", name, ErrBadFormat)
	}
}

// srcLine is one non-empty input line, pre-split into fields and tagged with
// its 1-based position for error context.
type srcLine struct {
	num    int
	fields []string
}

// maxLineBytes bounds a single input line; matrix rows for the sizes this
// module admits fit with a wide margin.
const maxLineBytes = 1 << 20

// lineErrorf wraps a sentinel with the offending line number.
// errors.Is still matches the underlying sentinel.
func lineErrorf(num int, err error) error {
	return fmt.Errorf("graph: line %d: %w", num, err)
}

// Parse reads an instance with format auto-detection. See ParseFormat.
func Parse(r io.Reader) (*Matrix, error) { return ParseFormat(r, FormatAuto) }

// ParseFormat reads an instance in the given format.
//
// Contracts:
//   - The first non-empty line holds the city count n alone; n ≥ 1.
//   - Blank lines are ignored everywhere; "#"-prefixed lines are comments.
//
// Errors: ErrBadFormat for malformed tokens, field counts, or an unknown
// Format; ErrNoCities for n < 1; ErrNonSquare when the matrix body does not
// match the declared n; ErrOutOfRange for edge endpoints outside [0, n);
// plus every New validation sentinel.
//
// Complexity: O(bytes + n²) time, O(n²) memory.
func ParseFormat(r io.Reader, f Format) (*Matrix, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("graph: empty input: %w", ErrBadFormat)
	}

	// Header: a single token carrying n.
	head := lines[0]
	if len(head.fields) != 1 {
		return nil, lineErrorf(head.num, ErrBadFormat)
	}
	n, convErr := strconv.Atoi(head.fields[0])
	if convErr != nil {
		return nil, lineErrorf(head.num, ErrBadFormat)
	}
	if n < 1 {
		return nil, lineErrorf(head.num, ErrNoCities)
	}

	body := lines[1:]
	switch f {
	case FormatMatrix:
		return parseMatrixBody(n, body)
	case FormatEdgeList:
		return parseEdgeBody(n, body)
	case FormatAuto:
		if looksLikeMatrix(n, body) {
			return parseMatrixBody(n, body)
		}

		return parseEdgeBody(n, body)
	default:
		return nil, fmt.Errorf("graph: unknown format %d: %w", int(f), ErrBadFormat)
	}
}

// readLines collects non-empty, non-comment lines with their positions.
func readLines(r io.Reader) ([]srcLine, error) {
	var (
		lines []srcLine      // retained lines in input order
		num   int            // 1-based physical line counter
		text  string         // current line text
		sc    *bufio.Scanner // line scanner over r
	)
	sc = bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		num++
		text = strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		lines = append(lines, srcLine{num: num, fields: strings.Fields(text)})
	}
	if scanErr := sc.Err(); scanErr != nil {
		return nil, fmt.Errorf("graph: read input: %w", scanErr)
	}

	return lines, nil
}

// looksLikeMatrix reports whether the body has exactly n lines of n fields.
func looksLikeMatrix(n int, body []srcLine) bool {
	if len(body) != n {
		return false
	}
	for _, ln := range body {
		if len(ln.fields) != n {
			return false
		}
	}

	return true
}

// parseWeight converts one token to a weight; "INF" and "∞" yield +Inf.
func parseWeight(tok string) (float64, error) {
	if tok == "∞" || strings.EqualFold(tok, "inf") {
		return math.Inf(1), nil
	}
	x, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, ErrBadFormat
	}

	return x, nil
}

// parseMatrixBody reads n rows of n weights and validates via New.
func parseMatrixBody(n int, body []srcLine) (*Matrix, error) {
	if len(body) != n {
		return nil, fmt.Errorf("graph: %d rows for %d cities: %w", len(body), n, ErrNonSquare)
	}

	var (
		rows = make([][]float64, n) // parsed weight rows
		x    float64                // parsed weight
		err  error                  // token conversion error
		i, j int                    // row / column cursors
	)
	for i = 0; i < n; i++ {
		ln := body[i]
		if len(ln.fields) != n {
			return nil, lineErrorf(ln.num, ErrNonSquare)
		}
		rows[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			if x, err = parseWeight(ln.fields[j]); err != nil {
				return nil, lineErrorf(ln.num, err)
			}
			rows[i][j] = x
		}
	}

	return New(rows)
}

// parseEdgeBody reads "from to weight" triples onto a +Inf-initialized
// zero-diagonal grid; a repeated pair overwrites, mirroring is implicit.
func parseEdgeBody(n int, body []srcLine) (*Matrix, error) {
	var (
		rows = make([][]float64, n) // weight grid under construction
		i, j int                    // grid cursors
	)
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			if i != j {
				rows[i][j] = math.Inf(1)
			}
		}
	}

	var (
		from, to int     // edge endpoints
		x        float64 // edge weight
		err      error   // conversion error
	)
	for _, ln := range body {
		if len(ln.fields) != 3 {
			return nil, lineErrorf(ln.num, ErrBadFormat)
		}
		if from, err = strconv.Atoi(ln.fields[0]); err != nil {
			return nil, lineErrorf(ln.num, ErrBadFormat)
		}
		if to, err = strconv.Atoi(ln.fields[1]); err != nil {
			return nil, lineErrorf(ln.num, ErrBadFormat)
		}
		if from < 0 || from >= n || to < 0 || to >= n {
			return nil, lineErrorf(ln.num, ErrOutOfRange)
		}
		if x, err = parseWeight(ln.fields[2]); err != nil {
			return nil, lineErrorf(ln.num, err)
		}
		rows[from][to] = x
		rows[to][from] = x
	}

	return New(rows)
}
