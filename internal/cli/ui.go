package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/roundtrip/graph"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // teal, primary accents
	colorGreen  = lipgloss.Color("35")  // success
	colorYellow = lipgloss.Color("220") // warnings
	colorWhite  = lipgloss.Color("255") // values
	colorGray   = lipgloss.Color("245") // secondary text
	colorDim    = lipgloss.Color("240") // muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric results.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(msg))
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + msg)
}

// printDetail prints an indented secondary line.
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println("  " + StyleDim.Render(msg))
}

// printKeyValue prints a labeled value with a fixed-width key column.
func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(10)
	fmt.Println(keyStyle.Render(key) + " " + StyleValue.Render(value))
}

// printNewline prints an empty line.
func printNewline() {
	fmt.Println()
}

// =============================================================================
// Value Formatting
// =============================================================================

// formatWeight renders a distance for display: "∞" for +Inf, no decimal
// point for integral values, shortest round-trip form otherwise.
func formatWeight(x float64) string {
	if math.IsInf(x, 1) {
		return "∞"
	}
	if x == math.Trunc(x) && math.Abs(x) < 1e15 {
		return strconv.FormatFloat(x, 'f', 0, 64)
	}

	return strconv.FormatFloat(x, 'g', -1, 64)
}

// formatTour renders a closed tour as "0 → 2 → 3 → 1 → 0".
func formatTour(tour []int) string {
	var b strings.Builder
	for i, c := range tour {
		if i > 0 {
			b.WriteString(" " + iconArrow + " ")
		}
		b.WriteString(strconv.Itoa(c))
	}

	return b.String()
}

// =============================================================================
// Matrix Rendering
// =============================================================================

// renderMatrix renders the distance matrix as a right-aligned table with a
// city index gutter. Intended for small instances only; the caller gates on
// size.
func renderMatrix(m *graph.Matrix) string {
	var (
		n     = m.CityCount()
		cells = make([]string, n*n)
		width = 1
		i, j  int
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			w, err := m.At(i, j)
			if err != nil {
				return ""
			}
			cells[i*n+j] = formatWeight(w)
			if rw := len([]rune(cells[i*n+j])); rw > width {
				width = rw
			}
		}
	}
	gutter := len(strconv.Itoa(n - 1))

	var b strings.Builder
	for i = 0; i < n; i++ {
		b.WriteString("  " + StyleDim.Render(pad(strconv.Itoa(i), gutter)))
		for j = 0; j < n; j++ {
			b.WriteString("  " + StyleValue.Render(pad(cells[i*n+j], width)))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// pad left-pads s with spaces to the given width. Padding happens before
// styling so ANSI escapes do not skew the alignment.
func pad(s string, width int) string {
	if delta := width - len([]rune(s)); delta > 0 {
		return strings.Repeat(" ", delta) + s
	}

	return s
}
