package dropdown

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Overlay draws block over base with its top-left corner at (x, y). Lines of block that fall
// outside base are dropped and cells left of column 0 are clipped. Short base lines are
// padded with spaces.
func Overlay(base, block string, x, y int) string {
	if block == "" {
		return base
	}
	baseLines := strings.Split(base, "\n")
	for i, line := range strings.Split(block, "\n") {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		baseLines[row] = spliceLine(baseLines[row], line, x)
	}
	return strings.Join(baseLines, "\n")
}

func spliceLine(line, insert string, x int) string {
	iw := ansi.StringWidth(insert)
	if x < 0 {
		insert = ansi.TruncateLeft(insert, -x, "")
		iw += x
		x = 0
	}
	if iw <= 0 {
		return line
	}

	lw := ansi.StringWidth(line)
	if lw < x {
		line += strings.Repeat(" ", x-lw)
		lw = x
	}

	left := ansi.Truncate(line, x, "")
	right := ""
	if lw > x+iw {
		right = ansi.TruncateLeft(line, x+iw, "")
	}
	return left + ansi.ResetStyle + insert + ansi.ResetStyle + right
}

// DimRegion redraws the cells of r as unstyled text in colour c. It is how the background
// around an open panel is dimmed: the underlying styles are unknown, so the text is
// stripped and recoloured.
func DimRegion(base string, r Rect, c lipgloss.TerminalColor) string {
	if r.IsEmpty() || c == nil {
		return base
	}
	style := lipgloss.NewStyle().Foreground(c)
	lines := ensureLines(strings.Split(base, "\n"), r.MaxY())
	for row := max(0, r.Y); row < r.MaxY(); row++ {
		line := padLine(lines[row], r.MaxX())
		x0 := max(0, r.X)
		left := ansi.Truncate(line, x0, "")
		mid := ansi.Strip(ansi.Cut(line, x0, r.MaxX()))
		right := ansi.TruncateLeft(line, r.MaxX(), "")
		lines[row] = left + ansi.ResetStyle + style.Render(mid) + right
	}
	return strings.Join(lines, "\n")
}

// Canvas returns a blank width x height block, the starting point for hosts that have no
// background content.
func Canvas(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	line := strings.Repeat(" ", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// FitCanvas pads or crops s to exactly width x height cells.
func FitCanvas(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	lines = ensureLines(lines, height)
	for i, line := range lines {
		if ansi.StringWidth(line) > width {
			line = ansi.Truncate(line, width, "")
		}
		lines[i] = padLine(line, width)
	}
	return strings.Join(lines, "\n")
}

func ensureLines(lines []string, n int) []string {
	for len(lines) < n {
		lines = append(lines, "")
	}
	return lines
}

func padLine(line string, width int) string {
	if w := ansi.StringWidth(line); w < width {
		return line + strings.Repeat(" ", width-w)
	}
	return line
}

// clipBlock crops every line of block to the columns [from, to).
func clipBlock(block string, from, to int) string {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = ansi.Cut(line, from, to)
	}
	return strings.Join(lines, "\n")
}
