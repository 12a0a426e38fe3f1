package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// Surface is the rectangular character-grid region a widget draws into.
// Widgets never raise on a surface too small for their content; Clip and
// Fit degrade by truncating.
type Surface struct {
	Cols int
	Rows int
}

// Clip truncates a rendered line to the surface width. Measurement and
// truncation are ANSI-aware so styled lines keep their escapes intact.
func (s Surface) Clip(line string) string {
	if s.Cols <= 0 || lipgloss.Width(line) <= s.Cols {
		return line
	}
	if s.Cols == 1 {
		return truncate.String(line, 1)
	}
	return truncate.StringWithTail(line, uint(s.Cols-1), "…")
}

// Fit clips every line to the surface width and pads or trims the slice
// to exactly the surface height.
func (s Surface) Fit(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, s.Clip(line))
	}
	if s.Rows <= 0 {
		return out
	}
	if len(out) > s.Rows {
		out = out[:s.Rows]
	}
	for len(out) < s.Rows {
		out = append(out, "")
	}
	return out
}
