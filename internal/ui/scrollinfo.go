package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// scrollMargin keeps a few rows of headroom below the content when the
// offset is clamped.
const scrollMargin = 4

// ScrollInfo is a read-only multi-line viewer with a trailing return
// affordance appended to the content.
type ScrollInfo struct {
	node
	text   string
	offset int
}

func NewScrollInfo(title, text string) *ScrollInfo {
	return &ScrollInfo{node: node{title: title}, text: text}
}

func (s *ScrollInfo) Update(msg tea.KeyMsg) tea.Cmd {
	switch k, _ := Decode(msg); k {
	case KeyEnter, KeyQuit:
		s.close()
	case KeyUp:
		s.offset--
	case KeyDown:
		s.offset++
	case KeyPageUp:
		s.offset -= PageStep
	case KeyPageDown:
		s.offset += PageStep
	}
	return nil
}

func (s *ScrollInfo) View(body Surface) []string {
	lines := []string{s.titleLine(), ""}
	for _, l := range strings.Split(strings.TrimRight(s.text, "\n"), "\n") {
		lines = append(lines, " "+l)
	}
	lines = append(lines, "", " "+styles.Selected.Render("Return to "+s.parentCrumb()))

	// Clamp against the rendered line count every draw; the content
	// height only exists once the text has been laid out.
	max := len(lines) - body.Rows + scrollMargin
	if max > len(lines)-1 {
		max = len(lines) - 1
	}
	if max < 0 {
		max = 0
	}
	s.offset = clamp(s.offset, 0, max)
	return lines[s.offset:]
}
