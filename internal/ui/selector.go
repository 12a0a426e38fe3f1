package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Selector presents an ordered list of labels plus a synthetic return
// row. Its result is the highlighted index and a picked flag, so backing
// out is distinguishable from any genuine selection.
type Selector struct {
	node
	labels []string
	cursor int
	offset int
	done   func(index int, picked bool)
}

func NewSelector(title string, labels []string, done func(index int, picked bool)) *Selector {
	return &Selector{node: node{title: title}, labels: labels, done: done}
}

func (s *Selector) Update(msg tea.KeyMsg) tea.Cmd {
	switch k, _ := Decode(msg); k {
	case KeyUp:
		s.navigate(-1)
	case KeyDown:
		s.navigate(1)
	case KeyPageUp:
		s.navigate(-PageStep)
	case KeyPageDown:
		s.navigate(PageStep)
	case KeyEnter:
		picked := s.cursor < len(s.labels)
		index := 0
		if picked {
			index = s.cursor
		}
		s.close()
		s.done(index, picked)
	case KeyQuit:
		s.close()
		s.done(0, false)
	}
	return nil
}

// navigate moves the cursor and clamps at the ends; no wraparound. The
// synthetic return row is the last reachable position.
func (s *Selector) navigate(delta int) {
	s.cursor = clamp(s.cursor+delta, 0, len(s.labels))
}

// cursorLine is the content row the cursor sits on; the return row is
// separated from the list by a blank line.
func (s *Selector) cursorLine() int {
	if s.cursor < len(s.labels) {
		return 3 + s.cursor
	}
	return 4 + len(s.labels)
}

func (s *Selector) View(body Surface) []string {
	lines := []string{"", s.titleLine(), ""}
	returnRow := "Return to " + s.parentCrumb()
	if len(s.labels) == 0 {
		lines = append(lines, " No entry to select", "", " "+styles.Selected.Render(returnRow))
		return lines
	}
	for i, label := range s.labels {
		row := fmt.Sprintf("%d. %s", i+1, label)
		if i == s.cursor {
			row = styles.Selected.Render(row)
		}
		lines = append(lines, " "+row)
	}
	if s.cursor == len(s.labels) {
		returnRow = styles.Selected.Render(returnRow)
	}
	lines = append(lines, "", " "+returnRow)

	// The viewport follows the cursor; recomputed every draw since a
	// resize changes the window height.
	window := body.Rows - 5
	if window < 1 {
		window = 1
	}
	line := s.cursorLine()
	if line-s.offset > window {
		s.offset = line - window
	}
	if line < s.offset {
		s.offset = line
	}
	if s.offset < 0 {
		s.offset = 0
	}
	if s.offset >= len(lines) {
		s.offset = len(lines) - 1
	}
	return lines[s.offset:]
}
