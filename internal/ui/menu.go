package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ispmail/userctl/internal/logging/events"
)

// MenuItem pairs a label with the workflow it launches. Items capture
// whatever context they need (session, domain, parent menu) in their
// closure, so every entry is checked at composition time.
type MenuItem struct {
	Label string
	Run   func()
}

// Menu is an ordered list of items plus a synthetic exit row. The exit
// row ends the menu without invoking any workflow; on the root menu it
// reads "Exit and Save Changes", on nested menus "Return to <parent>".
type Menu struct {
	node
	items  []MenuItem
	cursor int
}

func NewMenu(title string, items []MenuItem) *Menu {
	return &Menu{node: node{title: title}, items: items}
}

// Rows reports the selectable row count, the exit row included.
func (m *Menu) Rows() int { return len(m.items) + 1 }

func (m *Menu) exitLabel() string {
	if m.crumb == m.title {
		return "Exit and Save Changes"
	}
	return "Return to " + m.parentCrumb()
}

func (m *Menu) Update(msg tea.KeyMsg) tea.Cmd {
	switch k, r := Decode(msg); k {
	case KeyUp:
		m.navigate(-1)
	case KeyDown:
		m.navigate(1)
	case KeyEnter:
		if m.cursor == len(m.items) {
			m.close()
			return nil
		}
		m.activate(m.cursor)
	case KeyDigit:
		idx := int(r - '1')
		if idx == len(m.items) {
			m.close()
			return nil
		}
		if idx >= 0 && idx < len(m.items) {
			m.activate(idx)
		}
	case KeyQuit:
		m.close()
	}
	return nil
}

func (m *Menu) navigate(delta int) {
	m.cursor = clamp(m.cursor+delta, 0, len(m.items))
	events.UI.MenuCursor(m.title, m.cursor)
}

func (m *Menu) activate(idx int) {
	item := m.items[idx]
	events.UI.MenuEnter(m.title, item.Label)
	item.Run()
}

func (m *Menu) View(body Surface) []string {
	lines := []string{"", m.titleLine(), ""}
	for i, item := range m.items {
		row := fmt.Sprintf("%d. %s", i+1, item.Label)
		if i == m.cursor {
			row = styles.Selected.Render(row)
		}
		lines = append(lines, " "+row)
	}
	exit := fmt.Sprintf("%d. %s", len(m.items)+1, m.exitLabel())
	if m.cursor == len(m.items) {
		exit = styles.Selected.Render(exit)
	}
	return append(lines, " "+exit)
}
