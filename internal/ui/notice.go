package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Notice is a modal message with a single dismiss action. Workflows use
// it for success and failure reports; it returns nothing.
type Notice struct {
	node
	text         string
	continueText string
}

// NewNotice builds a notice with the default "ok" dismiss label.
func NewNotice(title, text string) *Notice {
	return &Notice{node: node{title: title}, text: text, continueText: "ok"}
}

func (n *Notice) Update(msg tea.KeyMsg) tea.Cmd {
	switch k, _ := Decode(msg); k {
	case KeyEnter, KeyQuit:
		n.close()
	}
	return nil
}

func (n *Notice) View(body Surface) []string {
	lines := []string{"", n.titleLine(), ""}
	for _, l := range strings.Split(n.text, "\n") {
		lines = append(lines, " "+l)
	}
	lines = append(lines, "", "   "+styles.Selected.Render(n.continueText))
	return lines
}
