package ui

import "strings"

// View implements tea.Model: banner header, the top widget's body inset
// by the horizontal margin, and the key-binding footer. Only the top of
// the stack is drawn; finished widgets beneath it are fully covered.
func (m *Model) View() string {
	lines := make([]string, 0, m.height)
	lines = append(lines, m.headerLines()...)

	body := m.bodySurface()
	var content []string
	if top := m.stack.Top(); top != nil {
		content = top.View(body)
	}
	margin := strings.Repeat(" ", bodyMargin)
	for _, l := range body.Fit(content) {
		lines = append(lines, margin+l)
	}

	lines = append(lines, strings.Repeat(" ", 7)+styles.Footer.Render(footerText))
	return strings.Join(lines, "\n")
}

func (m *Model) headerLines() []string {
	pad := m.width/2 - len(headerText)/2
	if pad < 0 {
		pad = 0
	}
	banner := strings.Repeat(" ", pad) + styles.Banner.Render(headerText)
	return []string{"", "", banner, "", ""}
}
