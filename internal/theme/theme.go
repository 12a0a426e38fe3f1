package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Banner   *lipgloss.Style
	Title    *lipgloss.Style
	Item     *lipgloss.Style
	Selected *lipgloss.Style
	Error    *lipgloss.Style
	Info     *lipgloss.Style
	Footer   *lipgloss.Style
}

var defaultStyles = Styles{
	Banner: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	),
	Title: ptr(
		lipgloss.NewStyle().Bold(true),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Selected: ptr(
		lipgloss.NewStyle().Reverse(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
