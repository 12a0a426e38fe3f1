package ui

import tea "github.com/charmbracelet/bubbletea"

// Key is the shared navigation vocabulary every widget's input handler
// speaks. The raw rune travels alongside it so text inputs can treat
// 'q' and digits as ordinary typing instead of actions.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyEnter
	KeyQuit
	KeyDigit
)

// PageStep is how many rows PageUp/PageDown move at once.
const PageStep = 15

// Decode maps a key message to the navigation vocabulary.
func Decode(msg tea.KeyMsg) (Key, rune) {
	switch msg.Type {
	case tea.KeyUp:
		return KeyUp, 0
	case tea.KeyDown:
		return KeyDown, 0
	case tea.KeyPgUp:
		return KeyPageUp, 0
	case tea.KeyPgDown:
		return KeyPageDown, 0
	case tea.KeyEnter:
		return KeyEnter, 0
	case tea.KeyEsc:
		return KeyQuit, 0
	case tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return KeyNone, 0
		}
		r := msg.Runes[0]
		switch {
		case r == 'q' || r == 'Q':
			return KeyQuit, r
		case r >= '0' && r <= '9':
			return KeyDigit, r
		}
		return KeyNone, r
	}
	return KeyNone, 0
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
