package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// promptMargin is subtracted from the body width to size the input field.
const promptMargin = 9

// Prompt is a single-line text input below a preamble, with a cancel
// affordance reachable via Up/Down. Committing with the input focused
// reports (text, true) even for an empty buffer; committing on the
// cancel affordance reports ("", false).
type Prompt struct {
	node
	preamble     []string
	input        textinput.Model
	inputFocused bool
	done         func(text string, ok bool)
}

// NewPrompt builds a prompt. A masked prompt echoes every typed
// character as '*'.
func NewPrompt(title, preamble string, masked bool, done func(text string, ok bool)) *Prompt {
	input := textinput.New()
	input.Prompt = "> "
	if masked {
		input.EchoMode = textinput.EchoPassword
		input.EchoCharacter = '*'
	}
	input.Focus()
	return &Prompt{
		node:         node{title: title},
		preamble:     strings.Split(preamble, "\n"),
		input:        input,
		inputFocused: true,
		done:         done,
	}
}

func (p *Prompt) Resize(body Surface) {
	p.body = body
	width := body.Cols - promptMargin
	if width < 1 {
		width = 1
	}
	p.input.Width = width
}

// Value exposes the current buffer for tests.
func (p *Prompt) Value() string { return p.input.Value() }

func (p *Prompt) Update(msg tea.KeyMsg) tea.Cmd {
	switch k, _ := Decode(msg); k {
	case KeyEnter:
		p.close()
		if p.inputFocused {
			p.done(p.input.Value(), true)
		} else {
			p.done("", false)
		}
		return nil
	case KeyUp:
		p.inputFocused = true
		return p.input.Focus()
	case KeyDown:
		p.inputFocused = false
		p.input.Blur()
		return nil
	}
	// Everything else, 'q' and digits included, is typing.
	if !p.inputFocused {
		return nil
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

func (p *Prompt) View(body Surface) []string {
	lines := []string{"", p.titleLine(), ""}
	for _, l := range p.preamble {
		lines = append(lines, " "+l)
	}
	returnRow := "Return to " + p.parentCrumb()
	if !p.inputFocused {
		returnRow = styles.Selected.Render(returnRow)
	}
	lines = append(lines, "", "    "+p.input.View(), "", " "+returnRow)
	return lines
}
