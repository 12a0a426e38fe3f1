package ui

import tea "github.com/charmbracelet/bubbletea"

// Choice is the result of a Confirm. NoDecision (the 'q' escape hatch)
// is distinct from explicitly picking OptionA; callers act only on
// OptionB for destructive steps.
type Choice int

const (
	NoDecision Choice = iota
	OptionA
	OptionB
)

// Confirm poses a question with two labelled options, option A
// highlighted by default. Call sites pass options in (safe, destructive)
// order so the default is always the harmless one.
type Confirm struct {
	node
	text    string
	optionA string
	optionB string
	second  bool
	done    func(Choice)
}

func NewConfirm(title, text, optionA, optionB string, done func(Choice)) *Confirm {
	return &Confirm{
		node:    node{title: title},
		text:    text,
		optionA: optionA,
		optionB: optionB,
		done:    done,
	}
}

// Options returns the two labels in (A, B) order.
func (c *Confirm) Options() (string, string) { return c.optionA, c.optionB }

func (c *Confirm) Update(msg tea.KeyMsg) tea.Cmd {
	switch k, _ := Decode(msg); k {
	case KeyUp:
		c.second = false
	case KeyDown:
		c.second = true
	case KeyEnter:
		choice := OptionA
		if c.second {
			choice = OptionB
		}
		c.close()
		c.done(choice)
	case KeyQuit:
		c.close()
		c.done(NoDecision)
	}
	return nil
}

func (c *Confirm) View(body Surface) []string {
	optA := c.optionA
	optB := styles.Selected.Render(c.optionB)
	if !c.second {
		optA = styles.Selected.Render(c.optionA)
		optB = c.optionB
	}
	return []string{
		"",
		c.titleLine(),
		"",
		" " + c.text,
		"",
		"   " + optA,
		"",
		"   " + optB,
	}
}
