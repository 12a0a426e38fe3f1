package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func pushPrompt(t *testing.T, masked bool, done func(string, bool)) (*Stack, *Prompt) {
	t.Helper()
	stack := NewStack()
	stack.Resize(testBody())
	prompt := NewPrompt("Add Domain", "Enter the new domain name:", masked, done)
	stack.Push(prompt)
	return stack, prompt
}

func typeString(w Widget, text string) {
	for _, r := range text {
		w.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestPromptBufferFollowsTyping(t *testing.T) {
	_, prompt := pushPrompt(t, false, func(string, bool) {})

	typeString(prompt, "exam")
	prompt.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	typeString(prompt, "mple.com")

	if got := prompt.Value(); got != "example.com" {
		t.Fatalf("expected buffer %q, got %q", "example.com", got)
	}
}

func TestPromptBackspaceOnEmptyBufferIsNoop(t *testing.T) {
	_, prompt := pushPrompt(t, false, func(string, bool) {})
	prompt.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	prompt.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := prompt.Value(); got != "" {
		t.Fatalf("expected empty buffer, got %q", got)
	}
}

func TestPromptTreatsQAndDigitsAsTyping(t *testing.T) {
	_, prompt := pushPrompt(t, false, func(string, bool) {})
	typeString(prompt, "q1q2")
	if got := prompt.Value(); got != "q1q2" {
		t.Fatalf("expected %q, got %q", "q1q2", got)
	}
}

func TestPromptCommitReportsBuffer(t *testing.T) {
	var gotText string
	var gotOK bool
	stack, prompt := pushPrompt(t, false, func(text string, ok bool) {
		gotText, gotOK = text, ok
	})

	typeString(prompt, "example.com")
	prompt.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if !gotOK || gotText != "example.com" {
		t.Fatalf("expected committed text, got (%q, %v)", gotText, gotOK)
	}
	if stack.Len() != 0 {
		t.Fatalf("expected prompt removed from stack")
	}
}

func TestPromptEmptyCommitDistinctFromCancel(t *testing.T) {
	var gotOK bool
	_, prompt := pushPrompt(t, false, func(text string, ok bool) { gotOK = ok })
	prompt.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !gotOK {
		t.Fatalf("empty committed value must still report ok")
	}

	_, prompt = pushPrompt(t, false, func(text string, ok bool) { gotOK = ok })
	prompt.Update(tea.KeyMsg{Type: tea.KeyDown})
	prompt.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if gotOK {
		t.Fatalf("commit on the cancel affordance must report not ok")
	}
}

func TestPromptFocusToggleStopsTyping(t *testing.T) {
	_, prompt := pushPrompt(t, false, func(string, bool) {})
	typeString(prompt, "abc")
	prompt.Update(tea.KeyMsg{Type: tea.KeyDown})
	typeString(prompt, "xyz")
	prompt.Update(tea.KeyMsg{Type: tea.KeyUp})
	typeString(prompt, "d")
	if got := prompt.Value(); got != "abcd" {
		t.Fatalf("expected typing ignored while cancel focused, got %q", got)
	}
}

func TestPromptMaskedEchoHidesInput(t *testing.T) {
	_, prompt := pushPrompt(t, true, func(string, bool) {})
	typeString(prompt, "secret")
	view := ansi.Strip(strings.Join(prompt.View(testBody()), "\n"))
	if strings.Contains(view, "secret") {
		t.Fatalf("masked prompt leaked input:\n%s", view)
	}
	if !strings.Contains(view, "******") {
		t.Fatalf("expected mask glyphs in view:\n%s", view)
	}
}
