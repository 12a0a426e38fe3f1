package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func pushMenu(t *testing.T, stack *Stack, title string, items []MenuItem) *Menu {
	t.Helper()
	menu := NewMenu(title, items)
	stack.Push(menu)
	return menu
}

func TestMenuExposesItemsPlusExitRow(t *testing.T) {
	stack := NewStack()
	stack.Resize(testBody())
	menu := pushMenu(t, stack, "Overview", []MenuItem{
		{Label: "one", Run: func() {}},
		{Label: "two", Run: func() {}},
	})
	if menu.Rows() != 3 {
		t.Fatalf("expected 3 selectable rows, got %d", menu.Rows())
	}
	view := ansi.Strip(strings.Join(menu.View(testBody()), "\n"))
	if !strings.Contains(view, "3. Exit and Save Changes") {
		t.Fatalf("expected root exit row, got:\n%s", view)
	}
}

func TestNestedMenuExitRowNamesParent(t *testing.T) {
	stack := NewStack()
	stack.Resize(testBody())
	pushMenu(t, stack, "Overview", nil)
	nested := pushMenu(t, stack, "Manage Domain 'example.com'", []MenuItem{
		{Label: "one", Run: func() {}},
	})
	view := ansi.Strip(strings.Join(nested.View(testBody()), "\n"))
	if !strings.Contains(view, "2. Return to Overview") {
		t.Fatalf("expected nested return row, got:\n%s", view)
	}
	if !strings.Contains(view, "Overview -> Manage Domain 'example.com'") {
		t.Fatalf("expected composed breadcrumb, got:\n%s", view)
	}
}

func TestMenuExitRowNeverInvokesCallback(t *testing.T) {
	stack := NewStack()
	stack.Resize(testBody())
	called := false
	menu := pushMenu(t, stack, "Overview", []MenuItem{
		{Label: "one", Run: func() { called = true }},
	})

	menu.Update(tea.KeyMsg{Type: tea.KeyDown})
	menu.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if called {
		t.Fatalf("exit row must not invoke a workflow callback")
	}
	if stack.Len() != 0 {
		t.Fatalf("expected menu removed from stack")
	}
}

func TestMenuDigitAcceleratorActivatesItem(t *testing.T) {
	stack := NewStack()
	stack.Resize(testBody())
	var activated string
	menu := pushMenu(t, stack, "Overview", []MenuItem{
		{Label: "one", Run: func() { activated = "one" }},
		{Label: "two", Run: func() { activated = "two" }},
	})

	menu.Update(runeKey('2'))
	if activated != "two" {
		t.Fatalf("expected accelerator to run item two, got %q", activated)
	}

	menu.Update(runeKey('3'))
	if stack.Len() != 0 {
		t.Fatalf("expected exit accelerator to close the menu")
	}
}

func TestMenuNavigationClamps(t *testing.T) {
	stack := NewStack()
	stack.Resize(testBody())
	menu := pushMenu(t, stack, "Overview", []MenuItem{
		{Label: "one", Run: func() {}},
		{Label: "two", Run: func() {}},
	})
	for i := 0; i < 10; i++ {
		menu.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	if menu.cursor != 2 {
		t.Fatalf("expected cursor clamped at exit row, got %d", menu.cursor)
	}
	for i := 0; i < 10; i++ {
		menu.Update(tea.KeyMsg{Type: tea.KeyUp})
	}
	if menu.cursor != 0 {
		t.Fatalf("expected cursor clamped at 0, got %d", menu.cursor)
	}
}

func TestMenuQuitClosesWithoutCallback(t *testing.T) {
	stack := NewStack()
	stack.Resize(testBody())
	called := false
	menu := pushMenu(t, stack, "Overview", []MenuItem{
		{Label: "one", Run: func() { called = true }},
	})
	menu.Update(runeKey('q'))
	if called {
		t.Fatalf("quit must not invoke a callback")
	}
	if stack.Len() != 0 {
		t.Fatalf("expected menu removed from stack")
	}
}
