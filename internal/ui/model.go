package ui

import (
	"reflect"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ispmail/userctl/internal/logging/events"
	"github.com/ispmail/userctl/internal/theme"
)

const (
	headerRows = 5
	footerRows = 1
	bodyMargin = 2
	headerText = "ISPMail userctl"
	footerText = "Usage: (q) to return/quit, UP/DOWN to navigate"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model is the Bubble Tea model hosting the focus stack between a fixed
// banner header and a one-line key-binding footer.
type Model struct {
	stack       *Stack
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	aborted     bool

	handlers map[reflect.Type]msgHandler
}

// NewModel wires the model to an already-populated stack. Explicit width
// or height overrides win over terminal resize notifications.
func NewModel(stack *Stack, width, height int) *Model {
	m := &Model{stack: stack}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	m.stack.Resize(m.bodySurface())
	m.registerHandlers()
	return m
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// handleKeyMsg routes keyboard input to the top of the focus stack. This
// is the single dispatch path, so a widget finishing here is always the
// one that was registered.
func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Type == tea.KeyCtrlC {
		m.aborted = true
		return tea.Quit
	}
	top := m.stack.Top()
	if top == nil {
		return tea.Quit
	}
	cmd := top.Update(key)
	if m.stack.Failure() != nil {
		events.App.Fatal(m.stack.Failure())
		return tea.Quit
	}
	if m.stack.Len() == 0 {
		return tea.Quit
	}
	return cmd
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	events.App.Resize(m.height, m.width)
	m.stack.Resize(m.bodySurface())
	return nil
}

func (m *Model) bodySurface() Surface {
	return Surface{
		Cols: m.width - 2*bodyMargin,
		Rows: m.height - headerRows - footerRows,
	}
}

// Aborted reports whether the session ended with Ctrl+C.
func (m *Model) Aborted() bool { return m.aborted }

// Failure returns the data-access error that ended the session, if any.
func (m *Model) Failure() error { return m.stack.Failure() }

// Stack exposes the focus stack for tests.
func (m *Model) Stack() *Stack { return m.stack }
