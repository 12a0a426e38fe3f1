package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ispmail/userctl/internal/logging/events"
)

const breadcrumbSeparator = " -> "

// Widget is a focus-holding UI unit. The stack delivers key messages to
// the top widget only; resizes fan out to every live widget.
type Widget interface {
	Title() string
	Breadcrumb() string
	Update(msg tea.KeyMsg) tea.Cmd
	View(body Surface) []string
	Resize(body Surface)
	base() *node
}

// node carries the identity, breadcrumb and stack registration every
// widget shares.
type node struct {
	title string
	crumb string
	stack *Stack
	body  Surface
}

func (n *node) Title() string      { return n.title }
func (n *node) Breadcrumb() string { return n.crumb }
func (n *node) base() *node        { return n }

func (n *node) Resize(body Surface) { n.body = body }

// close removes the owning widget from the stack. Every exit path of a
// widget funnels through here, so registration release cannot be missed.
func (n *node) close() {
	if n.stack != nil {
		n.stack.removeNode(n)
	}
}

// titleLine renders the breadcrumb row widgets place atop their content.
func (n *node) titleLine() string {
	return strings.Repeat(" ", 9) + styles.Title.Render(n.crumb)
}

// parentCrumb is the breadcrumb of the widget that pushed this one, used
// for "Return to <parent>" affordances.
func (n *node) parentCrumb() string {
	return strings.TrimSuffix(n.crumb, breadcrumbSeparator+n.title)
}

// Stack is the focus stack. The bottom element is the root menu; pushing
// a widget gives it exclusive keyboard input until it closes.
type Stack struct {
	widgets []Widget
	body    Surface
	failure error
}

func NewStack() *Stack { return &Stack{} }

// Push registers w as the new focus owner. Its breadcrumb is composed
// from the current top's breadcrumb and its own title.
func (s *Stack) Push(w Widget) {
	n := w.base()
	n.stack = s
	n.crumb = n.title
	if top := s.Top(); top != nil {
		n.crumb = top.Breadcrumb() + breadcrumbSeparator + n.title
	}
	s.widgets = append(s.widgets, w)
	events.UI.WidgetPush(n.title, n.crumb)
	w.Resize(s.body)
}

// Remove drops w wherever it sits in the stack. Workflows use this to
// retire a parent menu whose subject was just deleted.
func (s *Stack) Remove(w Widget) { s.removeNode(w.base()) }

func (s *Stack) removeNode(n *node) {
	for i, w := range s.widgets {
		if w.base() == n {
			events.UI.WidgetDone(w.Title())
			s.widgets = append(s.widgets[:i], s.widgets[i+1:]...)
			return
		}
	}
}

// Top returns the widget currently owning keyboard input.
func (s *Stack) Top() Widget {
	if len(s.widgets) == 0 {
		return nil
	}
	return s.widgets[len(s.widgets)-1]
}

func (s *Stack) Len() int { return len(s.widgets) }

// Resize stores the body surface and fans it out to every live widget.
func (s *Stack) Resize(body Surface) {
	s.body = body
	for _, w := range s.widgets {
		w.Resize(body)
	}
}

// Fail records a data-access failure. The application loop shuts down
// the session as soon as one is set.
func (s *Stack) Fail(err error) {
	if s.failure == nil {
		s.failure = err
	}
}

func (s *Stack) Failure() error { return s.failure }
