// Package workflow composes the administrative flows out of widget
// primitives: each menu item is a closure over the session environment
// that pushes selectors, prompts, confirms and notices onto the focus
// stack.
package workflow

import (
	"github.com/ispmail/userctl/internal/blocklist"
	"github.com/ispmail/userctl/internal/directory"
	"github.com/ispmail/userctl/internal/ui"
)

// Env bundles the collaborators a workflow needs: the focus stack, the
// directory session and the postfix blocklist.
type Env struct {
	UI    *ui.Stack
	Dir   *directory.Session
	Block *blocklist.File
}

// fail aborts the whole session on a data-access error.
func (e *Env) fail(err error) {
	e.UI.Fail(err)
}

func (e *Env) notice(title, text string) {
	e.UI.Push(ui.NewNotice(title, text))
}
