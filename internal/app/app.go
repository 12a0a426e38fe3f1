// Package app bootstraps a session: it opens the directory, builds the
// root menu and runs the Bubble Tea program, then finalises the staged
// changes according to how the session ended.
package app

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ispmail/userctl/internal/blocklist"
	"github.com/ispmail/userctl/internal/directory"
	"github.com/ispmail/userctl/internal/logging"
	"github.com/ispmail/userctl/internal/logging/events"
	"github.com/ispmail/userctl/internal/ui"
	"github.com/ispmail/userctl/internal/workflow"
)

// Config describes user-provided application options.
type Config struct {
	DatabasePath   string
	BlocklistPath  string
	RebuildCommand string
	Width          int
	Height         int
}

// ErrAborted reports a session the operator interrupted; staged changes
// were rolled back.
var ErrAborted = errors.New("session aborted")

// Run executes one administrative session. A normal exit commits the
// staged changes; an abort or data-access failure rolls them back.
func Run(cfg Config) error {
	session, err := directory.Open(cfg.DatabasePath)
	if err != nil {
		return err
	}

	stack := ui.NewStack()
	env := &workflow.Env{
		UI:    stack,
		Dir:   session,
		Block: blocklist.New(cfg.BlocklistPath, cfg.RebuildCommand),
	}
	stack.Push(workflow.Root(env))

	model := ui.NewModel(stack, cfg.Width, cfg.Height)
	program := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, runErr := program.Run()
	outcome, _ := finalModel.(*ui.Model)

	discard := func() {
		if cerr := session.Close(false); cerr != nil {
			logging.Error(cerr)
		}
		events.App.Exit(false)
	}

	switch {
	case runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled):
		discard()
		return fmt.Errorf("run ui: %w", runErr)
	case outcome != nil && outcome.Failure() != nil:
		discard()
		return outcome.Failure()
	case outcome != nil && outcome.Aborted():
		discard()
		return ErrAborted
	}

	if err := session.Close(true); err != nil {
		events.App.Exit(false)
		return err
	}
	events.App.Exit(true)
	return nil
}
