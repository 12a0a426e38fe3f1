package workflow

import (
	"fmt"
	"strings"

	"github.com/ispmail/userctl/internal/ui"
)

func manageBlocked(env *Env) {
	env.UI.Push(ui.NewMenu("Manage Blocked Emails", []ui.MenuItem{
		{Label: "List blocked entries", Run: func() { listBlocked(env) }},
		{Label: "Add blocked entry", Run: func() { addBlocked(env) }},
		{Label: "Remove blocked entry", Run: func() { removeBlocked(env) }},
	}))
}

func listBlocked(env *Env) {
	entries, err := env.Block.Entries()
	if err != nil {
		env.fail(err)
		return
	}
	var b strings.Builder
	b.WriteString("Blocked email addresses/patterns:\n\n")
	if len(entries) == 0 {
		b.WriteString("\tNo blocked entries found.\n")
	}
	for _, entry := range entries {
		fmt.Fprintf(&b, "\t%s\n", entry)
	}
	env.UI.Push(ui.NewScrollInfo("Blocked Entries", b.String()))
}

func addBlocked(env *Env) {
	preamble := "Enter the email address or pattern to block (e.g. user@domain.com or domain.com):"
	env.UI.Push(ui.NewPrompt("Add Blocked Entry", preamble, false, func(address string, _ bool) {
		if address == "" {
			return
		}
		entries, err := env.Block.Entries()
		if err != nil {
			env.fail(err)
			return
		}
		for _, entry := range entries {
			if entry == address {
				env.notice("Add Blocked Entry Failed",
					fmt.Sprintf("Entry '%s' is already blocked.", address))
				return
			}
		}
		if err := env.Block.Add(address); err != nil {
			env.fail(err)
			return
		}
		env.notice("Entry Blocked", fmt.Sprintf("Entry '%s' has been blocked.", address))
	}))
}

func removeBlocked(env *Env) {
	entries, err := env.Block.Entries()
	if err != nil {
		env.fail(err)
		return
	}
	if len(entries) == 0 {
		env.notice("No Blocked Entries", "There are no blocked entries to remove.")
		return
	}
	env.UI.Push(ui.NewSelector("Select Entry to Unblock", entries, func(idx int, picked bool) {
		if !picked {
			return
		}
		address := entries[idx]
		question := fmt.Sprintf("Do you want to unblock '%s'?", address)
		env.UI.Push(ui.NewConfirm("Confirm Unblock", question, "no", "yes", func(choice ui.Choice) {
			if choice != ui.OptionB {
				return
			}
			if err := env.Block.Remove(address); err != nil {
				env.fail(err)
				return
			}
			env.notice("Entry Unblocked", fmt.Sprintf("Entry '%s' has been unblocked.", address))
		}))
	}))
}
