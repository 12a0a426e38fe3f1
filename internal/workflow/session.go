package workflow

import "github.com/ispmail/userctl/internal/ui"

func saveChanges(env *Env) {
	env.UI.Push(ui.NewConfirm("Save Changes", "Do you want to save all changes?", "no", "yes", func(choice ui.Choice) {
		if choice != ui.OptionB {
			return
		}
		if err := env.Dir.Commit(); err != nil {
			env.fail(err)
		}
	}))
}

func discardChanges(env *Env) {
	env.UI.Push(ui.NewConfirm("Discard Changes", "Do you want to discard all changes?", "no", "yes", func(choice ui.Choice) {
		if choice != ui.OptionB {
			return
		}
		if err := env.Dir.Discard(); err != nil {
			env.fail(err)
		}
	}))
}
