package workflow

import "github.com/ispmail/userctl/internal/ui"

// Root builds the top-level Overview menu. Its synthetic exit row reads
// "Exit and Save Changes"; closing it ends the session with a commit.
func Root(env *Env) *ui.Menu {
	return ui.NewMenu("Overview", []ui.MenuItem{
		{Label: "List domains", Run: func() { listDomains(env) }},
		{Label: "List everything", Run: func() { listEverything(env) }},
		{Label: "Add domain", Run: func() { addDomain(env) }},
		{Label: "Search for domain/alias/email", Run: func() { search(env) }},
		{Label: "Manage domain", Run: func() { manageDomain(env) }},
		{Label: "Manage blocked emails", Run: func() { manageBlocked(env) }},
		{Label: "Save changes", Run: func() { saveChanges(env) }},
		{Label: "Discard changes", Run: func() { discardChanges(env) }},
	})
}
