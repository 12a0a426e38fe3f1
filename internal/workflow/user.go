package workflow

import (
	"fmt"
	"strings"

	"github.com/ispmail/userctl/internal/directory"
	"github.com/ispmail/userctl/internal/ui"
)

// addUser walks the four prompt steps of mailbox creation. Each step is
// its own function so the chain reads top to bottom.
func addUser(env *Env, domain directory.Domain) {
	preamble := fmt.Sprintf("Enter the new username (the domain '@%s' will be appended):", domain.Name)
	env.UI.Push(ui.NewPrompt("Add User (1/4)", preamble, false, func(name string, _ bool) {
		if name == "" || strings.Contains(name, "@") {
			env.notice("Add User Failed", "Could not add new user: invalid username.")
			return
		}
		email := name + "@" + domain.Name
		users, err := env.Dir.UsersByDomain(domain.ID)
		if err != nil {
			env.fail(err)
			return
		}
		for _, user := range users {
			if user.Email == email {
				env.notice("User Add Failed",
					fmt.Sprintf("Could not add user '%s': username already exists.", email))
				return
			}
		}
		addUserPassword(env, domain, email)
	}))
}

func addUserPassword(env *Env, domain directory.Domain, email string) {
	env.UI.Push(ui.NewPrompt("Add User (2/4)", "Enter the new password:", true, func(first string, _ bool) {
		env.UI.Push(ui.NewPrompt("Add User (3/4)", "Enter the new password again:", true, func(second string, _ bool) {
			if first == "" || second == "" || first != second {
				env.notice("User Add Failed",
					fmt.Sprintf("Could not add new user '%s': different new passwords.", email))
				return
			}
			addUserQuota(env, domain, email, first)
		}))
	}))
}

func addUserQuota(env *Env, domain directory.Domain, email, password string) {
	preamble := "Enter the new quota amount (e.g. 10MB or 0 for unlimited):"
	env.UI.Push(ui.NewPrompt("Add User (4/4)", preamble, false, func(raw string, ok bool) {
		if !ok {
			return
		}
		quota, err := directory.ParseQuota(raw)
		if err != nil {
			env.notice("User Add Failed",
				fmt.Sprintf("Could not add quota for user '%s': %v", email, err))
			return
		}
		if err := env.Dir.CreateUser(domain.ID, email, password, quota); err != nil {
			env.fail(err)
			return
		}
		env.notice("User Added Successful", fmt.Sprintf("User '%s' successfully added.", email))
	}))
}
