package workflow

import (
	"fmt"
	"strings"

	"github.com/ispmail/userctl/internal/directory"
	"github.com/ispmail/userctl/internal/ui"
)

func addDomain(env *Env) {
	env.UI.Push(ui.NewPrompt("Add Domain", "Enter the new domain name:", false, func(name string, ok bool) {
		if !ok || name == "" {
			return
		}
		domains, err := env.Dir.Domains()
		if err != nil {
			env.fail(err)
			return
		}
		for _, domain := range domains {
			if domain.Name == name {
				env.notice("Add Domain Failed",
					fmt.Sprintf("Could not add domain '%s': domainname already exists.", name))
				return
			}
		}
		if err := env.Dir.CreateDomain(name); err != nil {
			env.fail(err)
			return
		}
		env.notice("Add Domain Successful", fmt.Sprintf("Domain '%s' successfully added.", name))
	}))
}

func manageDomain(env *Env) {
	domains, err := env.Dir.Domains()
	if err != nil {
		env.fail(err)
		return
	}
	labels := make([]string, len(domains))
	for i, domain := range domains {
		labels[i] = domain.Name
	}
	env.UI.Push(ui.NewSelector("Select Domain to manage", labels, func(idx int, picked bool) {
		if !picked {
			return
		}
		openDomainMenu(env, domains[idx])
	}))
}

func openDomainMenu(env *Env, domain directory.Domain) {
	var menu *ui.Menu
	items := []ui.MenuItem{
		{Label: "List users and aliases", Run: func() { listUsersAliases(env, domain) }},
		{Label: "Change password of an user", Run: func() { changePassword(env, domain) }},
		{Label: "Change quota of an user", Run: func() { changeQuota(env, domain) }},
		{Label: "Add user", Run: func() { addUser(env, domain) }},
		{Label: "Add alias", Run: func() { addAlias(env, domain) }},
		{Label: "Delete user", Run: func() { deleteUser(env, domain) }},
		{Label: "Delete alias", Run: func() { deleteAlias(env, domain) }},
		{Label: "Delete domain", Run: func() {
			// The menu is no longer valid once its domain is gone.
			deleteDomain(env, domain, func() { env.UI.Remove(menu) })
		}},
	}
	menu = ui.NewMenu(fmt.Sprintf("Manage Domain '%s'", domain.Name), items)
	env.UI.Push(menu)
}

func listUsersAliases(env *Env, domain directory.Domain) {
	users, err := env.Dir.UsersByDomain(domain.ID)
	if err != nil {
		env.fail(err)
		return
	}
	aliases, err := env.Dir.AliasesByDomain(domain.ID)
	if err != nil {
		env.fail(err)
		return
	}
	var b strings.Builder
	b.WriteString("\n")
	appendUsers(&b, users)
	appendAliases(&b, aliases, users)
	env.UI.Push(ui.NewScrollInfo("List of users and aliases", b.String()))
}

// selectUser pushes a user selector for domain and hands the pick to
// then. Backing out skips then entirely.
func selectUser(env *Env, domain directory.Domain, title string, then func(directory.User)) {
	users, err := env.Dir.UsersByDomain(domain.ID)
	if err != nil {
		env.fail(err)
		return
	}
	labels := make([]string, len(users))
	for i, user := range users {
		labels[i] = user.Email
	}
	env.UI.Push(ui.NewSelector(title, labels, func(idx int, picked bool) {
		if !picked {
			return
		}
		then(users[idx])
	}))
}

func changePassword(env *Env, domain directory.Domain) {
	selectUser(env, domain, "Select user for password change", func(user directory.User) {
		title1 := fmt.Sprintf("Password for user '%s' (1/2)", user.Email)
		env.UI.Push(ui.NewPrompt(title1, "Enter the new password:", true, func(first string, _ bool) {
			title2 := fmt.Sprintf("Password for user '%s' (2/2)", user.Email)
			env.UI.Push(ui.NewPrompt(title2, "Enter the new password again:", true, func(second string, _ bool) {
				if first == "" || first != second {
					env.notice("Password Changed Failed",
						fmt.Sprintf("Could not change password for user '%s': different new passwords.", user.Email))
					return
				}
				if err := env.Dir.UpdatePassword(user.ID, first); err != nil {
					env.fail(err)
					return
				}
				env.notice("Password Changed",
					fmt.Sprintf("Password for user '%s' successfully changed.", user.Email))
			}))
		}))
	})
}

func changeQuota(env *Env, domain directory.Domain) {
	selectUser(env, domain, "Select user for quota change", func(user directory.User) {
		title := fmt.Sprintf("Quota for user '%s'", user.Email)
		preamble := fmt.Sprintf("Old quota: %s\n\nEnter the new quota amount (e.g. 10MB or 0 for unlimited):",
			directory.FormatQuota(user.Quota))
		env.UI.Push(ui.NewPrompt(title, preamble, false, func(raw string, ok bool) {
			if !ok || raw == "" {
				return
			}
			quota, err := directory.ParseQuota(raw)
			if err != nil {
				env.notice("Quota Changed Failed",
					fmt.Sprintf("Could not change quota for user '%s': %v", user.Email, err))
				return
			}
			if err := env.Dir.UpdateQuota(user.ID, quota); err != nil {
				env.fail(err)
				return
			}
			env.notice("Quota Changed",
				fmt.Sprintf("Quota for user '%s' successfully changed to %s.", user.Email, directory.FormatQuota(quota)))
		}))
	})
}

func deleteUser(env *Env, domain directory.Domain) {
	selectUser(env, domain, "Select user to delete", func(user directory.User) {
		question := fmt.Sprintf("Do you want to delete the user '%s'?", user.Email)
		env.UI.Push(ui.NewConfirm("Delete User", question, "no", "yes", func(choice ui.Choice) {
			if choice != ui.OptionB {
				return
			}
			if err := env.Dir.DeleteUser(user.ID); err != nil {
				env.fail(err)
			}
		}))
	})
}

func deleteDomain(env *Env, domain directory.Domain, exitMenu func()) {
	question := fmt.Sprintf("Do you want to delete the domain '%s'?", domain.Name)
	env.UI.Push(ui.NewConfirm("Delete Domain", question, "no", "yes", func(choice ui.Choice) {
		if choice != ui.OptionB {
			return
		}
		if err := env.Dir.DeleteDomain(domain.ID); err != nil {
			env.fail(err)
			return
		}
		exitMenu()
	}))
}
