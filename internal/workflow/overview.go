package workflow

import (
	"fmt"
	"strings"

	"github.com/ispmail/userctl/internal/directory"
	"github.com/ispmail/userctl/internal/ui"
)

func listDomains(env *Env) {
	domains, err := env.Dir.Domains()
	if err != nil {
		env.fail(err)
		return
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d domain(s):\n\n", len(domains))
	for _, domain := range domains {
		fmt.Fprintf(&b, "\t%s\n", domain.Name)
	}
	env.UI.Push(ui.NewScrollInfo("Domain Overview", b.String()))
}

func listEverything(env *Env) {
	domains, err := env.Dir.Domains()
	if err != nil {
		env.fail(err)
		return
	}
	users, err := env.Dir.Users()
	if err != nil {
		env.fail(err)
		return
	}
	aliases, err := env.Dir.Aliases()
	if err != nil {
		env.fail(err)
		return
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d domain(s):\n\n", len(domains))
	for _, domain := range domains {
		fmt.Fprintf(&b, "\t%s\n", domain.Name)
	}
	b.WriteString("\n")
	appendUsers(&b, users)
	appendAliases(&b, aliases, users)
	env.UI.Push(ui.NewScrollInfo("Full Overview", b.String()))
}

func appendUsers(b *strings.Builder, users []directory.User) {
	fmt.Fprintf(b, "Found %d user(s):\n\n", len(users))
	for _, user := range users {
		fmt.Fprintf(b, "\t%s  --  %s quota\n", user.Email, directory.FormatQuota(user.Quota))
	}
}

// appendAliases groups aliases under their source and annotates every
// destination with whether it is one of the listed mailboxes.
func appendAliases(b *strings.Builder, aliases []directory.Alias, users []directory.User) {
	fmt.Fprintf(b, "\nFound %d alias(es):\n\n", len(aliases))
	prevSource := ""
	for _, alias := range aliases {
		note := "  (foreign destination email)"
		for _, user := range users {
			if user.Email == alias.Destination {
				note = "  (internal destination email)"
				break
			}
		}
		if alias.Source != prevSource {
			fmt.Fprintf(b, "\t%s\n", alias.Source)
		}
		fmt.Fprintf(b, "\t  -> %s%s\n", alias.Destination, note)
		prevSource = alias.Source
	}
}
