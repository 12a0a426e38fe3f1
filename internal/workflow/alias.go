package workflow

import (
	"fmt"
	"strings"

	"github.com/ispmail/userctl/internal/directory"
	"github.com/ispmail/userctl/internal/ui"
)

func addAlias(env *Env, domain directory.Domain) {
	preamble := fmt.Sprintf("Enter the new alias source (the domain '@%s' will be appended):", domain.Name)
	env.UI.Push(ui.NewPrompt("Add Alias (1/2)", preamble, false, func(source string, _ bool) {
		if source == "" || strings.Contains(source, "@") {
			env.notice("Add Alias Failed", "Could not add new alias: invalid source.")
			return
		}
		addAliasDestination(env, domain, source)
	}))
}

func addAliasDestination(env *Env, domain directory.Domain, source string) {
	preamble := "Enter the new alias destination (supply the full address, with domain):"
	env.UI.Push(ui.NewPrompt("Add Alias (2/2)", preamble, false, func(destination string, _ bool) {
		if destination == "" || !strings.Contains(destination, "@") {
			env.notice("Add Alias Failed", "Could not add new alias: invalid destination.")
			return
		}
		fullSource := source + "@" + domain.Name
		aliases, err := env.Dir.AliasesByDomain(domain.ID)
		if err != nil {
			env.fail(err)
			return
		}
		for _, alias := range aliases {
			if alias.Source == fullSource && alias.Destination == destination {
				env.notice("Add Alias Failed", "Could not add new alias: alias already exists.")
				return
			}
		}
		if err := env.Dir.CreateAlias(domain.ID, fullSource, destination); err != nil {
			env.fail(err)
			return
		}
		env.notice("Alias Added",
			fmt.Sprintf("Alias '%s' to '%s' successfully added.", fullSource, destination))
	}))
}

func deleteAlias(env *Env, domain directory.Domain) {
	aliases, err := env.Dir.AliasesByDomain(domain.ID)
	if err != nil {
		env.fail(err)
		return
	}
	labels := make([]string, len(aliases))
	for i, alias := range aliases {
		labels[i] = fmt.Sprintf("%s  ->  %s", alias.Source, alias.Destination)
	}
	env.UI.Push(ui.NewSelector("Select alias to delete", labels, func(idx int, picked bool) {
		if !picked {
			return
		}
		alias := aliases[idx]
		question := fmt.Sprintf("Do you want to delete the alias '%s' (to '%s')?", alias.Source, alias.Destination)
		env.UI.Push(ui.NewConfirm("Delete Alias", question, "no", "yes", func(choice ui.Choice) {
			if choice != ui.OptionB {
				return
			}
			if err := env.Dir.DeleteAlias(alias.ID); err != nil {
				env.fail(err)
			}
		}))
	}))
}
