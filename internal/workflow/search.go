package workflow

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/ispmail/userctl/internal/directory"
	"github.com/ispmail/userctl/internal/ui"
)

// matchRank orders search hits: exact substring matches come first,
// fuzzy matches after, everything else is dropped.
func matchRank(term, candidate string) int {
	switch {
	case strings.Contains(candidate, term):
		return 0
	case fuzzy.MatchFold(term, candidate):
		return 1
	}
	return -1
}

func bestRank(term string, candidates ...string) int {
	best := -1
	for _, c := range candidates {
		if r := matchRank(term, c); r >= 0 && (best < 0 || r < best) {
			best = r
		}
	}
	return best
}

func search(env *Env) {
	env.UI.Push(ui.NewPrompt("Search", "Enter the search term:", false, func(term string, ok bool) {
		if !ok || term == "" {
			return
		}
		showSearchResults(env, term)
	}))
}

func showSearchResults(env *Env, term string) {
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

	domains = rankDomains(term, domains)
	users = rankUsers(term, users)
	aliases = rankAliases(term, aliases)

	var b strings.Builder
	fmt.Fprintf(&b, "Search results for term \"%s\":\n\n", term)
	if len(domains) > 0 {
		fmt.Fprintf(&b, "Found %d domain(s):\n\n", len(domains))
		for _, domain := range domains {
			fmt.Fprintf(&b, "\t%s\n", domain.Name)
		}
	}
	if len(users) > 0 {
		b.WriteString("\n")
		appendUsers(&b, users)
	}
	if len(aliases) > 0 {
		appendAliases(&b, aliases, users)
	}
	env.UI.Push(ui.NewScrollInfo("Search Results", b.String()))
}

func rankDomains(term string, domains []directory.Domain) []directory.Domain {
	type ranked struct {
		rank   int
		domain directory.Domain
	}
	var hits []ranked
	for _, d := range domains {
		if r := matchRank(term, d.Name); r >= 0 {
			hits = append(hits, ranked{r, d})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].rank < hits[j].rank })
	out := make([]directory.Domain, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.domain)
	}
	return out
}

func rankUsers(term string, users []directory.User) []directory.User {
	type ranked struct {
		rank int
		user directory.User
	}
	var hits []ranked
	for _, u := range users {
		if r := matchRank(term, u.Email); r >= 0 {
			hits = append(hits, ranked{r, u})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].rank < hits[j].rank })
	out := make([]directory.User, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.user)
	}
	return out
}

func rankAliases(term string, aliases []directory.Alias) []directory.Alias {
	type ranked struct {
		rank  int
		alias directory.Alias
	}
	var hits []ranked
	for _, a := range aliases {
		if r := bestRank(term, a.Source, a.Destination); r >= 0 {
			hits = append(hits, ranked{r, a})
		}
	}
	// Secondary sort by source keeps the grouped rendering intact.
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].rank != hits[j].rank {
			return hits[i].rank < hits[j].rank
		}
		return hits[i].alias.Source < hits[j].alias.Source
	})
	out := make([]directory.Alias, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.alias)
	}
	return out
}
