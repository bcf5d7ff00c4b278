package recipient

import (
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DomainGroup is the ordered set of recipients sharing one domain.
type DomainGroup struct {
	Domain     string
	Recipients []Recipient
}

// Groups is an ordered domain-to-recipients mapping. Domains appear in the
// order they were first seen.
type Groups []DomainGroup

// Domains returns the group keys in order.
func (g Groups) Domains() []string {
	return lo.Map(g, func(group DomainGroup, _ int) string { return group.Domain })
}

// Lookup returns the group for domain.
func (g Groups) Lookup(domain string) (DomainGroup, bool) {
	return lo.Find(g, func(group DomainGroup) bool { return group.Domain == domain })
}

// AllSelected reports whether every recipient in the group is selected. This
// is the domain checkbox state.
func (g DomainGroup) AllSelected() bool {
	return lo.EveryBy(g.Recipients, func(r Recipient) bool { return r.IsSelected })
}

// GroupByDomain partitions recipients by domain in a single pass, keeping
// first-seen domain order and input order within each group.
func GroupByDomain(recipients []Recipient) Groups {
	groups := Groups{}
	index := make(map[string]int)
	for _, r := range recipients {
		domain := r.Domain()
		i, ok := index[domain]
		if !ok {
			i = len(groups)
			index[domain] = i
			groups = append(groups, DomainGroup{Domain: domain})
		}
		groups[i].Recipients = append(groups[i].Recipients, r)
	}
	return groups
}

// FilteredAvailable returns the unselected recipients whose email contains
// searchText, ignoring case. An empty searchText matches every unselected
// recipient.
func FilteredAvailable(recipients []Recipient, searchText string) []Recipient {
	lower := cases.Lower(language.Und)
	needle := lower.String(searchText)
	return lo.Filter(recipients, func(r Recipient, _ int) bool {
		if r.IsSelected {
			return false
		}
		return needle == "" || strings.Contains(lower.String(r.Email), needle)
	})
}

// SelectedByDomain keeps only selected recipients in each group and drops
// groups left empty.
func SelectedByDomain(groups Groups) Groups {
	selected := Groups{}
	for _, group := range groups {
		members := lo.Filter(group.Recipients, func(r Recipient, _ int) bool { return r.IsSelected })
		if len(members) == 0 {
			continue
		}
		selected = append(selected, DomainGroup{Domain: group.Domain, Recipients: members})
	}
	return selected
}

// View is every projection a renderer needs for one snapshot.
type View struct {
	SearchText  string
	Available   Groups
	Suggestions []Recipient
	Selected    Groups
}

// Project derives the full view for s.
func Project(s Snapshot) View {
	grouped := GroupByDomain(s.recipients)
	return View{
		SearchText:  s.searchText,
		Available:   grouped,
		Suggestions: FilteredAvailable(s.recipients, s.searchText),
		Selected:    SelectedByDomain(grouped),
	}
}
