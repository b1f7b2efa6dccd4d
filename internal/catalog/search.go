package catalog

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Group is one category section of the list page.
type Group struct {
	Category Category
	Features []Feature
}

// Search returns features whose name or short description contains query,
// ignoring case. A blank query matches everything.
func (c *Catalog) Search(query string) []Feature {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c.All()
	}
	var out []Feature
	for _, f := range c.features {
		if strings.Contains(strings.ToLower(f.Name), q) || strings.Contains(strings.ToLower(f.ShortDescription), q) {
			out = append(out, f)
		}
	}
	return out
}

// GroupByCategory buckets features in Categories order and drops empty
// categories. Order within a bucket follows the input.
func GroupByCategory(features []Feature) []Group {
	groups := make([]Group, 0, len(Categories()))
	for _, cat := range Categories() {
		var members []Feature
		for _, f := range features {
			if f.Category == cat {
				members = append(members, f)
			}
		}
		if len(members) > 0 {
			groups = append(groups, Group{Category: cat, Features: members})
		}
	}
	return groups
}

// maxSuggestDistance caps how far a typo may be from a feature name, as a
// fraction of the name length.
const maxSuggestDistance = 0.5

// Suggest returns the feature whose name is closest to query by edit
// distance. Queries are compared against the whole name and each of its
// words so "captons" finds Captions and "contrst" finds Sufficient Contrast.
func (c *Catalog) Suggest(query string) (Feature, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Feature{}, false
	}
	best := -1
	bestScore := 0.0
	for i, f := range c.features {
		name := strings.ToLower(f.Name)
		candidates := append([]string{name}, strings.Fields(name)...)
		for _, cand := range candidates {
			dist := levenshtein.ComputeDistance(q, cand)
			score := float64(dist) / float64(max(utf8.RuneCountInString(q), utf8.RuneCountInString(cand)))
			if score > maxSuggestDistance {
				continue
			}
			if best < 0 || score < bestScore {
				best = i
				bestScore = score
			}
		}
	}
	if best < 0 {
		return Feature{}, false
	}
	return c.features[best], true
}
