package masterdata

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

const maxSuggestions = 4

// Suggest returns recipe names close to query, best first.
func (c *Catalog) Suggest(query string) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if len(query) < 3 {
		return nil
	}

	type candidate struct {
		name string
		dist int
	}
	var cands []candidate
	seen := make(map[string]bool)

	for _, r := range c.Recipes {
		name := strings.ToLower(r.Name)
		if name == "" || seen[name] {
			continue
		}
		dist := levenshtein.ComputeDistance(query, name)
		if strings.HasPrefix(name, query) {
			dist = 0
		}
		if dist > suggestLimit(len(name)) {
			continue
		}
		seen[name] = true
		cands = append(cands, candidate{name: r.Name, dist: dist})
	}

	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].dist == cands[j].dist {
			return cands[i].name < cands[j].name
		}
		return cands[i].dist < cands[j].dist
	})

	out := make([]string, 0, maxSuggestions)
	for _, cand := range cands {
		out = append(out, cand.name)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}

func suggestLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
