package portfolio

import (
	"slices"
	"strings"

	"github.com/matthewbaird/showcase/internal/types"
)

// SkillAll disables the skill criterion.
const SkillAll = "all"

// Criteria selects published portfolios. Zero values match everything.
type Criteria struct {
	Search string
	Skill  string // a skill name, SkillAll, or empty
}

// Filter returns the portfolios matching c, in input order. Search is a
// case-insensitive substring match against the hero name, title, tagline
// and every skill; Skill is exact membership unless empty or SkillAll.
func Filter(ps []types.Portfolio, c Criteria) []types.Portfolio {
	term := strings.ToLower(strings.TrimSpace(c.Search))
	out := make([]types.Portfolio, 0, len(ps))
	for _, p := range ps {
		if c.Skill != "" && c.Skill != SkillAll && !slices.Contains(p.Skills, c.Skill) {
			continue
		}
		if term != "" && !matchesSearch(p, term) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesSearch(p types.Portfolio, term string) bool {
	for _, s := range []string{p.Hero.Name, p.Hero.Title, p.Hero.Tagline} {
		if strings.Contains(strings.ToLower(s), term) {
			return true
		}
	}
	return slices.ContainsFunc(p.Skills, func(s string) bool {
		return strings.Contains(strings.ToLower(s), term)
	})
}

// Skills returns the sorted set of skills used across ps.
func Skills(ps []types.Portfolio) []string {
	out := []string{}
	for _, p := range ps {
		out = append(out, p.Skills...)
	}
	slices.Sort(out)
	return slices.Compact(out)
}
