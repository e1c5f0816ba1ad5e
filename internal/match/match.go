// Package match scores advisor expertise against a company's industry tags
// over the shared taxonomy. A niche tag can still produce a credible tie-in
// through the adjacency table; when nothing matches at any specificity
// level, the result says so and the generator must not invent experience.
package match

import (
	"github.com/jonathan/outreach-agent/internal/taxonomy"
	"github.com/jonathan/outreach-agent/internal/types"
)

// Matcher resolves advisor↔industry fit using a fixed taxonomy.
type Matcher struct {
	tax *taxonomy.Taxonomy
}

// New returns a Matcher over the given taxonomy.
func New(tax *taxonomy.Taxonomy) *Matcher {
	return &Matcher{tax: tax}
}

// Match walks the company's tags from most to least specific. An exact match
// uses the advisor's own term; failing that, each tag's adjacency targets
// are tried in table order. Past-deal evidence is attached when the advisor
// has a deal in the matched term's industry.
func (m *Matcher) Match(caps *types.AdvisorCapabilities, profile *types.CompanyProfile) types.MatchResult {
	for _, tag := range profile.IndustryTags {
		if m.advisorCovers(caps, tag) {
			return types.MatchResult{
				Matched:     true,
				Confidence:  types.MatchExact,
				MatchedTag:  tag,
				AdvisorTerm: tag,
				Evidence:    caps.DealInIndustry(tag),
			}
		}
	}

	for _, tag := range profile.IndustryTags {
		for _, adjacent := range m.tax.Adjacent(tag) {
			if m.advisorCovers(caps, adjacent) {
				return types.MatchResult{
					Matched:     true,
					Confidence:  types.MatchAdjacent,
					MatchedTag:  tag,
					AdvisorTerm: adjacent,
					Evidence:    caps.DealInIndustry(adjacent),
				}
			}
		}
	}

	return types.MatchResult{Confidence: types.MatchNone}
}

// advisorCovers reports whether the advisor lists the term directly or has
// closed a deal in it. Deal experience counts as coverage even when the
// industries_served list is incomplete.
func (m *Matcher) advisorCovers(caps *types.AdvisorCapabilities, term string) bool {
	return caps.ServesIndustry(term) || caps.DealInIndustry(term) != nil
}
