//nolint:revive // types is a standard Go package name pattern
package types

// MatchConfidence grades how directly the advisor's experience maps to the
// company's industry.
type MatchConfidence string

// Match confidence levels.
const (
	// MatchExact means the advisor's own taxonomy term matched a company tag.
	MatchExact MatchConfidence = "exact"
	// MatchAdjacent means the match went through the taxonomy adjacency
	// table, one level removed from the company's tag.
	MatchAdjacent MatchConfidence = "adjacent"
	// MatchNone means no credible tie-in exists; the generator must use the
	// neutral authority framing instead of inventing one.
	MatchNone MatchConfidence = "none"
)

// MatchResult is the outcome of scoring advisor expertise against a
// company's industry tags.
type MatchResult struct {
	Matched    bool            `json:"matched"`
	Confidence MatchConfidence `json:"confidence"`
	// MatchedTag is the company tag that produced the match.
	MatchedTag string `json:"matched_tag,omitempty"`
	// AdvisorTerm is the advisor-side taxonomy term that matched (equal to
	// MatchedTag for exact matches).
	AdvisorTerm string `json:"advisor_term,omitempty"`
	// Evidence is the past deal backing the match, if one exists.
	Evidence *PastDeal `json:"evidence,omitempty"`
}
