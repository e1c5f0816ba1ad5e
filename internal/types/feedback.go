//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// GlobalScope is the scope key for feedback that applies to every company.
const GlobalScope = "global"

// FeedbackKind distinguishes free-text reviewer notes from variant rankings.
type FeedbackKind string

// Feedback kinds.
const (
	FeedbackFreeText FeedbackKind = "free-text"
	FeedbackRanking  FeedbackKind = "ranking"
)

// RankedDraft references a draft id from a variant batch with its assigned
// rank (1 = best).
type RankedDraft struct {
	DraftID string `json:"draft_id"`
	Rank    int    `json:"rank"`
}

// FeedbackEntry is one append-only ledger record. Entries are never deleted;
// a correction is a newer entry for the same scope.
type FeedbackEntry struct {
	// Scope is GlobalScope or a company display name.
	Scope     string        `json:"scope"`
	Kind      FeedbackKind  `json:"kind"`
	Text      string        `json:"text,omitempty"`
	Ranking   []RankedDraft `json:"ranking,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

// Exemplar captures the measurable attributes of a top-ranked draft so later
// generations can imitate its shape without storing reviewer-edited prose.
type Exemplar struct {
	DraftID     string   `json:"draft_id"`
	Subject     string   `json:"subject"`
	Body        string   `json:"body"`
	WordCount   int      `json:"word_count"`
	ToneMarkers []string `json:"tone_markers,omitempty"`
	Paragraphs  int      `json:"paragraphs"`
}

// AdjustmentContext is the derived, current set of directives and preferred
// exemplar that bias the next generation for a scope. Produced only by the
// ledger's Derive; consumed read-only by the generator.
type AdjustmentContext struct {
	Scope      string    `json:"scope"`
	Directives []string  `json:"directives,omitempty"`
	Exemplar   *Exemplar `json:"exemplar,omitempty"`
}
