//nolint:revive // types is a standard Go package name pattern
package types

// HookType distinguishes recency hooks (anchored to a dated event) from
// relevance hooks (shared attribute or industry framing).
type HookType string

// Hook type values.
const (
	HookRecent   HookType = "recent"
	HookRelevant HookType = "relevant"
)

// Hook is the opening angle for an outreach email. Text is always non-empty;
// Fallback marks the generic industry-momentum form used when nothing
// company-specific was available.
type Hook struct {
	Type     HookType `json:"type"`
	Text     string   `json:"text"`
	Fallback bool     `json:"fallback,omitempty"`
}
