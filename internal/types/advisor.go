//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// PastDeal is a single transaction from the advisor's track record.
type PastDeal struct {
	Industry    string `json:"industry"`
	Description string `json:"description"`
}

// AdvisorCapabilities is the structured form of the advisor's free-text
// profile. Loaded once per process and treated as read-only.
type AdvisorCapabilities struct {
	IndustriesServed []string   `json:"industries_served"`
	PastDeals        []PastDeal `json:"past_deals"`
	// ToneRules are ordered style directives from the profile, applied to
	// every generation request.
	ToneRules      []string `json:"tone_rules"`
	SignatureBlock string   `json:"signature_block,omitempty"`
}

// ServesIndustry reports whether term appears in IndustriesServed,
// case-insensitively. Matching against the taxonomy happens in the match
// package; this is a direct membership check.
func (a *AdvisorCapabilities) ServesIndustry(term string) bool {
	for _, served := range a.IndustriesServed {
		if strings.EqualFold(served, term) {
			return true
		}
	}
	return false
}

// DealInIndustry returns the first past deal whose industry equals term,
// case-insensitively, or nil.
func (a *AdvisorCapabilities) DealInIndustry(term string) *PastDeal {
	for i := range a.PastDeals {
		if strings.EqualFold(a.PastDeals[i].Industry, term) {
			return &a.PastDeals[i]
		}
	}
	return nil
}
