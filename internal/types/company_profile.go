// Package types provides type definitions for structured data used throughout the outreach-agent system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// SizeSignal classifies the apparent size of a company when an exact
// employee count is unavailable.
type SizeSignal string

// SizeSignal values, from least to most information.
const (
	SizeUnknown SizeSignal = "unknown"
	SizeSmall   SizeSignal = "small"
	SizeMid     SizeSignal = "mid"
	SizeLarge   SizeSignal = "large"
)

// RecentEvent is a dated, company-specific happening extracted from scraped
// text (funding round, product launch, key hire, award).
type RecentEvent struct {
	Type        string     `json:"type"`
	Description string     `json:"description"`
	Date        *time.Time `json:"date,omitempty"`
	RecencyRank int        `json:"recency_rank"`
}

// CompanyProfile is the canonical, normalized view of a prospect company.
// Built once per scraped record and immutable thereafter.
type CompanyProfile struct {
	// DisplayName is the short brand form, never a legal-entity name.
	DisplayName string `json:"display_name"`
	// IndustryTags is ordered most-specific first.
	IndustryTags []string `json:"industry_tags"`
	Location     string   `json:"location,omitempty"`
	SizeSignal   SizeSignal `json:"size_signal"`
	// EmployeeEstimate is set when an explicit count was found; zero otherwise.
	EmployeeEstimate int           `json:"employee_estimate,omitempty"`
	RecentEvents     []RecentEvent `json:"recent_events,omitempty"`
	// RawExcerpt is truncated scraped text kept as a fallback signal for the
	// generator when structured fields are thin.
	RawExcerpt string `json:"raw_excerpt,omitempty"`
	// Revenue is the raw revenue string from the source record, if any.
	Revenue string `json:"revenue,omitempty"`
	Website string `json:"website,omitempty"`
	// LowConfidence marks a degraded profile: required signals (name, at
	// least one industry tag) could not be derived from the record.
	LowConfidence bool `json:"low_confidence,omitempty"`
}

// RawCompanyRecord is a single row from the scraping collaborator, possibly
// partial or garbled. The normalizer must tolerate anything here.
type RawCompanyRecord struct {
	CompanyName    string `json:"company_name"`
	Website        string `json:"website"`
	Industry       string `json:"industry"`
	Revenue        string `json:"revenue"`
	ScrapedContent string `json:"scraped_content"`
}
