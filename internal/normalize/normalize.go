// Package normalize turns raw scraped company records into canonical
// CompanyProfile values. Normalization is a pure transform: it never fails
// on malformed input, returning a degraded low-confidence profile instead.
package normalize

import (
	"regexp"
	"strings"
	"time"

	"github.com/jonathan/outreach-agent/internal/taxonomy"
	"github.com/jonathan/outreach-agent/internal/types"
)

var locationRe = regexp.MustCompile(`(?i)\b(?:headquartered|based|located|hq)\s+in\s+([A-Z][A-Za-z.\- ]+?(?:,\s*[A-Z]{2})?)\s*(?:[,.]|$|\s(?:and|with|since|serving)\b)`)

// Normalizer builds CompanyProfiles against a fixed taxonomy.
type Normalizer struct {
	tax *taxonomy.Taxonomy
	now func() time.Time
}

// New returns a Normalizer over the given taxonomy. The clock is injectable
// for tests via WithClock.
func New(tax *taxonomy.Taxonomy) *Normalizer {
	return &Normalizer{tax: tax, now: time.Now}
}

// WithClock overrides the normalizer's clock, returning the receiver.
func (n *Normalizer) WithClock(now func() time.Time) *Normalizer {
	n.now = now
	return n
}

// Normalize converts one raw record into a CompanyProfile. Required signals
// are a display name and at least one derived (non-fallback) industry tag;
// when either is missing the profile is flagged LowConfidence so generation
// proceeds with a generic fallback rather than failing.
func (n *Normalizer) Normalize(record types.RawCompanyRecord) types.CompanyProfile {
	page := extractPageContent(record.ScrapedContent)

	classifiable := strings.TrimSpace(record.Industry + ". " + page.Title + ". " + page.Text)

	displayName := CleanDisplayName(record.CompanyName)
	if self := selfReferentialName(page.Title, record.CompanyName); self != "" {
		displayName = self
	}

	tags := n.tax.Classify(classifiable)
	sizeSignal, employees := inferSizeSignal(page.Text)

	profile := types.CompanyProfile{
		DisplayName:      displayName,
		IndustryTags:     tags,
		Location:         extractLocation(page.Text),
		SizeSignal:       sizeSignal,
		EmployeeEstimate: employees,
		RecentEvents:     extractRecentEvents(page.Text, n.now()),
		RawExcerpt:       truncateExcerpt(page.Text),
		Revenue:          strings.TrimSpace(record.Revenue),
		Website:          strings.TrimSpace(record.Website),
	}

	if profile.DisplayName == "" || !n.derivedIndustry(record, tags) {
		profile.LowConfidence = true
	}
	if profile.DisplayName == "" {
		profile.DisplayName = "your company"
	}
	return profile
}

// derivedIndustry reports whether the tags carry real signal: anything
// beyond the bare taxonomy fallback, or a fallback confirmed by the source
// record naming an industry at all.
func (n *Normalizer) derivedIndustry(record types.RawCompanyRecord, tags []string) bool {
	if len(tags) == 0 {
		return false
	}
	if len(tags) == 1 && strings.EqualFold(tags[0], n.tax.Fallback) {
		return strings.TrimSpace(record.Industry) != ""
	}
	return true
}

func extractLocation(text string) string {
	m := locationRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
