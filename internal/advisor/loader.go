// Package advisor parses the advisor's free-text profile into structured
// AdvisorCapabilities. The profile is loaded once at startup and treated as
// read-only afterward.
package advisor

import (
	"bufio"
	"os"
	"strings"

	"github.com/jonathan/outreach-agent/internal/types"
)

// The profile is plain text with labeled sections. Section headings are
// matched case-insensitively; list items start with "-" or "*". A past deal
// line reads "Industry: description" or "Industry - description".
//
//	Industries Served:
//	- Industrial Distribution
//	Past Deals:
//	- Industrial Distribution: sale of a regional pipe distributor
//	Tone:
//	- plain language, no jargon
//	Signature:
//	Jane Doe, Managing Director

type section int

const (
	sectionNone section = iota
	sectionIndustries
	sectionDeals
	sectionTone
	sectionSignature
)

var sectionHeadings = []struct {
	section  section
	headings []string
}{
	{sectionIndustries, []string{"industries served", "industries", "sectors served"}},
	{sectionDeals, []string{"past deals", "deal experience", "transactions", "track record"}},
	{sectionTone, []string{"tone", "tone rules", "style", "voice"}},
	{sectionSignature, []string{"signature", "signature block", "sign-off"}},
}

// LoadFile reads and parses an advisor profile from disk.
func LoadFile(path string) (*types.AdvisorCapabilities, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ProfileError{Message: "failed to read advisor profile " + path, Cause: err}
	}
	return Parse(string(data))
}

// Parse extracts capabilities from profile text. Extraction is deterministic
// and order-preserving. An empty profile is the one fatal case; anything
// else yields best-effort partial capabilities.
func Parse(profile string) (*types.AdvisorCapabilities, error) {
	if strings.TrimSpace(profile) == "" {
		return nil, &ProfileError{Message: "advisor profile is empty"}
	}

	caps := &types.AdvisorCapabilities{}
	current := sectionNone
	var signature []string

	scanner := bufio.NewScanner(strings.NewReader(profile))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if next, ok := headingFor(line); ok {
			current = next
			continue
		}

		switch current {
		case sectionIndustries:
			if item, ok := listItem(line); ok {
				caps.IndustriesServed = append(caps.IndustriesServed, item)
			}
		case sectionDeals:
			if item, ok := listItem(line); ok {
				caps.PastDeals = append(caps.PastDeals, parseDeal(item))
			}
		case sectionTone:
			if item, ok := listItem(line); ok {
				caps.ToneRules = append(caps.ToneRules, item)
			}
		case sectionSignature:
			signature = append(signature, line)
		case sectionNone:
			// Prose before the first heading carries no structure; skip it.
		}
	}

	caps.SignatureBlock = strings.Join(signature, "\n")
	return caps, nil
}

func headingFor(line string) (section, bool) {
	lowered := strings.ToLower(strings.TrimSuffix(strings.TrimSpace(line), ":"))
	for _, sh := range sectionHeadings {
		for _, h := range sh.headings {
			if lowered == h {
				return sh.section, true
			}
		}
	}
	return sectionNone, false
}

func listItem(line string) (string, bool) {
	for _, prefix := range []string{"- ", "* ", "• "} {
		if strings.HasPrefix(line, prefix) {
			item := strings.TrimSpace(strings.TrimPrefix(line, prefix))
			return item, item != ""
		}
	}
	// Bare lines inside a list section still count; profiles in the wild
	// are inconsistent about bullets.
	return line, line != ""
}

func parseDeal(item string) types.PastDeal {
	for _, sep := range []string{":", " - ", " — ", " – "} {
		if idx := strings.Index(item, sep); idx > 0 {
			return types.PastDeal{
				Industry:    strings.TrimSpace(item[:idx]),
				Description: strings.TrimSpace(item[idx+len(sep):]),
			}
		}
	}
	return types.PastDeal{Industry: strings.TrimSpace(item)}
}
