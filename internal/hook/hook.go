// Package hook selects the opening angle for an outreach email from a
// normalized company profile. Recency beats relevance whenever a specific
// dated event exists, because specificity drives engagement.
package hook

import (
	"fmt"
	"strings"

	"github.com/jonathan/outreach-agent/internal/types"
)

// boilerplatePhrases disqualify an event description from serving as a
// hook: they read as template copy, not a concrete happening.
var boilerplatePhrases = []string{
	"committed to excellence",
	"industry leading",
	"industry-leading",
	"world class",
	"world-class",
	"customer satisfaction",
	"best in class",
	"trusted partner",
	"proud to serve",
}

// Select returns exactly one hook for the profile. It never returns an
// empty hook: when no qualifying event or location exists, the result is a
// generic industry-momentum hook explicitly tagged as a fallback.
func Select(profile *types.CompanyProfile) types.Hook {
	if event := bestEvent(profile.RecentEvents); event != nil {
		return types.Hook{
			Type: types.HookRecent,
			Text: recentText(event),
		}
	}

	if strings.TrimSpace(profile.Location) != "" {
		return types.Hook{
			Type: types.HookRelevant,
			Text: fmt.Sprintf("their presence in %s and our work with owners in the same market", profile.Location),
		}
	}

	industry := primaryIndustry(profile)
	return types.Hook{
		Type:     types.HookRelevant,
		Text:     fmt.Sprintf("current buyer momentum in the %s sector", industry),
		Fallback: true,
	}
}

// TopTwo returns the two strongest hook candidates for variant generation:
// the primary selection plus the next-best qualifying event or the location
// fallback. The second value is false when only one candidate exists.
func TopTwo(profile *types.CompanyProfile) (types.Hook, types.Hook, bool) {
	primary := Select(profile)

	if primary.Type == types.HookRecent {
		remaining := make([]types.RecentEvent, 0, len(profile.RecentEvents))
		for _, ev := range profile.RecentEvents {
			if recentText(&ev) != primary.Text {
				remaining = append(remaining, ev)
			}
		}
		trimmed := *profile
		trimmed.RecentEvents = remaining
		secondary := Select(&trimmed)
		return primary, secondary, true
	}

	if !primary.Fallback {
		trimmed := *profile
		trimmed.Location = ""
		return primary, Select(&trimmed), true
	}
	return primary, primary, false
}

// bestEvent picks the best-ranked event with a specific description.
// Rank 1 is the most recent.
func bestEvent(events []types.RecentEvent) *types.RecentEvent {
	var best *types.RecentEvent
	for i := range events {
		ev := &events[i]
		if !specific(ev.Description) {
			continue
		}
		if best == nil || ev.RecencyRank < best.RecencyRank {
			best = ev
		}
	}
	return best
}

func specific(description string) bool {
	trimmed := strings.TrimSpace(description)
	if len(trimmed) < 20 {
		return false
	}
	lowered := strings.ToLower(trimmed)
	for _, phrase := range boilerplatePhrases {
		if strings.Contains(lowered, phrase) {
			return false
		}
	}
	return true
}

func recentText(event *types.RecentEvent) string {
	when := ""
	if event.Date != nil {
		when = " (" + event.Date.Format("January 2006") + ")"
	}
	return fmt.Sprintf("their recent %s%s: %s", event.Type, when, event.Description)
}

func primaryIndustry(profile *types.CompanyProfile) string {
	if len(profile.IndustryTags) > 0 {
		return profile.IndustryTags[0]
	}
	return "B2B Services"
}
