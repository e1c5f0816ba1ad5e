package normalize

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/jonathan/outreach-agent/internal/types"
)

// maxRecentEvents caps how many events a profile carries.
const maxRecentEvents = 3

// eventKeywords maps an event type to trigger words scanned for in
// date-bearing sentences.
var eventKeywords = map[string][]string{
	"funding": {"raised", "funding", "series a", "series b", "series c", "investment", "acquired", "acquisition"},
	"launch":  {"launch", "launched", "unveiled", "introduced", "released", "opened", "expansion", "expanded"},
	"hire":    {"hired", "appointed", "joins as", "named as", "new ceo", "new cfo", "promoted"},
	"award":   {"award", "awarded", "recognized", "named to", "ranked", "won"},
}

var sentenceSplit = regexp.MustCompile(`[.!?]\s+`)

var datePatterns = []struct {
	re     *regexp.Regexp
	layout string
}{
	{regexp.MustCompile(`(?i)\b(january|february|march|april|may|june|july|august|september|october|november|december)\s+\d{1,2},\s+\d{4}\b`), "January 2, 2006"},
	{regexp.MustCompile(`(?i)\b(january|february|march|april|may|june|july|august|september|october|november|december)\s+\d{4}\b`), "January 2006"},
	{regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`), "2006-01-02"},
	{regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|jun|jul|aug|sep|oct|nov|dec)\s+\d{1,2},\s+\d{4}\b`), "Jan 2, 2006"},
}

// extractRecentEvents scans text for date-bearing sentences near event
// keywords, ranks them most-recent first, and caps the result. Sentences
// without a parseable date are skipped: an undatable claim cannot be ranked
// by recency and makes a weak hook.
func extractRecentEvents(text string, now time.Time) []types.RecentEvent {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var events []types.RecentEvent
	for _, sentence := range sentenceSplit.Split(text, -1) {
		sentence = strings.TrimSpace(sentence)
		if len(sentence) < 20 || len(sentence) > 400 {
			continue
		}
		eventType := classifyEvent(sentence)
		if eventType == "" {
			continue
		}
		date, ok := findDate(sentence)
		if !ok || date.After(now.AddDate(0, 1, 0)) {
			continue
		}
		d := date
		events = append(events, types.RecentEvent{
			Type:        eventType,
			Description: sentence,
			Date:        &d,
		})
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.After(*events[j].Date)
	})
	if len(events) > maxRecentEvents {
		events = events[:maxRecentEvents]
	}
	for i := range events {
		events[i].RecencyRank = i + 1
	}
	return events
}

func classifyEvent(sentence string) string {
	lowered := strings.ToLower(sentence)
	// Stable iteration order so ties classify deterministically.
	for _, eventType := range []string{"funding", "launch", "hire", "award"} {
		for _, kw := range eventKeywords[eventType] {
			if strings.Contains(lowered, kw) {
				return eventType
			}
		}
	}
	return ""
}

func findDate(sentence string) (time.Time, bool) {
	for _, p := range datePatterns {
		match := p.re.FindString(sentence)
		if match == "" {
			continue
		}
		if t, err := time.Parse(p.layout, canonicalizeDate(match)); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// canonicalizeDate title-cases month names so time.Parse accepts matches
// found in lowercased or shouty text.
func canonicalizeDate(match string) string {
	words := strings.Fields(match)
	for i, w := range words {
		if len(w) > 2 && w[0] >= 'a' && w[0] <= 'z' {
			words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
		} else if w[0] >= 'A' && w[0] <= 'Z' {
			words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
		}
	}
	return strings.Join(words, " ")
}
