package ledger

import (
	"strings"

	"github.com/jonathan/outreach-agent/internal/types"
)

// toneMarkerPatterns are measurable stylistic attributes worth imitating
// from a preferred draft. Each maps a marker name to substrings whose
// presence in the body sets the marker.
var toneMarkerPatterns = map[string][]string{
	"question-close":     {"?"},
	"first-person-plural": {"we ", "our ", "us "},
	"direct-address":      {"you ", "your "},
	"numeric-evidence":    {"$", "%", "0", "1", "2", "3", "4", "5", "6", "7", "8", "9"},
}

// BuildExemplar extracts the measurable attributes of a draft: word count,
// paragraph structure, and tone markers. The subject and body ride along so
// the generator can show, not describe, the preferred style.
func BuildExemplar(draft *types.EmailDraft) types.Exemplar {
	body := draft.Body
	lowered := strings.ToLower(body)

	var markers []string
	for _, name := range []string{"question-close", "first-person-plural", "direct-address", "numeric-evidence"} {
		for _, pattern := range toneMarkerPatterns[name] {
			if strings.Contains(lowered, pattern) {
				markers = append(markers, name)
				break
			}
		}
	}

	return types.Exemplar{
		DraftID:     draft.ID,
		Subject:     draft.Subject,
		Body:        body,
		WordCount:   types.CountWords(body),
		ToneMarkers: markers,
		Paragraphs:  countParagraphs(body),
	}
}

func countParagraphs(body string) int {
	count := 0
	for _, block := range strings.Split(body, "\n\n") {
		if strings.TrimSpace(block) != "" {
			count++
		}
	}
	return count
}
