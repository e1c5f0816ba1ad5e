package normalize

import (
	"regexp"
	"strings"
)

// legalSuffixes are registry-style entity suffixes that never belong in a
// brand name. Order does not matter; stripping repeats until stable.
var legalSuffixes = []string{
	"incorporated", "corporation", "company", "limited",
	"inc", "llc", "ltd", "corp", "llp", "plc", "lp", "co",
	"gmbh", "s.a", "pty",
}

var trailingPunct = regexp.MustCompile(`[\s,.\-]+$`)

// CleanDisplayName strips legal-entity suffixes and stray punctuation from a
// company name, returning the short brand form. The result never contains a
// legal suffix; an input that is nothing but suffixes collapses to "".
func CleanDisplayName(name string) string {
	name = strings.TrimSpace(name)
	for {
		stripped := stripOneSuffix(name)
		if stripped == name {
			break
		}
		name = stripped
	}
	return strings.TrimSpace(name)
}

func stripOneSuffix(name string) string {
	trimmed := trailingPunct.ReplaceAllString(name, "")
	lowered := strings.ToLower(trimmed)
	for _, suffix := range legalSuffixes {
		if !strings.HasSuffix(lowered, suffix) {
			continue
		}
		cut := len(trimmed) - len(suffix)
		// Suffix must be its own word, not the tail of a brand word
		// ("Sysco" must not lose "co").
		if cut > 0 && !isWordBoundary(trimmed[cut-1]) {
			continue
		}
		return trailingPunct.ReplaceAllString(trimmed[:cut], "")
	}
	return trimmed
}

func isWordBoundary(b byte) bool {
	return b == ' ' || b == ',' || b == '.' || b == '-' || b == '\t'
}

// LegalSuffixTokens returns the recognized legal-entity suffixes. Callers use
// it to detect registry-form names appearing where a brand name belongs.
func LegalSuffixTokens() []string {
	out := make([]string, len(legalSuffixes))
	copy(out, legalSuffixes)
	return out
}

// selfReferentialName looks for the form a company uses for itself in page
// title or about text, which beats the registry name when present. It
// accepts the candidate only when it is a cleaned prefix-compatible variant
// of the registry name, so unrelated title boilerplate cannot hijack the name.
func selfReferentialName(pageTitle, registryName string) string {
	title := strings.TrimSpace(pageTitle)
	if title == "" {
		return ""
	}
	// Titles are commonly "Brand | tagline" or "Brand - tagline".
	for _, sep := range []string{"|", " - ", " – ", ":"} {
		if idx := strings.Index(title, sep); idx > 0 {
			title = title[:idx]
			break
		}
	}
	candidate := CleanDisplayName(title)
	if candidate == "" {
		return ""
	}
	cleanRegistry := CleanDisplayName(registryName)
	if cleanRegistry == "" {
		return candidate
	}
	if strings.EqualFold(candidate, cleanRegistry) ||
		strings.Contains(strings.ToLower(cleanRegistry), strings.ToLower(candidate)) {
		return candidate
	}
	return ""
}
