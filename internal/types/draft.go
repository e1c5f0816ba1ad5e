//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// EmailDraft is one generated outreach email. Immutable once returned; a
// retry produces a new draft, never mutates a failed one.
type EmailDraft struct {
	ID         string `json:"id"`
	Subject    string `json:"subject"`
	Body       string `json:"body"`
	WordCount  int    `json:"word_count"`
	CompanyRef string `json:"company_ref"`
	// GenerationAttempt is 1-based; the attempt that produced this draft.
	GenerationAttempt int `json:"generation_attempt"`
	// ValidationFlags holds violated-rule identifiers; empty when clean.
	ValidationFlags []string `json:"validation_flags,omitempty"`
}

// Clean reports whether the draft passed every post-generation check.
func (d *EmailDraft) Clean() bool {
	return len(d.ValidationFlags) == 0
}

// CountWords counts whitespace-separated words, the measure used for the
// body length constraint.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// GenerationConfig carries the hard constraints for one generation request.
type GenerationConfig struct {
	MinWords int    `json:"min_words" validate:"gt=0"`
	MaxWords int    `json:"max_words" validate:"gtfield=MinWords"`
	Tone     string `json:"tone" validate:"required"`
	// AntiSpamMode is set for commonly-spammed sectors: suppress generic
	// superlatives and lead harder with the specific hook.
	AntiSpamMode bool `json:"anti_spam_mode"`
	// MaxAttempts bounds total generation attempts per draft, regardless of
	// whether failures were oracle errors or validation errors.
	MaxAttempts int `json:"max_attempts" validate:"gte=1,lte=5"`
	// Temperature is the oracle sampling temperature for this request.
	Temperature float32 `json:"temperature" validate:"gte=0,lte=2"`
}

// DefaultGenerationConfig returns the standard first-outreach constraints.
func DefaultGenerationConfig() GenerationConfig {
	return GenerationConfig{
		MinWords:    150,
		MaxWords:    250,
		Tone:        "professional-consultative",
		MaxAttempts: 3,
		Temperature: 0.3,
	}
}
