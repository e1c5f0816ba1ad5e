package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/outreach-agent/internal/normalize"
	"github.com/jonathan/outreach-agent/internal/types"
)

// Input carries everything the validator needs about one draft. Match may be
// nil when no expertise match was attempted.
type Input struct {
	Subject string
	Body    string
	Profile *types.CompanyProfile
	Match   *types.MatchResult
	Config  types.GenerationConfig
}

// ValidateDraft checks a draft against every outreach constraint and returns
// the violations found. A nil-violation result means the draft is sendable
// as-is.
func ValidateDraft(in Input) *types.Violations {
	var all []types.Violation

	subject := strings.TrimSpace(in.Subject)
	body := strings.TrimSpace(in.Body)

	if subject == "" {
		all = append(all, types.Violation{
			Type:     types.ViolationEmptySubject,
			Severity: "error",
			Details:  "subject line is empty",
		})
	}
	if body == "" {
		all = append(all, types.Violation{
			Type:     types.ViolationEmptyBody,
			Severity: "error",
			Details:  "email body is empty",
		})
		return &types.Violations{Violations: all}
	}

	all = append(all, checkWordCount(body, in.Config)...)
	all = append(all, checkCallToAction(body)...)
	all = append(all, checkSubjectMentionsCompany(subject, in.Profile)...)
	all = append(all, checkLegalSuffix(subject, body, in.Profile)...)
	if in.Config.AntiSpamMode {
		all = append(all, checkSuperlatives(subject, body)...)
	}
	if in.Match != nil && !in.Match.Matched {
		all = append(all, checkFabricatedExpertise(body)...)
	}

	return &types.Violations{Violations: all}
}

func checkWordCount(body string, config types.GenerationConfig) []types.Violation {
	count := types.CountWords(body)
	switch {
	case count < config.MinWords:
		return []types.Violation{{
			Type:     types.ViolationWordCountLow,
			Severity: "error",
			Details:  fmt.Sprintf("body has %d words, minimum is %d", count, config.MinWords),
		}}
	case count > config.MaxWords:
		return []types.Violation{{
			Type:     types.ViolationWordCountHigh,
			Severity: "error",
			Details:  fmt.Sprintf("body has %d words, maximum is %d", count, config.MaxWords),
		}}
	}
	return nil
}

func checkCallToAction(body string) []types.Violation {
	lowered := strings.ToLower(body)
	for _, phrase := range ctaPhrases {
		if strings.Contains(lowered, phrase) {
			return nil
		}
	}
	return []types.Violation{{
		Type:     types.ViolationMissingCTA,
		Severity: "error",
		Details:  "body has no low-pressure call to action (e.g. a brief 15-minute conversation)",
	}}
}

func checkSubjectMentionsCompany(subject string, profile *types.CompanyProfile) []types.Violation {
	if profile == nil || profile.DisplayName == "" {
		return nil
	}
	if strings.Contains(strings.ToLower(subject), strings.ToLower(profile.DisplayName)) {
		return nil
	}
	return []types.Violation{{
		Type:     types.ViolationMissingCompany,
		Severity: "error",
		Details:  fmt.Sprintf("subject does not mention %s", profile.DisplayName),
	}}
}

// checkLegalSuffix flags the company being named in registry form, e.g.
// "Summit Plastics, Inc." where the brand form is "Summit Plastics".
func checkLegalSuffix(subject, body string, profile *types.CompanyProfile) []types.Violation {
	if profile == nil || profile.DisplayName == "" {
		return nil
	}
	re := legalFormPattern(profile.DisplayName)
	text := subject + "\n" + body
	if match := re.FindString(text); match != "" {
		return []types.Violation{{
			Type:     types.ViolationLegalSuffix,
			Severity: "error",
			Details:  fmt.Sprintf("company named in legal form %q instead of %q", strings.TrimSpace(match), profile.DisplayName),
		}}
	}
	return nil
}

func legalFormPattern(displayName string) *regexp.Regexp {
	suffixes := normalize.LegalSuffixTokens()
	quoted := make([]string, len(suffixes))
	for i, s := range suffixes {
		quoted[i] = regexp.QuoteMeta(s)
	}
	pattern := `(?i)` + regexp.QuoteMeta(displayName) +
		`[\s,]+(` + strings.Join(quoted, "|") + `)\.?(\s|$|[,.;:])`
	return regexp.MustCompile(pattern)
}

func checkSuperlatives(subject, body string) []types.Violation {
	lowered := strings.ToLower(subject + "\n" + body)
	var violations []types.Violation
	for _, phrase := range superlativeDenylist {
		if strings.Contains(lowered, phrase) {
			violations = append(violations, types.Violation{
				Type:     types.ViolationSuperlative,
				Severity: "error",
				Details:  fmt.Sprintf("promotional phrase %q is not allowed for this sector", phrase),
			})
		}
	}
	return violations
}

// checkFabricatedExpertise runs only when the advisor has no industry match:
// any direct sector-experience claim is then an invented credential.
func checkFabricatedExpertise(body string) []types.Violation {
	lowered := strings.ToLower(body)
	for _, phrase := range experienceClaimPhrases {
		if strings.Contains(lowered, phrase) {
			return []types.Violation{{
				Type:     types.ViolationFabricatedClaim,
				Severity: "error",
				Details:  fmt.Sprintf("claims sector experience (%q) without a matching industry or deal", phrase),
			}}
		}
	}
	return nil
}
