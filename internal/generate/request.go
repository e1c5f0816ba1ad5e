// Package generate turns a normalized company profile, a selected hook, and
// an expertise match into a validated outreach email draft via the oracle,
// retrying with corrective instructions inside a fixed attempt budget.
package generate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/outreach-agent/internal/prompts"
	"github.com/jonathan/outreach-agent/internal/types"
)

// Request is everything needed to generate one draft. Adjustment may be nil
// when the ledger has no feedback for the scope.
type Request struct {
	Profile      *types.CompanyProfile
	Capabilities *types.AdvisorCapabilities
	Hook         types.Hook
	Match        *types.MatchResult
	Adjustment   *types.AdjustmentContext
	Config       types.GenerationConfig
	// DraftID is assigned by the caller (variant ids); a fresh uuid is used
	// when empty.
	DraftID string
}

func (r *Request) validate() error {
	if r.Profile == nil {
		return &Error{Message: "company profile is required"}
	}
	if r.Capabilities == nil {
		return &Error{Message: "advisor capabilities are required"}
	}
	if r.Hook.Text == "" {
		return &Error{Message: "hook text is required"}
	}
	if err := r.Config.Validate(); err != nil {
		return &Error{Message: "invalid generation config", Cause: err}
	}
	return nil
}

// buildPrompt assembles the generation prompt. Corrections from a prior
// failed attempt are appended so the oracle fixes them instead of repeating
// them.
func buildPrompt(req *Request, corrections []string) string {
	template := prompts.MustGet("generation.json", "draft-email")

	extraRules := ""
	if req.Config.AntiSpamMode {
		extraRules = prompts.MustGet("generation.json", "anti-spam-rules") + "\n"
	}

	prompt := prompts.Format(template, map[string]string{
		"AdvisorContext": advisorContext(req.Capabilities),
		"CompanyContext": companyContext(req.Profile),
		"Hook":           req.Hook.Text,
		"MatchGuidance":  matchGuidance(req.Match),
		"Adjustments":    adjustmentSection(req),
		"DisplayName":    req.Profile.DisplayName,
		"MinWords":       strconv.Itoa(req.Config.MinWords),
		"MaxWords":       strconv.Itoa(req.Config.MaxWords),
		"Tone":           req.Config.Tone,
		"ExtraRules":     extraRules,
	})

	if exemplar := exemplarSection(req.Adjustment); exemplar != "" {
		prompt += "\n\n" + exemplar
	}
	if len(corrections) > 0 {
		retry := prompts.MustGet("generation.json", "corrective-retry")
		prompt += "\n\n" + prompts.Format(retry, map[string]string{
			"Corrections": "- " + strings.Join(corrections, "\n- "),
		})
	}
	return prompt
}

func advisorContext(caps *types.AdvisorCapabilities) string {
	var sb strings.Builder
	if len(caps.IndustriesServed) > 0 {
		sb.WriteString("Industries served: " + strings.Join(caps.IndustriesServed, ", ") + "\n")
	}
	for _, deal := range caps.PastDeals {
		sb.WriteString(fmt.Sprintf("Past deal (%s): %s\n", deal.Industry, deal.Description))
	}
	for _, rule := range caps.ToneRules {
		sb.WriteString("Voice rule: " + rule + "\n")
	}
	if sb.Len() == 0 {
		return "An independent M&A advisor serving private company owners."
	}
	return strings.TrimRight(sb.String(), "\n")
}

func companyContext(profile *types.CompanyProfile) string {
	var sb strings.Builder
	sb.WriteString("Name: " + profile.DisplayName + "\n")
	if len(profile.IndustryTags) > 0 {
		sb.WriteString("Industry: " + strings.Join(profile.IndustryTags, ", ") + "\n")
	}
	if profile.Location != "" {
		sb.WriteString("Location: " + profile.Location + "\n")
	}
	if profile.EmployeeEstimate > 0 {
		sb.WriteString(fmt.Sprintf("Employees: about %d\n", profile.EmployeeEstimate))
	} else if profile.SizeSignal != types.SizeUnknown {
		sb.WriteString("Size: " + string(profile.SizeSignal) + "\n")
	}
	if profile.Revenue != "" {
		sb.WriteString("Revenue: " + profile.Revenue + "\n")
	}
	for _, event := range profile.RecentEvents {
		sb.WriteString("Recent: " + event.Description + "\n")
	}
	if profile.LowConfidence && profile.RawExcerpt != "" {
		sb.WriteString("Unstructured notes: " + profile.RawExcerpt + "\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// matchGuidance tells the oracle how much expertise it may claim. With no
// match the only allowed framing is process authority, never sector
// experience.
func matchGuidance(match *types.MatchResult) string {
	if match == nil || !match.Matched {
		return "The advisor has NO direct experience in this company's industry. " +
			"Do not claim or imply any. Frame credibility around the sale process itself: " +
			"confidentiality, buyer access, and negotiating on the owner's behalf."
	}
	var sb strings.Builder
	switch match.Confidence {
	case types.MatchExact:
		sb.WriteString(fmt.Sprintf("The advisor works directly in %s.", match.MatchedTag))
	case types.MatchAdjacent:
		sb.WriteString(fmt.Sprintf(
			"The advisor works in %s, which is closely related to this company's %s. "+
				"Frame the connection honestly as related experience, not direct.",
			match.AdvisorTerm, match.MatchedTag))
	}
	if match.Evidence != nil {
		sb.WriteString(fmt.Sprintf(" Reference this transaction as proof: %s.", match.Evidence.Description))
	}
	return sb.String()
}

func adjustmentSection(req *Request) string {
	var directives []string
	if req.Adjustment != nil {
		directives = append(directives, req.Adjustment.Directives...)
	}
	if len(directives) == 0 {
		return "(none beyond the rules below)"
	}
	return "- " + strings.Join(directives, "\n- ")
}

func exemplarSection(adj *types.AdjustmentContext) string {
	if adj == nil || adj.Exemplar == nil {
		return ""
	}
	template := prompts.MustGet("generation.json", "exemplar-guidance")
	return prompts.Format(template, map[string]string{
		"ExemplarSubject": adj.Exemplar.Subject,
		"ExemplarBody":    adj.Exemplar.Body,
	})
}
