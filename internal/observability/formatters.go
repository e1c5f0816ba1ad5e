// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/outreach-agent/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintCompanyProfile outputs a human-readable summary of a normalized profile.
func (p *Printer) PrintCompanyProfile(profile *types.CompanyProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Company:  %s\n", profile.DisplayName))
	if len(profile.IndustryTags) > 0 {
		sb.WriteString(fmt.Sprintf("Industry: %s\n", strings.Join(profile.IndustryTags, ", ")))
	}
	if profile.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", profile.Location))
	}
	if profile.EmployeeEstimate > 0 {
		sb.WriteString(fmt.Sprintf("Size:     ~%d employees\n", profile.EmployeeEstimate))
	} else if profile.SizeSignal != types.SizeUnknown {
		sb.WriteString(fmt.Sprintf("Size:     %s\n", profile.SizeSignal))
	}

	if len(profile.RecentEvents) > 0 {
		sb.WriteString("\nRecent events:\n")
		count := min(len(profile.RecentEvents), maxItemsToShow)
		for i := 0; i < count; i++ {
			event := profile.RecentEvents[i]
			sb.WriteString(fmt.Sprintf("  #%d %s: %s\n", event.RecencyRank, event.Type, event.Description))
		}
	}
	if profile.LowConfidence {
		sb.WriteString("\n⚠ LOW CONFIDENCE: normalization found too few signals")
	}

	p.printBox("NORMALIZED COMPANY PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAngle outputs the selected hook and the expertise match behind a draft.
func (p *Printer) PrintAngle(hook types.Hook, match *types.MatchResult) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Hook (%s): %s\n", hook.Type, hook.Text))
	if hook.Fallback {
		sb.WriteString("  (generic fallback; nothing company-specific found)\n")
	}
	sb.WriteString("\n")

	if match == nil || !match.Matched {
		sb.WriteString("Expertise: no match; using neutral process framing")
	} else {
		sb.WriteString(fmt.Sprintf("Expertise: %s match on %s", match.Confidence, match.MatchedTag))
		if match.Confidence == types.MatchAdjacent {
			sb.WriteString(fmt.Sprintf("\n  via advisor term %s", match.AdvisorTerm))
		}
		if match.Evidence != nil {
			sb.WriteString(fmt.Sprintf("\n  evidence: %s", match.Evidence.Description))
		}
	}

	p.printBox("OUTREACH ANGLE", sb.String())
}

// PrintDraft outputs one generated draft with its validation status.
func (p *Printer) PrintDraft(draft *types.EmailDraft) {
	if draft == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Subject:  %s\n", draft.Subject))
	sb.WriteString(fmt.Sprintf("Words:    %d\n", draft.WordCount))
	sb.WriteString(fmt.Sprintf("Attempts: %d\n", draft.GenerationAttempt))
	if draft.Clean() {
		sb.WriteString("Status:   ✓ passed all checks")
	} else {
		sb.WriteString("Status:   ✗ flagged\n")
		for _, flag := range draft.ValidationFlags {
			sb.WriteString(fmt.Sprintf("  • %s\n", flag))
		}
	}

	title := "DRAFT"
	if draft.ID != "" {
		title = fmt.Sprintf("DRAFT %s — %s", draft.ID, draft.CompanyRef)
	}
	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAdjustments outputs the feedback-derived context applied to a run.
func (p *Printer) PrintAdjustments(adj *types.AdjustmentContext) {
	if adj == nil || (len(adj.Directives) == 0 && adj.Exemplar == nil) {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Scope: %s\n", adj.Scope))
	for _, d := range adj.Directives {
		sb.WriteString(fmt.Sprintf("  • %s\n", d))
	}
	if adj.Exemplar != nil {
		sb.WriteString(fmt.Sprintf("Exemplar: draft %s (%d words, %d paragraphs)\n",
			adj.Exemplar.DraftID, adj.Exemplar.WordCount, adj.Exemplar.Paragraphs))
	}

	p.printBox("FEEDBACK ADJUSTMENTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRunSummary outputs per-run counters after a generation batch.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintRunSummary(total, clean, flagged, failed int) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Companies processed: %d\n", total))
	sb.WriteString(fmt.Sprintf("Clean drafts:        %d\n", clean))
	sb.WriteString(fmt.Sprintf("Flagged drafts:      %d\n", flagged))
	sb.WriteString(fmt.Sprintf("Failed companies:    %d", failed))
	p.printBox("RUN SUMMARY", sb.String())
}
