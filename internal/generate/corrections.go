package generate

import (
	"fmt"

	"github.com/jonathan/outreach-agent/internal/types"
)

// correctiveInstructions translates violations into concrete instructions
// for the retry prompt. Unknown violation types fall back to their details.
func correctiveInstructions(v *types.Violations, req *Request) []string {
	if v.Empty() {
		return nil
	}
	var out []string
	seen := make(map[string]bool)
	for _, violation := range v.Violations {
		instruction := instructionFor(violation, req)
		if instruction == "" || seen[instruction] {
			continue
		}
		seen[instruction] = true
		out = append(out, instruction)
	}
	return out
}

func instructionFor(v types.Violation, req *Request) string {
	switch v.Type {
	case types.ViolationWordCountLow:
		return fmt.Sprintf("The body was too short (%s). Expand it to at least %d words without padding.",
			v.Details, req.Config.MinWords)
	case types.ViolationWordCountHigh:
		return fmt.Sprintf("The body was too long (%s). Tighten it to at most %d words.",
			v.Details, req.Config.MaxWords)
	case types.ViolationMissingCTA:
		return "End with a low-pressure ask for a brief 15-minute conversation."
	case types.ViolationMissingCompany:
		return fmt.Sprintf("The subject line must mention %s by name.", req.Profile.DisplayName)
	case types.ViolationLegalSuffix:
		return fmt.Sprintf("Refer to the company only as %q, never with a legal suffix like Inc. or LLC. (%s)",
			req.Profile.DisplayName, v.Details)
	case types.ViolationSuperlative:
		return "Remove all promotional superlatives. " + v.Details
	case types.ViolationFabricatedClaim:
		return "Do not claim experience in this company's industry. " + v.Details +
			" Frame credibility around the sale process instead."
	case types.ViolationEmptySubject:
		return "Provide a non-empty subject line."
	case types.ViolationEmptyBody:
		return "Provide a non-empty email body."
	default:
		return v.Details
	}
}
