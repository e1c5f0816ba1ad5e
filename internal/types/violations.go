//nolint:revive // types is a standard Go package name pattern
package types

// Violation identifiers used as validation flags on drafts.
const (
	ViolationWordCountLow    = "word_count_low"
	ViolationWordCountHigh   = "word_count_high"
	ViolationMissingCTA      = "missing_cta"
	ViolationMissingCompany  = "subject_missing_company"
	ViolationLegalSuffix     = "legal_suffix_present"
	ViolationSuperlative     = "generic_superlative"
	ViolationFabricatedClaim = "fabricated_claim"
	ViolationEmptySubject    = "empty_subject"
	ViolationEmptyBody       = "empty_body"
	ViolationOracleFailure   = "oracle_failure"
)

// Violation represents a single validation failure on a generated draft.
type Violation struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Details  string `json:"details"`
}

// Violations represents a collection of validation failures.
type Violations struct {
	Violations []Violation `json:"violations"`
}

// Empty reports whether no violations were recorded.
func (v *Violations) Empty() bool {
	return v == nil || len(v.Violations) == 0
}

// Flags returns the violation type identifiers, in order, without duplicates.
func (v *Violations) Flags() []string {
	if v == nil {
		return nil
	}
	seen := make(map[string]bool, len(v.Violations))
	flags := make([]string, 0, len(v.Violations))
	for _, violation := range v.Violations {
		if !seen[violation.Type] {
			seen[violation.Type] = true
			flags = append(flags, violation.Type)
		}
	}
	return flags
}
