package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/outreach-agent/internal/types"
)

func validBody(t *testing.T) string {
	t.Helper()
	// 150 filler words plus a closing CTA sentence keeps the count in range.
	filler := strings.Repeat("word ", 160)
	return filler + "Would you be open to a brief 15-minute conversation next week?"
}

func profile() *types.CompanyProfile {
	return &types.CompanyProfile{
		DisplayName:  "Summit Plastics",
		IndustryTags: []string{"Plastics Manufacturing"},
	}
}

func TestValidateDraft_Clean(t *testing.T) {
	v := ValidateDraft(Input{
		Subject: "A question about Summit Plastics",
		Body:    validBody(t),
		Profile: profile(),
		Config:  types.DefaultGenerationConfig(),
	})
	assert.True(t, v.Empty(), "violations: %v", v.Flags())
}

func TestValidateDraft_WordCountBounds(t *testing.T) {
	config := types.DefaultGenerationConfig()

	short := ValidateDraft(Input{
		Subject: "Summit Plastics",
		Body:    "Too short. Open to a brief 15-minute conversation?",
		Profile: profile(),
		Config:  config,
	})
	assert.Contains(t, short.Flags(), types.ViolationWordCountLow)

	long := ValidateDraft(Input{
		Subject: "Summit Plastics",
		Body:    strings.Repeat("word ", 300) + "Open to a brief call?",
		Profile: profile(),
		Config:  config,
	})
	assert.Contains(t, long.Flags(), types.ViolationWordCountHigh)
}

func TestValidateDraft_MissingCTA(t *testing.T) {
	body := strings.Repeat("word ", 170) + "Let me know."
	v := ValidateDraft(Input{
		Subject: "Summit Plastics",
		Body:    body,
		Profile: profile(),
		Config:  types.DefaultGenerationConfig(),
	})
	assert.Contains(t, v.Flags(), types.ViolationMissingCTA)
}

func TestValidateDraft_SubjectMustMentionCompany(t *testing.T) {
	v := ValidateDraft(Input{
		Subject: "Quick question",
		Body:    validBody(t),
		Profile: profile(),
		Config:  types.DefaultGenerationConfig(),
	})
	assert.Contains(t, v.Flags(), types.ViolationMissingCompany)
}

func TestValidateDraft_LegalSuffixFlagged(t *testing.T) {
	testCases := []struct {
		name string
		text string
		want bool
	}{
		{"comma inc", "I came across Summit Plastics, Inc. last week.", true},
		{"bare llc", "Summit Plastics LLC caught my attention.", true},
		{"brand form only", "Summit Plastics caught my attention.", false},
		{"suffix on other words", "The plastics co-op is unrelated.", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			body := validBody(t) + " " + tc.text
			v := ValidateDraft(Input{
				Subject: "Summit Plastics",
				Body:    body,
				Profile: profile(),
				Config:  types.DefaultGenerationConfig(),
			})
			if tc.want {
				assert.Contains(t, v.Flags(), types.ViolationLegalSuffix)
			} else {
				assert.NotContains(t, v.Flags(), types.ViolationLegalSuffix)
			}
		})
	}
}

func TestValidateDraft_AntiSpamSuperlatives(t *testing.T) {
	config := types.DefaultGenerationConfig()
	config.AntiSpamMode = true

	body := validBody(t) + " We are an industry-leading advisory firm."
	v := ValidateDraft(Input{
		Subject: "Summit Plastics",
		Body:    body,
		Profile: profile(),
		Config:  config,
	})
	assert.Contains(t, v.Flags(), types.ViolationSuperlative)

	// Same text passes when the sector is not spam-prone.
	config.AntiSpamMode = false
	v = ValidateDraft(Input{
		Subject: "Summit Plastics",
		Body:    body,
		Profile: profile(),
		Config:  config,
	})
	assert.NotContains(t, v.Flags(), types.ViolationSuperlative)
}

func TestValidateDraft_FabricatedExpertise(t *testing.T) {
	body := validBody(t) + " Our track record in plastics distribution speaks for itself."

	noMatch := &types.MatchResult{Matched: false, Confidence: types.MatchNone}
	v := ValidateDraft(Input{
		Subject: "Summit Plastics",
		Body:    body,
		Profile: profile(),
		Match:   noMatch,
		Config:  types.DefaultGenerationConfig(),
	})
	assert.Contains(t, v.Flags(), types.ViolationFabricatedClaim)

	// With a real match the same claim is allowed.
	matched := &types.MatchResult{Matched: true, Confidence: types.MatchExact}
	v = ValidateDraft(Input{
		Subject: "Summit Plastics",
		Body:    body,
		Profile: profile(),
		Match:   matched,
		Config:  types.DefaultGenerationConfig(),
	})
	assert.NotContains(t, v.Flags(), types.ViolationFabricatedClaim)
}

func TestValidateDraft_EmptyDraft(t *testing.T) {
	v := ValidateDraft(Input{Config: types.DefaultGenerationConfig()})
	require.False(t, v.Empty())
	assert.Contains(t, v.Flags(), types.ViolationEmptySubject)
	assert.Contains(t, v.Flags(), types.ViolationEmptyBody)
}
