package advisor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleProfile = `M&A advisor focused on founder-led industrial businesses.

Industries Served:
- Industrial Distribution
- Specialty Manufacturing

Past Deals:
- Industrial Distribution: sale of a regional pipe and fittings distributor to a strategic buyer
- Specialty Manufacturing - recapitalization of a precision machining shop

Tone:
- plain language, no jargon
- consultative, never salesy

Signature:
Jane Doe, Managing Director
Harbor Point Advisors
`

func TestParse_FullProfile(t *testing.T) {
	caps, err := Parse(sampleProfile)
	require.NoError(t, err)

	assert.Equal(t, []string{"Industrial Distribution", "Specialty Manufacturing"}, caps.IndustriesServed)

	require.Len(t, caps.PastDeals, 2)
	assert.Equal(t, "Industrial Distribution", caps.PastDeals[0].Industry)
	assert.Contains(t, caps.PastDeals[0].Description, "pipe and fittings distributor")
	assert.Equal(t, "Specialty Manufacturing", caps.PastDeals[1].Industry)

	assert.Equal(t, []string{"plain language, no jargon", "consultative, never salesy"}, caps.ToneRules)
	assert.Contains(t, caps.SignatureBlock, "Jane Doe")
	assert.Contains(t, caps.SignatureBlock, "Harbor Point Advisors")
}

func TestParse_EmptyProfileIsFatal(t *testing.T) {
	_, err := Parse("   \n\n  ")
	require.Error(t, err)
	var profileErr *ProfileError
	assert.ErrorAs(t, err, &profileErr)
}

func TestParse_PartialProfileBestEffort(t *testing.T) {
	caps, err := Parse("Industries:\nHVAC Services\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"HVAC Services"}, caps.IndustriesServed)
	assert.Empty(t, caps.PastDeals)
	assert.Empty(t, caps.ToneRules)
}

func TestParse_DealWithoutDescription(t *testing.T) {
	caps, err := Parse("Past Deals:\n- Healthcare Services\n")
	require.NoError(t, err)
	require.Len(t, caps.PastDeals, 1)
	assert.Equal(t, "Healthcare Services", caps.PastDeals[0].Industry)
	assert.Empty(t, caps.PastDeals[0].Description)
}

func TestParse_OrderPreserved(t *testing.T) {
	caps, err := Parse("Tone:\n- first\n- second\n- third\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "third"}, caps.ToneRules)
}

func TestLoadFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "advisor_profile.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleProfile), 0644))

	caps, err := LoadFile(path)
	require.NoError(t, err)
	assert.NotEmpty(t, caps.IndustriesServed)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	var profileErr *ProfileError
	assert.ErrorAs(t, err, &profileErr)
}
