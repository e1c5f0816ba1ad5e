package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/outreach-agent/internal/types"
)

func TestPrintCompanyProfile(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCompanyProfile(&types.CompanyProfile{
		DisplayName:  "Summit Plastics",
		IndustryTags: []string{"Plastics Manufacturing"},
		Location:     "Asheville, NC",
		SizeSignal:   types.SizeMid,
	})

	out := buf.String()
	assert.Contains(t, out, "Summit Plastics")
	assert.Contains(t, out, "Plastics Manufacturing")
	assert.Contains(t, out, "NORMALIZED COMPANY PROFILE")
}

func TestPrintDraft_Flagged(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintDraft(&types.EmailDraft{
		ID:              "v1",
		CompanyRef:      "Summit Plastics",
		Subject:         "A question about Summit Plastics",
		WordCount:       120,
		ValidationFlags: []string{types.ViolationWordCountLow},
	})

	out := buf.String()
	assert.Contains(t, out, "flagged")
	assert.Contains(t, out, types.ViolationWordCountLow)
}

func TestPrintNilInputsAreSilent(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCompanyProfile(nil)
	p.PrintDraft(nil)
	p.PrintAdjustments(nil)

	assert.Zero(t, buf.Len())
}
