package pipeline

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/outreach-agent/internal/ledger"
	"github.com/jonathan/outreach-agent/internal/llm"
	"github.com/jonathan/outreach-agent/internal/types"
)

const advisorProfile = `Industries Served:
- Industrial Distribution
- Plastics Manufacturing

Past Deals:
- Plastics Manufacturing: sale of a custom injection molder to a strategic buyer

Tone:
- plain language, no jargon

Signature:
Jane Doe, Managing Director
`

// echoClient returns a valid draft whose subject names whichever company the
// prompt asked about.
type echoClient struct {
	mu      sync.Mutex
	prompts []string
}

func (c *echoClient) GenerateJSON(_ context.Context, prompt string, _ llm.GenerateOptions) (string, error) {
	c.mu.Lock()
	c.prompts = append(c.prompts, prompt)
	c.mu.Unlock()

	company := "the company"
	for _, name := range []string{"Summit Plastics", "Acme Staffing"} {
		if strings.Contains(prompt, name) {
			company = name
			break
		}
	}
	body := strings.Repeat("word ", 170) +
		"Would you be open to a brief 15-minute conversation next week?"
	raw, _ := json.Marshal(map[string]string{
		"subject": "A question about " + company,
		"body":    body,
	})
	return string(raw), nil
}

func (c *echoClient) Close() error { return nil }

func writeDataset(t *testing.T, dir string) string {
	t.Helper()
	content := `company_name,website,industry,revenue,scraped_content
"Summit Plastics, Inc.",summitplastics.com,Plastics Manufacturing,$12M,"Summit Plastics | Custom Extrusion. We are headquartered in Asheville, NC and employ over 80 people."
Acme Staffing LLC,acmestaffing.com,Staffing & Recruiting,,Acme Staffing places light industrial workers across the Southeast.
`
	path := filepath.Join(dir, "scraped_companies_20260820_090000.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func testOptions(t *testing.T, client llm.Client) RunOptions {
	t.Helper()
	dir := t.TempDir()

	profilePath := filepath.Join(dir, "advisor_profile.txt")
	require.NoError(t, os.WriteFile(profilePath, []byte(advisorProfile), 0644))

	store, err := ledger.NewFileStore(filepath.Join(dir, "state"))
	require.NoError(t, err)

	return RunOptions{
		DatasetPath: writeDataset(t, dir),
		ProfilePath: profilePath,
		OutDir:      filepath.Join(dir, "drafts"),
		Config:      types.DefaultGenerationConfig(),
		Workers:     2,
		Client:      client,
		Feedback:    ledger.New(store, store),
	}
}

func TestRun_EndToEnd(t *testing.T) {
	client := &echoClient{}
	opts := testOptions(t, client)

	summary, err := Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Companies)
	assert.Equal(t, 2, summary.Clean)
	assert.Equal(t, 0, summary.Failed)

	// Drafts and the run summary land in the output directory.
	entries, err := os.ReadDir(opts.OutDir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Contains(t, names, "summit_plastics.json")
	assert.Contains(t, names, "run_summary.json")
}

func TestRun_AntiSpamAppliedToSpamProneSector(t *testing.T) {
	client := &echoClient{}
	opts := testOptions(t, client)

	_, err := Run(context.Background(), opts)
	require.NoError(t, err)

	var staffingPrompt, plasticsPrompt string
	for _, p := range client.prompts {
		if strings.Contains(p, "Acme Staffing") {
			staffingPrompt = p
		}
		if strings.Contains(p, "Summit Plastics") {
			plasticsPrompt = p
		}
	}
	require.NotEmpty(t, staffingPrompt)
	require.NotEmpty(t, plasticsPrompt)

	assert.Contains(t, staffingPrompt, "heavy cold outreach")
	assert.NotContains(t, plasticsPrompt, "heavy cold outreach")
}

func TestRun_VariantBatchesSaved(t *testing.T) {
	client := &echoClient{}
	opts := testOptions(t, client)
	opts.VariantCount = 3

	summary, err := Run(context.Background(), opts)
	require.NoError(t, err)

	for _, result := range summary.Results {
		assert.NotEmpty(t, result.BatchID)
		assert.Len(t, result.Drafts, 3)
	}

	// Ranking feedback can resolve a saved batch draft.
	require.NoError(t, opts.Feedback.Record(context.Background(), types.FeedbackEntry{
		Scope: "Summit Plastics",
		Kind:  types.FeedbackRanking,
		Ranking: []types.RankedDraft{
			{DraftID: "v2", Rank: 1},
			{DraftID: "v1", Rank: 2},
			{DraftID: "v3", Rank: 3},
		},
	}))
	adj, err := opts.Feedback.Derive(context.Background(), "Summit Plastics")
	require.NoError(t, err)
	require.NotNil(t, adj.Exemplar)
	assert.Equal(t, "v2", adj.Exemplar.DraftID)
}

func TestRun_MissingProfileIsFatal(t *testing.T) {
	client := &echoClient{}
	opts := testOptions(t, client)
	opts.ProfilePath = filepath.Join(t.TempDir(), "missing.txt")

	_, err := Run(context.Background(), opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "advisor profile")
}
