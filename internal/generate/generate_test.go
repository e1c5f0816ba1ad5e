package generate

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/outreach-agent/internal/llm"
	"github.com/jonathan/outreach-agent/internal/types"
)

// stubClient replays canned responses and records the prompts it was given.
type stubClient struct {
	responses []string
	errs      []error
	prompts   []string
	calls     int
}

func (s *stubClient) GenerateJSON(_ context.Context, prompt string, _ llm.GenerateOptions) (string, error) {
	idx := s.calls
	s.calls++
	s.prompts = append(s.prompts, prompt)
	if idx < len(s.errs) && s.errs[idx] != nil {
		return "", s.errs[idx]
	}
	if idx < len(s.responses) {
		return s.responses[idx], nil
	}
	return "", &llm.OracleError{Kind: llm.OracleFailed, Cause: errors.New("no canned response")}
}

func (s *stubClient) Close() error { return nil }

func goodResponse(t *testing.T) string {
	t.Helper()
	body := strings.Repeat("word ", 170) +
		"Would you be open to a brief 15-minute conversation next week?"
	raw, err := json.Marshal(map[string]string{
		"subject": "A question about Summit Plastics",
		"body":    body,
	})
	require.NoError(t, err)
	return string(raw)
}

func shortResponse(t *testing.T) string {
	t.Helper()
	raw, err := json.Marshal(map[string]string{
		"subject": "A question about Summit Plastics",
		"body":    "Too short, but open to a brief call?",
	})
	require.NoError(t, err)
	return string(raw)
}

func testRequest() *Request {
	return &Request{
		Profile: &types.CompanyProfile{
			DisplayName:  "Summit Plastics",
			IndustryTags: []string{"Plastics Manufacturing"},
		},
		Capabilities: &types.AdvisorCapabilities{
			IndustriesServed: []string{"Industrial Distribution"},
		},
		Hook: types.Hook{
			Type: types.HookRecent,
			Text: "their recent expansion (June 2026): opened a second production facility",
		},
		Match: &types.MatchResult{
			Matched:     true,
			Confidence:  types.MatchAdjacent,
			MatchedTag:  "Plastics Manufacturing",
			AdvisorTerm: "Industrial Distribution",
		},
		Config: types.DefaultGenerationConfig(),
	}
}

func TestGenerate_CleanFirstAttempt(t *testing.T) {
	client := &stubClient{responses: []string{goodResponse(t)}}
	draft, err := NewGenerator(client).Generate(context.Background(), testRequest())

	require.NoError(t, err)
	assert.True(t, draft.Clean())
	assert.Equal(t, 1, draft.GenerationAttempt)
	assert.Equal(t, "Summit Plastics", draft.CompanyRef)
	assert.NotEmpty(t, draft.ID)

	// The prompt carries the hook and the adjacency framing.
	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "their recent expansion")
	assert.Contains(t, client.prompts[0], "closely related")
}

func TestGenerate_RetriesWithCorrections(t *testing.T) {
	client := &stubClient{responses: []string{shortResponse(t), goodResponse(t)}}
	draft, err := NewGenerator(client).Generate(context.Background(), testRequest())

	require.NoError(t, err)
	assert.True(t, draft.Clean())
	assert.Equal(t, 2, draft.GenerationAttempt)

	require.Len(t, client.prompts, 2)
	assert.NotContains(t, client.prompts[0], "rejected")
	assert.Contains(t, client.prompts[1], "rejected")
	assert.Contains(t, client.prompts[1], "too short")
}

func TestGenerate_BudgetExhaustedReturnsFlaggedBest(t *testing.T) {
	client := &stubClient{responses: []string{
		shortResponse(t), shortResponse(t), shortResponse(t),
	}}
	draft, err := NewGenerator(client).Generate(context.Background(), testRequest())

	require.NoError(t, err)
	assert.False(t, draft.Clean())
	assert.Contains(t, draft.ValidationFlags, types.ViolationWordCountLow)
	assert.Equal(t, 3, client.calls)
}

func TestGenerate_MalformedResponseConsumesAttempt(t *testing.T) {
	client := &stubClient{responses: []string{"here you go!", goodResponse(t)}}
	draft, err := NewGenerator(client).Generate(context.Background(), testRequest())

	require.NoError(t, err)
	assert.True(t, draft.Clean())
	assert.Equal(t, 2, draft.GenerationAttempt)
	assert.Contains(t, client.prompts[1], "ONLY a JSON object")
}

func TestGenerate_AllOracleFailures(t *testing.T) {
	oracleErr := &llm.OracleError{Kind: llm.OracleTimeout, Cause: context.DeadlineExceeded}
	client := &stubClient{errs: []error{oracleErr, oracleErr, oracleErr}}

	draft, err := NewGenerator(client).Generate(context.Background(), testRequest())

	require.Error(t, err)
	require.NotNil(t, draft)
	assert.Equal(t, []string{types.ViolationOracleFailure}, draft.ValidationFlags)
	assert.Equal(t, "Summit Plastics", draft.CompanyRef)
}

func TestGenerate_NoMatchUsesNeutralFraming(t *testing.T) {
	req := testRequest()
	req.Match = &types.MatchResult{Matched: false, Confidence: types.MatchNone}

	client := &stubClient{responses: []string{goodResponse(t)}}
	_, err := NewGenerator(client).Generate(context.Background(), req)
	require.NoError(t, err)

	assert.Contains(t, client.prompts[0], "NO direct experience")
}

func TestGenerate_ExemplarAndDirectivesInPrompt(t *testing.T) {
	req := testRequest()
	req.Adjustment = &types.AdjustmentContext{
		Scope:      types.GlobalScope,
		Directives: []string{"keep drafts under 180 words"},
		Exemplar: &types.Exemplar{
			DraftID: "v2",
			Subject: "Preferred subject",
			Body:    "Preferred body text.",
		},
	}

	client := &stubClient{responses: []string{goodResponse(t)}}
	_, err := NewGenerator(client).Generate(context.Background(), req)
	require.NoError(t, err)

	prompt := client.prompts[0]
	assert.Contains(t, prompt, "keep drafts under 180 words")
	assert.Contains(t, prompt, "Preferred subject")
	assert.Contains(t, prompt, "ranked this draft highest")
}

func TestGenerate_MissingInputs(t *testing.T) {
	client := &stubClient{}
	_, err := NewGenerator(client).Generate(context.Background(), &Request{})

	var genErr *Error
	require.ErrorAs(t, err, &genErr)
	assert.Zero(t, client.calls)
}
