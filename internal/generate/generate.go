package generate

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	"github.com/jonathan/outreach-agent/internal/llm"
	"github.com/jonathan/outreach-agent/internal/schemas"
	"github.com/jonathan/outreach-agent/internal/types"
	"github.com/jonathan/outreach-agent/internal/validation"
)

// Generator produces validated drafts through an oracle client.
type Generator struct {
	client llm.Client
	tier   llm.ModelTier
}

// NewGenerator creates a Generator using the standard model tier.
func NewGenerator(client llm.Client) *Generator {
	return &Generator{client: client, tier: llm.TierStandard}
}

// WithTier overrides the model tier used for generation calls.
func (g *Generator) WithTier(tier llm.ModelTier) *Generator {
	g.tier = tier
	return g
}

type draftResponse struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Generate produces one draft for the request. It retries inside the
// configured attempt budget, feeding validation failures back as corrective
// instructions. When the budget is exhausted the best candidate is returned
// with its validation flags set; the caller decides whether a flagged draft
// is usable. Oracle failures consume attempts like any other failure and a
// draft is still returned, flagged, never dropped.
func (g *Generator) Generate(ctx context.Context, req *Request) (*types.EmailDraft, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	maxAttempts := req.Config.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	draftID := req.DraftID
	if draftID == "" {
		draftID = uuid.NewString()
	}

	var best *types.EmailDraft
	var corrections []string
	var lastOracleErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		prompt := buildPrompt(req, corrections)
		raw, err := g.client.GenerateJSON(ctx, prompt, llm.GenerateOptions{
			Tier:        g.tier,
			Temperature: req.Config.Temperature,
		})
		if err != nil {
			var oe *llm.OracleError
			if errors.As(err, &oe) {
				lastOracleErr = err
				continue
			}
			return nil, &Error{Message: "oracle call failed", Cause: err}
		}

		parsed, err := parseResponse(raw)
		if err != nil {
			lastOracleErr = err
			corrections = []string{
				"Respond with ONLY a JSON object of the form " +
					`{"subject": "...", "body": "..."} and nothing else.`,
			}
			continue
		}

		violations := validation.ValidateDraft(validation.Input{
			Subject: parsed.Subject,
			Body:    parsed.Body,
			Profile: req.Profile,
			Match:   req.Match,
			Config:  req.Config,
		})

		draft := &types.EmailDraft{
			ID:                draftID,
			Subject:           parsed.Subject,
			Body:              parsed.Body,
			WordCount:         types.CountWords(parsed.Body),
			CompanyRef:        req.Profile.DisplayName,
			GenerationAttempt: attempt,
			ValidationFlags:   violations.Flags(),
		}
		if draft.Clean() {
			return draft, nil
		}

		if best == nil || len(draft.ValidationFlags) <= len(best.ValidationFlags) {
			best = draft
		}
		corrections = correctiveInstructions(violations, req)
	}

	if best != nil {
		return best, nil
	}

	// Every attempt died at the oracle boundary. Surface a flagged empty
	// draft so the run summary shows the failure next to its company.
	return &types.EmailDraft{
		ID:                draftID,
		CompanyRef:        req.Profile.DisplayName,
		GenerationAttempt: maxAttempts,
		ValidationFlags:   []string{types.ViolationOracleFailure},
	}, lastOracleErr
}

func parseResponse(raw string) (*draftResponse, error) {
	if err := schemas.ValidateDraftResponse(raw); err != nil {
		return nil, &llm.OracleError{Kind: llm.OracleMalformed, Cause: err}
	}
	var parsed draftResponse
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, &llm.OracleError{Kind: llm.OracleMalformed, Cause: err}
	}
	return &parsed, nil
}
