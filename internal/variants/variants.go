// Package variants produces a reviewable batch of alternative drafts for one
// company by perturbing generation inputs. Every variant goes through full
// validation; exploration widens sampling, never the rules.
package variants

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/outreach-agent/internal/generate"
	"github.com/jonathan/outreach-agent/internal/hook"
	"github.com/jonathan/outreach-agent/internal/types"
)

// DefaultCount is the standard batch size offered for ranking.
const DefaultCount = 3

// temperatureStep is how much each successive variant widens sampling.
const temperatureStep = 0.25

// maxTemperature caps perturbation so later variants stay coherent.
const maxTemperature = 1.0

// Batch is one ranked-review set of drafts for a single company.
type Batch struct {
	ID     string             `json:"id"`
	Scope  string             `json:"scope"`
	Drafts []types.EmailDraft `json:"drafts"`
}

// Generate produces count variants of the base request. Variants differ in
// sampling temperature and, where the profile offers one, the opening hook;
// all other constraints are identical to the base request. Draft ids are
// v1..vN in generation order. A variant whose every attempt failed at the
// oracle is kept in the batch with its failure flag.
func Generate(ctx context.Context, gen *generate.Generator, base *generate.Request, count int) (*Batch, error) {
	if count <= 0 {
		count = DefaultCount
	}

	primary, secondary, hasSecondary := hook.TopTwo(base.Profile)

	batch := &Batch{
		ID:     uuid.NewString(),
		Scope:  base.Profile.DisplayName,
		Drafts: make([]types.EmailDraft, 0, count),
	}

	var lastErr error
	for i := 0; i < count; i++ {
		req := *base
		req.DraftID = fmt.Sprintf("v%d", i+1)
		req.Hook = primary
		// The second variant leads with the alternate hook so the reviewer
		// ranks angles, not just phrasings.
		if i == 1 && hasSecondary {
			req.Hook = secondary
		}
		req.Config.Temperature = perturbTemperature(base.Config.Temperature, i)

		draft, err := gen.Generate(ctx, &req)
		if err != nil {
			if draft == nil {
				return nil, err
			}
			lastErr = err
		}
		batch.Drafts = append(batch.Drafts, *draft)
	}

	if allFailed(batch.Drafts) {
		return batch, lastErr
	}
	return batch, nil
}

func perturbTemperature(base float32, variant int) float32 {
	t := base + temperatureStep*float32(variant)
	if t > maxTemperature {
		return maxTemperature
	}
	return t
}

func allFailed(drafts []types.EmailDraft) bool {
	for _, d := range drafts {
		ok := true
		for _, flag := range d.ValidationFlags {
			if flag == types.ViolationOracleFailure {
				ok = false
				break
			}
		}
		if ok {
			return false
		}
	}
	return len(drafts) > 0
}
