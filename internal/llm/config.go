// Package llm provides the client abstraction over the text-generation
// oracle. The core treats the oracle as opaque: requests carry a prompt and
// generation parameters, responses are validated locally by the caller.
package llm

import "time"

// ModelTier represents the capability level requested for a call.
type ModelTier string

const (
	// TierLite is for simple extraction and classification.
	TierLite ModelTier = "lite"
	// TierStandard is for constrained drafting with moderate reasoning.
	TierStandard ModelTier = "standard"
	// TierAdvanced is for the heaviest composition tasks.
	TierAdvanced ModelTier = "advanced"
)

// Provider represents an oracle provider.
type Provider string

// Supported providers.
const (
	ProviderGemini Provider = "gemini"
)

// Config holds the model configuration for the process.
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
	// DefaultTimeout bounds a single oracle call when the request does not
	// set its own.
	DefaultTimeout time.Duration
}

// DefaultConfig returns the default Gemini configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider:       ProviderGemini,
		Models:         map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
		DefaultTimeout: 60 * time.Second,
	}
}

// GetModel returns the model for a tier, falling back standard → lite.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	return c.Models[TierLite]
}

// GenerateOptions are the per-request generation parameters. The variant
// orchestrator perturbs only these, never the validation rules.
type GenerateOptions struct {
	Tier        ModelTier
	Temperature float32
	// Timeout overrides Config.DefaultTimeout when positive.
	Timeout time.Duration
}
