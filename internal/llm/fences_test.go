package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripFences(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"no fences", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"fence with whitespace", "  ```json\n{\"a\":1}\n```  ", `{"a":1}`},
		{"json on fence line", "```{\"a\":1}```", `{"a":1}`},
		{"empty", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, StripFences(tc.input))
		})
	}
}

func TestGetModel_FallbackChain(t *testing.T) {
	config := &Config{
		Models: map[ModelTier]string{TierLite: "lite-model"},
	}
	assert.Equal(t, "lite-model", config.GetModel(TierAdvanced))

	config.Models[TierStandard] = "standard-model"
	assert.Equal(t, "standard-model", config.GetModel(TierAdvanced))

	config.Models[TierAdvanced] = "advanced-model"
	assert.Equal(t, "advanced-model", config.GetModel(TierAdvanced))
}
