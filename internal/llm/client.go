package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Client is the abstraction over oracle providers. Implementations must be
// safe for concurrent use; retry serialization is the caller's concern.
type Client interface {
	// GenerateJSON generates a JSON response for the prompt. The returned
	// string has markdown fences stripped but is otherwise unvalidated.
	GenerateJSON(ctx context.Context, prompt string, opts GenerateOptions) (string, error)
	// Close releases any resources held by the client.
	Close() error
}

// NewClient creates an oracle client based on configuration.
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}
	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, config, apiKey)
	default:
		return NewGeminiClient(ctx, config, apiKey)
	}
}

// GeminiClient implements Client for Google Gemini.
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewGeminiClient creates a new Gemini-backed client.
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{client: client, config: config}, nil
}

// GenerateJSON generates a JSON response using the tier's model and the
// request's generation parameters, classifying failures into the oracle
// error taxonomy.
func (c *GeminiClient) GenerateJSON(ctx context.Context, prompt string, opts GenerateOptions) (string, error) {
	modelName := c.config.GetModel(opts.Tier)
	if modelName == "" {
		return "", fmt.Errorf("no model configured for tier %s", opts.Tier)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = c.config.DefaultTimeout
	}
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	model := c.client.GenerativeModel(modelName)
	model.SetTemperature(opts.Temperature)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(callCtx, genai.Text(prompt))
	if err != nil {
		return "", classifyOracleError(err)
	}

	text, err := extractTextFromResponse(resp)
	if err != nil {
		return "", &OracleError{Kind: OracleMalformed, Cause: err}
	}
	return StripFences(text), nil
}

// Close releases resources held by the client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

func classifyOracleError(err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return &OracleError{Kind: OracleTimeout, Cause: err}
	case strings.Contains(err.Error(), "429") || strings.Contains(strings.ToLower(err.Error()), "rate"):
		return &OracleError{Kind: OracleRateLimited, Cause: err}
	default:
		return &OracleError{Kind: OracleFailed, Cause: err}
	}
}

func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}
	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}
	return strings.Join(parts, ""), nil
}
