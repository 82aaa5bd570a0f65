package llm

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

// DefaultGeminiModel is used when no model is configured.
const DefaultGeminiModel = "gemini-2.5-flash"

// GeminiClient calls Google Gemini through the GenAI SDK.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// GeminiConfig holds the configuration for the Gemini client.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// NewGeminiClient creates a new Gemini client.
func NewGeminiClient(ctx context.Context, cfg GeminiConfig) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		model:  cfg.Model,
	}, nil
}

// Name returns the backend name.
func (c *GeminiClient) Name() string {
	return "gemini:" + c.model
}

// Chat sends a generate-content request to Gemini.
func (c *GeminiClient) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(req.Temperature),
	}

	if req.SystemPrompt != "" {
		config.SystemInstruction = genai.NewContentFromText(req.SystemPrompt, genai.RoleUser)
	}
	if req.MaxTokens > 0 {
		config.MaxOutputTokens = int32(req.MaxTokens)
	}
	if req.JSONMode || req.Schema != nil {
		config.ResponseMIMEType = "application/json"
	}
	if req.Schema != nil {
		config.ResponseSchema = req.Schema.toGenAI()
	}

	contents := []*genai.Content{
		genai.NewContentFromText(req.UserPrompt, genai.RoleUser),
	}

	log.Debug().
		Str("model", c.model).
		Bool("json_mode", config.ResponseMIMEType != "").
		Bool("schema", req.Schema != nil).
		Msg("Sending generate-content request")

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("gemini generate content failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return nil, ErrEmptyResponse
	}

	out := &ChatResponse{Content: text}
	if len(resp.Candidates) > 0 {
		out.FinishReason = string(resp.Candidates[0].FinishReason)
	}
	if usage := resp.UsageMetadata; usage != nil {
		out.TokensUsed = TokenUsage{
			PromptTokens:     int(usage.PromptTokenCount),
			CompletionTokens: int(usage.CandidatesTokenCount),
			TotalTokens:      int(usage.TotalTokenCount),
		}
	}

	return out, nil
}
