package llm

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"
)

const (
	// DefaultOpenAIModel is used when no model is configured.
	DefaultOpenAIModel = "gpt-4o-mini"

	// DashScope OpenAI-compatible endpoint, for Qwen models.
	DashScopeEndpoint = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"
)

// OpenAIClient wraps the OpenAI SDK for any OpenAI-compatible endpoint.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// OpenAIConfig holds the configuration for the OpenAI-compatible client.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// NewOpenAIClient creates a new OpenAI-compatible client.
func NewOpenAIClient(cfg OpenAIConfig) *OpenAIClient {
	if cfg.Model == "" {
		cfg.Model = DefaultOpenAIModel
	}

	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	return &OpenAIClient{
		client: openai.NewClientWithConfig(config),
		model:  cfg.Model,
	}
}

// Name returns the backend name.
func (c *OpenAIClient) Name() string {
	return "openai:" + c.model
}

// Chat sends a chat completion request.
func (c *OpenAIClient) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	messages := []openai.ChatCompletionMessage{}

	if req.SystemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.SystemPrompt,
		})
	}

	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.UserPrompt,
	})

	chatReq := openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: req.Temperature,
	}

	if req.MaxTokens > 0 {
		chatReq.MaxTokens = req.MaxTokens
	}

	switch {
	case req.Schema != nil:
		name := req.SchemaName
		if name == "" {
			name = "response"
		}
		schema := req.Schema.toOpenAI()
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   name,
				Schema: &schema,
				Strict: true,
			},
		}
	case req.JSONMode:
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	log.Debug().
		Str("model", c.model).
		Int("messages", len(messages)).
		Bool("json_mode", req.JSONMode).
		Bool("schema", req.Schema != nil).
		Msg("Sending chat request")

	resp, err := c.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, ErrEmptyResponse
	}

	return &ChatResponse{
		Content:      resp.Choices[0].Message.Content,
		FinishReason: string(resp.Choices[0].FinishReason),
		TokensUsed: TokenUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}, nil
}
