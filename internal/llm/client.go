// Package llm provides chat clients for the generative models TrendPulse
// can use to build analyses: Google Gemini and any OpenAI-compatible
// endpoint (OpenAI, DashScope/Qwen, local gateways).
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyResponse is returned when the model produced no content.
var ErrEmptyResponse = errors.New("empty model response")

// Client is a chat-completion backend.
type Client interface {
	Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error)
	Name() string
}

// ChatRequest represents a chat completion request.
type ChatRequest struct {
	SystemPrompt string
	UserPrompt   string
	Temperature  float32
	MaxTokens    int

	// Schema constrains the response to structured JSON when set.
	Schema     *Schema
	SchemaName string
	JSONMode   bool
}

// ChatResponse represents a chat completion response.
type ChatResponse struct {
	Content      string
	FinishReason string
	TokensUsed   TokenUsage
}

// TokenUsage represents token usage statistics.
type TokenUsage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// ChatJSON sends a chat request and parses the response as JSON.
func ChatJSON(ctx context.Context, c Client, req ChatRequest, result interface{}) error {
	req.JSONMode = true

	resp, err := c.Chat(ctx, req)
	if err != nil {
		return err
	}

	if err := json.Unmarshal([]byte(stripCodeFence(resp.Content)), result); err != nil {
		return fmt.Errorf("failed to parse JSON response: %w", err)
	}

	return nil
}

// stripCodeFence removes a ```json fence some models wrap around JSON.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
