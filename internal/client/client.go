// Package client is a Go client for the TrendPulse HTTP API.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/leeaandrob/trendpulse/internal/generator"
	"github.com/leeaandrob/trendpulse/internal/models"
	"github.com/rs/zerolog/log"
)

// DefaultBaseURL is where a locally started server listens.
const DefaultBaseURL = "http://localhost:5000"

// APIError is a non-2xx answer from the API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("trendpulse API returned %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// Client talks to a TrendPulse server.
type Client struct {
	client *resty.Client
}

// New creates a client. An empty baseURL selects DefaultBaseURL.
func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 90 * time.Second
	}
	return &Client{
		client: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetHeader("Accept", "application/json"),
	}
}

// Analyze requests (or fetches the cached) analysis for a query.
func (c *Client) Analyze(ctx context.Context, query string) (*models.Analysis, error) {
	var out models.Analysis
	if err := c.post(ctx, "/api/analyze", map[string]string{"query": query}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get fetches a stored analysis without generating one.
func (c *Client) Get(ctx context.Context, query string) (*models.Analysis, error) {
	var out models.Analysis
	if err := c.get(ctx, "/api/analysis/"+url.PathEscape(query), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// List fetches every stored analysis.
func (c *Client) List(ctx context.Context) ([]models.Analysis, error) {
	var out []models.Analysis
	if err := c.get(ctx, "/api/analyses", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Stats fetches store statistics.
func (c *Client) Stats(ctx context.Context) (*models.Stats, error) {
	var out models.Stats
	if err := c.get(ctx, "/api/stats", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Report fetches the markdown report for an analyzed query.
func (c *Client) Report(ctx context.Context, query string) (string, error) {
	var out struct {
		Content string `json:"content"`
	}
	if err := c.post(ctx, "/api/generate-report", map[string]string{"query": query}, &out); err != nil {
		return "", err
	}
	return out.Content, nil
}

// ContentIdeas fetches social content ideas for a topic.
func (c *Client) ContentIdeas(ctx context.Context, topic string) ([]string, error) {
	var out struct {
		Ideas []string `json:"ideas"`
	}
	if err := c.post(ctx, "/api/generate-content", map[string]string{"topic": topic}, &out); err != nil {
		return nil, err
	}
	return out.Ideas, nil
}

// CampaignTitles fetches campaign titles for a topic.
func (c *Client) CampaignTitles(ctx context.Context, topic string) ([]string, error) {
	var out struct {
		Titles []string `json:"titles"`
	}
	if err := c.post(ctx, "/api/generate-campaigns", map[string]string{"topic": topic}, &out); err != nil {
		return nil, err
	}
	return out.Titles, nil
}

// AnalyzePidgin reads the sentiment of a Pidgin text.
func (c *Client) AnalyzePidgin(ctx context.Context, text string) (*generator.PidginResult, error) {
	var out generator.PidginResult
	if err := c.post(ctx, "/api/analyze-pidgin", map[string]string{"text": text}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PredictViral estimates the viral potential of a topic.
func (c *Client) PredictViral(ctx context.Context, topic string) (*models.ViralPrediction, error) {
	var out models.ViralPrediction
	if err := c.post(ctx, "/api/predict-viral", map[string]string{"topic": topic}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, path string, result interface{}) error {
	resp, err := c.client.R().
		SetContext(ctx).
		Get(path)
	return decode(resp, err, path, result)
}

func (c *Client) post(ctx context.Context, path string, body, result interface{}) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(path)
	return decode(resp, err, path, result)
}

func decode(resp *resty.Response, err error, path string, result interface{}) error {
	if err != nil {
		return fmt.Errorf("request %s failed: %w", path, err)
	}

	log.Debug().
		Str("path", path).
		Int("status", resp.StatusCode()).
		Dur("took", resp.Time()).
		Msg("TrendPulse API call")

	if resp.IsError() {
		var body struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(resp.Body(), &body) != nil || body.Message == "" {
			body.Message = resp.String()
		}
		return &APIError{StatusCode: resp.StatusCode(), Message: body.Message}
	}

	if err := json.Unmarshal(resp.Body(), result); err != nil {
		return fmt.Errorf("failed to parse %s response: %w", path, err)
	}
	return nil
}
