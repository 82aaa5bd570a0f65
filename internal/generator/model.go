package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/leeaandrob/trendpulse/internal/llm"
	"github.com/leeaandrob/trendpulse/internal/models"
	"github.com/rs/zerolog/log"
)

// NewsSource supplies recent-news context for a query.
type NewsSource interface {
	Context(ctx context.Context, query string) (string, error)
}

// ModelOptions configures a model-backed generator.
type ModelOptions struct {
	Temperature float32
	MaxTokens   int

	// News is optional. Its failures are logged and ignored.
	News NewsSource
}

// Model asks a generative model for analyses, constrained by the analysis
// schema.
type Model struct {
	llm  llm.Client
	opts ModelOptions
}

// NewModel creates a model-backed generator.
func NewModel(client llm.Client, opts ModelOptions) *Model {
	if opts.Temperature == 0 {
		opts.Temperature = 0.4
	}
	if opts.MaxTokens == 0 {
		opts.MaxTokens = 4096
	}
	return &Model{llm: client, opts: opts}
}

// Name returns the generator name.
func (m *Model) Name() string {
	return "model:" + m.llm.Name()
}

const analysisSystemPrompt = `You are a senior market-intelligence analyst covering Nigerian consumer markets and social media.

Given a product, brand or topic, estimate how Nigerians are talking about it online this week.

GUIDELINES:
1. Numbers must be plausible for Nigerian social media volume. Mentions are weekly totals.
2. positivePercentage, negativePercentage and neutralPercentage must add up to 100.
3. trendData has exactly 7 entries, Mon through Sun, in that order.
4. regionalData uses Nigerian cities or states (Lagos, Abuja, Kano, Port Harcourt, Ibadan, ...).
5. trendDirection is exactly "Rising" or "Falling".
6. keywords are hashtags including the leading #.
7. contentSuggestions and campaignTitles should sound natural to Nigerian youth; Pidgin is welcome.
8. pidginPhrases are short Nigerian Pidgin expressions people would actually post.
9. Be specific and concrete. No financial advice.

Respond ONLY with valid JSON matching the provided schema.`

// Generate asks the model for an analysis of the query.
func (m *Model) Generate(ctx context.Context, query string) (*models.Analysis, error) {
	userPrompt := fmt.Sprintf("Analyze the Nigerian market conversation around: %s", query)

	if m.opts.News != nil {
		news, err := m.opts.News.Context(ctx, query)
		if err != nil {
			log.Warn().Err(err).Str("query", query).Msg("Failed to enrich context")
		} else if news != "" {
			userPrompt += "\n\nUse this recent news as grounding where relevant:\n" + news
		}
	}

	var a models.Analysis
	err := llm.ChatJSON(ctx, m.llm, llm.ChatRequest{
		SystemPrompt: analysisSystemPrompt,
		UserPrompt:   userPrompt,
		Temperature:  m.opts.Temperature,
		MaxTokens:    m.opts.MaxTokens,
		Schema:       analysisSchema,
		SchemaName:   "trend_analysis",
	}, &a)
	if err != nil {
		log.Error().Err(err).Str("query", query).Str("model", m.llm.Name()).Msg("Model analysis failed")
		return nil, fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}

	if err := finishModelAnalysis(&a, query); err != nil {
		log.Error().Err(err).Str("query", query).Msg("Model returned an unusable analysis")
		return nil, fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}

	return &a, nil
}

// finishModelAnalysis fills the fields the model does not own and enforces
// the record invariants.
func finishModelAnalysis(a *models.Analysis, query string) error {
	a.ID = 0
	a.Query = query
	a.CreatedAt = time.Time{}

	if len(a.TrendData) != models.TrendWindow {
		return fmt.Errorf("trend data has %d entries, want %d", len(a.TrendData), models.TrendWindow)
	}
	for i := range a.TrendData {
		a.TrendData[i].Day = models.TrendDays[i]
	}

	switch strings.ToLower(strings.TrimSpace(string(a.TrendDirection))) {
	case "rising":
		a.TrendDirection = models.TrendRising
	case "falling":
		a.TrendDirection = models.TrendFalling
	default:
		if a.GrowthPercentage >= 0 {
			a.TrendDirection = models.TrendRising
		} else {
			a.TrendDirection = models.TrendFalling
		}
	}

	if err := a.ApplySentiment(); err != nil {
		return err
	}

	return a.Validate()
}

const reportSystemPrompt = `You are a market-intelligence editor writing client-ready reports about the Nigerian market.

Write in clear, confident business English. Use markdown headings, short paragraphs and bullet lists.
Use the figures exactly as given. Do not invent additional statistics. No financial advice.`

// Report asks the model to narrate a stored analysis as markdown.
func (m *Model) Report(ctx context.Context, analysis *models.Analysis, query string) (string, error) {
	data, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReportFailed, err)
	}

	userPrompt := fmt.Sprintf(`Write a market intelligence report for "%s" from this analysis data.

Start with "# Market Intelligence Report: %s", then cover: Executive Summary, Market Overview,
Sentiment Analysis, Regional Insights, Trending Keywords, Market Opportunity, Recommended Strategy,
Viral Prediction, Competitor Analysis, Content and Campaign Ideas, and Naija Sentiment.

ANALYSIS DATA:
%s`, query, query, string(data))

	resp, err := m.llm.Chat(ctx, llm.ChatRequest{
		SystemPrompt: reportSystemPrompt,
		UserPrompt:   userPrompt,
		Temperature:  m.opts.Temperature,
		MaxTokens:    m.opts.MaxTokens,
	})
	if err != nil {
		log.Error().Err(err).Str("query", query).Str("model", m.llm.Name()).Msg("Model report failed")
		return "", fmt.Errorf("%w: %v", ErrReportFailed, err)
	}

	return strings.TrimSpace(resp.Content), nil
}
