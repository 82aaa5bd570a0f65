package enrichment

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// EnrichmentConfig holds configuration for the enricher.
type EnrichmentConfig struct {
	TavilyAPIKey   string
	TavilyBaseURL  string
	MaxNewsResults int
}

// Enricher turns news search results into prompt context.
type Enricher struct {
	tavily *TavilyClient
	config EnrichmentConfig
}

// NewsArticle represents a news article from Tavily.
type NewsArticle struct {
	Title     string  `json:"title"`
	URL       string  `json:"url"`
	Content   string  `json:"content"`
	Published string  `json:"published,omitempty"`
	Source    string  `json:"source"`
	Relevance float64 `json:"relevance"`
}

// NewEnricher creates a new Enricher with the given configuration.
func NewEnricher(config EnrichmentConfig) *Enricher {
	if config.MaxNewsResults <= 0 {
		config.MaxNewsResults = 5
	}

	e := &Enricher{config: config}
	if config.TavilyAPIKey != "" {
		e.tavily = NewTavilyClient(config.TavilyAPIKey, config.TavilyBaseURL)
		log.Info().Msg("Tavily enrichment enabled")
	}

	return e
}

// Context returns a news summary for the query, or "" when nothing was found
// or no source is configured.
func (e *Enricher) Context(ctx context.Context, query string) (string, error) {
	if e == nil || e.tavily == nil {
		return "", nil
	}

	resp, err := e.tavily.SearchNews(ctx, query, e.config.MaxNewsResults)
	if err != nil {
		return "", err
	}

	articles := make([]NewsArticle, 0, len(resp.Results))
	for _, r := range resp.Results {
		articles = append(articles, NewsArticle{
			Title:     r.Title,
			URL:       r.URL,
			Content:   r.Content,
			Published: r.Published,
			Source:    extractDomain(r.URL),
			Relevance: r.Score,
		})
	}

	log.Info().
		Str("query", query).
		Int("news_articles", len(articles)).
		Msg("Enrichment complete")

	return summarize(query, resp.Answer, articles), nil
}

// summarize creates a combined summary for LLM consumption.
func summarize(query, answer string, articles []NewsArticle) string {
	if answer == "" && len(articles) == 0 {
		return ""
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("=== RECENT NEWS FOR: %s ===\n\n", query))

	if answer != "" {
		sb.WriteString(fmt.Sprintf("Overview: %s\n\n", answer))
	}

	for i, article := range articles {
		sb.WriteString(fmt.Sprintf("%d. **%s** (%s)\n", i+1, article.Title, article.Source))
		if article.Content != "" {
			sb.WriteString(fmt.Sprintf("   %s\n", truncateString(article.Content, 300)))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func extractDomain(url string) string {
	url = strings.TrimPrefix(url, "https://")
	url = strings.TrimPrefix(url, "http://")
	url = strings.TrimPrefix(url, "www.")
	host, _, _ := strings.Cut(url, "/")
	return host
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
