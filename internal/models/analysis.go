// Package models defines the core data structures for TrendPulse.
package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// TrendDirection represents where mention volume is heading.
type TrendDirection string

const (
	TrendRising  TrendDirection = "Rising"
	TrendFalling TrendDirection = "Falling"
)

// Valid reports whether d is one of the known directions.
func (d TrendDirection) Valid() bool {
	return d == TrendRising || d == TrendFalling
}

// TrendWindow is the number of daily points in every trend series.
const TrendWindow = 7

// TrendDays are the day labels of the trend series, in order.
var TrendDays = [TrendWindow]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Regions are the administrative regions the dashboard knows how to plot.
var Regions = []string{"Lagos", "Abuja", "Kano", "Port Harcourt", "Ibadan"}

// Analysis is the market-intelligence bundle generated for one query.
type Analysis struct {
	ID int64 `bson:"_id" json:"id"`

	// Identifiers
	Query    string `bson:"query" json:"query"`
	QueryKey string `bson:"query_key" json:"-"`

	// Headline metrics
	TotalMentions      int `bson:"total_mentions" json:"totalMentions"`
	SentimentScore     int `bson:"sentiment_score" json:"sentimentScore"`
	PositivePercentage int `bson:"positive_percentage" json:"positivePercentage"`
	NegativePercentage int `bson:"negative_percentage" json:"negativePercentage"`
	NeutralPercentage  int `bson:"neutral_percentage" json:"neutralPercentage"`

	// Trend
	TopRegion        string         `bson:"top_region" json:"topRegion"`
	TrendDirection   TrendDirection `bson:"trend_direction" json:"trendDirection"`
	GrowthPercentage int            `bson:"growth_percentage" json:"growthPercentage"`
	Keywords         []string       `bson:"keywords" json:"keywords"`
	RegionalData     []RegionShare  `bson:"regional_data" json:"regionalData"`
	TrendData        []TrendPoint   `bson:"trend_data" json:"trendData"`

	// Narrative
	AIInsights          string `bson:"ai_insights" json:"aiInsights"`
	MarketOpportunity   string `bson:"market_opportunity" json:"marketOpportunity"`
	RecommendedStrategy string `bson:"recommended_strategy" json:"recommendedStrategy"`
	KeyInsight          string `bson:"key_insight" json:"keyInsight"`

	// Optional sections
	ViralPrediction    *ViralPrediction    `bson:"viral_prediction,omitempty" json:"viralPrediction"`
	CompetitorAnalysis *CompetitorAnalysis `bson:"competitor_analysis,omitempty" json:"competitorAnalysis"`
	ContentSuggestions []string            `bson:"content_suggestions,omitempty" json:"contentSuggestions"`
	CampaignTitles     []string            `bson:"campaign_titles,omitempty" json:"campaignTitles"`
	NaijaSentiment     *NaijaSentiment     `bson:"naija_sentiment,omitempty" json:"naijaSentiment"`

	// Timing
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// RegionShare is one region's share of the mentions.
type RegionShare struct {
	Region     string `bson:"region" json:"region"`
	Percentage int    `bson:"percentage" json:"percentage"`
}

// TrendPoint is the mention count for one day of the window.
type TrendPoint struct {
	Day      string `bson:"day" json:"day"`
	Mentions int    `bson:"mentions" json:"mentions"`
}

// ViralPrediction estimates whether a topic is about to break out.
type ViralPrediction struct {
	IsLikelyToGoViral bool   `bson:"is_likely_to_go_viral" json:"isLikelyToGoViral"`
	Confidence        int    `bson:"confidence" json:"confidence"`
	Reason            string `bson:"reason" json:"reason"`
}

// CompetitorAnalysis compares the topic to its main competitor.
type CompetitorAnalysis struct {
	MainCompetitor      string `bson:"main_competitor" json:"mainCompetitor"`
	CompetitorSentiment int    `bson:"competitor_sentiment" json:"competitorSentiment"`
	CompetitorMentions  int    `bson:"competitor_mentions" json:"competitorMentions"`
	Advantage           string `bson:"advantage" json:"advantage"`
}

// NaijaSentiment is the Nigerian-Pidgin reading of the conversation.
type NaijaSentiment struct {
	PidginPhrases       []string `bson:"pidgin_phrases" json:"pidginPhrases"`
	StreetSlangAnalysis string   `bson:"street_slang_analysis" json:"streetSlangAnalysis"`
}

// NormalizeQuery returns the lookup key for a query.
func NormalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// ErrInvalidAnalysis is returned by Validate.
var ErrInvalidAnalysis = errors.New("invalid analysis")

// Validate checks the structural invariants of a generated analysis.
func (a *Analysis) Validate() error {
	if strings.TrimSpace(a.Query) == "" {
		return fmt.Errorf("%w: empty query", ErrInvalidAnalysis)
	}
	if sum := a.PositivePercentage + a.NegativePercentage + a.NeutralPercentage; sum != 100 {
		return fmt.Errorf("%w: sentiment percentages sum to %d", ErrInvalidAnalysis, sum)
	}
	if len(a.TrendData) != TrendWindow {
		return fmt.Errorf("%w: trend data has %d entries", ErrInvalidAnalysis, len(a.TrendData))
	}
	if !a.TrendDirection.Valid() {
		return fmt.Errorf("%w: unknown trend direction %q", ErrInvalidAnalysis, a.TrendDirection)
	}
	return nil
}

// Stats holds aggregate information about stored analyses.
type Stats struct {
	TotalAnalyses int        `json:"totalAnalyses"`
	LastAnalyzed  *time.Time `json:"lastAnalyzed,omitempty"`
	LatestQuery   string     `json:"latestQuery,omitempty"`
}
