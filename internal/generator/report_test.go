package generator

import (
	"testing"
	"time"

	"github.com/leeaandrob/trendpulse/internal/models"
	"github.com/stretchr/testify/assert"
)

func reportFixture() *models.Analysis {
	return &models.Analysis{
		Query:               "Jollof Rice",
		TotalMentions:       45231,
		SentimentScore:      82,
		PositivePercentage:  70,
		NegativePercentage:  18,
		NeutralPercentage:   12,
		TopRegion:           "Lagos",
		TrendDirection:      models.TrendRising,
		GrowthPercentage:    -7,
		Keywords:            []string{"#JollofRice", "#NaijaVibes"},
		RegionalData:        []models.RegionShare{{Region: "Lagos", Percentage: 40}},
		TrendData:           []models.TrendPoint{{Day: "Mon", Mentions: 1500}},
		AIInsights:          "Weekend parties drive mentions.",
		MarketOpportunity:   "Ready-to-cook kits.",
		RecommendedStrategy: "Lean into party season.",
		KeyInsight:          "Saturday peaks.",
		ViralPrediction:     &models.ViralPrediction{IsLikelyToGoViral: true, Confidence: 88, Reason: "Jollof wars"},
		CompetitorAnalysis: &models.CompetitorAnalysis{
			MainCompetitor:      "Ghana Jollof",
			CompetitorSentiment: 61,
			CompetitorMentions:  12500,
			Advantage:           "Smokier flavour",
		},
		ContentSuggestions: []string{"First caption", "Second caption"},
		CampaignTitles:     []string{"Jollof Fever"},
		NaijaSentiment:     &models.NaijaSentiment{PidginPhrases: []string{"Jollof na life"}, StreetSlangAnalysis: "Pure vibes."},
	}
}

func TestMarkdownReport(t *testing.T) {
	report := MarkdownReport(reportFixture(), "Jollof Rice", time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC))

	for _, want := range []string{
		"# Market Intelligence Report: Jollof Rice",
		"- **Total Mentions**: 45,231",
		"- **Sentiment Score**: 82/100",
		"- **Growth Rate**: -7%",
		"- **Positive**: 70%",
		"- **Neutral**: 12%",
		"- **Lagos**: 40%",
		"- **Mon**: 1,500",
		"- #JollofRice",
		"## AI Insights\nWeekend parties drive mentions.",
		"- **Likelihood**: High",
		"- **Confidence**: 88%",
		"- **Competitor Mentions**: 12,500",
		"1. First caption\n2. Second caption",
		"1. Jollof Fever",
		"- \"Jollof na life\"",
		"### Street Slang Analysis\nPure vibes.",
		"Report generated on 10/17/2026 by TrendPulse.AI",
	} {
		assert.Contains(t, report, want)
	}
}

func TestMarkdownReport_OmitsMissingSections(t *testing.T) {
	a := reportFixture()
	a.ViralPrediction = nil
	a.CompetitorAnalysis = nil
	a.ContentSuggestions = nil
	a.CampaignTitles = nil
	a.NaijaSentiment = nil

	report := MarkdownReport(a, "Jollof Rice", time.Now())

	assert.NotContains(t, report, "## Viral Prediction")
	assert.NotContains(t, report, "## Competitor Analysis")
	assert.NotContains(t, report, "## Content Suggestions")
	assert.NotContains(t, report, "## Campaign Titles")
	assert.NotContains(t, report, "## Naija Sentiment Analysis")
	assert.Contains(t, report, "## Key Insight\nSaturday peaks.")
}
