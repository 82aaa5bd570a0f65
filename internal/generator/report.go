package generator

import (
	"fmt"
	"strings"
	"time"

	"github.com/leeaandrob/trendpulse/internal/models"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// MarkdownReport renders an analysis as a markdown market-intelligence report.
// Optional sections are omitted when the analysis does not carry them.
func MarkdownReport(a *models.Analysis, query string, generatedAt time.Time) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Market Intelligence Report: %s\n\n", query)

	sb.WriteString("## Executive Summary\n")
	fmt.Fprintf(&sb, "This report provides comprehensive market intelligence for \"%s\" in the Nigerian market, based on social media sentiment analysis, regional engagement patterns, and trending behavior.\n\n", query)

	sb.WriteString("## Key Findings\n\n")
	sb.WriteString("### Market Overview\n")
	printer.Fprintf(&sb, "- **Total Mentions**: %d\n", a.TotalMentions)
	fmt.Fprintf(&sb, "- **Sentiment Score**: %d/100\n", a.SentimentScore)
	fmt.Fprintf(&sb, "- **Top Region**: %s\n", a.TopRegion)
	fmt.Fprintf(&sb, "- **Trend Direction**: %s\n", a.TrendDirection)
	fmt.Fprintf(&sb, "- **Growth Rate**: %d%%\n\n", a.GrowthPercentage)

	sb.WriteString("### Sentiment Analysis\n")
	fmt.Fprintf(&sb, "- **Positive**: %d%%\n", a.PositivePercentage)
	fmt.Fprintf(&sb, "- **Negative**: %d%%\n", a.NegativePercentage)
	fmt.Fprintf(&sb, "- **Neutral**: %d%%\n\n", a.NeutralPercentage)

	sb.WriteString("### Regional Insights\n")
	for _, r := range a.RegionalData {
		fmt.Fprintf(&sb, "- **%s**: %d%%\n", r.Region, r.Percentage)
	}
	sb.WriteString("\n")

	sb.WriteString("### Weekly Mentions\n")
	for _, p := range a.TrendData {
		printer.Fprintf(&sb, "- **%s**: %d\n", p.Day, p.Mentions)
	}
	sb.WriteString("\n")

	sb.WriteString("### Trending Keywords\n")
	for _, k := range a.Keywords {
		fmt.Fprintf(&sb, "- %s\n", k)
	}
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "## AI Insights\n%s\n\n", a.AIInsights)
	fmt.Fprintf(&sb, "## Market Opportunity\n%s\n\n", a.MarketOpportunity)
	fmt.Fprintf(&sb, "## Recommended Strategy\n%s\n\n", a.RecommendedStrategy)
	fmt.Fprintf(&sb, "## Key Insight\n%s\n\n", a.KeyInsight)

	if v := a.ViralPrediction; v != nil {
		likelihood := "Low"
		if v.IsLikelyToGoViral {
			likelihood = "High"
		}
		sb.WriteString("## Viral Prediction\n")
		fmt.Fprintf(&sb, "- **Likelihood**: %s\n", likelihood)
		fmt.Fprintf(&sb, "- **Confidence**: %d%%\n", v.Confidence)
		fmt.Fprintf(&sb, "- **Reason**: %s\n\n", v.Reason)
	}

	if c := a.CompetitorAnalysis; c != nil {
		sb.WriteString("## Competitor Analysis\n")
		fmt.Fprintf(&sb, "- **Main Competitor**: %s\n", c.MainCompetitor)
		fmt.Fprintf(&sb, "- **Competitor Sentiment**: %d/100\n", c.CompetitorSentiment)
		printer.Fprintf(&sb, "- **Competitor Mentions**: %d\n", c.CompetitorMentions)
		fmt.Fprintf(&sb, "- **Our Advantage**: %s\n\n", c.Advantage)
	}

	if len(a.ContentSuggestions) > 0 {
		sb.WriteString("## Content Suggestions\n")
		writeNumbered(&sb, a.ContentSuggestions)
	}

	if len(a.CampaignTitles) > 0 {
		sb.WriteString("## Campaign Titles\n")
		writeNumbered(&sb, a.CampaignTitles)
	}

	if n := a.NaijaSentiment; n != nil {
		sb.WriteString("## Naija Sentiment Analysis\n")
		sb.WriteString("### Pidgin Phrases\n")
		for _, p := range n.PidginPhrases {
			fmt.Fprintf(&sb, "- \"%s\"\n", p)
		}
		fmt.Fprintf(&sb, "\n### Street Slang Analysis\n%s\n\n", n.StreetSlangAnalysis)
	}

	sb.WriteString("---\n")
	fmt.Fprintf(&sb, "Report generated on %s by TrendPulse.AI Market Intelligence Dashboard.", generatedAt.Format("1/2/2006"))

	return sb.String()
}

func writeNumbered(sb *strings.Builder, items []string) {
	for i, item := range items {
		fmt.Fprintf(sb, "%d. %s\n", i+1, item)
	}
	sb.WriteString("\n")
}
