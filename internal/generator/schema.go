package generator

import "github.com/leeaandrob/trendpulse/internal/llm"

// analysisSchema declares the structured response expected from the model.
// Property names match the JSON fields of models.Analysis.
var analysisSchema = llm.Object(map[string]*llm.Schema{
	"totalMentions":      llm.Integer("Total social media mentions over the last 7 days"),
	"sentimentScore":     llm.Integer("Overall sentiment score from 0 (hostile) to 100 (enthusiastic)"),
	"positivePercentage": llm.Integer("Share of positive mentions, 0-100"),
	"negativePercentage": llm.Integer("Share of negative mentions, 0-100"),
	"neutralPercentage":  llm.Integer("Share of neutral mentions, 0-100"),
	"topRegion":          llm.String("Nigerian region with the most mentions"),
	"trendDirection":     llm.String("Either Rising or Falling"),
	"growthPercentage":   llm.Integer("Week-over-week change in mentions, may be negative"),
	"keywords":           llm.ArrayOf(llm.String("Hashtag including the leading #")),
	"regionalData": llm.ArrayOf(llm.Object(map[string]*llm.Schema{
		"region":     llm.String("Nigerian city or state"),
		"percentage": llm.Integer("Share of mentions from this region"),
	})),
	"trendData": llm.ArrayOf(llm.Object(map[string]*llm.Schema{
		"day":      llm.String("Mon, Tue, Wed, Thu, Fri, Sat or Sun"),
		"mentions": llm.Integer("Mentions on that day"),
	})),
	"aiInsights":          llm.String("Two sentences on what drives the conversation"),
	"marketOpportunity":   llm.String("The main commercial opportunity"),
	"recommendedStrategy": llm.String("Concrete go-to-market recommendation"),
	"keyInsight":          llm.String("One actionable insight"),
	"viralPrediction": llm.Object(map[string]*llm.Schema{
		"isLikelyToGoViral": llm.Boolean("Whether the topic is likely to go viral soon"),
		"confidence":        llm.Integer("Confidence from 0 to 100"),
		"reason":            llm.String("Why"),
	}),
	"competitorAnalysis": llm.Object(map[string]*llm.Schema{
		"mainCompetitor":      llm.String("Main competing brand or product"),
		"competitorSentiment": llm.Integer("Competitor sentiment score 0-100"),
		"competitorMentions":  llm.Integer("Competitor mentions over the last 7 days"),
		"advantage":           llm.String("Where the topic beats the competitor"),
	}),
	"contentSuggestions": llm.ArrayOf(llm.String("Ready-to-post social caption")),
	"campaignTitles":     llm.ArrayOf(llm.String("Marketing campaign title")),
	"naijaSentiment": llm.Object(map[string]*llm.Schema{
		"pidginPhrases":       llm.ArrayOf(llm.String("Nigerian Pidgin phrase")),
		"streetSlangAnalysis": llm.String("How street slang frames the topic"),
	}),
})
