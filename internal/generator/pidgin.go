package generator

import (
	"regexp"
	"strings"
)

// Sentiment labels.
const (
	SentimentPositive = "Positive"
	SentimentNegative = "Negative"
	SentimentNeutral  = "Neutral"
)

// PidginResult is the sentiment reading of a Pidgin text.
type PidginResult struct {
	Sentiment   string `json:"sentiment"`
	Confidence  int    `json:"confidence"`
	Translation string `json:"translation"`
}

var (
	pidginPositive = []string{"sweet", "fire", "burst", "fine", "good", "nice", "best", "love"}
	pidginNegative = []string{"bad", "worst", "terrible", "wahala", "stress", "annoying"}
)

// pidginGlossary is applied in order, on whole words, case-insensitively.
var pidginGlossary = []struct {
	pattern *regexp.Regexp
	english string
}{
	{regexp.MustCompile(`(?i)\bwetin\b`), "what"},
	{regexp.MustCompile(`(?i)\bdey\b`), "is/are"},
	{regexp.MustCompile(`(?i)\bgo\b`), "will"},
	{regexp.MustCompile(`(?i)\bna\b`), "is"},
	{regexp.MustCompile(`(?i)\bmake\b`), "let"},
	{regexp.MustCompile(`(?i)\bno\b`), "don't"},
	{regexp.MustCompile(`(?i)\bdis\b`), "this"},
	{regexp.MustCompile(`(?i)\bdat\b`), "that"},
}

// AnalyzePidgin classifies Pidgin text by counting listed positive and
// negative words. The side with strictly more matches wins; a tie is Neutral
// with confidence 50.
func AnalyzePidgin(text string) PidginResult {
	lower := strings.ToLower(text)
	positive := countContained(lower, pidginPositive)
	negative := countContained(lower, pidginNegative)

	result := PidginResult{
		Sentiment:   SentimentNeutral,
		Confidence:  50,
		Translation: TranslatePidgin(text),
	}

	switch {
	case positive > negative:
		result.Sentiment = SentimentPositive
		result.Confidence = min(90, 60+positive*10)
	case negative > positive:
		result.Sentiment = SentimentNegative
		result.Confidence = min(90, 60+negative*10)
	}

	return result
}

// TranslatePidgin replaces common Pidgin words with English equivalents.
func TranslatePidgin(text string) string {
	for _, g := range pidginGlossary {
		text = g.pattern.ReplaceAllLiteralString(text, g.english)
	}
	return text
}

func countContained(text string, words []string) int {
	n := 0
	for _, w := range words {
		if strings.Contains(text, w) {
			n++
		}
	}
	return n
}
