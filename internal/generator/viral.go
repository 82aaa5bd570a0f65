package generator

import (
	"strings"

	"github.com/leeaandrob/trendpulse/internal/models"
)

var viralKeywords = []string{"trending", "viral", "challenge", "new", "latest", "breaking", "exclusive"}

const (
	reasonViral    = "Strong social momentum and trending hashtags indicate high viral potential"
	reasonMomentum = "Recent analysis shows rising mentions, indicating high viral potential"
	reasonNotViral = "Moderate engagement with seasonal relevance, requires strategic amplification"
)

// PredictViral estimates whether a topic is about to go viral. A viral
// keyword in the topic, or a recent analysis of the same topic that is
// trending up, yields a viral verdict with confidence in [70, 99]. Otherwise
// the verdict is a 40% draw with confidence in [50, 79].
func PredictViral(topic string, recent []models.Analysis, r *Random) models.ViralPrediction {
	lower := strings.ToLower(topic)

	hasKeyword := false
	for _, k := range viralKeywords {
		if strings.Contains(lower, k) {
			hasKeyword = true
			break
		}
	}

	rising := false
	key := models.NormalizeQuery(topic)
	for _, a := range recent {
		if models.NormalizeQuery(a.Query) == key && a.TrendDirection == models.TrendRising {
			rising = true
			break
		}
	}

	signal := hasKeyword || rising
	viral := signal || r.Float64() > 0.6

	base := 50
	if signal {
		base = 70
	}

	reason := reasonNotViral
	switch {
	case hasKeyword:
		reason = reasonViral
	case rising:
		reason = reasonMomentum
	case viral:
		reason = reasonViral
	}

	return models.ViralPrediction{
		IsLikelyToGoViral: viral,
		Confidence:        base + r.IntN(30),
		Reason:            reason,
	}
}
