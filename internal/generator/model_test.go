package generator

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/leeaandrob/trendpulse/internal/llm"
	"github.com/leeaandrob/trendpulse/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLLM struct {
	content  string
	err      error
	requests []llm.ChatRequest
}

func (f *fakeLLM) Chat(ctx context.Context, req llm.ChatRequest) (*llm.ChatResponse, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return &llm.ChatResponse{Content: f.content}, nil
}

func (f *fakeLLM) Name() string { return "fake" }

type fakeNews struct {
	summary string
	err     error
}

func (f fakeNews) Context(ctx context.Context, query string) (string, error) {
	return f.summary, f.err
}

func modelPayload(t *testing.T, mutate func(map[string]interface{})) string {
	t.Helper()

	trend := make([]map[string]interface{}, 0, 7)
	for i := 0; i < 7; i++ {
		trend = append(trend, map[string]interface{}{"day": "d", "mentions": 1000 + i})
	}

	payload := map[string]interface{}{
		"totalMentions":       42000,
		"sentimentScore":      81,
		"positivePercentage":  70,
		"negativePercentage":  25,
		"neutralPercentage":   15,
		"topRegion":           "Lagos",
		"trendDirection":      "rising",
		"growthPercentage":    35,
		"keywords":            []string{"#Suya", "#SuyaNG"},
		"regionalData":        []map[string]interface{}{{"region": "Lagos", "percentage": 50}, {"region": "Kano", "percentage": 30}},
		"trendData":           trend,
		"aiInsights":          "Night markets drive volume.",
		"marketOpportunity":   "Packaged suya spice.",
		"recommendedStrategy": "Partner with food bloggers.",
		"keyInsight":          "Friday nights peak.",
		"viralPrediction":     map[string]interface{}{"isLikelyToGoViral": true, "confidence": 77, "reason": "Food challenge momentum"},
		"competitorAnalysis":  map[string]interface{}{"mainCompetitor": "Shawarma", "competitorSentiment": 64, "competitorMentions": 30000, "advantage": "Cheaper"},
		"contentSuggestions":  []string{"Suya don land!"},
		"campaignTitles":      []string{"Suya Season"},
		"naijaSentiment":      map[string]interface{}{"pidginPhrases": []string{"Suya na life"}, "streetSlangAnalysis": "Loved."},
	}
	if mutate != nil {
		mutate(payload)
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)
	return string(data)
}

func TestModelGenerate(t *testing.T) {
	fake := &fakeLLM{content: modelPayload(t, nil)}
	g := NewModel(fake, ModelOptions{})

	a, err := g.Generate(context.Background(), "Suya")
	require.NoError(t, err)

	assert.Equal(t, "Suya", a.Query)
	assert.Equal(t, 42000, a.TotalMentions)
	assert.Equal(t, models.TrendRising, a.TrendDirection)
	assert.Equal(t, 100, a.PositivePercentage+a.NegativePercentage+a.NeutralPercentage)
	assert.Equal(t, 64, a.PositivePercentage)
	require.Len(t, a.TrendData, 7)
	assert.Equal(t, "Mon", a.TrendData[0].Day)
	assert.Equal(t, "Sun", a.TrendData[6].Day)
	require.NotNil(t, a.CompetitorAnalysis)
	assert.Equal(t, "Shawarma", a.CompetitorAnalysis.MainCompetitor)
	require.NotNil(t, a.NaijaSentiment)
	assert.Equal(t, []string{"Suya na life"}, a.NaijaSentiment.PidginPhrases)

	require.Len(t, fake.requests, 1)
	req := fake.requests[0]
	assert.Same(t, analysisSchema, req.Schema)
	assert.True(t, req.JSONMode)
	assert.Contains(t, req.UserPrompt, "Suya")
	assert.Equal(t, "model:fake", g.Name())
}

func TestModelGenerate_DirectionFromGrowth(t *testing.T) {
	fake := &fakeLLM{content: modelPayload(t, func(p map[string]interface{}) {
		p["trendDirection"] = "sideways"
		p["growthPercentage"] = -12
	})}

	a, err := NewModel(fake, ModelOptions{}).Generate(context.Background(), "Garri")
	require.NoError(t, err)
	assert.Equal(t, models.TrendFalling, a.TrendDirection)
}

func TestModelGenerate_Failures(t *testing.T) {
	tests := []struct {
		name string
		fake *fakeLLM
	}{
		{"model error", &fakeLLM{err: errors.New("quota exceeded")}},
		{"malformed json", &fakeLLM{content: "{not json"}},
		{"short trend window", &fakeLLM{content: modelPayload(t, func(p map[string]interface{}) {
			p["trendData"] = []map[string]interface{}{{"day": "Mon", "mentions": 1}}
		})}},
		{"empty sentiment", &fakeLLM{content: modelPayload(t, func(p map[string]interface{}) {
			p["positivePercentage"] = 0
			p["negativePercentage"] = 0
			p["neutralPercentage"] = 0
		})}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewModel(tt.fake, ModelOptions{}).Generate(context.Background(), "suya")
			assert.Nil(t, a)
			assert.ErrorIs(t, err, ErrAnalysisFailed)
		})
	}
}

func TestModelGenerate_NewsContext(t *testing.T) {
	fake := &fakeLLM{content: modelPayload(t, nil)}
	g := NewModel(fake, ModelOptions{News: fakeNews{summary: "Suya exports doubled"}})

	_, err := g.Generate(context.Background(), "suya")
	require.NoError(t, err)
	assert.Contains(t, fake.requests[0].UserPrompt, "Suya exports doubled")

	fake = &fakeLLM{content: modelPayload(t, nil)}
	g = NewModel(fake, ModelOptions{News: fakeNews{err: errors.New("search down")}})

	_, err = g.Generate(context.Background(), "suya")
	require.NoError(t, err)
	assert.NotContains(t, fake.requests[0].UserPrompt, "grounding")
}

func TestModelReport(t *testing.T) {
	fake := &fakeLLM{content: "\n# Market Intelligence Report: suya\n\nAll good.\n"}
	g := NewModel(fake, ModelOptions{})

	a := &models.Analysis{Query: "suya", TotalMentions: 1234}
	report, err := g.Report(context.Background(), a, "suya")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(report, "# Market Intelligence Report: suya"))
	require.Len(t, fake.requests, 1)
	assert.Nil(t, fake.requests[0].Schema)
	assert.Contains(t, fake.requests[0].UserPrompt, `"totalMentions": 1234`)
}

func TestModelReport_Failure(t *testing.T) {
	g := NewModel(&fakeLLM{err: errors.New("timeout")}, ModelOptions{})

	_, err := g.Report(context.Background(), &models.Analysis{Query: "suya"}, "suya")
	assert.ErrorIs(t, err, ErrReportFailed)
}
