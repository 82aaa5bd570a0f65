// Package analysis coordinates the analysis cache and the generator: a query
// is generated at most once and every later request is served from the store.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/leeaandrob/trendpulse/internal/generator"
	"github.com/leeaandrob/trendpulse/internal/models"
	"github.com/leeaandrob/trendpulse/internal/storage"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// RecentForPrediction is how many stored analyses inform a viral prediction.
const RecentForPrediction = 5

// ErrInvalidInput is returned when a required field is missing or blank.
var ErrInvalidInput = errors.New("invalid input")

// Service answers analysis requests.
type Service struct {
	store     storage.Store
	generator generator.Generator
	rand      *generator.Random

	// inflight shares one generation between concurrent requests for the
	// same query key.
	inflight singleflight.Group
}

// NewService creates a service. A nil random source is randomly seeded.
func NewService(store storage.Store, gen generator.Generator, r *generator.Random) *Service {
	if r == nil {
		r = generator.DefaultRandom()
	}
	return &Service{store: store, generator: gen, rand: r}
}

// GeneratorName reports which generator is in use.
func (s *Service) GeneratorName() string {
	return s.generator.Name()
}

// Analyze returns the cached analysis for the query, generating and storing
// it on first request.
func (s *Service) Analyze(ctx context.Context, query string) (*models.Analysis, error) {
	query, err := required("query", query)
	if err != nil {
		return nil, err
	}

	if cached, err := s.store.GetAnalysisByQuery(ctx, query); err == nil {
		log.Debug().Str("query", query).Int64("id", cached.ID).Msg("Serving cached analysis")
		return cached, nil
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up analysis: %w", err)
	}

	key := models.NormalizeQuery(query)
	v, err, shared := s.inflight.Do(key, func() (interface{}, error) {
		// A call that finished between our lookup and joining the group
		// has already stored the record.
		if cached, err := s.store.GetAnalysisByQuery(ctx, query); err == nil {
			return cached, nil
		}

		log.Info().
			Str("query", query).
			Str("generator", s.generator.Name()).
			Msg("Generating analysis")

		generated, err := s.generator.Generate(ctx, query)
		if err != nil {
			return nil, err
		}
		generated.Query = query

		saved, err := s.store.CreateAnalysis(ctx, generated)
		if err != nil {
			return nil, fmt.Errorf("failed to save analysis: %w", err)
		}

		log.Info().
			Str("query", saved.Query).
			Int64("id", saved.ID).
			Int("mentions", saved.TotalMentions).
			Msg("Analysis stored")

		return saved, nil
	})
	if err != nil {
		return nil, err
	}

	if shared {
		log.Debug().Str("query", query).Msg("Shared in-flight analysis")
	}

	return v.(*models.Analysis), nil
}

// Get returns a stored analysis without generating one.
func (s *Service) Get(ctx context.Context, query string) (*models.Analysis, error) {
	query, err := required("query", query)
	if err != nil {
		return nil, err
	}
	return s.store.GetAnalysisByQuery(ctx, query)
}

// List returns every stored analysis.
func (s *Service) List(ctx context.Context) ([]models.Analysis, error) {
	return s.store.ListAnalyses(ctx)
}

// Stats returns store statistics.
func (s *Service) Stats(ctx context.Context) (*models.Stats, error) {
	return s.store.GetStats(ctx)
}

// Report renders a markdown report for a query that was already analyzed.
func (s *Service) Report(ctx context.Context, query string) (string, error) {
	query, err := required("query", query)
	if err != nil {
		return "", err
	}

	a, err := s.store.GetAnalysisByQuery(ctx, query)
	if err != nil {
		return "", err
	}

	return s.generator.Report(ctx, a, query)
}

// ContentIdeas returns social captions for a topic.
func (s *Service) ContentIdeas(topic string) ([]string, error) {
	topic, err := required("topic", topic)
	if err != nil {
		return nil, err
	}
	return generator.ContentSuggestions(topic), nil
}

// CampaignTitles returns campaign titles for a topic.
func (s *Service) CampaignTitles(topic string) ([]string, error) {
	topic, err := required("topic", topic)
	if err != nil {
		return nil, err
	}
	return generator.CampaignTitles(topic), nil
}

// AnalyzePidgin reads the sentiment of a Pidgin text.
func (s *Service) AnalyzePidgin(text string) (*generator.PidginResult, error) {
	if _, err := required("text", text); err != nil {
		return nil, err
	}
	result := generator.AnalyzePidgin(text)
	return &result, nil
}

// PredictViral estimates viral potential, informed by the most recent
// stored analyses.
func (s *Service) PredictViral(ctx context.Context, topic string) (*models.ViralPrediction, error) {
	topic, err := required("topic", topic)
	if err != nil {
		return nil, err
	}

	recent, err := s.store.RecentAnalyses(ctx, RecentForPrediction)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent analyses: %w", err)
	}

	prediction := generator.PredictViral(topic, recent, s.rand)
	return &prediction, nil
}

func required(field, value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("%w: %s is required", ErrInvalidInput, field)
	}
	return trimmed, nil
}
