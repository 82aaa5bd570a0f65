// TrendPulse - market intelligence for Nigerian consumer topics.
// Serves sentiment, regional and trend analyses over HTTP.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/leeaandrob/trendpulse/internal/analysis"
	"github.com/leeaandrob/trendpulse/internal/api"
	"github.com/leeaandrob/trendpulse/internal/config"
	"github.com/leeaandrob/trendpulse/internal/enrichment"
	"github.com/leeaandrob/trendpulse/internal/generator"
	"github.com/leeaandrob/trendpulse/internal/llm"
	"github.com/leeaandrob/trendpulse/internal/storage"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	log.Info().Msg("TrendPulse - Starting analysis server")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	ctx := context.Background()

	// Initialize storage
	store, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.StoreBackend).Msg("Failed to open store")
	}
	defer store.Close(ctx)

	// Initialize generator
	gen, err := newGenerator(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize generator")
	}
	log.Info().Str("generator", gen.Name()).Msg("Generator initialized")

	svc := analysis.NewService(store, gen, nil)

	apiServer := api.NewServer(svc, api.ServerOptions{
		Addr:           cfg.HTTPAddr,
		RequestTimeout: cfg.RequestTimeout,
		AllowedOrigins: cfg.CORSAllowedOrigins,
	})

	// Setup signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := apiServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("API server error")
		}
	}()

	log.Info().
		Str("api", cfg.HTTPAddr).
		Str("store", cfg.StoreBackend).
		Msg("TrendPulse running")

	// Wait for shutdown signal
	<-sigChan
	log.Info().Msg("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("API server shutdown error")
	}

	log.Info().Msg("TrendPulse stopped")
}

func openStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	switch cfg.StoreBackend {
	case config.StoreMongo:
		return storage.NewMongoStore(ctx, cfg.MongoURI, cfg.MongoDB)
	case config.StoreRedis:
		return storage.NewRedisStore(ctx, storage.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Prefix:   cfg.RedisPrefix,
		})
	case config.StoreMemory:
		log.Warn().Msg("Using in-memory store, analyses are lost on restart")
		return storage.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}

func newGenerator(ctx context.Context, cfg *config.Config) (generator.Generator, error) {
	var client llm.Client

	switch cfg.ResolveGenerator() {
	case config.GeneratorGemini:
		gemini, err := llm.NewGeminiClient(ctx, llm.GeminiConfig{
			APIKey: cfg.GeminiAPIKey,
			Model:  cfg.GeminiModel,
		})
		if err != nil {
			return nil, err
		}
		client = gemini
	case config.GeneratorOpenAI:
		client = llm.NewOpenAIClient(llm.OpenAIConfig{
			APIKey:  cfg.OpenAIAPIKey,
			BaseURL: cfg.OpenAIBaseURL,
			Model:   cfg.OpenAIModel,
		})
	default:
		return generator.NewSynthetic(nil), nil
	}

	opts := generator.ModelOptions{}
	if cfg.EnableEnrichment && cfg.TavilyAPIKey != "" {
		opts.News = enrichment.NewEnricher(enrichment.EnrichmentConfig{
			TavilyAPIKey:   cfg.TavilyAPIKey,
			MaxNewsResults: 5,
		})
	}

	return generator.NewModel(client, opts), nil
}
