package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/leeaandrob/trendpulse/internal/analysis"
	"github.com/rs/zerolog/log"
)

// ServerOptions configures the API server.
type ServerOptions struct {
	Addr           string
	RequestTimeout time.Duration
	AllowedOrigins []string
}

// Server represents the API server.
type Server struct {
	router   *chi.Mux
	handlers *Handlers
	addr     string
	server   *http.Server
}

// NewServer creates a new API server.
func NewServer(svc *analysis.Service, opts ServerOptions) *Server {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 60 * time.Second
	}
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}

	handlers := NewHandlers(svc)

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(opts.RequestTimeout))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Route("/api", func(r chi.Router) {
		// Health
		r.Get("/health", handlers.HealthCheck)
		r.Get("/stats", handlers.GetStats)

		// Analyses
		r.Post("/analyze", handlers.Analyze)
		r.Get("/analysis/{query}", handlers.GetAnalysis)
		r.Get("/analyses", handlers.ListAnalyses)
		r.Post("/generate-report", handlers.GenerateReport)

		// Content helpers
		r.Post("/generate-content", handlers.GenerateContent)
		r.Post("/generate-campaigns", handlers.GenerateCampaigns)
		r.Post("/analyze-pidgin", handlers.AnalyzePidgin)
		r.Post("/predict-viral", handlers.PredictViral)
	})

	return &Server{
		router:   r,
		handlers: handlers,
		addr:     opts.Addr,
	}
}

// Handler returns the HTTP handler for the API.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the API server.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         s.addr,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Info().Str("addr", s.addr).Msg("Starting API server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
