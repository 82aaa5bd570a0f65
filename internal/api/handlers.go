package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/leeaandrob/trendpulse/internal/analysis"
	"github.com/leeaandrob/trendpulse/internal/storage"
	"github.com/rs/zerolog/log"
)

// Handlers holds the API handlers.
type Handlers struct {
	svc *analysis.Service
}

// NewHandlers creates new API handlers.
func NewHandlers(svc *analysis.Service) *Handlers {
	return &Handlers{svc: svc}
}

// Request bodies.

type queryRequest struct {
	Query string `json:"query"`
}

type topicRequest struct {
	Topic string `json:"topic"`
}

type textRequest struct {
	Text string `json:"text"`
}

// Response helpers

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}

// respondServiceError maps service errors to status codes. Internal failures
// are logged and answered with the generic fallback message.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error, notFound, fallback string) {
	switch {
	case errors.Is(err, analysis.ErrInvalidInput):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, storage.ErrNotFound):
		respondError(w, http.StatusNotFound, notFound)
	default:
		log.Error().Err(err).Str("path", r.URL.Path).Msg(fallback)
		respondError(w, http.StatusInternalServerError, fallback)
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return false
	}
	return true
}

// ============================================================================
// ANALYSIS HANDLERS
// ============================================================================

// Analyze returns the analysis for a query, generating it on first request.
func (h *Handlers) Analyze(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if !decodeBody(w, r, &req) {
		return
	}

	a, err := h.svc.Analyze(r.Context(), req.Query)
	if err != nil {
		respondServiceError(w, r, err, "Analysis not found", "Failed to analyze query")
		return
	}

	respondJSON(w, http.StatusOK, a)
}

// GetAnalysis returns a stored analysis by query.
func (h *Handlers) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	query := chi.URLParam(r, "query")
	if unescaped, err := url.PathUnescape(query); err == nil {
		query = unescaped
	}

	a, err := h.svc.Get(r.Context(), query)
	if err != nil {
		respondServiceError(w, r, err, "Analysis not found", "Failed to fetch analysis")
		return
	}

	respondJSON(w, http.StatusOK, a)
}

// ListAnalyses returns every stored analysis.
func (h *Handlers) ListAnalyses(w http.ResponseWriter, r *http.Request) {
	analyses, err := h.svc.List(r.Context())
	if err != nil {
		respondServiceError(w, r, err, "Analyses not found", "Failed to fetch analyses")
		return
	}

	respondJSON(w, http.StatusOK, analyses)
}

// GenerateReport renders a markdown report for an analyzed query.
func (h *Handlers) GenerateReport(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if !decodeBody(w, r, &req) {
		return
	}

	content, err := h.svc.Report(r.Context(), req.Query)
	if err != nil {
		respondServiceError(w, r, err, "Analysis not found", "Failed to generate report")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"content": content})
}

// ============================================================================
// CONTENT HANDLERS
// ============================================================================

// GenerateContent returns social content ideas for a topic.
func (h *Handlers) GenerateContent(w http.ResponseWriter, r *http.Request) {
	var req topicRequest
	if !decodeBody(w, r, &req) {
		return
	}

	ideas, err := h.svc.ContentIdeas(req.Topic)
	if err != nil {
		respondServiceError(w, r, err, "", "Failed to generate content")
		return
	}

	respondJSON(w, http.StatusOK, map[string][]string{"ideas": ideas})
}

// GenerateCampaigns returns campaign titles for a topic.
func (h *Handlers) GenerateCampaigns(w http.ResponseWriter, r *http.Request) {
	var req topicRequest
	if !decodeBody(w, r, &req) {
		return
	}

	titles, err := h.svc.CampaignTitles(req.Topic)
	if err != nil {
		respondServiceError(w, r, err, "", "Failed to generate campaigns")
		return
	}

	respondJSON(w, http.StatusOK, map[string][]string{"titles": titles})
}

// AnalyzePidgin returns the sentiment of a Pidgin text.
func (h *Handlers) AnalyzePidgin(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.svc.AnalyzePidgin(req.Text)
	if err != nil {
		respondServiceError(w, r, err, "", "Failed to analyze Pidgin text")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// PredictViral estimates the viral potential of a topic.
func (h *Handlers) PredictViral(w http.ResponseWriter, r *http.Request) {
	var req topicRequest
	if !decodeBody(w, r, &req) {
		return
	}

	prediction, err := h.svc.PredictViral(r.Context(), req.Topic)
	if err != nil {
		respondServiceError(w, r, err, "", "Failed to predict viral potential")
		return
	}

	respondJSON(w, http.StatusOK, prediction)
}

// ============================================================================
// SYSTEM HANDLERS
// ============================================================================

// GetStats returns analysis statistics.
func (h *Handlers) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		respondServiceError(w, r, err, "", "Failed to fetch stats")
		return
	}

	respondJSON(w, http.StatusOK, stats)
}

// HealthCheck returns the service health status.
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"service":   "trendpulse",
		"generator": h.svc.GeneratorName(),
	})
}
