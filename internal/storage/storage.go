// Package storage keeps generated analyses, keyed by normalized query.
package storage

import (
	"context"
	"errors"

	"github.com/leeaandrob/trendpulse/internal/models"
)

// ErrNotFound is returned when no analysis exists for a query.
var ErrNotFound = errors.New("analysis not found")

// Store retains analyses for lookup by query. Records are never updated or
// deleted once created.
type Store interface {
	// CreateAnalysis assigns the next sequential ID and the creation time,
	// then retains the analysis. If an analysis for the same query key
	// already exists, that record is returned instead.
	CreateAnalysis(ctx context.Context, a *models.Analysis) (*models.Analysis, error)

	// GetAnalysisByQuery matches the query case-insensitively.
	GetAnalysisByQuery(ctx context.Context, query string) (*models.Analysis, error)

	// ListAnalyses returns every analysis in creation order.
	ListAnalyses(ctx context.Context) ([]models.Analysis, error)

	// RecentAnalyses returns up to limit analyses, newest first.
	RecentAnalyses(ctx context.Context, limit int) ([]models.Analysis, error)

	GetStats(ctx context.Context) (*models.Stats, error)
	Close(ctx context.Context) error
}

func statsOf(total int, latest *models.Analysis) *models.Stats {
	stats := &models.Stats{TotalAnalyses: total}
	if latest != nil {
		createdAt := latest.CreatedAt
		stats.LastAnalyzed = &createdAt
		stats.LatestQuery = latest.Query
	}
	return stats
}
