package storage

import (
	"context"
	"sync"
	"time"

	"github.com/leeaandrob/trendpulse/internal/models"
)

// MemoryStore keeps analyses in process memory. Everything is lost on restart.
type MemoryStore struct {
	mu       sync.RWMutex
	nextID   int64
	analyses []*models.Analysis
	byKey    map[string]*models.Analysis
	now      func() time.Time
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextID: 1,
		byKey:  make(map[string]*models.Analysis),
		now:    time.Now,
	}
}

// CreateAnalysis retains a new analysis.
func (s *MemoryStore) CreateAnalysis(ctx context.Context, a *models.Analysis) (*models.Analysis, error) {
	key := models.NormalizeQuery(a.Query)

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.byKey[key]; ok {
		return clone(existing), nil
	}

	stored := clone(a)
	stored.ID = s.nextID
	stored.QueryKey = key
	stored.CreatedAt = s.now().UTC()
	s.nextID++

	s.analyses = append(s.analyses, stored)
	s.byKey[key] = stored

	return clone(stored), nil
}

// GetAnalysisByQuery returns the analysis for a query.
func (s *MemoryStore) GetAnalysisByQuery(ctx context.Context, query string) (*models.Analysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.byKey[models.NormalizeQuery(query)]
	if !ok {
		return nil, ErrNotFound
	}
	return clone(a), nil
}

// ListAnalyses returns all analyses in creation order.
func (s *MemoryStore) ListAnalyses(ctx context.Context) ([]models.Analysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Analysis, 0, len(s.analyses))
	for _, a := range s.analyses {
		out = append(out, *a)
	}
	return out, nil
}

// RecentAnalyses returns up to limit analyses, newest first.
func (s *MemoryStore) RecentAnalyses(ctx context.Context, limit int) ([]models.Analysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := min(limit, len(s.analyses))
	out := make([]models.Analysis, 0, max(n, 0))
	for i := len(s.analyses) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, *s.analyses[i])
	}
	return out, nil
}

// GetStats returns aggregate information about stored analyses.
func (s *MemoryStore) GetStats(ctx context.Context) (*models.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var latest *models.Analysis
	if len(s.analyses) > 0 {
		latest = s.analyses[len(s.analyses)-1]
	}
	return statsOf(len(s.analyses), latest), nil
}

// Close is a no-op.
func (s *MemoryStore) Close(ctx context.Context) error {
	return nil
}

func clone(a *models.Analysis) *models.Analysis {
	cp := *a
	return &cp
}
