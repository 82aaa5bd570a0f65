// Package generator builds market-intelligence analyses for a query, either
// by asking a generative model or by synthesizing plausible demo data.
package generator

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"

	"github.com/leeaandrob/trendpulse/internal/models"
)

var (
	// ErrAnalysisFailed is returned when an analysis could not be produced.
	ErrAnalysisFailed = errors.New("failed to analyze trends, please try again")

	// ErrReportFailed is returned when a report could not be produced.
	ErrReportFailed = errors.New("failed to generate report, please try again")
)

// Generator produces analyses and reports. Implementations return records
// without an ID or creation time; the store assigns those.
type Generator interface {
	Generate(ctx context.Context, query string) (*models.Analysis, error)
	Report(ctx context.Context, analysis *models.Analysis, query string) (string, error)
	Name() string
}

// Random is a goroutine-safe random source.
type Random struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandom returns a deterministic source for the given seeds.
func NewRandom(seed1, seed2 uint64) *Random {
	return &Random{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

// DefaultRandom returns a randomly seeded source.
func DefaultRandom() *Random {
	return NewRandom(rand.Uint64(), rand.Uint64())
}

// IntN returns a value in [0, n).
func (r *Random) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.IntN(n)
}

// Between returns a value in [lo, hi).
func (r *Random) Between(lo, hi int) int {
	return lo + r.IntN(hi-lo)
}

// Float64 returns a value in [0, 1).
func (r *Random) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64()
}
