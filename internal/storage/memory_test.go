package storage

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/leeaandrob/trendpulse/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_CreateAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	fixed := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	first, err := s.CreateAnalysis(ctx, &models.Analysis{Query: "Suya"})
	require.NoError(t, err)
	second, err := s.CreateAnalysis(ctx, &models.Analysis{Query: "Zobo"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.Equal(t, fixed, first.CreatedAt)
	assert.Equal(t, "suya", first.QueryKey)
}

func TestMemoryStore_CreateDoesNotMutateInput(t *testing.T) {
	s := NewMemoryStore()
	in := &models.Analysis{Query: "Suya"}

	out, err := s.CreateAnalysis(context.Background(), in)
	require.NoError(t, err)

	assert.Zero(t, in.ID)
	assert.NotSame(t, in, out)
}

func TestMemoryStore_LookupIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	created, err := s.CreateAnalysis(ctx, &models.Analysis{Query: "Jollof Rice"})
	require.NoError(t, err)

	found, err := s.GetAnalysisByQuery(ctx, "jollof rice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "Jollof Rice", found.Query)

	found, err = s.GetAnalysisByQuery(ctx, "  JOLLOF RICE ")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = s.GetAnalysisByQuery(ctx, "jollof")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_CreateExistingKeyReturnsOriginal(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	first, err := s.CreateAnalysis(ctx, &models.Analysis{Query: "Suya", TotalMentions: 1})
	require.NoError(t, err)
	again, err := s.CreateAnalysis(ctx, &models.Analysis{Query: "SUYA", TotalMentions: 2})
	require.NoError(t, err)

	assert.Equal(t, first, again)

	all, err := s.ListAnalyses(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestMemoryStore_ListAndRecent(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	for i := 1; i <= 7; i++ {
		_, err := s.CreateAnalysis(ctx, &models.Analysis{Query: fmt.Sprintf("topic %d", i)})
		require.NoError(t, err)
	}

	all, err := s.ListAnalyses(ctx)
	require.NoError(t, err)
	require.Len(t, all, 7)
	for i, a := range all {
		assert.Equal(t, int64(i+1), a.ID)
	}

	recent, err := s.RecentAnalyses(ctx, 5)
	require.NoError(t, err)
	require.Len(t, recent, 5)
	assert.Equal(t, int64(7), recent[0].ID)
	assert.Equal(t, int64(3), recent[4].ID)

	recent, err = s.RecentAnalyses(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, recent)
}

func TestMemoryStore_Stats(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	stats, err := s.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalAnalyses)
	assert.Nil(t, stats.LastAnalyzed)

	_, err = s.CreateAnalysis(ctx, &models.Analysis{Query: "Suya"})
	require.NoError(t, err)
	_, err = s.CreateAnalysis(ctx, &models.Analysis{Query: "Zobo"})
	require.NoError(t, err)

	stats, err = s.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalAnalyses)
	assert.Equal(t, "Zobo", stats.LatestQuery)
	assert.NotNil(t, stats.LastAnalyzed)
}

func TestMemoryStore_ConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.CreateAnalysis(ctx, &models.Analysis{Query: fmt.Sprintf("q%d", i%10)})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	all, err := s.ListAnalyses(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 10)

	seen := map[int64]bool{}
	for _, a := range all {
		assert.False(t, seen[a.ID])
		seen[a.ID] = true
		assert.LessOrEqual(t, a.ID, int64(10))
	}
}
