package storage

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/leeaandrob/trendpulse/internal/models"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Backends that need a live server run only when MONGO_TEST_URI or
// REDIS_TEST_ADDR is set.

func backends(t *testing.T) map[string]Store {
	t.Helper()
	ctx := context.Background()
	stores := map[string]Store{"memory": NewMemoryStore()}

	if uri := os.Getenv("MONGO_TEST_URI"); uri != "" {
		dbName := fmt.Sprintf("trendpulse_test_%d", time.Now().UnixNano())
		s, err := NewMongoStore(ctx, uri, dbName)
		require.NoError(t, err)
		t.Cleanup(func() {
			_ = s.db.Drop(ctx)
			_ = s.Close(ctx)
		})
		stores["mongo"] = s
	}

	if addr := os.Getenv("REDIS_TEST_ADDR"); addr != "" {
		rdb := goredis.NewClient(&goredis.Options{Addr: addr})
		prefix := fmt.Sprintf("trendpulse_test_%d:", time.Now().UnixNano())
		s := NewRedisStoreFromClient(rdb, prefix)
		t.Cleanup(func() {
			keys, _ := rdb.Keys(ctx, prefix+"*").Result()
			if len(keys) > 0 {
				rdb.Del(ctx, keys...)
			}
			_ = s.Close(ctx)
		})
		stores["redis"] = s
	}

	return stores
}

func TestStoreContract(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			first, err := s.CreateAnalysis(ctx, &models.Analysis{Query: "Jollof Rice", TrendDirection: models.TrendRising})
			require.NoError(t, err)
			assert.Equal(t, int64(1), first.ID)
			assert.False(t, first.CreatedAt.IsZero())

			dup, err := s.CreateAnalysis(ctx, &models.Analysis{Query: "JOLLOF RICE"})
			require.NoError(t, err)
			assert.Equal(t, first.ID, dup.ID)
			assert.Equal(t, "Jollof Rice", dup.Query)

			found, err := s.GetAnalysisByQuery(ctx, "jollof rice")
			require.NoError(t, err)
			assert.Equal(t, first.ID, found.ID)
			assert.True(t, first.CreatedAt.Equal(found.CreatedAt))

			_, err = s.GetAnalysisByQuery(ctx, "suya")
			assert.ErrorIs(t, err, ErrNotFound)

			second, err := s.CreateAnalysis(ctx, &models.Analysis{Query: "Suya"})
			require.NoError(t, err)
			assert.Greater(t, second.ID, first.ID)

			all, err := s.ListAnalyses(ctx)
			require.NoError(t, err)
			require.Len(t, all, 2)
			assert.Equal(t, "Jollof Rice", all[0].Query)

			recent, err := s.RecentAnalyses(ctx, 5)
			require.NoError(t, err)
			require.Len(t, recent, 2)
			assert.Equal(t, "Suya", recent[0].Query)

			stats, err := s.GetStats(ctx)
			require.NoError(t, err)
			assert.Equal(t, 2, stats.TotalAnalyses)
			assert.Equal(t, "Suya", stats.LatestQuery)
		})
	}
}
