package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/leeaandrob/trendpulse/internal/models"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// RedisConfig holds the connection settings for RedisStore.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// RedisStore keeps analyses in Redis so several API processes can share one
// cache.
//
// Layout under the prefix:
//
//	analysis:seq      INCR counter for IDs
//	analysis:<id>     JSON record
//	analysis:index    hash of query key -> id
//	analysis:ids      list of ids in creation order
type RedisStore struct {
	rdb    goredis.UniversalClient
	prefix string
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("missing redis address")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	log.Info().Str("addr", cfg.Addr).Int("db", cfg.DB).Msg("Connected to Redis")

	return NewRedisStoreFromClient(rdb, cfg.Prefix), nil
}

// NewRedisStoreFromClient wraps an existing client.
func NewRedisStoreFromClient(rdb goredis.UniversalClient, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "trendpulse:"
	}
	return &RedisStore{rdb: rdb, prefix: prefix}
}

func (s *RedisStore) seqKey() string   { return s.prefix + "analysis:seq" }
func (s *RedisStore) indexKey() string { return s.prefix + "analysis:index" }
func (s *RedisStore) idsKey() string   { return s.prefix + "analysis:ids" }

func (s *RedisStore) recordKey(id int64) string {
	return s.prefix + "analysis:" + strconv.FormatInt(id, 10)
}

// CreateAnalysis stores a new analysis, or returns the one already indexed
// under the same query key.
func (s *RedisStore) CreateAnalysis(ctx context.Context, a *models.Analysis) (*models.Analysis, error) {
	key := models.NormalizeQuery(a.Query)

	if existing, err := s.GetAnalysisByQuery(ctx, key); err == nil {
		return existing, nil
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	id, err := s.rdb.Incr(ctx, s.seqKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("redis incr: %w", err)
	}

	stored := clone(a)
	stored.ID = id
	stored.QueryKey = key
	stored.CreatedAt = time.Now().UTC()

	data, err := json.Marshal(stored)
	if err != nil {
		return nil, err
	}

	// Write the record before claiming the key so readers never see a
	// dangling index entry.
	if err := s.rdb.Set(ctx, s.recordKey(id), data, 0).Err(); err != nil {
		return nil, fmt.Errorf("redis set: %w", err)
	}

	claimed, err := s.rdb.HSetNX(ctx, s.indexKey(), key, id).Result()
	if err != nil {
		return nil, fmt.Errorf("redis hsetnx: %w", err)
	}
	if !claimed {
		s.rdb.Del(ctx, s.recordKey(id))
		log.Debug().Str("query", a.Query).Msg("Analysis already stored, returning existing")
		return s.GetAnalysisByQuery(ctx, key)
	}

	if err := s.rdb.RPush(ctx, s.idsKey(), id).Err(); err != nil {
		return nil, fmt.Errorf("redis rpush: %w", err)
	}

	return stored, nil
}

// GetAnalysisByQuery returns the analysis for a query.
func (s *RedisStore) GetAnalysisByQuery(ctx context.Context, query string) (*models.Analysis, error) {
	id, err := s.rdb.HGet(ctx, s.indexKey(), models.NormalizeQuery(query)).Int64()
	if errors.Is(err, goredis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis hget: %w", err)
	}

	data, err := s.rdb.Get(ctx, s.recordKey(id)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}

	return decodeAnalysis(data)
}

// ListAnalyses returns all analyses in creation order.
func (s *RedisStore) ListAnalyses(ctx context.Context) ([]models.Analysis, error) {
	ids, err := s.rdb.LRange(ctx, s.idsKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis lrange: %w", err)
	}
	return s.load(ctx, ids)
}

// RecentAnalyses returns up to limit analyses, newest first.
func (s *RedisStore) RecentAnalyses(ctx context.Context, limit int) ([]models.Analysis, error) {
	if limit <= 0 {
		return []models.Analysis{}, nil
	}

	ids, err := s.rdb.LRange(ctx, s.idsKey(), int64(-limit), -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis lrange: %w", err)
	}
	for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
		ids[i], ids[j] = ids[j], ids[i]
	}
	return s.load(ctx, ids)
}

// GetStats returns aggregate information about stored analyses.
func (s *RedisStore) GetStats(ctx context.Context) (*models.Stats, error) {
	total, err := s.rdb.LLen(ctx, s.idsKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("redis llen: %w", err)
	}

	recent, err := s.RecentAnalyses(ctx, 1)
	if err != nil {
		return nil, err
	}

	var latest *models.Analysis
	if len(recent) > 0 {
		latest = &recent[0]
	}
	return statsOf(int(total), latest), nil
}

// Close closes the Redis client.
func (s *RedisStore) Close(ctx context.Context) error {
	return s.rdb.Close()
}

func (s *RedisStore) load(ctx context.Context, ids []string) ([]models.Analysis, error) {
	out := make([]models.Analysis, 0, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = s.prefix + "analysis:" + id
	}

	values, err := s.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("redis mget: %w", err)
	}

	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			log.Warn().Str("key", keys[i]).Msg("Indexed analysis missing from Redis")
			continue
		}
		a, err := decodeAnalysis([]byte(raw))
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, nil
}

func decodeAnalysis(data []byte) (*models.Analysis, error) {
	var a models.Analysis
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("decode analysis: %w", err)
	}
	a.QueryKey = models.NormalizeQuery(a.Query)
	return &a, nil
}
