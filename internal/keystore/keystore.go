// Package keystore mirrors posting keys in Redis so the run history can be
// shared across machines. The Excel workbook stays the source of truth; a
// Redis failure degrades the process to workbook-only deduplication.
package keystore

import (
	"context"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"

	"jobscout/internal/config"
)

// Store wraps the optional Redis set of historical posting keys. The zero
// value is a disabled store; every method is safe to call on it.
type Store struct {
	client *redis.Client
	key    string
}

// Open connects to Redis when the mirror is enabled. A disabled
// configuration yields a working no-op store and no error.
func Open(ctx context.Context, cfg config.RedisConfig) (*Store, error) {
	if !cfg.Enabled {
		return &Store{}, nil
	}

	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return &Store{}, err
	}
	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return &Store{}, err
	}

	return &Store{client: client, key: cfg.Key}, nil
}

// Enabled reports whether a Redis connection is live.
func (s *Store) Enabled() bool {
	return s.client != nil
}

// HistoricalKeys returns every key in the mirror.
func (s *Store) HistoricalKeys(ctx context.Context) ([]string, error) {
	if s.client == nil {
		return nil, nil
	}
	return s.client.SMembers(ctx, s.key).Result()
}

// Persist adds the keys accepted this run to the mirror. Failures are logged
// and swallowed; the workbook already holds the authoritative records.
func (s *Store) Persist(ctx context.Context, keys []string) {
	if s.client == nil || len(keys) == 0 {
		return
	}
	members := make([]interface{}, len(keys))
	for i, k := range keys {
		members[i] = k
	}
	if err := s.client.SAdd(ctx, s.key, members...).Err(); err != nil {
		log.Warn().Err(err).Int("keys", len(keys)).Msg("Failed to mirror keys to Redis")
	}
}

// Close releases the Redis connection, if any.
func (s *Store) Close() {
	if s.client != nil {
		s.client.Close()
	}
}
