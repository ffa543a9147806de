package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultQueryTTL = 24 * time.Hour

// PersistedQueryStore keeps GraphQL query documents addressed by their
// SHA-256 hash.
// Key format: apq:<sha256 hex>
type PersistedQueryStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPersistedQueryStore wraps client; ttl <= 0 falls back to 24h.
func NewPersistedQueryStore(client *redis.Client, ttl time.Duration) *PersistedQueryStore {
	if ttl <= 0 {
		ttl = defaultQueryTTL
	}
	return &PersistedQueryStore{client: client, ttl: ttl}
}

// Get returns the query stored under hash. ok is false when it is unknown.
func (s *PersistedQueryStore) Get(ctx context.Context, hash string) (query string, ok bool, err error) {
	query, err = s.client.Get(ctx, s.key(hash)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("persisted query get: %w", err)
	}
	return query, true, nil
}

// Put stores query under hash, refreshing its expiry.
func (s *PersistedQueryStore) Put(ctx context.Context, hash, query string) error {
	if err := s.client.Set(ctx, s.key(hash), query, s.ttl).Err(); err != nil {
		return fmt.Errorf("persisted query put: %w", err)
	}
	return nil
}

func (s *PersistedQueryStore) key(hash string) string {
	return "apq:" + hash
}
