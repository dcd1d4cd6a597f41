package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Service is a Redis-backed read cache with TTL and key-pattern invalidation.
// It is strictly a read optimization: callers must tolerate misses and stale
// entries, and no capacity-sensitive decision may depend on it. A Service
// constructed over a nil client degrades to a no-op so the application runs
// without Redis.
type Service struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func New(client *redis.Client, prefix string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &Service{client: client, prefix: prefix, ttl: ttl}
}

func (s *Service) Enabled() bool { return s != nil && s.client != nil }

func (s *Service) key(k string) string { return s.prefix + ":" + k }

// GetJSON loads the entry at key into dst. Returns false on miss, disabled
// cache, or any Redis/unmarshal error.
func (s *Service) GetJSON(ctx context.Context, key string, dst any) bool {
	if !s.Enabled() {
		return false
	}
	raw, err := s.client.Get(ctx, s.key(key)).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}

// SetJSON stores v under key with the service TTL. Errors are dropped: a
// failed cache write must never fail the request.
func (s *Service) SetJSON(ctx context.Context, key string, v any) {
	if !s.Enabled() {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = s.client.Set(ctx, s.key(key), raw, s.ttl).Err()
}

// DeletePattern removes every key matching the glob pattern (relative to the
// service prefix). Used to invalidate a module's cached reads after a write.
func (s *Service) DeletePattern(ctx context.Context, pattern string) {
	if !s.Enabled() {
		return
	}
	iter := s.client.Scan(ctx, 0, s.key(pattern), 100).Iterator()
	for iter.Next(ctx) {
		_ = s.client.Del(ctx, iter.Val()).Err()
	}
}
