package reputation

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Store caches resolved reputation records by officer|lender key.
type Store interface {
	Get(ctx context.Context, key string) (Reputation, bool, error)
	Put(ctx context.Context, key string, rep Reputation) error
	// All returns every cached record. Used to hand the full map to the
	// scorer, which treats missing keys as neutral.
	All(ctx context.Context) (map[string]Reputation, error)
}

// MemoryStore is the default in-process Store.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]Reputation
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]Reputation)}
}

// Get returns the record for key if present.
func (s *MemoryStore) Get(_ context.Context, key string) (Reputation, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rep, ok := s.data[key]
	return rep, ok, nil
}

// Put stores the record under key, replacing any previous value.
func (s *MemoryStore) Put(_ context.Context, key string, rep Reputation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = rep
	return nil
}

// All returns a copy of every cached record.
func (s *MemoryStore) All(_ context.Context) (map[string]Reputation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]Reputation, len(s.data))
	for k, v := range s.data {
		out[k] = v
	}
	return out, nil
}

// redisKeyPrefix namespaces reputation records in a shared Redis instance.
const redisKeyPrefix = "mortgage-compare:reputation:"

// RedisStore persists reputation records in Redis so multiple instances
// share one cache.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects a store to the Redis instance at addr.
func NewRedisStore(addr string) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

// Get returns the record for key if present.
func (s *RedisStore) Get(ctx context.Context, key string) (Reputation, bool, error) {
	var rep Reputation
	raw, err := s.client.Get(ctx, redisKeyPrefix+key).Result()
	if err == redis.Nil {
		return rep, false, nil
	}
	if err != nil {
		return rep, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), &rep); err != nil {
		return rep, false, fmt.Errorf("decode reputation %s: %w", key, err)
	}
	return rep, true, nil
}

// Put stores the record under key, replacing any previous value.
func (s *RedisStore) Put(ctx context.Context, key string, rep Reputation) error {
	raw, err := json.Marshal(rep)
	if err != nil {
		return fmt.Errorf("encode reputation %s: %w", key, err)
	}
	if err := s.client.Set(ctx, redisKeyPrefix+key, raw, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// All returns every cached record.
func (s *RedisStore) All(ctx context.Context) (map[string]Reputation, error) {
	keys, err := s.client.Keys(ctx, redisKeyPrefix+"*").Result()
	if err != nil {
		return nil, fmt.Errorf("redis keys: %w", err)
	}

	out := make(map[string]Reputation, len(keys))
	for _, fullKey := range keys {
		raw, err := s.client.Get(ctx, fullKey).Result()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("redis get %s: %w", fullKey, err)
		}
		var rep Reputation
		if err := json.Unmarshal([]byte(raw), &rep); err != nil {
			return nil, fmt.Errorf("decode reputation %s: %w", fullKey, err)
		}
		out[fullKey[len(redisKeyPrefix):]] = rep
	}
	return out, nil
}
