package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/avetrov/contentpulse/internal/model"
)

// RedisStore keeps the item-list memo in Redis, so several instances share
// one cache and entry lifetime is enforced server-side. Any Redis failure
// degrades to a cache miss.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisStore connects to Redis and verifies the connection. On any
// failure the caller should fall back to a MemoryStore.
func NewRedisStore(redisURL string, ttl time.Duration) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}

	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{rdb: rdb, ttl: ttl}, nil
}

func (s *RedisStore) Name() string { return "redis" }

func (s *RedisStore) Get(ctx context.Context, channelID string, count int) ([]model.ContentItem, bool) {
	data, err := s.rdb.Get(ctx, entryKey(channelID, count)).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		log.Printf("cache: redis get error: %v", err)
		return nil, false
	}

	var items []model.ContentItem
	if err := json.Unmarshal(data, &items); err != nil {
		log.Printf("cache: redis entry corrupt, treating as miss: %v", err)
		return nil, false
	}
	return items, true
}

func (s *RedisStore) Put(ctx context.Context, channelID string, count int, items []model.ContentItem) {
	data, err := json.Marshal(items)
	if err != nil {
		log.Printf("cache: marshal error: %v", err)
		return
	}
	if err := s.rdb.Set(ctx, entryKey(channelID, count), data, s.ttl).Err(); err != nil {
		log.Printf("cache: redis set error: %v", err)
	}
}

// Close shuts down the Redis connection.
func (s *RedisStore) Close() error {
	return s.rdb.Close()
}
