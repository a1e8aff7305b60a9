package memcache

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisPreferences struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisPreferences(client *redis.Client, ttl time.Duration) *RedisPreferences {
	return &RedisPreferences{client: client, ttl: ttl}
}

// NewRedisClient parses a redis:// url.
func NewRedisClient(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return redis.NewClient(opts), nil
}

func (s *RedisPreferences) Set(ctx context.Context, owner, kind string, f SelectorFilters) {
	b, err := json.Marshal(f)
	if err != nil {
		log.Printf("[prefs] encode %s/%s: %v", owner, kind, err)
		return
	}
	if err := s.client.Set(ctx, prefKey(owner, kind), b, s.ttl).Err(); err != nil {
		log.Printf("[prefs] redis set %s/%s: %v", owner, kind, err)
	}
}

func (s *RedisPreferences) Get(ctx context.Context, owner, kind string) (SelectorFilters, bool) {
	b, err := s.client.Get(ctx, prefKey(owner, kind)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("[prefs] redis get %s/%s: %v", owner, kind, err)
		}
		return SelectorFilters{}, false
	}
	var f SelectorFilters
	if err := json.Unmarshal(b, &f); err != nil {
		log.Printf("[prefs] decode %s/%s: %v", owner, kind, err)
		return SelectorFilters{}, false
	}
	return f, true
}
