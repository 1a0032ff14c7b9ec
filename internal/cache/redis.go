package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// StatsCache guarda contadores de dashboard por alguns segundos.
// Sem REDIS_URL o cache fica desligado e tudo vai direto ao banco.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(redisURL string) *StatsCache {
	if redisURL == "" {
		return &StatsCache{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("invalid REDIS_URL, stats cache disabled: %v", err)
		return &StatsCache{}
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("redis unreachable, stats cache disabled: %v", err)
		return &StatsCache{}
	}

	return &StatsCache{
		client: client,
		ttl:    30 * time.Second,
	}
}

func (c *StatsCache) Enabled() bool {
	return c.client != nil
}

func (c *StatsCache) Get(ctx context.Context, key string, dest any) bool {
	if c.client == nil {
		return false
	}

	raw, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(raw), dest) == nil
}

func (c *StatsCache) Set(ctx context.Context, key string, value any) {
	if c.client == nil {
		return
	}

	b, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, b, c.ttl).Err(); err != nil {
		log.Printf("stats cache set failed: %v", err)
	}
}

func (c *StatsCache) Close() {
	if c.client != nil {
		_ = c.client.Close()
	}
}
