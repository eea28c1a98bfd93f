package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a thin cache-aside layer over Redis. A nil client means the
// cache is disabled and every operation degrades to a no-op, so the
// service keeps working when Redis is unreachable.
type Cache struct {
	client *redis.Client
}

// New connects to Redis at addr. On connection failure the returned
// Cache is disabled rather than fatal.
func New(addr string) *Cache {
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Redis connection warning: %v (continuing without cache)", err)
		return &Cache{}
	}
	log.Println("Redis connected successfully")
	return &Cache{client: client}
}

// NewWithClient wraps an existing Redis client, used by tests
func NewWithClient(client *redis.Client) *Cache {
	return &Cache{client: client}
}

// Enabled reports whether a Redis connection is available
func (c *Cache) Enabled() bool {
	return c != nil && c.client != nil
}

// GetJSON gets key and unmarshals it into dest. Returns (true, nil) when
// found, (false, nil) on a miss or when the cache is disabled.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if !c.Enabled() {
		return false, nil
	}
	s, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(s), dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON marshals v and sets the key with ttl
func (c *Cache) SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	if !c.Enabled() {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, b, ttl).Err()
}

// Delete removes keys, best-effort
func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if !c.Enabled() || len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		log.Printf("cache delete failed for %v: %v", keys, err)
	}
}

// DeleteByPrefix removes every key under prefix, best-effort
func (c *Cache) DeleteByPrefix(ctx context.Context, prefix string) {
	if !c.Enabled() {
		return
	}
	keys, err := c.client.Keys(ctx, prefix+"*").Result()
	if err != nil {
		log.Printf("cache scan failed for %s*: %v", prefix, err)
		return
	}
	c.Delete(ctx, keys...)
}

// Aside tries the cache first; on a miss it calls fetch (which must
// populate dest) and stores the result with ttl, best-effort.
func (c *Cache) Aside(ctx context.Context, key string, dest any, ttl time.Duration, fetch func() error) error {
	found, err := c.GetJSON(ctx, key, dest)
	if err != nil {
		return err
	}
	if found {
		return nil
	}
	if err := fetch(); err != nil {
		return err
	}
	_ = c.SetJSON(ctx, key, dest, ttl)
	return nil
}
