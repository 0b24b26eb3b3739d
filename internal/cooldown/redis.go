package cooldown

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/princessangelsalon/salon-api/internal/config"
)

// RedisCooldown tracks per-key cooldown windows in Redis. Allow sets the
// key with the window as TTL; while the key lives, callers get the time
// left on it.
type RedisCooldown struct {
	client *redis.Client
	window time.Duration
}

func NewRedisCooldown(cfg *config.Config, window time.Duration) *RedisCooldown {
	return &RedisCooldown{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		}),
		window: window,
	}
}

func (c *RedisCooldown) Allow(ctx context.Context, key string) (time.Duration, error) {
	ok, err := c.client.SetNX(ctx, key, 1, c.window).Result()
	if err != nil {
		return 0, err
	}
	if ok {
		return 0, nil
	}

	ttl, err := c.client.TTL(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if ttl < 0 {
		ttl = c.window
	}
	return ttl, nil
}

func (c *RedisCooldown) Close() error {
	return c.client.Close()
}
