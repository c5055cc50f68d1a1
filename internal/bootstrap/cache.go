package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/atelier-works/portfolio-backend/internal/cache"
)

// OpenCache connects to Redis and wraps it in the listing cache. An
// empty address disables caching (nil cache, permanent miss).
func OpenCache(ctx context.Context, addr string, ttl time.Duration) (*cache.Cache, *redis.Client, error) {
	if addr == "" {
		return nil, nil, nil
	}

	client := redis.NewClient(&redis.Options{Addr: addr})

	pctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := client.Ping(pctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("cache ping: %w", err)
	}

	return cache.New(client, ttl), client, nil
}
