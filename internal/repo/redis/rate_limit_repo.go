package redis

import (
	"context"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RateLimitRepo interface {
	// Allow reports whether another request is permitted for key within the
	// current fixed window.
	Allow(ctx context.Context, key string, requests int, window time.Duration) (bool, error)
}

type rateLimitRepo struct {
	client *redis.Client
}

func NewRateLimitRepo(client *redis.Client) RateLimitRepo {
	return &rateLimitRepo{client: client}
}

func (r *rateLimitRepo) Allow(ctx context.Context, key string, requests int, window time.Duration) (bool, error) {
	// Hash the key for privacy
	hashed := fmt.Sprintf("rl:%x", sha256.Sum256([]byte(key)))

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	pipe := r.client.TxPipeline()
	count := pipe.Incr(ctx, hashed)
	pipe.ExpireNX(ctx, hashed, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}

	return count.Val() <= int64(requests), nil
}
