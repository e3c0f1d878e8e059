package service

import (
	"context"
	"time"

	redislib "github.com/elitebooker/elitebooker-backend/pkg/redis"
)

// redisLoginLimiter is a fixed-window per-email attempt counter backed by
// Redis. The first attempt in a window creates the key with a TTL; once the
// counter passes the limit, further attempts are refused until the key expires.
type redisLoginLimiter struct {
	client      *redislib.Client
	maxAttempts int
	window      time.Duration
}

// NewRedisLoginLimiter creates a LoginLimiter backed by Redis
func NewRedisLoginLimiter(client *redislib.Client, maxAttempts int, window time.Duration) LoginLimiter {
	return &redisLoginLimiter{
		client:      client,
		maxAttempts: maxAttempts,
		window:      window,
	}
}

func (l *redisLoginLimiter) key(email string) string {
	return "login_attempts:" + email
}

// Allow records one attempt and reports whether it may proceed
func (l *redisLoginLimiter) Allow(ctx context.Context, email string) (bool, error) {
	key := l.key(email)

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return false, err
		}
	}

	return count <= int64(l.maxAttempts), nil
}

// Reset clears the attempt counter after a successful login
func (l *redisLoginLimiter) Reset(ctx context.Context, email string) error {
	return l.client.Del(ctx, l.key(email)).Err()
}
