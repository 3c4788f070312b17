// Package reuse counts presentations of already revoked refresh tokens per
// user and decides when the reuse cascade should fire.
package reuse

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type Detector interface {
	// Observe records one reuse event for userID and reports whether the
	// configured threshold has been reached within the window.
	Observe(ctx context.Context, userID string) (bool, error)
	// Reset starts a fresh count for userID once the cascade has run.
	Reset(ctx context.Context, userID string) error
}

// Nop never triggers.
type Nop struct{}

func (Nop) Observe(context.Context, string) (bool, error) { return false, nil }

func (Nop) Reset(context.Context, string) error { return nil }

// RedisDetector keeps a per-user counter that expires window after the
// first reuse it saw.
type RedisDetector struct {
	redis     redis.Cmdable
	prefix    string
	threshold int64
	window    time.Duration
}

// NewRedisDetector returns a detector firing once threshold reuse events
// fall within window. threshold <= 0 disables firing; events are still counted.
func NewRedisDetector(client redis.Cmdable, threshold int, window time.Duration) *RedisDetector {
	return &RedisDetector{
		redis:     client,
		prefix:    "tokenkeeper:reuse:",
		threshold: int64(threshold),
		window:    window,
	}
}

func (d *RedisDetector) key(userID string) string {
	return d.prefix + userID
}

func (d *RedisDetector) Observe(ctx context.Context, userID string) (bool, error) {
	count, err := d.redis.Incr(ctx, d.key(userID)).Result()
	if err != nil {
		return false, fmt.Errorf("reuse counter: %w", err)
	}
	if count == 1 {
		if err := d.redis.Expire(ctx, d.key(userID), d.window).Err(); err != nil {
			return false, fmt.Errorf("reuse counter: %w", err)
		}
	}
	return d.threshold > 0 && count >= d.threshold, nil
}

// Reset clears the counter for userID.
func (d *RedisDetector) Reset(ctx context.Context, userID string) error {
	if err := d.redis.Del(ctx, d.key(userID)).Err(); err != nil {
		return fmt.Errorf("reuse counter: %w", err)
	}
	return nil
}
