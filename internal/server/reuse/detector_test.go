package reuse

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDetector(t *testing.T, threshold int, window time.Duration) (*RedisDetector, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis start: %v", err)
	}
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		rdb.Close()
		mr.Close()
	})
	return NewRedisDetector(rdb, threshold, window), mr
}

func TestRedisDetector_ThresholdWithinWindow(t *testing.T) {
	d, mr := newTestDetector(t, 3, time.Hour)
	ctx := context.Background()

	for i := 1; i <= 2; i++ {
		hit, err := d.Observe(ctx, "u1")
		require.NoError(t, err)
		assert.False(t, hit, "observation %d", i)
	}

	hit, err := d.Observe(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, hit)

	assert.Equal(t, time.Hour, mr.TTL("tokenkeeper:reuse:u1"))

	other, err := d.Observe(ctx, "u2")
	require.NoError(t, err)
	assert.False(t, other)
}

func TestRedisDetector_WindowExpires(t *testing.T) {
	d, mr := newTestDetector(t, 2, time.Minute)
	ctx := context.Background()

	hit, err := d.Observe(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, hit)

	mr.FastForward(2 * time.Minute)

	hit, err = d.Observe(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestRedisDetector_ZeroThresholdNeverFires(t *testing.T) {
	d, _ := newTestDetector(t, 0, time.Minute)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		hit, err := d.Observe(ctx, "u1")
		require.NoError(t, err)
		assert.False(t, hit)
	}
}

func TestRedisDetector_Reset(t *testing.T) {
	d, mr := newTestDetector(t, 1, time.Minute)
	ctx := context.Background()

	_, err := d.Observe(ctx, "u1")
	require.NoError(t, err)
	require.NoError(t, d.Reset(ctx, "u1"))
	assert.False(t, mr.Exists("tokenkeeper:reuse:u1"))
}

func TestRedisDetector_Unavailable(t *testing.T) {
	d, mr := newTestDetector(t, 1, time.Minute)
	mr.Close()

	_, err := d.Observe(context.Background(), "u1")
	assert.Error(t, err)
}

func TestNop(t *testing.T) {
	hit, err := Nop{}.Observe(context.Background(), "u1")
	assert.NoError(t, err)
	assert.False(t, hit)
	assert.NoError(t, Nop{}.Reset(context.Background(), "u1"))
}
