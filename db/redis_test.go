package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitEntry_SameInstantStaysDistinct(t *testing.T) {
	now := time.Now().UnixNano()
	a := rateLimitEntry(now)
	b := rateLimitEntry(now)

	assert.Equal(t, a.Score, b.Score)
	assert.NotEqual(t, a.Member, b.Member)
}

func TestRedisHelpers_WithoutClient(t *testing.T) {
	ctx := context.Background()
	saved := RedisClient
	RedisClient = nil
	t.Cleanup(func() { RedisClient = saved })

	allowed, err := RateLimit(ctx, "10.0.0.1", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)

	revoked, err := IsSessionRevoked(ctx, "session-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}
