package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"localreach/internal/core/domain"
)

func newTestCache(t *testing.T, ttl time.Duration) (*RoleCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRoleCache(rdb, ttl), mr
}

func TestRoleCache(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	_, ok, err := c.Role(ctx, "p1")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, c.SetRole(ctx, "p1", domain.RoleAdmin))
	role, ok, err := c.Role(ctx, "p1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, domain.RoleAdmin, role)
	require.Equal(t, time.Minute, mr.TTL("localreach:role:p1"))

	mr.FastForward(2 * time.Minute)
	_, ok, err = c.Role(ctx, "p1")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRoleCacheUnavailable(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	mr.Close()

	_, _, err := c.Role(context.Background(), "p1")
	require.Error(t, err)
}
