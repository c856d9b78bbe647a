// Package cache keeps short-lived lookups in Redis.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"localreach/internal/core/domain"
)

const roleKeyPrefix = "localreach:role:"

// RoleCache stores profile roles with a fixed TTL, so role changes apply
// within one TTL.
type RoleCache struct {
	rdb redis.Cmdable
	ttl time.Duration
}

// NewRoleCache creates a RoleCache on rdb.
func NewRoleCache(rdb redis.Cmdable, ttl time.Duration) *RoleCache {
	return &RoleCache{rdb: rdb, ttl: ttl}
}

func (c *RoleCache) Role(ctx context.Context, profileID string) (domain.Role, bool, error) {
	v, err := c.rdb.Get(ctx, roleKeyPrefix+profileID).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return domain.Role(v), true, nil
}

func (c *RoleCache) SetRole(ctx context.Context, profileID string, role domain.Role) error {
	return c.rdb.Set(ctx, roleKeyPrefix+profileID, string(role), c.ttl).Err()
}
