// Package cache implements a Redis read-through cache for availability
// queries.  Availability is the hottest read path of the service and is
// fully determined by the rooms and reservations tables, so every write
// to either table bumps a version key which implicitly drops all cached
// date ranges.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/hotel-management/internal/config"
	"github.com/iliyamo/hotel-management/internal/model"
)

// AvailabilityCache caches the room list returned for a date range.
// All methods tolerate Redis failures by behaving like a miss; the
// database remains the source of truth.
type AvailabilityCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	prefix string
}

// NewAvailabilityCache builds a cache from the given client and config.
// It returns nil when the client is nil or caching is disabled; callers
// treat a nil cache as "always miss".
func NewAvailabilityCache(rdb *redis.Client, cfg config.CacheConfig) *AvailabilityCache {
	if rdb == nil || !cfg.Enabled {
		return nil
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &AvailabilityCache{rdb: rdb, ttl: ttl, prefix: cfg.Prefix}
}

// Get returns the cached rooms for the range and whether the lookup hit.
func (c *AvailabilityCache) Get(ctx context.Context, checkIn, checkOut string) ([]*model.Room, bool) {
	key, err := c.key(ctx, checkIn, checkOut)
	if err != nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var rooms []*model.Room
	if err := json.Unmarshal(raw, &rooms); err != nil {
		return nil, false
	}
	return rooms, true
}

// Set stores the rooms for the range under the current cache version.
func (c *AvailabilityCache) Set(ctx context.Context, checkIn, checkOut string, rooms []*model.Room) {
	key, err := c.key(ctx, checkIn, checkOut)
	if err != nil {
		return
	}
	raw, err := json.Marshal(rooms)
	if err != nil {
		return
	}
	_ = c.rdb.Set(ctx, key, raw, c.ttl).Err()
}

// Invalidate bumps the version key, orphaning every cached date range.
// Orphaned entries expire via their TTL.
func (c *AvailabilityCache) Invalidate(ctx context.Context) {
	_ = c.rdb.Incr(ctx, c.prefix+":ver").Err()
}

// key builds the versioned cache key for a date range.
func (c *AvailabilityCache) key(ctx context.Context, checkIn, checkOut string) (string, error) {
	ver, err := c.rdb.Get(ctx, c.prefix+":ver").Int64()
	if err != nil && err != redis.Nil {
		return "", err
	}
	return fmt.Sprintf("%s:v%d:%s:%s", c.prefix, ver, checkIn, checkOut), nil
}
