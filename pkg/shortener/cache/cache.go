package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tomwray13/url-shortener/pkg/shortener/models"
)

const keyPrefix = "link:"

// Cache is a read-through Redis cache of short code -> Link, used to keep
// redirect lookups off the database. A nil *Cache is valid and behaves as a
// permanent miss, so callers never need to branch on whether caching is
// configured.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

// New connects to Redis at addr. Entries expire after ttl.
func New(addr string, ttl time.Duration) *Cache {
	return &Cache{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
		ttl: ttl,
	}
}

// GetLink returns the cached link for a code, or ok=false on a miss.
// Redis errors are treated as misses: the database remains the source of
// truth and a flaky cache must not fail reads.
func (c *Cache) GetLink(ctx context.Context, code string) (*models.Link, bool) {
	if c == nil {
		return nil, false
	}
	payload, err := c.rdb.Get(ctx, keyPrefix+code).Bytes()
	if err != nil {
		return nil, false
	}
	var link models.Link
	if err := json.Unmarshal(payload, &link); err != nil {
		return nil, false
	}
	return &link, true
}

// SetLink stores a link under its code.
func (c *Cache) SetLink(ctx context.Context, code string, link *models.Link) {
	if c == nil || link == nil {
		return
	}
	payload, err := json.Marshal(link)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, keyPrefix+code, payload, c.ttl)
}

// DeleteLink drops the cached entry for a code. Called on update and remove
// so a stale destination is never served.
func (c *Cache) DeleteLink(ctx context.Context, code string) {
	if c == nil {
		return
	}
	c.rdb.Del(ctx, keyPrefix+code)
}

// Close releases the underlying Redis connection.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}
