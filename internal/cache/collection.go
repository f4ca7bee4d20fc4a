// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// collection.go provides a Valkey-backed cache for the JSON payloads of the
// list endpoints. A successful list query stores its encoded response so
// subsequent requests skip the DB entirely; any mutation of a collection
// drops its key. The cache is strictly best-effort: every failure degrades
// to a plain DB read.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// collectionKeyPrefix is the Valkey key prefix for cached collections.
	collectionKeyPrefix = "coll:"

	// DefaultCollectionTTL is how long a cached collection payload lives.
	DefaultCollectionTTL = 5 * time.Minute
)

// Well-known collection keys.
const (
	KeyProjects     = "projects"
	KeyCategories   = "categories"
	KeyBlog         = "blog"
	KeyTestimonials = "testimonials"
	KeySettings     = "settings"
)

// CollectionCache stores encoded list responses in Valkey. A nil
// *CollectionCache is valid and behaves as a permanent miss, so callers
// need no nil checks when Valkey is not configured.
type CollectionCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCollectionCache creates a cache backed by the given Valkey client.
func NewCollectionCache(client *redis.Client, ttl time.Duration) *CollectionCache {
	if ttl == 0 {
		ttl = DefaultCollectionTTL
	}
	return &CollectionCache{client: client, ttl: ttl}
}

// Get retrieves the cached payload for a collection key.
func (cc *CollectionCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if cc == nil {
		return nil, false
	}
	val, err := cc.client.Get(ctx, collectionKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("collection cache get error", "key", key, "error", err)
		return nil, false
	}
	slog.Debug("collection cache hit", "key", key)
	return val, true
}

// Set stores an encoded payload for a collection key with the configured TTL.
func (cc *CollectionCache) Set(ctx context.Context, key string, payload []byte) {
	if cc == nil {
		return
	}
	if err := cc.client.Set(ctx, collectionKeyPrefix+key, payload, cc.ttl).Err(); err != nil {
		slog.Warn("collection cache set error", "key", key, "error", err)
	}
}

// Invalidate removes one or more collection keys after a mutation.
func (cc *CollectionCache) Invalidate(ctx context.Context, keys ...string) {
	if cc == nil || len(keys) == 0 {
		return
	}
	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = collectionKeyPrefix + k
	}
	if err := cc.client.Del(ctx, prefixed...).Err(); err != nil {
		slog.Warn("collection cache invalidate error", "keys", keys, "error", err)
	}
	slog.Debug("collection cache invalidated", "keys", keys)
}
