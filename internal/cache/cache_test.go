// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestNilCacheIsPermanentMiss(t *testing.T) {
	var cc *CollectionCache
	ctx := context.Background()

	// All operations on a nil cache are no-ops; Get always misses.
	cc.Set(ctx, KeyProjects, []byte(`[]`))
	if _, ok := cc.Get(ctx, KeyProjects); ok {
		t.Error("nil cache reported a hit")
	}
	cc.Invalidate(ctx, KeyProjects, KeyCategories)
}

// testCache connects to a local Valkey, skipping when unreachable.
func testCache(t *testing.T) *CollectionCache {
	t.Helper()

	host := os.Getenv("VALKEY_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("VALKEY_PORT")
	if port == "" {
		port = "6379"
	}

	client, err := ConnectValkey(host, port, os.Getenv("VALKEY_PASSWORD"))
	if err != nil {
		t.Skipf("skipping: valkey not reachable: %v", err)
	}
	t.Cleanup(func() { client.Close() })

	return NewCollectionCache(client, time.Minute)
}

func TestCollectionCacheRoundTrip(t *testing.T) {
	cc := testCache(t)
	ctx := context.Background()

	key := "test-roundtrip"
	t.Cleanup(func() { cc.Invalidate(ctx, key) })

	if _, ok := cc.Get(ctx, key); ok {
		t.Fatal("unexpected hit before Set")
	}

	payload := []byte(`[{"title":"cached"}]`)
	cc.Set(ctx, key, payload)

	got, ok := cc.Get(ctx, key)
	if !ok {
		t.Fatal("expected hit after Set")
	}
	if string(got) != string(payload) {
		t.Errorf("payload: got %s, want %s", got, payload)
	}

	cc.Invalidate(ctx, key)
	if _, ok := cc.Get(ctx, key); ok {
		t.Error("hit after Invalidate")
	}
}

func TestCollectionCacheInvalidateMultiple(t *testing.T) {
	cc := testCache(t)
	ctx := context.Background()

	keys := []string{"test-multi-a", "test-multi-b"}
	t.Cleanup(func() { cc.Invalidate(ctx, keys...) })

	for _, k := range keys {
		cc.Set(ctx, k, []byte(`[]`))
	}
	cc.Invalidate(ctx, keys...)

	for _, k := range keys {
		if _, ok := cc.Get(ctx, k); ok {
			t.Errorf("key %q survived Invalidate", k)
		}
	}
}
