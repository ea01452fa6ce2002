package idempotency

import (
	"context"
	"time"

	"encore.dev/storage/cache"

	"encore.app/billing/model"
)

// EntryTTL is how long a key protects an order or bill request from replays.
const EntryTTL = 24 * time.Hour

var RequestCluster = cache.NewCluster("idempotency-cluster", cache.ClusterConfig{
	EvictionPolicy: cache.AllKeysLRU,
})

// RequestCache holds one entry per (method and path, client key).
var RequestCache = cache.NewStructKeyspace[model.IdempotencyKey, model.IdempotencyCacheEntry](
	RequestCluster,
	cache.KeyspaceConfig{
		KeyPattern:    "idempotency/:Resource/:Key",
		DefaultExpiry: cache.ExpireIn(EntryTTL),
	},
)

// entryStore is the part of RequestCache the middleware uses.
type entryStore interface {
	Get(ctx context.Context, key model.IdempotencyKey) (model.IdempotencyCacheEntry, error)
	Set(ctx context.Context, key model.IdempotencyKey, val model.IdempotencyCacheEntry) error
	SetIfNotExists(ctx context.Context, key model.IdempotencyKey, val model.IdempotencyCacheEntry) error
	Delete(ctx context.Context, keys ...model.IdempotencyKey) (int, error)
}

var store entryStore = keyspaceStore{}

type keyspaceStore struct{}

func (keyspaceStore) Get(ctx context.Context, key model.IdempotencyKey) (model.IdempotencyCacheEntry, error) {
	return RequestCache.Get(ctx, key)
}

func (keyspaceStore) Set(ctx context.Context, key model.IdempotencyKey, val model.IdempotencyCacheEntry) error {
	return RequestCache.Set(ctx, key, val)
}

// SetIfNotExists fails with cache.KeyExists when another request holds the key.
func (keyspaceStore) SetIfNotExists(ctx context.Context, key model.IdempotencyKey, val model.IdempotencyCacheEntry) error {
	return RequestCache.SetIfNotExists(ctx, key, val)
}

func (keyspaceStore) Delete(ctx context.Context, keys ...model.IdempotencyKey) (int, error) {
	return RequestCache.Delete(ctx, keys...)
}
