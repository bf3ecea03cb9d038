package idempotency

import (
	"time"

	"encore.dev/storage/cache"

	"encore.app/rewards/model"
)

// ReplayCluster is the cache cluster backing inbound replay protection
var ReplayCluster = cache.NewCluster("replay-cluster", cache.ClusterConfig{
	EvictionPolicy: cache.AllKeysLRU,
})

// ReplayCache stores one entry per (endpoint, idempotency key) pair
var ReplayCache = cache.NewStructKeyspace[model.ReplayKey, model.ReplayEntry](
	ReplayCluster,
	cache.KeyspaceConfig{
		KeyPattern:    "replay/:Resource/:Key",
		DefaultExpiry: cache.ExpireIn(24 * time.Hour),
	},
)
