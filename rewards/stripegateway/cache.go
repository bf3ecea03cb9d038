package stripegateway

import (
	"sync"

	"github.com/stripe/stripe-go/v78/client"
)

// ClientCache holds at most one configured provider client, keyed by the
// credential it was built from. Replacement is last-write-wins: concurrent
// requests during a credential rotation may see either client, which the
// provider tolerates while both keys are live. Clear exists for test
// isolation.
type ClientCache struct {
	mu  sync.Mutex
	key string
	api *client.API
}

func NewClientCache() *ClientCache {
	return &ClientCache{}
}

// Get returns the cached client if it was built from key.
func (c *ClientCache) Get(key string) (*client.API, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.api == nil || c.key != key {
		return nil, false
	}
	return c.api, true
}

// Set replaces the cached client wholesale.
func (c *ClientCache) Set(key string, api *client.API) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.key = key
	c.api = api
}

// Clear drops the cached client.
func (c *ClientCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.key = ""
	c.api = nil
}

// GetOrCreate returns the cached client for key, building and caching a
// fresh one when the credential changed.
func (c *ClientCache) GetOrCreate(key string) *client.API {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.api != nil && c.key == key {
		return c.api
	}

	api := &client.API{}
	api.Init(key, nil)

	c.key = key
	c.api = api
	return api
}
