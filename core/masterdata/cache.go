package masterdata

import (
	"context"
	"sync"
	"time"

	"craftstore/core/storage"

	"golang.org/x/sync/singleflight"
)

// loadTimeout bounds a shared load, which outlives the request that started it.
const loadTimeout = 30 * time.Second

// Cache holds the most recently loaded catalog.
type Cache struct {
	client storage.Client
	bucket string
	cfg    Config

	mu      sync.RWMutex
	catalog *Catalog
	sf      singleflight.Group
}

// NewCache creates an empty cache.
func NewCache(client storage.Client, bucket string, cfg Config) *Cache {
	return &Cache{client: client, bucket: bucket, cfg: cfg}
}

// Get returns the cached catalog, or loads a new one if missing or expired.
func (c *Cache) Get(ctx context.Context) (*Catalog, error) {
	c.mu.RLock()
	catalog := c.catalog
	c.mu.RUnlock()

	if catalog != nil && !catalog.IsExpired() {
		return catalog, nil
	}

	result, err, _ := c.sf.Do("catalog", func() (interface{}, error) {
		c.mu.RLock()
		catalog := c.catalog
		c.mu.RUnlock()

		if catalog != nil && !catalog.IsExpired() {
			return catalog, nil
		}

		// Shared by every waiting caller, so detached from the first caller's cancellation.
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
		defer cancel()

		fresh, err := Load(loadCtx, c.client, c.bucket, c.cfg)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.catalog = fresh
		c.mu.Unlock()

		return fresh, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*Catalog), nil
}

// Invalidate drops the cached catalog.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.catalog = nil
	c.mu.Unlock()
}
