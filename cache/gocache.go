package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// LoaderFunc loads the data for a key that is missing from the cache
type LoaderFunc func() ([]byte, error)

// Cache is a small in-memory byte cache built on go-cache.
// Responses are stored raw so callers decide how to decode them.
type Cache struct {
	cache *gocache.Cache
}

// New creates a new Cache instance
// defaultExpiration: default expiration time for items
// cleanupInterval: interval for cleaning up expired items
func New(defaultExpiration, cleanupInterval time.Duration) *Cache {
	return &Cache{
		cache: gocache.New(defaultExpiration, cleanupInterval),
	}
}

// Get retrieves the value for a key
func (c *Cache) Get(key string) ([]byte, bool) {
	value, found := c.cache.Get(key)
	if !found {
		return nil, false
	}

	data, ok := value.([]byte)
	if !ok {
		return nil, false
	}
	return data, true
}

// Set stores a value with the specified TTL.
// If ttl is 0, the cache's default expiration applies.
func (c *Cache) Set(key string, data []byte, ttl time.Duration) {
	c.cache.Set(key, data, ttl)
}

// GetOrLoad returns the cached value for key, or calls loader and caches
// its result with the given TTL. Loader errors are not cached.
func (c *Cache) GetOrLoad(key string, ttl time.Duration, loader LoaderFunc) ([]byte, error) {
	if data, found := c.Get(key); found {
		return data, nil
	}

	data, err := loader()
	if err != nil {
		return nil, err
	}

	c.Set(key, data, ttl)
	return data, nil
}

// Delete removes an item from cache
func (c *Cache) Delete(key string) {
	c.cache.Delete(key)
}

// Clear removes all items from cache
func (c *Cache) Clear() {
	c.cache.Flush()
}

// ItemCount returns the number of items in cache
func (c *Cache) ItemCount() int {
	return c.cache.ItemCount()
}
