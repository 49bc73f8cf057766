// Package secrets resolves provider credentials from a secret store and
// caches them for the lifetime of the process.
package secrets

import (
	"fmt"
	"os"
	"sync"
)

// Store looks up one secret value by name (infrastructure port).
type Store interface {
	Get(name string) (string, error)
}

// EnvStore reads secrets from environment variables.
type EnvStore struct{}

// Get returns the environment variable with the given name. A missing or
// empty value is an error so callers can treat it as "not configured".
func (EnvStore) Get(name string) (string, error) {
	v := os.Getenv(name)
	if v == "" {
		return "", fmt.Errorf("secret %q is not set", name)
	}
	return v, nil
}

// Cache is a lazily initialized, concurrency-safe cell for one secret value.
// The first caller pays the store lookup; later callers read the cached
// result, including a cached failure. Reset clears the cell for tests.
type Cache struct {
	store Store
	name  string

	mu      sync.Mutex
	fetched bool
	value   string
	err     error
}

// NewCache returns a Cache that resolves the named secret from store.
func NewCache(store Store, name string) *Cache {
	return &Cache{store: store, name: name}
}

// Get returns the cached secret, fetching it on first use.
func (c *Cache) Get() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.fetched {
		c.value, c.err = c.store.Get(c.name)
		c.fetched = true
	}
	return c.value, c.err
}

// Reset clears the cached value so the next Get fetches again.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fetched = false
	c.value = ""
	c.err = nil
}
