package projection

import (
	"fmt"
	"strings"

	"github.com/hashicorp/golang-lru/simplelru"
)

// DefaultCacheSize bounds the number of memoized projections.
const DefaultCacheSize = 64

// Key identifies a projection result. Generation changes on every data load.
type Key struct {
	Generation int
	View       string
	Window     string
	Selection  string
}

// NewKey builds a Key, folding the selection codes into one string.
func NewKey(gen int, view fmt.Stringer, window fmt.Stringer, codes ...[]string) Key {
	parts := make([]string, 0, len(codes))
	for _, c := range codes {
		parts = append(parts, strings.Join(c, ","))
	}
	return Key{
		Generation: gen,
		View:       view.String(),
		Window:     window.String(),
		Selection:  strings.Join(parts, "|"),
	}
}

// Cache memoizes projection results. Projections are pure, so a cached value
// is always equal to recomputing it.
type Cache struct {
	lru *simplelru.LRU
}

// NewCache returns a cache holding at most size results.
func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	lru, err := simplelru.NewLRU(size, nil /* no onEvict policy */)
	if err != nil {
		return nil, fmt.Errorf("projection cache: %w", err)
	}
	return &Cache{lru: lru}, nil
}

// Get returns the cached value for key, computing and storing it on a miss.
func (c *Cache) Get(key Key, compute func() any) any {
	if c == nil {
		return compute()
	}
	if v, ok := c.lru.Get(key); ok {
		return v
	}
	v := compute()
	c.lru.Add(key, v)
	return v
}

// Len is the number of cached results.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	return c.lru.Len()
}

// Purge drops every cached result.
func (c *Cache) Purge() {
	if c == nil {
		return
	}
	c.lru.Purge()
}
