// Package cache provides a content-addressed, bounded LRU cache for
// analysis results. Keys are derived from the input texts, so re-analyzing
// unchanged inputs is free and results can never go stale.
package cache

import (
	"container/list"
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"github.com/jonathan/ats-scorer/internal/types"
)

// DefaultCapacity bounds the cache when no capacity is configured.
const DefaultCapacity = 20

// KeyFor derives the cache key from the analysis inputs. The separator
// byte keeps (resume, jd) pairs from colliding across the boundary.
func KeyFor(resumeText, jdText string) string {
	h := sha256.New()
	h.Write([]byte(resumeText))
	h.Write([]byte{0})
	h.Write([]byte(jdText))
	return hex.EncodeToString(h.Sum(nil))
}

type entry struct {
	key   string
	value *types.AnalysisResult
}

// ResultCache is a fixed-capacity LRU of analysis results, safe for
// concurrent use.
type ResultCache struct {
	mu       sync.Mutex
	capacity int
	order    *list.List
	items    map[string]*list.Element
}

// New creates a cache. Non-positive capacities fall back to the default.
func New(capacity int) *ResultCache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &ResultCache{
		capacity: capacity,
		order:    list.New(),
		items:    make(map[string]*list.Element, capacity),
	}
}

// Get returns the cached result for key and marks it recently used.
func (c *ResultCache) Get(key string) (*types.AnalysisResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(*entry).value, true
}

// Put stores a result, evicting the least recently used entry at capacity.
func (c *ResultCache) Put(key string, value *types.AnalysisResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		elem.Value.(*entry).value = value
		c.order.MoveToFront(elem)
		return
	}

	c.items[key] = c.order.PushFront(&entry{key: key, value: value})

	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.items, oldest.Value.(*entry).key)
	}
}

// Len returns the number of cached results.
func (c *ResultCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
