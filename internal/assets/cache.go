package assets

import (
	"container/list"
	"context"
	"sync"
)

// Cache memoizes resolved encodings by image reference.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string)
}

// EvictionPolicy bounds a MemoryCache. MaxEntries <= 0 means unbounded.
type EvictionPolicy struct {
	MaxEntries int
}

// Unbounded keeps every entry for the lifetime of the cache.
func Unbounded() EvictionPolicy { return EvictionPolicy{} }

// LRU keeps at most n entries, evicting the least recently used.
func LRU(n int) EvictionPolicy { return EvictionPolicy{MaxEntries: n} }

type entry struct {
	key   string
	value string
}

// MemoryCache is an in-process cache owned by a single Resolver.
type MemoryCache struct {
	mu     sync.Mutex
	policy EvictionPolicy
	order  *list.List
	items  map[string]*list.Element
}

var _ Cache = (*MemoryCache)(nil)

func NewMemoryCache(policy EvictionPolicy) *MemoryCache {
	return &MemoryCache{
		policy: policy,
		order:  list.New(),
		items:  make(map[string]*list.Element),
	}
}

func (c *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	el, ok := c.items[key]
	if !ok {
		return "", false
	}
	c.order.MoveToFront(el)
	return el.Value.(*entry).value, true
}

func (c *MemoryCache) Set(_ context.Context, key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.items[key]; ok {
		el.Value.(*entry).value = value
		c.order.MoveToFront(el)
		return
	}
	c.items[key] = c.order.PushFront(&entry{key: key, value: value})
	if c.policy.MaxEntries > 0 {
		for c.order.Len() > c.policy.MaxEntries {
			oldest := c.order.Back()
			c.order.Remove(oldest)
			delete(c.items, oldest.Value.(*entry).key)
		}
	}
}

// Len returns the number of cached references.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
