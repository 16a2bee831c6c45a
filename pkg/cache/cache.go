// Package cache implements a small in-process LRU with per-entry TTL,
// used as a read-through cache in front of the database.
package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

const janitorInterval = 2 * time.Minute

type item struct {
	key       string
	value     []byte
	expiresAt time.Time
}

func (it *item) expired(now time.Time) bool {
	return now.After(it.expiresAt)
}

type LRUCache struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration

	order *list.List
	items map[string]*list.Element
}

func NewLRUCache(capacity int, ttl time.Duration) *LRUCache {
	return &LRUCache{
		capacity: capacity,
		ttl:      ttl,
		order:    list.New(),
		items:    make(map[string]*list.Element, capacity),
	}
}

// Get returns the cached value and marks the entry as recently used.
// Expired entries are dropped on access and reported as a miss.
func (c *LRUCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		return nil, false
	}

	it := el.Value.(*item)
	if it.expired(time.Now()) {
		c.evict(el)
		return nil, false
	}

	c.order.MoveToFront(el)
	return it.value, true
}

func (c *LRUCache) Set(key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	if el, ok := c.items[key]; ok {
		it := el.Value.(*item)
		it.value = value
		it.expiresAt = now.Add(c.ttl)
		c.order.MoveToFront(el)
		return
	}

	c.items[key] = c.order.PushFront(&item{
		key:       key,
		value:     value,
		expiresAt: now.Add(c.ttl),
	})

	for c.order.Len() > c.capacity {
		c.evict(c.order.Back())
	}
}

// Remove drops the entry so stale reads cannot follow an update or delete.
func (c *LRUCache) Remove(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.evict(el)
	}
}

func (c *LRUCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// StartJanitor sweeps expired entries in the background until ctx is done.
func (c *LRUCache) StartJanitor(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(janitorInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.sweep()
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (c *LRUCache) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for el := c.order.Back(); el != nil; {
		prev := el.Prev()
		if el.Value.(*item).expired(now) {
			c.evict(el)
		}
		el = prev
	}
}

func (c *LRUCache) evict(el *list.Element) {
	if el == nil {
		return
	}
	c.order.Remove(el)
	delete(c.items, el.Value.(*item).key)
}
