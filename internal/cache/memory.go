package cache

import (
	"context"
	"sync"
	"time"
)

// MemoryCustomerListCache keeps the snapshot in process memory
type MemoryCustomerListCache struct {
	mu        sync.RWMutex
	snapshot  Snapshot
	populated bool
	now       func() time.Time

	subsMu sync.Mutex
	subs   map[chan struct{}]struct{}
}

// NewMemoryCustomerListCache builds empty in-memory cache
func NewMemoryCustomerListCache() *MemoryCustomerListCache {
	return &MemoryCustomerListCache{
		now:  time.Now,
		subs: make(map[chan struct{}]struct{}),
	}
}

// Read returns current snapshot, false if never populated or invalidated
func (c *MemoryCustomerListCache) Read(_ context.Context) (Snapshot, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.populated {
		return Snapshot{}, false, nil
	}
	return c.snapshot, true, nil
}

// Write replaces snapshot, its timestamp is kept so readers can match it with their copy
func (c *MemoryCustomerListCache) Write(_ context.Context, s Snapshot) error {
	if s.FetchedAt.IsZero() {
		s.FetchedAt = c.now()
	}

	c.mu.Lock()
	c.snapshot = s
	c.populated = true
	c.mu.Unlock()

	c.notify()
	return nil
}

// Invalidate drops snapshot together with its timestamp
func (c *MemoryCustomerListCache) Invalidate(_ context.Context) error {
	c.mu.Lock()
	changed := c.populated
	c.snapshot = Snapshot{}
	c.populated = false
	c.mu.Unlock()

	if changed {
		c.notify()
	}
	return nil
}

// Subscribe registers for change notifications. Notifications are coalesced,
// a slow reader sees at most one pending signal. Returned func unsubscribes.
func (c *MemoryCustomerListCache) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	c.subsMu.Lock()
	c.subs[ch] = struct{}{}
	c.subsMu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			c.subsMu.Lock()
			delete(c.subs, ch)
			c.subsMu.Unlock()
			close(ch)
		})
	}
}

func (c *MemoryCustomerListCache) notify() {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()

	for ch := range c.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
