// ABOUTME: Thread-safe TTL cache of rendered article HTML.
// ABOUTME: Keyed by a content hash of the article body so edits never serve stale output.

package rendercache

import (
	"container/list"
	"encoding/hex"
	"sync"
	"time"

	"github.com/zeebo/xxh3"

	"github.com/2389/coven-wiki/internal/markup"
)

// cacheEntry stores the rendered document, its insertion time, and list element.
type cacheEntry struct {
	doc       markup.Document
	timestamp time.Time
	element   *list.Element
}

// Stats reports cache effectiveness.
type Stats struct {
	Hits   uint64
	Misses uint64
	Size   int
}

// Cache provides a thread-safe, TTL-based, size-limited cache of rendered documents.
// Uses a doubly-linked list to maintain insertion order for O(1) eviction.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	order   *list.List // List of keys in insertion order (oldest at front)
	ttl     time.Duration
	maxSize int
	hits    uint64
	misses  uint64
	done    chan struct{}
	closed  bool
}

// New creates a render cache with the specified TTL and maximum size.
// A background goroutine periodically cleans up expired entries until Close.
func New(ttl time.Duration, maxSize int) *Cache {
	if maxSize < 1 {
		maxSize = 1
	}
	c := &Cache{
		entries: make(map[string]*cacheEntry),
		order:   list.New(),
		ttl:     ttl,
		maxSize: maxSize,
		done:    make(chan struct{}),
	}
	go c.cleanup()
	return c
}

// Key returns the cache key for an article body.
func Key(body string) string {
	sum := xxh3.HashString128(body).Bytes()
	return hex.EncodeToString(sum[:])
}

// Get returns the cached document for key if present and not expired.
func (c *Cache) Get(key string) (markup.Document, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok || time.Since(entry.timestamp) >= c.ttl {
		c.misses++
		return markup.Document{}, false
	}
	c.hits++
	return entry.doc, true
}

// Put stores doc under key. If the cache is at capacity, the oldest entry is
// evicted to make room.
func (c *Cache) Put(key string, doc markup.Document) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()

	// If key already exists, refresh it and move to back
	if entry, exists := c.entries[key]; exists {
		entry.doc = doc
		entry.timestamp = now
		c.order.MoveToBack(entry.element)
		return
	}

	if len(c.entries) >= c.maxSize {
		c.evictOldest()
	}

	elem := c.order.PushBack(key)
	c.entries[key] = &cacheEntry{
		doc:       doc,
		timestamp: now,
		element:   elem,
	}
}

// Render returns the cached rendering of body, rendering and storing it on a miss.
func (c *Cache) Render(r *markup.Renderer, body string) (markup.Document, error) {
	key := Key(body)
	if doc, ok := c.Get(key); ok {
		return doc, nil
	}

	doc, err := r.Render(body)
	if err != nil {
		return markup.Document{}, err
	}
	c.Put(key, doc)
	return doc, nil
}

// Len returns the number of entries, including expired ones not yet cleaned up.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats returns hit/miss counters and the current size.
func (c *Cache) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Stats{Hits: c.hits, Misses: c.misses, Size: len(c.entries)}
}

// evictOldest removes the oldest entry from the cache.
// Must be called with mu held.
func (c *Cache) evictOldest() {
	front := c.order.Front()
	if front == nil {
		return
	}

	key, _ := front.Value.(string)
	c.order.Remove(front)
	delete(c.entries, key)
}

// cleanup runs in a background goroutine, periodically removing expired entries.
func (c *Cache) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.runCleanup()
		case <-c.done:
			return
		}
	}
}

// runCleanup removes all expired entries from the cache.
func (c *Cache) runCleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for key, entry := range c.entries {
		if now.Sub(entry.timestamp) >= c.ttl {
			c.order.Remove(entry.element)
			delete(c.entries, key)
		}
	}
}

// Close stops the background cleanup goroutine. It is safe to call multiple times.
func (c *Cache) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.closed {
		close(c.done)
		c.closed = true
	}
}
