package cache

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// DefaultTTL is how long an entry stays valid. Eviction is purely time-based;
// there is no size bound.
const DefaultTTL = 24 * time.Hour

// Cache is a time-boxed key/value cache with hit/miss accounting, shared
// process-wide. Safe for concurrent use.
type Cache struct {
	mu     sync.RWMutex
	stores map[Namespace]*expirable.LRU[string, string]
	ttl    time.Duration

	hits       atomic.Int64
	misses     atomic.Int64
	callsSaved atomic.Int64
	timeSaved  atomic.Int64 // nanoseconds
}

// New creates a cache whose entries expire after ttl. Zero ttl means DefaultTTL.
func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	c := &Cache{ttl: ttl}
	c.stores = newStores(ttl)
	return c
}

func newStores(ttl time.Duration) map[Namespace]*expirable.LRU[string, string] {
	stores := make(map[Namespace]*expirable.LRU[string, string], len(Namespaces))
	for _, ns := range Namespaces {
		// size 0 = unbounded; only the TTL evicts
		stores[ns] = expirable.NewLRU[string, string](0, nil, ttl)
	}
	return stores
}

// Key builds a deterministic fingerprint for (text, operation, params).
// Text is case/whitespace-normalized and params are serialized with sorted
// keys, so the same logical request always maps to the same entry regardless
// of parameter order.
func (c *Cache) Key(text, operation string, params map[string]string) string {
	keyData := make(map[string]string, len(params)+2)
	for k, v := range params {
		keyData[k] = v
	}
	keyData["text"] = strings.ToLower(strings.TrimSpace(text))
	keyData["operation"] = operation

	// json.Marshal writes map keys in sorted order
	raw, _ := json.Marshal(keyData)
	sum := md5.Sum(raw)
	return hex.EncodeToString(sum[:])
}

// Get looks up a key in the given namespace. Every call increments exactly one
// of the hit/miss counters; an expired entry counts as a miss.
func (c *Cache) Get(ns Namespace, key string) (string, bool) {
	c.mu.RLock()
	store, ok := c.stores[ns]
	c.mu.RUnlock()
	if !ok {
		c.misses.Add(1)
		return "", false
	}

	value, ok := store.Get(key)
	if !ok {
		c.misses.Add(1)
		return "", false
	}
	c.hits.Add(1)
	return value, true
}

// Set stores a value in the given namespace. Unknown namespaces are dropped.
func (c *Cache) Set(ns Namespace, key, value string) {
	c.mu.RLock()
	store, ok := c.stores[ns]
	c.mu.RUnlock()
	if !ok {
		return
	}
	store.Add(key, value)
}

// RecordRemoteCall is called by a client after it performed the remote call a
// future cache hit will save.
func (c *Cache) RecordRemoteCall(elapsed time.Duration) {
	c.callsSaved.Add(1)
	c.timeSaved.Add(int64(elapsed))
}

// Stats returns a snapshot of the counters.
func (c *Cache) Stats() Stats {
	return Stats{
		Hits:       c.hits.Load(),
		Misses:     c.misses.Load(),
		CallsSaved: c.callsSaved.Load(),
		TimeSaved:  time.Duration(c.timeSaved.Load()),
	}
}

// Clear drops every entry and resets all counters.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.stores = newStores(c.ttl)
	c.mu.Unlock()

	c.hits.Store(0)
	c.misses.Store(0)
	c.callsSaved.Store(0)
	c.timeSaved.Store(0)
}
