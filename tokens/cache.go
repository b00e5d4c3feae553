package tokens

import (
	"sync"

	"github.com/promptfit/promptfit/model"
)

// Factory builds a Counter for a model identifier.
type Factory func(modelID string) Counter

// Cache is a per-model counter cache. Counters are built lazily on first
// use of a model identifier and never evicted. Reads take a shared lock;
// the write lock is only taken the first time a model is seen, with a
// double-check so concurrent first users build at most one counter.
//
// A Cache is meant to be constructed once and shared by reference for the
// life of the process.
type Cache struct {
	mu       sync.RWMutex
	counters map[string]Counter
	factory  Factory
}

// NewCache creates a cache that builds BPE counters from each model's
// profile encoding, falling back to the estimating counter when a
// vocabulary can't be loaded.
func NewCache() *Cache {
	return NewCacheWithFactory(defaultFactory)
}

// NewCacheWithFactory creates a cache with a custom counter factory.
// A nil factory uses the default.
func NewCacheWithFactory(factory Factory) *Cache {
	if factory == nil {
		factory = defaultFactory
	}
	return &Cache{
		counters: make(map[string]Counter),
		factory:  factory,
	}
}

// defaultFactory resolves the model's encoding via its profile. Unknown
// models use the default encoding rather than failing.
func defaultFactory(modelID string) Counter {
	profile, _ := model.Lookup(modelID)
	counter, err := NewBPECounter(profile.Encoding)
	if err != nil {
		return NewEstimatingCounter()
	}
	return counter
}

// CounterFor returns the counter for a model identifier, building it on
// first use.
func (c *Cache) CounterFor(modelID string) Counter {
	c.mu.RLock()
	counter, ok := c.counters[modelID]
	c.mu.RUnlock()
	if ok {
		return counter
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	// Another goroutine may have built it while we waited.
	if counter, ok := c.counters[modelID]; ok {
		return counter
	}
	counter = c.factory(modelID)
	c.counters[modelID] = counter
	return counter
}

// Count returns the token count of text under the model's encoding.
func (c *Cache) Count(modelID, text string) int {
	return c.CounterFor(modelID).Count(text)
}

// Len returns how many model counters have been built.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.counters)
}
