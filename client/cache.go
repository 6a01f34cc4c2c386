package client

import (
	"strings"
	"sync"
)

// queryCache stores raw response bodies keyed by endpoint+params. Each entry
// has its own mutex so refetches are serialized per key without imposing
// cross-key ordering.
type queryCache struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry
}

type cacheEntry struct {
	mu    sync.Mutex
	valid bool
	body  []byte
}

func (qc *queryCache) entry(key string) *cacheEntry {
	qc.mu.Lock()
	defer qc.mu.Unlock()

	if qc.entries == nil {
		qc.entries = make(map[string]*cacheEntry)
	}
	e, ok := qc.entries[key]
	if !ok {
		e = &cacheEntry{}
		qc.entries[key] = e
	}
	return e
}

// invalidatePrefix drops every cached key under the given path prefix.
// Mutations call this on success only; a failed mutation leaves the cache
// (and therefore the UI state it backs) untouched.
func (qc *queryCache) invalidatePrefix(prefix string) {
	qc.mu.Lock()
	defer qc.mu.Unlock()

	for key, e := range qc.entries {
		if strings.HasPrefix(key, prefix) {
			e.mu.Lock()
			e.valid = false
			e.body = nil
			e.mu.Unlock()
		}
	}
}
