package cachestore

import (
	"sync"

	"github.com/crossgrade/crossgrade/internal/core/domain"
)

// Memory implements ports.ResolutionCache in process memory. It backs tests
// where persisting resolutions to disk would be noise.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]domain.CacheEntry
}

// NewMemory creates an empty in-memory cache.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]domain.CacheEntry)}
}

// Get retrieves the cached resolution for a key.
// Returns nil, nil if not found.
func (m *Memory) Get(key string) (*domain.CacheEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, ok := m.entries[key]
	if !ok {
		return nil, nil
	}

	return &entry, nil
}

// Put stores a resolution, overwriting any previous entry for the key.
func (m *Memory) Put(key string, entry domain.CacheEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = entry
	return nil
}

// Clear removes every cached resolution.
func (m *Memory) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = make(map[string]domain.CacheEntry)
	return nil
}
