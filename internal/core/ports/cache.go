package ports

import "github.com/crossgrade/crossgrade/internal/core/domain"

// ResolutionCache defines the interface for persisting package resolutions.
// Keys are domain.CacheKey values; the store never interprets them.
//
//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type ResolutionCache interface {
	// Get retrieves the cached resolution for a key.
	// Returns nil, nil if not found. Freshness is the caller's business.
	Get(key string) (*domain.CacheEntry, error)

	// Put stores a resolution, overwriting any previous entry for the key.
	Put(key string, entry domain.CacheEntry) error

	// Clear removes every cached resolution.
	Clear() error
}
