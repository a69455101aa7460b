package domain

import "time"

// CacheEntry is one persisted resolution. Found false records confirmed
// absence; negative results are cached with the same TTL as positive ones so
// a dead lookup does not get hammered on every run.
type CacheEntry struct {
	Source     string
	Target     string
	Found      bool
	ResolvedAt time.Time
}

// Fresh reports whether the entry is still valid at now for the given TTL.
func (e CacheEntry) Fresh(now time.Time, ttl time.Duration) bool {
	return now.Sub(e.ResolvedAt) < ttl
}

// Outcome converts the entry into a cache-origin resolution outcome.
func (e CacheEntry) Outcome() Outcome {
	if e.Found {
		return FoundIn(e.Target, OriginCache)
	}
	return NotFoundFrom(OriginCache)
}

// NewCacheEntry builds the entry persisted after a network resolution.
func NewCacheEntry(source string, outcome Outcome, resolvedAt time.Time) CacheEntry {
	return CacheEntry{
		Source:     source,
		Target:     outcome.Target,
		Found:      outcome.Found(),
		ResolvedAt: resolvedAt,
	}
}
