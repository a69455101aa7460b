// Package resolve implements the resolution engine: a per-package resolver
// state machine and the sequential batch driver feeding it.
package resolve

import (
	"context"
	"fmt"
	"time"

	"github.com/crossgrade/crossgrade/internal/core/domain"
	"github.com/crossgrade/crossgrade/internal/core/ports"
	"github.com/jonboulle/clockwork"
)

// Resolver maps one source package name to its target distribution
// equivalent: cache probe first, then the lookup service in two stages.
type Resolver struct {
	target domain.Distro
	cache  ports.ResolutionCache
	lookup ports.LookupService
	logger ports.Logger
	clock  clockwork.Clock
	ttl    time.Duration
}

// NewResolver creates a Resolver for one target distribution.
func NewResolver(
	target domain.Distro,
	cache ports.ResolutionCache,
	lookup ports.LookupService,
	logger ports.Logger,
	clock clockwork.Clock,
	ttl time.Duration,
) *Resolver {
	return &Resolver{
		target: target,
		cache:  cache,
		lookup: lookup,
		logger: logger,
		clock:  clock,
		ttl:    ttl,
	}
}

// Resolve maps one package name. The outcome is always Found or NotFound;
// the only error is context cancellation, and a canceled resolution writes
// nothing to the cache.
func (r *Resolver) Resolve(ctx context.Context, name string) (domain.Outcome, error) {
	if outcome := r.probeCache(name); outcome.Hit() {
		return outcome, nil
	}

	candidates, err := r.lookup.SearchExact(ctx, name)
	if err != nil {
		return domain.Outcome{}, err
	}

	// A search that returned candidates matching none of the target's
	// repositories is authoritative NotFound. Only an empty response falls
	// through to the project fetch, where the package name doubles as the
	// project ID.
	if len(candidates) == 0 {
		if candidates, err = r.lookup.FetchProject(ctx, name); err != nil {
			return domain.Outcome{}, err
		}
	}

	outcome := r.target.SelectTarget(candidates)
	r.writeCache(name, outcome)

	return outcome, nil
}

// probeCache returns a usable cached outcome or a miss. Read failures and
// stale entries are both misses; a broken cache must never stop a lookup.
func (r *Resolver) probeCache(name string) domain.Outcome {
	entry, err := r.cache.Get(domain.CacheKey(name))
	if err != nil {
		r.logger.Warn(fmt.Sprintf("resolution cache read failed for %q: %v", name, err))
		return domain.CacheMiss()
	}
	if entry == nil || !entry.Fresh(r.clock.Now(), r.ttl) {
		return domain.CacheMiss()
	}

	return entry.Outcome()
}

// writeCache persists a network resolution. A failed write only costs the
// next run a lookup, so it is logged and swallowed.
func (r *Resolver) writeCache(name string, outcome domain.Outcome) {
	entry := domain.NewCacheEntry(name, outcome, r.clock.Now())
	if err := r.cache.Put(domain.CacheKey(name), entry); err != nil {
		r.logger.Warn(fmt.Sprintf("resolution cache write failed for %q: %v", name, err))
	}
}
