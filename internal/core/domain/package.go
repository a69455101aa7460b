// Package domain contains the core types of the package name resolution
// engine: cache keys and entries, lookup candidates, resolution outcomes and
// the distribution table they are selected against.
package domain

import "regexp"

var cacheKeyUnsafe = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// CacheKey maps a package name to the file stem its cached resolution is
// stored under. Every character outside [A-Za-z0-9._-] becomes an underscore,
// so cache files stay greppable at the cost of possible collisions between
// exotic names (g++ and g-- share a key). Idempotent.
func CacheKey(name string) string {
	return cacheKeyUnsafe.ReplaceAllString(name, "_")
}

// Candidate is one (repository, package name) pair extracted from a lookup
// service response. Order within a response is meaningful and preserved.
type Candidate struct {
	Repo string
	Name string
}

// Origin says where a resolution came from.
type Origin string

const (
	// OriginCache marks outcomes served from the resolution cache.
	OriginCache Origin = "cache"

	// OriginNetwork marks outcomes resolved against the lookup service.
	OriginNetwork Origin = "network"
)

// OutcomeKind is the tag of an Outcome.
type OutcomeKind string

const (
	// OutcomeFound means the package resolved to a target name.
	OutcomeFound OutcomeKind = "found"

	// OutcomeNotFound means the target distribution has no matching package.
	OutcomeNotFound OutcomeKind = "not-found"

	// OutcomeMiss means the cache had no usable entry. Never returned by a
	// full resolution, only by cache probes.
	OutcomeMiss OutcomeKind = "miss"
)

// Outcome is the tagged result of resolving a package name. Target is set
// only when Kind is OutcomeFound.
type Outcome struct {
	Kind   OutcomeKind
	Target string
	Origin Origin
}

// FoundIn builds a successful outcome.
func FoundIn(target string, origin Origin) Outcome {
	return Outcome{Kind: OutcomeFound, Target: target, Origin: origin}
}

// NotFoundFrom builds a confirmed-absence outcome.
func NotFoundFrom(origin Origin) Outcome {
	return Outcome{Kind: OutcomeNotFound, Origin: origin}
}

// CacheMiss builds the probe result for an absent, stale or unreadable entry.
func CacheMiss() Outcome {
	return Outcome{Kind: OutcomeMiss, Origin: OriginCache}
}

// Hit reports whether the outcome carries a usable resolution.
func (o Outcome) Hit() bool {
	return o.Kind != OutcomeMiss
}

// Found reports whether the package resolved to a target name.
func (o Outcome) Found() bool {
	return o.Kind == OutcomeFound
}
