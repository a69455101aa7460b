package domain

import (
	"slices"
	"strings"
	"time"

	"go.trai.ch/zerr"
)

const (
	// DefaultCacheTTL is how long a cached resolution stays fresh.
	DefaultCacheTTL = 24 * time.Hour

	// DefaultLookupBaseURL is the public instance of the lookup service.
	DefaultLookupBaseURL = "https://repology.org"

	// DefaultLookupMinInterval is the floor between consecutive lookups.
	DefaultLookupMinInterval = time.Second
)

// Settings is the validated runtime configuration. The config adapter builds
// it from file, defaults and the built-in distribution table; nothing else
// touches raw configuration.
type Settings struct {
	// Source is the distribution the machine currently runs. Zero when the
	// configuration does not name one; only the host inventory needs it.
	Source Distro

	// Targets is the effective distribution table, builtins merged with
	// configured overrides.
	Targets map[string]Distro

	// DefaultTarget is the configured target ID, overridable per run.
	DefaultTarget string

	CacheDir string
	CacheTTL time.Duration

	LookupBaseURL     string
	LookupMinInterval time.Duration
	LookupContact     string
}

// ResolveTarget returns the distro for an explicit ID, falling back to the
// configured default when id is empty.
func (s *Settings) ResolveTarget(id string) (Distro, error) {
	if id == "" {
		id = s.DefaultTarget
	}
	if id == "" {
		return Distro{}, ErrNoTargetConfigured
	}
	d, ok := s.Targets[id]
	if !ok {
		err := zerr.With(ErrUnknownTarget, "target", id)
		return Distro{}, zerr.With(err, "known", strings.Join(s.TargetIDs(), ", "))
	}
	return d, nil
}

// TargetIDs lists the distribution table's IDs in sorted order.
func (s *Settings) TargetIDs() []string {
	ids := make([]string, 0, len(s.Targets))
	for id := range s.Targets {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
