// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"github.com/crossgrade/crossgrade/internal/core/domain"
)

// LookupService defines the interface to the package metadata service.
// Implementations own retries, pacing and response extraction; a lookup that
// fails after all attempts yields an empty candidate list, not an error. The
// only errors returned are context cancellation and deadline expiry.
//
//go:generate mockgen -source=lookup.go -destination=mocks/mock_lookup.go -package=mocks
type LookupService interface {
	// SearchExact queries the service for projects matching the package name
	// exactly, returning candidates in response order.
	SearchExact(ctx context.Context, name string) ([]domain.Candidate, error)

	// FetchProject retrieves the package records of a single project by ID,
	// returning candidates in response order.
	FetchProject(ctx context.Context, id string) ([]domain.Candidate, error)
}
