package ports

import (
	"context"

	"github.com/crossgrade/crossgrade/internal/core/domain"
)

// PackageResolver resolves a single source package name to its target
// distribution equivalent. The returned outcome is always Found or NotFound;
// errors are reserved for context cancellation.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type PackageResolver interface {
	// Resolve maps one package name, consulting the cache before the network.
	Resolve(ctx context.Context, name string) (domain.Outcome, error)
}
