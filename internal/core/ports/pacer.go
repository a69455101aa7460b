package ports

import "context"

// Pacer throttles outbound lookups to a minimum interval. The first call
// returns immediately; later calls block until the interval since the
// previous permitted call has elapsed, or until the context is done.
//
//go:generate mockgen -source=pacer.go -destination=mocks/mock_pacer.go -package=mocks
type Pacer interface {
	// Wait blocks until the next lookup may proceed.
	Wait(ctx context.Context) error
}
