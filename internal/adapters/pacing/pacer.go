// Package pacing throttles outbound lookups to a minimum interval, keeping
// the tool a polite client of the shared lookup service.
package pacing

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/time/rate"
)

// Pacer implements ports.Pacer on a token bucket with burst 1: the first
// call proceeds immediately, every later call is spaced at least one
// interval from the previous permitted one. The clock is injected so tests
// never sleep for real.
type Pacer struct {
	limiter *rate.Limiter
	clock   clockwork.Clock
}

// New creates a Pacer enforcing the given minimum interval between calls.
func New(interval time.Duration, clock clockwork.Clock) *Pacer {
	return &Pacer{
		limiter: rate.NewLimiter(rate.Every(interval), 1),
		clock:   clock,
	}
}

// Wait blocks until the next lookup may proceed or ctx is done. A canceled
// wait returns its reservation so the next caller is not penalized.
func (p *Pacer) Wait(ctx context.Context) error {
	now := p.clock.Now()
	reservation := p.limiter.ReserveN(now, 1)
	delay := reservation.DelayFrom(now)
	if delay == 0 {
		return nil
	}

	select {
	case <-p.clock.After(delay):
		return nil
	case <-ctx.Done():
		reservation.CancelAt(p.clock.Now())
		return ctx.Err()
	}
}
