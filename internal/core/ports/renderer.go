package ports

import "time"

// Renderer is the abstraction for progress output. It decouples the batch
// driver's event stream from presentation, so the same run can feed a
// line-oriented terminal view or be discarded entirely.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Start initializes the renderer and begins its lifecycle.
	Start() error

	// Stop signals the renderer that no more events will arrive.
	// It should flush any buffered output.
	Stop() error

	// Wait blocks until the renderer has fully terminated.
	Wait() error

	// OnPlanEmit is called once before resolution starts.
	// names: the capped inventory in processing order
	// target: the target distribution ID
	OnPlanEmit(names []string, target string)

	// OnResolveStart is called when one package begins resolving.
	// spanID: unique identifier for this resolution
	OnResolveStart(spanID, name string, startTime time.Time)

	// OnResolveComplete is called when one package finishes.
	// target: resolved target name, empty when not found
	// origin: "cache" or "network", empty on error
	// err: nil unless the resolution aborted
	OnResolveComplete(spanID string, endTime time.Time, target, origin string, err error)
}
