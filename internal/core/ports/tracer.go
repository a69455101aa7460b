package ports

import "context"

// Tracer abstracts progress instrumentation. The batch driver wraps every
// package resolution in a span; a span processor bridges span lifecycle to
// the active Renderer.
//
//go:generate mockgen -source=tracer.go -destination=mocks/mock_tracer.go -package=mocks
type Tracer interface {
	// Start creates a new span for one package resolution.
	Start(ctx context.Context, name string) (context.Context, Span)

	// EmitPlan announces the capped inventory before resolution starts.
	EmitPlan(names []string, target string)

	// Shutdown flushes and stops the tracer.
	Shutdown(ctx context.Context) error
}

// Span is one package resolution in flight.
type Span interface {
	// End completes the span.
	End()

	// RecordError records a failure and marks the span status.
	RecordError(err error)

	// SetAttribute adds a key-value pair to the span.
	SetAttribute(key string, value any)
}
