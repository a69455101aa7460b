package telemetry

import (
	"context"
	"errors"

	"github.com/crossgrade/crossgrade/internal/core/ports"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Span attribute keys the batch driver sets and the bridge forwards to the
// renderer.
const (
	AttrTarget = "crossgrade.target"
	AttrOrigin = "crossgrade.origin"
)

// Bridge implements sdktrace.SpanProcessor to bridge OTel spans to a Renderer.
type Bridge struct {
	renderer ports.Renderer
}

// NewBridge returns a new Bridge.
func NewBridge(renderer ports.Renderer) *Bridge {
	return &Bridge{
		renderer: renderer,
	}
}

// OnStart is called when a span starts. The span name is the package name.
func (b *Bridge) OnStart(_ context.Context, s sdktrace.ReadWriteSpan) {
	if b.renderer == nil {
		return
	}

	sc := s.SpanContext()
	if !sc.IsValid() {
		return
	}

	b.renderer.OnResolveStart(sc.SpanID().String(), s.Name(), s.StartTime())
}

// OnEnd is called when a span ends. The resolved target and its origin
// travel as span attributes; a failed span carries its status description.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.renderer == nil {
		return
	}

	sc := s.SpanContext()
	if !sc.IsValid() {
		return
	}

	var err error
	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "resolution failed"
		}
		err = errors.New(desc)
	}

	var target, origin string
	for _, attr := range s.Attributes() {
		switch string(attr.Key) {
		case AttrTarget:
			target = attr.Value.AsString()
		case AttrOrigin:
			origin = attr.Value.AsString()
		}
	}

	b.renderer.OnResolveComplete(sc.SpanID().String(), s.EndTime(), target, origin, err)
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}
