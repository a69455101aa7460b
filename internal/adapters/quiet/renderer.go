// Package quiet provides a renderer that discards progress events.
package quiet

import "time"

// Renderer implements ports.Renderer by ignoring every event. It serves
// quiet output mode, where only log lines and the final report appear.
type Renderer struct{}

// NewRenderer creates a new no-op Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Start is a no-op.
func (r *Renderer) Start() error {
	return nil
}

// Stop is a no-op.
func (r *Renderer) Stop() error {
	return nil
}

// Wait is a no-op.
func (r *Renderer) Wait() error {
	return nil
}

// OnPlanEmit discards the plan.
func (r *Renderer) OnPlanEmit(_ []string, _ string) {}

// OnResolveStart discards the event.
func (r *Renderer) OnResolveStart(_, _ string, _ time.Time) {}

// OnResolveComplete discards the event.
func (r *Renderer) OnResolveComplete(_ string, _ time.Time, _, _ string, _ error) {}
