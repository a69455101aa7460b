// Package linear provides a synchronous, line-per-package progress renderer
// for terminals and CI environments.
package linear

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/muesli/termenv"
)

// Renderer implements ports.Renderer with one chronological line per
// resolved package.
type Renderer struct {
	stdout io.Writer
	output *termenv.Output

	mu    sync.Mutex
	names map[string]string // spanID -> package name
	total int
	done  int
}

// NewRenderer creates a new Renderer writing to stdout.
func NewRenderer(stdout io.Writer) *Renderer {
	return NewRendererWithProfile(stdout, colorProfile())
}

// NewRendererWithProfile creates a Renderer with a fixed color profile,
// bypassing environment detection. The ci flag uses it to keep pipeline
// logs free of escape codes.
func NewRendererWithProfile(stdout io.Writer, profile termenv.Profile) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}

	return &Renderer{
		stdout: stdout,
		output: termenv.NewOutput(stdout, termenv.WithProfile(profile)),
		names:  make(map[string]string),
	}
}

// colorProfile returns the color profile based on environment.
func colorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	// ANSI for basic color support in CI logs
	return termenv.ANSI
}

// Start is a no-op; the renderer is synchronous.
func (r *Renderer) Start() error {
	return nil
}

// Stop is a no-op; lines are flushed as they are printed.
func (r *Renderer) Stop() error {
	return nil
}

// Wait is a no-op; the renderer is synchronous.
func (r *Renderer) Wait() error {
	return nil
}

// OnPlanEmit prints the run header.
func (r *Renderer) OnPlanEmit(names []string, target string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.total = len(names)
	_, _ = fmt.Fprintf(r.stdout, "Resolving %d package(s) for target %s\n", len(names), target)
}

// OnResolveStart records the package for the span. Output waits for the
// completion event so every package stays on a single line.
func (r *Renderer) OnResolveStart(spanID, name string, _ time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.names[spanID] = name
}

// OnResolveComplete prints the outcome line for the span's package.
func (r *Renderer) OnResolveComplete(spanID string, _ time.Time, target, origin string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name, ok := r.names[spanID]
	if !ok {
		return
	}
	delete(r.names, spanID)

	r.done++
	prefix := r.output.String(fmt.Sprintf("[%d/%d]", r.done, r.total)).Faint().String()

	switch {
	case err != nil:
		symbol := r.output.String("✗").Foreground(termenv.ANSIRed).String()
		_, _ = fmt.Fprintf(r.stdout, "%s %s %s %v\n", prefix, name, symbol, err)
	case target == "":
		symbol := r.output.String("∅").Foreground(termenv.ANSIYellow).String()
		_, _ = fmt.Fprintf(r.stdout, "%s %s %s not found\n", prefix, name, symbol)
	default:
		symbol := r.output.String("✓").Foreground(termenv.ANSIGreen).String()
		_, _ = fmt.Fprintf(r.stdout, "%s %s %s %s (%s)\n", prefix, name, symbol, target, origin)
	}
}
