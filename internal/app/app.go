// Package app implements the application layer for crossgrade.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/crossgrade/crossgrade/internal/adapters/cachestore"
	"github.com/crossgrade/crossgrade/internal/adapters/detector"
	"github.com/crossgrade/crossgrade/internal/adapters/inventory"
	"github.com/crossgrade/crossgrade/internal/adapters/linear"
	"github.com/crossgrade/crossgrade/internal/adapters/pacing"
	"github.com/crossgrade/crossgrade/internal/adapters/quiet"
	"github.com/crossgrade/crossgrade/internal/adapters/report"
	"github.com/crossgrade/crossgrade/internal/adapters/repology"
	"github.com/crossgrade/crossgrade/internal/adapters/telemetry"
	"github.com/crossgrade/crossgrade/internal/build"
	"github.com/crossgrade/crossgrade/internal/core/domain"
	"github.com/crossgrade/crossgrade/internal/core/ports"
	"github.com/crossgrade/crossgrade/internal/engine/resolve"
	"github.com/jonboulle/clockwork"
	"github.com/muesli/termenv"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger

	stdout    io.Writer
	transport http.RoundTripper
	clock     clockwork.Clock
	runner    inventory.CommandRunner
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, log ports.Logger) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		stdout:       os.Stdout,
		clock:        clockwork.NewRealClock(),
	}
}

// WithStdout redirects report and progress output.
// This is primarily used for testing to capture output.
func (a *App) WithStdout(w io.Writer) *App {
	a.stdout = w
	return a
}

// WithTransport overrides the lookup service HTTP transport.
// This is primarily used for testing against a mock round tripper.
func (a *App) WithTransport(rt http.RoundTripper) *App {
	a.transport = rt
	return a
}

// WithClock replaces the wall clock driving the pacer and cache TTLs.
// This is primarily used for testing so nothing sleeps for real.
func (a *App) WithClock(c clockwork.Clock) *App {
	a.clock = c
	return a
}

// WithCommandRunner overrides the host inventory exec runner.
// This is primarily used for testing without a package manager present.
func (a *App) WithCommandRunner(run inventory.CommandRunner) *App {
	a.runner = run
	return a
}

// ResolveOptions configuration for the Resolve method.
type ResolveOptions struct {
	// FromFile reads the inventory from a file instead of the host
	// package manager.
	FromFile string

	// Target overrides the configured default target distribution.
	Target string

	// Limit caps how many packages are resolved, zero meaning all.
	Limit int

	// Refresh clears the target's cached resolutions before resolving.
	Refresh bool

	// ReportPath writes the YAML report artifact when non-empty.
	ReportPath string

	// OutputMode selects the progress renderer: auto, linear or quiet.
	OutputMode string

	// CI forces the linear renderer without colors.
	CI bool
}

// Resolve runs the full batch: inventory, per-package resolution, report.
// A canceled run still prints the partial report before returning the error.
//
//nolint:cyclop // orchestration function
func (a *App) Resolve(ctx context.Context, opts ResolveOptions) error {
	// 1. Load configuration
	settings, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	// 2. Pick the target distribution
	target, err := settings.ResolveTarget(opts.Target)
	if err != nil {
		return err
	}

	// 3. Acquire the inventory
	names, err := a.inventoryProvider(settings, opts).Packages(ctx)
	if err != nil {
		return err
	}

	// 4. Open the target's resolution cache
	store, err := cachestore.New(domain.ResolutionsPath(settings.CacheDir, target.ID))
	if err != nil {
		return err
	}
	if opts.Refresh {
		if err := store.Clear(); err != nil {
			return err
		}
	}

	// 5. Lookup client behind the pacer
	pacer := pacing.New(settings.LookupMinInterval, a.clock)
	client := repology.New(repology.Config{
		BaseURL:   settings.LookupBaseURL,
		UserAgent: repology.UserAgent(build.Version, settings.LookupContact),
		Transport: a.transport,
	}, pacer, a.clock, a.logger)

	// 6. Initialize renderer and telemetry
	renderer, err := a.renderer(opts)
	if err != nil {
		return err
	}

	// The bridge forwards span lifecycle to the renderer; registering it as
	// the global provider is what connects otel.Tracer to it.
	bridge := telemetry.NewBridge(renderer)
	setupOTel(bridge)

	tracer := telemetry.NewOTelTracer("crossgrade").WithRenderer(renderer)
	defer func() {
		_ = tracer.Shutdown(ctx)
	}()

	// 7. Run renderer and driver concurrently
	resolver := resolve.NewResolver(target, store, client, a.logger, a.clock, settings.CacheTTL)
	driver := resolve.NewDriver(resolver, tracer, opts.Limit)

	rep, runErr := a.runBatch(ctx, driver, renderer, names, target.ID)

	if rep != nil {
		report.WriteTable(a.stdout, rep)
		if opts.ReportPath != "" {
			if err := report.WriteYAML(opts.ReportPath, rep); err != nil {
				return err
			}
		}
	}

	if runErr != nil {
		return errors.Join(domain.ErrResolutionFailed, runErr)
	}
	return nil
}

// runBatch drives the resolution loop with the renderer running alongside.
// The returned report is valid even when err is not nil.
func (a *App) runBatch(
	ctx context.Context,
	driver *resolve.Driver,
	renderer ports.Renderer,
	names []string,
	targetID string,
) (*domain.MappingReport, error) {
	g, ctx := errgroup.WithContext(ctx)

	var rep *domain.MappingReport

	// Renderer routine
	g.Go(func() error {
		if err := renderer.Start(); err != nil {
			return err
		}
		// Wait blocks until the renderer has terminated.
		return renderer.Wait()
	})

	// Driver routine
	g.Go(func() error {
		var runErr error
		defer func() {
			if r := recover(); r != nil {
				// Print panic info before renderer shutdown
				fmt.Fprintf(os.Stderr, "resolution panic: %v\n", r)
			}
			// Ensure the renderer stops when the driver finishes.
			_ = renderer.Stop()
		}()

		rep, runErr = driver.Run(ctx, names, targetID)
		return runErr
	})

	err := g.Wait()
	return rep, err
}

// inventoryProvider picks the package source: an explicit file or the host
// package manager of the source distribution.
func (a *App) inventoryProvider(settings *domain.Settings, opts ResolveOptions) ports.InventoryProvider {
	if opts.FromFile != "" {
		return inventory.NewFileProvider(opts.FromFile)
	}
	if a.runner != nil {
		return inventory.NewHostProviderWithRunner(settings.Source.Family, a.runner)
	}
	return inventory.NewHostProvider(settings.Source.Family)
}

// renderer picks the progress renderer for this run.
func (a *App) renderer(opts ResolveOptions) (ports.Renderer, error) {
	if opts.CI {
		return linear.NewRendererWithProfile(a.stdout, termenv.Ascii), nil
	}

	requested, err := detector.ParseMode(opts.OutputMode)
	if err != nil {
		return nil, err
	}

	if detector.ResolveMode(detector.DetectEnvironment(), requested) == detector.ModeLinear {
		return linear.NewRenderer(a.stdout), nil
	}
	return quiet.NewRenderer(), nil
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	// Target limits cleaning to one distribution's resolutions; empty
	// removes every target's.
	Target string
}

// Clean removes cached resolutions for one target or all of them.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	settings, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	path := domain.ResolutionsRoot(settings.CacheDir)
	label := "cached resolutions"
	if opts.Target != "" {
		target, err := settings.ResolveTarget(opts.Target)
		if err != nil {
			return err
		}
		path = domain.ResolutionsPath(settings.CacheDir, target.ID)
		label = fmt.Sprintf("cached resolutions for %s", target.ID)
	}

	a.logger.Info(fmt.Sprintf("removing %s...", label))
	if err := os.RemoveAll(path); err != nil {
		return zerr.Wrap(err, fmt.Sprintf("failed to remove %s", label))
	}
	a.logger.Info(fmt.Sprintf("removed %s", label))

	return nil
}

// setupOTel configures the OpenTelemetry SDK with the renderer bridge.
func setupOTel(bridge *telemetry.Bridge) {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(bridge),
	)
	otel.SetTracerProvider(tp)
}
