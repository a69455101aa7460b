package resolve

import (
	"context"

	"github.com/crossgrade/crossgrade/internal/core/domain"
	"github.com/crossgrade/crossgrade/internal/core/ports"
)

// Driver runs a whole inventory through the resolver, strictly one package
// at a time in input order. Sequential processing plus the pacer is the
// service-friendliness contract; there is deliberately no worker pool here.
type Driver struct {
	resolver ports.PackageResolver
	tracer   ports.Tracer
	limit    int
}

// NewDriver creates a Driver. limit caps how much of the inventory is
// resolved, zero meaning all of it.
func NewDriver(resolver ports.PackageResolver, tracer ports.Tracer, limit int) *Driver {
	return &Driver{resolver: resolver, tracer: tracer, limit: limit}
}

// Run resolves the inventory against the target and returns the mapping
// report. On cancellation the report built so far comes back marked partial,
// together with the context error; completed results are never discarded.
func (d *Driver) Run(ctx context.Context, names []string, target string) (*domain.MappingReport, error) {
	if d.limit > 0 && len(names) > d.limit {
		names = names[:d.limit]
	}

	report := domain.NewMappingReport(target, names)
	d.tracer.EmitPlan(names, target)

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			report.Partial = true
			return report, err
		}

		outcome, err := d.resolveOne(ctx, name)
		if err != nil {
			report.Partial = true
			return report, err
		}

		report.Add(name, outcome)
	}

	return report, nil
}

// resolveOne wraps a single resolution in a span. The span ends before the
// result is recorded so renderer events stay ordered.
func (d *Driver) resolveOne(ctx context.Context, name string) (domain.Outcome, error) {
	ctx, span := d.tracer.Start(ctx, name)
	defer span.End()

	outcome, err := d.resolver.Resolve(ctx, name)
	if err != nil {
		span.RecordError(err)
		return domain.Outcome{}, err
	}

	span.SetAttribute("crossgrade.origin", string(outcome.Origin))
	if outcome.Found() {
		span.SetAttribute("crossgrade.target", outcome.Target)
	}

	return outcome, nil
}
