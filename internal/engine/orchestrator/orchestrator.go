// Package orchestrator builds every target of a project in isolation and gathers the
// items each one reports.
package orchestrator

import (
	"context"
	"slices"

	"go.trai.ch/sniff/internal/core/domain"
	"go.trai.ch/sniff/internal/core/ports"
	"go.trai.ch/zerr"
)

// Orchestrator drives one isolated build per target.
type Orchestrator struct {
	factory ports.CollectorFactory
	tracer  ports.Tracer
	logger  ports.Logger
}

// New creates an Orchestrator.
func New(factory ports.CollectorFactory, tracer ports.Tracer, logger ports.Logger) *Orchestrator {
	return &Orchestrator{
		factory: factory,
		tracer:  tracer,
		logger:  logger,
	}
}

// BuildAll builds each named target of project on its own, in document order, with a
// fresh collector per build. Targets whose build fails, errors or reports no items are
// left out. Cancellation of ctx stops the run; the results gathered so far are returned
// alongside ctx's error.
func (o *Orchestrator) BuildAll(ctx context.Context, project ports.Project) ([]domain.TargetResult, error) {
	targets := project.Targets()
	o.tracer.EmitPlan(ctx, targets)

	var results []domain.TargetResult
	for _, target := range targets {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		result, ok, err := o.buildTarget(ctx, project, target)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return results, ctxErr
			}
			o.logger.Warn("skipping target " + target + ": " + err.Error())
			continue
		}
		if ok {
			results = append(results, result)
		}
	}
	return results, nil
}

func (o *Orchestrator) buildTarget(
	ctx context.Context,
	project ports.Project,
	target string,
) (domain.TargetResult, bool, error) {
	ctx, span := o.tracer.Start(ctx, target, ports.WithAttribute("target", target))
	defer span.End()

	o.logger.Debug("building target " + target)

	collector := o.factory.NewCollector()
	ok, err := project.Build(ctx, target, collector)
	span.SetAttribute("success", ok)
	if err != nil {
		span.RecordError(err)
		return domain.TargetResult{}, false, zerr.With(err, "target", target)
	}

	if !ok {
		span.SetAttribute("items", 0)
		o.logger.Debug("target " + target + " failed, skipping")
		return domain.TargetResult{}, false, nil
	}

	items := slices.Collect(collector.ItemsBuilt())
	span.SetAttribute("items", len(items))
	if len(items) == 0 {
		o.logger.Debug("target " + target + " built nothing, skipping")
		return domain.TargetResult{}, false, nil
	}

	return domain.TargetResult{Name: target, Items: items}, true, nil
}
