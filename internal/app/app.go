// Package app implements the application layer for sniff.
package app

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/sniff/internal/adapters/telemetry"
	"go.trai.ch/sniff/internal/core/domain"
	"go.trai.ch/sniff/internal/core/ports"
	"go.trai.ch/sniff/internal/engine/orchestrator"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	projects     ports.ProjectLoader
	engine       ports.BuildEngine
	factory      ports.CollectorFactory
	renderer     ports.Renderer
	reports      ports.ReportWriter
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	configLoader ports.ConfigLoader,
	projects ports.ProjectLoader,
	engine ports.BuildEngine,
	factory ports.CollectorFactory,
	renderer ports.Renderer,
	reports ports.ReportWriter,
	log ports.Logger,
) *App {
	return &App{
		configLoader: configLoader,
		projects:     projects,
		engine:       engine,
		factory:      factory,
		renderer:     renderer,
		reports:      reports,
		logger:       log,
	}
}

// RunOptions configuration for the Run method. Set fields override sniff.yaml.
type RunOptions struct {
	// Ignore lists extra element tags to prune.
	Ignore []string
	// NoDefaultIgnores drops the configured ignore list, keeping only Ignore.
	NoDefaultIgnores bool
	// Report is the path of the JSON report to write.
	Report string
	// Engine replaces the engine command, split on whitespace.
	Engine string
	// Verbose enables debug logging, including every engine message.
	Verbose bool
	// JSON switches log output to JSON lines.
	JSON bool
	// Trace is the path of a JSON-lines span trace to write.
	Trace string
}

// verbosityController is implemented by loggers whose level and format can change at runtime.
type verbosityController interface {
	SetVerbose(enable bool)
	SetJSON(enable bool)
}

// Run builds every named target of the project at path in isolation and renders the
// items each one built.
func (a *App) Run(ctx context.Context, path string, opts RunOptions) error {
	if path == "" {
		return domain.ErrNoProjectSpecified
	}
	a.configureLogger(opts)

	cfg, err := a.configLoader.Load(filepath.Dir(path))
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	applyOptions(cfg, opts)
	a.engine.Configure(cfg.Engine)

	project, err := a.projects.Load(path)
	if err != nil {
		return err
	}
	project.IgnoreItems(cfg.Ignore...)

	traceOut, closeTrace, err := openTrace(opts.Trace)
	if err != nil {
		return err
	}
	defer closeTrace()

	tp := telemetry.Setup(a.logger, traceOut)
	defer func() {
		_ = tp.Shutdown(context.WithoutCancel(ctx))
	}()
	tracer := telemetry.NewOTelTracer("sniff")

	ctx, span := tracer.Start(ctx, "sniff", ports.WithAttribute("project", project.Path()))
	results, err := orchestrator.New(a.factory, tracer, a.logger).BuildAll(ctx, project)
	if err != nil {
		span.RecordError(err)
	}
	span.End()
	if err != nil {
		return err
	}

	report := domain.Report{Project: project.Path(), Targets: results}
	if err := a.renderer.RenderReport(report); err != nil {
		return err
	}

	if cfg.Report != "" {
		if err := a.reports.Write(cfg.Report, report); err != nil {
			return err
		}
		a.logger.Info("report written to " + cfg.Report)
	}
	return nil
}

// Targets lists the named targets of the project at path without building anything.
func (a *App) Targets(_ context.Context, path string) ([]string, error) {
	if path == "" {
		return nil, domain.ErrNoProjectSpecified
	}

	project, err := a.projects.Load(path)
	if err != nil {
		return nil, err
	}

	targets := project.Targets()
	if err := a.renderer.RenderTargets(targets); err != nil {
		return nil, err
	}
	return targets, nil
}

func (a *App) configureLogger(opts RunOptions) {
	if c, ok := a.logger.(verbosityController); ok {
		c.SetVerbose(opts.Verbose)
		c.SetJSON(opts.JSON)
	}
}

func applyOptions(cfg *domain.Config, opts RunOptions) {
	if opts.NoDefaultIgnores {
		cfg.Ignore = nil
	}
	cfg.Ignore = append(slices.Clone(cfg.Ignore), opts.Ignore...)

	if fields := strings.Fields(opts.Engine); len(fields) > 0 {
		cfg.Engine.Command = fields
	}
	if opts.Report != "" {
		cfg.Report = opts.Report
	}
}

// openTrace creates the trace file at path. An empty path disables tracing output.
func openTrace(path string) (io.Writer, func(), error) {
	if path == "" {
		return nil, func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return nil, nil, zerr.With(zerr.Wrap(err, domain.ErrTraceSetupFailed.Error()), "path", path)
	}
	//nolint:gosec // path is supplied by the user
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, zerr.With(zerr.Wrap(err, domain.ErrTraceSetupFailed.Error()), "path", path)
	}
	return f, func() { _ = f.Close() }, nil
}
