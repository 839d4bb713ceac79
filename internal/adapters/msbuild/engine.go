// Package msbuild runs project snapshots through an MSBuild-compatible engine.
package msbuild

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/sniff/internal/core/domain"
	"go.trai.ch/sniff/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// consoleLoggerParameters keep the console log free of decoration the parser would trip on.
const consoleLoggerParameters = "-clp:NoSummary;ForceNoAlign;DisableConsoleColor"

// defaultWaitDelay is how long Build keeps reading output after the engine exits or is
// cancelled.
const defaultWaitDelay = time.Second

// Engine implements ports.BuildEngine by spawning the configured engine command.
type Engine struct {
	mu        sync.RWMutex
	cfg       domain.EngineConfig
	logger    ports.Logger
	environ   func() []string
	waitDelay time.Duration
}

// New creates an Engine using the default engine configuration.
func New(logger ports.Logger) *Engine {
	return &Engine{
		cfg:       domain.DefaultConfig().Engine,
		logger:    logger,
		environ:   os.Environ,
		waitDelay: defaultWaitDelay,
	}
}

// Configure implements ports.BuildEngine.
func (e *Engine) Configure(cfg domain.EngineConfig) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cfg = cfg
}

func (e *Engine) config() domain.EngineConfig {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cfg
}

// Build writes the request's snapshot next to the original project, runs the engine on
// it and forwards every console message to the request's listeners. The snapshot is
// removed before Build returns.
func (e *Engine) Build(ctx context.Context, req ports.BuildRequest) (bool, error) {
	cfg := e.config()
	if len(cfg.Command) == 0 {
		return false, domain.ErrEngineNotFound
	}

	data, err := io.ReadAll(req.Source)
	if err != nil {
		return false, zerr.Wrap(err, domain.ErrSnapshotFailed.Error())
	}

	dir := req.Dir
	if dir == "" {
		dir = "."
	}
	file := snapshotName(data, req.Targets)
	path := filepath.Join(dir, file)
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil { //nolint:gosec // snapshot must be readable by the engine
		return false, zerr.With(zerr.Wrap(err, domain.ErrSnapshotWriteFailed.Error()), "path", path)
	}
	defer func() { _ = os.Remove(path) }()

	return e.run(ctx, cfg, dir, file, req)
}

func (e *Engine) run(ctx context.Context, cfg domain.EngineConfig, dir, file string, req ports.BuildRequest) (bool, error) {
	env := resolveEnvironment(e.environ(), cfg.Env)

	name := cfg.Command[0]
	executable := name
	if !filepath.IsAbs(name) {
		if lp, err := lookPath(name, env); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, arguments(cfg, file, req.Targets)...) //nolint:gosec // user configured engine
	cmd.Args[0] = name
	cmd.Dir = dir
	cmd.Env = env

	// WaitDelay only bounds the output copy for non-file writers, so the parsers read
	// from in-process pipes.
	stdoutR, stdoutW := io.Pipe()
	stderrR, stderrW := io.Pipe()
	cmd.Stdout = stdoutW
	cmd.Stderr = stderrW
	cmd.WaitDelay = e.waitDelay

	e.logger.Debug("running " + strings.Join(cmd.Args, " "))
	if err := cmd.Start(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return false, ctxErr
		}
		return false, zerr.With(zerr.Wrap(err, domain.ErrEngineStartFailed.Error()), "command", name)
	}

	var g errgroup.Group
	g.Go(func() error { return newConsoleParser(req.Listeners, file).parse(stdoutR) })
	g.Go(func() error { return newConsoleParser(req.Listeners, file).parse(stderrR) })
	waitErr := cmd.Wait()
	_ = stdoutW.Close()
	_ = stderrW.Close()
	pumpErr := g.Wait()

	if ctxErr := ctx.Err(); ctxErr != nil {
		return false, ctxErr
	}
	if pumpErr != nil {
		return false, zerr.Wrap(pumpErr, domain.ErrEngineOutputFailed.Error())
	}
	if errors.Is(waitErr, exec.ErrWaitDelay) {
		e.logger.Debug(fmt.Sprintf("engine output still open %s after exit, stopped reading", e.waitDelay))
		return true, nil
	}
	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			e.logger.Debug(fmt.Sprintf("engine exited with code %d", exitErr.ExitCode()))
			return false, nil
		}
		return false, zerr.Wrap(waitErr, domain.ErrEngineOutputFailed.Error())
	}
	return true, nil
}

// arguments returns the engine arguments following the executable.
func arguments(cfg domain.EngineConfig, file string, targets []string) []string {
	verbosity := cfg.Verbosity
	if verbosity == "" {
		verbosity = domain.DefaultVerbosity
	}

	args := slices.Clone(cfg.Command[1:])
	args = append(args, file, "-nologo", "-nr:false", "-v:"+verbosity, consoleLoggerParameters)
	if len(targets) > 0 {
		args = append(args, "-t:"+strings.Join(targets, ";"))
	}
	return append(args, cfg.Args...)
}

// snapshotName derives a hidden file name from the snapshot content and targets.
func snapshotName(data []byte, targets []string) string {
	d := xxhash.New()
	_, _ = d.Write(data)
	_, _ = d.WriteString(strings.Join(targets, ";"))
	return fmt.Sprintf(".%016x%s", d.Sum64(), domain.SnapshotSuffix)
}

var _ ports.BuildEngine = (*Engine)(nil)
