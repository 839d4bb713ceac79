// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/sniff/internal/core/domain"
)

// BuildRequest describes one isolated build invocation.
type BuildRequest struct {
	// Source is a point-in-time reader over the project description.
	Source io.Reader
	// Dir is the directory the project description originated from.
	Dir string
	// Targets are the targets to build. Empty means the project's default targets.
	Targets []string
	// Listeners receive every message the engine raises during the build.
	Listeners []Listener
}

// BuildEngine defines the interface for the external build engine.
//
//go:generate mockgen -source=engine.go -destination=mocks/mock_engine.go -package=mocks
type BuildEngine interface {
	// Build runs the requested targets and reports whether the build succeeded.
	// A non-nil error means the engine could not be invoked at all.
	Build(ctx context.Context, req BuildRequest) (bool, error)

	// Configure replaces the invocation settings used by subsequent builds.
	Configure(cfg domain.EngineConfig)
}
