package ports

import "go.trai.ch/sniff/internal/core/domain"

// Renderer presents results on the console.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// RenderReport prints every target result with its items.
	RenderReport(report domain.Report) error
	// RenderTargets prints the target names of a project.
	RenderTargets(targets []string) error
}
