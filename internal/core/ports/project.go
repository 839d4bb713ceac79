package ports

import "context"

//go:generate mockgen -source=project.go -destination=mocks/mock_project.go -package=mocks

// Project is a loaded build description that can enumerate and build its targets.
type Project interface {
	// Path returns the file the project was loaded from.
	Path() string
	// IgnoreItems removes every element with one of the given tags.
	IgnoreItems(names ...string) Project
	// Targets returns the names of all named targets in document order.
	Targets() []string
	// Build builds a single target with the given listeners.
	Build(ctx context.Context, target string, listeners ...Listener) (bool, error)
}

// ProjectLoader loads build descriptions from disk.
type ProjectLoader interface {
	Load(path string) (Project, error)
}
