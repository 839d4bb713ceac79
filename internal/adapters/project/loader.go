package project

import "go.trai.ch/sniff/internal/core/ports"

// Loader implements ports.ProjectLoader.
type Loader struct {
	engine   ports.BuildEngine
	listener ports.Listener
}

// NewLoader creates a Loader whose projects build with engine and always report to listener.
func NewLoader(engine ports.BuildEngine, listener ports.Listener) *Loader {
	return &Loader{engine: engine, listener: listener}
}

// Load loads the project description at path.
func (l *Loader) Load(path string) (ports.Project, error) {
	p, err := Load(path, l.engine, WithListener(l.listener))
	if err != nil {
		return nil, err
	}
	return p, nil
}
