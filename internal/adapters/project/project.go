// Package project implements the in-memory model of an MSBuild project description.
//
// A Project owns the XML tree loaded from disk, rewrites it so it can be built from a
// snapshot in isolation, and drives the build engine one invocation at a time. A Project is
// not safe for concurrent builds: task substitution mutates the shared tree.
package project

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/beevik/etree"
	"go.trai.ch/sniff/internal/core/domain"
	"go.trai.ch/sniff/internal/core/ports"
	"go.trai.ch/zerr"
)

// Project is a loaded, rewritable build description.
type Project struct {
	doc      *etree.Document
	path     string
	dir      string
	engine   ports.BuildEngine
	listener ports.Listener
}

// Option configures a Project.
type Option func(*Project)

// WithListener sets the listener prepended to every build.
func WithListener(l ports.Listener) Option {
	return func(p *Project) {
		p.listener = l
	}
}

// WithPath records the file the description was read from.
func WithPath(path string) Option {
	return func(p *Project) {
		p.path = path
	}
}

// Load reads the description at path and normalizes its imports against its directory.
func Load(path string, engine ports.BuildEngine, opts ...Option) (*Project, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrProjectLoadFailed.Error()), "path", path)
	}

	f, err := os.Open(abs) //nolint:gosec // user supplied project file
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrProjectLoadFailed.Error()), "path", path)
	}
	defer func() { _ = f.Close() }()

	opts = append([]Option{WithPath(abs)}, opts...)
	return Parse(f, filepath.Dir(abs), engine, opts...)
}

// Parse reads a description from r. Relative imports are anchored at dir.
func Parse(r io.Reader, dir string, engine ports.BuildEngine, opts ...Option) (*Project, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrProjectParseFailed.Error()), "dir", dir)
	}
	if doc.Root() == nil {
		return nil, zerr.With(domain.ErrProjectEmpty, "dir", dir)
	}

	p := &Project{
		doc:    doc,
		dir:    dir,
		engine: engine,
	}
	for _, opt := range opts {
		opt(p)
	}

	p.normalizeImports()
	return p, nil
}

// Path returns the file the project was loaded from, if any.
func (p *Project) Path() string {
	return p.path
}

// Dir returns the directory relative imports are anchored at.
func (p *Project) Dir() string {
	return p.dir
}

// Document exposes the underlying tree.
func (p *Project) Document() *etree.Document {
	return p.doc
}

// IgnoreItems removes every element, at any depth, whose tag is one of names.
func (p *Project) IgnoreItems(names ...string) ports.Project {
	for _, el := range p.elements(names...) {
		remove(el)
	}
	return p
}

// Targets returns the names of all targets carrying a non-empty Name, in document order.
func (p *Project) Targets() []string {
	var names []string
	for _, el := range p.elements(domain.TargetTag) {
		if name := el.SelectAttrValue(domain.NameAttr, ""); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// SwapTasks replaces every delegating MSBuild task with a Message task whose text is the
// delegated project list, so the projects it would build surface as engine messages.
// Swapped tasks no longer match, so calling it again changes nothing.
func (p *Project) SwapTasks() {
	for _, el := range p.elements(domain.DelegateTaskTag) {
		msg := etree.NewElement(domain.MessageTag)
		msg.Space = el.Space
		msg.CreateAttr(domain.TextAttr, el.SelectAttrValue(domain.DelegatePathAttr, ""))
		replace(el, msg)
	}
}

// Snapshot serializes the current tree.
func (p *Project) Snapshot() ([]byte, error) {
	data, err := p.doc.WriteToBytes()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrSnapshotFailed.Error())
	}
	return data, nil
}

// Build builds a single target.
func (p *Project) Build(ctx context.Context, target string, listeners ...ports.Listener) (bool, error) {
	return p.BuildTargets(ctx, []string{target}, listeners)
}

// BuildDefault builds the project's default targets.
func (p *Project) BuildDefault(ctx context.Context, listeners ...ports.Listener) (bool, error) {
	return p.BuildTargets(ctx, nil, listeners)
}

// BuildTargets swaps delegating tasks, snapshots the tree and hands it to the engine
// together with the default listener followed by listeners.
func (p *Project) BuildTargets(ctx context.Context, targets []string, listeners []ports.Listener) (bool, error) {
	p.SwapTasks()

	snapshot, err := p.Snapshot()
	if err != nil {
		return false, err
	}

	all := make([]ports.Listener, 0, len(listeners)+1)
	if p.listener != nil {
		all = append(all, p.listener)
	}
	all = append(all, listeners...)

	return p.engine.Build(ctx, ports.BuildRequest{
		Source:    bytes.NewReader(snapshot),
		Dir:       p.dir,
		Targets:   slices.Clone(targets),
		Listeners: all,
	})
}

func (p *Project) normalizeImports() {
	for _, el := range p.elements(domain.ImportTag) {
		attr := el.SelectAttr(domain.ProjectAttr)
		if attr == nil || attr.Value == "" || isAbsoluteImport(attr.Value) {
			continue
		}
		attr.Value = joinImport(p.dir, attr.Value)
	}
}

func (p *Project) elements(tags ...string) []*etree.Element {
	return descendants(p.doc.Root(), tags...)
}

var _ ports.Project = (*Project)(nil)
