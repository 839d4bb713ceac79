package msbuild

import (
	"io"
	"time"

	"go.trai.ch/sniff/internal/core/ports"
)

var (
	ResolveEnvironment = resolveEnvironment
	Arguments          = arguments
	SnapshotName       = snapshotName
)

func ParseConsole(r io.Reader, listeners ...ports.Listener) error {
	return newConsoleParser(listeners, "").parse(r)
}

func ParseConsoleHiding(r io.Reader, snapshot string, listeners ...ports.Listener) error {
	return newConsoleParser(listeners, snapshot).parse(r)
}

func (e *Engine) SetWaitDelay(d time.Duration) {
	e.waitDelay = d
}

func (e *Engine) SetEnviron(environ func() []string) {
	e.environ = environ
}
