// Package domain holds the core types shared by every layer of sniff.
package domain

import "go.trai.ch/zerr"

var (
	// ErrNoProjectSpecified is returned when no project description path was given.
	ErrNoProjectSpecified = zerr.New("no project file specified")

	// ErrProjectLoadFailed is returned when the project description cannot be read.
	ErrProjectLoadFailed = zerr.New("failed to load project file")

	// ErrProjectParseFailed is returned when the project description is not well-formed XML.
	ErrProjectParseFailed = zerr.New("failed to parse project file")

	// ErrProjectEmpty is returned when the project description has no root element.
	ErrProjectEmpty = zerr.New("project file has no root element")

	// ErrSnapshotFailed is returned when the project tree cannot be serialized for a build.
	ErrSnapshotFailed = zerr.New("failed to snapshot project")

	// ErrEngineNotFound is returned when no engine command is configured.
	ErrEngineNotFound = zerr.New("build engine command not configured")

	// ErrEngineStartFailed is returned when the build engine process cannot be started.
	ErrEngineStartFailed = zerr.New("failed to start build engine")

	// ErrEngineOutputFailed is returned when reading the engine output fails.
	ErrEngineOutputFailed = zerr.New("failed to read build engine output")

	// ErrSnapshotWriteFailed is returned when the snapshot cannot be written for the engine.
	ErrSnapshotWriteFailed = zerr.New("failed to write project snapshot")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrReportCreateFailed is returned when the report directory cannot be created.
	ErrReportCreateFailed = zerr.New("failed to create report directory")

	// ErrReportMarshalFailed is returned when the report cannot be marshaled.
	ErrReportMarshalFailed = zerr.New("failed to marshal report")

	// ErrReportWriteFailed is returned when the report cannot be written.
	ErrReportWriteFailed = zerr.New("failed to write report")

	// ErrTraceSetupFailed is returned when the trace output cannot be opened.
	ErrTraceSetupFailed = zerr.New("failed to set up tracing")
)
