// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/sniff/internal/adapters/capture"
	_ "go.trai.ch/sniff/internal/adapters/config"
	_ "go.trai.ch/sniff/internal/adapters/linear"
	_ "go.trai.ch/sniff/internal/adapters/logger"
	_ "go.trai.ch/sniff/internal/adapters/msbuild"
	_ "go.trai.ch/sniff/internal/adapters/project"
	_ "go.trai.ch/sniff/internal/adapters/report"
	// Register app nodes.
	_ "go.trai.ch/sniff/internal/app"
)
