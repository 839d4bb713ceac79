package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sniff/internal/adapters/capture"
	"go.trai.ch/sniff/internal/adapters/config"
	"go.trai.ch/sniff/internal/adapters/linear"
	"go.trai.ch/sniff/internal/adapters/logger"
	"go.trai.ch/sniff/internal/adapters/msbuild"
	"go.trai.ch/sniff/internal/adapters/project"
	"go.trai.ch/sniff/internal/adapters/report"
	"go.trai.ch/sniff/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			project.NodeID,
			msbuild.NodeID,
			capture.NodeID,
			linear.NodeID,
			report.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	configLoader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	projects, err := graft.Dep[ports.ProjectLoader](ctx)
	if err != nil {
		return nil, err
	}

	engine, err := graft.Dep[ports.BuildEngine](ctx)
	if err != nil {
		return nil, err
	}

	factory, err := graft.Dep[ports.CollectorFactory](ctx)
	if err != nil {
		return nil, err
	}

	renderer, err := graft.Dep[ports.Renderer](ctx)
	if err != nil {
		return nil, err
	}

	reports, err := graft.Dep[ports.ReportWriter](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(configLoader, projects, engine, factory, renderer, reports, log), nil
}
