package project

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sniff/internal/adapters/logger"
	"go.trai.ch/sniff/internal/adapters/msbuild"
	"go.trai.ch/sniff/internal/core/ports"
)

// NodeID is the unique identifier for the project loader Graft node.
const NodeID graft.ID = "adapter.project_loader"

func init() {
	graft.Register(graft.Node[ports.ProjectLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{msbuild.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ProjectLoader, error) {
			engine, err := graft.Dep[ports.BuildEngine](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewLoader(engine, logger.NewEventListener(log)), nil
		},
	})
}
