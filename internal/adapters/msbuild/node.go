package msbuild

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sniff/internal/adapters/logger"
	"go.trai.ch/sniff/internal/core/ports"
)

// NodeID is the unique identifier for the build engine Graft node.
const NodeID graft.ID = "adapter.engine"

func init() {
	graft.Register(graft.Node[ports.BuildEngine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.BuildEngine, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(log), nil
		},
	})
}
