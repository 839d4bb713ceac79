package capture

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sniff/internal/core/ports"
)

// NodeID is the unique identifier for the collector factory Graft node.
const NodeID graft.ID = "adapter.capture"

func init() {
	graft.Register(graft.Node[ports.CollectorFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.CollectorFactory, error) {
			return NewFactory(), nil
		},
	})
}
