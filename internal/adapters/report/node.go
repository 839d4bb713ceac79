package report

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sniff/internal/core/ports"
)

// NodeID is the unique identifier for the report writer Graft node.
const NodeID graft.ID = "adapter.report"

func init() {
	graft.Register(graft.Node[ports.ReportWriter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.ReportWriter, error) {
			return NewStore(), nil
		},
	})
}
