package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tlenv/internal/adapters/host"
	"go.trai.ch/tlenv/internal/adapters/logger"
	"go.trai.ch/tlenv/internal/core/ports"
)

// NodeID is the unique identifier for the runner node.
const NodeID graft.ID = "adapter.runner"

func init() {
	graft.Register(graft.Node[ports.Runner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{host.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Runner, error) {
			h, err := graft.Dep[ports.Host](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(h, log), nil
		},
	})
}
