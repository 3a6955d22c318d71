package tlmgr

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tlenv/internal/adapters/host"
	"go.trai.ch/tlenv/internal/adapters/shell"
	"go.trai.ch/tlenv/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the tlmgr client node.
	NodeID graft.ID = "adapter.tlmgr"
	// MetadataNodeID exposes the client as ports.MetadataQuery.
	MetadataNodeID graft.ID = "adapter.tlmgr.metadata"
	// InstallerNodeID exposes the client as ports.Installer.
	InstallerNodeID graft.ID = "adapter.tlmgr.installer"
	// DistInfoNodeID exposes the client as ports.DistInfo.
	DistInfoNodeID graft.ID = "adapter.tlmgr.distinfo"
)

func init() {
	graft.Register(graft.Node[*Client]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{host.NodeID, shell.NodeID},
		Run: func(ctx context.Context) (*Client, error) {
			h, err := graft.Dep[ports.Host](ctx)
			if err != nil {
				return nil, err
			}
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}
			return NewClient(h, runner), nil
		},
	})

	graft.Register(graft.Node[ports.MetadataQuery]{
		ID:        MetadataNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (ports.MetadataQuery, error) {
			return graft.Dep[*Client](ctx)
		},
	})

	graft.Register(graft.Node[ports.Installer]{
		ID:        InstallerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (ports.Installer, error) {
			return graft.Dep[*Client](ctx)
		},
	})

	graft.Register(graft.Node[ports.DistInfo]{
		ID:        DistInfoNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (ports.DistInfo, error) {
			return graft.Dep[*Client](ctx)
		},
	})
}
