package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tlenv/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/tlenv/internal/adapters/host"   //nolint:depguard // Wired in app layer
	"go.trai.ch/tlenv/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/tlenv/internal/adapters/shell"  //nolint:depguard // Wired in app layer
	"go.trai.ch/tlenv/internal/adapters/tlmgr"  //nolint:depguard // Wired in app layer
	"go.trai.ch/tlenv/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the components node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles the resolved top-level collaborators for main.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			host.NodeID,
			logger.NodeID,
			shell.NodeID,
			tlmgr.MetadataNodeID,
			tlmgr.InstallerNodeID,
			tlmgr.DistInfoNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{AppNodeID, logger.NodeID},
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
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	meta, err := graft.Dep[ports.MetadataQuery](ctx)
	if err != nil {
		return nil, err
	}
	installer, err := graft.Dep[ports.Installer](ctx)
	if err != nil {
		return nil, err
	}
	dist, err := graft.Dep[ports.DistInfo](ctx)
	if err != nil {
		return nil, err
	}
	runner, err := graft.Dep[ports.Runner](ctx)
	if err != nil {
		return nil, err
	}
	h, err := graft.Dep[ports.Host](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, meta, installer, dist, runner, h, log), nil
}
