package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lintsync/internal/adapters/config"     //nolint:depguard // Wired in app layer
	"go.trai.ch/lintsync/internal/adapters/fs"         //nolint:depguard // Wired in app layer
	"go.trai.ch/lintsync/internal/adapters/issuestore" //nolint:depguard // Wired in app layer
	"go.trai.ch/lintsync/internal/adapters/logger"     //nolint:depguard // Wired in app layer
	"go.trai.ch/lintsync/internal/adapters/server"     //nolint:depguard // Wired in app layer
	"go.trai.ch/lintsync/internal/adapters/storage"    //nolint:depguard // Wired in app layer
	"go.trai.ch/lintsync/internal/core/domain"
	"go.trai.ch/lintsync/internal/core/ports"
	"go.trai.ch/lintsync/internal/engine/update"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
	Config *domain.Config
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.ConfigNodeID,
			update.ModuleNodeID,
			update.GlobalNodeID,
			storage.NodeID,
			issuestore.NodeID,
			server.FileListerNodeID,
			fs.WalkerNodeID,
			fs.VerifierNodeID,
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
			config.ConfigNodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}

	modules, err := graft.Dep[*update.ModuleUpdater](ctx)
	if err != nil {
		return nil, err
	}

	global, err := graft.Dep[*update.GlobalUpdater](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.Storage](ctx)
	if err != nil {
		return nil, err
	}

	issueStores, err := graft.Dep[ports.IssueStoreFactory](ctx)
	if err != nil {
		return nil, err
	}

	files, err := graft.Dep[ports.FileLister](ctx)
	if err != nil {
		return nil, err
	}

	walker, err := graft.Dep[ports.Walker](ctx)
	if err != nil {
		return nil, err
	}

	verifier, err := graft.Dep[ports.Verifier](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(cfg, modules, global, store, issueStores, files, walker, verifier, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{App: app, Logger: log, Config: cfg}, nil
}
