package update

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lintsync/internal/adapters/fs"         //nolint:depguard // Wired in engine wiring
	"go.trai.ch/lintsync/internal/adapters/issuestore" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/lintsync/internal/adapters/logger"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/lintsync/internal/adapters/server"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/lintsync/internal/adapters/storage"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/lintsync/internal/adapters/telemetry"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/lintsync/internal/build"
	"go.trai.ch/lintsync/internal/core/ports"
)

const (
	// ModuleNodeID is the unique identifier for the module updater Graft node.
	ModuleNodeID graft.ID = "engine.update.module"
	// GlobalNodeID is the unique identifier for the global updater Graft node.
	GlobalNodeID graft.ID = "engine.update.global"
)

func init() {
	graft.Register(graft.Node[*ModuleUpdater]{
		ID:        ModuleNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			storage.NodeID,
			fs.StagerNodeID,
			server.ModuleFetcherNodeID,
			server.IssueFetcherNodeID,
			issuestore.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*ModuleUpdater, error) {
			store, err := graft.Dep[ports.Storage](ctx)
			if err != nil {
				return nil, err
			}

			stager, err := graft.Dep[ports.Stager](ctx)
			if err != nil {
				return nil, err
			}

			configs, err := graft.Dep[ports.ModuleConfigFetcher](ctx)
			if err != nil {
				return nil, err
			}

			issues, err := graft.Dep[ports.IssueFetcher](ctx)
			if err != nil {
				return nil, err
			}

			issueStores, err := graft.Dep[ports.IssueStoreFactory](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewModuleUpdater(
				store,
				stager,
				configs,
				issues,
				issueStores,
				tracer,
				log,
				WithClient(build.UserAgent(), build.Version),
			), nil
		},
	})

	graft.Register(graft.Node[*GlobalUpdater]{
		ID:        GlobalNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			server.GlobalFetcherNodeID,
			storage.NodeID,
			fs.StagerNodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*GlobalUpdater, error) {
			fetcher, err := graft.Dep[ports.GlobalFetcher](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.Storage](ctx)
			if err != nil {
				return nil, err
			}

			stager, err := graft.Dep[ports.Stager](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewGlobalUpdater(
				fetcher,
				store,
				stager,
				tracer,
				log,
				WithClient(build.UserAgent(), build.Version),
			), nil
		},
	})
}
