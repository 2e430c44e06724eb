package server

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lintsync/internal/adapters/config"
	"go.trai.ch/lintsync/internal/build"
	"go.trai.ch/lintsync/internal/core/domain"
	"go.trai.ch/lintsync/internal/core/ports"
)

const (
	// ClientNodeID is the unique identifier for the server client Graft node.
	ClientNodeID graft.ID = "adapter.server_client"
	// GlobalFetcherNodeID is the unique identifier for the global fetcher Graft node.
	GlobalFetcherNodeID graft.ID = "adapter.server_global_fetcher"
	// ModuleFetcherNodeID is the unique identifier for the module configuration fetcher Graft node.
	ModuleFetcherNodeID graft.ID = "adapter.server_module_fetcher"
	// IssueFetcherNodeID is the unique identifier for the issue fetcher Graft node.
	IssueFetcherNodeID graft.ID = "adapter.server_issue_fetcher"
	// FileListerNodeID is the unique identifier for the file lister Graft node.
	FileListerNodeID graft.ID = "adapter.server_file_lister"
)

func init() {
	graft.Register(graft.Node[*Client]{
		ID:        ClientNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID},
		Run: func(ctx context.Context) (*Client, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewClient(cfg.Server, build.UserAgent())
		},
	})

	graft.Register(graft.Node[ports.GlobalFetcher]{
		ID:        GlobalFetcherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{ClientNodeID},
		Run: func(ctx context.Context) (ports.GlobalFetcher, error) {
			c, err := graft.Dep[*Client](ctx)
			if err != nil {
				return nil, err
			}
			return c, nil
		},
	})

	graft.Register(graft.Node[ports.ModuleConfigFetcher]{
		ID:        ModuleFetcherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{ClientNodeID},
		Run: func(ctx context.Context) (ports.ModuleConfigFetcher, error) {
			c, err := graft.Dep[*Client](ctx)
			if err != nil {
				return nil, err
			}
			return c, nil
		},
	})

	graft.Register(graft.Node[ports.IssueFetcher]{
		ID:        IssueFetcherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{ClientNodeID},
		Run: func(ctx context.Context) (ports.IssueFetcher, error) {
			c, err := graft.Dep[*Client](ctx)
			if err != nil {
				return nil, err
			}
			return c, nil
		},
	})

	graft.Register(graft.Node[ports.FileLister]{
		ID:        FileListerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{ClientNodeID},
		Run: func(ctx context.Context) (ports.FileLister, error) {
			c, err := graft.Dep[*Client](ctx)
			if err != nil {
				return nil, err
			}
			return c, nil
		},
	})
}
