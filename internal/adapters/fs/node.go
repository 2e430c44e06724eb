package fs

import (
	"context"
	"path/filepath"

	"github.com/grindlemire/graft"
	"go.trai.ch/lintsync/internal/adapters/config"
	"go.trai.ch/lintsync/internal/core/domain"
	"go.trai.ch/lintsync/internal/core/ports"
)

const (
	// WalkerNodeID is the unique identifier for the workspace walker Graft node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// VerifierNodeID is the unique identifier for the snapshot verifier Graft node.
	VerifierNodeID graft.ID = "adapter.fs.verifier"
	// StagerNodeID is the unique identifier for the stager Graft node.
	StagerNodeID graft.ID = "adapter.fs.stager"
)

func init() {
	graft.Register(graft.Node[ports.Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.Verifier]{
		ID:        VerifierNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Verifier, error) {
			return NewVerifier(), nil
		},
	})

	graft.Register(graft.Node[ports.Stager]{
		ID:        StagerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID},
		Run: func(ctx context.Context) (ports.Stager, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewStager(filepath.Join(cfg.StorageDir, domain.TempDirName)), nil
		},
	})
}
