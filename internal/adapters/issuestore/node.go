package issuestore

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lintsync/internal/core/ports"
)

// NodeID is the unique identifier for the issue store factory Graft node.
const NodeID graft.ID = "adapter.issue_store"

func init() {
	graft.Register(graft.Node[ports.IssueStoreFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.IssueStoreFactory, error) {
			return NewFactory(), nil
		},
	})
}
