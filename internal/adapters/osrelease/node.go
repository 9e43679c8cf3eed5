package osrelease

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pkgdesc/internal/core/ports"
)

// NodeID is the unique identifier for the OS identity source Graft node.
const NodeID graft.ID = "adapter.osrelease"

func init() {
	graft.Register(graft.Node[ports.OSIdentitySource]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.OSIdentitySource, error) {
			return New(), nil
		},
	})
}
