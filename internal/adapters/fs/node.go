package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pkgdesc/internal/core/ports"
)

// VerifierNodeID is the unique identifier for the layout verifier Graft node.
const VerifierNodeID graft.ID = "adapter.fs.verifier"

func init() {
	graft.Register(graft.Node[ports.LayoutVerifier]{
		ID:        VerifierNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LayoutVerifier, error) {
			return NewVerifier(), nil
		},
	})
}
