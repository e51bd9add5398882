package composer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kimai-plugins/internal/core/ports"
)

// NodeID is the unique identifier for the Composer package source Graft node.
const NodeID graft.ID = "adapter.composer.source"

func init() {
	graft.Register(graft.Node[ports.PackageSource]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PackageSource, error) {
			return NewSource(), nil
		},
	})
}
