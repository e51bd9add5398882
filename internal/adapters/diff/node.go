package diff

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kimai-plugins/internal/core/ports"
)

// NodeID is the unique identifier for the differ Graft node.
const NodeID graft.ID = "adapter.diff"

func init() {
	graft.Register(graft.Node[ports.Differ]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Differ, error) {
			return NewDiffer(), nil
		},
	})
}
