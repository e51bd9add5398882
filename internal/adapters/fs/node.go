package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kimai-plugins/internal/core/ports"
)

const (
	// HasherNodeID is the unique identifier for the content hasher Graft node.
	HasherNodeID graft.ID = "adapter.fs.hasher"
	// DetectorNodeID is the unique identifier for the installation detector Graft node.
	DetectorNodeID graft.ID = "adapter.fs.detector"
)

func init() {
	graft.Register(graft.Node[ports.ContentHasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ContentHasher, error) {
			return NewHasher(), nil
		},
	})

	graft.Register(graft.Node[ports.InstallationDetector]{
		ID:        DetectorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.InstallationDetector, error) {
			return NewDetector(), nil
		},
	})
}
