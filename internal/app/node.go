package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kimai-plugins/internal/adapters/composer"           //nolint:depguard // Wired in app layer
	"go.trai.ch/kimai-plugins/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/kimai-plugins/internal/adapters/diff"               //nolint:depguard // Wired in app layer
	"go.trai.ch/kimai-plugins/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/kimai-plugins/internal/adapters/lockfile"           //nolint:depguard // Wired in app layer
	"go.trai.ch/kimai-plugins/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/kimai-plugins/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/kimai-plugins/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			composer.NodeID,
			lockfile.NodeID,
			fs.HasherNodeID,
			fs.DetectorNodeID,
			diff.NodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	source, err := graft.Dep[ports.PackageSource](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.LockStore](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.ContentHasher](ctx)
	if err != nil {
		return nil, err
	}

	detector, err := graft.Dep[ports.InstallationDetector](ctx)
	if err != nil {
		return nil, err
	}

	differ, err := graft.Dep[ports.Differ](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, source, store, hasher, detector, differ, log, telemetry), nil
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

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
