// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/kimai-plugins/internal/adapters/composer"
	_ "go.trai.ch/kimai-plugins/internal/adapters/config"
	_ "go.trai.ch/kimai-plugins/internal/adapters/diff"
	_ "go.trai.ch/kimai-plugins/internal/adapters/fs"
	_ "go.trai.ch/kimai-plugins/internal/adapters/lockfile"
	_ "go.trai.ch/kimai-plugins/internal/adapters/logger"
	_ "go.trai.ch/kimai-plugins/internal/adapters/telemetry/progrock"
	// Register app nodes.
	_ "go.trai.ch/kimai-plugins/internal/app"
)
