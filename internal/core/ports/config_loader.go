package ports

import "go.trai.ch/kimai-plugins/internal/core/domain"

// ConfigLoader defines the interface for loading the installer configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration for the installation rooted at root.
	// A missing config file yields the defaults.
	Load(root string) (*domain.Config, error)
}
