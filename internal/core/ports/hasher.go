package ports

import "go.trai.ch/kimai-plugins/internal/core/domain"

// ContentHasher computes the content hash of a plugin mapping.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type ContentHasher interface {
	// Hash returns a deterministic hex digest of plugins, independent of map order.
	Hash(plugins domain.PluginMap) string
}
