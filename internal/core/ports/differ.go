package ports

import "go.trai.ch/kimai-plugins/internal/core/domain"

// Differ renders the difference between two plugin mappings.
//
//go:generate mockgen -source=differ.go -destination=mocks/mock_differ.go -package=mocks
type Differ interface {
	// Diff returns a unified diff, or an empty string when both mappings are equal.
	Diff(fromName, toName string, from, to domain.PluginMap) (string, error)
}
