package ports

import (
	"context"

	"go.trai.ch/kimai-plugins/internal/core/domain"
)

// LockStore handles persistence of the plugin lock file.
//
//go:generate mockgen -source=lock_store.go -destination=mocks/mock_lock_store.go -package=mocks
type LockStore interface {
	// Load reads the lock file at path.
	// Returns nil, nil if the file does not exist.
	Load(ctx context.Context, path string) (*domain.Lockfile, error)

	// Save writes the lock document to path.
	Save(ctx context.Context, path string, lock *domain.Lockfile) error

	// CheckWritable verifies that path, or its directory when path does not exist, can be written.
	CheckWritable(path string) error
}
