package ports

import (
	"context"

	"go.trai.ch/kimai-plugins/internal/core/domain"
)

// Installer decides where packages of the types it supports are installed.
//
//go:generate mockgen -source=installer.go -destination=mocks/mock_installer.go -package=mocks
type Installer interface {
	// Supports reports whether the installer handles packages of the given type.
	Supports(packageType string) bool

	// InstallPath returns the directory the package is unpacked into.
	InstallPath(pkg domain.Package) (string, error)
}

// SolveRequest is the mutable request a pre-solve handler may add pins to.
type SolveRequest interface {
	Install(name string, constraint domain.Constraint)
}

// EventHandler reacts to a lifecycle event of the host runtime.
type EventHandler func(ctx context.Context, event *domain.SolveEvent) error

// Host is what a plugin receives on activation.
type Host interface {
	// AddInstaller registers an installer. Earlier registrations win when types overlap.
	AddInstaller(installer Installer)

	// Subscribe attaches a handler to a lifecycle event.
	Subscribe(event domain.Event, handler EventHandler)
}
