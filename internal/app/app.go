// Package app implements the application layer for kimai-plugins.
package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/kimai-plugins/internal/core/domain"
	"go.trai.ch/kimai-plugins/internal/core/ports"
	"go.trai.ch/kimai-plugins/internal/engine/host"
	"go.trai.ch/kimai-plugins/internal/engine/installer"
	"go.trai.ch/kimai-plugins/internal/engine/reconciler"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	source       ports.PackageSource
	store        ports.LockStore
	hasher       ports.ContentHasher
	detector     ports.InstallationDetector
	differ       ports.Differ
	logger       ports.Logger
	telemetry    ports.Telemetry
	clock        clockwork.Clock
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	source ports.PackageSource,
	store ports.LockStore,
	hasher ports.ContentHasher,
	detector ports.InstallationDetector,
	differ ports.Differ,
	log ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		configLoader: loader,
		source:       source,
		store:        store,
		hasher:       hasher,
		detector:     detector,
		differ:       differ,
		logger:       log,
		telemetry:    telemetry,
		clock:        clockwork.NewRealClock(),
	}
}

// WithClock replaces the clock used for lock file timestamps.
// This is primarily used for testing.
func (a *App) WithClock(clock clockwork.Clock) *App {
	a.clock = clock
	return a
}

// Close flushes the telemetry session.
func (a *App) Close() error {
	return a.telemetry.Close()
}

// SyncOptions configuration for the Sync method.
type SyncOptions struct {
	Root   string
	DryRun bool
}

// SyncReport describes a finished resolution cycle.
type SyncReport struct {
	VendorDir string
	LockPath  string
	Result    *domain.Result
	Outcome   *reconciler.Outcome
}

// session is the plugin activated on a fresh host for one invocation.
type session struct {
	cfg        *domain.Config
	vendorDir  string
	host       *host.Runtime
	installed  *domain.InstalledSet
	reconciler *reconciler.Reconciler
}

func (a *App) activate(root string) (*session, error) {
	cfg, err := a.configLoader.Load(root)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	vendorDir, err := a.vendorDir(cfg)
	if err != nil {
		return nil, err
	}

	installed := domain.NewInstalledSet()
	runtime := host.New(a.logger, a.telemetry)
	runtime.AddInstaller(installer.New(cfg, vendorDir, installed, a.logger))

	rec := reconciler.New(cfg, filepath.Dir(vendorDir), a.store, a.hasher, a.detector, a.logger, a.clock)

	return &session{
		cfg:        cfg,
		vendorDir:  vendorDir,
		host:       runtime,
		installed:  installed,
		reconciler: rec,
	}, nil
}

// vendorDir prefers the configured vendor directory over the one composer.json declares.
func (a *App) vendorDir(cfg *domain.Config) (string, error) {
	if cfg.VendorDir == "" {
		return a.source.VendorDir(cfg.Root)
	}
	dir := filepath.FromSlash(cfg.VendorDir)
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(cfg.Root, dir)
	}
	return filepath.Clean(dir), nil
}

// Sync runs one resolution cycle over the packages Composer installed and reconciles the lock file.
// With DryRun the lock file is only planned, never written.
func (a *App) Sync(ctx context.Context, opts SyncOptions) (*SyncReport, error) {
	s, err := a.activate(opts.Root)
	if err != nil {
		return nil, err
	}

	candidates, err := a.source.Packages(ctx, s.vendorDir)
	if err != nil {
		return nil, err
	}

	report := &SyncReport{VendorDir: s.vendorDir, LockPath: s.reconciler.LockPath()}
	s.reconciler.Subscribe(s.host, s.installed, opts.DryRun, func(o *reconciler.Outcome) {
		report.Outcome = o
	})

	result, err := s.host.Run(ctx, candidates)
	if err != nil {
		return nil, zerr.Wrap(err, "plugin installation failed")
	}
	report.Result = result

	return report, nil
}

// Pins returns the install requests the pre-solve pass injects for the installation at root.
func (a *App) Pins(ctx context.Context, root string) ([]domain.InstallRequest, error) {
	s, err := a.activate(root)
	if err != nil {
		return nil, err
	}

	req := domain.NewRequest()
	if err := s.reconciler.BeforeSolving(ctx, req); err != nil {
		return nil, err
	}
	return req.Installs(), nil
}

// Diff renders the change a sync would make to the lock file's plugin mapping.
// The result is empty when nothing would change.
func (a *App) Diff(ctx context.Context, root string) (string, error) {
	report, err := a.Sync(ctx, SyncOptions{Root: root, DryRun: true})
	if err != nil {
		return "", err
	}

	out := report.Outcome
	if out == nil || out.Skipped || !out.Changed {
		return "", nil
	}

	name := filepath.Base(report.LockPath)
	return a.differ.Diff(name, name+" (planned)", out.Previous, out.Merged)
}

// InstallPath resolves the directory pkg would be installed into.
func (a *App) InstallPath(_ context.Context, root string, pkg domain.Package) (string, error) {
	s, err := a.activate(root)
	if err != nil {
		return "", err
	}

	inst, ok := s.host.Installer(pkg.Type)
	if !ok {
		return "", zerr.With(zerr.Wrap(domain.ErrNoInstaller, fmt.Sprintf("package %s has type %q", pkg.Name, pkg.Type)), "type", pkg.Type)
	}
	return inst.InstallPath(pkg)
}
