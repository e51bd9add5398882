// Package reconciler keeps kimai-plugins.lock in step with the plugins a resolution cycle installs.
//
// Before solving, every recorded plugin is pinned to its exact version so the solver keeps it.
// After solving, the packages the installer accepted are merged over the recorded mapping
// and the lock file is rewritten when the mapping changed.
package reconciler

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/kimai-plugins/internal/core/domain"
	"go.trai.ch/kimai-plugins/internal/core/ports"
	"go.trai.ch/zerr"
)

// Outcome describes what a post-solve pass did, or would do, to the lock file.
type Outcome struct {
	// Previous is the mapping read from the lock file, empty when the file was absent.
	Previous domain.PluginMap
	// Merged is Previous with the packages installed this cycle laid over it.
	Merged domain.PluginMap
	// Changed reports whether Merged hashes differently from Previous.
	Changed bool
	// Written reports whether the lock file was rewritten.
	Written bool
	// Skipped reports that the root is not a Kimai installation.
	Skipped bool
}

// Reconciler implements the pre- and post-solve handlers of the Kimai plugin.
type Reconciler struct {
	root     string
	lockPath string
	lockName string
	marker   string
	store    ports.LockStore
	hasher   ports.ContentHasher
	detector ports.InstallationDetector
	logger   ports.Logger
	clock    clockwork.Clock
}

// New creates a Reconciler for the installation rooted at root, the parent of the vendor directory.
func New(
	cfg *domain.Config,
	root string,
	store ports.LockStore,
	hasher ports.ContentHasher,
	detector ports.InstallationDetector,
	log ports.Logger,
	clock clockwork.Clock,
) *Reconciler {
	return &Reconciler{
		root:     root,
		lockPath: filepath.Join(root, cfg.LockFile),
		lockName: cfg.LockFile,
		marker:   cfg.Marker,
		store:    store,
		hasher:   hasher,
		detector: detector,
		logger:   log,
		clock:    clock,
	}
}

// LockPath returns the absolute path of the lock file.
func (r *Reconciler) LockPath() string {
	return r.lockPath
}

// Applicable runs the installation guard.
func (r *Reconciler) Applicable() bool {
	if r.detector.IsInstallation(r.root, r.marker) {
		return true
	}
	r.logger.Info("This is not a Kimai installation, skipping plugin installation")
	return false
}

// Recorded returns the plugin mapping stored in the lock file.
// A missing lock file yields an empty mapping.
func (r *Reconciler) Recorded(ctx context.Context) (domain.PluginMap, error) {
	lock, err := r.store.Load(ctx, r.lockPath)
	if err != nil {
		return nil, err
	}
	if lock == nil {
		return domain.PluginMap{}, nil
	}
	return lock.Plugins, nil
}

// BeforeSolving pins every recorded plugin to its exact recorded version.
// No pin is added unless all recorded versions can be normalized.
func (r *Reconciler) BeforeSolving(ctx context.Context, req ports.SolveRequest) error {
	if !r.Applicable() {
		return nil
	}

	plugins, err := r.Recorded(ctx)
	if err != nil {
		return err
	}

	names := plugins.Names()
	pins := make([]domain.Constraint, 0, len(names))
	for _, name := range names {
		constraint, err := domain.ExactConstraint(plugins[name])
		if err != nil {
			return zerr.With(err, "package", name)
		}
		pins = append(pins, constraint)
	}

	for i, name := range names {
		r.note(ctx, domain.LogLevelInfo, fmt.Sprintf("Checking Kimai plugin %s (Version: %s)", name, plugins[name]))
		req.Install(name, pins[i])
	}

	return nil
}

// AfterSolving merges the packages installed this cycle into the lock file.
func (r *Reconciler) AfterSolving(ctx context.Context, installed *domain.InstalledSet) (*Outcome, error) {
	return r.reconcile(ctx, installed, true)
}

// Plan computes what AfterSolving would do without touching the lock file.
func (r *Reconciler) Plan(ctx context.Context, installed *domain.InstalledSet) (*Outcome, error) {
	return r.reconcile(ctx, installed, false)
}

func (r *Reconciler) reconcile(ctx context.Context, installed *domain.InstalledSet, write bool) (*Outcome, error) {
	if !r.Applicable() {
		return &Outcome{Skipped: true}, nil
	}

	previous, err := r.Recorded(ctx)
	if err != nil {
		return nil, err
	}

	merged := previous.Merge(installed.Versions())
	if !write {
		return &Outcome{
			Previous: previous,
			Merged:   merged,
			Changed:  r.hasher.Hash(previous) != r.hasher.Hash(merged),
		}, nil
	}

	return r.WriteLock(ctx, previous, merged)
}

// WriteLock persists merged unless it hashes the same as previous.
// A failing write is reported as a warning and leaves Written false.
func (r *Reconciler) WriteLock(ctx context.Context, previous, merged domain.PluginMap) (*Outcome, error) {
	if err := r.store.CheckWritable(r.lockPath); err != nil {
		return nil, err
	}

	out := &Outcome{Previous: previous, Merged: merged}

	oldHash := r.hasher.Hash(previous)
	contentHash := r.hasher.Hash(merged)
	if oldHash == contentHash {
		r.note(ctx, domain.LogLevelInfo, "Kimai plugins did not change")
		return out, nil
	}
	out.Changed = true

	lock := domain.NewLockfile(merged, contentHash, r.clock.Now())
	if err := r.store.Save(ctx, r.lockPath, lock); err != nil {
		r.note(ctx, domain.LogLevelWarn, fmt.Sprintf("Failed writing Kimai lock file: %s", err.Error()))
		return out, nil
	}
	out.Written = true

	r.note(ctx, domain.LogLevelInfo, fmt.Sprintf("Writing Kimai lock file: %s", r.lockName))
	return out, nil
}

// note logs msg and mirrors it on the lifecycle vertex carried by ctx.
func (r *Reconciler) note(ctx context.Context, level domain.LogLevel, msg string) {
	if level >= domain.LogLevelWarn {
		r.logger.Warn(msg)
	} else {
		r.logger.Info(msg)
	}
	if v, ok := ports.VertexFromContext(ctx); ok {
		v.Log(level, msg)
	}
}

// Subscribe attaches the reconciler to the lifecycle events of host.
// installed is the set the plugin installer fills during the cycle.
// Every post-solve outcome is passed to report when it is non-nil.
func (r *Reconciler) Subscribe(host ports.Host, installed *domain.InstalledSet, dryRun bool, report func(*Outcome)) {
	host.Subscribe(domain.EventPreDependenciesSolving, func(ctx context.Context, event *domain.SolveEvent) error {
		return r.BeforeSolving(ctx, event.Request)
	})

	host.Subscribe(domain.EventPostDependenciesSolving, func(ctx context.Context, _ *domain.SolveEvent) error {
		outcome, err := r.reconcile(ctx, installed, !dryRun)
		if err != nil {
			return err
		}
		if report != nil {
			report(outcome)
		}
		return nil
	})
}
