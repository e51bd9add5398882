// Package host implements the in-process runtime that drives plugin lifecycle events.
//
// A resolution cycle dispatches pre-dependencies-solving, checks the collected pins against
// the candidate packages, hands every candidate to the first installer supporting its type
// and finally dispatches post-dependencies-solving.
package host

import (
	"context"
	"fmt"
	"sync"

	"go.trai.ch/kimai-plugins/internal/core/domain"
	"go.trai.ch/kimai-plugins/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Host = (*Runtime)(nil)

// Runtime implements ports.Host.
type Runtime struct {
	logger    ports.Logger
	telemetry ports.Telemetry

	mu         sync.RWMutex
	installers []ports.Installer
	handlers   map[domain.Event][]ports.EventHandler
}

// New creates an empty Runtime.
func New(log ports.Logger, telemetry ports.Telemetry) *Runtime {
	return &Runtime{
		logger:    log,
		telemetry: telemetry,
		handlers:  make(map[domain.Event][]ports.EventHandler),
	}
}

// AddInstaller registers an installer. Earlier registrations win when types overlap.
func (r *Runtime) AddInstaller(installer ports.Installer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.installers = append(r.installers, installer)
}

// Subscribe attaches handler to event. Handlers run in registration order.
func (r *Runtime) Subscribe(event domain.Event, handler ports.EventHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[event] = append(r.handlers[event], handler)
}

// Installer returns the first registered installer supporting packageType.
func (r *Runtime) Installer(packageType string) (ports.Installer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, inst := range r.installers {
		if inst.Supports(packageType) {
			return inst, true
		}
	}
	return nil, false
}

// Run performs one resolution cycle over candidates, the packages the solver settled on.
func (r *Runtime) Run(ctx context.Context, candidates []domain.Package) (*domain.Result, error) {
	req := domain.NewRequest()
	if err := r.Dispatch(ctx, &domain.SolveEvent{Name: domain.EventPreDependenciesSolving, Request: req}); err != nil {
		return nil, err
	}

	result := &domain.Result{Unsatisfied: r.checkPins(ctx, req, candidates)}

	for _, pkg := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		op, ok, err := r.install(ctx, pkg)
		if err != nil {
			return nil, err
		}
		if !ok {
			result.Skipped = append(result.Skipped, pkg)
			continue
		}
		result.Operations = append(result.Operations, op)
	}

	event := &domain.SolveEvent{Name: domain.EventPostDependenciesSolving, Request: req, Result: result}
	if err := r.Dispatch(ctx, event); err != nil {
		return nil, err
	}

	return result, nil
}

// Dispatch runs the handlers subscribed to event.Name. The first failing handler stops the dispatch.
func (r *Runtime) Dispatch(ctx context.Context, event *domain.SolveEvent) error {
	r.mu.RLock()
	handlers := append([]ports.EventHandler(nil), r.handlers[event.Name]...)
	r.mu.RUnlock()

	ctx, vertex := r.telemetry.Record(ctx, string(event.Name))
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			vertex.Log(domain.LogLevelError, err.Error())
			vertex.Complete(err)
			return zerr.With(err, "event", string(event.Name))
		}
	}
	vertex.Complete(nil)
	return nil
}

func (r *Runtime) install(ctx context.Context, pkg domain.Package) (domain.Operation, bool, error) {
	inst, ok := r.Installer(pkg.Type)
	if !ok {
		return domain.Operation{}, false, nil
	}

	_, vertex := r.telemetry.Record(ctx, domain.InstallVertex(pkg))
	path, err := inst.InstallPath(pkg)
	if err != nil {
		vertex.Complete(err)
		return domain.Operation{}, false, err
	}

	vertex.Log(domain.LogLevelInfo, fmt.Sprintf("%s (%s) -> %s", pkg.Name, pkg.PrettyVersion, path))
	vertex.Complete(nil)

	return domain.Operation{Package: pkg, Path: path}, true, nil
}

// checkPins compares every pinned request with the candidate of the same name.
// The dependency solver is external; a pin it would reject is reported, not enforced.
func (r *Runtime) checkPins(ctx context.Context, req *domain.Request, candidates []domain.Package) []domain.UnsatisfiedPin {
	installs := req.Installs()
	if len(installs) == 0 {
		return nil
	}

	_, vertex := r.telemetry.Record(ctx, domain.VertexCheckPins)
	defer vertex.Complete(nil)

	byName := make(map[string]domain.Package, len(candidates))
	for _, pkg := range candidates {
		byName[pkg.Name] = pkg
	}

	var unsatisfied []domain.UnsatisfiedPin
	for _, pin := range installs {
		pkg, ok := byName[pin.Name]
		if !ok {
			msg := fmt.Sprintf("Kimai plugin %s is pinned to %s but was not resolved", pin.Name, pin.Constraint)
			r.logger.Warn(msg)
			vertex.Log(domain.LogLevelWarn, msg)
			unsatisfied = append(unsatisfied, domain.UnsatisfiedPin{Request: pin})
			continue
		}

		found, err := domain.NormalizeVersion(pkg.PrettyVersion)
		if err != nil {
			found = pkg.PrettyVersion
		}
		if found == pin.Constraint.Version {
			continue
		}

		msg := fmt.Sprintf("Kimai plugin %s is pinned to %s but %s was resolved", pin.Name, pin.Constraint, pkg.PrettyVersion)
		r.logger.Warn(msg)
		vertex.Log(domain.LogLevelWarn, msg)
		unsatisfied = append(unsatisfied, domain.UnsatisfiedPin{Request: pin, Found: found})
	}

	return unsatisfied
}
