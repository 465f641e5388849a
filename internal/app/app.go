// Package app implements the application layer for cbuild.
package app

import (
	"context"
	"os"

	"go.trai.ch/cbuild/internal/adapters/store"
	"go.trai.ch/cbuild/internal/core/domain"
	"go.trai.ch/cbuild/internal/core/ports"
	"go.trai.ch/cbuild/internal/engine/includes"
	"go.trai.ch/cbuild/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	scheduler    *scheduler.Scheduler
	stores       store.Factory
	logger       ports.Logger
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, sched *scheduler.Scheduler, stores store.Factory, log ports.Logger) *App {
	return &App{
		configLoader: loader,
		scheduler:    sched,
		stores:       stores,
		logger:       log,
	}
}

// BuildOptions controls one build invocation.
type BuildOptions struct {
	// Targets selects which targets to build. Empty means all.
	Targets []string
	// Jobs caps concurrent compile steps. Zero means one per CPU.
	Jobs int
	// Force recompiles everything regardless of recorded state.
	Force bool
}

// Build loads the project at cwd and brings the requested targets up to
// date.
func (a *App) Build(ctx context.Context, cwd string, opts BuildOptions) error {
	req, err := a.prepare(cwd, opts.Targets)
	if err != nil {
		return err
	}
	req.Parallelism = opts.Jobs
	req.Force = opts.Force

	return a.scheduler.Run(ctx, req)
}

// Deps resolves and returns the header dependencies of every source in the
// requested targets, without compiling.
func (a *App) Deps(ctx context.Context, cwd string, targets []string) ([]scheduler.SourceDeps, error) {
	req, err := a.prepare(cwd, targets)
	if err != nil {
		return nil, err
	}
	return a.scheduler.ResolveDeps(ctx, req)
}

// Clean removes all build metadata and artifacts produced under the
// project's metadata directory. Linked outputs outside it are left alone.
func (a *App) Clean(cwd string) error {
	project, err := a.configLoader.Load(cwd)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	path := domain.CbuildPath(project.Root)
	if err := os.RemoveAll(path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove metadata directory"), "path", path)
	}

	a.logger.Info("removed build metadata", "path", path)
	return nil
}

// prepare loads the project and assembles a scheduler request with
// invocation-scoped state: a fresh probe cache, so no existence answer
// outlives the build, and the project's dependency store.
func (a *App) prepare(cwd string, targets []string) (*scheduler.Request, error) {
	project, err := a.configLoader.Load(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	depsStore, err := a.stores(project.Root)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to open dependency store")
	}

	resolver := includes.NewResolver(project.IncludeDirs, includes.NewProbeCache())

	return &scheduler.Request{
		Project:  project,
		Resolver: resolver,
		Store:    depsStore,
		Targets:  targets,
	}, nil
}
