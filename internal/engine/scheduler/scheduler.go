// Package scheduler drives incremental compilation of the target graph.
package scheduler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.trai.ch/cbuild/internal/core/domain"
	"go.trai.ch/cbuild/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Request describes one build invocation. The include resolver and the
// dependency store are scoped to the invocation: the resolver's probe cache
// must not outlive the build, and the store belongs to the loaded project.
type Request struct {
	Project  *domain.Project
	Resolver ports.IncludeResolver
	Store    ports.DepsStore

	// Targets selects which targets to build. Empty means all.
	Targets []string

	// Parallelism caps concurrent compile steps. Zero or negative means
	// one per CPU.
	Parallelism int

	// Force recompiles every source regardless of recorded state.
	Force bool
}

// Scheduler compiles targets in dependency order, recompiling only sources
// whose inputs changed since the recorded snapshot.
type Scheduler struct {
	executor  ports.Executor
	hasher    ports.Hasher
	parser    ports.SourceParser
	sources   ports.SourceResolver
	verifier  ports.ArtifactVerifier
	telemetry ports.Telemetry
	logger    ports.Logger

	mu     sync.RWMutex
	status map[domain.InternedString]domain.VertexStatus
}

// NewScheduler creates a new Scheduler.
func NewScheduler(
	executor ports.Executor,
	hasher ports.Hasher,
	parser ports.SourceParser,
	sources ports.SourceResolver,
	verifier ports.ArtifactVerifier,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Scheduler {
	return &Scheduler{
		executor:  executor,
		hasher:    hasher,
		parser:    parser,
		sources:   sources,
		verifier:  verifier,
		telemetry: telemetry,
		logger:    logger,
		status:    make(map[domain.InternedString]domain.VertexStatus),
	}
}

// Status returns the last observed status of a target.
func (s *Scheduler) Status(name domain.InternedString) domain.VertexStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status[name]
}

func (s *Scheduler) setStatus(name domain.InternedString, status domain.VertexStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status[name] = status
}

// Run builds the requested targets. Targets execute sequentially in
// dependency order; the sources of one target compile concurrently up to the
// requested parallelism.
func (s *Scheduler) Run(ctx context.Context, req *Request) error {
	targets, err := s.selectTargets(req)
	if err != nil {
		return err
	}

	parallelism := req.Parallelism
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}

	for _, target := range targets {
		s.setStatus(target.Name, domain.VertexStatusRunning)
		if err := s.buildTarget(ctx, req, &target, parallelism); err != nil {
			s.setStatus(target.Name, domain.VertexStatusFailed)
			return zerr.With(zerr.Wrap(domain.ErrBuildExecutionFailed, err.Error()), "target", target.Name.String())
		}
	}

	return nil
}

// selectTargets returns the requested targets plus their transitive
// dependencies, in execution order.
func (s *Scheduler) selectTargets(req *Request) ([]domain.Target, error) {
	graph := req.Project.Graph

	if len(req.Targets) == 0 {
		var all []domain.Target
		for target := range graph.Walk() {
			all = append(all, target)
		}
		if len(all) == 0 {
			return nil, domain.ErrNoTargetsSpecified
		}
		return all, nil
	}

	wanted := make(map[domain.InternedString]struct{})
	var mark func(name domain.InternedString) error
	mark = func(name domain.InternedString) error {
		if _, ok := wanted[name]; ok {
			return nil
		}
		target, ok := graph.Target(name)
		if !ok {
			return zerr.With(domain.ErrTargetNotFound, "target", name.String())
		}
		wanted[name] = struct{}{}
		for _, dep := range target.Dependencies {
			if err := mark(dep); err != nil {
				return err
			}
		}
		return nil
	}
	for _, name := range req.Targets {
		if err := mark(domain.NewInternedString(name)); err != nil {
			return nil, err
		}
	}

	var selected []domain.Target
	for target := range graph.Walk() {
		if _, ok := wanted[target.Name]; ok {
			selected = append(selected, target)
		}
	}
	return selected, nil
}

func (s *Scheduler) buildTarget(ctx context.Context, req *Request, target *domain.Target, parallelism int) error {
	root := req.Project.Root
	name := target.Name.String()

	sources, err := s.sources.ResolveSources(sourcePatterns(target), root)
	if err != nil {
		return err
	}
	if len(sources) == 0 {
		return zerr.With(domain.ErrSourceNotFound, "target", name)
	}

	objDir := domain.ObjectPath(root, name)
	if err := os.MkdirAll(objDir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create object directory")
	}

	env := flattenEnvironment(target.Environment)

	objects := make([]string, len(sources))
	var recompiled atomic.Bool

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)
	for i, source := range sources {
		objects[i] = objectPath(objDir, root, source)
		g.Go(func() error {
			compiled, err := s.compileSource(gctx, req, target, source, objects[i], env)
			if err != nil {
				return err
			}
			if compiled {
				recompiled.Store(true)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return s.linkTarget(ctx, req, target, objects, env, recompiled.Load())
}

// compileSource brings one translation unit up to date. It reports whether
// the compiler actually ran.
func (s *Scheduler) compileSource(ctx context.Context, req *Request, target *domain.Target, source, object string, env []string) (bool, error) {
	name := target.Name.String()
	rel := displayPath(req.Project.Root, source)

	ctx, vertex := s.telemetry.Record(ctx, "compile "+rel)

	hash, err := s.hasher.ComputeFileHash(source)
	if err != nil {
		vertex.Complete(err)
		return false, err
	}
	sourceHash := fmt.Sprintf("%016x", hash)

	stored, err := req.Store.Get(name, source)
	if err != nil {
		vertex.Complete(err)
		return false, err
	}

	resolved, deps, checked, unknown := s.resolveDependencies(req, stored, source, sourceHash, vertex)

	command := compileCommand(req.Project, target, source, object)

	var inputHash string
	if !unknown {
		inputHash, err = s.hasher.ComputeInputHash(command, source, deps)
		if err != nil {
			vertex.Complete(err)
			return false, err
		}
	}

	if !req.Force && !unknown && stored != nil &&
		stored.InputHash == inputHash && s.verifier.ArtifactExists(object) {
		vertex.Cached()
		vertex.Complete(nil)
		return false, nil
	}

	if unknown {
		vertex.Log(domain.LogLevelWarn, "unresolved macro include, recompiling unconditionally")
		s.logger.Warn("unresolved macro include, recompiling unconditionally",
			"target", name, "source", rel)
	}

	step := &domain.CompileStep{
		Target:     target.Name,
		Source:     source,
		Object:     object,
		Command:    command,
		WorkingDir: req.Project.Root,
	}
	if err := s.executor.Execute(ctx, step, env); err != nil {
		vertex.Complete(err)
		return false, zerr.With(zerr.Wrap(domain.ErrCompileFailed, err.Error()), "source", rel)
	}

	info := domain.SourceDepsInfo{
		Source:     source,
		SourceHash: sourceHash,
		Resolved:   resolved,
		Checked:    checked,
		Unknown:    unknown,
		InputHash:  inputHash,
		ComputedAt: time.Now().UTC(),
	}
	if err := req.Store.Put(name, info); err != nil {
		vertex.Complete(err)
		return true, err
	}

	vertex.Complete(nil)
	return true, nil
}

// resolveDependencies returns the header dependencies of source, reusing the
// stored snapshot when it is still trustworthy: same source content, no
// unknown entries, and every previously checked location still answering the
// same way. Parse or probe problems degrade to an empty dependency set; the
// compile itself will surface real errors.
func (s *Scheduler) resolveDependencies(
	req *Request,
	stored *domain.SourceDepsInfo,
	source, sourceHash string,
	vertex ports.Vertex,
) (resolved []domain.ResolvedInclude, deps []string, checked []domain.CheckedLocation, unknown bool) {
	if stored != nil && !stored.Unknown && stored.SourceHash == sourceHash && s.checkedUnchanged(stored.Checked) {
		return stored.Resolved, stored.ResolvedFiles(), stored.Checked, false
	}

	directives, err := s.parser.ParseIncludes(source)
	if err != nil {
		vertex.Log(domain.LogLevelWarn, "failed to parse includes: "+err.Error())
		return nil, nil, nil, false
	}

	result := req.Resolver.ResolveIncludes(source, directives)

	locations := result.CheckedLocations()
	checked = make([]domain.CheckedLocation, len(locations))
	for i, loc := range locations {
		checked[i] = domain.CheckedLocation{Path: loc, Exists: s.verifier.ArtifactExists(loc)}
	}

	return result.ResolvedIncludes(), result.ResolvedFiles(), checked, result.HasUnknown()
}

// checkedUnchanged reports whether every previously probed location still
// exists or is still missing, exactly as recorded. A header appearing
// earlier on the search path than the one used last time flips one of these
// answers.
func (s *Scheduler) checkedUnchanged(checked []domain.CheckedLocation) bool {
	for _, c := range checked {
		if s.verifier.ArtifactExists(c.Path) != c.Exists {
			return false
		}
	}
	return true
}

func (s *Scheduler) linkTarget(ctx context.Context, req *Request, target *domain.Target, objects, env []string, recompiled bool) error {
	name := target.Name.String()
	output := target.Output.String()
	if output == "" {
		return zerr.With(zerr.Wrap(domain.ErrLinkFailed, "target has no output"), "target", name)
	}
	outputPath := output
	if !filepath.IsAbs(outputPath) {
		outputPath = filepath.Join(req.Project.Root, output)
	}

	if !recompiled && !req.Force && s.verifier.ArtifactExists(outputPath) {
		s.setStatus(target.Name, domain.VertexStatusCached)
		return nil
	}

	ctx, vertex := s.telemetry.Record(ctx, "link "+output)

	if err := os.MkdirAll(filepath.Dir(outputPath), domain.DirPerm); err != nil {
		vertex.Complete(err)
		return zerr.Wrap(err, "failed to create output directory")
	}

	command := make([]string, 0, len(req.Project.Compiler)+len(target.Flags)+len(objects)+2)
	command = append(command, req.Project.Compiler...)
	command = append(command, target.Flags...)
	command = append(command, "-o", outputPath)
	command = append(command, objects...)

	step := &domain.CompileStep{
		Target:     target.Name,
		Object:     outputPath,
		Command:    command,
		WorkingDir: req.Project.Root,
	}
	if err := s.executor.Execute(ctx, step, env); err != nil {
		vertex.Complete(err)
		return zerr.With(zerr.Wrap(domain.ErrLinkFailed, err.Error()), "target", name)
	}

	vertex.Complete(nil)
	s.setStatus(target.Name, domain.VertexStatusCompleted)
	s.logger.Info("linked target", "target", name, "output", output)
	return nil
}

// compileCommand builds the compiler invocation for one translation unit.
// Include directories are passed in configured order so the compiler's own
// search matches the resolver's.
func compileCommand(project *domain.Project, target *domain.Target, source, object string) []string {
	command := make([]string, 0, len(project.Compiler)+len(target.Flags)+2*len(project.IncludeDirs)+4)
	command = append(command, project.Compiler...)
	command = append(command, target.Flags...)
	for _, dir := range project.IncludeDirs {
		command = append(command, "-I", dir)
	}
	command = append(command, "-c", source, "-o", object)
	return command
}

// objectPath maps a source file to its object file inside the target's
// object directory. The project-relative path is flattened so two sources
// with the same base name cannot collide.
func objectPath(objDir, root, source string) string {
	rel := displayPath(root, source)
	mangled := strings.NewReplacer("/", "_", "\\", "_", ":", "_").Replace(rel)
	ext := filepath.Ext(mangled)
	return filepath.Join(objDir, strings.TrimSuffix(mangled, ext)+".o")
}

func displayPath(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil && !strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(rel)
	}
	return filepath.ToSlash(path)
}

func sourcePatterns(target *domain.Target) []string {
	patterns := make([]string, len(target.Sources))
	for i, s := range target.Sources {
		patterns[i] = s.String()
	}
	return patterns
}

// flattenEnvironment converts the target environment map to KEY=VALUE form,
// sorted for deterministic command environments.
func flattenEnvironment(env map[string]string) []string {
	if len(env) == 0 {
		return nil
	}
	entries := make([]string, 0, len(env))
	for k, v := range env {
		entries = append(entries, k+"="+v)
	}
	sort.Strings(entries)
	return entries
}
