package scheduler_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cbuild/internal/adapters/telemetry"
	"go.trai.ch/cbuild/internal/core/domain"
	"go.trai.ch/cbuild/internal/core/ports/mocks"
	"go.trai.ch/cbuild/internal/engine/scheduler"
	"go.uber.org/mock/gomock"
)

// fixture bundles the scheduler under test with its mocked ports.
type fixture struct {
	sched    *scheduler.Scheduler
	executor *mocks.MockExecutor
	hasher   *mocks.MockHasher
	parser   *mocks.MockSourceParser
	sources  *mocks.MockSourceResolver
	verifier *mocks.MockArtifactVerifier
	resolver *mocks.MockIncludeResolver
	store    *mocks.MockDepsStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()

	f := &fixture{
		executor: mocks.NewMockExecutor(ctrl),
		hasher:   mocks.NewMockHasher(ctrl),
		parser:   mocks.NewMockSourceParser(ctrl),
		sources:  mocks.NewMockSourceResolver(ctrl),
		verifier: mocks.NewMockArtifactVerifier(ctrl),
		resolver: mocks.NewMockIncludeResolver(ctrl),
		store:    mocks.NewMockDepsStore(ctrl),
	}
	f.sched = scheduler.NewScheduler(
		f.executor, f.hasher, f.parser, f.sources, f.verifier, telemetry.NewNoop(), log,
	)
	return f
}

func singleTargetProject(t *testing.T, root string) *domain.Project {
	t.Helper()
	g := domain.NewGraph()
	require.NoError(t, g.AddTarget(&domain.Target{
		Name:    domain.NewInternedString("app"),
		Sources: []domain.InternedString{domain.NewInternedString("src")},
		Output:  domain.NewInternedString("bin/app"),
	}))
	require.NoError(t, g.Validate())
	return &domain.Project{
		Root:        root,
		Compiler:    []string{"cc"},
		IncludeDirs: []string{filepath.Join(root, "include")},
		Graph:       g,
	}
}

func (f *fixture) request(project *domain.Project) *scheduler.Request {
	return &scheduler.Request{
		Project:     project,
		Resolver:    f.resolver,
		Store:       f.store,
		Parallelism: 1,
	}
}

func resolution(checked []string, resolved ...domain.ResolvedInclude) *domain.ResolvedSourceIncludes {
	acc := domain.NewResolvedSourceIncludes()
	for _, path := range checked {
		acc.RecordChecked(path)
	}
	for _, entry := range resolved {
		acc.RecordResolved(entry.Raw, entry.File)
	}
	return acc
}

func TestScheduler_CompilesAndLinks(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	source := filepath.Join(root, "src", "main.c")
	header := filepath.Join(root, "include", "util.h")
	project := singleTargetProject(t, root)
	f := newFixture(t)

	f.sources.EXPECT().ResolveSources([]string{"src"}, root).Return([]string{source}, nil)
	f.hasher.EXPECT().ComputeFileHash(source).Return(uint64(0xabc), nil)
	f.store.EXPECT().Get("app", source).Return(nil, nil)
	f.parser.EXPECT().ParseIncludes(source).Return(directivesWith("util.h"), nil)
	f.resolver.EXPECT().ResolveIncludes(source, gomock.Any()).
		Return(resolution([]string{header}, domain.ResolvedInclude{Raw: "util.h", File: header}))
	f.verifier.EXPECT().ArtifactExists(header).Return(true)
	f.hasher.EXPECT().ComputeInputHash(gomock.Any(), source, []string{header}).Return("hash-1", nil)
	// No snapshot yet, so the object state is irrelevant; the compile runs.

	var compileStep, linkStep *domain.CompileStep
	f.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, step *domain.CompileStep, _ []string) error {
			compileStep = step
			return nil
		})
	f.store.EXPECT().Put("app", gomock.Any()).
		DoAndReturn(func(_ string, info domain.SourceDepsInfo) error {
			assert.Equal(t, source, info.Source)
			assert.Equal(t, "hash-1", info.InputHash)
			assert.False(t, info.Unknown)
			require.Len(t, info.Checked, 1)
			assert.True(t, info.Checked[0].Exists)
			return nil
		})
	f.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, step *domain.CompileStep, _ []string) error {
			linkStep = step
			return nil
		})

	require.NoError(t, f.sched.Run(context.Background(), f.request(project)))

	require.NotNil(t, compileStep)
	assert.Contains(t, compileStep.Command, "-c")
	assert.Contains(t, compileStep.Command, source)
	assert.Contains(t, compileStep.Command, "-I")

	require.NotNil(t, linkStep)
	assert.Contains(t, linkStep.Command, filepath.Join(root, "bin", "app"))
	assert.Equal(t, domain.VertexStatusCompleted, f.sched.Status(domain.NewInternedString("app")))
}

func TestScheduler_SkipsUpToDateSource(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	source := filepath.Join(root, "src", "main.c")
	header := filepath.Join(root, "include", "util.h")
	project := singleTargetProject(t, root)
	f := newFixture(t)

	stored := &domain.SourceDepsInfo{
		Source:     source,
		SourceHash: "0000000000000abc",
		Resolved:   []domain.ResolvedInclude{{Raw: "util.h", File: header}},
		Checked: []domain.CheckedLocation{
			{Path: filepath.Join(root, "src", "util.h"), Exists: false},
			{Path: header, Exists: true},
		},
		InputHash:  "hash-1",
		ComputedAt: time.Now().UTC(),
	}

	f.sources.EXPECT().ResolveSources([]string{"src"}, root).Return([]string{source}, nil)
	f.hasher.EXPECT().ComputeFileHash(source).Return(uint64(0xabc), nil)
	f.store.EXPECT().Get("app", source).Return(stored, nil)
	// Snapshot reuse: every recorded probe answers the same way.
	f.verifier.EXPECT().ArtifactExists(filepath.Join(root, "src", "util.h")).Return(false)
	f.verifier.EXPECT().ArtifactExists(header).Return(true)
	f.hasher.EXPECT().ComputeInputHash(gomock.Any(), source, []string{header}).Return("hash-1", nil)
	f.verifier.EXPECT().ArtifactExists(gomock.Any()).Return(true).Times(2) // object, then output

	require.NoError(t, f.sched.Run(context.Background(), f.request(project)))
	assert.Equal(t, domain.VertexStatusCached, f.sched.Status(domain.NewInternedString("app")))
}

func TestScheduler_NewHeaderShadowsOldOne(t *testing.T) {
	t.Parallel()

	// A header appearing at a previously missing checked location must
	// invalidate the stored resolution and recompile.
	root := t.TempDir()
	source := filepath.Join(root, "src", "main.c")
	localHeader := filepath.Join(root, "src", "util.h")
	configured := filepath.Join(root, "include", "util.h")
	project := singleTargetProject(t, root)
	f := newFixture(t)

	stored := &domain.SourceDepsInfo{
		Source:     source,
		SourceHash: "0000000000000abc",
		Resolved:   []domain.ResolvedInclude{{Raw: "util.h", File: configured}},
		Checked: []domain.CheckedLocation{
			{Path: localHeader, Exists: false},
			{Path: configured, Exists: true},
		},
		InputHash: "hash-1",
	}

	f.sources.EXPECT().ResolveSources([]string{"src"}, root).Return([]string{source}, nil)
	f.hasher.EXPECT().ComputeFileHash(source).Return(uint64(0xabc), nil)
	f.store.EXPECT().Get("app", source).Return(stored, nil)
	// The local header now exists: the recorded "false" no longer holds.
	f.verifier.EXPECT().ArtifactExists(localHeader).Return(true)

	f.parser.EXPECT().ParseIncludes(source).Return(directivesWith("util.h"), nil)
	f.resolver.EXPECT().ResolveIncludes(source, gomock.Any()).
		Return(resolution([]string{localHeader}, domain.ResolvedInclude{Raw: "util.h", File: localHeader}))
	f.verifier.EXPECT().ArtifactExists(localHeader).Return(true)
	f.hasher.EXPECT().ComputeInputHash(gomock.Any(), source, []string{localHeader}).Return("hash-2", nil)

	f.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	f.store.EXPECT().Put("app", gomock.Any()).Return(nil)

	require.NoError(t, f.sched.Run(context.Background(), f.request(project)))
}

func TestScheduler_UnknownMacroAlwaysRecompiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	source := filepath.Join(root, "src", "main.c")
	project := singleTargetProject(t, root)
	f := newFixture(t)

	f.sources.EXPECT().ResolveSources([]string{"src"}, root).Return([]string{source}, nil)
	f.hasher.EXPECT().ComputeFileHash(source).Return(uint64(0xabc), nil)
	f.store.EXPECT().Get("app", source).Return(nil, nil)
	f.parser.EXPECT().ParseIncludes(source).Return(directivesWith(), nil)
	f.resolver.EXPECT().ResolveIncludes(source, gomock.Any()).
		Return(resolution(nil, domain.ResolvedInclude{Raw: "CONFIG_H", File: ""}))

	// No input hash is computed for unknown resolutions; compile and link
	// always run.
	f.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	f.store.EXPECT().Put("app", gomock.Any()).
		DoAndReturn(func(_ string, info domain.SourceDepsInfo) error {
			assert.True(t, info.Unknown)
			assert.Empty(t, info.InputHash)
			return nil
		})

	require.NoError(t, f.sched.Run(context.Background(), f.request(project)))
}

func TestScheduler_ForceRecompiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	source := filepath.Join(root, "src", "main.c")
	project := singleTargetProject(t, root)
	f := newFixture(t)

	stored := &domain.SourceDepsInfo{
		Source:     source,
		SourceHash: "0000000000000abc",
		InputHash:  "hash-1",
	}

	f.sources.EXPECT().ResolveSources([]string{"src"}, root).Return([]string{source}, nil)
	f.hasher.EXPECT().ComputeFileHash(source).Return(uint64(0xabc), nil)
	f.store.EXPECT().Get("app", source).Return(stored, nil)
	f.hasher.EXPECT().ComputeInputHash(gomock.Any(), source, gomock.Any()).Return("hash-1", nil)

	f.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	f.store.EXPECT().Put("app", gomock.Any()).Return(nil)

	req := f.request(project)
	req.Force = true
	require.NoError(t, f.sched.Run(context.Background(), req))
}

func TestScheduler_UnknownTarget(t *testing.T) {
	t.Parallel()

	project := singleTargetProject(t, t.TempDir())
	f := newFixture(t)

	req := f.request(project)
	req.Targets = []string{"nope"}
	err := f.sched.Run(context.Background(), req)
	require.ErrorIs(t, err, domain.ErrTargetNotFound)
}

func TestScheduler_BuildsDependenciesFirst(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	g := domain.NewGraph()
	require.NoError(t, g.AddTarget(&domain.Target{
		Name:    domain.NewInternedString("lib"),
		Sources: []domain.InternedString{domain.NewInternedString("lib")},
		Output:  domain.NewInternedString("out/lib.a"),
	}))
	require.NoError(t, g.AddTarget(&domain.Target{
		Name:         domain.NewInternedString("app"),
		Sources:      []domain.InternedString{domain.NewInternedString("src")},
		Output:       domain.NewInternedString("out/app"),
		Dependencies: []domain.InternedString{domain.NewInternedString("lib")},
	}))
	require.NoError(t, g.Validate())
	project := &domain.Project{Root: root, Compiler: []string{"cc"}, Graph: g}

	f := newFixture(t)

	var order []string
	f.sources.EXPECT().ResolveSources(gomock.Any(), root).
		DoAndReturn(func(patterns []string, _ string) ([]string, error) {
			order = append(order, patterns[0])
			return []string{filepath.Join(root, patterns[0], "a.c")}, nil
		}).Times(2)
	f.hasher.EXPECT().ComputeFileHash(gomock.Any()).Return(uint64(1), nil).Times(2)
	f.store.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
	f.parser.EXPECT().ParseIncludes(gomock.Any()).Return(directivesWith(), nil).Times(2)
	f.resolver.EXPECT().ResolveIncludes(gomock.Any(), gomock.Any()).
		Return(resolution(nil)).Times(2)
	f.hasher.EXPECT().ComputeInputHash(gomock.Any(), gomock.Any(), gomock.Any()).Return("h", nil).Times(2)
	f.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(4)
	f.store.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	// Requesting only "app" must pull in and build "lib" first.
	req := f.request(project)
	req.Targets = []string{"app"}
	require.NoError(t, f.sched.Run(context.Background(), req))
	assert.Equal(t, []string{"lib", "src"}, order)
}

func TestScheduler_CompileFailureStopsBuild(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	source := filepath.Join(root, "src", "main.c")
	project := singleTargetProject(t, root)
	f := newFixture(t)

	f.sources.EXPECT().ResolveSources([]string{"src"}, root).Return([]string{source}, nil)
	f.hasher.EXPECT().ComputeFileHash(source).Return(uint64(0xabc), nil)
	f.store.EXPECT().Get("app", source).Return(nil, nil)
	f.parser.EXPECT().ParseIncludes(source).Return(directivesWith(), nil)
	f.resolver.EXPECT().ResolveIncludes(source, gomock.Any()).Return(resolution(nil))
	f.hasher.EXPECT().ComputeInputHash(gomock.Any(), source, gomock.Any()).Return("h", nil)
	f.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.ErrCompileFailed)

	err := f.sched.Run(context.Background(), f.request(project))
	require.ErrorIs(t, err, domain.ErrBuildExecutionFailed)
	assert.Equal(t, domain.VertexStatusFailed, f.sched.Status(domain.NewInternedString("app")))
}

func TestScheduler_ResolveDeps(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	source := filepath.Join(root, "src", "main.c")
	header := filepath.Join(root, "include", "util.h")
	project := singleTargetProject(t, root)
	f := newFixture(t)

	f.sources.EXPECT().ResolveSources([]string{"src"}, root).Return([]string{source}, nil)
	f.parser.EXPECT().ParseIncludes(source).Return(directivesWith("util.h"), nil)
	f.resolver.EXPECT().ResolveIncludes(source, gomock.Any()).
		Return(resolution([]string{header}, domain.ResolvedInclude{Raw: "util.h", File: header}))

	deps, err := f.sched.ResolveDeps(context.Background(), f.request(project))
	require.NoError(t, err)
	require.Len(t, deps, 1)
	assert.Equal(t, "app", deps[0].Target)
	assert.Equal(t, "src/main.c", deps[0].Source)
	require.Len(t, deps[0].Resolved, 1)
	assert.Equal(t, header, deps[0].Resolved[0].File)
}

func directivesWith(quoted ...string) *domain.IncludeDirectives {
	d := domain.NewIncludeDirectives()
	for _, value := range quoted {
		d.Add(domain.Include{Value: value, Kind: domain.IncludeQuoted})
	}
	return d
}
