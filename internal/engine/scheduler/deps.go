package scheduler

import (
	"context"

	"go.trai.ch/cbuild/internal/core/domain"
	"go.trai.ch/zerr"
)

// SourceDeps describes the resolved header dependencies of one translation
// unit.
type SourceDeps struct {
	Target   string
	Source   string
	Resolved []domain.ResolvedInclude
}

// ResolveDeps resolves the include dependencies of every source in the
// requested targets without compiling anything. Results follow target
// execution order, sources sorted within each target.
func (s *Scheduler) ResolveDeps(ctx context.Context, req *Request) ([]SourceDeps, error) {
	targets, err := s.selectTargets(req)
	if err != nil {
		return nil, err
	}

	var all []SourceDeps
	for _, target := range targets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		sources, err := s.sources.ResolveSources(sourcePatterns(&target), req.Project.Root)
		if err != nil {
			return nil, err
		}

		for _, source := range sources {
			directives, err := s.parser.ParseIncludes(source)
			if err != nil {
				return nil, zerr.With(zerr.Wrap(domain.ErrSourceParseFailed, err.Error()), "source", source)
			}
			result := req.Resolver.ResolveIncludes(source, directives)
			all = append(all, SourceDeps{
				Target:   target.Name.String(),
				Source:   displayPath(req.Project.Root, source),
				Resolved: result.ResolvedIncludes(),
			})
		}
	}

	return all, nil
}
