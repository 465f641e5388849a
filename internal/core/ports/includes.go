package ports

import "go.trai.ch/cbuild/internal/core/domain"

// IncludeResolver resolves a source file's include directives against the
// include search path. Implementations share probe state across all source
// files of one build invocation and must be safe for concurrent use; the
// returned accumulator is owned by the caller.
//
//go:generate go run go.uber.org/mock/mockgen -source=includes.go -destination=mocks/mock_includes.go -package=mocks
type IncludeResolver interface {
	// ResolveIncludes determines, for each directive, the concrete file it
	// refers to. Quoted includes search the source file's directory first;
	// system includes search only the configured directories; of the macro
	// includes only the first is recorded, as an unknown entry. Misses
	// produce no resolved entry but still contribute checked locations.
	ResolveIncludes(sourceFile string, directives *domain.IncludeDirectives) *domain.ResolvedSourceIncludes
}
