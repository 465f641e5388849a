package includes

import (
	"path/filepath"

	"go.trai.ch/cbuild/internal/core/domain"
	"go.trai.ch/cbuild/internal/core/ports"
)

var _ ports.IncludeResolver = (*Resolver)(nil)

// Resolver resolves include directives against the configured include
// search directories, consulting a shared ProbeCache so that the same
// (directory, include) pair is probed against the filesystem at most once
// per build invocation.
//
// A Resolver is scoped to one build invocation, like its cache. It is safe
// for concurrent use: many source files are resolved in parallel and the
// cache tolerates concurrent first-probes of the same key.
type Resolver struct {
	includeDirs []string
	cache       *ProbeCache
}

// NewResolver creates a Resolver over the given include directories and
// probe cache. The directories are searched in the given order.
func NewResolver(includeDirs []string, cache *ProbeCache) *Resolver {
	return &Resolver{
		includeDirs: includeDirs,
		cache:       cache,
	}
}

// ResolveIncludes resolves one source file's directive set and returns the
// accumulated result: resolved dependencies plus every location probed.
//
// Quoted includes search the source file's directory first, then the
// configured directories; system includes search only the configured
// directories. The first directory containing the include wins and no later
// directory is probed for it. A directive with no match anywhere simply
// contributes no resolved entry.
//
// Macro includes cannot be resolved without macro expansion. If the set
// contains any, only the FIRST is recorded, as an unknown entry; the rest
// contribute nothing to either resolved or checked sets. The unknown entry
// tells the consumer the dependency set is incomplete and the source file
// must not be treated as confidently cacheable.
func (r *Resolver) ResolveIncludes(sourceFile string, directives *domain.IncludeDirectives) *domain.ResolvedSourceIncludes {
	acc := domain.NewResolvedSourceIncludes()

	quotedPath := QuotedSearchPath(sourceFile, r.includeDirs)
	for _, inc := range directives.QuotedIncludes() {
		r.searchForDependency(quotedPath, inc.Value, acc)
	}

	systemPath := SystemSearchPath(r.includeDirs)
	for _, inc := range directives.SystemIncludes() {
		r.searchForDependency(systemPath, inc.Value, acc)
	}

	if macros := directives.MacroIncludes(); len(macros) > 0 {
		acc.RecordResolved(macros[0].Value, "")
	}

	return acc
}

// searchForDependency walks the search path in order for one include string.
// Every candidate is recorded as checked, cached or not: a later build needs
// the failed probes to detect a header appearing earlier in the path.
func (r *Resolver) searchForDependency(searchPath []string, include string, acc *domain.ResolvedSourceIncludes) {
	for _, dir := range searchPath {
		candidate := filepath.Join(dir, include)
		acc.RecordChecked(candidate)

		if r.cache.Probe(dir, include) {
			acc.RecordResolved(include, canonicalize(candidate))
			return
		}
	}
}

// canonicalize normalizes a resolved path to its real absolute form. The
// probe already established the file exists, so a canonicalization failure
// must not turn the hit into a miss: on error the cleaned absolute path is
// kept as-is.
func canonicalize(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}
