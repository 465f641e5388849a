package fs

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.trai.ch/cbuild/internal/core/domain"
	"go.trai.ch/cbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourceResolver = (*SourceResolver)(nil)

// sourceExtensions lists the file extensions treated as compilable
// translation units when a pattern names a directory.
var sourceExtensions = map[string]struct{}{
	".c":   {},
	".cc":  {},
	".cpp": {},
	".cxx": {},
}

// SourceResolver expands the source patterns of a target into concrete file
// paths. A pattern may be a literal file, a glob, or a directory that is
// walked recursively for C/C++ translation units.
type SourceResolver struct {
	walker *Walker
}

// NewSourceResolver creates a new SourceResolver.
func NewSourceResolver(walker *Walker) *SourceResolver {
	return &SourceResolver{walker: walker}
}

// ResolveSources expands patterns relative to root and returns the matched
// source files as a sorted, deduplicated list of absolute paths.
func (r *SourceResolver) ResolveSources(patterns []string, root string) ([]string, error) {
	seen := make(map[string]struct{})
	var sources []string

	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		sources = append(sources, path)
	}

	for _, pattern := range patterns {
		resolved, err := r.expandPattern(pattern, root)
		if err != nil {
			return nil, err
		}
		for _, path := range resolved {
			add(path)
		}
	}

	sort.Strings(sources)
	return sources, nil
}

func (r *SourceResolver) expandPattern(pattern, root string) ([]string, error) {
	abs := pattern
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(root, pattern)
	}

	info, err := os.Stat(abs)
	switch {
	case err == nil && info.IsDir():
		return r.collectDir(abs), nil
	case err == nil:
		return []string{abs}, nil
	}

	// Not an existing path; treat it as a glob.
	matches, err := filepath.Glob(abs)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "invalid source pattern"), "pattern", pattern)
	}
	if len(matches) == 0 {
		return nil, zerr.With(domain.ErrSourceNotFound, "pattern", pattern)
	}

	var files []string
	for _, match := range matches {
		matchInfo, err := os.Stat(match)
		if err != nil {
			continue
		}
		if matchInfo.IsDir() {
			files = append(files, r.collectDir(match)...)
			continue
		}
		files = append(files, match)
	}
	return files, nil
}

func (r *SourceResolver) collectDir(dir string) []string {
	var files []string
	for path := range r.walker.WalkFiles(dir, nil) {
		ext := strings.ToLower(filepath.Ext(path))
		if _, ok := sourceExtensions[ext]; ok {
			files = append(files, path)
		}
	}
	return files
}
