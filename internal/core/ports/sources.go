package ports

// SourceResolver defines the interface for expanding a target's source
// patterns to concrete file paths.
//
//go:generate go run go.uber.org/mock/mockgen -source=sources.go -destination=mocks/mock_sources.go -package=mocks
type SourceResolver interface {
	// ResolveSources resolves the given patterns (literal paths, globs, or
	// directories) to a sorted, deduplicated list of source files.
	ResolveSources(patterns []string, root string) ([]string, error)
}
