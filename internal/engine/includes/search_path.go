package includes

import "path/filepath"

// QuotedSearchPath returns the directory list searched for a quoted include
// of sourceFile: the source file's own directory, then the configured
// include directories in order. Pure function; includeDirs may be empty.
func QuotedSearchPath(sourceFile string, includeDirs []string) []string {
	path := make([]string, 0, len(includeDirs)+1)
	path = append(path, filepath.Dir(sourceFile))
	path = append(path, includeDirs...)
	return path
}

// SystemSearchPath returns the directory list searched for a system include:
// the configured include directories, unchanged. The copy keeps callers from
// mutating the configured slice through the result.
func SystemSearchPath(includeDirs []string) []string {
	path := make([]string, len(includeDirs))
	copy(path, includeDirs)
	return path
}
