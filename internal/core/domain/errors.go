package domain

import "go.trai.ch/zerr"

var (
	// ErrTargetAlreadyExists is returned when attempting to add a target with a name that already exists.
	ErrTargetAlreadyExists = zerr.New("target already exists")

	// ErrMissingDependency is returned when a target references a dependency that doesn't exist in the graph.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrCycleDetected is returned when a cycle is detected in the target dependency graph.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrTargetNotFound is returned when a requested target is not found in the graph.
	ErrTargetNotFound = zerr.New("target not found")

	// ErrNoTargetsSpecified is returned when no targets are specified for the build command.
	ErrNoTargetsSpecified = zerr.New("no targets specified")

	// ErrNoCompiler is returned when the configuration does not name a compiler command.
	ErrNoCompiler = zerr.New("no compiler configured")

	// ErrSourceNotFound is returned when a declared source pattern matches no files.
	ErrSourceNotFound = zerr.New("source not found")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrSourceParseFailed is returned when include directives cannot be extracted from a source file.
	ErrSourceParseFailed = zerr.New("failed to parse source file")

	// ErrBuildExecutionFailed is returned when the build execution fails.
	ErrBuildExecutionFailed = zerr.New("build execution failed")

	// ErrCompileFailed is returned when a compile step fails.
	ErrCompileFailed = zerr.New("compile failed")

	// ErrLinkFailed is returned when a link step fails.
	ErrLinkFailed = zerr.New("link failed")

	// ErrStoreReadFailed is returned when the dependency store cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read dependency store")

	// ErrStoreWriteFailed is returned when the dependency store cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write dependency store")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")
)
