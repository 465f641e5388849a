package domain

// Target represents one buildable unit: a set of C/C++ sources compiled to
// objects and linked into an output. It uses InternedString for fields that
// repeat across targets to save memory.
type Target struct {
	Name         InternedString
	Sources      []InternedString
	Output       InternedString
	Flags        []string
	Dependencies []InternedString
	Environment  map[string]string
}

// Project is the fully loaded build configuration: the compiler command,
// the ordered global include search directories (absolute paths), and the
// target graph.
type Project struct {
	// Root is the absolute path of the project root directory.
	Root string
	// Compiler is the compiler command and any leading arguments.
	Compiler []string
	// IncludeDirs are the configured include search directories, in the
	// order they are searched. Absolute paths.
	IncludeDirs []string
	// Graph holds the targets and their dependency edges.
	Graph *Graph
}

// CompileStep is one compiler invocation scheduled for a target: compiling a
// single source to an object, or linking objects into the target output.
type CompileStep struct {
	Target     InternedString
	Source     string
	Object     string
	Command    []string
	WorkingDir string
}
