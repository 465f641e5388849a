// Package config provides the configuration loader for cbuild.
package config

import (
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/cbuild/internal/core/domain"
	"go.trai.ch/cbuild/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file. The config file is
// discovered by walking up from the working directory, so cbuild can be
// invoked from anywhere inside a project.
type Loader struct {
	Filename string
	Logger   ports.Logger
}

// NewLoader creates a Loader for the default config file name.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{Filename: domain.ConfigFileName, Logger: log}
}

// Load discovers the config file starting at cwd and returns the parsed
// project. The project root is the directory containing the config file.
func (l *Loader) Load(cwd string) (*domain.Project, error) {
	path, err := l.discover(cwd)
	if err != nil {
		return nil, err
	}
	return l.loadFile(path)
}

// discover walks up from cwd until it finds the config file.
func (l *Loader) discover(cwd string) (string, error) {
	dir, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.Wrap(err, "failed to resolve working directory")
	}

	for {
		candidate := filepath.Join(dir, l.Filename)
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", zerr.With(zerr.With(domain.ErrConfigReadFailed, "filename", l.Filename), "cwd", cwd)
		}
		dir = parent
	}
}

func (l *Loader) loadFile(path string) (*domain.Project, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is discovered from the user's working directory
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}

	var file ConfigFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", path)
	}

	root := filepath.Dir(path)
	project, err := buildProject(&file, root)
	if err != nil {
		return nil, err
	}

	if l.Logger != nil {
		l.Logger.Info("loaded project configuration",
			"path", path,
			"targets", project.Graph.Len(),
			"include_dirs", len(project.IncludeDirs))
	}

	return project, nil
}

// buildProject converts the parsed file into the domain model. Include
// directories are resolved to absolute paths relative to root, preserving
// their configured order.
func buildProject(file *ConfigFile, root string) (*domain.Project, error) {
	if len(file.Compiler) == 0 {
		return nil, zerr.With(domain.ErrNoCompiler, "root", root)
	}

	includeDirs := make([]string, len(file.IncludeDirs))
	for i, dir := range file.IncludeDirs {
		if filepath.IsAbs(dir) {
			includeDirs[i] = filepath.Clean(dir)
			continue
		}
		includeDirs[i] = filepath.Join(root, dir)
	}

	g := domain.NewGraph()
	for name, dto := range file.Targets {
		if len(dto.Sources) == 0 {
			return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, "target has no sources"), "target", name)
		}

		target := &domain.Target{
			Name:         domain.NewInternedString(name),
			Sources:      canonicalizeStrings(dto.Sources),
			Output:       domain.NewInternedString(dto.Output),
			Flags:        dto.Flags,
			Dependencies: domain.NewInternedStrings(dto.DependsOn),
			Environment:  dto.Environment,
		}
		if err := g.AddTarget(target); err != nil {
			return nil, err
		}
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}

	return &domain.Project{
		Root:        root,
		Compiler:    file.Compiler,
		IncludeDirs: includeDirs,
		Graph:       g,
	}, nil
}

// canonicalizeStrings sorts, deduplicates and interns a string slice.
func canonicalizeStrings(strs []string) []domain.InternedString {
	if len(strs) == 0 {
		return nil
	}

	sorted := make([]string, len(strs))
	copy(sorted, strs)
	slices.Sort(sorted)

	unique := slices.Compact(sorted)
	res := make([]domain.InternedString, len(unique))
	for i, s := range unique {
		res[i] = domain.NewInternedString(s)
	}
	return res
}
