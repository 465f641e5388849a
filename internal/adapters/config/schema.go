package config

// ConfigFile represents the structure of the cbuild.yaml configuration file.
type ConfigFile struct {
	Version     string               `yaml:"version"`
	Compiler    []string             `yaml:"compiler"`
	IncludeDirs []string             `yaml:"include_dirs"`
	Targets     map[string]TargetDTO `yaml:"targets"`
}

// TargetDTO represents a target definition in the configuration.
type TargetDTO struct {
	Sources     []string          `yaml:"sources"`
	Output      string            `yaml:"output"`
	Flags       []string          `yaml:"flags"`
	DependsOn   []string          `yaml:"dependsOn"`
	Environment map[string]string `yaml:"environment"`
}
