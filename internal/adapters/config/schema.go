package config

// Declaration represents the structure of the stitch.yaml (or stitch.toml) file.
type Declaration struct {
	Version        string             `yaml:"version"        toml:"version"`
	Default        string             `yaml:"default"        toml:"default"`
	Configurations []ConfigurationDTO `yaml:"configurations" toml:"configurations"`
}

// ConfigurationDTO represents one named configuration.
type ConfigurationDTO struct {
	Name string `yaml:"name" toml:"name"`
	// PathsFrom names an earlier configuration whose paths are copied first.
	PathsFrom string `yaml:"pathsFrom" toml:"pathsFrom"`
	// UsePaths restricts PathsFrom to the listed names.
	UsePaths []string `yaml:"usePaths" toml:"usePaths"`
	// Paths is a list of single-entry maps so declaration order survives decoding.
	Paths  []map[string]string `yaml:"paths"  toml:"paths"`
	Groups []GroupDTO          `yaml:"groups" toml:"groups"`
	Tasks  []string            `yaml:"tasks"  toml:"tasks"`
}

// GroupDTO represents a file group definition.
type GroupDTO struct {
	Name      string   `yaml:"name"      toml:"name"`
	Directory string   `yaml:"directory" toml:"directory"`
	Output    string   `yaml:"output"    toml:"output"`
	Files     []string `yaml:"files"     toml:"files"`
}
