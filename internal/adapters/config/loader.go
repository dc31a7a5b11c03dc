// Package config provides the declaration loader for stitch.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the only declaration schema version understood by the loader.
const SupportedVersion = "1"

// FileNames are the declaration file names looked up when Load is given a directory.
var FileNames = []string{"stitch.yaml", "stitch.yml", "stitch.toml"}

var placeholderRe = regexp.MustCompile(`\{[^{}]+\}`)

// Loader implements ports.ConfigLoader for YAML and TOML declaration files.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the declaration at path and returns the registry it declares.
// If path is a directory, it and its parents are searched for one of FileNames.
func (l *Loader) Load(path string) (*domain.Registry, error) {
	configPath, err := findDeclaration(path)
	if err != nil {
		return nil, err
	}

	decl, err := readDeclaration(configPath)
	if err != nil {
		return nil, err
	}

	return l.build(decl)
}

func findDeclaration(path string) (string, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", zerr.With(zerr.Wrap(domain.ErrDeclarationNotFound, "declaration path does not exist"), "path", path)
	}
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to stat declaration"), "path", path)
	}
	if !info.IsDir() {
		return path, nil
	}

	currentDir, err := filepath.Abs(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve declaration directory"), "path", path)
	}
	for {
		for _, name := range FileNames {
			candidate := filepath.Join(currentDir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(zerr.Wrap(domain.ErrDeclarationNotFound, "no declaration file found"), "dir", path)
}

func readDeclaration(path string) (*Declaration, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read declaration file")
	}

	var decl Declaration
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &decl)
	case ".toml":
		err = toml.Unmarshal(data, &decl)
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnsupportedFormat, "unknown declaration extension"), "path", path)
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse declaration file"), "path", path)
	}

	if decl.Version != "" && decl.Version != SupportedVersion {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnsupportedVersion, "cannot load declaration"), "version", decl.Version)
	}

	return &decl, nil
}

func (l *Loader) build(decl *Declaration) (*domain.Registry, error) {
	reg := domain.NewRegistry()
	reg.SetDefault(decl.Default)

	seen := make(map[string]bool, len(decl.Configurations))
	for i := range decl.Configurations {
		dto := &decl.Configurations[i]
		if dto.Name == "" {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidDeclaration, "configuration has no name"), "index", i)
		}
		if seen[dto.Name] {
			l.Logger.Warn(fmt.Sprintf("configuration %q is declared more than once, the last declaration wins", dto.Name))
		}
		seen[dto.Name] = true

		// Look up the source before Register, which may replace a same-named entry.
		var source *domain.Configuration
		if dto.PathsFrom != "" {
			var err error
			if source, err = reg.Use(dto.PathsFrom); err != nil {
				return nil, zerr.With(zerr.Wrap(err, "pathsFrom must name an earlier configuration"), "configuration", dto.Name)
			}
		}

		cfg := reg.Register(dto.Name)
		if source != nil {
			cfg.UsePaths(source, dto.UsePaths...)
		}

		if err := l.applyConfiguration(cfg, dto); err != nil {
			return nil, zerr.With(err, "configuration", dto.Name)
		}
	}

	return reg, nil
}

func (l *Loader) applyConfiguration(cfg *domain.Configuration, dto *ConfigurationDTO) error {
	for i, entry := range dto.Paths {
		if len(entry) != 1 {
			return zerr.With(zerr.Wrap(domain.ErrInvalidDeclaration, "each path entry must have exactly one name"), "path_index", i)
		}
		for name, template := range entry {
			cfg.SetPath(name, template)
			if value, _ := cfg.Path(name); placeholderRe.MatchString(value) {
				l.Logger.Warn(fmt.Sprintf("path %q of configuration %q has unresolved placeholders: %s", name, cfg.Name(), value))
			}
		}
	}

	for i := range dto.Groups {
		g := &dto.Groups[i]
		if g.Name == "" {
			return zerr.With(zerr.Wrap(domain.ErrInvalidDeclaration, "group has no name"), "group_index", i)
		}
		if len(g.Files) == 0 {
			l.Logger.Warn(fmt.Sprintf("group %q of configuration %q has no files and is ignored", g.Name, cfg.Name()))
			continue
		}
		cfg.AddGroup(g.Name, domain.Paths(g.Files...), domain.GroupOptions{
			Directory:  g.Directory,
			OutputFile: g.Output,
		})
	}

	cfg.AddTask(dto.Tasks...)
	return nil
}
