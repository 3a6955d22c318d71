// Package config provides the project configuration loader for tlenv.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/tlenv/internal/core/domain"
	"go.trai.ch/tlenv/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file searched for upward from the
// working directory.
const FileName = "tlenv.yaml"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// configFile represents the structure of the tlenv.yaml file.
type configFile struct {
	Dependencies []string `yaml:"dependencies"`
}

// Load searches startDir and its parents for tlenv.yaml and returns the
// parsed, canonicalized configuration rooted at the directory the file was
// found in.
func (l *Loader) Load(startDir string) (domain.Config, error) {
	absStart, err := filepath.Abs(startDir)
	if err != nil {
		return domain.Config{}, zerr.Wrap(err, "failed to resolve working directory")
	}

	configPath, err := findConfigFile(absStart)
	if err != nil {
		return domain.Config{}, err
	}

	data, err := os.ReadFile(configPath) //nolint:gosec // Path is discovered under the user's tree
	if err != nil {
		return domain.Config{}, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", configPath)
	}

	var file configFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Config{}, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", configPath)
	}

	if len(file.Dependencies) == 0 {
		l.Logger.Warn("no dependencies declared in " + FileName)
	}

	return domain.NewConfig(filepath.Dir(configPath), file.Dependencies), nil
}

// findConfigFile walks from dir toward the filesystem root until it finds
// the configuration file.
func findConfigFile(dir string) (string, error) {
	current := dir
	for {
		candidate := filepath.Join(current, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", zerr.With(domain.ErrConfigNotFound, "cwd", dir)
		}
		current = parent
	}
}
