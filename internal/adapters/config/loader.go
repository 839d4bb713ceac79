// Package config provides the configuration loader for sniff.
package config

import (
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/sniff/internal/core/domain"
	"go.trai.ch/sniff/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load walks up from dir to the filesystem root and reads the first sniff.yaml found.
// Settings the file leaves out keep their defaults.
func (l *Loader) Load(dir string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	configPath, found := findConfiguration(dir)
	if !found {
		return cfg, nil
	}
	l.Logger.Debug("using configuration " + configPath)

	var file File
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	apply(cfg, &file, filepath.Dir(configPath))
	return cfg, nil
}

func findConfiguration(dir string) (string, bool) {
	currentDir, err := filepath.Abs(dir)
	if err != nil {
		currentDir = dir
	}

	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}

func apply(cfg *domain.Config, file *File, root string) {
	if file.Ignore != nil {
		cfg.Ignore = slices.Clone(*file.Ignore)
	}

	if e := file.Engine; e != nil {
		if len(e.Command) > 0 {
			cfg.Engine.Command = slices.Clone(e.Command)
		}
		if e.Verbosity != "" {
			cfg.Engine.Verbosity = e.Verbosity
		}
		cfg.Engine.Args = slices.Clone(e.Args)
		cfg.Engine.Env = e.Env
	}

	if file.Report != "" {
		cfg.Report = resolvePath(root, file.Report)
	}
}

// resolvePath anchors a relative path at the directory holding the configuration.
func resolvePath(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is found by walking up from the project directory
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}

var _ ports.ConfigLoader = (*Loader)(nil)
