// Package config loads and persists the YAML configuration file.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/textact/textact/assets"
	"github.com/textact/textact/internal/domain"
	"github.com/textact/textact/internal/pkg/filesystem"
	"github.com/textact/textact/internal/ports"
)

// FileLoader loads YAML configuration from ~/.textact/config.yaml
// (overridable via TEXTACT_CONFIG).
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader. A non-empty path pins the config file
// location; otherwise TEXTACT_CONFIG and the home directory decide.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// envOverrides apply on top of the file for a single invocation.
// They are never written back.
type envOverrides struct {
	DefaultModel string `env:"TEXTACT_MODEL"`
	LogBackend   string `env:"TEXTACT_LOG_BACKEND"`
	NoCache      bool   `env:"TEXTACT_NO_CACHE"`
}

// Load implements ports.ConfigProvider. On first run the embedded default
// config is written to disk verbatim, comments included.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.resolvePath()
	if err := ensureConfigDir(path); err != nil {
		return domain.Config{}, fmt.Errorf("ensure config dir: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if err := os.WriteFile(path, assets.DefaultConfigYAML, domain.SecureFilePermissions); err != nil {
				return domain.Config{}, fmt.Errorf("write default config: %w", err)
			}
			data = assets.DefaultConfigYAML
		} else {
			return domain.Config{}, err
		}
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parse %s: %w", path, err)
	}

	return applyEnv(hydrateDefaults(cfg))
}

// Save implements ports.ConfigWriter. Hand-written comments in the file do
// not survive a save.
func (l *FileLoader) Save(_ context.Context, cfg domain.Config) error {
	path := l.resolvePath()
	if err := ensureConfigDir(path); err != nil {
		return fmt.Errorf("ensure config dir: %w", err)
	}
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, domain.SecureFilePermissions)
}

// Reset overwrites the config with the embedded defaults and returns the
// default snapshot.
func (l *FileLoader) Reset() (domain.Config, error) {
	path := l.resolvePath()
	if err := ensureConfigDir(path); err != nil {
		return domain.Config{}, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := os.WriteFile(path, assets.DefaultConfigYAML, domain.SecureFilePermissions); err != nil {
		return domain.Config{}, fmt.Errorf("write default config: %w", err)
	}
	return hydrateDefaults(defaultConfig()), nil
}

// Path returns the resolved config file path.
func (l *FileLoader) Path() string {
	return l.resolvePath()
}

func (l *FileLoader) resolvePath() string {
	if l.overridePath != "" {
		return l.overridePath
	}
	if custom := os.Getenv("TEXTACT_CONFIG"); custom != "" {
		return expandPath(custom)
	}
	return filepath.Join(filesystem.AppDir(), "config.yaml")
}

func ensureConfigDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions)
}

func applyEnv(cfg domain.Config) (domain.Config, error) {
	var overrides envOverrides
	if err := env.Parse(&overrides); err != nil {
		return domain.Config{}, fmt.Errorf("parse environment overrides: %w", err)
	}
	if overrides.DefaultModel != "" {
		cfg.Preferences.DefaultModel = overrides.DefaultModel
	}
	if overrides.LogBackend != "" {
		cfg.Preferences.LogBackend = overrides.LogBackend
	}
	if overrides.NoCache {
		cfg.Preferences.CacheEnabled = false
	}
	return cfg, nil
}

func defaultConfig() domain.Config {
	var cfg domain.Config
	if err := yaml.Unmarshal(assets.DefaultConfigYAML, &cfg); err != nil {
		// Minimal fallback if the embedded YAML is ever corrupted.
		return domain.Config{
			ConfigFormatVersion: "1",
			Preferences: domain.Preferences{
				DefaultModel:   "claude-sonnet",
				CacheEnabled:   true,
				LogBackend:     domain.LogBackendFile,
				TimeoutSeconds: domain.DefaultRequestTimeoutSeconds,
			},
			Models: []domain.ModelDefinition{
				{
					Name:       "claude-sonnet",
					Kind:       domain.ProviderAnthropic,
					ModelID:    "claude-sonnet-4-5",
					MaxTokens:  domain.DefaultMaxTokens,
					AuthEnvVar: "ANTHROPIC_API_KEY",
				},
			},
		}
	}
	return cfg
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.ConfigFormatVersion == "" {
		cfg.ConfigFormatVersion = "1"
	}
	if cfg.Preferences.DefaultModel == "" && len(cfg.Models) > 0 {
		cfg.Preferences.DefaultModel = cfg.Models[0].Name
	}
	if cfg.Preferences.TimeoutSeconds <= 0 {
		cfg.Preferences.TimeoutSeconds = domain.DefaultRequestTimeoutSeconds
	}
	if cfg.Preferences.LogBackend == "" {
		cfg.Preferences.LogBackend = domain.LogBackendFile
	}
	return cfg
}

func expandPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if len(path) > 1 && path[:2] == "~/" {
		return filepath.Join(filesystem.UserHomeDir(), path[2:])
	}
	return filepath.Clean(path)
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
var _ ports.ConfigWriter = (*FileLoader)(nil)
