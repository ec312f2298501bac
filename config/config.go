// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/stacklok/gameshelf/env"
	httpval "github.com/stacklok/gameshelf/validation/http"
)

// EnvPrefix is the prefix of environment variables that override config file values.
const EnvPrefix = "GAMESHELF"

// EnvConfigPath names the environment variable holding an alternative config file path.
const EnvConfigPath = EnvPrefix + "_CONFIG"

// Config holds all gameshelf configuration.
type Config struct {
	// InstallDir is the root directory games are installed under.
	InstallDir string `mapstructure:"install_dir" yaml:"install_dir"`

	// DataDir holds the installed-game registry and the catalog token.
	DataDir string `mapstructure:"data_dir" yaml:"data_dir"`

	Catalog CatalogConfig `mapstructure:"catalog" yaml:"catalog"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
}

// CatalogConfig holds catalog service configuration.
type CatalogConfig struct {
	URL     string        `mapstructure:"url" yaml:"url"`
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
	Retries int           `mapstructure:"retries" yaml:"retries"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Debug bool `mapstructure:"debug" yaml:"debug"`
	// File enables a rotating JSON log file when set.
	File string `mapstructure:"file" yaml:"file,omitempty"`
}

// DefaultConfigPath returns the config file location using XDG base directory conventions.
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "gameshelf", "config.yaml")
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		InstallDir: filepath.Join(xdg.Home, "Games", "gameshelf"),
		DataDir:    filepath.Join(xdg.DataHome, "gameshelf"),
		Catalog: CatalogConfig{
			Timeout: 30 * time.Second,
			Retries: 3,
		},
	}
}

// RegistryDir returns the directory holding installed-game records.
func (c *Config) RegistryDir() string {
	return filepath.Join(c.DataDir, "installed")
}

// TokenPath returns the catalog token file path.
func (c *Config) TokenPath() string {
	return filepath.Join(c.DataDir, "token.json")
}

// Validate checks the configuration for values no command can work with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.InstallDir) == "" {
		return fmt.Errorf("install_dir cannot be empty")
	}
	if strings.TrimSpace(c.DataDir) == "" {
		return fmt.Errorf("data_dir cannot be empty")
	}
	if c.Catalog.URL != "" {
		if err := httpval.ValidateBaseURL(c.Catalog.URL); err != nil {
			return fmt.Errorf("catalog.url: %w", err)
		}
	}
	if c.Catalog.Timeout <= 0 {
		return fmt.Errorf("catalog.timeout must be positive, got %s", c.Catalog.Timeout)
	}
	if c.Catalog.Retries < 0 {
		return fmt.Errorf("catalog.retries cannot be negative, got %d", c.Catalog.Retries)
	}
	return nil
}

// Load reads configuration from path, or from the GAMESHELF_CONFIG file, or from
// DefaultConfigPath, in that order of preference, and applies GAMESHELF_*
// environment overrides (e.g. GAMESHELF_CATALOG_URL). All environment access
// goes through envReader. A missing default config file is not an error; a
// missing explicit one is.
// It returns the loaded configuration and the config file path that was consulted.
func Load(envReader env.Reader, path string) (*Config, string, error) {
	explicit := path != ""
	if !explicit {
		if p, ok := envReader.LookupEnv(EnvConfigPath); ok && p != "" {
			path, explicit = p, true
		} else {
			path = DefaultConfigPath()
		}
	}

	v := viper.New()
	setDefaults(v, Default())
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, path, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	applyEnvOverrides(v, envReader)

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, path, fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, path, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, path, nil
}

// Marshal encodes the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Save writes the configuration as YAML to path, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("install_dir", d.InstallDir)
	v.SetDefault("data_dir", d.DataDir)
	v.SetDefault("catalog.url", d.Catalog.URL)
	v.SetDefault("catalog.timeout", d.Catalog.Timeout)
	v.SetDefault("catalog.retries", d.Catalog.Retries)
	v.SetDefault("log.debug", d.Log.Debug)
	v.SetDefault("log.file", d.Log.File)
}

// applyEnvOverrides sets every known key from its GAMESHELF_<KEY> variable, with
// dots replaced by underscores (catalog.url is GAMESHELF_CATALOG_URL).
func applyEnvOverrides(v *viper.Viper, envReader env.Reader) {
	for _, key := range v.AllKeys() {
		name := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if val, ok := envReader.LookupEnv(name); ok {
			v.Set(key, val)
		}
	}
}
