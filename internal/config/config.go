// Package config loads the optional snapshot configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultSampleWindowMS = 1000
	DefaultRootPath       = "/"
)

// Config controls one snapshot run. All fields are optional.
type Config struct {
	SampleWindowMS int    `yaml:"sample_window_ms"`
	RootPath       string `yaml:"root_path"`
}

func Default() *Config {
	return &Config{
		SampleWindowMS: DefaultSampleWindowMS,
		RootPath:       DefaultRootPath,
	}
}

// DefaultPath returns ~/.healthsnap.yaml, or "" when no home directory is
// known.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".healthsnap.yaml")
}

// Load reads the config at path. A missing file is not an error; defaults are
// returned. Zero values fall back to defaults so a partial file stays valid.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.SampleWindowMS == 0 {
		cfg.SampleWindowMS = DefaultSampleWindowMS
	}
	if cfg.RootPath == "" {
		cfg.RootPath = DefaultRootPath
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.SampleWindowMS < 0 {
		return fmt.Errorf("sample_window_ms must not be negative, got %d", c.SampleWindowMS)
	}
	return nil
}

// Window is the CPU sampling window as a duration.
func (c *Config) Window() time.Duration {
	return time.Duration(c.SampleWindowMS) * time.Millisecond
}
