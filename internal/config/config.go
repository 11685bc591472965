// Package config loads the govec configuration file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the CLI.
type Config struct {
	Debug  bool         `yaml:"debug"`
	Output OutputConfig `yaml:"output"`
	Watch  WatchConfig  `yaml:"watch"`
}

// OutputConfig controls how vectors and scalars are printed.
type OutputConfig struct {
	// Precision is the number of decimals; -1 prints the shortest exact form.
	Precision *int `yaml:"precision"`
	Labels    bool `yaml:"labels"`
}

// WatchConfig holds batch file watch settings.
type WatchConfig struct {
	// DebounceMS is the quiet period after a change; 0 re-runs immediately.
	DebounceMS *int `yaml:"debounce_ms"`
}

// Debounce returns the debounce interval as a duration.
func (w WatchConfig) Debounce() time.Duration {
	ms := DefaultDebounceMS
	if w.DebounceMS != nil {
		ms = *w.DebounceMS
	}
	return time.Duration(ms) * time.Millisecond
}

// PrecisionOrDefault returns the configured precision.
func (o OutputConfig) PrecisionOrDefault() int {
	if o.Precision != nil {
		return *o.Precision
	}
	return DefaultPrecision
}

// Default returns a config with every default applied.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// Load reads and parses the config file at path and applies defaults.
// An empty path returns the default config.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	ApplyDefaults(&cfg)
	return &cfg, nil
}

func (c *Config) validate() error {
	if p := c.Output.Precision; p != nil && *p < -1 {
		return fmt.Errorf("invalid output.precision %d: must be >= -1", *p)
	}
	if d := c.Watch.DebounceMS; d != nil && *d < 0 {
		return fmt.Errorf("invalid watch.debounce_ms %d: must be >= 0", *d)
	}
	return nil
}
