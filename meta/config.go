package meta

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Fallback selects how the agent picks a move when the hotspot router has
// nothing legal to offer.
type Fallback string

const (
	FallbackRandom Fallback = "random"
	FallbackFirst  Fallback = "first"
)

// Config holds the runtime settings of the CLI.
type Config struct {
	LogLevel   string   `yaml:"log_level"`
	Pretty     bool     `yaml:"pretty"`
	Seed       uint64   `yaml:"seed"`
	Fallback   Fallback `yaml:"fallback"`
	MetricsDir string   `yaml:"metrics_dir"`
}

func DefaultConfig() Config {
	return Config{
		LogLevel:   "info",
		Pretty:     true,
		Seed:       1,
		Fallback:   FallbackRandom,
		MetricsDir: "experiments/replay",
	}
}

// LoadConfig reads a YAML file over the defaults. An empty path returns the
// defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML over the defaults, rejecting unknown keys.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Fallback {
	case FallbackRandom, FallbackFirst:
	default:
		return fmt.Errorf("invalid fallback %q", c.Fallback)
	}
	switch c.LogLevel {
	case "trace", "debug", "info", "warn", "error", "disabled":
	default:
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return nil
}
