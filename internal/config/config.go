// Package config assembles solver run settings from a YAML file, TOWERS_*
// environment variables and command-line flags, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/signalsfoundry/tower-placement/core"
	"github.com/signalsfoundry/tower-placement/internal/logging"
	"github.com/signalsfoundry/tower-placement/internal/observability"
)

// ErrInvalid wraps every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// LogConfig is the file form of logging.Config.
type LogConfig struct {
	Level     string `yaml:"level"`
	Format    string `yaml:"format"`
	AddSource bool   `yaml:"add_source"`
}

// Logging converts to the logging package's config. Output is left to the
// logger's default.
func (c LogConfig) Logging() logging.Config {
	return logging.Config{Level: c.Level, Format: c.Format, AddSource: c.AddSource}
}

// Config holds everything a solve run needs besides its input and output.
type Config struct {
	Solver      string `yaml:"solver"`
	Seed        int64  `yaml:"seed"`
	Workers     int    `yaml:"workers"`
	TopKDivisor int    `yaml:"top_k_divisor"`

	Log     LogConfig                   `yaml:"log"`
	Tracing observability.TracingConfig `yaml:"tracing"`
	Metrics observability.ExportConfig  `yaml:"metrics"`
}

// Default returns the greedy solver with seed 0, one worker and the default
// shortlist divisor. Tracing and metrics export are off.
func Default() Config {
	return Config{
		Solver:      "greedy",
		Workers:     1,
		TopKDivisor: core.DefaultTopKDivisor,
		Log:         LogConfig{Level: "info", Format: "text"},
		Tracing:     observability.DefaultTracingConfig(),
	}
}

// Load starts from Default, overlays the YAML file at path when path is not
// empty, then overlays the environment.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config YAML %s: %w", path, err)
		}
	}
	return cfg.ApplyEnv()
}

// ApplyEnv overlays TOWERS_SOLVER, TOWERS_SEED, TOWERS_WORKERS,
// TOWERS_TOP_K_DIVISOR, LOG_LEVEL and LOG_FORMAT, plus the tracing and
// metrics variables. Numeric variables that do not parse are an error.
func (c Config) ApplyEnv() (Config, error) {
	if v := os.Getenv("TOWERS_SOLVER"); v != "" {
		c.Solver = v
	}
	if v := os.Getenv("TOWERS_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("TOWERS_SEED: %w", err)
		}
		c.Seed = seed
	}
	if v := os.Getenv("TOWERS_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("TOWERS_WORKERS: %w", err)
		}
		c.Workers = n
	}
	if v := os.Getenv("TOWERS_TOP_K_DIVISOR"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("TOWERS_TOP_K_DIVISOR: %w", err)
		}
		c.TopKDivisor = n
	}
	env := logging.ConfigFromEnv()
	if env.Level != "" {
		c.Log.Level = env.Level
	}
	if env.Format != "" {
		c.Log.Format = env.Format
	}
	c.Tracing = c.Tracing.ApplyEnv()
	c.Metrics = c.Metrics.ApplyEnv()
	return c, nil
}

// Validate rejects settings no solver run can use.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Solver) == "" {
		return fmt.Errorf("%w: solver must be set", ErrInvalid)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be >= 1, got %d", ErrInvalid, c.Workers)
	}
	if c.TopKDivisor < 1 {
		return fmt.Errorf("%w: top_k_divisor must be >= 1, got %d", ErrInvalid, c.TopKDivisor)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: log format must be text or json, got %q", ErrInvalid, c.Log.Format)
	}
	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		return fmt.Errorf("%w: tracing sample_ratio must be in [0,1], got %v", ErrInvalid, c.Tracing.SampleRatio)
	}
	return nil
}
