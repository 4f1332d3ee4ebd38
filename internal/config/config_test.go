package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/signalsfoundry/tower-placement/core"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "towers.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if cfg.Solver != "greedy" || cfg.Workers != 1 || cfg.TopKDivisor != core.DefaultTopKDivisor {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Tracing.Enabled {
		t.Fatalf("tracing should be off by default")
	}
}

func TestLoadYAMLOverlaysDefaults(t *testing.T) {
	path := writeFile(t, `
solver: naive
seed: 42
workers: 4
log:
  level: debug
  format: json
tracing:
  enabled: true
  exporter: otlp
  endpoint: collector:4317
metrics:
  textfile: /tmp/towers.prom
  job: nightly
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "naive", cfg.Solver)
	require.EqualValues(t, 42, cfg.Seed)
	require.Equal(t, 4, cfg.Workers)
	require.Equal(t, core.DefaultTopKDivisor, cfg.TopKDivisor, "unset keys keep defaults")
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "json", cfg.Log.Format)
	require.True(t, cfg.Tracing.Enabled)
	require.Equal(t, "otlp", cfg.Tracing.Exporter)
	require.Equal(t, "collector:4317", cfg.Tracing.Endpoint)
	require.Equal(t, "towers", cfg.Tracing.ServiceName)
	require.Equal(t, "/tmp/towers.prom", cfg.Metrics.TextfilePath)
	require.Equal(t, "nightly", cfg.Metrics.Job)
	require.NoError(t, cfg.Validate())
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "solver: naive\nworkers: 2\n")
	t.Setenv("TOWERS_SOLVER", "greedy")
	t.Setenv("TOWERS_SEED", "7")
	t.Setenv("TOWERS_TOP_K_DIVISOR", "5")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("TOWERS_METRICS_PUSH_URL", "http://pushgateway:9091")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "greedy", cfg.Solver)
	require.EqualValues(t, 7, cfg.Seed)
	require.Equal(t, 2, cfg.Workers)
	require.Equal(t, 5, cfg.TopKDivisor)
	require.Equal(t, "warn", cfg.Log.Level)
	require.Equal(t, "http://pushgateway:9091", cfg.Metrics.PushURL)
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if _, err := Load(writeFile(t, "workers: [1, 2]\n")); err == nil {
		t.Fatalf("expected error for malformed YAML")
	}
	t.Setenv("TOWERS_WORKERS", "many")
	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for non-numeric TOWERS_WORKERS")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"blank solver", func(c *Config) { c.Solver = " " }},
		{"zero workers", func(c *Config) { c.Workers = 0 }},
		{"zero divisor", func(c *Config) { c.TopKDivisor = 0 }},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }},
		{"bad sample ratio", func(c *Config) { c.Tracing.SampleRatio = 1.5 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Fatalf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestLogConfigConversion(t *testing.T) {
	got := LogConfig{Level: "debug", Format: "json", AddSource: true}.Logging()
	if got.Level != "debug" || got.Format != "json" || !got.AddSource || got.Output != nil {
		t.Fatalf("Logging() = %+v", got)
	}
}
