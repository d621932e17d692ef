package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rzbill/ulidd/pkg/ulid"
	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration loaded from file/env.
type Config struct {
	Generator GeneratorConfig `json:"generator" yaml:"generator" envPrefix:"GENERATOR_"`
	Ledger    LedgerConfig    `json:"ledger" yaml:"ledger" envPrefix:"LEDGER_"`
	Log       LogConfig       `json:"log" yaml:"log" envPrefix:"LOG_"`
}

// GeneratorConfig tunes ID generation endpoints.
type GeneratorConfig struct {
	// DefaultMode applies when a request does not name a mode: strict|permissive.
	DefaultMode string `json:"defaultMode" yaml:"defaultMode" env:"DEFAULT_MODE"`
	// MaxBatch caps the count of a single generate request.
	MaxBatch int `json:"maxBatch" yaml:"maxBatch" env:"MAX_BATCH"`
}

// LedgerConfig controls the optional issuance ledger.
type LedgerConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled" env:"ENABLED"`
	// RetentionMs trims entries older than now-RetentionMs; 0 keeps everything.
	RetentionMs int64 `json:"retentionMs" yaml:"retentionMs" env:"RETENTION_MS"`
	// TrimIntervalMs is how often retention runs.
	TrimIntervalMs int64 `json:"trimIntervalMs" yaml:"trimIntervalMs" env:"TRIM_INTERVAL_MS"`
}

// LogConfig selects level and format for the process logger.
type LogConfig struct {
	Level  string `json:"level" yaml:"level" env:"LEVEL"`
	Format string `json:"format" yaml:"format" env:"FORMAT"`
}

// Default returns built-in defaults.
func Default() Config {
	return Config{
		Generator: GeneratorConfig{
			DefaultMode: ulid.Strict.String(),
			MaxBatch:    1000,
		},
		Ledger: LedgerConfig{
			TrimIntervalMs: 60_000,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads configuration from a JSON or YAML file (by extension). If path is empty, returns defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	return cfg, nil
}

// Mode returns the parsed default generation mode.
func (c Config) Mode() ulid.Mode {
	m, err := ulid.ParseMode(c.Generator.DefaultMode)
	if err != nil {
		return ulid.Strict
	}
	return m
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if _, err := ulid.ParseMode(c.Generator.DefaultMode); err != nil {
		return fmt.Errorf("config: generator.defaultMode: %w", err)
	}
	if c.Generator.MaxBatch <= 0 {
		return fmt.Errorf("config: generator.maxBatch must be positive, got %d", c.Generator.MaxBatch)
	}
	if c.Ledger.RetentionMs < 0 {
		return fmt.Errorf("config: ledger.retentionMs must not be negative")
	}
	if c.Ledger.RetentionMs > 0 && c.Ledger.TrimIntervalMs <= 0 {
		return fmt.Errorf("config: ledger.trimIntervalMs must be positive when retention is set")
	}
	return nil
}
