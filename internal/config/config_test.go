package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Generator.DefaultMode != "strict" {
		t.Fatalf("default mode should be strict, got %q", cfg.Generator.DefaultMode)
	}
	if cfg.Generator.MaxBatch != 1000 {
		t.Fatalf("max batch default")
	}
	if cfg.Ledger.Enabled {
		t.Fatalf("ledger should be off by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "ulidd.json")
	data := []byte(`{"generator":{"defaultMode":"permissive","maxBatch":50},"ledger":{"enabled":true,"retentionMs":3600000}}`)
	if err := os.WriteFile(file, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Generator.DefaultMode != "permissive" || cfg.Generator.MaxBatch != 50 {
		t.Fatalf("generator not loaded: %+v", cfg.Generator)
	}
	if !cfg.Ledger.Enabled || cfg.Ledger.RetentionMs != 3600000 {
		t.Fatalf("ledger not loaded: %+v", cfg.Ledger)
	}
	// untouched keys keep defaults
	if cfg.Ledger.TrimIntervalMs != 60_000 || cfg.Log.Format != "text" {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "ulidd.yaml")
	data := []byte("generator:\n  maxBatch: 7\nlog:\n  level: debug\n  format: json\n")
	if err := os.WriteFile(file, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Generator.MaxBatch != 7 || cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Fatalf("yaml not applied: %+v", cfg)
	}
	if cfg.Generator.DefaultMode != "strict" {
		t.Fatalf("default mode lost")
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	file := filepath.Join(t.TempDir(), "bad.json")
	_ = os.WriteFile(file, []byte("{"), 0644)
	if _, err := Load(file); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestFromEnv(t *testing.T) {
	cfg := Default()
	t.Setenv("ULIDD_GENERATOR_DEFAULT_MODE", "permissive")
	t.Setenv("ULIDD_GENERATOR_MAX_BATCH", "24")
	t.Setenv("ULIDD_LEDGER_ENABLED", "true")
	if err := FromEnv(&cfg); err != nil {
		t.Fatalf("from env: %v", err)
	}
	if cfg.Generator.DefaultMode != "permissive" {
		t.Fatalf("env override mode")
	}
	if cfg.Generator.MaxBatch != 24 {
		t.Fatalf("env override batch")
	}
	if !cfg.Ledger.Enabled {
		t.Fatalf("env override ledger")
	}
	if cfg.Log.Level != "info" {
		t.Fatalf("unset env var must not clobber defaults, got %q", cfg.Log.Level)
	}
}

func TestFromEnvBadValue(t *testing.T) {
	cfg := Default()
	t.Setenv("ULIDD_GENERATOR_MAX_BATCH", "many")
	if err := FromEnv(&cfg); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	cases := []func(*Config){
		func(c *Config) { c.Generator.DefaultMode = "fast" },
		func(c *Config) { c.Generator.MaxBatch = 0 },
		func(c *Config) { c.Ledger.RetentionMs = -1 },
		func(c *Config) { c.Ledger.RetentionMs = 10; c.Ledger.TrimIntervalMs = 0 },
	}
	for i, mutate := range cases {
		cfg := Default()
		mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("case %d: expected validation error", i)
		}
	}
}
