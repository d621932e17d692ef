// Package config provides loading and environment overlay for ulidd
// configuration. It exposes a Default() baseline, JSON/YAML file loading and
// a ULIDD_* environment overlay.
//
// Example:
//
//	cfg, err := config.Load("/etc/ulidd.yaml")
//	if err != nil { /* handle */ }
//	if err := config.FromEnv(&cfg); err != nil { /* handle */ }
//	if err := cfg.Validate(); err != nil { /* handle */ }
//	rt, _ := runtime.Open(runtime.Options{DataDir: config.DefaultDataDir(), Config: cfg})
package config
