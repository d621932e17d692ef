package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every environment variable read by FromEnv.
const EnvPrefix = "ULIDD_"

// FromEnv overlays ULIDD_* environment variables onto cfg, e.g.
// ULIDD_GENERATOR_MAX_BATCH or ULIDD_LEDGER_ENABLED. Unset variables leave
// the existing values alone.
func FromEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("config: environment: %w", err)
	}
	return nil
}
