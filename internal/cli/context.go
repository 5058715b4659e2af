package cli

import (
	"context"

	"github.com/mrz1836/seal/internal/config"
)

type configKey struct{}

// withConfig stores the loaded configuration on ctx.
func withConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// configFromContext returns the configuration stored by the root command,
// or the defaults when commands run without it (tests).
func configFromContext(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok && cfg != nil {
		return cfg
	}
	return config.DefaultConfig()
}

// loadConfig loads the layered configuration, or only path when --config is set.
func loadConfig(ctx context.Context, path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(ctx, path)
	}
	return config.Load(ctx)
}
