// Package config reads the sentencing regime selection from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/dshills/dosimetria/internal/dosimetry"
	"github.com/dshills/dosimetria/internal/profile"
)

// Config selects a built-in profile and optional overrides.
type Config struct {
	Profile    string `env:"DOSIMETRIA_PROFILE" envDefault:"cp-br"`
	FinePolicy string `env:"DOSIMETRIA_FINE_POLICY"`
}

// Load parses the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config.Load: parse env: %w", err)
	}
	return cfg, nil
}

// Resolve loads the selected profile and applies the overrides.
func Resolve(cfg Config) (*profile.Profile, dosimetry.Config, error) {
	name := cfg.Profile
	if name == "" {
		name = profile.Default
	}
	p, err := profile.LoadBuiltin(name)
	if err != nil {
		return nil, dosimetry.Config{}, fmt.Errorf("config.Resolve: %w", err)
	}
	if cfg.FinePolicy != "" {
		p.Fine.Policy = dosimetry.FinePolicy(cfg.FinePolicy)
	}
	dc, err := p.Config()
	if err != nil {
		return nil, dosimetry.Config{}, fmt.Errorf("config.Resolve: %w", err)
	}
	return p, dc, nil
}
