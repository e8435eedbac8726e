package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if CREWSYNC_CONFIG is set
//  3. env (prefix CREWSYNC_)
func Load(ctx context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("CREWSYNC_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: CREWSYNC_ADDR, CREWSYNC_CREW_FILE, ...
	// Keys map to the koanf tags on the struct with underscores preserved.
	envProvider := env.Provider("CREWSYNC_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "crewsync_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.CrewFile == "":
		return fmt.Errorf("%w: crew_file must not be empty", ErrInvalidConfig)
	case c.FlightsFile == "":
		return fmt.Errorf("%w: flights_file must not be empty", ErrInvalidConfig)
	case len(c.Locations) == 0:
		return fmt.Errorf("%w: locations must not be empty", ErrInvalidConfig)
	case c.DefaultTopK < 1:
		return fmt.Errorf("%w: default_top_k must be positive", ErrInvalidConfig)
	case c.MaxTopK < c.DefaultTopK:
		return fmt.Errorf("%w: max_top_k must be >= default_top_k", ErrInvalidConfig)
	}
	return nil
}
