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

// Load builds a Config by layering defaults, an optional file, and env
// vars. Order of precedence (low -> high):
//  1. defaults (New)
//  2. file (YAML) if GRIDIRON_CONFIG is set
//  3. env (prefix GRIDIRON_)
func Load(ctx context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("GRIDIRON_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Env keys like GRIDIRON_NUM_TEAMS map to num_teams; underscores are
	// preserved to match the koanf tags on the struct.
	envProvider := env.Provider("GRIDIRON_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "gridiron_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate rejects configurations the engine cannot run against. League
// problems are fatal here rather than degraded later.
func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.NumTeams <= 0:
		return fmt.Errorf("%w: num_teams must be positive", ErrInvalidConfig)
	case len(c.StarterPositions) == 0:
		return fmt.Errorf("%w: starter_positions must not be empty", ErrInvalidConfig)
	}
	if _, err := c.Slots(); err != nil {
		return err
	}
	return nil
}
