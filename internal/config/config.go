// Package config loads keeper settings from KEEPER_* environment variables.
// Command-line flags are applied on top by the CLI, then Validate is run
// again.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"

	"keeper-rounds/internal/keeper"
)

// EnvPrefix prefixes every environment variable, e.g. KEEPER_FA_ROUND.
const EnvPrefix = "KEEPER"

// Config holds the keeper rules and runtime options.
type Config struct {
	SubRounds         int `envconfig:"SUB_ROUNDS" default:"3" validate:"gte=0"`
	FARound           int `envconfig:"FA_ROUND" default:"12" validate:"gte=1"`
	UnkeepableRounds  int `envconfig:"UNKEEPABLE_ROUNDS" default:"5" validate:"gte=0"`
	UnkeepableRoundID int `envconfig:"UNKEEPABLE_ROUND_ID" default:"999"`

	Verbose bool `envconfig:"VERBOSE" default:"false"`

	// MCPAPIKey guards the MCP server; empty disables auth.
	MCPAPIKey string `envconfig:"MCP_API_KEY"`
}

var validate = validator.New()

// Load reads the environment and validates the result.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("load config from env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when no environment is set.
func Default() *Config {
	r := keeper.DefaultRules()
	return &Config{
		SubRounds:         r.SubRounds,
		FARound:           r.FARound,
		UnkeepableRounds:  r.UnkeepableRounds,
		UnkeepableRoundID: r.UnkeepableRoundID,
	}
}

// Validate checks the rule values.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("config validation failed: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s must be %s %s (got %v)", fe.Field(), fe.Tag(), fe.Param(), fe.Value()))
	}
	return fmt.Errorf("config validation failed: %s", strings.Join(msgs, "; "))
}

// Rules returns the keeper rules part of the configuration.
func (c *Config) Rules() keeper.Rules {
	return keeper.Rules{
		SubRounds:         c.SubRounds,
		FARound:           c.FARound,
		UnkeepableRounds:  c.UnkeepableRounds,
		UnkeepableRoundID: c.UnkeepableRoundID,
	}
}
