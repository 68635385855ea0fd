package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"holdem-agent/internal/util"
	"holdem-agent/pkg/policy"
	"holdem-agent/pkg/protocol"
)

// Config provides configuration for the agent
type Config struct {
	loaded bool
	// Variant is the line layout the judge writes (a, b, c)
	Variant string `yaml:"variant" envconfig:"variant"`
	// Policy is the name of the built-in decision policy
	Policy string `yaml:"policy" envconfig:"policy"`
	// Self is this agent's player identifier, for variants without a turn index
	Self string `yaml:"self" envconfig:"self"`
	// RequirePlayable rejects states without players or pots before deciding
	RequirePlayable bool `yaml:"requirePlayable" envconfig:"require_playable"`
	// Samples is the number of flop runouts the strength policy evaluates
	Samples int `yaml:"samples" envconfig:"samples"`
	Log     struct {
		Level  string `yaml:"level" envconfig:"level"`
		Format string `yaml:"format" envconfig:"format"`
	} `yaml:"log"`
}

var config Config

// DefaultConfig returns the configuration used when nothing is set
func DefaultConfig() Config {
	cfg := Config{
		Variant:         string(protocol.VariantA),
		Policy:          "check",
		RequirePlayable: true,
		Samples:         policy.DefaultSamples,
	}
	cfg.Log.Level = "warning"
	cfg.Log.Format = "text"

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// The YAML file named by AGENT_CONFIG_FILE is optional, AGENT_* environment variables win over it.
func Load() error {
	cfg := DefaultConfig()

	if configFile := util.Getenv("AGENT_CONFIG_FILE", ""); configFile != "" {
		file, err := os.Open(configFile)
		if err != nil {
			return err
		}
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return fmt.Errorf("could not decode %s: %w", configFile, err)
		}
	}

	if err := envconfig.Process("agent", &cfg); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

// Validate checks that the variant and policy exist
func (c Config) Validate() error {
	if _, err := protocol.VariantFromString(c.Variant); err != nil {
		return err
	}

	if _, err := policy.FromString(c.Policy, policy.Options{}); err != nil {
		return err
	}

	if c.Samples < 0 {
		return fmt.Errorf("samples must not be negative")
	}

	return nil
}

// ProtocolVariant returns the parsed variant
func (c Config) ProtocolVariant() protocol.Variant {
	variant, err := protocol.VariantFromString(c.Variant)
	if err != nil {
		panic(err)
	}

	return variant
}
