// Package config provides Viper-based configuration loading for the land
// simulator.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// SimulationConfig holds the Monte Carlo parameters.
type SimulationConfig struct {
	// Runs is the number of simulated games.
	Runs int `mapstructure:"runs"`
	// Turns is the number of turns simulated per game.
	Turns int `mapstructure:"turns"`
	// DeckSize is the total number of cards in the deck.
	DeckSize int `mapstructure:"deck_size"`
	// Seed is the base random seed; 0 picks a random one.
	Seed uint64 `mapstructure:"seed"`
	// Workers is the number of goroutines running games; 0 means one per CPU.
	Workers int `mapstructure:"workers"`
}

// ContentConfig points at optional content files.
type ContentConfig struct {
	// LandsFile is a YAML file of extra land definitions.
	LandsFile string `mapstructure:"lands_file"`
	// DeckFile is a YAML deck description.
	DeckFile string `mapstructure:"deck_file"`
}

// OutputConfig controls how results are rendered.
type OutputConfig struct {
	// Format is one of "table", "yaml", "json".
	Format string `mapstructure:"format"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// Config is the top-level application configuration.
type Config struct {
	Simulation SimulationConfig `mapstructure:"simulation"`
	Content    ContentConfig    `mapstructure:"content"`
	Output     OutputConfig     `mapstructure:"output"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateSimulation(c.Simulation); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateOutput(c.Output); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateSimulation(s SimulationConfig) error {
	var errs []string
	if s.Runs < 1 || s.Runs > 1_000_000 {
		errs = append(errs, fmt.Sprintf("simulation.runs must be 1-1000000, got %d", s.Runs))
	}
	if s.Turns < 1 {
		errs = append(errs, fmt.Sprintf("simulation.turns must be >= 1, got %d", s.Turns))
	}
	if s.DeckSize < 7 {
		errs = append(errs, fmt.Sprintf("simulation.deck_size must be >= 7, got %d", s.DeckSize))
	}
	if s.Workers < 0 {
		errs = append(errs, fmt.Sprintf("simulation.workers must be >= 0, got %d", s.Workers))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateOutput(o OutputConfig) error {
	validFormats := map[string]bool{"table": true, "yaml": true, "json": true}
	if !validFormats[o.Format] {
		return fmt.Errorf("output.format must be one of [table, yaml, json], got %q", o.Format)
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path skips the file and uses
// defaults plus environment.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with LANDSIM_ prefix
	v.SetEnvPrefix("LANDSIM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Defaults returns a Viper instance carrying only the default values.
func Defaults() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("simulation.runs", 10000)
	v.SetDefault("simulation.turns", 4)
	v.SetDefault("simulation.deck_size", 60)
	v.SetDefault("simulation.seed", 0)
	v.SetDefault("simulation.workers", 1)

	v.SetDefault("content.lands_file", "")
	v.SetDefault("content.deck_file", "")

	v.SetDefault("output.format", "table")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}
