package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func validConfig() Config {
	return Config{
		Simulation: SimulationConfig{
			Runs:     10000,
			Turns:    4,
			DeckSize: 60,
			Workers:  1,
		},
		Output: OutputConfig{
			Format: "table",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func TestValidConfig(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	err := os.WriteFile(path, []byte(`
simulation:
  runs: 500
  turns: 5
  deck_size: 40
  seed: 1234
  workers: 4
content:
  deck_file: decks/azorius.yaml
output:
  format: json
logging:
  level: debug
  format: json
`), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.Simulation.Runs)
	assert.Equal(t, 5, cfg.Simulation.Turns)
	assert.Equal(t, 40, cfg.Simulation.DeckSize)
	assert.Equal(t, uint64(1234), cfg.Simulation.Seed)
	assert.Equal(t, 4, cfg.Simulation.Workers)
	assert.Equal(t, "decks/azorius.yaml", cfg.Content.DeckFile)
	assert.Equal(t, "", cfg.Content.LandsFile)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 10000, cfg.Simulation.Runs)
	assert.Equal(t, 4, cfg.Simulation.Turns)
	assert.Equal(t, 60, cfg.Simulation.DeckSize)
	assert.Equal(t, uint64(0), cfg.Simulation.Seed)
	assert.Equal(t, "table", cfg.Output.Format)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("LANDSIM_SIMULATION_TURNS", "6")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Simulation.Turns)
}

func TestLoadFromViper_Defaults(t *testing.T) {
	cfg, err := LoadFromViper(Defaults())
	require.NoError(t, err)
	assert.Equal(t, validConfig().Simulation, cfg.Simulation)
}

func TestLoadInvalidPath(t *testing.T) {
	_, err := Load("/nonexistent/path.yaml")
	assert.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
simulation:
  turns: 0
output:
  format: html
`), 0644))
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "simulation.turns")
	assert.Contains(t, err.Error(), "output.format")
}

func TestValidateDeckSize(t *testing.T) {
	cfg := validConfig()
	cfg.Simulation.DeckSize = 6
	assert.Error(t, cfg.Validate())
}

func TestValidateWorkers(t *testing.T) {
	cfg := validConfig()
	cfg.Simulation.Workers = 0
	assert.NoError(t, cfg.Validate())
	cfg.Simulation.Workers = -2
	assert.Error(t, cfg.Validate())
}

func TestValidateOutputFormat(t *testing.T) {
	for _, format := range []string{"table", "yaml", "json"} {
		cfg := validConfig()
		cfg.Output.Format = format
		assert.NoError(t, cfg.Validate(), "format %q should be valid", format)
	}
	cfg := validConfig()
	cfg.Output.Format = "csv"
	assert.Error(t, cfg.Validate())
}

func TestValidateLoggingLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		cfg := validConfig()
		cfg.Logging.Level = level
		assert.NoError(t, cfg.Validate(), "level %q should be valid", level)
	}
	cfg := validConfig()
	cfg.Logging.Level = "trace"
	assert.Error(t, cfg.Validate())
}

func TestValidateLoggingFormat(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		cfg := validConfig()
		cfg.Logging.Format = format
		assert.NoError(t, cfg.Validate(), "format %q should be valid", format)
	}
	cfg := validConfig()
	cfg.Logging.Format = "xml"
	assert.Error(t, cfg.Validate())
}

// Property-based tests

func TestPropertyValidRunsRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		runs := rapid.IntRange(1, 1_000_000).Draw(t, "runs")
		cfg := validConfig()
		cfg.Simulation.Runs = runs
		if err := cfg.Validate(); err != nil {
			t.Fatalf("valid runs %d rejected: %v", runs, err)
		}
	})
}

func TestPropertyInvalidRunsRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		runs := rapid.OneOf(
			rapid.IntRange(-1000, 0),
			rapid.IntRange(1_000_001, 5_000_000),
		).Draw(t, "runs")
		cfg := validConfig()
		cfg.Simulation.Runs = runs
		if err := cfg.Validate(); err == nil {
			t.Fatalf("invalid runs %d accepted", runs)
		}
	})
}

func TestPropertyTurnsAndDeckSize(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		turns := rapid.IntRange(-5, 30).Draw(t, "turns")
		size := rapid.IntRange(0, 250).Draw(t, "deck_size")
		cfg := validConfig()
		cfg.Simulation.Turns = turns
		cfg.Simulation.DeckSize = size
		err := cfg.Validate()
		valid := turns >= 1 && size >= 7
		if valid && err != nil {
			t.Fatalf("turns=%d deck_size=%d rejected: %v", turns, size, err)
		}
		if !valid && err == nil {
			t.Fatalf("turns=%d deck_size=%d accepted", turns, size)
		}
	})
}
