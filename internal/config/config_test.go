package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	var cfg CrossingConfig
	require.NoError(t, yaml.Unmarshal(DefaultYAML(), &cfg))
	assert.Equal(t, DefaultCrossingConfig(), cfg)
}

func TestDefaultConfigIsValid(t *testing.T) {
	assert.NoError(t, DefaultCrossingConfig().Validate())
}

func TestLoadCrossingCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("field:\n  starting_speed: 9\nrules:\n  tick_interval_ms: 50\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := LoadCrossing(path)
	require.NoError(t, err)

	assert.Equal(t, 9, cfg.Field.StartingSpeed)
	assert.Equal(t, 50, cfg.Rules.TickIntervalMs)
	// Keys not in the file keep their defaults
	assert.Equal(t, 7, cfg.Field.StartingSpawnRate)
	assert.Equal(t, 280.0, cfg.Player.FinishLineY)
}

func TestLoadCrossingMissingCustomPath(t *testing.T) {
	_, err := LoadCrossing(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadCrossingMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("field: [not, a, map"), 0o600))

	_, err := LoadCrossing(path)
	assert.Error(t, err)
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CrossingConfig)
	}{
		{"zero speed", func(c *CrossingConfig) { c.Field.StartingSpeed = 0 }},
		{"spawn rate below floor", func(c *CrossingConfig) { c.Field.StartingSpawnRate = 0 }},
		{"floor below one", func(c *CrossingConfig) { c.Field.MinimumSpawnRate = 0 }},
		{"zero threshold", func(c *CrossingConfig) { c.Field.SpawnRateThreshold = 0 }},
		{"inverted y range", func(c *CrossingConfig) { c.Field.YMin, c.Field.YMax = 10, -10 }},
		{"empty palette", func(c *CrossingConfig) { c.Field.Palette = nil }},
		{"unknown palette color", func(c *CrossingConfig) { c.Field.Palette = []string{"mauve"} }},
		{"finish behind start", func(c *CrossingConfig) { c.Player.FinishLineY = -300 }},
		{"unknown player color", func(c *CrossingConfig) { c.Player.Color = "plaid" }},
		{"zero collision distance", func(c *CrossingConfig) { c.Rules.CollisionDistance = 0 }},
		{"level zero", func(c *CrossingConfig) { c.Rules.StartingLevel = 0 }},
		{"zero tick", func(c *CrossingConfig) { c.Rules.TickIntervalMs = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultCrossingConfig()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestApplyCrossingPreset(t *testing.T) {
	cfg := DefaultCrossingConfig()
	ApplyCrossingPreset(&cfg, DifficultyHard)
	assert.Equal(t, 8, cfg.Field.StartingSpeed)
	assert.Equal(t, 5, cfg.Field.StartingSpawnRate)
	assert.NoError(t, cfg.Validate())

	ApplyCrossingPreset(&cfg, DifficultyNormal)
	assert.Equal(t, DefaultCrossingConfig().Field, cfg.Field)

	ApplyCrossingPreset(&cfg, DifficultyEasy)
	assert.Equal(t, 3, cfg.Field.StartingSpeed)
	assert.Equal(t, 9, cfg.Field.StartingSpawnRate)
}

func TestApplyCrossingPresetRespectsFloor(t *testing.T) {
	cfg := DefaultCrossingConfig()
	cfg.Field.MinimumSpawnRate = 6
	ApplyCrossingPreset(&cfg, DifficultyHard)
	assert.Equal(t, 6, cfg.Field.StartingSpawnRate)
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"", "easy", "normal", "hard"} {
		p, err := ParsePreset(name)
		require.NoError(t, err)
		assert.Equal(t, DifficultyPreset(name), p)
	}

	_, err := ParsePreset("nightmare")
	assert.Error(t, err)
}

func TestMarshalRoundTripsThroughLoader(t *testing.T) {
	cfg := DefaultCrossingConfig()
	cfg.Field.EvictOffscreen = false

	data, err := Marshal(cfg)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "dump.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	loaded, err := LoadCrossing(path)
	require.NoError(t, err)
	assert.False(t, loaded.Field.EvictOffscreen)
}
