package config

import "fmt"

// DifficultyPreset represents a named starting difficulty.
// Presets move the bottom of the staircase; the per-level increments and the
// spawn rate floor are the same for every preset.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset resolves a preset name from the command line.
// An empty name means "keep the config as loaded".
func ParsePreset(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(name) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(name), nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, or hard)", name)
	}
}

// ApplyCrossingPreset modifies the config based on a difficulty preset.
func ApplyCrossingPreset(cfg *CrossingConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Field.StartingSpeed = 3
		cfg.Field.StartingSpawnRate = 9
	case DifficultyNormal:
		def := DefaultCrossingConfig()
		cfg.Field.StartingSpeed = def.Field.StartingSpeed
		cfg.Field.StartingSpawnRate = def.Field.StartingSpawnRate
	case DifficultyHard:
		cfg.Field.StartingSpeed = 8
		cfg.Field.StartingSpawnRate = 5
	}

	if cfg.Field.StartingSpawnRate < cfg.Field.MinimumSpawnRate {
		cfg.Field.StartingSpawnRate = cfg.Field.MinimumSpawnRate
	}
}
