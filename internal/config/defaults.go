package config

import (
	_ "embed"
)

//go:embed defaults/crossing.yaml
var defaultCrossingYAML []byte

// DefaultCrossingConfig returns the built-in configuration. It mirrors
// defaults/crossing.yaml and is used when the embedded file cannot be parsed.
func DefaultCrossingConfig() CrossingConfig {
	return CrossingConfig{
		World: WorldConfig{
			Width:  600,
			Height: 600,
		},
		Field: FieldConfig{
			StartingSpeed:      5,
			SpeedIncrement:     1,
			StartingSpawnRate:  7,
			SpawnRateThreshold: 3,
			SpawnRateDecrement: 1,
			MinimumSpawnRate:   1,
			SpawnX:             300,
			YMin:               -230,
			YMax:               270,
			OffscreenPosition:  1000,
			EvictOffscreen:     true,
			Palette:            []string{"orange", "green", "yellow"},
		},
		Player: PlayerConfig{
			StartX:       0,
			StartY:       -280,
			MoveDistance: 10,
			FinishLineY:  280,
			Color:        "gray",
		},
		Rules: RulesConfig{
			CollisionDistance: 30,
			StartingLevel:     1,
			LevelIncrement:    1,
			TickIntervalMs:    100,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultCrossingYAML
}
