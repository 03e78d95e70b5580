// Package config provides YAML-based game configuration loading,
// validation, and difficulty presets.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-crossing/internal/core"
)

// ErrInvalid is returned by Validate for configurations the game cannot run with.
var ErrInvalid = errors.New("config: invalid")

// CrossingConfig contains all configuration for the road crossing game.
type CrossingConfig struct {
	World  WorldConfig  `yaml:"world"`
	Field  FieldConfig  `yaml:"field"`
	Player PlayerConfig `yaml:"player"`
	Rules  RulesConfig  `yaml:"rules"`
}

// WorldConfig defines the size of the playfield in world units.
// The origin is at the centre of the world.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FieldConfig defines obstacle spawning, motion, and the difficulty staircase.
type FieldConfig struct {
	StartingSpeed      int      `yaml:"starting_speed"`       // Units moved per tick
	SpeedIncrement     int      `yaml:"speed_increment"`      // Added on every level-up
	StartingSpawnRate  int      `yaml:"starting_spawn_rate"`  // 1-in-N chance to spawn per tick
	SpawnRateThreshold int      `yaml:"spawn_rate_threshold"` // Spawn rate drops when speed is a multiple of this
	SpawnRateDecrement int      `yaml:"spawn_rate_decrement"`
	MinimumSpawnRate   int      `yaml:"minimum_spawn_rate"`
	SpawnX             float64  `yaml:"spawn_x"`
	YMin               int      `yaml:"y_min"`
	YMax               int      `yaml:"y_max"`
	OffscreenPosition  float64  `yaml:"offscreen_position"`
	EvictOffscreen     bool     `yaml:"evict_offscreen"` // Drop obstacles that left the road
	Palette            []string `yaml:"palette"`
}

// PlayerConfig defines the player's start, step, and goal.
type PlayerConfig struct {
	StartX       float64 `yaml:"start_x"`
	StartY       float64 `yaml:"start_y"`
	MoveDistance float64 `yaml:"move_distance"`
	FinishLineY  float64 `yaml:"finish_line_y"`
	Color        string  `yaml:"color"`
}

// RulesConfig defines collision, levels, and pacing.
type RulesConfig struct {
	CollisionDistance float64 `yaml:"collision_distance"`
	StartingLevel     int     `yaml:"starting_level"`
	LevelIncrement    int     `yaml:"level_increment"`
	TickIntervalMs    int     `yaml:"tick_interval_ms"`
}

// TickInterval returns the fixed tick interval as a duration.
func (r RulesConfig) TickInterval() time.Duration {
	return time.Duration(r.TickIntervalMs) * time.Millisecond
}

// PaletteColors resolves the configured obstacle palette.
func (f FieldConfig) PaletteColors() ([]core.Color, error) {
	colors := make([]core.Color, 0, len(f.Palette))
	for _, name := range f.Palette {
		c, err := core.ParseColor(name)
		if err != nil {
			return nil, fmt.Errorf("%w: palette: %v", ErrInvalid, err)
		}
		colors = append(colors, c)
	}
	return colors, nil
}

// Validate checks the configuration for values the game cannot run with.
func (c CrossingConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.World.Width > 0 && c.World.Height > 0, "world size must be positive, got %gx%g", c.World.Width, c.World.Height)

	f := c.Field
	check(f.StartingSpeed > 0, "field.starting_speed must be positive, got %d", f.StartingSpeed)
	check(f.SpeedIncrement > 0, "field.speed_increment must be positive, got %d", f.SpeedIncrement)
	check(f.MinimumSpawnRate >= 1, "field.minimum_spawn_rate must be at least 1, got %d", f.MinimumSpawnRate)
	check(f.StartingSpawnRate >= f.MinimumSpawnRate, "field.starting_spawn_rate %d is below minimum_spawn_rate %d", f.StartingSpawnRate, f.MinimumSpawnRate)
	check(f.SpawnRateThreshold > 0, "field.spawn_rate_threshold must be positive, got %d", f.SpawnRateThreshold)
	check(f.SpawnRateDecrement >= 0, "field.spawn_rate_decrement must not be negative, got %d", f.SpawnRateDecrement)
	check(f.YMin <= f.YMax, "field.y_min %d is above y_max %d", f.YMin, f.YMax)
	check(len(f.Palette) > 0, "field.palette must not be empty")
	if _, err := f.PaletteColors(); err != nil {
		errs = append(errs, err)
	}

	p := c.Player
	check(p.MoveDistance > 0, "player.move_distance must be positive, got %g", p.MoveDistance)
	check(p.FinishLineY > p.StartY, "player.finish_line_y %g must be above start_y %g", p.FinishLineY, p.StartY)
	if _, err := core.ParseColor(p.Color); err != nil {
		errs = append(errs, fmt.Errorf("%w: player.color: %v", ErrInvalid, err))
	}

	r := c.Rules
	check(r.CollisionDistance > 0, "rules.collision_distance must be positive, got %g", r.CollisionDistance)
	check(r.StartingLevel >= 1, "rules.starting_level must be at least 1, got %d", r.StartingLevel)
	check(r.LevelIncrement > 0, "rules.level_increment must be positive, got %d", r.LevelIncrement)
	check(r.TickIntervalMs > 0, "rules.tick_interval_ms must be positive, got %d", r.TickIntervalMs)

	return errors.Join(errs...)
}
