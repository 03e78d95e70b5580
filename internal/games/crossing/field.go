package crossing

import (
	"math/rand"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
)

// Obstacle is a single sprite crossing the road from right to left.
// Obstacles have no speed of their own; the field moves them all together.
type Obstacle struct {
	Pos   core.Vec2
	Color core.Color
}

// ObstacleField handles spawning, movement, and recycling of obstacles, and
// owns the speed/spawn-rate staircase.
type ObstacleField struct {
	obstacles []Obstacle // Spawn order
	speed     int
	spawnRate int
	rng       *rand.Rand
	palette   []core.Color
	cfg       config.FieldConfig
}

// NewObstacleField creates an empty field at the starting difficulty.
func NewObstacleField(cfg config.FieldConfig, palette []core.Color, rng *rand.Rand) *ObstacleField {
	f := &ObstacleField{
		obstacles: make([]Obstacle, 0, 32),
		rng:       rng,
		palette:   palette,
		cfg:       cfg,
	}
	f.Reset()
	return f
}

// SpawnAttempt rolls a 1-in-spawnRate chance and, on success, appends one
// obstacle at the right edge with a random lane and palette color.
func (f *ObstacleField) SpawnAttempt() bool {
	if f.rng.Intn(f.spawnRate)+1 != 1 {
		return false
	}

	color := f.palette[f.rng.Intn(len(f.palette))]
	y := f.cfg.YMin + f.rng.Intn(f.cfg.YMax-f.cfg.YMin+1)

	f.obstacles = append(f.obstacles, Obstacle{
		Pos:   core.V(f.cfg.SpawnX, float64(y)),
		Color: color,
	})
	return true
}

// Advance moves every obstacle left by the current speed.
// There is no bounds check; see Evict.
func (f *ObstacleField) Advance() {
	for i := range f.obstacles {
		f.obstacles[i].Pos.X -= float64(f.speed)
	}
}

// Evict drops obstacles whose X is left of limit and returns how many were
// removed. Spawn order is preserved.
func (f *ObstacleField) Evict(limit float64) int {
	kept := f.obstacles[:0]
	for _, o := range f.obstacles {
		if o.Pos.X >= limit {
			kept = append(kept, o)
		}
	}
	removed := len(f.obstacles) - len(kept)
	f.obstacles = kept
	return removed
}

// IncreaseDifficulty raises the speed by one step. Every time the new speed
// lands on a multiple of the threshold, the spawn rate drops by one step,
// never below the configured minimum.
func (f *ObstacleField) IncreaseDifficulty() {
	f.speed += f.cfg.SpeedIncrement

	if f.speed%f.cfg.SpawnRateThreshold == 0 {
		f.spawnRate = max(f.cfg.MinimumSpawnRate, f.spawnRate-f.cfg.SpawnRateDecrement)
	}
}

// Reset parks every obstacle off-screen, empties the field, and restores the
// starting speed and spawn rate.
func (f *ObstacleField) Reset() {
	parked := core.V(f.cfg.OffscreenPosition, f.cfg.OffscreenPosition)
	for i := range f.obstacles {
		f.obstacles[i].Pos = parked
	}
	f.obstacles = f.obstacles[:0]

	f.speed = f.cfg.StartingSpeed
	f.spawnRate = f.cfg.StartingSpawnRate
}

// Obstacles returns a copy of the live obstacles in spawn order.
func (f *ObstacleField) Obstacles() []Obstacle {
	out := make([]Obstacle, len(f.obstacles))
	copy(out, f.obstacles)
	return out
}

// Len returns the number of live obstacles.
func (f *ObstacleField) Len() int {
	return len(f.obstacles)
}

// Speed returns the distance every obstacle moves per tick.
func (f *ObstacleField) Speed() int {
	return f.speed
}

// SpawnRate returns N in the 1-in-N per-tick spawn chance.
func (f *ObstacleField) SpawnRate() int {
	return f.spawnRate
}
