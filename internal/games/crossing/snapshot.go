package crossing

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StateGameOver GameStateType = "game_over"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Level     int
	HighScore int
	PlayerX   float64
	PlayerY   float64
	Obstacles int
	Speed     int
	SpawnRate int
	State     GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	if g.progress.GameOver() {
		state = StateGameOver
	}

	pos := g.player.Position()
	return Snapshot{
		Tick:      g.tick,
		Level:     g.progress.Level(),
		HighScore: g.progress.HighScore(),
		PlayerX:   pos.X,
		PlayerY:   pos.Y,
		Obstacles: g.field.Len(),
		Speed:     g.field.Speed(),
		SpawnRate: g.field.SpawnRate(),
		State:     state,
	}
}
