package core

import "time"

// RuntimeConfig carries the terminal size and pacing to the platform layer.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	TickInterval time.Duration // Fixed wall-clock time between ticks
}

// Event is something notable that happened during a tick.
type Event int

const (
	EventLevelUp Event = iota + 1
	EventCollision
	EventNewHighScore
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventLevelUp:
		return "level_up"
	case EventCollision:
		return "collision"
	case EventNewHighScore:
		return "new_high_score"
	default:
		return "unknown"
	}
}

// GameState represents the current state of a game.
type GameState struct {
	Level     int  // Current level
	HighScore int  // Best level reached, persisted
	GameOver  bool // Whether the run has ended
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the given event occurred during the tick.
func (r StepResult) Has(e Event) bool {
	for _, ev := range r.Events {
		if ev == e {
			return true
		}
	}
	return false
}
