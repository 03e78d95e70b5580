package crossing

import (
	"testing"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
)

func TestPlayerStartsAtStart(t *testing.T) {
	cfg := config.DefaultCrossingConfig().Player
	p := NewPlayer(cfg)

	if p.Position() != core.V(cfg.StartX, cfg.StartY) {
		t.Errorf("Position() = %+v, expected start (%f, %f)", p.Position(), cfg.StartX, cfg.StartY)
	}
}

func TestPlayerMovesAlongYOnly(t *testing.T) {
	cfg := config.DefaultCrossingConfig().Player
	p := NewPlayer(cfg)

	p.MoveForward()
	p.MoveForward()
	if p.Position().Y != cfg.StartY+2*cfg.MoveDistance {
		t.Errorf("after two forward steps Y = %f, expected %f", p.Position().Y, cfg.StartY+2*cfg.MoveDistance)
	}

	p.MoveBackward()
	if p.Position().Y != cfg.StartY+cfg.MoveDistance {
		t.Errorf("after a backward step Y = %f, expected %f", p.Position().Y, cfg.StartY+cfg.MoveDistance)
	}

	if p.Position().X != cfg.StartX {
		t.Errorf("X changed to %f, expected constant %f", p.Position().X, cfg.StartX)
	}
}

func TestSuccessfulCrossing(t *testing.T) {
	cfg := config.DefaultCrossingConfig().Player // finish line at 280

	tests := []struct {
		name     string
		y        float64
		expected bool
	}{
		{"past the line", 281, true},
		{"on the line", 280, false},
		{"just short", 279.9, false},
		{"at start", -280, false},
		{"far past", 400, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPlayer(cfg)
			p.pos.Y = tc.y

			if got := p.SuccessfulCrossing(); got != tc.expected {
				t.Errorf("SuccessfulCrossing() at y=%f = %v, expected %v", tc.y, got, tc.expected)
			}
		})
	}
}

func TestResetToStartIsExact(t *testing.T) {
	cfg := config.DefaultCrossingConfig().Player
	cfg.MoveDistance = 0.1 // Accumulates float error on purpose
	p := NewPlayer(cfg)

	for i := 0; i < 137; i++ {
		p.MoveForward()
	}
	for i := 0; i < 12; i++ {
		p.MoveBackward()
	}

	p.ResetToStart()

	if p.Position().Y != cfg.StartY {
		t.Errorf("Y after reset = %v, expected exactly %v", p.Position().Y, cfg.StartY)
	}
	if p.Position().X != cfg.StartX {
		t.Errorf("X after reset = %v, expected exactly %v", p.Position().X, cfg.StartX)
	}
}

func TestPlayerDistanceTo(t *testing.T) {
	p := NewPlayer(config.DefaultCrossingConfig().Player) // at (0, -280)

	if d := p.DistanceTo(core.V(30, -240)); d != 50 {
		t.Errorf("DistanceTo() = %f, expected 50", d)
	}
}
