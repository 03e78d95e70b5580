// Package sfx plays short synthesized sound cues for game events.
package sfx

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-crossing/internal/core"
)

const sampleRate = beep.SampleRate(44100)

type note struct {
	freq float64
	dur  time.Duration
}

// Cue sheets per event, played in order.
var cues = map[core.Event][]note{
	core.EventLevelUp: {
		{660, 70 * time.Millisecond},
		{880, 110 * time.Millisecond},
	},
	core.EventCollision: {
		{220, 180 * time.Millisecond},
		{110, 260 * time.Millisecond},
	},
	core.EventNewHighScore: {
		{523.25, 90 * time.Millisecond},
		{659.25, 90 * time.Millisecond},
		{783.99, 160 * time.Millisecond},
	},
}

// Player plays event cues on the system speaker.
// A nil or uninitialized Player is silent.
type Player struct {
	mu          sync.Mutex
	volume      float64
	initialized bool
}

// New creates a player. Volume is linear in (0, 1]; anything else mutes.
func New(volume float64) *Player {
	return &Player{volume: volume}
}

// Init opens the audio device.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("sfx: init speaker: %w", err)
	}
	p.initialized = true
	return nil
}

// Play queues the cue for an event. Events without a cue are ignored.
func (p *Player) Play(e core.Event) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s, err := Cue(sampleRate, e)
	if err != nil || s == nil {
		return
	}
	speaker.Play(withVolume(s, p.volume))
}

// Close releases the audio device.
func (p *Player) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// Cue builds the streamer for an event, or nil if the event has no cue.
func Cue(rate beep.SampleRate, e core.Event) (beep.Streamer, error) {
	sheet, ok := cues[e]
	if !ok {
		return nil, nil
	}

	parts := make([]beep.Streamer, 0, len(sheet))
	for _, n := range sheet {
		t, err := Tone(rate, n.freq, n.dur)
		if err != nil {
			return nil, err
		}
		parts = append(parts, t)
	}
	return beep.Seq(parts...), nil
}

// Tone returns a sine tone of the given length.
func Tone(rate beep.SampleRate, freq float64, dur time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, fmt.Errorf("sfx: tone %gHz: %w", freq, err)
	}
	return beep.Take(rate.N(dur), sine), nil
}

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 || vol > 1 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
