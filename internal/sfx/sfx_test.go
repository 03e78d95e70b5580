package sfx

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-crossing/internal/core"
)

func drain(s beep.Streamer) int {
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func TestToneLength(t *testing.T) {
	rate := beep.SampleRate(44100)

	s, err := Tone(rate, 440, 100*time.Millisecond)
	if err != nil {
		t.Fatalf("Tone() failed: %v", err)
	}

	if got := drain(s); got != rate.N(100*time.Millisecond) {
		t.Errorf("streamed %d samples, expected %d", got, rate.N(100*time.Millisecond))
	}
}

func TestToneRejectsAliasedFrequency(t *testing.T) {
	if _, err := Tone(beep.SampleRate(8000), 6000, time.Millisecond); err == nil {
		t.Error("Tone() above the Nyquist frequency should fail")
	}
}

func TestCueLengths(t *testing.T) {
	rate := beep.SampleRate(44100)

	for e, sheet := range cues {
		t.Run(e.String(), func(t *testing.T) {
			s, err := Cue(rate, e)
			if err != nil {
				t.Fatalf("Cue() failed: %v", err)
			}

			expected := 0
			for _, n := range sheet {
				expected += rate.N(n.dur)
			}
			if got := drain(s); got != expected {
				t.Errorf("streamed %d samples, expected %d", got, expected)
			}
		})
	}
}

func TestCueUnknownEvent(t *testing.T) {
	s, err := Cue(beep.SampleRate(44100), core.Event(0))
	if err != nil || s != nil {
		t.Errorf("Cue() = %v, %v; expected nil, nil", s, err)
	}
}

func TestSilentPlayer(t *testing.T) {
	// Neither call may touch the speaker
	var nilPlayer *Player
	nilPlayer.Play(core.EventCollision)
	nilPlayer.Close()

	p := New(0.5)
	p.Play(core.EventLevelUp)
	p.Close()
}
