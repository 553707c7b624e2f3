package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tadpole-arcade/internal/core"
)

// drain streams s to completion and returns the number of samples.
func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
	t.Fatal("streamer never finished")
	return 0
}

func TestSoundForEveryCue(t *testing.T) {
	cues := []core.Cue{
		core.CueCoin, core.CuePowerUp, core.CueSpeedBoost, core.CueChest,
		core.CueStageUp, core.CueHazardBreak, core.CueGameOver,
	}

	for _, c := range cues {
		t.Run(c.String(), func(t *testing.T) {
			s := Sound(c, 1)
			if s == nil {
				t.Fatal("no sound for cue")
			}
			n := drain(t, s)
			if n == 0 {
				t.Error("sound produced no samples")
			}
			if d := sampleRate.D(n); d > time.Second {
				t.Errorf("sound lasts %v, want under a second", d)
			}
		})
	}
}

func TestSoundNone(t *testing.T) {
	if Sound(core.CueNone, 1) != nil {
		t.Error("CueNone should have no sound")
	}
	if Sound(core.Cue(99), 1) != nil {
		t.Error("unknown cue should have no sound")
	}
}

func TestSilentVolume(t *testing.T) {
	s := Sound(core.CueCoin, 0)
	buf := make([][2]float64, 256)
	n, _ := s.Stream(buf)
	for i := 0; i < n; i++ {
		if buf[i][0] != 0 || buf[i][1] != 0 {
			t.Fatalf("sample %d = %v, want silence", i, buf[i])
		}
	}
}

func TestUninitializedPlayerDropsCues(t *testing.T) {
	p := NewPlayer(nil)
	p.Play(core.CueCoin)
	p.Close()

	var nilPlayer *Player
	nilPlayer.Play(core.CueGameOver)
	nilPlayer.Close()
}

func TestPlayerSettings(t *testing.T) {
	p := NewPlayer(nil)

	p.SetVolume(2)
	if p.Volume() != 1 {
		t.Errorf("Volume() = %v, want clamp to 1", p.Volume())
	}
	p.SetVolume(-1)
	if p.Volume() != 0 {
		t.Errorf("Volume() = %v, want clamp to 0", p.Volume())
	}

	p.SetMuted(true)
	if !p.Muted() {
		t.Error("expected muted player")
	}
}
