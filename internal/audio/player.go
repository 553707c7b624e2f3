// Package audio plays the short synthesized cues raised by games.
// Playback is fire-and-forget: a Player that failed to initialize, or a
// nil Player, silently drops every cue.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tadpole-arcade/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Player mixes cue sounds into the system speaker.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	volume      float64
	logger      *log.Logger
}

var _ core.CueSink = (*Player)(nil)

// NewPlayer creates a player at full volume. Call Initialize before any
// sound is heard.
func NewPlayer(logger *log.Logger) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: 1,
		logger: logger,
	}
}

// Initialize opens the speaker. Safe to call more than once.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close stops playback and releases the speaker.
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

// SetMuted turns playback off or on without closing the speaker.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
}

// Muted reports whether cues are being dropped.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// SetVolume sets the linear volume, clamped to [0, 1].
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.volume = core.ClampF(v, 0, 1)
}

// Volume returns the linear volume.
func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}

// Play queues the sound for a cue and returns immediately.
func (p *Player) Play(c core.Cue) {
	if p == nil {
		return
	}
	p.mu.Lock()
	if !p.initialized || p.muted {
		p.mu.Unlock()
		return
	}
	vol := p.volume
	p.mu.Unlock()

	s := Sound(c, vol)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	if p.logger != nil {
		p.logger.Debug("cue", "sound", c)
	}
}

// note is one step of a cue melody.
type note struct {
	freq float64 // Hz, 0 for noise
	dur  time.Duration
}

// melodies holds the note sequence of each tonal cue.
var melodies = map[core.Cue][]note{
	core.CueCoin:       {{988, 60 * time.Millisecond}, {1319, 120 * time.Millisecond}},
	core.CuePowerUp:    {{523, 70 * time.Millisecond}, {659, 70 * time.Millisecond}, {784, 70 * time.Millisecond}, {1047, 140 * time.Millisecond}},
	core.CueSpeedBoost: {{440, 50 * time.Millisecond}, {880, 50 * time.Millisecond}, {1760, 100 * time.Millisecond}},
	core.CueChest:      {{659, 90 * time.Millisecond}, {784, 90 * time.Millisecond}, {1319, 180 * time.Millisecond}},
	core.CueStageUp:    {{784, 80 * time.Millisecond}, {1047, 160 * time.Millisecond}},
	core.CueGameOver:   {{392, 150 * time.Millisecond}, {330, 150 * time.Millisecond}, {262, 300 * time.Millisecond}},
}

// Sound builds the finite streamer for a cue at the given linear volume.
// Returns nil for cues without a sound.
func Sound(c core.Cue, vol float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case core.CueHazardBreak:
		s = crack(200 * time.Millisecond)
	default:
		notes, ok := melodies[c]
		if !ok {
			return nil
		}
		parts := make([]beep.Streamer, 0, len(notes))
		for _, n := range notes {
			tone, err := generators.SineTone(sampleRate, n.freq)
			if err != nil {
				continue
			}
			parts = append(parts, beep.Take(sampleRate.N(n.dur), tone))
		}
		if len(parts) == 0 {
			return nil
		}
		s = beep.Seq(parts...)
	}
	return withVolume(s, vol*0.3)
}

// withVolume scales a streamer by a linear factor.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// crack is a decaying noise burst used for smashing a hazard.
func crack(d time.Duration) beep.Streamer {
	total := sampleRate.N(d)
	pos := 0
	seed := uint32(0x9e3779b9)
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for i := range samples {
			if pos >= total {
				break
			}
			t := float64(pos) / float64(sampleRate)
			seed ^= seed << 13
			seed ^= seed >> 17
			seed ^= seed << 5
			noise := float64(seed)/float64(math.MaxUint32)*2 - 1
			v := math.Exp(-t*18) * (0.6*noise + 0.4*math.Sin(2*math.Pi*90*t))
			samples[i][0] = v
			samples[i][1] = v
			pos++
			n++
		}
		return n, true
	})
}
