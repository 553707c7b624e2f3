package tadpole

import (
	"time"

	"github.com/vovakirdan/tadpole-arcade/internal/config"
)

// Session is the run state machine: Running until a lethal hit or a fall,
// then GameOver until an explicit restart.
type Session int

const (
	Running Session = iota
	GameOver
)

// String returns the session name.
func (s Session) String() string {
	switch s {
	case Running:
		return "running"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// EndReason says why a run ended.
type EndReason string

const (
	EndNone     EndReason = ""
	EndObstacle EndReason = "hit_log"
	EndZone     EndReason = "hit_volcano"
	EndFell     EndReason = "fell"
)

// GameState is the aggregate owned by the frame driver. Collaborators only
// read it after a tick has finished.
type GameState struct {
	Player       Player
	Entities     []Entity
	Progress     Progression
	Invulnerable Buff
	SpeedBoost   Buff
	Session      Session
	EndReason    EndReason
	Debug        bool
}

// NewGameState builds the initial aggregate for a config. Entity positions
// are left for the spawn pass.
func NewGameState(cfg *config.TadpoleConfig) GameState {
	s := GameState{
		Player:   NewPlayer(*cfg),
		Progress: NewProgression(cfg),
		Invulnerable: Buff{
			Duration: cfg.Buffs.Invulnerability,
		},
		SpeedBoost: Buff{
			Duration: cfg.Buffs.SpeedBoost,
		},
		Session: Running,
	}
	s.Entities = baseEntities(cfg)
	return s
}

// baseEntities returns the fixed entity set for the enabled features.
func baseEntities(cfg *config.TadpoleConfig) []Entity {
	f := cfg.Features
	ents := []Entity{
		{Kind: KindCoin, Visible: true},
		{Kind: KindObstacle, Visible: true},
	}
	if f.PowerUps {
		ents = append(ents, Entity{Kind: KindPowerUp, Visible: true})
	}
	if f.SpeedOrbs {
		ents = append(ents, Entity{Kind: KindSpeedOrb, Visible: true})
	}
	if f.Chests {
		ents = append(ents, Entity{Kind: KindChest, Visible: true})
	}
	if f.HazardZones {
		for i := 0; i < cfg.World.HazardZoneCount; i++ {
			// Hidden until the unlock threshold is passed
			ents = append(ents, Entity{Kind: KindHazardZone})
		}
	}
	return ents
}

// Speed returns the world speed: the stage speed, multiplied once while
// the speed boost is active.
func (s *GameState) Speed(boostFactor float64) float64 {
	if s.SpeedBoost.Active {
		return s.Progress.BaseSpeed * boostFactor
	}
	return s.Progress.BaseSpeed
}

// Count returns how many entities of a kind exist.
func (s *GameState) Count(kind EntityKind) int {
	n := 0
	for i := range s.Entities {
		if s.Entities[i].Kind == kind {
			n++
		}
	}
	return n
}

// Overlay is the one-way data push for the HUD.
type Overlay struct {
	Score        int
	Stage        int
	CoinValue    int
	Coins        int
	Jumps        int
	MaxJumps     int
	Speed        float64
	Invulnerable time.Duration // remaining
	SpeedBoost   time.Duration // remaining
	GameOver     bool
	EndReason    EndReason
	Paused       bool
	Debug        bool
}
