package tadpole

import (
	"github.com/vovakirdan/tadpole-arcade/internal/config"
)

// Progression tracks score, stage, world speed and permanent unlocks.
type Progression struct {
	Score            int
	Stage            int
	CoinValue        int
	CoinsCollected   int
	BaseSpeed        float64
	OscillationSpeed float64
	MovingHazard     bool
	HazardZones      bool

	cfg *config.TadpoleConfig
}

// Crossing reports what a score change set off. Each band or milestone
// crossed is counted once, however large the award.
type Crossing struct {
	Stages               int  // stage bands crossed
	PowerUps             int  // extra power-up milestones crossed
	MovingHazardUnlocked bool // moving hazard switched on by this award
	HazardZonesUnlocked  bool // hazard zones switched on by this award
}

// NewProgression creates progression at its initial values.
func NewProgression(cfg *config.TadpoleConfig) Progression {
	p := Progression{cfg: cfg}
	p.Reset()
	return p
}

// Reset returns progression to stage 1 at the starting speed.
func (p *Progression) Reset() {
	p.Score = 0
	p.Stage = 1
	p.CoinValue = p.cfg.Rewards.Coin
	p.CoinsCollected = 0
	p.BaseSpeed = p.cfg.Progression.StartSpeed
	p.OscillationSpeed = p.BaseSpeed * p.cfg.Progression.OscillationFactor
	p.MovingHazard = false
	p.HazardZones = false
}

// Reward returns the points a pickup of this kind is worth right now.
func (p *Progression) Reward(kind EntityKind) int {
	r := p.cfg.Rewards
	switch kind {
	case KindCoin:
		return p.CoinValue
	case KindPowerUp:
		return r.PowerUp
	case KindSpeedOrb:
		return r.SpeedOrb
	case KindChest:
		return r.Chest
	default:
		return 0
	}
}

// OnPickup applies the score side of a consumed pickup.
func (p *Progression) OnPickup(kind EntityKind) Crossing {
	points := p.Reward(kind)
	switch kind {
	case KindCoin:
		p.CoinsCollected++
	case KindChest:
		p.CoinValue += p.cfg.Rewards.ChestCoinBonus
	}
	return p.Award(points)
}

// Award adds points and applies every stage band, power-up milestone and
// unlock threshold the new score crosses.
func (p *Progression) Award(points int) Crossing {
	var c Crossing
	if points <= 0 {
		return c
	}

	before := p.Score
	p.Score += points
	prog := p.cfg.Progression
	feat := p.cfg.Features

	if feat.Stages {
		c.Stages = bandsCrossed(before, p.Score, prog.StageBand)
		for i := 0; i < c.Stages; i++ {
			p.Stage++
			p.BaseSpeed += prog.SpeedIncrement
		}
		p.OscillationSpeed = p.BaseSpeed * prog.OscillationFactor
	}

	if feat.PowerUps {
		c.PowerUps = bandsCrossed(before, p.Score, prog.PowerUpEvery)
	}

	if feat.MovingHazard && !p.MovingHazard && p.Score > prog.MovingHazardAt {
		p.MovingHazard = true
		c.MovingHazardUnlocked = true
	}
	if feat.HazardZones && !p.HazardZones && p.Score > prog.HazardZonesAt {
		p.HazardZones = true
		c.HazardZonesUnlocked = true
	}

	return c
}

// bandsCrossed counts the multiples of band in (before, after].
func bandsCrossed(before, after, band int) int {
	if band <= 0 || after <= before {
		return 0
	}
	return after/band - before/band
}
