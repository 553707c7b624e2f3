package tadpole

import (
	"testing"

	"github.com/vovakirdan/tadpole-arcade/internal/config"
)

func TestStageCrossing(t *testing.T) {
	tests := []struct {
		name       string
		from       int
		points     int
		wantStages int
	}{
		{"45 to 55", 45, 10, 1},
		{"95 to 105", 95, 10, 1},
		{"40 to 50 exact boundary", 40, 10, 1},
		{"50 to 60 after boundary", 50, 10, 0},
		{"90 to 100 exact hundred", 90, 10, 1},
		{"100 to 110", 100, 10, 0},
		{"30 to 40", 30, 10, 0},
		{"45 to 155 three bands at once", 45, 110, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultTadpoleConfig()
			p := NewProgression(&cfg)
			p.Score = tt.from

			c := p.Award(tt.points)
			if c.Stages != tt.wantStages {
				t.Errorf("Stages = %d, want %d", c.Stages, tt.wantStages)
			}
			if p.Stage != 1+tt.wantStages {
				t.Errorf("Stage = %d, want %d", p.Stage, 1+tt.wantStages)
			}
			wantSpeed := cfg.Progression.StartSpeed
			for i := 0; i < tt.wantStages; i++ {
				wantSpeed += cfg.Progression.SpeedIncrement
			}
			if p.BaseSpeed != wantSpeed {
				t.Errorf("BaseSpeed = %v, want %v", p.BaseSpeed, wantSpeed)
			}
		})
	}
}

func TestFiveCoinsOneStage(t *testing.T) {
	cfg := config.DefaultTadpoleConfig()
	p := NewProgression(&cfg)

	stages := 0
	for i := 0; i < 5; i++ {
		stages += p.OnPickup(KindCoin).Stages
	}

	if p.Score != 50 {
		t.Errorf("Score = %d, want 50", p.Score)
	}
	if p.Stage != 2 || stages != 1 {
		t.Errorf("Stage = %d after %d crossings, want 2 after 1", p.Stage, stages)
	}
	if want := cfg.Progression.StartSpeed + cfg.Progression.SpeedIncrement; p.BaseSpeed != want {
		t.Errorf("BaseSpeed = %v, want %v", p.BaseSpeed, want)
	}
	if p.CoinsCollected != 5 {
		t.Errorf("CoinsCollected = %d, want 5", p.CoinsCollected)
	}
}

func TestOscillationFollowsSpeed(t *testing.T) {
	cfg := config.DefaultTadpoleConfig()
	p := NewProgression(&cfg)
	p.Score = 45
	p.Award(10)

	if want := p.BaseSpeed * cfg.Progression.OscillationFactor; p.OscillationSpeed != want {
		t.Errorf("OscillationSpeed = %v, want %v", p.OscillationSpeed, want)
	}
}

func TestChestRaisesCoinValue(t *testing.T) {
	cfg := config.DefaultTadpoleConfig()
	p := NewProgression(&cfg)

	p.OnPickup(KindChest)
	if p.Score != cfg.Rewards.Chest {
		t.Errorf("Score = %d, want %d", p.Score, cfg.Rewards.Chest)
	}
	if want := cfg.Rewards.Coin + cfg.Rewards.ChestCoinBonus; p.CoinValue != want {
		t.Errorf("CoinValue = %d, want %d", p.CoinValue, want)
	}

	before := p.Score
	p.OnPickup(KindCoin)
	if got := p.Score - before; got != p.CoinValue {
		t.Errorf("coin paid %d, want %d", got, p.CoinValue)
	}
}

func TestUnlockThresholds(t *testing.T) {
	cfg := config.DefaultTadpoleConfig()
	p := NewProgression(&cfg)

	p.Score = cfg.Progression.MovingHazardAt - 10
	if c := p.Award(10); c.MovingHazardUnlocked {
		t.Error("moving hazard unlocked at exactly the threshold, want strictly above")
	}
	if c := p.Award(10); !c.MovingHazardUnlocked || !p.MovingHazard {
		t.Error("moving hazard should unlock above the threshold")
	}
	if c := p.Award(10); c.MovingHazardUnlocked {
		t.Error("unlock should be reported once")
	}

	p.Score = cfg.Progression.HazardZonesAt
	if c := p.Award(5); !c.HazardZonesUnlocked || !p.HazardZones {
		t.Error("hazard zones should unlock above the threshold")
	}
}

func TestPowerUpMilestones(t *testing.T) {
	cfg := config.DefaultTadpoleConfig()
	p := NewProgression(&cfg)

	p.Score = 95
	if c := p.Award(10); c.PowerUps != 1 {
		t.Errorf("PowerUps = %d, want 1", c.PowerUps)
	}
	if c := p.Award(10); c.PowerUps != 0 {
		t.Errorf("PowerUps = %d, want 0", c.PowerUps)
	}
}

func TestClassicFeaturesFreezeProgression(t *testing.T) {
	cfg := config.DefaultTadpoleConfig()
	cfg.Features = config.ClassicFeatures()
	p := NewProgression(&cfg)

	c := p.Award(400)
	if c.Stages != 0 || p.Stage != 1 {
		t.Errorf("Stage = %d, want 1 with stages disabled", p.Stage)
	}
	if c.PowerUps != 0 || c.MovingHazardUnlocked || c.HazardZonesUnlocked {
		t.Errorf("unexpected crossing %+v with all features off", c)
	}
	if p.BaseSpeed != cfg.Progression.StartSpeed {
		t.Errorf("BaseSpeed = %v, want %v", p.BaseSpeed, cfg.Progression.StartSpeed)
	}
}

func TestZeroAwardIgnored(t *testing.T) {
	cfg := config.DefaultTadpoleConfig()
	p := NewProgression(&cfg)
	p.Score = 49

	if c := p.Award(0); c != (Crossing{}) {
		t.Errorf("Award(0) = %+v, want empty", c)
	}
	if p.Score != 49 {
		t.Errorf("Score = %d, want 49", p.Score)
	}
}
