package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML TadpoleConfig
	if err := yaml.Unmarshal(GetDefaultYAML("tadpole"), &fromYAML); err != nil {
		t.Fatalf("embedded yaml does not parse: %v", err)
	}

	if fromYAML != DefaultTadpoleConfig() {
		t.Errorf("embedded defaults drifted from DefaultTadpoleConfig():\n yaml: %+v\n code: %+v",
			fromYAML, DefaultTadpoleConfig())
	}
}

func TestLoadTadpoleCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tadpole.yaml")
	data := []byte("physics:\n  max_jumps: 5\nbuffs:\n  speed_boost: 2500ms\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadTadpole(path)
	if err != nil {
		t.Fatalf("LoadTadpole() failed: %v", err)
	}

	if cfg.Physics.MaxJumps != 5 {
		t.Errorf("MaxJumps = %d, expected 5", cfg.Physics.MaxJumps)
	}
	if cfg.Buffs.SpeedBoost != 2500*time.Millisecond {
		t.Errorf("SpeedBoost = %v, expected 2.5s", cfg.Buffs.SpeedBoost)
	}
	// Untouched keys keep their defaults
	if cfg.Rewards.Coin != 10 {
		t.Errorf("Coin reward = %d, expected default 10", cfg.Rewards.Coin)
	}
}

func TestLoadTadpoleMissingCustomPath(t *testing.T) {
	_, err := LoadTadpole(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("expected an error for a missing custom config")
	}
}

func TestValidateRepairsNonsense(t *testing.T) {
	cfg := DefaultTadpoleConfig()
	cfg.Physics.WaterResistance = 1.5
	cfg.Progression.StageBand = 0
	cfg.Buffs.BoostFactor = -2
	cfg.Physics.MaxJumps = -1
	cfg.Progression.MaxPowerUps = -3

	cfg.Validate()

	if cfg.Physics.WaterResistance != 0.98 {
		t.Errorf("WaterResistance = %f, expected default", cfg.Physics.WaterResistance)
	}
	if cfg.Progression.StageBand != 50 {
		t.Errorf("StageBand = %d, expected default", cfg.Progression.StageBand)
	}
	if cfg.Buffs.BoostFactor != 1 {
		t.Errorf("BoostFactor = %f, expected 1", cfg.Buffs.BoostFactor)
	}
	if cfg.Physics.MaxJumps != 0 {
		t.Errorf("MaxJumps = %d, expected 0", cfg.Physics.MaxJumps)
	}
	if cfg.Progression.MaxPowerUps != 0 {
		t.Errorf("MaxPowerUps = %d, expected 0 (no cap)", cfg.Progression.MaxPowerUps)
	}
}

func TestApplyTadpolePreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		speed     float64
		increment float64
	}{
		{DifficultyEasy, 0.08, 0.015},
		{DifficultyNormal, 0.1, 0.02},
		{DifficultyHard, 0.13, 0.03},
		{DifficultyFixed, 0.1, 0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultTadpoleConfig()
			ApplyTadpolePreset(&cfg, tc.preset)
			if cfg.Progression.StartSpeed != tc.speed {
				t.Errorf("StartSpeed = %f, expected %f", cfg.Progression.StartSpeed, tc.speed)
			}
			if cfg.Progression.SpeedIncrement != tc.increment {
				t.Errorf("SpeedIncrement = %f, expected %f", cfg.Progression.SpeedIncrement, tc.increment)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("hard should parse")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("unknown preset should parse to empty")
	}
}

func TestLoadTadpoleUserPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := UserConfigPath("tadpole.yaml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("rewards:\n  coin: 25\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadTadpole("")
	if err != nil {
		t.Fatalf("LoadTadpole() failed: %v", err)
	}
	if cfg.Rewards.Coin != 25 {
		t.Errorf("Coin reward = %d, expected 25 from the user config", cfg.Rewards.Coin)
	}
}
