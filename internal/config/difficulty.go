package config

import "time"

// ApplyTadpolePreset modifies the config based on a difficulty preset.
// Fixed keeps stage counting but freezes the obstacle speed.
func ApplyTadpolePreset(cfg *TadpoleConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Progression.StartSpeed = 0.08
		cfg.Progression.SpeedIncrement = 0.015
		cfg.Physics.MaxJumps = 4
		cfg.Buffs.Invulnerability = 7 * time.Second
	case DifficultyNormal:
		d := DefaultTadpoleConfig()
		cfg.Progression.StartSpeed = d.Progression.StartSpeed
		cfg.Progression.SpeedIncrement = d.Progression.SpeedIncrement
	case DifficultyHard:
		cfg.Progression.StartSpeed = 0.13
		cfg.Progression.SpeedIncrement = 0.03
		cfg.Physics.MaxJumps = 2
		cfg.Buffs.Invulnerability = 3 * time.Second
		cfg.Progression.MovingHazardAt /= 2
		cfg.Progression.HazardZonesAt /= 2
	case DifficultyFixed:
		cfg.Progression.SpeedIncrement = 0
	}
}
