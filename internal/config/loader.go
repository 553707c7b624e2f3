package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTadpole loads Tadpole Runner configuration.
// Search order: customPath -> ~/.arcade/configs/tadpole.yaml -> ./configs/tadpole.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a partial file only
// overrides the keys it names.
func LoadTadpole(customPath string) (TadpoleConfig, error) {
	cfg := DefaultTadpoleConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultTadpoleConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		cfg.Validate()
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := UserConfigPath("tadpole.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				cfg.Validate()
				return cfg, nil
			}
			cfg = DefaultTadpoleConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/tadpole.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			cfg.Validate()
			return cfg, nil
		}
		cfg = DefaultTadpoleConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(GetDefaultYAML("tadpole"), &cfg); err != nil {
		return DefaultTadpoleConfig(), nil // Fallback to hardcoded if embed fails
	}
	cfg.Validate()
	return cfg, nil
}

// UserConfigPath returns the path to a user config file, or empty if home is unavailable.
func UserConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Validate repairs values that would break the simulation.
// Broken spawn ranges are left alone: the spawn policy corrects those itself.
func (c *TadpoleConfig) Validate() {
	d := DefaultTadpoleConfig()

	if c.Physics.MaxJumps < 0 {
		c.Physics.MaxJumps = 0
	}
	if c.Physics.WaterResistance <= 0 || c.Physics.WaterResistance > 1 {
		c.Physics.WaterResistance = d.Physics.WaterResistance
	}
	if c.Physics.JumpVelocity <= 0 {
		c.Physics.JumpVelocity = d.Physics.JumpVelocity
	}
	if c.Player.Radius <= 0 {
		c.Player.Radius = d.Player.Radius
	}
	if c.World.LaneHalfWidth <= 0 {
		c.World.LaneHalfWidth = d.World.LaneHalfWidth
	}
	if c.World.MinSpawnDepth <= 0 {
		c.World.MinSpawnDepth = d.World.MinSpawnDepth
	}
	if c.World.HazardZoneCount < 0 {
		c.World.HazardZoneCount = 0
	}
	if c.Progression.StageBand <= 0 {
		c.Progression.StageBand = d.Progression.StageBand
	}
	if c.Progression.PowerUpEvery <= 0 {
		c.Progression.PowerUpEvery = d.Progression.PowerUpEvery
	}
	if c.Progression.MaxPowerUps < 0 {
		c.Progression.MaxPowerUps = 0
	}
	if c.Progression.StartSpeed <= 0 {
		c.Progression.StartSpeed = d.Progression.StartSpeed
	}
	if c.Buffs.BoostFactor <= 0 {
		c.Buffs.BoostFactor = 1
	}
}
