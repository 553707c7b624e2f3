package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/tadpole.yaml
var defaultTadpoleYAML []byte

// DefaultTadpoleConfig returns the hardcoded Tadpole Runner configuration.
// It mirrors defaults/tadpole.yaml and is used when the embedded YAML fails to parse.
func DefaultTadpoleConfig() TadpoleConfig {
	return TadpoleConfig{
		Physics: TadpolePhysics{
			Gravity:         -0.004,
			WaterResistance: 0.98,
			JumpVelocity:    0.15,
			MoveSpeed:       0.03,
			MaxJumps:        3,
			MaxTilt:         0.5,
		},
		Player: TadpolePlayer{
			StartX: 0,
			StartY: 1,
			StartZ: 2,
			Radius: 0.5,
		},
		World: TadpoleWorld{
			GroundY:         1,
			FallFloor:       0.5,
			LaneHalfWidth:   5,
			BehindZ:         5,
			MinSpawnDepth:   1,
			HazardBand:      2.5,
			HazardAmplitude: 1,
			ZoneDrift:       0.02,
			HazardZoneCount: 2,
		},
		Spawns: TadpoleSpawns{
			Coin:       SpawnRange{ZMin: 15, ZMax: 25, Y: 1},
			PowerUp:    SpawnRange{ZMin: 40, ZMax: 60, Y: 1.5},
			SpeedOrb:   SpawnRange{ZMin: 50, ZMax: 70, Y: 1.5},
			Chest:      SpawnRange{ZMin: 60, ZMax: 90, Y: 1},
			Obstacle:   SpawnRange{ZMin: 20, ZMax: 30, Y: 1},
			HazardZone: SpawnRange{ZMin: 30, ZMax: 45, Y: 0},
		},
		Collision: TadpoleCollision{
			PickupRadius: 0.6,
			Obstacle:     Extent{X: 7.5, Y: 0.25, Z: 0.25},
			Chest:        Extent{X: 0.5, Y: 0.4, Z: 0.4},
			ZoneRadius:   1.5,
		},
		Rewards: TadpoleRewards{
			Coin:           10,
			PowerUp:        0,
			SpeedOrb:       0,
			Chest:          20,
			ChestCoinBonus: 5,
		},
		Progression: TadpoleProgression{
			StartSpeed:        0.1,
			SpeedIncrement:    0.02,
			StageBand:         50,
			MovingHazardAt:    150,
			HazardZonesAt:     300,
			PowerUpEvery:      100,
			MaxPowerUps:       0,
			OscillationFactor: 0.5,
		},
		Buffs: TadpoleBuffs{
			Invulnerability: 5 * time.Second,
			SpeedBoost:      4 * time.Second,
			BoostFactor:     1.5,
			BreakCooldown:   time.Second,
		},
		Features: TadpoleFeatures{
			PowerUps:     true,
			SpeedOrbs:    true,
			Chests:       true,
			Stages:       true,
			MovingHazard: true,
			HazardZones:  true,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "tadpole", "tadpole_classic":
		return defaultTadpoleYAML
	default:
		return nil
	}
}
