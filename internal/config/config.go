// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

import "time"

// TadpoleConfig contains all tunables for the tadpole runner.
// Speeds and accelerations are per simulation tick; timed effects use
// wall-clock durations measured by the game clock.
type TadpoleConfig struct {
	Physics     TadpolePhysics     `yaml:"physics"`
	Player      TadpolePlayer      `yaml:"player"`
	World       TadpoleWorld       `yaml:"world"`
	Spawns      TadpoleSpawns      `yaml:"spawns"`
	Collision   TadpoleCollision   `yaml:"collision"`
	Rewards     TadpoleRewards     `yaml:"rewards"`
	Progression TadpoleProgression `yaml:"progression"`
	Buffs       TadpoleBuffs       `yaml:"buffs"`
	Features    TadpoleFeatures    `yaml:"features"`
}

// TadpolePhysics defines the underwater physics.
type TadpolePhysics struct {
	Gravity         float64 `yaml:"gravity"`          // Added to vertical velocity every tick (negative)
	WaterResistance float64 `yaml:"water_resistance"` // Velocity damping factor, < 1
	JumpVelocity    float64 `yaml:"jump_velocity"`    // Vertical velocity set by a jump
	MoveSpeed       float64 `yaml:"move_speed"`       // Horizontal distance per tick while steering
	MaxJumps        int     `yaml:"max_jumps"`        // Jump budget refilled on ground contact
	MaxTilt         float64 `yaml:"max_tilt"`         // Radians at full vertical speed
}

// TadpolePlayer defines the player's spawn point and size.
type TadpolePlayer struct {
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	StartZ float64 `yaml:"start_z"`
	Radius float64 `yaml:"radius"`
}

// TadpoleWorld defines the play volume.
type TadpoleWorld struct {
	GroundY         float64 `yaml:"ground_y"`          // Player clamp height
	FallFloor       float64 `yaml:"fall_floor"`        // Below this the player fell through the world
	LaneHalfWidth   float64 `yaml:"lane_half_width"`   // Spawn X range is [-w, w]
	BehindZ         float64 `yaml:"behind_z"`          // Entities past this Z are recycled
	MinSpawnDepth   float64 `yaml:"min_spawn_depth"`   // Width of the substitute range for bad spawn ranges
	HazardBand      float64 `yaml:"hazard_band"`       // Height band of the moving hazard above ground
	HazardAmplitude float64 `yaml:"hazard_amplitude"`  // Vertical oscillation of the moving hazard
	ZoneDrift       float64 `yaml:"zone_drift"`        // Sideways drift of hazard zones per tick
	HazardZoneCount int     `yaml:"hazard_zone_count"` // Number of roaming hazard zones
}

// SpawnRange is the depth band ahead of the player an entity spawns in,
// plus its resting height.
type SpawnRange struct {
	ZMin float64 `yaml:"z_min"`
	ZMax float64 `yaml:"z_max"`
	Y    float64 `yaml:"y"`
}

// TadpoleSpawns holds the spawn range per entity kind.
type TadpoleSpawns struct {
	Coin       SpawnRange `yaml:"coin"`
	PowerUp    SpawnRange `yaml:"power_up"`
	SpeedOrb   SpawnRange `yaml:"speed_orb"`
	Chest      SpawnRange `yaml:"chest"`
	Obstacle   SpawnRange `yaml:"obstacle"`
	HazardZone SpawnRange `yaml:"hazard_zone"`
}

// Extent is a set of box half extents.
type Extent struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// TadpoleCollision defines hitbox geometry.
type TadpoleCollision struct {
	PickupRadius float64 `yaml:"pickup_radius"` // Center distance for coins, power-ups, orbs
	Obstacle     Extent  `yaml:"obstacle"`      // Half extents of the log
	Chest        Extent  `yaml:"chest"`         // Half extents of the treasure chest
	ZoneRadius   float64 `yaml:"zone_radius"`   // Horizontal radius of a hazard zone
}

// TadpoleRewards defines score payouts.
type TadpoleRewards struct {
	Coin           int `yaml:"coin"`             // Initial coin value
	PowerUp        int `yaml:"power_up"`         // Points for a power-up
	SpeedOrb       int `yaml:"speed_orb"`        // Points for a speed orb
	Chest          int `yaml:"chest"`            // Points for a chest
	ChestCoinBonus int `yaml:"chest_coin_bonus"` // Coin value increase per chest
}

// TadpoleProgression defines stages, speed and unlocks.
type TadpoleProgression struct {
	StartSpeed        float64 `yaml:"start_speed"`         // Obstacle speed per tick at stage 1
	SpeedIncrement    float64 `yaml:"speed_increment"`     // Added per stage
	StageBand         int     `yaml:"stage_band"`          // Points per stage
	MovingHazardAt    int     `yaml:"moving_hazard_at"`    // Score above which the log moves vertically
	HazardZonesAt     int     `yaml:"hazard_zones_at"`     // Score above which hazard zones roam
	PowerUpEvery      int     `yaml:"power_up_every"`      // Points per extra power-up
	MaxPowerUps       int     `yaml:"max_power_ups"`       // Cap on live power-up instances, 0 = no cap
	OscillationFactor float64 `yaml:"oscillation_factor"`  // Hazard oscillation speed relative to base speed
}

// TadpoleBuffs defines timed effects.
type TadpoleBuffs struct {
	Invulnerability time.Duration `yaml:"invulnerability"`
	SpeedBoost      time.Duration `yaml:"speed_boost"`
	BoostFactor     float64       `yaml:"boost_factor"`
	BreakCooldown   time.Duration `yaml:"break_cooldown"` // How long a broken hazard stays inert
}

// TadpoleFeatures switches whole mechanics on or off.
// The classic variant runs with only coins and the log.
type TadpoleFeatures struct {
	PowerUps     bool `yaml:"power_ups"`
	SpeedOrbs    bool `yaml:"speed_orbs"`
	Chests       bool `yaml:"chests"`
	Stages       bool `yaml:"stages"`
	MovingHazard bool `yaml:"moving_hazard"`
	HazardZones  bool `yaml:"hazard_zones"`
}

// ClassicFeatures returns the feature set of the first tadpole iteration.
func ClassicFeatures() TadpoleFeatures {
	return TadpoleFeatures{}
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset.
// Unknown or empty strings return "" (use config as loaded).
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
