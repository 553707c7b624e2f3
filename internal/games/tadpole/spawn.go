package tadpole

import (
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tadpole-arcade/internal/config"
	"github.com/vovakirdan/tadpole-arcade/internal/core"
)

// SpawnPolicy produces randomized spawn positions per entity kind.
type SpawnPolicy struct {
	rng          *rand.Rand
	cfg          *config.TadpoleConfig
	movingHazard bool
	logger       *log.Logger
}

// NewSpawnPolicy creates a spawn policy with the given RNG seed.
func NewSpawnPolicy(seed int64, cfg *config.TadpoleConfig, logger *log.Logger) *SpawnPolicy {
	return &SpawnPolicy{
		rng:    rand.New(rand.NewSource(seed)),
		cfg:    cfg,
		logger: logger,
	}
}

// Reset reseeds the RNG and drops the moving-hazard mode.
func (sp *SpawnPolicy) Reset(seed int64) {
	sp.rng = rand.New(rand.NewSource(seed))
	sp.movingHazard = false
}

// SetMovingHazard switches obstacle spawns into the vertical-dodge band.
func (sp *SpawnPolicy) SetMovingHazard(on bool) {
	sp.movingHazard = on
}

// MovingHazard reports whether obstacle spawns use the height band.
func (sp *SpawnPolicy) MovingHazard() bool {
	return sp.movingHazard
}

// Range returns the configured spawn range for a kind.
func (sp *SpawnPolicy) Range(kind EntityKind) config.SpawnRange {
	s := sp.cfg.Spawns
	switch kind {
	case KindCoin:
		return s.Coin
	case KindPowerUp:
		return s.PowerUp
	case KindSpeedOrb:
		return s.SpeedOrb
	case KindChest:
		return s.Chest
	case KindObstacle:
		return s.Obstacle
	case KindHazardZone:
		return s.HazardZone
	default:
		return s.Coin
	}
}

// Default spawns a kind within its configured depth range.
func (sp *SpawnPolicy) Default(kind EntityKind) core.Vec3 {
	r := sp.Range(kind)
	return sp.Respawn(kind, r.ZMin, r.ZMax)
}

// Respawn returns a new position for a kind, zMin..zMax units ahead of the
// player. An inverted range is replaced by a minimal valid one.
func (sp *SpawnPolicy) Respawn(kind EntityKind, zMin, zMax float64) core.Vec3 {
	if zMax < zMin {
		fixed := zMin + sp.cfg.World.MinSpawnDepth
		sp.logger.Warn("inverted spawn range, using minimal range",
			"kind", kind, "z_min", zMin, "z_max", zMax, "using_max", fixed)
		zMax = fixed
	}

	w := sp.cfg.World.LaneHalfWidth
	x := (sp.rng.Float64()*2 - 1) * w
	z := -(zMin + sp.rng.Float64()*(zMax-zMin))

	y := sp.Range(kind).Y
	if kind == KindObstacle && sp.movingHazard {
		y = sp.cfg.World.GroundY + sp.rng.Float64()*sp.cfg.World.HazardBand
	}

	return core.V3(x, y, z)
}

// Drift returns a random sideways velocity for a roaming zone.
func (sp *SpawnPolicy) Drift() float64 {
	d := sp.cfg.World.ZoneDrift
	if sp.rng.Intn(2) == 0 {
		return -d
	}
	return d
}

// Phase returns a random oscillation phase.
func (sp *SpawnPolicy) Phase() float64 {
	return sp.rng.Float64() * 2 * math.Pi
}
