package tadpole

import (
	"time"

	"github.com/vovakirdan/tadpole-arcade/internal/core"
)

// EntityKind tags every non-player entity. Collision, spawn and reward
// logic dispatch on the kind, never on entity identity.
type EntityKind int

const (
	KindCoin EntityKind = iota
	KindPowerUp
	KindSpeedOrb
	KindChest
	KindObstacle
	KindHazardZone
)

// String returns the name of the entity kind.
func (k EntityKind) String() string {
	switch k {
	case KindCoin:
		return "coin"
	case KindPowerUp:
		return "power-up"
	case KindSpeedOrb:
		return "speed-orb"
	case KindChest:
		return "chest"
	case KindObstacle:
		return "log"
	case KindHazardZone:
		return "volcano"
	default:
		return "unknown"
	}
}

// Shape selects the collision test used for a kind.
type Shape int

const (
	ShapeNone   Shape = iota
	ShapeSphere       // center distance against the pickup radius
	ShapeBox          // per-axis half extent overlap
	ShapeZone         // horizontal distance against the zone radius
)

// Shape returns the collision shape for this kind.
func (k EntityKind) Shape() Shape {
	switch k {
	case KindCoin, KindPowerUp, KindSpeedOrb:
		return ShapeSphere
	case KindObstacle, KindChest:
		return ShapeBox
	case KindHazardZone:
		return ShapeZone
	default:
		return ShapeNone
	}
}

// Lethal reports whether touching this kind ends the run.
func (k EntityKind) Lethal() bool {
	return k == KindObstacle || k == KindHazardZone
}

// Entity is a recycled world object. Entities are repositioned on respawn,
// never reallocated.
type Entity struct {
	Kind     EntityKind
	Pos      core.Vec3
	Visible  bool          // false while the kind is locked or disabled
	Broken   bool          // hazard smashed while invulnerable, inert until respawn
	BrokenAt time.Duration // clock time of the break
	BaseY    float64       // resting height, center of vertical oscillation
	Phase    float64       // oscillation phase in radians
	DriftX   float64       // sideways velocity of roaming zones
}

// Active reports whether the entity takes part in collisions.
func (e Entity) Active() bool {
	return e.Visible && !e.Broken
}
