package tadpole

import (
	"github.com/vovakirdan/tadpole-arcade/internal/config"
	"github.com/vovakirdan/tadpole-arcade/internal/core"
)

// Geometry holds the hitbox parameters shared by every collision test.
type Geometry struct {
	PickupRadius float64
	PlayerRadius float64
	ZoneRadius   float64
	Obstacle     core.Vec3 // half extents
	Chest        core.Vec3 // half extents
}

// GeometryFrom extracts collision geometry from the game config.
func GeometryFrom(cfg config.TadpoleConfig) Geometry {
	c := cfg.Collision
	return Geometry{
		PickupRadius: c.PickupRadius,
		PlayerRadius: cfg.Player.Radius,
		ZoneRadius:   c.ZoneRadius,
		Obstacle:     core.V3(c.Obstacle.X, c.Obstacle.Y, c.Obstacle.Z),
		Chest:        core.V3(c.Chest.X, c.Chest.Y, c.Chest.Z),
	}
}

// HalfExtents returns the box half extents for a box-shaped kind.
func (g Geometry) HalfExtents(k EntityKind) core.Vec3 {
	switch k {
	case KindObstacle:
		return g.Obstacle
	case KindChest:
		return g.Chest
	default:
		return core.Vec3{}
	}
}

// Collides tests an entity against the player position. It is a pure
// function of the two positions; boundaries that exactly touch do not collide.
func Collides(e Entity, player core.Vec3, geo Geometry) bool {
	switch e.Kind.Shape() {
	case ShapeSphere:
		return e.Pos.DistSq(player) < geo.PickupRadius*geo.PickupRadius
	case ShapeBox:
		r := geo.PlayerRadius
		box := core.Box3{Center: e.Pos, Half: geo.HalfExtents(e.Kind)}
		return box.Overlaps(core.Box3{Center: player, Half: core.V3(r, r, r)})
	case ShapeZone:
		return e.Pos.DistXZSq(player) < geo.ZoneRadius*geo.ZoneRadius
	default:
		return false
	}
}
