package tadpole

import (
	"testing"

	"github.com/vovakirdan/tadpole-arcade/internal/config"
	"github.com/vovakirdan/tadpole-arcade/internal/core"
)

func testGeometry() Geometry {
	return GeometryFrom(config.DefaultTadpoleConfig())
}

func TestPickupRadiusBoundary(t *testing.T) {
	geo := testGeometry()
	player := core.V3(0, 1, 2)
	r := geo.PickupRadius
	const eps = 1e-9

	tests := []struct {
		name   string
		offset core.Vec3
		want   bool
	}{
		{"inside on x", core.V3(r-eps, 0, 0), true},
		{"exactly on x", core.V3(r, 0, 0), false},
		{"outside on x", core.V3(r+eps, 0, 0), false},
		{"inside on -x", core.V3(-(r - eps), 0, 0), true},
		{"exactly on -x", core.V3(-r, 0, 0), false},
		{"inside on y", core.V3(0, r-eps, 0), true},
		{"outside on y", core.V3(0, r+eps, 0), false},
		{"centered", core.Vec3{}, true},
	}

	for _, kind := range []EntityKind{KindCoin, KindPowerUp, KindSpeedOrb} {
		for _, tt := range tests {
			t.Run(kind.String()+"/"+tt.name, func(t *testing.T) {
				e := Entity{Kind: kind, Pos: core.V3(player.X+tt.offset.X, player.Y+tt.offset.Y, player.Z+tt.offset.Z), Visible: true}
				if got := Collides(e, player, geo); got != tt.want {
					t.Errorf("Collides() = %v, want %v", got, tt.want)
				}
			})
		}
	}
}

func TestPickupSymmetric(t *testing.T) {
	geo := testGeometry()
	a := core.V3(0.2, 1.1, 1.7)
	b := core.V3(-0.1, 1.0, 2.0)

	ab := Collides(Entity{Kind: KindCoin, Pos: a}, b, geo)
	ba := Collides(Entity{Kind: KindCoin, Pos: b}, a, geo)
	if ab != ba {
		t.Errorf("pickup test not symmetric: %v vs %v", ab, ba)
	}
}

func TestBoxOneAxisApart(t *testing.T) {
	geo := testGeometry()
	player := core.V3(0, 1, 2)
	r := geo.PlayerRadius
	half := geo.Obstacle

	overlap := Entity{Kind: KindObstacle, Pos: player}
	if !Collides(overlap, player, geo) {
		t.Fatal("expected centered log to collide")
	}

	tests := []struct {
		name string
		pos  core.Vec3
	}{
		{"x touching", core.V3(player.X+half.X+r, player.Y, player.Z)},
		{"y touching", core.V3(player.X, player.Y+half.Y+r, player.Z)},
		{"z touching", core.V3(player.X, player.Y, player.Z+half.Z+r)},
		{"x apart", core.V3(player.X-half.X-r-0.1, player.Y, player.Z)},
		{"y apart", core.V3(player.X, player.Y-half.Y-r-0.1, player.Z)},
		{"z apart", core.V3(player.X, player.Y, player.Z-half.Z-r-0.1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Entity{Kind: KindObstacle, Pos: tt.pos}
			if Collides(e, player, geo) {
				t.Errorf("log at %+v should not collide with player at %+v", tt.pos, player)
			}
		})
	}

	// Just inside on every axis at once still collides
	near := core.V3(player.X+half.X+r-0.01, player.Y+half.Y+r-0.01, player.Z+half.Z+r-0.01)
	if !Collides(Entity{Kind: KindObstacle, Pos: near}, player, geo) {
		t.Error("expected overlap on all three axes to collide")
	}
}

func TestChestUsesChestExtents(t *testing.T) {
	geo := testGeometry()
	player := core.V3(0, 1, 2)

	// Inside the log's wide x extent but outside the chest's
	pos := core.V3(geo.Chest.X+geo.PlayerRadius+0.5, 1, 2)
	if Collides(Entity{Kind: KindChest, Pos: pos}, player, geo) {
		t.Error("chest should use its own half extents")
	}
	if !Collides(Entity{Kind: KindObstacle, Pos: pos}, player, geo) {
		t.Error("log should use its wide half extents")
	}
}

func TestZoneIgnoresHeight(t *testing.T) {
	geo := testGeometry()
	player := core.V3(0, 3, 2)

	zone := Entity{Kind: KindHazardZone, Pos: core.V3(0.5, 0, 2.5)}
	if !Collides(zone, player, geo) {
		t.Error("zone should collide regardless of height")
	}

	zone.Pos = core.V3(geo.ZoneRadius, -10, 2)
	if Collides(zone, player, geo) {
		t.Error("zone exactly at radius should not collide")
	}
}

func TestUnknownKindNeverCollides(t *testing.T) {
	geo := testGeometry()
	e := Entity{Kind: EntityKind(99), Pos: core.V3(0, 1, 2)}
	if Collides(e, e.Pos, geo) {
		t.Error("unknown kind should never collide")
	}
	if e.Kind.String() != "unknown" {
		t.Errorf("String() = %q, want unknown", e.Kind.String())
	}
}
