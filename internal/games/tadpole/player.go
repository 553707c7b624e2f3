package tadpole

import (
	"github.com/vovakirdan/tadpole-arcade/internal/config"
	"github.com/vovakirdan/tadpole-arcade/internal/core"
)

// Player is the tadpole: position, vertical velocity, steering flags and
// the mid-water jump budget.
type Player struct {
	Pos            core.Vec3
	VelY           float64
	Left, Right    bool // held steering input
	JumpsRemaining int
	Tilt           float64 // cosmetic, derived from VelY each tick
}

// NewPlayer places a player at the configured spawn point with a full jump budget.
func NewPlayer(cfg config.TadpoleConfig) Player {
	return Player{
		Pos:            core.V3(cfg.Player.StartX, cfg.Player.StartY, cfg.Player.StartZ),
		JumpsRemaining: cfg.Physics.MaxJumps,
	}
}

// Jump starts a swim stroke if the budget allows.
// Returns false (and changes nothing) when no jumps are left.
func (p *Player) Jump(phys config.TadpolePhysics) bool {
	if p.JumpsRemaining <= 0 {
		return false
	}
	p.VelY = phys.JumpVelocity
	p.JumpsRemaining--
	return true
}

// Advance integrates one tick: steering, gravity, water drag and the ground clamp.
func (p *Player) Advance(phys config.TadpolePhysics, groundY float64) {
	if p.Left {
		p.Pos.X -= phys.MoveSpeed
	}
	if p.Right {
		p.Pos.X += phys.MoveSpeed
	}

	p.VelY += phys.Gravity
	p.VelY *= phys.WaterResistance
	p.Pos.Y += p.VelY

	if p.Pos.Y <= groundY {
		p.Pos.Y = groundY
		p.VelY = 0
		p.JumpsRemaining = phys.MaxJumps
	}

	p.Tilt = tiltFor(p.VelY, phys)
}

// tiltFor maps vertical velocity onto [-MaxTilt, MaxTilt].
func tiltFor(vel float64, phys config.TadpolePhysics) float64 {
	limit := phys.JumpVelocity
	if limit <= 0 {
		return 0
	}
	v := core.ClampF(vel, -limit, limit)
	return v / limit * phys.MaxTilt
}
