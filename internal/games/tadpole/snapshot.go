package tadpole

// Snapshot is a flat copy of the simulation values. The debug readout
// prints it and tests compare it across runs.
type Snapshot struct {
	Tick         uint64
	Session      Session
	Score        int
	Stage        int
	CoinValue    int
	BaseSpeed    float64
	PlayerX      float64
	PlayerY      float64
	VelY         float64
	Jumps        int
	Entities     int
	Invulnerable bool
	SpeedBoost   bool
	MovingHazard bool
	HazardZones  bool
}

// Snapshot returns the current values.
func (g *Game) Snapshot() Snapshot {
	s := &g.state
	return Snapshot{
		Tick:         g.tick,
		Session:      s.Session,
		Score:        s.Progress.Score,
		Stage:        s.Progress.Stage,
		CoinValue:    s.Progress.CoinValue,
		BaseSpeed:    s.Progress.BaseSpeed,
		PlayerX:      s.Player.Pos.X,
		PlayerY:      s.Player.Pos.Y,
		VelY:         s.Player.VelY,
		Jumps:        s.Player.JumpsRemaining,
		Entities:     len(s.Entities),
		Invulnerable: s.Invulnerable.Active,
		SpeedBoost:   s.SpeedBoost.Active,
		MovingHazard: s.Progress.MovingHazard,
		HazardZones:  s.Progress.HazardZones,
	}
}

// Overlay returns the values the HUD displays this frame.
func (g *Game) Overlay() Overlay {
	s := &g.state
	now := g.clock.Now()
	return Overlay{
		Score:        s.Progress.Score,
		Stage:        s.Progress.Stage,
		CoinValue:    s.Progress.CoinValue,
		Coins:        s.Progress.CoinsCollected,
		Jumps:        s.Player.JumpsRemaining,
		MaxJumps:     g.cfg.Physics.MaxJumps,
		Speed:        g.Speed(),
		Invulnerable: s.Invulnerable.Remaining(now),
		SpeedBoost:   s.SpeedBoost.Remaining(now),
		GameOver:     s.Session == GameOver,
		EndReason:    s.EndReason,
		Paused:       g.paused,
		Debug:        s.Debug,
	}
}
