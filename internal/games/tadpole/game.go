// Package tadpole implements the tadpole runner: an underwater endless
// runner where the player steers a tadpole through a lane, swims up over
// logs and collects coins while the world speeds up stage by stage.
package tadpole

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tadpole-arcade/internal/config"
	"github.com/vovakirdan/tadpole-arcade/internal/core"
	"github.com/vovakirdan/tadpole-arcade/internal/registry"
)

// Game is the frame driver. It owns the GameState aggregate and mutates it
// in a fixed order once per Step.
type Game struct {
	id      string
	title   string
	classic bool
	fixed   *config.TadpoleConfig // set by NewWithConfig, skips file loading

	cfg     config.TadpoleConfig
	runtime core.RuntimeConfig
	state   GameState
	spawner *SpawnPolicy
	geo     Geometry
	clock   Clock
	paused  bool
	tick    uint64
	cues    []core.Cue
	logger  *log.Logger
}

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	realTimeClock    bool
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetRealTimeClock makes games reset afterwards time their buffs with a
// WallClock instead of the deterministic TickClock.
func SetRealTimeClock(on bool) {
	realTimeClock = on
}

// SetLogger replaces the package logger. Games created afterwards log
// spawn warnings and session transitions to it.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// New creates the full tadpole runner.
func New() *Game {
	return &Game{id: "tadpole", title: "Tadpole Runner", logger: logger}
}

// NewClassic creates the first iteration of the game: coins and a single
// log, no buffs, no stages.
func NewClassic() *Game {
	return &Game{id: "tadpole_classic", title: "Tadpole Runner Classic", classic: true, logger: logger}
}

// NewWithConfig creates a game that uses cfg as is instead of loading
// configuration files.
func NewWithConfig(cfg config.TadpoleConfig) *Game {
	g := New()
	g.fixed = &cfg
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset loads configuration, reseeds the spawn policy and starts a new run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()
	g.geo = GeometryFrom(g.cfg)
	if realTimeClock {
		g.clock = NewWallClock()
	} else {
		g.clock = NewTickClock(runtime.TickRate)
	}
	g.paused = false
	g.tick = 0

	if g.spawner == nil {
		g.spawner = NewSpawnPolicy(runtime.Seed, &g.cfg, g.logger)
	} else {
		g.spawner.cfg = &g.cfg
		g.spawner.Reset(runtime.Seed)
	}

	g.start()
}

func (g *Game) loadConfig() config.TadpoleConfig {
	var cfg config.TadpoleConfig
	if g.fixed != nil {
		cfg = *g.fixed
	} else {
		loaded, err := config.LoadTadpole(configPath)
		if err != nil {
			g.logger.Warn("using default config", "err", err)
			loaded = config.DefaultTadpoleConfig()
		}
		if difficultyPreset != "" {
			config.ApplyTadpolePreset(&loaded, difficultyPreset)
		}
		cfg = loaded
	}
	if g.classic {
		cfg.Features = config.ClassicFeatures()
	}
	return cfg
}

// start builds a fresh aggregate and runs the spawn pass for every entity.
func (g *Game) start() {
	g.state = NewGameState(&g.cfg)
	g.spawner.SetMovingHazard(false)
	for i := range g.state.Entities {
		g.respawn(&g.state.Entities[i])
	}
}

// Restart leaves GameOver and begins a new run. The RNG stream continues,
// so consecutive runs differ. It is a no-op while Running.
func (g *Game) Restart() bool {
	if g.state.Session != GameOver {
		return false
	}
	debug := g.state.Debug
	g.start()
	g.state.Debug = debug
	g.paused = false
	g.resumeClock()
	g.logger.Debug("run restarted", "game", g.id)
	return true
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.cues = nil

	if g.state.Session == GameOver {
		if in.Has(core.ActionRestart) {
			g.Restart()
		}
		return g.result()
	}

	if in.Has(core.ActionToggleDebug) {
		g.state.Debug = !g.state.Debug
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		if !g.paused {
			g.resumeClock()
		}
	}
	if g.paused {
		return g.result()
	}

	g.tick++
	if a, ok := g.clock.(advancer); ok {
		a.Advance()
	}
	now := g.clock.Now()

	// Input sampling
	p := &g.state.Player
	p.Left = in.IsHeld(core.ActionLeft)
	p.Right = in.IsHeld(core.ActionRight)
	if in.Has(core.ActionJump) {
		p.Jump(g.cfg.Physics)
	}

	// Kinematics
	p.Advance(g.cfg.Physics, g.cfg.World.GroundY)

	// Buff expiry
	g.state.Invulnerable.Expire(now)
	g.state.SpeedBoost.Expire(now)

	// Entity advance
	g.advanceEntities()

	// Collisions
	picked, reason := g.collide(now)
	if reason == EndNone && p.Pos.Y < g.cfg.World.FallFloor {
		reason = EndFell
	}
	if reason != EndNone {
		g.endRun(reason)
		return g.result()
	}

	// Progression
	for _, i := range picked {
		g.applyPickup(g.state.Entities[i].Kind, now)
	}

	// Respawn
	for _, i := range picked {
		g.respawn(&g.state.Entities[i])
	}
	g.recycle(now)

	return g.result()
}

// advanceEntities moves every entity toward the player and applies the
// vertical oscillation and sideways drift of unlocked hazards.
func (g *Game) advanceEntities() {
	speed := g.Speed()
	prog := &g.state.Progress
	half := g.cfg.World.LaneHalfWidth

	for i := range g.state.Entities {
		e := &g.state.Entities[i]
		if !e.Visible {
			continue
		}
		e.Pos.Z += speed

		switch e.Kind {
		case KindObstacle:
			if prog.MovingHazard {
				e.Phase += prog.OscillationSpeed
				e.Pos.Y = e.BaseY + g.cfg.World.HazardAmplitude*math.Sin(e.Phase)
			}
		case KindHazardZone:
			e.Pos.X += e.DriftX
			if e.Pos.X > half || e.Pos.X < -half {
				e.Pos.X = core.ClampF(e.Pos.X, -half, half)
				e.DriftX = -e.DriftX
			}
		}
	}
}

// collide tests every active entity against the player. It returns the
// indices of consumed pickups and the end reason of a lethal hit, if any.
func (g *Game) collide(now time.Duration) ([]int, EndReason) {
	var picked []int
	player := g.state.Player.Pos

	for i := range g.state.Entities {
		e := &g.state.Entities[i]
		if !e.Active() || !Collides(*e, player, g.geo) {
			continue
		}

		if !e.Kind.Lethal() {
			picked = append(picked, i)
			continue
		}

		if g.state.Invulnerable.Active {
			e.Broken = true
			e.BrokenAt = now
			g.cue(core.CueHazardBreak)
			g.logger.Debug("hazard broken", "kind", e.Kind, "z", e.Pos.Z)
			continue
		}

		if e.Kind == KindHazardZone {
			return picked, EndZone
		}
		return picked, EndObstacle
	}

	return picked, EndNone
}

// applyPickup runs the progression side of a consumed pickup.
func (g *Game) applyPickup(kind EntityKind, now time.Duration) {
	switch kind {
	case KindCoin:
		g.cue(core.CueCoin)
	case KindPowerUp:
		g.state.Invulnerable.Activate(now)
		g.cue(core.CuePowerUp)
	case KindSpeedOrb:
		// A second orb only refreshes the timer; speed is derived, never compounded.
		g.state.SpeedBoost.Activate(now)
		g.cue(core.CueSpeedBoost)
	case KindChest:
		g.cue(core.CueChest)
	}

	c := g.state.Progress.OnPickup(kind)

	if c.Stages > 0 {
		g.cue(core.CueStageUp)
		g.logger.Debug("stage up", "stage", g.state.Progress.Stage, "speed", g.state.Progress.BaseSpeed)
	}
	for i := 0; i < c.PowerUps; i++ {
		g.addPowerUp()
	}
	if c.MovingHazardUnlocked {
		g.spawner.SetMovingHazard(true)
		for i := range g.state.Entities {
			if e := &g.state.Entities[i]; e.Kind == KindObstacle {
				e.BaseY = e.Pos.Y
			}
		}
		g.logger.Debug("moving hazard unlocked", "score", g.state.Progress.Score)
	}
	if c.HazardZonesUnlocked {
		for i := range g.state.Entities {
			if e := &g.state.Entities[i]; e.Kind == KindHazardZone {
				e.Visible = true
				g.respawn(e)
			}
		}
		g.logger.Debug("hazard zones unlocked", "score", g.state.Progress.Score)
	}
}

// addPowerUp recycles in one more power-up. A positive MaxPowerUps caps
// the live count; zero means every milestone adds one.
func (g *Game) addPowerUp() {
	if limit := g.cfg.Progression.MaxPowerUps; limit > 0 && g.state.Count(KindPowerUp) >= limit {
		return
	}
	e := Entity{Kind: KindPowerUp, Visible: true}
	g.respawn(&e)
	g.state.Entities = append(g.state.Entities, e)
}

// recycle respawns entities that passed behind the player and broken
// hazards whose cooldown has run out.
func (g *Game) recycle(now time.Duration) {
	behind := g.cfg.World.BehindZ
	for i := range g.state.Entities {
		e := &g.state.Entities[i]
		if !e.Visible {
			continue
		}
		switch {
		case e.Pos.Z > behind:
			g.respawn(e)
		case e.Broken && now-e.BrokenAt >= g.cfg.Buffs.BreakCooldown:
			g.respawn(e)
		}
	}
}

// respawn moves an entity to a fresh position in its default range.
func (g *Game) respawn(e *Entity) {
	e.Pos = g.spawner.Default(e.Kind)
	e.Broken = false
	e.BrokenAt = 0
	e.BaseY = e.Pos.Y
	switch e.Kind {
	case KindObstacle:
		e.Phase = g.spawner.Phase()
	case KindHazardZone:
		e.DriftX = g.spawner.Drift()
	}
}

func (g *Game) endRun(reason EndReason) {
	g.state.Session = GameOver
	g.state.EndReason = reason
	g.cue(core.CueGameOver)
	g.logger.Info("run over", "game", g.id, "reason", string(reason),
		"score", g.state.Progress.Score, "stage", g.state.Progress.Stage)
}

// resumeClock drops the time that passed while the run was not stepping.
func (g *Game) resumeClock() {
	if r, ok := g.clock.(resumer); ok {
		r.Resume()
	}
}

func (g *Game) cue(c core.Cue) {
	g.cues = append(g.cues, c)
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Cues: g.cues}
}

// Speed returns the current world speed including an active speed boost.
func (g *Game) Speed() float64 {
	return g.state.Speed(g.cfg.Buffs.BoostFactor)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Progress.Score,
		Stage:    g.state.Progress.Stage,
		Coins:    g.state.Progress.CoinsCollected,
		GameOver: g.state.Session == GameOver,
		Paused:   g.paused,
	}
}

// Register both variants with the registry
func init() {
	registry.Register("tadpole", func() registry.Game {
		return New()
	})
	registry.Register("tadpole_classic", func() registry.Game {
		return NewClassic()
	})
}
