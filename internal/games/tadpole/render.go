package tadpole

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tadpole-arcade/internal/core"
)

// Visual characters for rendering
const (
	TadpoleChar  = '◉'
	TailChar     = '∿'
	CoinChar     = '●'
	PowerUpChar  = '✦'
	SpeedOrbChar = '»'
	ChestChar    = '▣'
	LogChar      = '▬'
	BrokenChar   = '░'
	VolcanoChar  = '▲'
	WaterChar    = '·'
	GaugeChar    = '│'
)

// viewDepth is how far ahead of the player the lane view reaches.
const viewDepth = 45.0

// field is the screen rectangle the lane is projected into.
type field struct {
	core.Rect
	zNear, zFar float64
	halfWidth   float64
}

// project maps a world position onto the lane view. The lane is seen from
// above: x runs across, depth runs up the screen.
func (f field) project(p core.Vec3) (int, int, bool) {
	if p.Z > f.zNear || p.Z < f.zFar {
		return 0, 0, false
	}
	u := (p.X + f.halfWidth) / (2 * f.halfWidth)
	v := (p.Z - f.zFar) / (f.zNear - f.zFar)
	x := f.X + int(u*float64(f.W-1)+0.5)
	y := f.Y + int(v*float64(f.H-1)+0.5)
	if x < f.X || x >= f.Right() {
		return 0, 0, false
	}
	return x, y, true
}

// span returns the columns covered by a horizontal half extent around x.
func (f field) span(x, half float64) (int, int) {
	l, _, _ := f.project(core.V3(core.ClampF(x-half, -f.halfWidth, f.halfWidth), 0, f.zNear))
	r, _, _ := f.project(core.V3(core.ClampF(x+half, -f.halfWidth, f.halfWidth), 0, f.zNear))
	return l, r
}

// Render draws the lane, the entities, the player and the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()

	fieldW := core.Min(w-16, 51)
	if fieldW < 11 || h < 8 {
		dst.DrawTextCentered(h/2, "Window too small")
		return
	}
	lane := field{
		Rect:      core.NewRect((w-fieldW)/2, 2, fieldW, h-4),
		zNear:     g.cfg.World.BehindZ,
		zFar:      -viewDepth,
		halfWidth: g.cfg.World.LaneHalfWidth,
	}

	g.drawLane(dst, lane)
	for i := range g.state.Entities {
		g.drawEntity(dst, lane, g.state.Entities[i])
	}
	g.drawPlayer(dst, lane)
	g.drawGauge(dst, lane.Right()+2, lane.Y, lane.H)
	g.drawHUD(dst)

	if g.state.Debug {
		g.drawDebug(dst, lane)
	}

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.state.Session == GameOver {
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  Stage: %d  |  Press R to restart", g.state.Progress.Score, g.state.Progress.Stage))
	}
}

func (g *Game) drawLane(dst *core.Screen, f field) {
	for y := f.Y; y < f.Bottom(); y++ {
		dst.SetColor(f.X-1, y, '│', core.ColorBlue)
		dst.SetColor(f.Right(), y, '│', core.ColorBlue)
		// Ripples scroll with the world
		off := int(g.tick/6) % 4
		for x := f.X; x < f.Right(); x++ {
			if (x+y*3-off)%9 == 0 {
				dst.SetColor(x, y, WaterChar, core.ColorCyan)
			}
		}
	}
}

func (g *Game) drawEntity(dst *core.Screen, f field, e Entity) {
	if !e.Visible {
		return
	}
	x, y, ok := f.project(e.Pos)
	if !ok {
		return
	}

	switch e.Kind {
	case KindCoin:
		dst.SetColor(x, y, CoinChar, core.ColorBrightYellow)
	case KindPowerUp:
		dst.SetColor(x, y, PowerUpChar, core.ColorMagenta)
	case KindSpeedOrb:
		dst.SetColor(x, y, SpeedOrbChar, core.ColorBrightCyan)
	case KindChest:
		dst.SetColor(x, y, ChestChar, core.ColorOrange)
	case KindObstacle:
		ch, c := LogChar, core.ColorBrown
		if e.Broken {
			ch, c = BrokenChar, core.ColorGray
		}
		l, r := f.span(e.Pos.X, g.geo.Obstacle.X)
		dst.DrawHLineColor(l, y, r-l+1, ch, c)
		if g.state.Progress.MovingHazard && !e.Broken {
			// Height marker in quarter units above ground
			lvl := int((e.Pos.Y - g.cfg.World.GroundY) * 4)
			if lvl >= 0 && lvl <= 9 {
				dst.SetColor(x, y, rune('0'+lvl), core.ColorYellow)
			}
		}
	case KindHazardZone:
		c := core.ColorRed
		if e.Broken {
			c = core.ColorGray
		}
		l, r := f.span(e.Pos.X, g.geo.ZoneRadius)
		dst.DrawHLineColor(l, y, r-l+1, '^', c)
		dst.SetColor(x, y, VolcanoChar, c)
	}
}

func (g *Game) drawPlayer(dst *core.Screen, f field) {
	p := g.state.Player
	x, y, ok := f.project(p.Pos)
	if !ok {
		return
	}
	c := core.ColorBrightGreen
	if g.state.Invulnerable.Active {
		// Blink while invulnerable
		if (g.tick/8)%2 == 0 {
			c = core.ColorMagenta
		}
	}
	dst.SetColor(x, y, TadpoleChar, c)
	dst.SetColor(x, y+1, TailChar, core.ColorGreen)
}

// drawGauge shows the player's height above ground and the log height
// once it starts moving.
func (g *Game) drawGauge(dst *core.Screen, x, top, height int) {
	if x >= dst.Width() {
		return
	}
	world := g.cfg.World
	maxH := world.HazardBand + world.HazardAmplitude + 2
	toRow := func(yWorld float64) int {
		t := core.ClampF((yWorld-world.GroundY)/maxH, 0, 1)
		return top + height - 1 - int(t*float64(height-1)+0.5)
	}

	dst.DrawVLine(x, top, height, GaugeChar)
	dst.DrawText(x, top-1, "H")
	for i := range g.state.Entities {
		e := g.state.Entities[i]
		if e.Kind == KindObstacle && e.Active() && g.state.Progress.MovingHazard {
			dst.SetColor(x, toRow(e.Pos.Y), LogChar, core.ColorBrown)
		}
	}
	dst.SetColor(x, toRow(g.state.Player.Pos.Y), TadpoleChar, core.ColorBrightGreen)
}

func (g *Game) drawHUD(dst *core.Screen) {
	o := g.Overlay()
	left := fmt.Sprintf(" Score: %d  Stage: %d  Coins: %d (x%d) ", o.Score, o.Stage, o.Coins, o.CoinValue)
	dst.DrawText(1, 0, left)

	jumps := strings.Repeat("○", core.Max(o.Jumps, 0)) + strings.Repeat("·", core.Max(o.MaxJumps-o.Jumps, 0))
	right := fmt.Sprintf(" Jumps: %s  Spd: %.2f ", jumps, o.Speed)
	dst.DrawTextColor(dst.Width()-len([]rune(right))-1, 0, right, core.ColorCyan)

	var buffs []string
	if o.Invulnerable > 0 {
		buffs = append(buffs, fmt.Sprintf("SHIELD %.1fs", o.Invulnerable.Seconds()))
	}
	if o.SpeedBoost > 0 {
		buffs = append(buffs, fmt.Sprintf("BOOST %.1fs", o.SpeedBoost.Seconds()))
	}
	if len(buffs) > 0 {
		dst.DrawTextColor(1, 1, " "+strings.Join(buffs, "  ")+" ", core.ColorMagenta)
	}
}

// drawDebug outlines hitboxes around the player and prints raw values.
func (g *Game) drawDebug(dst *core.Screen, f field) {
	p := g.state.Player
	x, y, ok := f.project(p.Pos)
	if ok {
		l, r := f.span(p.Pos.X, g.geo.PlayerRadius)
		for cx := l; cx <= r; cx++ {
			if cx != x {
				dst.SetColor(cx, y, '─', core.ColorGray)
			}
		}
	}

	snap := g.Snapshot()
	lines := []string{
		fmt.Sprintf("tick %d", snap.Tick),
		fmt.Sprintf("x %.2f", snap.PlayerX),
		fmt.Sprintf("y %.2f", snap.PlayerY),
		fmt.Sprintf("vy %+.3f", snap.VelY),
		fmt.Sprintf("tilt %+.2f", p.Tilt),
		fmt.Sprintf("base %.3f", snap.BaseSpeed),
		fmt.Sprintf("ents %d", snap.Entities),
	}
	if snap.MovingHazard {
		lines = append(lines, "log moves")
	}
	if snap.HazardZones {
		lines = append(lines, "zones on")
	}
	for i, line := range lines {
		dst.DrawTextColor(0, f.Y+i, line, core.ColorGray)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}
