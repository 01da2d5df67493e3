// Package game implements the first-person raider missions on top of
// the raycasting engine. One mission is registered per built-in map;
// every instance is pure simulation and drawing into a screen buffer,
// with no terminal dependencies.
package game

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-raider/internal/core"
	"github.com/vovakirdan/tui-raider/internal/engine"
	"github.com/vovakirdan/tui-raider/internal/registry"
)

const (
	hudRows       = 2 // status line on top, controls line on the bottom
	animInterval  = 8 // ticks between enemy animation frames
	flashDuration = 3 // ticks the muzzle flash stays on screen

	minScreenW = 40
	minScreenH = 10
)

var weaponIdle = []string{
	`    /\    `,
	`   /||\   `,
	`  / || \  `,
	` /  ||  \ `,
	`/___||___\`,
}

var weaponFiring = []string{
	`    /|\    `,
	`   /-|-\   `,
	`  /--+--\  `,
	` /---+---\ `,
	`/____|____\`,
}

// Package-level tunables override, set by the config layer before the
// platform instantiates missions (same pattern as the difficulty hooks
// in the other cabinets).
var customTunables *engine.Tunables

// SetTunables overrides the engine tunables for every mission created
// afterwards. Pass nil to restore the defaults.
func SetTunables(t *engine.Tunables) {
	customTunables = t
}

func activeTunables() engine.Tunables {
	if customTunables != nil {
		return *customTunables
	}
	return engine.DefaultTunables()
}

// Game is one raider mission: a world simulated by the engine plus the
// presentation state (animation, muzzle flash, overlays).
type Game struct {
	level *engine.Level
	tun   engine.Tunables
	world *engine.World
	rng   *rand.Rand
	tick  uint64

	screenW int
	screenH int

	animFrame int
	animTimer int

	shooting  bool
	shotTimer int

	won      bool
	paused   bool
	tooSmall bool
	loadErr  error
}

// New creates a mission for the given built-in level.
func New(level *engine.Level) *Game {
	return &Game{level: level}
}

func init() {
	for i := range engine.Levels {
		lvl := &engine.Levels[i]
		registry.Register(lvl.ID, func() registry.Game {
			return New(lvl)
		})
	}
}

// ID returns the mission identifier.
func (g *Game) ID() string {
	return g.level.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.level.Name
}

// Reset initializes or restarts the mission.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.tun = activeTunables()
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.animFrame = 0
	g.animTimer = 0
	g.shooting = false
	g.shotTimer = 0
	g.won = false
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tooSmall = cfg.ScreenW < minScreenW || cfg.ScreenH < minScreenH

	g.world, g.loadErr = engine.NewWorld(g.level, g.tun)
}

// SetViewSize tells the mission about a live terminal resize. The run
// keeps going; only the too-small gate is re-evaluated.
func (g *Game) SetViewSize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < minScreenW || h < minScreenH
}

// RunStats reports the figures persisted with a finished run.
func (g *Game) RunStats() (kills, ammoUsed int, ticks uint64) {
	if g.world == nil {
		return 0, 0, g.tick
	}
	kills = len(g.world.Enemies) - g.world.AliveCount()
	ammoUsed = g.tun.StartAmmo - g.world.Player.Ammo
	return kills, ammoUsed, g.tick
}

// Step advances the mission by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if g.loadErr != nil {
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionRestart) && g.won {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.won || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.animTimer++
	if g.animTimer >= animInterval {
		g.animFrame = (g.animFrame + 1) % 3
		g.animTimer = 0
	}
	if g.shooting {
		g.shotTimer++
		if g.shotTimer >= flashDuration {
			g.shooting = false
			g.shotTimer = 0
		}
	}

	g.processMovement(input)

	if input.Has(core.ActionShoot) {
		if res := engine.ResolveShot(g.world, g.tun, g.rng); res.Fired {
			g.shooting = true
			g.shotTimer = 0
		}
	}

	if g.world.AliveCount() == 0 {
		g.won = true
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) processMovement(input core.InputFrame) {
	intents := []struct {
		action core.Action
		intent engine.Intent
	}{
		{core.ActionForward, engine.IntentForward},
		{core.ActionBackward, engine.IntentBackward},
		{core.ActionStrafeLeft, engine.IntentStrafeLeft},
		{core.ActionStrafeRight, engine.IntentStrafeRight},
		{core.ActionTurnLeft, engine.IntentTurnLeft},
		{core.ActionTurnRight, engine.IntentTurnRight},
	}
	for _, m := range intents {
		if input.Has(m.action) {
			engine.ResolveIntent(g.world, g.tun, m.intent)
		}
	}
}

// Render draws the full frame: the raycast view between the HUD rows,
// then the weapon, the radar and the text overlays on top of it.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.loadErr != nil {
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("map error: %v", g.loadErr), core.ColorBrightRed)
		return
	}
	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Window too small", core.ColorBrightRed)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("need at least %dx%d", minScreenW, minScreenH), core.ColorGray)
		return
	}

	g.renderView(dst)
	g.renderWeapon(dst)
	g.renderRadar(dst)
	g.renderHUD(dst)

	switch {
	case g.won:
		g.renderOverlay(dst, "Sector cleared!", fmt.Sprintf("Score: %d, press R to restart", g.world.Player.Score))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderView casts one ray per screen column into the rows between the
// status and controls lines.
func (g *Game) renderView(dst *core.Screen) {
	width := dst.Width()
	viewHeight := dst.Height() - hudRows
	if width <= 0 || viewHeight <= 0 {
		return
	}

	for x := 0; x < width; x++ {
		rayAngle := g.world.Player.Angle - g.tun.FOV/2 + float64(x)/float64(width)*g.tun.FOV
		column := engine.CastColumn(g.world, g.tun, rayAngle, viewHeight, g.animFrame)
		for y, cell := range column {
			dst.SetCell(x, y+1, cell)
		}
	}
}

func (g *Game) renderWeapon(dst *core.Screen) {
	if dst.Height() <= 8 {
		return
	}

	art := weaponIdle
	if g.shooting {
		art = weaponFiring
	}

	top := dst.Height() - 2 - len(art)
	for i, line := range art {
		x := (dst.Width() - len(line)) / 2
		dst.DrawTextColored(x, top+i, line, core.ColorBrightYellow)
	}
}

// renderRadar draws the top-right overhead map when the screen leaves
// enough room next to the view.
func (g *Game) renderRadar(dst *core.Screen) {
	size := core.Clamp(core.Min(dst.Width()/6, dst.Height()/4), 10, 15)
	if dst.Width() <= size+20 || dst.Height() <= size+6 {
		return
	}

	x0 := dst.Width() - size - 2
	y0 := 2

	dst.DrawBox(core.NewRect(x0-1, y0-1, size+2, size+2), core.ColorBrightBlue)
	dst.DrawTextColored(x0+(size-7)/2, y0-1, " RADAR ", core.ColorBrightBlue)

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dst.SetCell(x0+x, y0+y, engine.MinimapCell(g.world, x, y, size))
		}
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	p := g.world.Player
	status := fmt.Sprintf("Health: %d  Ammo: %d  Score: %d  Kills: %d/%d",
		p.Health, p.Ammo, p.Score, len(g.world.Enemies)-g.world.AliveCount(), len(g.world.Enemies))
	dst.DrawTextColored(2, 0, status, core.ColorCyan)

	if dst.Width() > 60 {
		pos := fmt.Sprintf("Pos: (%.1f,%.1f) Angle: %.0f°", p.X, p.Y, p.Angle)
		dst.DrawTextColored(len(status)+7, 0, pos, core.ColorCyan)
	}

	controls := "WASD: Move | Q/E: Turn | Space: Shoot | P: Pause | Esc: Menu"
	dst.DrawTextCentered(dst.Height()-1, controls, core.ColorCyan)
}

func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := core.Max(len(line1), len(line2)) + 4
	boxH := 5
	x0 := (dst.Width() - boxW) / 2
	y0 := (dst.Height() - boxH) / 2

	for y := y0; y < y0+boxH; y++ {
		for x := x0; x < x0+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(core.NewRect(x0, y0, boxW, boxH), core.ColorBrightYellow)
	dst.DrawTextCentered(y0+1, line1, core.ColorBrightYellow)
	dst.DrawTextCentered(y0+3, line2, core.ColorWhite)
}

// State reports the mission status.
func (g *Game) State() core.GameState {
	score := 0
	if g.world != nil {
		score = g.world.Player.Score
	}
	return core.GameState{
		Score:    score,
		GameOver: g.won || g.loadErr != nil,
		Paused:   g.paused,
	}
}
