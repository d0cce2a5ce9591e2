package game

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/gunplay/internal/combat"
	"github.com/Garsondee/gunplay/internal/config"
	"github.com/Garsondee/gunplay/internal/logger"
	"github.com/Garsondee/gunplay/internal/metrics"
	"github.com/Garsondee/gunplay/internal/world"
)

// borderWidth is the pixel gap between the window edge and the arena.
const borderWidth = 24

const (
	avatarRadius = 12.0
	itemRadius   = 7.0
)

// Game is the ebiten front end around one world.Sim.
type Game struct {
	log      *slog.Logger
	sim      *world.Sim
	fx       *Effects
	hud      *HUD
	events   *EventLog
	metrics  *metrics.Collector
	controls Controls

	width, height    int // window
	fieldW, fieldH   int // arena
	offX, offY       int
	cursorX, cursorY int

	airTime float64 // seconds until landing
	paused  bool
	showKey bool
}

// Option configures a Game.
type Option func(*Game)

// WithControls replaces the keyboard and mouse.
func WithControls(c Controls) Option {
	return func(g *Game) { g.controls = c }
}

// WithLogger sets the logger passed to the avatar.
func WithLogger(l *slog.Logger) Option {
	return func(g *Game) { g.log = l }
}

// WithMetrics subscribes c to the avatar's bus.
func WithMetrics(c *metrics.Collector) Option {
	return func(g *Game) { g.metrics = c }
}

// New builds the arena, the avatar and the HUD from cfg.
func New(cfg *config.Config, opts ...Option) *Game {
	g := &Game{
		width:    cfg.WindowWidth,
		height:   cfg.WindowHeight,
		fieldW:   cfg.WindowWidth - 2*borderWidth - logPanelWidth,
		fieldH:   cfg.WindowHeight - 2*borderWidth,
		offX:     borderWidth,
		offY:     borderWidth,
		log:      slog.Default(),
		controls: ebitenControls{},
		fx:       NewEffects(),
		showKey:  true,
	}
	for _, o := range opts {
		o(g)
	}

	settings := cfg.AvatarSettings()
	simOpts := []world.SimOption{
		world.WithArenaSize(float64(g.fieldW), float64(g.fieldH)),
		world.WithSeed(cfg.Seed),
		world.WithSettings(func(s *combat.Settings) { *s = settings }),
		world.WithEffects(g.fx),
		world.WithLogger(g.log),
		world.WithAvatarAt(float64(g.fieldW)/2, float64(g.fieldH)/2, 0),
	}
	simOpts = append(simOpts, furnish(float64(g.fieldW), float64(g.fieldH))...)
	g.sim = world.NewSim(simOpts...)

	g.log = logger.Component(g.log, "game")
	g.hud = NewHUD(g.sim.Avatar)
	g.events = NewEventLog(g.sim.Bus)
	if g.metrics != nil {
		g.metrics.Register(g.sim.Bus)
	}
	g.log.Info("arena ready",
		"width", g.fieldW, "height", g.fieldH,
		"items", len(g.sim.Arena.Items()),
		"obstacles", len(g.sim.Arena.Obstacles()))
	return g
}

// furnish lays out walls, targets and pickups relative to the arena size.
func furnish(w, h float64) []world.SimOption {
	return []world.SimOption{
		world.WithWall(w*0.25, h*0.15, 20, h*0.3),
		world.WithWall(w*0.6, h*0.7, w*0.2, 20),
		world.WithWall(w*0.7, h*0.2, 20, h*0.2),
		world.WithTarget(w-60, h*0.25, 30, 80),
		world.WithTarget(w-60, h*0.6, 30, 80),
		world.WithTarget(w*0.45, 30, 80, 24),
		world.WithWeaponPickup(combat.WeaponAssaultRifle, w*0.3, h*0.7),
		world.WithWeaponPickup(combat.WeaponPistol, w*0.65, h*0.35),
		world.WithWeaponPickup(combat.WeaponSubmachineGun, w*0.15, h*0.55),
		world.WithAmmoPickup(combat.AmmoAssaultRifle, 60, w*0.34, h*0.76),
		world.WithAmmoPickup(combat.AmmoPistol, 40, w*0.6, h*0.4),
		world.WithScatteredAmmo(6),
	}
}

// Sim exposes the simulation for tools and tests.
func (g *Game) Sim() *world.Sim { return g.sim }

// Events exposes the on-screen event log.
func (g *Game) Events() *EventLog { return g.events }

// HUD exposes the hotbar state.
func (g *Game) HUD() *HUD { return g.hud }

// Paused reports whether the sim is frozen.
func (g *Game) Paused() bool { return g.paused }

func (g *Game) Update() error {
	g.handleInput()
	if !g.paused {
		g.step(world.FrameDT)
	}
	// Effects keep fading while paused.
	g.fx.Update()
	g.hud.Update()
	return nil
}

// step moves the avatar by its velocity, lands it after a jump, then
// advances the sim one frame.
func (g *Game) step(dt float64) {
	a := g.sim.Avatar
	if g.airTime > 0 {
		g.airTime -= dt
		if g.airTime <= 0 {
			g.airTime = 0
			a.SetAirborne(false)
		}
	}

	p := a.Position().Add(a.Velocity().Scale(dt))
	p.X = clamp(p.X, avatarRadius, float64(g.fieldW)-avatarRadius)
	p.Y = clamp(p.Y, avatarRadius, float64(g.fieldH)-avatarRadius)
	a.SetPosition(p)

	g.sim.Step(dt)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (g *Game) screenToWorld(x, y int) combat.Vec2 {
	return combat.Vec2{X: float64(x - g.offX), Y: float64(y - g.offY)}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 12, G: 14, B: 12, A: 255})

	g.drawArena(screen)
	g.fx.Draw(screen, g.offX, g.offY)
	g.fx.DrawCaptions(screen, g.offX, g.offY)

	ox, oy := float32(g.offX), float32(g.offY)
	fw, fh := float32(g.fieldW), float32(g.fieldH)
	vector.StrokeRect(screen, ox-1, oy-1, fw+2, fh+2, 2.0, color.RGBA{R: 65, G: 90, B: 65, A: 255}, false)
	vector.StrokeRect(screen, ox-3, oy-3, fw+6, fh+6, 1.0, color.RGBA{R: 40, G: 65, B: 40, A: 100}, false)

	g.hud.Draw(screen, g.sim.Avatar, g.offX, g.offY, g.fieldW, g.fieldH, g.cursorX, g.cursorY)
	g.events.Draw(screen, g.offX+g.fieldW+g.offX, g.height)

	if g.showKey {
		drawText(screen, "WASD move  LMB fire  RMB aim  R reload  E pick up  Q drop  F/1-5 slot  C crouch  Space jump  P pause",
			float64(g.offX), 5, color.RGBA{R: 120, G: 150, B: 120, A: 255})
	}
	if g.paused {
		drawText(screen, "PAUSED", float64(g.offX+g.fieldW/2-21), float64(g.offY+8), color.White)
	}
}

func (g *Game) drawArena(screen *ebiten.Image) {
	ox, oy := float32(g.offX), float32(g.offY)
	vector.FillRect(screen, ox, oy, float32(g.fieldW), float32(g.fieldH), color.RGBA{R: 28, G: 42, B: 28, A: 255}, false)
	drawGridOffset(screen, g.offX, g.offY, g.fieldW, g.fieldH, 16, color.RGBA{R: 32, G: 47, B: 32, A: 255})
	drawGridOffset(screen, g.offX, g.offY, g.fieldW, g.fieldH, 64, color.RGBA{R: 38, G: 55, B: 38, A: 255})

	for _, ob := range g.sim.Arena.Obstacles() {
		b := ob.Box
		fill := color.RGBA{R: 70, G: 70, B: 64, A: 255}
		edge := color.RGBA{R: 100, G: 100, B: 90, A: 255}
		if ob.Kind == world.ObstacleTarget {
			fill = color.RGBA{R: 120, G: 50, B: 40, A: 255}
			edge = color.RGBA{R: 200, G: 90, B: 70, A: 255}
		}
		vector.FillRect(screen, ox+float32(b.X), oy+float32(b.Y), float32(b.W), float32(b.H), fill, false)
		vector.StrokeRect(screen, ox+float32(b.X), oy+float32(b.Y), float32(b.W), float32(b.H), 1, edge, false)
		if ob.Kind == world.ObstacleTarget && ob.Hits > 0 {
			c := b.Center()
			drawText(screen, fmt.Sprintf("%d", ob.Hits), float64(ox)+c.X-6, float64(oy)+c.Y-6, color.White)
		}
	}

	a := g.sim.Avatar
	traced := a.TraceHitItem()
	for _, it := range g.sim.Arena.Items() {
		p, ok := it.(interface{ Position() combat.Vec2 })
		if !ok {
			continue
		}
		g.drawItem(screen, it, p.Position(), it == traced)
	}
	for _, f := range a.Flights() {
		g.drawItem(screen, f.Item, a.FlightPosition(f), false)
	}
	for i := 0; i < a.InterpLocationCount(); i++ {
		p := a.InterpLocationWorld(i)
		vector.StrokeCircle(screen, ox+float32(p.X), oy+float32(p.Y), 2, 1, color.RGBA{R: 120, G: 160, B: 200, A: 120}, false)
	}

	g.drawAvatar(screen)
}

func (g *Game) drawItem(screen *ebiten.Image, it combat.Item, at combat.Vec2, traced bool) {
	x, y := float32(g.offX)+float32(at.X), float32(g.offY)+float32(at.Y)
	col := color.RGBA{R: 200, G: 190, B: 80, A: 255}
	if _, ok := it.(*combat.Weapon); ok {
		col = color.RGBA{R: 90, G: 170, B: 220, A: 255}
	}
	if it.ItemState() == combat.ItemFalling {
		col.A = 140
	}
	vector.FillRect(screen, x-itemRadius, y-itemRadius/2, itemRadius*2, itemRadius, col, false)
	if traced {
		vector.StrokeCircle(screen, x, y, itemRadius+5, 1.5, color.RGBA{R: 255, G: 255, B: 255, A: 220}, false)
		drawText(screen, it.ItemName(), float64(x)+12, float64(y)-6, color.White)
	}
}

func (g *Game) drawAvatar(screen *ebiten.Image) {
	a := g.sim.Avatar
	ox, oy := float32(g.offX), float32(g.offY)
	p := a.Position()
	x, y := ox+float32(p.X), oy+float32(p.Y)

	r := float32(avatarRadius)
	if a.IsCrouching() {
		r *= 0.75
	}
	if a.IsAirborne() {
		vector.FillCircle(screen, x+3, y+5, r, color.RGBA{A: 90}, false)
	}
	vector.FillCircle(screen, x, y, r, color.RGBA{R: 70, G: 110, B: 210, A: 255}, false)
	vector.StrokeCircle(screen, x, y, r, 1.5, color.RGBA{R: 150, G: 180, B: 240, A: 255}, false)
	if a.IsAiming() {
		vector.StrokeCircle(screen, x, y, r+4, 1, color.RGBA{R: 240, G: 240, B: 240, A: 120}, false)
	}

	if a.EquippedWeapon() != nil {
		m := a.MuzzleLocation()
		vector.StrokeLine(screen, x, y, ox+float32(m.X), oy+float32(m.Y), 3, color.RGBA{R: 40, G: 40, B: 40, A: 255}, false)
		if a.EquippedWeapon().ClipMoving() {
			hand := p.Add(combat.Vec2{X: -2, Y: -14}.Rotate(a.Facing()))
			vector.FillRect(screen, ox+float32(hand.X)-2, oy+float32(hand.Y)-3, 4, 6, color.RGBA{R: 200, G: 190, B: 80, A: 255}, false)
		}
	}
}

func drawGridOffset(screen *ebiten.Image, offX, offY, w, h, spacing int, c color.Color) {
	if spacing <= 0 {
		return
	}
	ox, oy := float32(offX), float32(offY)
	for x := 0; x <= w; x += spacing {
		xf := ox + float32(x)
		vector.StrokeLine(screen, xf, oy, xf, oy+float32(h), 1.0, c, false)
	}
	for y := 0; y <= h; y += spacing {
		yf := oy + float32(y)
		vector.StrokeLine(screen, ox, yf, ox+float32(w), yf, 1.0, c, false)
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
