package game

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/gunplay/internal/combat"
	"github.com/Garsondee/gunplay/internal/config"
	"github.com/Garsondee/gunplay/internal/logger"
)

// scriptedControls replays one frame of input at a time. Edges are cleared
// after each update.
type scriptedControls struct {
	held          map[ebiten.Key]bool
	pressed       map[ebiten.Key]bool
	released      map[ebiten.Key]bool
	mousePressed  map[ebiten.MouseButton]bool
	mouseReleased map[ebiten.MouseButton]bool
	x, y          int
}

func newScriptedControls() *scriptedControls {
	c := &scriptedControls{held: map[ebiten.Key]bool{}}
	c.clearEdges()
	return c
}

func (c *scriptedControls) clearEdges() {
	c.pressed = map[ebiten.Key]bool{}
	c.released = map[ebiten.Key]bool{}
	c.mousePressed = map[ebiten.MouseButton]bool{}
	c.mouseReleased = map[ebiten.MouseButton]bool{}
}

func (c *scriptedControls) tap(k ebiten.Key)               { c.pressed[k] = true }
func (c *scriptedControls) hold(k ebiten.Key)              { c.held[k] = true }
func (c *scriptedControls) click(b ebiten.MouseButton)     { c.mousePressed[b] = true }
func (c *scriptedControls) unclick(b ebiten.MouseButton)   { c.mouseReleased[b] = true }
func (c *scriptedControls) Pressed(k ebiten.Key) bool      { return c.held[k] }
func (c *scriptedControls) JustPressed(k ebiten.Key) bool  { return c.pressed[k] }
func (c *scriptedControls) JustReleased(k ebiten.Key) bool { return c.released[k] }
func (c *scriptedControls) Cursor() (int, int)             { return c.x, c.y }

func (c *scriptedControls) release(k ebiten.Key) {
	delete(c.held, k)
	c.released[k] = true
}

func (c *scriptedControls) MouseJustPressed(b ebiten.MouseButton) bool {
	return c.mousePressed[b]
}

func (c *scriptedControls) MouseJustReleased(b ebiten.MouseButton) bool {
	return c.mouseReleased[b]
}

func testConfig() *config.Config {
	return &config.Config{
		LogLevel:         "info",
		LogFormat:        "text",
		Environment:      "test",
		Version:          "test",
		DefaultWeapon:    "smg",
		PistolAmmo:       85,
		RifleAmmo:        120,
		PickupCurveTime:  700 * time.Millisecond,
		PickupSoundReset: 200 * time.Millisecond,
		EquipSoundReset:  200 * time.Millisecond,
		ShootSpreadTime:  50 * time.Millisecond,
		BaseMoveSpeed:    650,
		CrouchMoveSpeed:  300,
		TraceRange:       50000,
		WindowWidth:      1280,
		WindowHeight:     720,
		Seed:             1,
	}
}

// newTestGame builds a game driven by scripted controls, with the cursor
// to the right of the avatar so it faces +X.
func newTestGame(t *testing.T, opts ...Option) (*Game, *scriptedControls) {
	t.Helper()
	c := newScriptedControls()
	opts = append([]Option{WithControls(c), WithLogger(logger.Discard())}, opts...)
	g := New(testConfig(), opts...)
	p := g.Sim().Avatar.Position()
	c.x, c.y = g.offX+int(p.X)+300, g.offY+int(p.Y)
	return g, c
}

// frames runs n updates, clearing input edges after each one.
func frames(t *testing.T, g *Game, c *scriptedControls, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, g.Update())
		c.clearEdges()
	}
}

func findWeapon(g *Game, kind combat.WeaponKind) *combat.Weapon {
	for _, it := range g.Sim().Arena.Items() {
		if w, ok := it.(*combat.Weapon); ok && w.Kind() == kind {
			return w
		}
	}
	return nil
}
