package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Garsondee/gunplay/internal/combat"
)

const jumpDuration = 0.6 // seconds airborne per jump

// Controls is the polled input device. The ebiten implementation reads the
// keyboard and mouse; tests script one.
type Controls interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
	JustReleased(k ebiten.Key) bool
	MouseJustPressed(b ebiten.MouseButton) bool
	MouseJustReleased(b ebiten.MouseButton) bool
	Cursor() (x, y int)
}

type ebitenControls struct{}

func (ebitenControls) Pressed(k ebiten.Key) bool      { return ebiten.IsKeyPressed(k) }
func (ebitenControls) JustPressed(k ebiten.Key) bool  { return inpututil.IsKeyJustPressed(k) }
func (ebitenControls) JustReleased(k ebiten.Key) bool { return inpututil.IsKeyJustReleased(k) }
func (ebitenControls) Cursor() (int, int)             { return ebiten.CursorPosition() }

func (ebitenControls) MouseJustPressed(b ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(b)
}

func (ebitenControls) MouseJustReleased(b ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustReleased(b)
}

// slotKeys maps hotbar keys to inventory slots.
var slotKeys = [combat.InventoryCapacity]ebiten.Key{
	ebiten.KeyF, ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
}

// handleInput routes this frame's edges and held keys to the avatar.
func (g *Game) handleInput() {
	in := g.controls
	a := g.sim.Avatar

	mx, my := in.Cursor()
	g.cursorX, g.cursorY = mx, my
	a.AimAt(g.screenToWorld(mx, my))

	if in.MouseJustPressed(ebiten.MouseButtonLeft) {
		a.FireButtonPressed()
	}
	if in.MouseJustReleased(ebiten.MouseButtonLeft) {
		a.FireButtonReleased()
	}
	if in.MouseJustPressed(ebiten.MouseButtonRight) {
		a.AimButtonPressed()
	}
	if in.MouseJustReleased(ebiten.MouseButtonRight) {
		a.AimButtonReleased()
	}

	if in.JustPressed(ebiten.KeyR) {
		a.ReloadButtonPressed()
	}
	if in.JustPressed(ebiten.KeyE) {
		a.SelectButtonPressed()
	}
	if in.JustReleased(ebiten.KeyE) {
		a.SelectButtonReleased()
	}
	if in.JustPressed(ebiten.KeyQ) {
		a.DropButtonPressed()
	}
	for i, k := range slotKeys {
		if in.JustPressed(k) {
			a.SelectSlot(i)
		}
	}

	if in.JustPressed(ebiten.KeyC) {
		a.CrouchButtonPressed()
	}
	if in.JustPressed(ebiten.KeySpace) && a.Jump() {
		a.SetAirborne(true)
		g.airTime = jumpDuration
	}

	if in.JustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if in.JustPressed(ebiten.KeyH) {
		g.showKey = !g.showKey
	}
	if in.JustPressed(ebiten.KeyL) {
		if err := g.events.CopyToClipboard(); err != nil {
			g.log.Warn("clipboard export failed", "error", err)
		} else {
			g.log.Info("event log copied", "entries", g.events.Len())
		}
	}

	var dir combat.Vec2
	if in.Pressed(ebiten.KeyW) || in.Pressed(ebiten.KeyArrowUp) {
		dir.Y--
	}
	if in.Pressed(ebiten.KeyS) || in.Pressed(ebiten.KeyArrowDown) {
		dir.Y++
	}
	if in.Pressed(ebiten.KeyA) || in.Pressed(ebiten.KeyArrowLeft) {
		dir.X--
	}
	if in.Pressed(ebiten.KeyD) || in.Pressed(ebiten.KeyArrowRight) {
		dir.X++
	}
	a.SetVelocity(dir.Normalize().Scale(a.MoveSpeed()))
}
