package game

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/gunplay/internal/combat"
	"github.com/Garsondee/gunplay/internal/metrics"
)

func TestGame_LayoutMatchesConfig(t *testing.T) {
	g, _ := newTestGame(t)
	w, h := g.Layout(0, 0)
	assert.Equal(t, 1280, w)
	assert.Equal(t, 720, h)
	assert.Equal(t, 1280-2*borderWidth-logPanelWidth, g.fieldW)
	assert.NotEmpty(t, g.Sim().Arena.Items())
	assert.Equal(t, 0, g.HUD().EquippedSlot(), "hud seeded with the default weapon")
}

func TestGame_ClickFiresAndDrawsTracer(t *testing.T) {
	g, c := newTestGame(t)
	a := g.Sim().Avatar

	c.click(ebiten.MouseButtonLeft)
	frames(t, g, c, 1)

	assert.Equal(t, combat.StateFiringInProgress, a.State())
	assert.Equal(t, 29, a.EquippedWeapon().Ammo())
	tracers, flashes, _, sounds := g.fx.Active()
	assert.Equal(t, 1, tracers)
	assert.Equal(t, 1, flashes)
	assert.GreaterOrEqual(t, sounds, 1)
	assert.InDelta(t, 0, a.Facing(), 1e-9, "cursor to the right faces +X")

	c.unclick(ebiten.MouseButtonLeft)
	frames(t, g, c, 30)
	assert.Equal(t, combat.StateReady, a.State())
	assert.Contains(t, g.Events().Text(), "shot_fired")
}

func TestGame_SlotKeyExchangesWeapons(t *testing.T) {
	g, c := newTestGame(t)
	a := g.Sim().Avatar

	rifle := findWeapon(g, combat.WeaponAssaultRifle)
	require.NotNil(t, rifle)
	require.True(t, a.BeginPickup(rifle))
	frames(t, g, c, 50)
	require.Same(t, rifle, a.InventoryItem(1))

	c.tap(ebiten.Key1)
	frames(t, g, c, 1)
	assert.Equal(t, combat.StateEquipping, a.State())
	assert.Same(t, rifle, a.EquippedWeapon())
	assert.Equal(t, 1, g.HUD().EquippedSlot())

	frames(t, g, c, 30)
	c.tap(ebiten.KeyF)
	frames(t, g, c, 1)
	assert.Equal(t, 0, g.HUD().EquippedSlot())
}

func TestGame_ReloadAndDropKeys(t *testing.T) {
	g, c := newTestGame(t)
	a := g.Sim().Avatar
	a.EquippedWeapon().SetAmmo(5)

	c.tap(ebiten.KeyR)
	frames(t, g, c, 1)
	assert.Equal(t, combat.StateReloading, a.State())
	frames(t, g, c, 100)
	assert.Equal(t, 30, a.EquippedWeapon().Ammo())

	c.tap(ebiten.KeyQ)
	frames(t, g, c, 1)
	assert.Nil(t, a.EquippedWeapon())
	assert.Equal(t, combat.NoSlot, g.HUD().EquippedSlot())
}

func TestGame_MovementClampedToArena(t *testing.T) {
	g, c := newTestGame(t)
	a := g.Sim().Avatar

	c.hold(ebiten.KeyA)
	frames(t, g, c, 120)
	assert.InDelta(t, avatarRadius, a.Position().X, 1e-9)

	c.release(ebiten.KeyA)
	frames(t, g, c, 1)
	assert.Zero(t, a.Velocity().Len())
}

func TestGame_CrouchSlowsMovement(t *testing.T) {
	g, c := newTestGame(t)
	a := g.Sim().Avatar

	c.tap(ebiten.KeyC)
	c.hold(ebiten.KeyD)
	frames(t, g, c, 1)
	require.True(t, a.IsCrouching())
	assert.InDelta(t, 300, a.Velocity().Len(), 1e-9)
}

func TestGame_JumpLandsAfterDuration(t *testing.T) {
	g, c := newTestGame(t)
	a := g.Sim().Avatar

	c.tap(ebiten.KeySpace)
	frames(t, g, c, 1)
	assert.True(t, a.IsAirborne())

	frames(t, g, c, int(jumpDuration*60)+2)
	assert.False(t, a.IsAirborne())
}

func TestGame_JumpWhileCrouchedStandsUp(t *testing.T) {
	g, c := newTestGame(t)
	a := g.Sim().Avatar

	c.tap(ebiten.KeyC)
	frames(t, g, c, 1)
	c.tap(ebiten.KeySpace)
	frames(t, g, c, 1)
	assert.False(t, a.IsCrouching())
	assert.False(t, a.IsAirborne())
}

func TestGame_PauseFreezesSim(t *testing.T) {
	g, c := newTestGame(t)

	c.tap(ebiten.KeyP)
	frames(t, g, c, 1)
	require.True(t, g.Paused())
	ticks := g.Sim().Ticks()

	frames(t, g, c, 10)
	assert.Equal(t, ticks, g.Sim().Ticks())

	c.tap(ebiten.KeyP)
	frames(t, g, c, 1)
	assert.Equal(t, ticks+1, g.Sim().Ticks())
}

func TestGame_CopyLogKey(t *testing.T) {
	g, c := newTestGame(t)
	var copied string
	g.events.copyFn = func(s string) error {
		copied = s
		return nil
	}

	c.click(ebiten.MouseButtonLeft)
	frames(t, g, c, 1)
	c.tap(ebiten.KeyL)
	frames(t, g, c, 1)
	assert.Contains(t, copied, "shot_fired")

	g.events.copyFn = func(string) error { return errors.New("no display") }
	err := g.events.CopyToClipboard()
	assert.ErrorContains(t, err, "copy event log: no display")
}

func TestGame_MetricsSeeBusEvents(t *testing.T) {
	m := metrics.NewCollector()
	g, c := newTestGame(t, WithMetrics(m))

	c.click(ebiten.MouseButtonLeft)
	frames(t, g, c, 1)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ShotsFired.WithLabelValues("smg")))
	assert.Equal(t, 29.0, testutil.ToFloat64(m.MagazineRemaining))
}
