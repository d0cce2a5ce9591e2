package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/gunplay/internal/combat"
	"github.com/Garsondee/gunplay/internal/logger"
	"github.com/Garsondee/gunplay/internal/world"
)

func TestHUD_FollowsHighlightEvents(t *testing.T) {
	s := world.NewSim(world.WithLogger(logger.Discard()))
	h := NewHUD(s.Avatar)
	require.Equal(t, 0, h.EquippedSlot())
	require.Equal(t, combat.NoSlot, h.HighlightedSlot())

	s.Avatar.HighlightSlot(2)
	assert.Equal(t, 2, h.HighlightedSlot())
	h.Update()
	assert.Greater(t, h.pulse, 0.0)

	s.Avatar.HighlightSlot(4)
	assert.Equal(t, 4, h.HighlightedSlot())
	assert.Zero(t, h.pulse, "a new highlight restarts the pulse")

	s.Avatar.UnhighlightInventorySlot()
	assert.Equal(t, combat.NoSlot, h.HighlightedSlot())
}

func TestHUD_DropAndReload(t *testing.T) {
	s := world.NewSim(world.WithLogger(logger.Discard()))
	h := NewHUD(s.Avatar)

	s.Avatar.EquippedWeapon().SetAmmo(10)
	s.Avatar.ReloadWeapon()
	s.RunFor(1700 * time.Millisecond)
	assert.Equal(t, "reloaded 20 9mm", h.Status())

	s.Avatar.DropWeapon()
	assert.Equal(t, combat.NoSlot, h.EquippedSlot())
}

func TestHUD_KeepsSlotAcrossSwap(t *testing.T) {
	s := world.NewSim(world.WithLogger(logger.Discard()))
	h := NewHUD(s.Avatar)
	pistol := combat.NewWeapon(combat.WeaponPistol)
	s.Arena.Spawn(pistol, combat.Vec2{X: 900, Y: 100})

	s.Avatar.SwapWeapon(pistol)

	require.Same(t, pistol, s.Avatar.EquippedWeapon())
	assert.Equal(t, 0, s.Avatar.EquippedSlot())
	assert.Equal(t, 0, h.EquippedSlot())
}

func TestCrosshairGap_GrowsWithSpread(t *testing.T) {
	assert.InDelta(t, crosshairGap, CrosshairGap(0), 1e-9)
	assert.Greater(t, CrosshairGap(1.5), CrosshairGap(0.5))
}
