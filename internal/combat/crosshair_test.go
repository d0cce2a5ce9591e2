package combat_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Garsondee/gunplay/internal/combat"
)

const frame = 1.0 / 60.0

func settle(c *combat.Crosshair, in combat.SpreadInput, seconds float64) {
	for t := 0.0; t < seconds; t += frame {
		c.Update(frame, in)
	}
}

func TestCrosshair_StationaryIsBase(t *testing.T) {
	var c combat.Crosshair
	c.Update(frame, combat.SpreadInput{MaxSpeed: 650})
	assert.InDelta(t, 0.5, c.Spread(), 1e-9)
}

func TestCrosshair_VelocityFactorClamped(t *testing.T) {
	var c combat.Crosshair
	c.Update(frame, combat.SpreadInput{HorizontalSpeed: 325, MaxSpeed: 650})
	v, _, _, _ := c.Factors()
	assert.InDelta(t, 0.5, v, 1e-9)

	c.Update(frame, combat.SpreadInput{HorizontalSpeed: 2000, MaxSpeed: 650})
	assert.InDelta(t, 1.5, c.Spread(), 1e-9)
}

func TestCrosshair_AirborneBloomsSlowlyRecoversFast(t *testing.T) {
	var c combat.Crosshair
	air := combat.SpreadInput{MaxSpeed: 650, Airborne: true}

	c.Update(frame, air)
	_, a1, _, _ := c.Factors()
	assert.Greater(t, a1, 0.0)
	assert.Less(t, a1, 0.1)

	settle(&c, air, 3)
	_, a2, _, _ := c.Factors()
	assert.InDelta(t, 2.25, a2, 0.01)

	settle(&c, combat.SpreadInput{MaxSpeed: 650}, 0.2)
	_, a3, _, _ := c.Factors()
	assert.InDelta(t, 0, a3, 1e-3)
}

func TestCrosshair_AimingAddsFactor(t *testing.T) {
	var c combat.Crosshair
	settle(&c, combat.SpreadInput{MaxSpeed: 650, Aiming: true}, 0.5)
	_, _, aim, _ := c.Factors()
	assert.InDelta(t, 0.6, aim, 1e-3)
	assert.InDelta(t, 1.1, c.Spread(), 1e-3)
}

func TestCrosshair_ShotHeldThenDecays(t *testing.T) {
	var c combat.Crosshair
	still := combat.SpreadInput{MaxSpeed: 650}

	c.Shot()
	settle(&c, still, 0.1)
	_, _, _, s := c.Factors()
	assert.InDelta(t, 0.3, s, 1e-9)

	c.ShotExpired()
	c.Update(frame, still)
	_, _, _, s = c.Factors()
	assert.InDelta(t, 0, s, 1e-9)
}

func TestCrosshair_ZeroMaxSpeed(t *testing.T) {
	var c combat.Crosshair
	c.Update(frame, combat.SpreadInput{HorizontalSpeed: 100})
	assert.False(t, math.IsNaN(c.Spread()))
	assert.InDelta(t, 0.5, c.Spread(), 1e-9)
}
