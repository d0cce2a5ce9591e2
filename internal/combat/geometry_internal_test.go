package combat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterpTo(t *testing.T) {
	assert.Equal(t, 5.0, interpTo(0, 5, 0.1, 0), "non-positive speed snaps")
	assert.InDelta(t, 2.5, interpTo(0, 5, 0.1, 5), 1e-12)
	assert.Equal(t, 5.0, interpTo(0, 5, 1, 10), "step clamps at target")
	assert.Equal(t, 1.0, interpTo(1-1e-5, 1, 0.01, 1), "tiny gaps snap")
}

func TestMapRangeClamped(t *testing.T) {
	assert.InDelta(t, 0.25, mapRangeClamped(25, 0, 100, 0, 1), 1e-12)
	assert.Equal(t, 1.0, mapRangeClamped(200, 0, 100, 0, 1))
	assert.Equal(t, 0.0, mapRangeClamped(-5, 0, 100, 0, 1))
	assert.Equal(t, 0.0, mapRangeClamped(5, 10, 10, 0, 1))
}

func TestVec2_RotateAndNormalize(t *testing.T) {
	v := Vec2{X: 1, Y: 0}.Rotate(math.Pi / 2)
	assert.InDelta(t, 0, v.X, 1e-12)
	assert.InDelta(t, 1, v.Y, 1e-12)

	n := Vec2{X: 3, Y: 4}.Normalize()
	assert.InDelta(t, 1, n.Len(), 1e-12)
	assert.Equal(t, Vec2{}, Vec2{}.Normalize())
}

func TestFlightProgressEased(t *testing.T) {
	f := &PickupFlight{Duration: 100}
	assert.Equal(t, 0.0, f.Progress())
	f.Elapsed = 50
	assert.InDelta(t, 0.5, f.Progress(), 1e-12)
	f.Elapsed = 200
	assert.Equal(t, 1.0, f.Progress())
	assert.Equal(t, 1.0, (&PickupFlight{}).Progress())
}
