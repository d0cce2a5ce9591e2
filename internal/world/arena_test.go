package world

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/gunplay/internal/combat"
)

func TestArena_TraceLineNearestObstacle(t *testing.T) {
	ar := NewArena(1000, 1000)
	far := ar.AddObstacle(ObstacleTarget, Rect{X: 500, Y: 0, W: 10, H: 100})
	near := ar.AddObstacle(ObstacleWall, Rect{X: 200, Y: 0, W: 10, H: 100})

	hit, ok := ar.TraceLine(v(0, 50), v(1000, 50))
	require.True(t, ok)
	assert.Same(t, near, hit.Actor)
	assert.InDelta(t, 200, hit.Point.X, 1e-9)
	assert.Equal(t, "wall-1", near.ActorID())
	assert.Equal(t, "target-0", far.ActorID())

	hit, ok = ar.TraceLine(v(0, 500), v(1000, 500))
	assert.False(t, ok)
	assert.Equal(t, v(1000, 500), hit.Point)
}

func TestArena_TraceItems(t *testing.T) {
	ar := NewArena(1000, 1000)
	w := combat.NewWeapon(combat.WeaponPistol)
	box := combat.NewAmmoPickup(combat.AmmoPistol, 5)
	ar.Spawn(w, v(300, 50))
	ar.Spawn(box, v(150, 50))

	hit, ok := ar.TraceItems(v(0, 50), v(1000, 50))
	require.True(t, ok)
	assert.Same(t, box, hit.Actor)

	ar.RemoveFromWorld(box)
	hit, ok = ar.TraceItems(v(0, 50), v(1000, 50))
	require.True(t, ok)
	assert.Same(t, w, hit.Actor)

	ar.AddObstacle(ObstacleWall, Rect{X: 200, Y: 0, W: 5, H: 100})
	_, ok = ar.TraceItems(v(0, 50), v(1000, 50))
	assert.False(t, ok)
}

func TestArena_FallingSettles(t *testing.T) {
	ar := NewArena(1000, 1000)
	w := combat.NewWeapon(combat.WeaponPistol)
	w.SetItemState(combat.ItemFalling)
	ar.PlaceInWorld(w, v(10, 10))

	ar.Step(500 * time.Millisecond)
	assert.Equal(t, combat.ItemFalling, w.ItemState())
	ar.Step(300 * time.Millisecond)
	assert.Equal(t, combat.ItemPickup, w.ItemState())
	assert.Equal(t, v(10, 10), w.Position())
}

func TestArena_PlaceTwiceKeepsOneEntry(t *testing.T) {
	ar := NewArena(1000, 1000)
	w := combat.NewWeapon(combat.WeaponPistol)
	ar.Spawn(w, v(1, 1))
	ar.Spawn(w, v(2, 2))
	assert.Len(t, ar.Items(), 1)
	assert.NotPanics(t, func() { ar.RemoveFromWorld(combat.NewWeapon(combat.WeaponPistol)) })
}

func TestArena_OverlapCount(t *testing.T) {
	ar := NewArena(1000, 1000)
	ar.Spawn(combat.NewAmmoPickup(combat.AmmoPistol, 1), v(100, 100))
	ar.Spawn(combat.NewAmmoPickup(combat.AmmoPistol, 1), v(150, 100))
	ar.Spawn(combat.NewAmmoPickup(combat.AmmoPistol, 1), v(600, 100))
	assert.Equal(t, 2, ar.OverlapCount(v(120, 100)))
	assert.Equal(t, 0, ar.OverlapCount(v(400, 400)))
}

func TestArena_Sockets(t *testing.T) {
	ar := NewArena(10, 10)
	ar.Attach("clip", combat.SocketLeftHand)
	s, ok := ar.SocketOf("clip")
	require.True(t, ok)
	assert.Equal(t, combat.SocketLeftHand, s)
	ar.Detach("clip")
	_, ok = ar.SocketOf("clip")
	assert.False(t, ok)
}
