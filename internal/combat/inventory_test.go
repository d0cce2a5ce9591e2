package combat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/gunplay/internal/combat"
)

func TestInventory_EmptySlotFirstFit(t *testing.T) {
	var inv combat.Inventory
	inv.Put(0, combat.NewWeapon(combat.WeaponPistol))
	inv.Put(2, combat.NewWeapon(combat.WeaponAssaultRifle))

	assert.Equal(t, 1, inv.EmptySlot())
	assert.Equal(t, 2, inv.Count())
	assert.False(t, inv.Full())
}

func TestInventory_FullReturnsNoSlot(t *testing.T) {
	var inv combat.Inventory
	for i := 0; i < combat.InventoryCapacity; i++ {
		inv.Put(i, combat.NewWeapon(combat.WeaponSubmachineGun))
	}
	assert.Equal(t, combat.NoSlot, inv.EmptySlot())
	assert.True(t, inv.Full())
}

func TestInventory_PutAndClearTrackSlot(t *testing.T) {
	var inv combat.Inventory
	w := combat.NewWeapon(combat.WeaponPistol)
	require.Equal(t, combat.NoSlot, w.SlotIndex())

	inv.Put(4, w)
	assert.Equal(t, 4, w.SlotIndex())
	assert.Same(t, w, inv.At(4))

	got := inv.Clear(4)
	assert.Same(t, w, got)
	assert.Equal(t, combat.NoSlot, w.SlotIndex())
	assert.Nil(t, inv.At(4))
	assert.Nil(t, inv.Clear(4))
}

func TestInventory_OutOfRangePanics(t *testing.T) {
	var inv combat.Inventory
	assert.Panics(t, func() { inv.At(-1) })
	assert.Panics(t, func() { inv.At(combat.InventoryCapacity) })
	assert.Panics(t, func() { inv.Put(6, nil) })
	assert.Panics(t, func() { inv.Clear(-2) })
}

func TestInventory_SlotsIsCopy(t *testing.T) {
	var inv combat.Inventory
	inv.Put(0, combat.NewWeapon(combat.WeaponPistol))
	slots := inv.Slots()
	slots[0] = nil
	assert.NotNil(t, inv.At(0))
}

func TestAmmoMap_AddTake(t *testing.T) {
	m := combat.NewAmmoMap(map[combat.AmmoType]int{combat.AmmoPistol: 10})
	assert.Equal(t, 10, m.Count(combat.AmmoPistol))
	assert.Equal(t, 0, m.Count(combat.AmmoAssaultRifle))

	assert.Equal(t, 4, m.Take(combat.AmmoPistol, 4))
	assert.Equal(t, 6, m.Take(combat.AmmoPistol, 50))
	assert.Equal(t, 0, m.Count(combat.AmmoPistol))
	assert.Equal(t, 0, m.Take(combat.AmmoPistol, -3))

	m.Add(combat.AmmoAssaultRifle, 7)
	assert.Equal(t, 7, m.Count(combat.AmmoAssaultRifle))
	assert.Panics(t, func() { m.Add(combat.AmmoPistol, -1) })
}

func TestWeapon_Catalog(t *testing.T) {
	tests := []struct {
		kind      combat.WeaponKind
		ammo      combat.AmmoType
		magazine  int
		automatic bool
		cue       combat.Cue
	}{
		{combat.WeaponSubmachineGun, combat.AmmoPistol, 30, true, combat.CueReloadSMG},
		{combat.WeaponAssaultRifle, combat.AmmoAssaultRifle, 30, true, combat.CueReloadAR},
		{combat.WeaponPistol, combat.AmmoPistol, 12, false, combat.CueReloadPistol},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			w := combat.NewWeapon(tt.kind)
			assert.Equal(t, tt.ammo, w.AmmoType())
			assert.Equal(t, tt.magazine, w.MagazineCapacity())
			assert.Equal(t, tt.magazine, w.Ammo())
			assert.Equal(t, tt.automatic, w.Automatic())
			assert.Equal(t, tt.cue, w.ReloadCue())
			assert.True(t, w.ClipIsFull())
			assert.NotEmpty(t, w.ActorID())
		})
	}
}

func TestWeapon_SetAmmoClamps(t *testing.T) {
	w := combat.NewWeapon(combat.WeaponPistol)
	w.SetAmmo(-5)
	assert.Equal(t, 0, w.Ammo())
	w.SetAmmo(99)
	assert.Equal(t, 12, w.Ammo())
}

func TestInterp_LeastLoadedSkipsWeaponLocation(t *testing.T) {
	il := combat.NewInterpLocations(
		combat.InterpLocation{Name: "weapon"},
		combat.InterpLocation{Name: "a"},
		combat.InterpLocation{Name: "b"},
		combat.InterpLocation{Name: "c"},
	)
	il.Increment(0, 2)
	il.Increment(2, 1)

	assert.Equal(t, 1, il.LeastLoaded())

	il.Increment(1, 3)
	assert.Equal(t, 3, il.LeastLoaded())
}

func TestInterp_IncrementFloorsAtZero(t *testing.T) {
	il := combat.DefaultInterpLocations()
	il.Increment(3, -4)
	assert.Equal(t, 0, il.At(3).ItemCount)
	assert.Panics(t, func() { il.Increment(il.Len(), 1) })
	assert.Panics(t, func() { combat.NewInterpLocations(combat.InterpLocation{}) })
}

func TestInterp_DefaultLayout(t *testing.T) {
	il := combat.DefaultInterpLocations()
	assert.Equal(t, 7, il.Len())
	assert.Equal(t, 1, il.LeastLoaded())
}
