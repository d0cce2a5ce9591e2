package combat

import "fmt"

const (
	// InventoryCapacity is the fixed number of weapon slots.
	InventoryCapacity = 6

	// NoSlot marks an empty selection: no highlighted slot, no equipped
	// weapon, or a full inventory.
	NoSlot = -1
)

// Inventory is a fixed array of weapon slots. A nil entry is an empty slot.
type Inventory struct {
	slots [InventoryCapacity]*Weapon
}

func mustSlot(index int) {
	if index < 0 || index >= InventoryCapacity {
		panic(fmt.Sprintf("combat: inventory index %d out of range [0,%d)", index, InventoryCapacity))
	}
}

// Len is always InventoryCapacity; empty slots count.
func (inv *Inventory) Len() int { return InventoryCapacity }

// At returns the weapon in slot index, or nil.
func (inv *Inventory) At(index int) *Weapon {
	mustSlot(index)
	return inv.slots[index]
}

// Count returns the number of occupied slots.
func (inv *Inventory) Count() int {
	n := 0
	for _, w := range inv.slots {
		if w != nil {
			n++
		}
	}
	return n
}

// EmptySlot returns the first empty slot in index order, or NoSlot when full.
func (inv *Inventory) EmptySlot() int {
	for i, w := range inv.slots {
		if w == nil {
			return i
		}
	}
	return NoSlot
}

// Full reports whether every slot is occupied.
func (inv *Inventory) Full() bool { return inv.EmptySlot() == NoSlot }

// Put stores w in slot index and records the index on the weapon.
func (inv *Inventory) Put(index int, w *Weapon) {
	mustSlot(index)
	inv.slots[index] = w
	if w != nil {
		w.slot = index
	}
}

// Clear empties slot index and returns what it held.
func (inv *Inventory) Clear(index int) *Weapon {
	mustSlot(index)
	w := inv.slots[index]
	inv.slots[index] = nil
	if w != nil {
		w.slot = NoSlot
	}
	return w
}

// Slots returns a copy of the slot array.
func (inv *Inventory) Slots() [InventoryCapacity]*Weapon {
	return inv.slots
}
