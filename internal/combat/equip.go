package combat

// dropDistance is how far in front of the avatar a dropped weapon lands.
const dropDistance = 36.0

// SpawnDefaultWeapon creates the configured default weapon, stores it in
// slot 0 and equips it. It bypasses the combat gate.
func (a *Avatar) SpawnDefaultWeapon() *Weapon {
	w := NewWeapon(a.cfg.DefaultWeapon)
	w.position = a.pos
	w.state = ItemPickedUp
	a.inv.Put(0, w)
	a.equipWeapon(w, false)
	return w
}

// EquipWeapon puts w in the avatar's hand and plays the equip cue. When
// swapping, the previously equipped weapon goes into the world and w takes
// its slot; otherwise the previous weapon stays in the inventory.
func (a *Avatar) EquipWeapon(w *Weapon, swapping bool) {
	if w == nil || w == a.equipped || w.state == ItemEquipInterping {
		return
	}
	if !a.gate(RequestEquip) {
		return
	}
	if w.slot == NoSlot && a.inv.Full() && !(swapping && a.equipped != nil) {
		return
	}
	a.equipWeapon(w, swapping)
	a.beginEquipCue(w)
}

// equipWeapon is the ungated hand-swap primitive.
func (a *Avatar) equipWeapon(w *Weapon, swapping bool) {
	prev := a.equipped
	prevSlot := NoSlot
	if prev != nil {
		prevSlot = prev.slot
		a.attacher.Detach(prev.id)
		if swapping {
			if prevSlot != NoSlot {
				a.inv.Clear(prevSlot)
			}
			a.throwWeapon(prev, prevSlot)
		} else {
			prev.state = ItemPickedUp
		}
	}

	if w.state == ItemPickup || w.state == ItemFalling {
		a.attacher.RemoveFromWorld(w)
	}
	if w.slot == NoSlot {
		slot := a.inv.EmptySlot()
		if swapping && prevSlot != NoSlot {
			slot = prevSlot
		}
		if slot == NoSlot {
			panic("combat: no inventory slot for equipped weapon")
		}
		a.inv.Put(slot, w)
	}

	a.attacher.Attach(w.id, SocketRightHand)
	w.state = ItemEquipped
	a.equipped = w

	current := NoSlot
	if prev != nil {
		current = prevSlot
	}
	a.bus.Publish(Event{Type: EventEquipSlotChanged, Payload: EquipSlotPayload{Current: current, New: w.slot}})
}

func (a *Avatar) beginEquipCue(w *Weapon) {
	if a.aiming {
		a.stopAiming()
	}
	a.stopAutoFire()
	cue := a.anim.PlayCue(CueEquip)
	a.setState(StateEquipping, cue)
	a.playEquipSound(w.position)
}

// finishEquipping ends an equip episode.
func (a *Avatar) finishEquipping() {
	a.setState(StateReady, NoCue)
	if a.aimButtonHeld {
		a.aim()
	}
}

// DropWeapon places the equipped weapon in the world and clears its slot.
// The avatar is unarmed until the next equip and stays Equipping until the
// equip cue completes.
func (a *Avatar) DropWeapon() {
	if a.equipped == nil {
		return
	}
	if !a.gate(RequestDrop) {
		return
	}
	w := a.equipped
	slot := w.slot
	a.stopAutoFire()
	a.attacher.Detach(w.id)
	if slot != NoSlot {
		a.inv.Clear(slot)
	}
	a.equipped = nil
	a.throwWeapon(w, slot)
	if a.aiming {
		a.stopAiming()
	}
	a.setState(StateEquipping, a.anim.PlayCue(CueEquip))
}

// DropButtonPressed drops the equipped weapon.
func (a *Avatar) DropButtonPressed() { a.DropWeapon() }

func (a *Avatar) throwWeapon(w *Weapon, slot int) {
	at := a.pos.Add(a.Forward().Scale(dropDistance))
	w.clipMoved = false
	w.state = ItemFalling
	w.position = at
	a.attacher.PlaceInWorld(w, at)
	a.log.Debug("weapon dropped", "weapon", w.kind.String(), "slot", slot)
	a.bus.Publish(Event{Type: EventWeaponDropped, Payload: DropPayload{Weapon: w, Slot: slot, At: at}})
}

// SwapWeapon replaces the equipped weapon with w. The old weapon goes into
// the world and w takes its slot.
func (a *Avatar) SwapWeapon(w *Weapon) {
	if a.equipped == nil {
		a.EquipWeapon(w, false)
		return
	}
	a.EquipWeapon(w, true)
}

// ExchangeInventoryItems equips the weapon in newIndex in place of the one in
// currentIndex. currentIndex may be NoSlot when unarmed. Indices out of range
// panic; an empty target or equal indices do nothing.
func (a *Avatar) ExchangeInventoryItems(currentIndex, newIndex int) {
	mustSlot(newIndex)
	if currentIndex != NoSlot {
		mustSlot(currentIndex)
	}
	if currentIndex == newIndex {
		return
	}
	if !a.gate(RequestEquip) {
		return
	}
	target := a.inv.At(newIndex)
	if target == nil {
		return
	}
	a.equipWeapon(target, false)
	a.beginEquipCue(target)
}

// SelectSlot is the hotbar key path: F selects slot 0, 1..5 the rest.
func (a *Avatar) SelectSlot(index int) {
	current := NoSlot
	if a.equipped != nil {
		current = a.equipped.slot
	}
	if current == index {
		return
	}
	a.ExchangeInventoryItems(current, index)
}

// EquippedSlot returns the equipped weapon's slot, or NoSlot when unarmed.
func (a *Avatar) EquippedSlot() int {
	if a.equipped == nil {
		return NoSlot
	}
	return a.equipped.slot
}
