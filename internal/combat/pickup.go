package combat

import "time"

// PickupFlight is an item curving from the world toward an interp location.
type PickupFlight struct {
	Item        Item
	From        Vec2
	InterpIndex int
	Elapsed     time.Duration
	Duration    time.Duration
}

// Progress returns the eased completion in [0,1].
func (f *PickupFlight) Progress() float64 {
	if f.Duration <= 0 {
		return 1
	}
	t := clamp01(float64(f.Elapsed) / float64(f.Duration))
	return t * t * (3 - 2*t)
}

// positioned is implemented by items that carry a world position.
type positioned interface {
	Position() Vec2
	SetPosition(Vec2)
}

func itemPosition(item Item) Vec2 {
	if p, ok := item.(positioned); ok {
		return p.Position()
	}
	return Vec2{}
}

func setItemPosition(item Item, at Vec2) {
	if p, ok := item.(positioned); ok {
		p.SetPosition(at)
	}
}

// AddOverlappedItemCount adjusts the number of pickup areas the avatar
// stands in. Tracing runs only while the count is positive.
func (a *Avatar) AddOverlappedItemCount(amount int) {
	a.overlapped += amount
	if a.overlapped < 0 {
		a.overlapped = 0
	}
	a.shouldTrace = a.overlapped > 0
}

// ShouldTraceForItems reports whether the per-tick item trace is active.
func (a *Avatar) ShouldTraceForItems() bool { return a.shouldTrace }

// traceForOverlappingItems records which item lies under the crosshair and
// keeps the hotbar highlight in step with it.
func (a *Avatar) traceForOverlappingItems() {
	if !a.shouldTrace {
		a.traceHit = nil
		if a.lastTraced != nil {
			a.lastTraced = nil
			a.UnhighlightInventorySlot()
		}
		return
	}

	from := a.CameraLocation()
	to := from.Add(a.Forward().Scale(a.cfg.TraceRange))
	var item Item
	if hit, ok := a.world.TraceItems(from, to); ok {
		if it, isItem := hit.Actor.(Item); isItem && it.ItemState() == ItemPickup {
			item = it
		}
	}
	a.traceHit = item

	if _, isWeapon := item.(*Weapon); isWeapon {
		if a.highlighted == NoSlot {
			a.highlightInventorySlot()
		}
	} else if a.highlighted != NoSlot {
		a.UnhighlightInventorySlot()
	}
	a.lastTraced = item
}

// highlightInventorySlot marks where a traced weapon would go: the first
// empty slot, or the equipped slot it would replace when full.
func (a *Avatar) highlightInventorySlot() {
	slot := a.inv.EmptySlot()
	if slot == NoSlot && a.equipped != nil {
		slot = a.equipped.slot
	}
	if slot == NoSlot {
		return
	}
	a.HighlightSlot(slot)
}

// HighlightSlot highlights slot index, stopping any previous highlight
// first. Highlighting the current slot again does nothing.
func (a *Avatar) HighlightSlot(index int) {
	mustSlot(index)
	if a.highlighted == index {
		return
	}
	if a.highlighted != NoSlot {
		a.bus.Publish(Event{Type: EventHighlightStop, Payload: HighlightPayload{Slot: a.highlighted}})
	}
	a.highlighted = index
	a.bus.Publish(Event{Type: EventHighlightStart, Payload: HighlightPayload{Slot: index}})
}

// UnhighlightInventorySlot clears the highlight.
func (a *Avatar) UnhighlightInventorySlot() {
	if a.highlighted == NoSlot {
		return
	}
	prev := a.highlighted
	a.highlighted = NoSlot
	a.bus.Publish(Event{Type: EventHighlightStop, Payload: HighlightPayload{Slot: prev}})
}

// SelectButtonPressed picks up the item under the crosshair.
func (a *Avatar) SelectButtonPressed() {
	if !a.gate(RequestSelect) {
		return
	}
	if a.traceHit == nil {
		return
	}
	item := a.traceHit
	a.traceHit = nil
	a.BeginPickup(item)
}

// SelectButtonReleased ends a select press.
func (a *Avatar) SelectButtonReleased() {}

// BeginPickup removes item from the world and starts its flight toward the
// avatar. Weapons fly to the weapon location, everything else to the
// least-loaded item location.
func (a *Avatar) BeginPickup(item Item) bool {
	if item == nil || item.ItemState() != ItemPickup {
		return false
	}
	idx := WeaponInterpIndex
	if _, isWeapon := item.(*Weapon); !isWeapon {
		idx = a.interp.LeastLoaded()
	}
	a.interp.Increment(idx, 1)

	from := itemPosition(item)
	item.SetItemState(ItemEquipInterping)
	a.attacher.RemoveFromWorld(item)
	a.flights = append(a.flights, &PickupFlight{
		Item:        item,
		From:        from,
		InterpIndex: idx,
		Duration:    a.cfg.PickupCurveTime,
	})
	a.playPickupSound(from)
	a.log.Debug("pickup started", "item", item.ItemName(), "interp", idx)
	return true
}

// Flights returns the in-flight pickups.
func (a *Avatar) Flights() []*PickupFlight { return a.flights }

// FlightPosition is the current world position of f.
func (a *Avatar) FlightPosition(f *PickupFlight) Vec2 {
	return f.From.Lerp(a.InterpLocationWorld(f.InterpIndex), f.Progress())
}

func (a *Avatar) advanceFlights(dt float64) {
	if len(a.flights) == 0 {
		return
	}
	step := time.Duration(dt * float64(time.Second))
	var landed []*PickupFlight
	kept := a.flights[:0]
	for _, f := range a.flights {
		f.Elapsed += step
		setItemPosition(f.Item, a.FlightPosition(f))
		if f.Elapsed >= f.Duration {
			landed = append(landed, f)
			continue
		}
		kept = append(kept, f)
	}
	a.flights = kept
	for _, f := range landed {
		a.interp.Increment(f.InterpIndex, -1)
		a.loadPickupItem(f.Item)
	}
}

// CancelPickup aborts item's flight and returns it to the world where it is.
func (a *Avatar) CancelPickup(item Item) bool {
	for i, f := range a.flights {
		if f.Item != item {
			continue
		}
		a.flights = append(a.flights[:i], a.flights[i+1:]...)
		a.interp.Increment(f.InterpIndex, -1)
		at := a.FlightPosition(f)
		item.SetItemState(ItemPickup)
		setItemPosition(item, at)
		a.attacher.PlaceInWorld(item, at)
		return true
	}
	return false
}

func (a *Avatar) loadPickupItem(item Item) {
	switch it := item.(type) {
	case *AmmoPickup:
		a.pickUpAmmo(it)
	case *Weapon:
		a.pickUpWeapon(it)
	}
}

func (a *Avatar) pickUpAmmo(p *AmmoPickup) {
	a.playEquipSound(p.position)
	a.ammo.Add(p.ammoType, p.count)
	p.state = ItemPickedUp
	a.bus.Publish(Event{Type: EventItemPickedUp, Payload: PickupPayload{Item: p, Slot: NoSlot}})

	if w := a.equipped; w != nil && w.AmmoType() == p.ammoType && w.ammo == 0 {
		a.ReloadWeapon()
	}
}

func (a *Avatar) pickUpWeapon(w *Weapon) {
	a.playEquipSound(w.position)
	switch slot := a.inv.EmptySlot(); {
	case a.equipped == nil && slot != NoSlot && a.state == StateReady:
		w.state = ItemPickedUp
		a.inv.Put(slot, w)
		a.equipWeapon(w, false)
	case slot != NoSlot:
		w.state = ItemPickedUp
		a.inv.Put(slot, w)
	case a.state == StateReady && a.equipped != nil:
		a.equipWeapon(w, true)
	default:
		w.state = ItemPickup
		a.attacher.PlaceInWorld(w, w.position)
		a.log.Debug("weapon pickup refused", "weapon", w.kind.String(), "state", a.state.String())
		return
	}
	a.bus.Publish(Event{Type: EventItemPickedUp, Payload: PickupPayload{Item: w, Slot: w.slot}})
}

// --- Sound cooldowns ---

func (a *Avatar) ShouldPlayPickupSound() bool { return a.pickupSoundReady }
func (a *Avatar) ShouldPlayEquipSound() bool  { return a.equipSoundReady }

func (a *Avatar) playPickupSound(at Vec2) {
	if !a.pickupSoundReady {
		return
	}
	a.fx.PlaySound(SoundPickup, at)
	a.StartPickupSoundTimer()
}

func (a *Avatar) playEquipSound(at Vec2) {
	if !a.equipSoundReady {
		return
	}
	a.fx.PlaySound(SoundEquip, at)
	a.StartEquipSoundTimer()
}

// StartPickupSoundTimer blocks the pickup sound until the reset elapses.
func (a *Avatar) StartPickupSoundTimer() {
	a.pickupSoundReady = false
	a.timers.Cancel(a.pickupSoundTimer)
	a.pickupSoundTimer = a.timers.Schedule(a.cfg.PickupSoundReset, false, func() {
		a.pickupSoundReady = true
		a.pickupSoundTimer = NoTimer
	})
}

// StartEquipSoundTimer blocks the equip sound until the reset elapses.
func (a *Avatar) StartEquipSoundTimer() {
	a.equipSoundReady = false
	a.timers.Cancel(a.equipSoundTimer)
	a.equipSoundTimer = a.timers.Schedule(a.cfg.EquipSoundReset, false, func() {
		a.equipSoundReady = true
		a.equipSoundTimer = NoTimer
	})
}
