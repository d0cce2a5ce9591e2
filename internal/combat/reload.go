package combat

// ReloadButtonPressed requests a reload.
func (a *Avatar) ReloadButtonPressed() {
	a.ReloadWeapon()
}

// IsCarryingAmmo reports whether the reserve holds rounds for the equipped
// weapon's ammo type.
func (a *Avatar) IsCarryingAmmo() bool {
	if a.equipped == nil {
		return false
	}
	return a.ammo.Count(a.equipped.AmmoType()) > 0
}

// ReloadWeapon starts a reload when Ready, carrying matching ammo and the
// magazine is not already full.
func (a *Avatar) ReloadWeapon() {
	if a.equipped == nil {
		return
	}
	if !a.gate(RequestReload) {
		return
	}
	if !a.IsCarryingAmmo() || a.equipped.ClipIsFull() {
		return
	}
	if a.aiming {
		a.stopAiming()
	}
	a.stopAutoFire()
	cue := a.anim.PlayCue(a.equipped.ReloadCue())
	a.setState(StateReloading, cue)
}

// grabClip moves the magazine from the weapon to the avatar's free hand.
func (a *Avatar) grabClip() {
	w := a.equipped
	if w == nil || w.clipMoved {
		return
	}
	a.attacher.Attach(w.ClipID(), SocketLeftHand)
	w.clipMoved = true
}

// releaseClip seats the magazine back in the weapon.
func (a *Avatar) releaseClip() {
	w := a.equipped
	if w == nil || !w.clipMoved {
		return
	}
	a.attacher.Attach(w.ClipID(), SocketClipBone)
	w.clipMoved = false
}

// finishReloading moves rounds from the reserve into the magazine. It runs
// at most once per reload because setState clears the active cue.
func (a *Avatar) finishReloading() {
	w := a.equipped
	a.setState(StateReady, NoCue)
	if a.aimButtonHeld {
		a.aim()
	}
	if w == nil {
		return
	}
	a.releaseClip()

	needed := w.MagazineCapacity() - w.ammo
	transferred := a.ammo.Take(w.AmmoType(), needed)
	w.reloadAmmo(transferred)

	a.log.Debug("reload finished", "weapon", w.kind.String(), "transferred", transferred,
		"magazine", w.ammo, "reserve", a.ammo.Count(w.AmmoType()))
	a.bus.Publish(Event{Type: EventReloadFinished, Payload: ReloadPayload{AmmoType: w.AmmoType(), Transferred: transferred}})
}
