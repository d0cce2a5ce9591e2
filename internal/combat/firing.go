package combat

// FireButtonPressed holds the trigger and tries to fire.
func (a *Avatar) FireButtonPressed() {
	a.fireButtonHeld = true
	a.FireWeapon()
}

// FireButtonReleased lets go of the trigger. Only the next scheduled
// auto-fire tick is cancelled; a shot already committed plays out.
func (a *Avatar) FireButtonReleased() {
	a.fireButtonHeld = false
	a.stopAutoFire()
}

// FireButtonHeld reports the trigger state.
func (a *Avatar) FireButtonHeld() bool { return a.fireButtonHeld }

// WeaponHasAmmo reports whether the equipped magazine has a round loaded.
func (a *Avatar) WeaponHasAmmo() bool {
	return a.equipped != nil && a.equipped.ammo > 0
}

// FireWeapon fires one round when Ready with a loaded magazine. Otherwise it
// does nothing.
func (a *Avatar) FireWeapon() {
	if a.equipped == nil {
		return
	}
	if !a.gate(RequestFire) {
		return
	}
	if !a.WeaponHasAmmo() {
		return
	}

	w := a.equipped
	w.decrementAmmo()

	muzzle := a.MuzzleLocation()
	a.fx.PlaySound(SoundFire, muzzle)
	a.fx.MuzzleFlash(muzzle, a.Forward())
	cue := a.anim.PlayCue(CueHipFire)
	a.setState(StateFiringInProgress, cue)

	end := a.sendBullet(muzzle)
	a.startCrosshairBulletFire()

	a.bus.Publish(Event{Type: EventShotFired, Payload: ShotPayload{
		Weapon:    w.kind,
		AmmoType:  w.AmmoType(),
		Remaining: w.ammo,
		Muzzle:    muzzle,
		End:       end,
	}})

	if w.ammo == 0 {
		a.stopAutoFire()
		return
	}
	if w.Automatic() && a.fireButtonHeld {
		a.startAutoFire(w)
	}
}

// sendBullet traces the beam from the muzzle and spawns its visuals.
// Returns the beam end point.
func (a *Avatar) sendBullet(muzzle Vec2) Vec2 {
	hit, blocked := a.beamEndLocation(muzzle)
	a.fx.Beam(muzzle, hit.Point)
	if blocked {
		a.fx.Impact(hit.Point)
		a.bus.Publish(Event{Type: EventHit, Payload: HitPayload{Actor: hit.Actor, Point: hit.Point}})
	}
	return hit.Point
}

// traceUnderCrosshairs casts from the camera along the crosshair ray. The
// returned point is the hit, or the ray end at max range.
func (a *Avatar) traceUnderCrosshairs() (Vec2, bool) {
	start := a.CameraLocation()
	end := start.Add(a.Forward().Scale(a.cfg.TraceRange))
	if hit, ok := a.world.TraceLine(start, end); ok {
		return hit.Point, true
	}
	return end, false
}

// beamEndLocation resolves where a bullet from muzzle stops. The camera trace
// picks the aim point; a second trace from the muzzle finds what actually
// sits between the muzzle and that point.
func (a *Avatar) beamEndLocation(muzzle Vec2) (Hit, bool) {
	aimPoint, _ := a.traceUnderCrosshairs()
	if hit, ok := a.world.TraceLine(muzzle, aimPoint); ok {
		return hit, true
	}
	return Hit{Point: aimPoint}, false
}

func (a *Avatar) startAutoFire(w *Weapon) {
	if a.autoFireTimer != NoTimer {
		return
	}
	interval := a.cfg.AutoFireInterval
	if interval <= 0 {
		interval = w.FireInterval()
	}
	a.autoFireTimer = a.timers.Schedule(interval, true, a.autoFireTick)
}

func (a *Avatar) stopAutoFire() {
	if a.autoFireTimer == NoTimer {
		return
	}
	a.timers.Cancel(a.autoFireTimer)
	a.autoFireTimer = NoTimer
}

// AutoFireScheduled reports whether an auto-fire repeat is pending.
func (a *Avatar) AutoFireScheduled() bool { return a.autoFireTimer != NoTimer }

func (a *Avatar) autoFireTick() {
	if !a.fireButtonHeld {
		a.stopAutoFire()
		return
	}
	if !a.WeaponHasAmmo() {
		a.stopAutoFire()
		a.ReloadWeapon()
		return
	}
	// The fire cue bounds FiringInProgress; wait for the next tick.
	if a.state != StateReady {
		return
	}
	a.FireWeapon()
}

// afterFireCue runs once the fire cue returned the machine to Ready.
func (a *Avatar) afterFireCue() {
	if a.equipped != nil && a.equipped.ammo == 0 {
		a.ReloadWeapon()
	}
}

func (a *Avatar) startCrosshairBulletFire() {
	a.crosshair.Shot()
	if a.shootSpreadTimer != NoTimer {
		a.timers.Cancel(a.shootSpreadTimer)
	}
	a.shootSpreadTimer = a.timers.Schedule(a.cfg.ShootSpreadTime, false, func() {
		a.shootSpreadTimer = NoTimer
		a.crosshair.ShotExpired()
	})
}
