package combat

// AimButtonPressed zooms in unless a reload or equip is playing. The held
// state is remembered so aiming resumes when the episode ends.
func (a *Avatar) AimButtonPressed() {
	a.aimButtonHeld = true
	if a.state == StateReloading || a.state == StateEquipping {
		return
	}
	a.aim()
}

// AimButtonReleased zooms out.
func (a *Avatar) AimButtonReleased() {
	a.aimButtonHeld = false
	a.stopAiming()
}

func (a *Avatar) AimButtonHeld() bool { return a.aimButtonHeld }

func (a *Avatar) aim() {
	if a.aiming {
		return
	}
	a.aiming = true
	a.log.Debug("aim", "on", true)
}

func (a *Avatar) stopAiming() {
	if !a.aiming {
		return
	}
	a.aiming = false
	a.log.Debug("aim", "on", false)
}

// CrouchButtonPressed toggles crouching while grounded.
func (a *Avatar) CrouchButtonPressed() {
	if a.airborne {
		return
	}
	a.crouching = !a.crouching
}

// Jump reports whether the avatar may leave the ground. A crouched avatar
// stands up instead.
func (a *Avatar) Jump() bool {
	if a.crouching {
		a.crouching = false
		return false
	}
	return !a.airborne
}
