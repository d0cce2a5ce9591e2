package combat

// --- Crosshair spread constants ---

const (
	crosshairBase         = 0.5
	crosshairAirTarget    = 2.25 // airborne spread bonus
	crosshairAirRiseSpeed = 2.25 // slow bloom when leaving the ground
	crosshairAirFallSpeed = 30.0 // fast recovery on landing
	crosshairAimTarget    = 0.6
	crosshairAimSpeed     = 30.0
	crosshairShootTarget  = 0.3
	crosshairShootDecay   = 60.0
)

// SpreadInput is the per-frame movement snapshot the spread model reads.
type SpreadInput struct {
	HorizontalSpeed float64
	MaxSpeed        float64
	Airborne        bool
	Aiming          bool
}

// Crosshair is the additive spread model. Each factor eases toward its target
// so the widget never pops.
type Crosshair struct {
	velocity float64
	air      float64
	aim      float64
	shooting float64
	shotHeld bool // one-shot timer still running since the last shot
}

// Update advances every factor by dt seconds.
func (c *Crosshair) Update(dt float64, in SpreadInput) {
	c.velocity = mapRangeClamped(in.HorizontalSpeed, 0, in.MaxSpeed, 0, 1)

	if in.Airborne {
		c.air = interpTo(c.air, crosshairAirTarget, dt, crosshairAirRiseSpeed)
	} else {
		c.air = interpTo(c.air, 0, dt, crosshairAirFallSpeed)
	}

	if in.Aiming {
		c.aim = interpTo(c.aim, crosshairAimTarget, dt, crosshairAimSpeed)
	} else {
		c.aim = interpTo(c.aim, 0, dt, crosshairAimSpeed)
	}

	if c.shotHeld {
		c.shooting = crosshairShootTarget
	} else {
		c.shooting = interpTo(c.shooting, 0, dt, crosshairShootDecay)
	}
}

// Shot spikes the shooting factor. The caller restarts the one-shot timer
// that ends the spike.
func (c *Crosshair) Shot() {
	c.shooting = crosshairShootTarget
	c.shotHeld = true
}

// ShotExpired releases the spike so the shooting factor decays.
func (c *Crosshair) ShotExpired() {
	c.shotHeld = false
}

// Spread is the current multiplier read by the firing pipeline and the HUD.
func (c Crosshair) Spread() float64 {
	return crosshairBase + c.velocity + c.air + c.aim + c.shooting
}

// Factors returns the individual components, mostly for debug overlays.
func (c Crosshair) Factors() (velocity, air, aim, shooting float64) {
	return c.velocity, c.air, c.aim, c.shooting
}
