package combat

// CombatState is what the avatar is currently doing with its weapon.
// Only Ready accepts new requests.
type CombatState int

const (
	StateReady            CombatState = iota // idle, accepts requests
	StateFiringInProgress                    // fire cue playing
	StateReloading                           // reload cue playing
	StateEquipping                           // equip cue playing
)

func (cs CombatState) String() string {
	switch cs {
	case StateReady:
		return "ready"
	case StateFiringInProgress:
		return "firing"
	case StateReloading:
		return "reloading"
	case StateEquipping:
		return "equipping"
	default:
		return "unknown"
	}
}

// Request names a gated public entry point. Used for ignored-request events.
type Request string

const (
	RequestFire   Request = "fire"
	RequestReload Request = "reload"
	RequestEquip  Request = "equip"
	RequestSelect Request = "select"
	RequestDrop   Request = "drop"
)

// gate reports whether req may run now. Refusals are published but never
// returned to the caller.
func (a *Avatar) gate(req Request) bool {
	if a.state == StateReady {
		return true
	}
	a.log.Debug("request ignored", "request", string(req), "state", a.state.String())
	a.bus.Publish(Event{Type: EventRequestIgnored, Payload: RequestIgnoredPayload{Request: req, State: a.state}})
	return false
}

// setState moves the machine to next. The cue handle becomes the only one
// whose completion may return the machine to Ready.
func (a *Avatar) setState(next CombatState, cue CueHandle) {
	prev := a.state
	a.state = next
	a.activeCue = cue
	if prev == next {
		return
	}
	a.log.Debug("combat state", "from", prev.String(), "to", next.String())
	a.bus.Publish(Event{Type: EventCombatStateChanged, Payload: StateChangedPayload{From: prev, To: next}})
}

// OnCueEvent is the continuation registered with the animation player. It is
// the only path back to Ready for fire, reload and equip episodes.
func (a *Avatar) OnCueEvent(h CueHandle, ev CueEvent) {
	if h == NoCue || h != a.activeCue {
		return
	}
	switch ev {
	case CueGrabClip:
		if a.state == StateReloading {
			a.grabClip()
		}
	case CueReleaseClip:
		if a.state == StateReloading {
			a.releaseClip()
		}
	case CueComplete:
		switch a.state {
		case StateFiringInProgress:
			a.setState(StateReady, NoCue)
			a.afterFireCue()
		case StateReloading:
			a.finishReloading()
		case StateEquipping:
			a.finishEquipping()
		}
	}
}
