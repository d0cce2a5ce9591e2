package world

import (
	"sort"
	"time"

	"github.com/Garsondee/gunplay/internal/combat"
)

// Marker is a notify placed at an offset inside a cue.
type Marker struct {
	At    time.Duration
	Event combat.CueEvent
}

// CueSpec is the timing of one animation cue.
type CueSpec struct {
	Duration time.Duration
	Markers  []Marker
}

// DefaultCues is the shipped cue catalog.
func DefaultCues() map[combat.Cue]CueSpec {
	return map[combat.Cue]CueSpec{
		combat.CueHipFire: {Duration: 80 * time.Millisecond},
		combat.CueEquip:   {Duration: 400 * time.Millisecond},
		combat.CueReloadSMG: {Duration: 1600 * time.Millisecond, Markers: []Marker{
			{At: 400 * time.Millisecond, Event: combat.CueGrabClip},
			{At: 1200 * time.Millisecond, Event: combat.CueReleaseClip},
		}},
		combat.CueReloadAR: {Duration: 2000 * time.Millisecond, Markers: []Marker{
			{At: 500 * time.Millisecond, Event: combat.CueGrabClip},
			{At: 1500 * time.Millisecond, Event: combat.CueReleaseClip},
		}},
		combat.CueReloadPistol: {Duration: 1200 * time.Millisecond, Markers: []Marker{
			{At: 300 * time.Millisecond, Event: combat.CueGrabClip},
			{At: 900 * time.Millisecond, Event: combat.CueReleaseClip},
		}},
	}
}

type playing struct {
	handle  combat.CueHandle
	cue     combat.Cue
	spec    CueSpec
	elapsed time.Duration
	marker  int
}

type delivery struct {
	handle combat.CueHandle
	event  combat.CueEvent
}

// Animator plays cues on a single upper-body slot. Playing a new cue
// interrupts the current one without a completion. Events are delivered from
// Advance, never from PlayCue.
type Animator struct {
	catalog  map[combat.Cue]CueSpec
	listener combat.CueListener
	next     combat.CueHandle
	current  *playing
	played   []combat.Cue
}

// NewAnimator creates an animator over catalog; nil uses DefaultCues.
func NewAnimator(catalog map[combat.Cue]CueSpec) *Animator {
	if catalog == nil {
		catalog = DefaultCues()
	}
	own := make(map[combat.Cue]CueSpec, len(catalog))
	for cue, spec := range catalog {
		spec.Markers = append([]Marker(nil), spec.Markers...)
		sort.SliceStable(spec.Markers, func(i, j int) bool { return spec.Markers[i].At < spec.Markers[j].At })
		own[cue] = spec
	}
	return &Animator{catalog: own}
}

func (an *Animator) SetListener(l combat.CueListener) { an.listener = l }

// PlayCue starts cue and returns its handle. Unknown cues complete on the
// next Advance.
func (an *Animator) PlayCue(cue combat.Cue) combat.CueHandle {
	an.next++
	an.current = &playing{handle: an.next, cue: cue, spec: an.catalog[cue]}
	an.played = append(an.played, cue)
	return an.next
}

// Current returns the handle of the playing cue, or NoCue.
func (an *Animator) Current() combat.CueHandle {
	if an.current == nil {
		return combat.NoCue
	}
	return an.current.handle
}

// CurrentCue returns the playing cue name, or "".
func (an *Animator) CurrentCue() combat.Cue {
	if an.current == nil {
		return ""
	}
	return an.current.cue
}

// Played returns every cue started so far, in order.
func (an *Animator) Played() []combat.Cue { return an.played }

// Stop interrupts the playing cue without delivering anything.
func (an *Animator) Stop() { an.current = nil }

// Advance moves the playing cue forward by d and delivers its due markers,
// then its completion.
func (an *Animator) Advance(d time.Duration) {
	p := an.current
	if p == nil {
		return
	}
	p.elapsed += d

	var out []delivery
	for p.marker < len(p.spec.Markers) && p.spec.Markers[p.marker].At <= p.elapsed {
		out = append(out, delivery{handle: p.handle, event: p.spec.Markers[p.marker].Event})
		p.marker++
	}
	if p.elapsed >= p.spec.Duration {
		out = append(out, delivery{handle: p.handle, event: combat.CueComplete})
		an.current = nil
	}

	if an.listener == nil {
		return
	}
	for _, dv := range out {
		an.listener.OnCueEvent(dv.handle, dv.event)
	}
}
