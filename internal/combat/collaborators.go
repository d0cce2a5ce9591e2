package combat

import "time"

// Hit is the first obstruction a trace found.
type Hit struct {
	Point Vec2
	Actor Actor // nil for anonymous geometry
}

// WorldQuery answers line traces. TraceLine sees solid geometry and targets;
// TraceItems sees only pickups lying in the world.
type WorldQuery interface {
	TraceLine(from, to Vec2) (Hit, bool)
	TraceItems(from, to Vec2) (Hit, bool)
}

// Cue names an animation sequence.
type Cue string

const (
	CueHipFire      Cue = "hip_fire"
	CueEquip        Cue = "equip"
	CueReloadSMG    Cue = "reload_smg"
	CueReloadAR     Cue = "reload_ar"
	CueReloadPistol Cue = "reload_pistol"
)

// CueEvent is a discrete signal emitted by a playing cue.
type CueEvent string

const (
	CueComplete    CueEvent = "complete"
	CueGrabClip    CueEvent = "grab_clip"
	CueReleaseClip CueEvent = "release_clip"
)

// CueHandle identifies one playback. NoCue is never issued.
type CueHandle uint64

const NoCue CueHandle = 0

// CueListener receives cue events. Events arrive on the simulation thread.
type CueListener interface {
	OnCueEvent(h CueHandle, ev CueEvent)
}

// AnimationPlayer plays cues and later reports their events to its listener.
// Events are never delivered from inside PlayCue.
type AnimationPlayer interface {
	PlayCue(cue Cue) CueHandle
	SetListener(l CueListener)
}

// TimerHandle identifies a scheduled callback. NoTimer is never issued.
type TimerHandle uint64

const NoTimer TimerHandle = 0

// Timers schedules callbacks on the simulation thread.
type Timers interface {
	Schedule(delay time.Duration, repeating bool, fn func()) TimerHandle
	Cancel(h TimerHandle)
}

// Socket names an attachment point on the avatar or a weapon.
type Socket string

const (
	SocketRightHand Socket = "right_hand"
	SocketLeftHand  Socket = "left_hand"
	SocketClipBone  Socket = "clip_bone"
)

// Attacher moves items between the avatar's sockets and the world.
type Attacher interface {
	Attach(id string, socket Socket)
	Detach(id string)
	PlaceInWorld(item Item, at Vec2)
	RemoveFromWorld(item Item)
}

// Effects is the rendering and audio collaborator.
type Effects interface {
	PlaySound(name string, at Vec2)
	MuzzleFlash(at Vec2, dir Vec2)
	Beam(from, to Vec2)
	Impact(at Vec2)
}

// Sound names used by the avatar.
const (
	SoundFire   = "fire"
	SoundPickup = "pickup"
	SoundEquip  = "equip"
)

// NopEffects discards every effect.
type NopEffects struct{}

func (NopEffects) PlaySound(string, Vec2) {}
func (NopEffects) MuzzleFlash(Vec2, Vec2) {}
func (NopEffects) Beam(Vec2, Vec2)        {}
func (NopEffects) Impact(Vec2)            {}
