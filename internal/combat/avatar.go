package combat

import (
	"log/slog"
	"math"
	"time"
)

// --- Avatar constants ---

const (
	defaultTraceRange    = 50000.0 // px, crosshair trace reach
	defaultPickupCurve   = 700 * time.Millisecond
	defaultSoundReset    = 200 * time.Millisecond
	defaultShootDuration = 50 * time.Millisecond // crosshair shot spike
	defaultBaseSpeed     = 650.0                 // px/s standing
	defaultCrouchSpeed   = 300.0                 // px/s crouched
	defaultPistolAmmo    = 85
	defaultRifleAmmo     = 120
)

// Settings are the tunables of one avatar.
type Settings struct {
	DefaultWeapon     WeaponKind
	StartingAmmo      map[AmmoType]int
	TraceRange        float64
	PickupCurveTime   time.Duration
	PickupSoundReset  time.Duration
	EquipSoundReset   time.Duration
	ShootSpreadTime   time.Duration
	AutoFireInterval  time.Duration // 0 uses the weapon's own cadence
	BaseMoveSpeed     float64
	CrouchMoveSpeed   float64
	CameraOffset      Vec2 // over-the-shoulder eye, in the facing frame
	MuzzleOffset      Vec2 // muzzle socket, in the facing frame
	Interp            *InterpLocations
	SkipDefaultWeapon bool
}

// DefaultSettings mirrors the shipped avatar.
func DefaultSettings() Settings {
	return Settings{
		DefaultWeapon:    WeaponSubmachineGun,
		StartingAmmo:     map[AmmoType]int{AmmoPistol: defaultPistolAmmo, AmmoAssaultRifle: defaultRifleAmmo},
		TraceRange:       defaultTraceRange,
		PickupCurveTime:  defaultPickupCurve,
		PickupSoundReset: defaultSoundReset,
		EquipSoundReset:  defaultSoundReset,
		ShootSpreadTime:  defaultShootDuration,
		BaseMoveSpeed:    defaultBaseSpeed,
		CrouchMoveSpeed:  defaultCrouchSpeed,
		CameraOffset:     Vec2{X: -24, Y: 10},
		MuzzleOffset:     Vec2{X: 22, Y: 4},
	}
}

// Deps are the collaborators an avatar drives.
type Deps struct {
	World    WorldQuery
	Anim     AnimationPlayer
	Timers   Timers
	Attacher Attacher
	Effects  Effects
	Bus      *Bus
	Logger   *slog.Logger
}

// Avatar is the player-controlled character's combat and inventory core.
// All methods run on the simulation thread.
type Avatar struct {
	world    WorldQuery
	anim     AnimationPlayer
	timers   Timers
	attacher Attacher
	fx       Effects
	bus      *Bus
	log      *slog.Logger
	cfg      Settings

	state     CombatState
	activeCue CueHandle

	equipped    *Weapon
	inv         Inventory
	ammo        AmmoMap
	interp      *InterpLocations
	highlighted int
	crosshair   Crosshair

	// Transform, driven by the movement layer.
	pos      Vec2
	facing   float64 // radians
	velocity Vec2
	airborne bool

	// Orthogonal toggles. Never part of the mutual-exclusion gate.
	aiming           bool
	aimButtonHeld    bool
	crouching        bool
	fireButtonHeld   bool
	autoFireTimer    TimerHandle
	shootSpreadTimer TimerHandle

	overlapped  int
	shouldTrace bool
	traceHit    Item
	lastTraced  Item

	flights []*PickupFlight

	pickupSoundReady bool
	equipSoundReady  bool
	pickupSoundTimer TimerHandle
	equipSoundTimer  TimerHandle

	tick int
}

// NewAvatar wires an avatar to its collaborators, registers it as the cue
// listener, fills the reserve and equips the default weapon.
func NewAvatar(deps Deps, cfg Settings) *Avatar {
	if deps.Effects == nil {
		deps.Effects = NopEffects{}
	}
	if deps.Bus == nil {
		deps.Bus = NewBus()
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if cfg.Interp == nil {
		cfg.Interp = DefaultInterpLocations()
	}
	if cfg.TraceRange <= 0 {
		cfg.TraceRange = defaultTraceRange
	}
	a := &Avatar{
		world:            deps.World,
		anim:             deps.Anim,
		timers:           deps.Timers,
		attacher:         deps.Attacher,
		fx:               deps.Effects,
		bus:              deps.Bus,
		log:              deps.Logger.With("component", "avatar"),
		cfg:              cfg,
		state:            StateReady,
		ammo:             NewAmmoMap(cfg.StartingAmmo),
		interp:           cfg.Interp,
		highlighted:      NoSlot,
		pickupSoundReady: true,
		equipSoundReady:  true,
	}
	a.bus.tick = &a.tick
	a.anim.SetListener(a)
	if !cfg.SkipDefaultWeapon {
		a.SpawnDefaultWeapon()
	}
	return a
}

// Tick advances per-frame logic by dt seconds: crosshair spread, the
// overlapping-item trace and in-flight pickups.
func (a *Avatar) Tick(dt float64) {
	a.tick++
	a.crosshair.Update(dt, SpreadInput{
		HorizontalSpeed: a.velocity.Len(),
		MaxSpeed:        a.MoveSpeed(),
		Airborne:        a.airborne,
		Aiming:          a.aiming,
	})
	a.traceForOverlappingItems()
	a.advanceFlights(dt)
}

// --- Transform ---

func (a *Avatar) SetPosition(p Vec2)      { a.pos = p }
func (a *Avatar) SetFacing(angle float64) { a.facing = angle }
func (a *Avatar) SetVelocity(v Vec2)      { a.velocity = v }
func (a *Avatar) SetAirborne(air bool)    { a.airborne = air }

// AimAt turns the avatar toward p.
func (a *Avatar) AimAt(p Vec2) {
	d := p.Sub(a.pos)
	if d.Len() < 1e-6 {
		return
	}
	a.facing = math.Atan2(d.Y, d.X)
}

func (a *Avatar) localToWorld(off Vec2) Vec2 {
	return a.pos.Add(off.Rotate(a.facing))
}

// CameraLocation is the eye the crosshair trace starts from.
func (a *Avatar) CameraLocation() Vec2 { return a.localToWorld(a.cfg.CameraOffset) }

// MuzzleLocation is the weapon's muzzle socket.
func (a *Avatar) MuzzleLocation() Vec2 { return a.localToWorld(a.cfg.MuzzleOffset) }

// Forward is the unit crosshair ray direction.
func (a *Avatar) Forward() Vec2 { return FromAngle(a.facing) }

// --- Accessors ---

func (a *Avatar) State() CombatState       { return a.state }
func (a *Avatar) EquippedWeapon() *Weapon  { return a.equipped }
func (a *Avatar) CrosshairSpread() float64 { return a.crosshair.Spread() }
func (a *Avatar) OverlappedItemCount() int { return a.overlapped }
func (a *Avatar) IsCrouching() bool        { return a.crouching }
func (a *Avatar) IsAiming() bool           { return a.aiming }
func (a *Avatar) IsAirborne() bool         { return a.airborne }
func (a *Avatar) HighlightedSlot() int     { return a.highlighted }
func (a *Avatar) Position() Vec2           { return a.pos }
func (a *Avatar) Facing() float64          { return a.facing }
func (a *Avatar) Velocity() Vec2           { return a.velocity }
func (a *Avatar) TraceHitItem() Item       { return a.traceHit }
func (a *Avatar) Bus() *Bus                { return a.bus }
func (a *Avatar) CurrentTick() int         { return a.tick }

// Crosshair exposes the spread model read-only.
func (a *Avatar) Crosshair() Crosshair { return a.crosshair }

// Ammo returns the reserve for t.
func (a *Avatar) Ammo(t AmmoType) int { return a.ammo.Count(t) }

// AddAmmo adds n rounds of t to the reserve.
func (a *Avatar) AddAmmo(t AmmoType, n int) { a.ammo.Add(t, n) }

// TakeAmmo removes up to n rounds of t from the reserve.
func (a *Avatar) TakeAmmo(t AmmoType, n int) int { return a.ammo.Take(t, n) }

// AmmoSnapshot copies the reserve map.
func (a *Avatar) AmmoSnapshot() map[AmmoType]int {
	out := make(map[AmmoType]int, len(a.ammo))
	for t, n := range a.ammo {
		out[t] = n
	}
	return out
}

// InventorySlots copies the slot array.
func (a *Avatar) InventorySlots() [InventoryCapacity]*Weapon { return a.inv.Slots() }

// InventoryItem returns the weapon in slot index, or nil. Panics out of range.
func (a *Avatar) InventoryItem(index int) *Weapon { return a.inv.At(index) }

// EmptyInventorySlot returns the first empty slot, or NoSlot when full.
func (a *Avatar) EmptyInventorySlot() int { return a.inv.EmptySlot() }

// InterpLocation returns a copy of interp location index.
func (a *Avatar) InterpLocation(index int) InterpLocation { return a.interp.At(index) }

// InterpLocationWorld returns the world position of interp location index.
func (a *Avatar) InterpLocationWorld(index int) Vec2 {
	return a.localToWorld(a.interp.At(index).Offset)
}

// InterpLocationCount returns the number of interp locations.
func (a *Avatar) InterpLocationCount() int { return a.interp.Len() }

// InterpLocationIndex returns the least-loaded item destination.
func (a *Avatar) InterpLocationIndex() int { return a.interp.LeastLoaded() }

// IncrementInterpLocationItemCount adjusts a destination counter; negative
// amounts record arrival or cancellation.
func (a *Avatar) IncrementInterpLocationItemCount(index, amount int) {
	a.interp.Increment(index, amount)
}

// MoveSpeed is the current maximum walking speed.
func (a *Avatar) MoveSpeed() float64 {
	if a.crouching {
		return a.cfg.CrouchMoveSpeed
	}
	return a.cfg.BaseMoveSpeed
}
