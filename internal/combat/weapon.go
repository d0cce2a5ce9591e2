package combat

import (
	"time"

	"github.com/google/uuid"
)

// ItemState is where an item is in its pickup lifecycle.
type ItemState int

const (
	ItemPickup        ItemState = iota // lying in the world, traceable
	ItemEquipInterping                 // flying toward an interp location
	ItemPickedUp                       // stored in the inventory, not in hand
	ItemEquipped                       // in the avatar's hand
	ItemFalling                        // just dropped, settling in the world
)

func (s ItemState) String() string {
	switch s {
	case ItemPickup:
		return "pickup"
	case ItemEquipInterping:
		return "interping"
	case ItemPickedUp:
		return "picked_up"
	case ItemEquipped:
		return "equipped"
	case ItemFalling:
		return "falling"
	default:
		return "unknown"
	}
}

// Actor is anything a world trace can hit.
type Actor interface {
	ActorID() string
}

// Item is a pickup that can fly to the avatar.
type Item interface {
	Actor
	ItemName() string
	ItemState() ItemState
	SetItemState(ItemState)
}

// WeaponKind selects a row of the weapon table.
type WeaponKind int

const (
	WeaponSubmachineGun WeaponKind = iota
	WeaponAssaultRifle
	WeaponPistol
)

func (k WeaponKind) String() string {
	switch k {
	case WeaponSubmachineGun:
		return "smg"
	case WeaponAssaultRifle:
		return "assault_rifle"
	case WeaponPistol:
		return "pistol"
	default:
		return "unknown"
	}
}

// ParseWeaponKind maps a String() name back to its kind.
func ParseWeaponKind(s string) (WeaponKind, bool) {
	for k := range weaponTable {
		if k.String() == s {
			return k, true
		}
	}
	return WeaponSubmachineGun, false
}

// weaponParams bundles the configured traits of one weapon kind.
type weaponParams struct {
	name         string
	ammoType     AmmoType
	magazine     int           // rounds per full magazine
	automatic    bool          // holding fire repeats
	fireInterval time.Duration // auto-fire cadence
	reloadCue    Cue
}

var weaponTable = map[WeaponKind]weaponParams{
	WeaponSubmachineGun: {name: "SMG", ammoType: AmmoPistol, magazine: 30, automatic: true, fireInterval: 100 * time.Millisecond, reloadCue: CueReloadSMG},
	WeaponAssaultRifle:  {name: "Assault Rifle", ammoType: AmmoAssaultRifle, magazine: 30, automatic: true, fireInterval: 120 * time.Millisecond, reloadCue: CueReloadAR},
	WeaponPistol:        {name: "Pistol", ammoType: AmmoPistol, magazine: 12, automatic: false, fireInterval: 250 * time.Millisecond, reloadCue: CueReloadPistol},
}

// Weapon is one weapon instance. The avatar owns it while it sits in the
// inventory; the world owns it while it is a pickup.
type Weapon struct {
	id        string
	kind      WeaponKind
	params    weaponParams
	ammo      int
	slot      int
	state     ItemState
	position  Vec2
	clipMoved bool
}

// NewWeapon creates a weapon of kind with a full magazine.
func NewWeapon(kind WeaponKind) *Weapon {
	p, ok := weaponTable[kind]
	if !ok {
		p = weaponTable[WeaponSubmachineGun]
		kind = WeaponSubmachineGun
	}
	return &Weapon{
		id:     uuid.NewString(),
		kind:   kind,
		params: p,
		ammo:   p.magazine,
		slot:   NoSlot,
		state:  ItemPickup,
	}
}

func (w *Weapon) ActorID() string          { return w.id }
func (w *Weapon) ItemName() string         { return w.params.name }
func (w *Weapon) ItemState() ItemState     { return w.state }
func (w *Weapon) SetItemState(s ItemState) { w.state = s }

func (w *Weapon) Kind() WeaponKind            { return w.kind }
func (w *Weapon) AmmoType() AmmoType          { return w.params.ammoType }
func (w *Weapon) Ammo() int                   { return w.ammo }
func (w *Weapon) MagazineCapacity() int       { return w.params.magazine }
func (w *Weapon) Automatic() bool             { return w.params.automatic }
func (w *Weapon) FireInterval() time.Duration { return w.params.fireInterval }
func (w *Weapon) ReloadCue() Cue              { return w.params.reloadCue }

// SlotIndex is the inventory slot the weapon occupies, or NoSlot.
func (w *Weapon) SlotIndex() int { return w.slot }

// Position is the last world position of the weapon.
func (w *Weapon) Position() Vec2 { return w.position }

// SetPosition moves the weapon in the world.
func (w *Weapon) SetPosition(p Vec2) { w.position = p }

// ClipIsFull reports whether the magazine holds its full capacity.
func (w *Weapon) ClipIsFull() bool { return w.ammo >= w.params.magazine }

// ClipMoving reports whether the magazine is currently in the avatar's hand.
func (w *Weapon) ClipMoving() bool { return w.clipMoved }

// ClipID names the magazine attachment of this weapon.
func (w *Weapon) ClipID() string { return w.id + "/clip" }

// SetAmmo overrides the loaded magazine, clamped to [0, capacity].
func (w *Weapon) SetAmmo(n int) {
	if n < 0 {
		n = 0
	}
	if n > w.params.magazine {
		n = w.params.magazine
	}
	w.ammo = n
}

func (w *Weapon) decrementAmmo() {
	if w.ammo > 0 {
		w.ammo--
	}
}

func (w *Weapon) reloadAmmo(n int) {
	w.SetAmmo(w.ammo + n)
}

// AmmoPickup is a box of reserve ammunition lying in the world.
type AmmoPickup struct {
	id       string
	ammoType AmmoType
	count    int
	state    ItemState
	position Vec2
}

// NewAmmoPickup creates a pickup of count rounds of t.
func NewAmmoPickup(t AmmoType, count int) *AmmoPickup {
	if count < 0 {
		count = 0
	}
	return &AmmoPickup{id: uuid.NewString(), ammoType: t, count: count, state: ItemPickup}
}

func (p *AmmoPickup) ActorID() string          { return p.id }
func (p *AmmoPickup) ItemName() string         { return p.ammoType.String() + " ammo" }
func (p *AmmoPickup) ItemState() ItemState     { return p.state }
func (p *AmmoPickup) SetItemState(s ItemState) { p.state = s }

func (p *AmmoPickup) AmmoType() AmmoType { return p.ammoType }
func (p *AmmoPickup) Count() int         { return p.count }
func (p *AmmoPickup) Position() Vec2     { return p.position }
func (p *AmmoPickup) SetPosition(v Vec2) { p.position = v }
