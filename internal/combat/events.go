package combat

// EventType names a notification published by the avatar.
type EventType string

const (
	EventEquipSlotChanged   EventType = "equip.slot_changed"
	EventHighlightStart     EventType = "inventory.highlight_start"
	EventHighlightStop      EventType = "inventory.highlight_stop"
	EventCombatStateChanged EventType = "combat.state_changed"
	EventShotFired          EventType = "combat.shot_fired"
	EventHit                EventType = "combat.hit"
	EventReloadFinished     EventType = "combat.reload_finished"
	EventItemPickedUp       EventType = "item.picked_up"
	EventWeaponDropped      EventType = "item.weapon_dropped"
	EventRequestIgnored     EventType = "combat.request_ignored"
)

// Event is one notification. Payload is one of the *Payload structs below.
type Event struct {
	Type    EventType
	Tick    int
	Payload any
}

// EquipSlotPayload carries the hotbar transition. Current is NoSlot when the
// avatar was unarmed.
type EquipSlotPayload struct {
	Current int
	New     int
}

// HighlightPayload names the slot whose icon animation starts or stops.
type HighlightPayload struct {
	Slot int
}

type StateChangedPayload struct {
	From CombatState
	To   CombatState
}

type ShotPayload struct {
	Weapon    WeaponKind
	AmmoType  AmmoType
	Remaining int // rounds left in the magazine
	Muzzle    Vec2
	End       Vec2
}

// HitPayload is the hit query emitted for damage systems outside this core.
type HitPayload struct {
	Actor Actor
	Point Vec2
}

type ReloadPayload struct {
	AmmoType    AmmoType
	Transferred int
}

type PickupPayload struct {
	Item Item
	Slot int // NoSlot for ammo
}

type DropPayload struct {
	Weapon *Weapon
	Slot   int
	At     Vec2
}

type RequestIgnoredPayload struct {
	Request Request
	State   CombatState
}

// Handler receives published events.
type Handler func(Event)

// Bus fans events out to subscribers synchronously, in subscription order.
// It is used from the simulation thread only.
type Bus struct {
	handlers map[EventType][]Handler
	all      []Handler
	tick     *int
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[EventType][]Handler)}
}

// Subscribe registers h for one event type.
func (b *Bus) Subscribe(t EventType, h Handler) {
	b.handlers[t] = append(b.handlers[t], h)
}

// SubscribeAll registers h for every event type.
func (b *Bus) SubscribeAll(h Handler) {
	b.all = append(b.all, h)
}

// Publish stamps ev with the current tick and delivers it.
func (b *Bus) Publish(ev Event) {
	if b.tick != nil {
		ev.Tick = *b.tick
	}
	for _, h := range b.handlers[ev.Type] {
		h(ev)
	}
	for _, h := range b.all {
		h(ev)
	}
}
