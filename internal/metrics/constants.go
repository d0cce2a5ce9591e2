package metrics

// Metric names
const (
	MetricNameEventsPublished   = "gunplay_events_published_total"
	MetricNameShotsFired        = "gunplay_shots_fired_total"
	MetricNameHits              = "gunplay_hits_total"
	MetricNameReloads           = "gunplay_reloads_total"
	MetricNameRoundsReloaded    = "gunplay_rounds_reloaded_total"
	MetricNameItemsPickedUp     = "gunplay_items_picked_up_total"
	MetricNameWeaponsDropped    = "gunplay_weapons_dropped_total"
	MetricNameRequestsIgnored   = "gunplay_requests_ignored_total"
	MetricNameStateTransitions  = "gunplay_state_transitions_total"
	MetricNameEquipSlotChanges  = "gunplay_equip_slot_changes_total"
	MetricNameMagazineRemaining = "gunplay_magazine_remaining_rounds"
)

// Metric help text
const (
	HelpTextEventsPublished   = "Total number of avatar events published"
	HelpTextShotsFired        = "Total number of rounds fired"
	HelpTextHits              = "Total number of beams that struck something"
	HelpTextReloads           = "Total number of completed reloads"
	HelpTextRoundsReloaded    = "Total rounds moved from reserve into magazines"
	HelpTextItemsPickedUp     = "Total number of items that finished their pickup flight"
	HelpTextWeaponsDropped    = "Total number of weapons placed back in the world"
	HelpTextRequestsIgnored   = "Total number of requests refused by the combat gate"
	HelpTextStateTransitions  = "Total number of combat state transitions"
	HelpTextEquipSlotChanges  = "Total number of hotbar slot changes"
	HelpTextMagazineRemaining = "Rounds left in the equipped magazine after the last shot"
)

// Label names
const (
	LabelType     = "type"
	LabelWeapon   = "weapon"
	LabelAmmoType = "ammo_type"
	LabelKind     = "kind"
	LabelRequest  = "request"
	LabelState    = "state"
	LabelFrom     = "from"
	LabelTo       = "to"
)

// Item kind label values
const (
	KindWeapon = "weapon"
	KindAmmo   = "ammo"
)
