package combat

import (
	"fmt"
	"strings"
)

// SimLogEntry is one recorded avatar event.
type SimLogEntry struct {
	Tick     int
	Category string  // equip, inventory, combat, item
	Key      string  // event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // slot, rounds or transfer count, for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=042] combat    reload_finished  9mm +18
func (e SimLogEntry) String() string {
	return fmt.Sprintf("[T=%03d] %-9s %-16s %s", e.Tick, e.Category, e.Key, e.Value)
}

// SimLog records every event published on a bus. It is unbounded and meant
// for headless runs and tests.
type SimLog struct {
	entries []SimLogEntry
}

// NewSimLog subscribes a new log to bus.
func NewSimLog(bus *Bus) *SimLog {
	sl := &SimLog{}
	bus.SubscribeAll(sl.Record)
	return sl
}

// Record converts ev into an entry.
func (sl *SimLog) Record(ev Event) {
	sl.entries = append(sl.entries, EntryFor(ev))
}

// EntryFor splits the event type into category and key and renders the
// payload.
func EntryFor(ev Event) SimLogEntry {
	category, key, ok := strings.Cut(string(ev.Type), ".")
	if !ok {
		category, key = "misc", string(ev.Type)
	}
	value, num := describe(ev.Payload)
	return SimLogEntry{Tick: ev.Tick, Category: category, Key: key, Value: value, NumVal: num}
}

func describe(payload any) (string, float64) {
	switch p := payload.(type) {
	case EquipSlotPayload:
		return fmt.Sprintf("%d → %d", p.Current, p.New), float64(p.New)
	case HighlightPayload:
		return fmt.Sprintf("slot %d", p.Slot), float64(p.Slot)
	case StateChangedPayload:
		return p.From.String() + " → " + p.To.String(), 0
	case ShotPayload:
		return fmt.Sprintf("%s %s left=%d", p.Weapon, p.AmmoType, p.Remaining), float64(p.Remaining)
	case HitPayload:
		id := "--"
		if p.Actor != nil {
			id = p.Actor.ActorID()
		}
		return fmt.Sprintf("%s at (%.0f,%.0f)", id, p.Point.X, p.Point.Y), 0
	case ReloadPayload:
		return fmt.Sprintf("%s +%d", p.AmmoType, p.Transferred), float64(p.Transferred)
	case PickupPayload:
		name := "--"
		if p.Item != nil {
			name = p.Item.ItemName()
		}
		return fmt.Sprintf("%s slot %d", name, p.Slot), float64(p.Slot)
	case DropPayload:
		name := "--"
		if p.Weapon != nil {
			name = p.Weapon.ItemName()
		}
		return fmt.Sprintf("%s from slot %d", name, p.Slot), float64(p.Slot)
	case RequestIgnoredPayload:
		return fmt.Sprintf("%s while %s", p.Request, p.State), 0
	case nil:
		return "", 0
	default:
		return fmt.Sprintf("%v", p), 0
	}
}

// Entries returns all recorded entries.
func (sl *SimLog) Entries() []SimLogEntry {
	return sl.entries
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (sl *SimLog) Filter(category, key string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// CountCategory returns how many entries match category and key.
func (sl *SimLog) CountCategory(category, key string) int {
	return len(sl.Filter(category, key))
}

// LastOf returns the most recent entry matching category+key.
func (sl *SimLog) LastOf(category, key string) (SimLogEntry, bool) {
	entries := sl.Filter(category, key)
	if len(entries) == 0 {
		return SimLogEntry{}, false
	}
	return entries[len(entries)-1], true
}

// HasEntry reports whether an entry matches category, key and value substring.
func (sl *SimLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range sl.Filter(category, key) {
		if valueSubstr == "" || strings.Contains(e.Value, valueSubstr) {
			return true
		}
	}
	return false
}

// Reset drops all entries.
func (sl *SimLog) Reset() { sl.entries = sl.entries[:0] }

// Format returns the full log as one string for t.Log output.
func (sl *SimLog) Format() string {
	var sb strings.Builder
	for _, e := range sl.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
