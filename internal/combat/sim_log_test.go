package combat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/gunplay/internal/combat"
)

func TestBus_DeliversInOrderWithTick(t *testing.T) {
	bus := combat.NewBus()
	var got []string
	bus.Subscribe(combat.EventShotFired, func(combat.Event) { got = append(got, "typed") })
	bus.SubscribeAll(func(combat.Event) { got = append(got, "all") })
	bus.Subscribe(combat.EventHit, func(combat.Event) { got = append(got, "other") })

	bus.Publish(combat.Event{Type: combat.EventShotFired})
	assert.Equal(t, []string{"typed", "all"}, got)
}

func TestSimLog_RecordsAvatarEvents(t *testing.T) {
	s := newSim(t)
	a := s.Avatar
	s.RunTicks(3)
	a.FireWeapon()

	entry, ok := s.Log.LastOf("combat", "shot_fired")
	require.True(t, ok)
	assert.Equal(t, 3, entry.Tick)
	assert.Contains(t, entry.String(), "shot_fired")
	assert.True(t, s.Log.HasEntry("equip", "slot_changed", "-1 → 0"))
	assert.Contains(t, s.Log.Format(), "ready → firing")
	assert.Empty(t, s.Log.Filter("item", ""))
}

func TestSimLog_FilterAndReset(t *testing.T) {
	bus := combat.NewBus()
	log := combat.NewSimLog(bus)
	bus.Publish(combat.Event{Type: combat.EventHighlightStart, Payload: combat.HighlightPayload{Slot: 2}})
	bus.Publish(combat.Event{Type: combat.EventHighlightStop, Payload: combat.HighlightPayload{Slot: 2}})
	bus.Publish(combat.Event{Type: "custom"})

	assert.Equal(t, 2, log.CountCategory("inventory", ""))
	assert.Equal(t, 1, log.CountCategory("", "highlight_stop"))
	assert.Equal(t, 1, log.CountCategory("misc", "custom"))
	e, _ := log.LastOf("inventory", "highlight_start")
	assert.Equal(t, 2.0, e.NumVal)

	log.Reset()
	assert.Empty(t, log.Entries())
}
