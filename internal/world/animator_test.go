package world

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/gunplay/internal/combat"
)

type cueCall struct {
	h  combat.CueHandle
	ev combat.CueEvent
}

type cueRecorder struct {
	calls []cueCall
}

func (r *cueRecorder) OnCueEvent(h combat.CueHandle, ev combat.CueEvent) {
	r.calls = append(r.calls, cueCall{h, ev})
}

func TestAnimator_NoDeliveryFromPlayCue(t *testing.T) {
	an := NewAnimator(nil)
	rec := &cueRecorder{}
	an.SetListener(rec)

	h := an.PlayCue(combat.CueHipFire)
	assert.NotEqual(t, combat.NoCue, h)
	assert.Empty(t, rec.calls)
	assert.Equal(t, h, an.Current())
}

func TestAnimator_MarkersThenComplete(t *testing.T) {
	an := NewAnimator(nil)
	rec := &cueRecorder{}
	an.SetListener(rec)
	h := an.PlayCue(combat.CueReloadPistol)

	an.Advance(300 * time.Millisecond)
	require.Len(t, rec.calls, 1)
	assert.Equal(t, cueCall{h, combat.CueGrabClip}, rec.calls[0])

	an.Advance(2 * time.Second)
	require.Len(t, rec.calls, 3)
	assert.Equal(t, combat.CueReleaseClip, rec.calls[1].ev)
	assert.Equal(t, combat.CueComplete, rec.calls[2].ev)
	assert.Equal(t, combat.NoCue, an.Current())
}

func TestAnimator_NewCueInterrupts(t *testing.T) {
	an := NewAnimator(nil)
	rec := &cueRecorder{}
	an.SetListener(rec)
	an.PlayCue(combat.CueEquip)
	h2 := an.PlayCue(combat.CueHipFire)

	an.Advance(time.Second)
	require.Len(t, rec.calls, 1)
	assert.Equal(t, cueCall{h2, combat.CueComplete}, rec.calls[0])
	assert.Equal(t, []combat.Cue{combat.CueEquip, combat.CueHipFire}, an.Played())
}

func TestAnimator_UnknownCueCompletesNextAdvance(t *testing.T) {
	an := NewAnimator(map[combat.Cue]CueSpec{})
	rec := &cueRecorder{}
	an.SetListener(rec)
	an.PlayCue("mystery")
	an.Advance(0)
	require.Len(t, rec.calls, 1)
	assert.Equal(t, combat.CueComplete, rec.calls[0].ev)
}

func TestAnimator_StopDropsCue(t *testing.T) {
	an := NewAnimator(nil)
	rec := &cueRecorder{}
	an.SetListener(rec)
	an.PlayCue(combat.CueEquip)
	an.Stop()
	an.Advance(time.Second)
	assert.Empty(t, rec.calls)
	assert.Equal(t, combat.Cue(""), an.CurrentCue())
}

func TestAnimator_LeavesCallerCatalogAlone(t *testing.T) {
	markers := []Marker{
		{At: 300 * time.Millisecond, Event: combat.CueReleaseClip},
		{At: 100 * time.Millisecond, Event: combat.CueGrabClip},
	}
	catalog := map[combat.Cue]CueSpec{combat.CueReloadSMG: {Duration: time.Second, Markers: markers}}
	an := NewAnimator(catalog)
	rec := &cueRecorder{}
	an.SetListener(rec)

	assert.Equal(t, combat.CueReleaseClip, markers[0].Event)
	assert.Equal(t, combat.CueReleaseClip, catalog[combat.CueReloadSMG].Markers[0].Event)

	an.PlayCue(combat.CueReloadSMG)
	an.Advance(200 * time.Millisecond)
	require.Len(t, rec.calls, 1)
	assert.Equal(t, combat.CueGrabClip, rec.calls[0].ev)
}
