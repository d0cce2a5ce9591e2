package combat_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Garsondee/gunplay/internal/combat"
	"github.com/Garsondee/gunplay/internal/world"
)

var quietLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// newSim builds a quiet sim with the avatar at (640,360) facing east.
func newSim(t *testing.T, opts ...world.SimOption) *world.Sim {
	t.Helper()
	base := []world.SimOption{world.WithLogger(quietLogger), world.WithAvatarAt(640, 360, 0)}
	return world.NewSim(append(base, opts...)...)
}

// dumpLog prints the sim log when a test fails.
func dumpLog(t *testing.T, s *world.Sim) {
	t.Helper()
	if t.Failed() {
		t.Log(s.Log.Format())
	}
}

// recorder collects events of the given types in publish order.
type recorder struct {
	events []combat.Event
}

func record(bus *combat.Bus, types ...combat.EventType) *recorder {
	r := &recorder{}
	for _, typ := range types {
		bus.Subscribe(typ, func(ev combat.Event) { r.events = append(r.events, ev) })
	}
	return r
}

func (r *recorder) types() []combat.EventType {
	out := make([]combat.EventType, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Type)
	}
	return out
}

// runUntilReady steps until the avatar accepts requests again.
func runUntilReady(t *testing.T, s *world.Sim) {
	t.Helper()
	if s.Avatar.State() == combat.StateReady {
		return
	}
	if s.RunUntil(func(s *world.Sim) bool { return s.Avatar.State() == combat.StateReady }, 600) < 0 {
		t.Fatalf("avatar stuck in %s", s.Avatar.State())
	}
}

// landFlights runs long enough for every pickup in flight to arrive.
func landFlights(s *world.Sim) {
	s.RunFor(combat.DefaultSettings().PickupCurveTime + 100*time.Millisecond)
}

// mockEffects is a testify mock of the cosmetic collaborator.
type mockEffects struct {
	mock.Mock
}

func (m *mockEffects) PlaySound(name string, at combat.Vec2) { m.Called(name, at) }
func (m *mockEffects) MuzzleFlash(at, dir combat.Vec2)     { m.Called(at, dir) }
func (m *mockEffects) Beam(from, to combat.Vec2)           { m.Called(from, to) }
func (m *mockEffects) Impact(at combat.Vec2)               { m.Called(at) }
