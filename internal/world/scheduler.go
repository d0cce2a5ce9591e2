package world

import (
	"time"

	"github.com/Garsondee/gunplay/internal/combat"
)

// minPeriod keeps a zero-period repeating timer from spinning forever.
const minPeriod = time.Millisecond

type timer struct {
	handle    combat.TimerHandle
	due       time.Duration
	period    time.Duration
	repeating bool
	fn        func()
}

// Scheduler is a simulated clock that runs scheduled callbacks when advanced.
// Callbacks may schedule or cancel other timers.
type Scheduler struct {
	now    time.Duration
	next   combat.TimerHandle
	timers map[combat.TimerHandle]*timer
}

// NewScheduler creates a scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{timers: make(map[combat.TimerHandle]*timer)}
}

// Now returns the simulated time.
func (s *Scheduler) Now() time.Duration { return s.now }

// Len returns the number of pending timers.
func (s *Scheduler) Len() int { return len(s.timers) }

// Pending reports whether h is still scheduled.
func (s *Scheduler) Pending(h combat.TimerHandle) bool {
	_, ok := s.timers[h]
	return ok
}

// Schedule runs fn after delay, and every delay after that when repeating.
func (s *Scheduler) Schedule(delay time.Duration, repeating bool, fn func()) combat.TimerHandle {
	if delay < 0 {
		delay = 0
	}
	s.next++
	t := &timer{handle: s.next, due: s.now + delay, period: delay, repeating: repeating, fn: fn}
	if repeating && t.period < minPeriod {
		t.period = minPeriod
	}
	s.timers[t.handle] = t
	return t.handle
}

// Cancel removes h. Unknown handles are ignored.
func (s *Scheduler) Cancel(h combat.TimerHandle) {
	delete(s.timers, h)
}

// Advance moves the clock forward by d, firing due timers in due order.
// Ties fire in scheduling order.
func (s *Scheduler) Advance(d time.Duration) {
	end := s.now + d
	for {
		t := s.earliest(end)
		if t == nil {
			break
		}
		s.now = t.due
		if t.repeating {
			t.due += t.period
		} else {
			delete(s.timers, t.handle)
		}
		t.fn()
	}
	s.now = end
}

func (s *Scheduler) earliest(end time.Duration) *timer {
	var best *timer
	for _, t := range s.timers {
		if t.due > end {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.handle < best.handle) {
			best = t
		}
	}
	return best
}
