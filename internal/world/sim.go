package world

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/Garsondee/gunplay/internal/combat"
)

// FrameDT is the fixed step used by RunTicks, in seconds.
const FrameDT = 1.0 / 60.0

// Sim is a headless arena with one avatar. It mirrors the game loop without
// an Ebiten dependency and is deterministic for a given seed.
type Sim struct {
	Arena  *Arena
	Clock  *Scheduler
	Anim   *Animator
	Avatar *combat.Avatar
	Bus    *combat.Bus
	Log    *combat.SimLog
	FX     *RecordingEffects

	width, height float64
	settings      combat.Settings
	effects       combat.Effects
	logger        *slog.Logger
	cues          map[combat.Cue]CueSpec
	rng           *rand.Rand
	start         combat.Vec2
	facing        float64
	overlap       int
	ticks         int
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra  simOptionKind = iota // size, seed, settings, collaborators
	simOptWorld                       // obstacles and items, after the arena exists
	simOptAvatar                      // after the avatar exists
)

// SimOption is a builder function applied to a Sim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*Sim)
}

// WithArenaSize sets the playfield dimensions.
func WithArenaSize(w, h float64) SimOption {
	return SimOption{simOptInfra, func(s *Sim) {
		s.width, s.height = w, h
	}}
}

// WithSeed sets the RNG seed for scattered items.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(s *Sim) {
		s.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- simulation
	}}
}

// WithSettings edits the avatar settings before construction.
func WithSettings(edit func(*combat.Settings)) SimOption {
	return SimOption{simOptInfra, func(s *Sim) {
		edit(&s.settings)
	}}
}

// WithEffects sends cosmetic requests to fx as well as the recorder.
func WithEffects(fx combat.Effects) SimOption {
	return SimOption{simOptInfra, func(s *Sim) {
		s.effects = fx
	}}
}

// WithLogger sets the avatar logger.
func WithLogger(l *slog.Logger) SimOption {
	return SimOption{simOptInfra, func(s *Sim) {
		s.logger = l
	}}
}

// WithCues replaces the cue catalog.
func WithCues(c map[combat.Cue]CueSpec) SimOption {
	return SimOption{simOptInfra, func(s *Sim) {
		s.cues = c
	}}
}

// WithAvatarAt places the avatar at (x,y) facing angle radians.
func WithAvatarAt(x, y, facing float64) SimOption {
	return SimOption{simOptInfra, func(s *Sim) {
		s.start = combat.Vec2{X: x, Y: y}
		s.facing = facing
	}}
}

// WithWall adds a wall box.
func WithWall(x, y, w, h float64) SimOption {
	return SimOption{simOptWorld, func(s *Sim) {
		s.Arena.AddObstacle(ObstacleWall, Rect{X: x, Y: y, W: w, H: h})
	}}
}

// WithTarget adds a shootable target box.
func WithTarget(x, y, w, h float64) SimOption {
	return SimOption{simOptWorld, func(s *Sim) {
		s.Arena.AddObstacle(ObstacleTarget, Rect{X: x, Y: y, W: w, H: h})
	}}
}

// WithWeaponPickup drops a weapon of kind at (x,y).
func WithWeaponPickup(kind combat.WeaponKind, x, y float64) SimOption {
	return SimOption{simOptWorld, func(s *Sim) {
		s.Arena.Spawn(combat.NewWeapon(kind), combat.Vec2{X: x, Y: y})
	}}
}

// WithAmmoPickup drops a box of count rounds of t at (x,y).
func WithAmmoPickup(t combat.AmmoType, count int, x, y float64) SimOption {
	return SimOption{simOptWorld, func(s *Sim) {
		s.Arena.Spawn(combat.NewAmmoPickup(t, count), combat.Vec2{X: x, Y: y})
	}}
}

// WithScatteredAmmo drops n random ammo boxes across the arena.
func WithScatteredAmmo(n int) SimOption {
	return SimOption{simOptWorld, func(s *Sim) {
		types := combat.AmmoTypes()
		for i := 0; i < n; i++ {
			t := types[s.rng.Intn(len(types))]
			p := combat.Vec2{X: s.rng.Float64() * s.width, Y: s.rng.Float64() * s.height}
			s.Arena.Spawn(combat.NewAmmoPickup(t, 10+s.rng.Intn(21)), p)
		}
	}}
}

// WithReserve overwrites the avatar's reserve for t.
func WithReserve(t combat.AmmoType, n int) SimOption {
	return SimOption{simOptAvatar, func(s *Sim) {
		have := s.Avatar.Ammo(t)
		s.Avatar.TakeAmmo(t, have)
		s.Avatar.AddAmmo(t, n)
	}}
}

// NewSim constructs a Sim from opts in ordered passes: infrastructure,
// world contents, avatar, avatar tweaks.
func NewSim(opts ...SimOption) *Sim {
	s := &Sim{
		width:    1280,
		height:   720,
		settings: combat.DefaultSettings(),
		logger:   slog.Default(),
		rng:      rand.New(rand.NewSource(1)), // #nosec G404 -- simulation default
		start:    combat.Vec2{X: 640, Y: 360},
		FX:       &RecordingEffects{},
	}
	s.apply(opts, simOptInfra)

	s.Arena = NewArena(s.width, s.height)
	s.Clock = NewScheduler()
	s.Anim = NewAnimator(s.cues)
	s.Bus = combat.NewBus()
	s.Log = combat.NewSimLog(s.Bus)
	s.Bus.Subscribe(combat.EventHit, func(ev combat.Event) {
		if p, ok := ev.Payload.(combat.HitPayload); ok {
			s.Arena.RecordHit(p.Actor)
		}
	})
	s.apply(opts, simOptWorld)

	var fx combat.Effects = s.FX
	if s.effects != nil {
		fx = Tee{s.FX, s.effects}
	}
	s.Avatar = combat.NewAvatar(combat.Deps{
		World:    s.Arena,
		Anim:     s.Anim,
		Timers:   s.Clock,
		Attacher: s.Arena,
		Effects:  fx,
		Bus:      s.Bus,
		Logger:   s.logger,
	}, s.settings)
	s.Avatar.SetPosition(s.start)
	s.Avatar.SetFacing(s.facing)
	s.apply(opts, simOptAvatar)
	return s
}

func (s *Sim) apply(opts []SimOption, kind simOptionKind) {
	for _, o := range opts {
		if o.kind == kind {
			o.fn(s)
		}
	}
}

// Ticks returns the number of steps run.
func (s *Sim) Ticks() int { return s.ticks }

// Step advances the world by dt seconds: overlaps, the avatar's frame,
// animation, timers, then falling items.
func (s *Sim) Step(dt float64) {
	d := time.Duration(dt * float64(time.Second))
	s.ticks++
	s.updateOverlap()
	s.Avatar.Tick(dt)
	s.Anim.Advance(d)
	s.Clock.Advance(d)
	s.Arena.Step(d)
}

func (s *Sim) updateOverlap() {
	n := s.Arena.OverlapCount(s.Avatar.Position())
	if n != s.overlap {
		s.Avatar.AddOverlappedItemCount(n - s.overlap)
		s.overlap = n
	}
}

// RunTicks advances n fixed frames.
func (s *Sim) RunTicks(n int) {
	for i := 0; i < n; i++ {
		s.Step(FrameDT)
	}
}

// RunFor advances at least d of simulated time in fixed frames.
func (s *Sim) RunFor(d time.Duration) {
	frame := time.Second / 60
	for elapsed := time.Duration(0); elapsed < d; elapsed += frame {
		s.Step(FrameDT)
	}
}

// RunUntil steps until pred holds or maxTicks pass. Returns the tick the
// predicate was satisfied at, or -1.
func (s *Sim) RunUntil(pred func(*Sim) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		s.Step(FrameDT)
		if pred(s) {
			return s.ticks
		}
	}
	return -1
}

// FaceToward turns the avatar toward (x,y).
func (s *Sim) FaceToward(x, y float64) { s.Avatar.AimAt(combat.Vec2{X: x, Y: y}) }

// MoveTo teleports the avatar to (x,y).
func (s *Sim) MoveTo(x, y float64) { s.Avatar.SetPosition(combat.Vec2{X: x, Y: y}) }
