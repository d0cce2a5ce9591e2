package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/gunplay/internal/combat"
)

const (
	tracerLifetime = 10 // frames a beam persists
	flashLifetime  = 4  // frames a muzzle flash persists
	impactLifetime = 8
	soundLifetime  = 40 // frames a sound caption floats
)

// Tracer is a short-lived visual of one beam.
type Tracer struct {
	from, to combat.Vec2
	age      int
}

// TracerDone returns true when the tracer should be removed.
func (t *Tracer) TracerDone() bool {
	return t.age >= tracerLifetime
}

// MuzzleFlash is a short-lived burst at the muzzle.
type MuzzleFlash struct {
	at    combat.Vec2
	angle float64
	age   int
}

type impact struct {
	at  combat.Vec2
	age int
}

type soundCaption struct {
	name string
	at   combat.Vec2
	age  int
}

// Effects is the ebiten rendering collaborator. The avatar pushes requests
// during the sim step; Update ages them once per frame.
type Effects struct {
	tracers []*Tracer
	flashes []*MuzzleFlash
	impacts []*impact
	sounds  []*soundCaption
}

// NewEffects creates an empty effects layer.
func NewEffects() *Effects { return &Effects{} }

func (fx *Effects) PlaySound(name string, at combat.Vec2) {
	fx.sounds = append(fx.sounds, &soundCaption{name: name, at: at})
}

func (fx *Effects) MuzzleFlash(at, dir combat.Vec2) {
	fx.flashes = append(fx.flashes, &MuzzleFlash{at: at, angle: math.Atan2(dir.Y, dir.X)})
}

func (fx *Effects) Beam(from, to combat.Vec2) {
	fx.tracers = append(fx.tracers, &Tracer{from: from, to: to})
}

func (fx *Effects) Impact(at combat.Vec2) {
	fx.impacts = append(fx.impacts, &impact{at: at})
}

// Active returns the live counts of tracers, flashes, impacts and captions.
func (fx *Effects) Active() (tracers, flashes, impacts, sounds int) {
	return len(fx.tracers), len(fx.flashes), len(fx.impacts), len(fx.sounds)
}

// Update ages and prunes every effect.
func (fx *Effects) Update() {
	kept := fx.tracers[:0]
	for _, t := range fx.tracers {
		t.age++
		if !t.TracerDone() {
			kept = append(kept, t)
		}
	}
	fx.tracers = kept

	keptF := fx.flashes[:0]
	for _, f := range fx.flashes {
		f.age++
		if f.age < flashLifetime {
			keptF = append(keptF, f)
		}
	}
	fx.flashes = keptF

	keptI := fx.impacts[:0]
	for _, i := range fx.impacts {
		i.age++
		if i.age < impactLifetime {
			keptI = append(keptI, i)
		}
	}
	fx.impacts = keptI

	keptS := fx.sounds[:0]
	for _, s := range fx.sounds {
		s.age++
		if s.age < soundLifetime {
			keptS = append(keptS, s)
		}
	}
	fx.sounds = keptS
}

// DrawTracer renders a beam as a thin line with a hot tip at the head and a
// dim tail that fades out.
func (t *Tracer) DrawTracer(screen *ebiten.Image, offX, offY int) {
	progress := float64(t.age) / float64(tracerLifetime)
	if progress > 1.0 {
		return
	}
	ox, oy := float32(offX), float32(offY)

	headT := math.Min(1.0, progress*2.0)
	tailT := math.Max(0.0, headT-0.15)
	globalFade := float32(1.0 - progress*progress)

	const nSeg = 4
	for i := 0; i < nSeg; i++ {
		s0 := t.from.Lerp(t.to, tailT+(headT-tailT)*float64(i)/nSeg)
		s1 := t.from.Lerp(t.to, tailT+(headT-tailT)*float64(i+1)/nSeg)
		intensity := float32(i+1) / nSeg
		a := uint8(210 * intensity * globalFade)
		vector.StrokeLine(screen, ox+float32(s0.X), oy+float32(s0.Y), ox+float32(s1.X), oy+float32(s1.Y), 1.0,
			color.RGBA{R: 255, G: 210, B: 100, A: a}, false)
	}

	head := t.from.Lerp(t.to, headT)
	vector.FillCircle(screen, ox+float32(head.X), oy+float32(head.Y), 1.2,
		color.RGBA{R: 255, G: 255, B: 230, A: uint8(220 * globalFade)}, false)
}

// Draw renders every live effect, offset by (offX, offY).
func (fx *Effects) Draw(screen *ebiten.Image, offX, offY int) {
	for _, t := range fx.tracers {
		t.DrawTracer(screen, offX, offY)
	}

	ox, oy := float32(offX), float32(offY)
	for _, f := range fx.flashes {
		progress := float64(f.age) / float64(flashLifetime)
		alpha := uint8(255 * (1.0 - progress))
		sx, sy := ox+float32(f.at.X), oy+float32(f.at.Y)

		glowR := float32(8.0) * float32(1.0-progress*0.6)
		vector.FillCircle(screen, sx, sy, glowR, color.RGBA{R: 255, G: 180, B: 40, A: uint8(float64(alpha) * 0.3)}, false)
		coreR := float32(3.5) * float32(1.0-progress*0.5)
		vector.FillCircle(screen, sx, sy, coreR, color.RGBA{R: 255, G: 255, B: 220, A: alpha}, false)

		lineLen := 12.0 * (1.0 - progress*0.7)
		ex := float32(f.at.X + math.Cos(f.angle)*lineLen)
		ey := float32(f.at.Y + math.Sin(f.angle)*lineLen)
		vector.StrokeLine(screen, sx, sy, ox+ex, oy+ey, 1.5,
			color.RGBA{R: 255, G: 240, B: 160, A: uint8(float64(alpha) * 0.7)}, false)
	}

	for _, i := range fx.impacts {
		progress := float32(i.age) / impactLifetime
		r := 2.5 + 4*progress
		vector.StrokeCircle(screen, ox+float32(i.at.X), oy+float32(i.at.Y), r, 1.0,
			color.RGBA{R: 255, G: 240, B: 180, A: uint8(200 * (1 - progress))}, false)
	}
}

// DrawCaptions renders sound names floating up from where they played.
func (fx *Effects) DrawCaptions(screen *ebiten.Image, offX, offY int) {
	for _, s := range fx.sounds {
		rise := float64(s.age) * 0.5
		progress := float64(s.age) / soundLifetime
		drawText(screen, "*"+s.name+"*", float64(offX)+s.at.X+8, float64(offY)+s.at.Y-16-rise,
			color.RGBA{R: 200, G: 200, B: 160, A: uint8(200 * (1 - progress))})
	}
}
