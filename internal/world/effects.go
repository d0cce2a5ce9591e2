package world

import "github.com/Garsondee/gunplay/internal/combat"

// SoundCall is one PlaySound request.
type SoundCall struct {
	Name string
	At   combat.Vec2
}

// BeamCall is one beam spawn.
type BeamCall struct {
	From, To combat.Vec2
}

// RecordingEffects keeps every cosmetic request for inspection.
type RecordingEffects struct {
	Sounds  []SoundCall
	Flashes []combat.Vec2
	Beams   []BeamCall
	Impacts []combat.Vec2
}

func (r *RecordingEffects) PlaySound(name string, at combat.Vec2) {
	r.Sounds = append(r.Sounds, SoundCall{Name: name, At: at})
}

func (r *RecordingEffects) MuzzleFlash(at, _ combat.Vec2) { r.Flashes = append(r.Flashes, at) }
func (r *RecordingEffects) Beam(from, to combat.Vec2)     { r.Beams = append(r.Beams, BeamCall{from, to}) }
func (r *RecordingEffects) Impact(at combat.Vec2)         { r.Impacts = append(r.Impacts, at) }

// SoundCount returns how many times name was played.
func (r *RecordingEffects) SoundCount(name string) int {
	n := 0
	for _, s := range r.Sounds {
		if s.Name == name {
			n++
		}
	}
	return n
}

// Tee forwards every request to each of its effects.
type Tee []combat.Effects

func (t Tee) PlaySound(name string, at combat.Vec2) {
	for _, e := range t {
		e.PlaySound(name, at)
	}
}

func (t Tee) MuzzleFlash(at, dir combat.Vec2) {
	for _, e := range t {
		e.MuzzleFlash(at, dir)
	}
}

func (t Tee) Beam(from, to combat.Vec2) {
	for _, e := range t {
		e.Beam(from, to)
	}
}

func (t Tee) Impact(at combat.Vec2) {
	for _, e := range t {
		e.Impact(at)
	}
}
