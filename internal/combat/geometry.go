package combat

import "math"

// Vec2 is a point or direction on the arena plane.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2             { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2             { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(k float64) Vec2        { return Vec2{v.X * k, v.Y * k} }
func (v Vec2) Len() float64                { return math.Hypot(v.X, v.Y) }
func (v Vec2) Dist(o Vec2) float64         { return v.Sub(o).Len() }
func (v Vec2) Lerp(o Vec2, t float64) Vec2 { return v.Add(o.Sub(v).Scale(t)) }

// Normalize returns the unit vector, or the zero vector for a zero-length input.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l < 1e-12 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Rotate returns v rotated counter-clockwise by angle radians.
func (v Vec2) Rotate(angle float64) Vec2 {
	s, c := math.Sincos(angle)
	return Vec2{v.X*c - v.Y*s, v.X*s + v.Y*c}
}

// FromAngle returns the unit vector pointing at angle radians.
func FromAngle(angle float64) Vec2 {
	s, c := math.Sincos(angle)
	return Vec2{c, s}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// interpTo moves current toward target by a fraction dt*speed of the remaining
// distance. speed <= 0 snaps to target.
func interpTo(current, target, dt, speed float64) float64 {
	if speed <= 0 {
		return target
	}
	dist := target - current
	if dist*dist < 1e-8 {
		return target
	}
	return current + dist*clamp01(dt*speed)
}

// mapRangeClamped maps v from [inMin,inMax] onto [outMin,outMax], clamping v first.
func mapRangeClamped(v, inMin, inMax, outMin, outMax float64) float64 {
	if inMax-inMin == 0 {
		return outMin
	}
	t := clamp01((v - inMin) / (inMax - inMin))
	return outMin + (outMax-outMin)*t
}
