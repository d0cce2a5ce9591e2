package world

import (
	"math"

	"github.com/Garsondee/gunplay/internal/combat"
)

// Rect is an axis-aligned box in world pixels.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) MinX() float64 { return r.X }
func (r Rect) MinY() float64 { return r.Y }
func (r Rect) MaxX() float64 { return r.X + r.W }
func (r Rect) MaxY() float64 { return r.Y + r.H }

// Center returns the box midpoint.
func (r Rect) Center() combat.Vec2 {
	return combat.Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p combat.Vec2) bool {
	return p.X >= r.MinX() && p.X <= r.MaxX() && p.Y >= r.MinY() && p.Y <= r.MaxY()
}

// boxAround returns a square of half-extent h centred on p.
func boxAround(p combat.Vec2, h float64) Rect {
	return Rect{X: p.X - h, Y: p.Y - h, W: 2 * h, H: 2 * h}
}

// segmentHitT returns the first segment parameter t in [0,1] where the line
// from -> to enters r. The bool is false when no hit exists.
func segmentHitT(from, to combat.Vec2, r Rect) (float64, bool) {
	return rayAABBHitT(from.X, from.Y, to.X, to.Y, r.MinX(), r.MinY(), r.MaxX(), r.MaxY())
}

// rayAABBHitT is the slab test for a segment (ox,oy)->(ex,ey) against the box
// (minX,minY)-(maxX,maxY).
func rayAABBHitT(ox, oy, ex, ey, minX, minY, maxX, maxY float64) (float64, bool) {
	tMin, tMax := 0.0, 1.0
	var ok bool
	if tMin, tMax, ok = clipSlab(ox, ex-ox, minX, maxX, tMin, tMax); !ok {
		return 0, false
	}
	if tMin, tMax, ok = clipSlab(oy, ey-oy, minY, maxY, tMin, tMax); !ok {
		return 0, false
	}
	if tMax < 0 || tMin > 1 {
		return 0, false
	}
	return math.Max(tMin, 0), true
}

// clipSlab narrows [tMin,tMax] to the part of the segment inside one slab.
func clipSlab(o, d, lo, hi, tMin, tMax float64) (float64, float64, bool) {
	if math.Abs(d) < 1e-12 {
		return tMin, tMax, o >= lo && o <= hi
	}
	t1 := (lo - o) / d
	t2 := (hi - o) / d
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	tMin = math.Max(tMin, t1)
	tMax = math.Min(tMax, t2)
	return tMin, tMax, tMin <= tMax
}
