package world

import (
	"fmt"
	"time"

	"github.com/Garsondee/gunplay/internal/combat"
)

// --- Arena constants ---

const (
	itemHalfExtent   = 10.0 // px, trace box around a ground item
	pickupAreaRadius = 90.0 // px, overlap sphere that enables item tracing
	settleTime       = 700 * time.Millisecond
)

// ObstacleKind distinguishes walls from shootable targets.
type ObstacleKind int

const (
	ObstacleWall ObstacleKind = iota
	ObstacleTarget
)

func (k ObstacleKind) String() string {
	if k == ObstacleTarget {
		return "target"
	}
	return "wall"
}

// Obstacle is a box that stops beams.
type Obstacle struct {
	ID   string
	Kind ObstacleKind
	Box  Rect
	Hits int
}

func (o *Obstacle) ActorID() string { return o.ID }

// Arena is the 2D world: obstacles, ground items and attachments.
type Arena struct {
	Width, Height float64

	obstacles []*Obstacle
	items     []combat.Item
	falling   map[combat.Item]time.Duration
	sockets   map[string]combat.Socket
}

// NewArena creates an empty w×h arena.
func NewArena(w, h float64) *Arena {
	return &Arena{
		Width:   w,
		Height:  h,
		falling: make(map[combat.Item]time.Duration),
		sockets: make(map[string]combat.Socket),
	}
}

// AddObstacle adds a box and returns it.
func (ar *Arena) AddObstacle(kind ObstacleKind, box Rect) *Obstacle {
	o := &Obstacle{ID: fmt.Sprintf("%s-%d", kind, len(ar.obstacles)), Kind: kind, Box: box}
	ar.obstacles = append(ar.obstacles, o)
	return o
}

// Obstacles returns all boxes.
func (ar *Arena) Obstacles() []*Obstacle { return ar.obstacles }

// Items returns the items lying in the world.
func (ar *Arena) Items() []combat.Item { return ar.items }

// Spawn places item at p as a pickup.
func (ar *Arena) Spawn(item combat.Item, p combat.Vec2) {
	item.SetItemState(combat.ItemPickup)
	ar.PlaceInWorld(item, p)
}

// TraceLine returns the first obstacle the segment enters.
func (ar *Arena) TraceLine(from, to combat.Vec2) (combat.Hit, bool) {
	o, t, ok := ar.firstObstacle(from, to)
	if !ok {
		return combat.Hit{Point: to}, false
	}
	return combat.Hit{Point: from.Lerp(to, t), Actor: o}, true
}

func (ar *Arena) firstObstacle(from, to combat.Vec2) (*Obstacle, float64, bool) {
	var best *Obstacle
	bestT := 2.0
	for _, o := range ar.obstacles {
		if t, ok := segmentHitT(from, to, o.Box); ok && t < bestT {
			best, bestT = o, t
		}
	}
	return best, bestT, best != nil
}

// TraceItems returns the first ground item the segment enters before any
// obstacle.
func (ar *Arena) TraceItems(from, to combat.Vec2) (combat.Hit, bool) {
	limit := 2.0
	if _, t, ok := ar.firstObstacle(from, to); ok {
		limit = t
	}
	var best combat.Item
	bestT := limit
	for _, it := range ar.items {
		p, ok := it.(interface{ Position() combat.Vec2 })
		if !ok {
			continue
		}
		if t, hit := segmentHitT(from, to, boxAround(p.Position(), itemHalfExtent)); hit && t < bestT {
			best, bestT = it, t
		}
	}
	if best == nil {
		return combat.Hit{Point: to}, false
	}
	return combat.Hit{Point: from.Lerp(to, bestT), Actor: best}, true
}

// OverlapCount returns how many ground items have p inside their pickup area.
func (ar *Arena) OverlapCount(p combat.Vec2) int {
	n := 0
	for _, it := range ar.items {
		if pos, ok := it.(interface{ Position() combat.Vec2 }); ok && pos.Position().Dist(p) <= pickupAreaRadius {
			n++
		}
	}
	return n
}

// --- Attacher ---

func (ar *Arena) Attach(id string, socket combat.Socket) { ar.sockets[id] = socket }
func (ar *Arena) Detach(id string)                       { delete(ar.sockets, id) }

// SocketOf returns where id is attached.
func (ar *Arena) SocketOf(id string) (combat.Socket, bool) {
	s, ok := ar.sockets[id]
	return s, ok
}

// PlaceInWorld puts item on the ground at p. Falling items settle into
// pickups after a short delay.
func (ar *Arena) PlaceInWorld(item combat.Item, p combat.Vec2) {
	if pos, ok := item.(interface{ SetPosition(combat.Vec2) }); ok {
		pos.SetPosition(p)
	}
	ar.RemoveFromWorld(item)
	ar.items = append(ar.items, item)
	if item.ItemState() == combat.ItemFalling {
		ar.falling[item] = settleTime
	}
}

// RemoveFromWorld takes item off the ground. Unknown items are ignored.
func (ar *Arena) RemoveFromWorld(item combat.Item) {
	delete(ar.falling, item)
	for i, it := range ar.items {
		if it == item {
			ar.items = append(ar.items[:i], ar.items[i+1:]...)
			return
		}
	}
}

// Step settles falling items.
func (ar *Arena) Step(d time.Duration) {
	for it, left := range ar.falling {
		left -= d
		if left > 0 {
			ar.falling[it] = left
			continue
		}
		delete(ar.falling, it)
		it.SetItemState(combat.ItemPickup)
	}
}

// RecordHit credits a beam hit to the obstacle it struck.
func (ar *Arena) RecordHit(a combat.Actor) {
	if o, ok := a.(*Obstacle); ok {
		o.Hits++
	}
}
