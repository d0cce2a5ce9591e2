package combat

import "fmt"

// WeaponInterpIndex is the hand/weapon destination. All other locations are
// generic item destinations.
const WeaponInterpIndex = 0

// InterpLocation is an anchor point in front of the avatar that pickups fly
// toward. ItemCount is the number of items currently heading there.
type InterpLocation struct {
	Name      string
	Offset    Vec2 // relative to the avatar, in the avatar's facing frame
	ItemCount int
}

// InterpLocations is the fixed set of pickup destinations.
type InterpLocations struct {
	locs []InterpLocation
}

// DefaultInterpLocations returns the weapon anchor plus six item anchors
// spread in an arc in front of the avatar.
func DefaultInterpLocations() *InterpLocations {
	locs := []InterpLocation{{Name: "weapon", Offset: Vec2{X: 40, Y: 0}}}
	for i := 0; i < 6; i++ {
		locs = append(locs, InterpLocation{
			Name:   fmt.Sprintf("item%d", i+1),
			Offset: Vec2{X: 34, Y: float64(i-3)*10 + 5},
		})
	}
	return &InterpLocations{locs: locs}
}

// NewInterpLocations builds a set from explicit anchors. Index 0 is the
// weapon destination.
func NewInterpLocations(locs ...InterpLocation) *InterpLocations {
	if len(locs) < 2 {
		panic("combat: need a weapon interp location and at least one item location")
	}
	cp := make([]InterpLocation, len(locs))
	copy(cp, locs)
	for i := range cp {
		if cp[i].ItemCount < 0 {
			cp[i].ItemCount = 0
		}
	}
	return &InterpLocations{locs: cp}
}

func (il *InterpLocations) mustIndex(index int) {
	if index < 0 || index >= len(il.locs) {
		panic(fmt.Sprintf("combat: interp location index %d out of range [0,%d)", index, len(il.locs)))
	}
}

// Len returns the number of locations including the weapon anchor.
func (il *InterpLocations) Len() int { return len(il.locs) }

// At returns a copy of location index.
func (il *InterpLocations) At(index int) InterpLocation {
	il.mustIndex(index)
	return il.locs[index]
}

// LeastLoaded returns the non-weapon location with the fewest items in
// flight, lowest index on ties.
func (il *InterpLocations) LeastLoaded() int {
	best := WeaponInterpIndex + 1
	for i := best + 1; i < len(il.locs); i++ {
		if il.locs[i].ItemCount < il.locs[best].ItemCount {
			best = i
		}
	}
	return best
}

// Increment adjusts the counter at index by amount. Negative amounts are
// arrivals or cancellations; the counter floors at zero.
func (il *InterpLocations) Increment(index, amount int) {
	il.mustIndex(index)
	n := il.locs[index].ItemCount + amount
	if n < 0 {
		n = 0
	}
	il.locs[index].ItemCount = n
}
