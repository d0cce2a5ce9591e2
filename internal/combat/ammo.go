package combat

import "fmt"

// AmmoType is the ammunition class a weapon consumes.
type AmmoType int

const (
	AmmoPistol       AmmoType = iota // 9mm
	AmmoAssaultRifle                 // 5.56
	ammoTypeCount
)

func (t AmmoType) String() string {
	switch t {
	case AmmoPistol:
		return "9mm"
	case AmmoAssaultRifle:
		return "ar"
	default:
		return "unknown"
	}
}

// AmmoTypes lists every ammunition class in declaration order.
func AmmoTypes() []AmmoType {
	out := make([]AmmoType, 0, ammoTypeCount)
	for t := AmmoType(0); t < ammoTypeCount; t++ {
		out = append(out, t)
	}
	return out
}

// AmmoMap is the avatar's reserve ammunition per class. Counts never go negative.
type AmmoMap map[AmmoType]int

// NewAmmoMap returns a map with every known class present.
func NewAmmoMap(start map[AmmoType]int) AmmoMap {
	m := make(AmmoMap, ammoTypeCount)
	for _, t := range AmmoTypes() {
		m[t] = 0
	}
	for t, n := range start {
		m.Add(t, n)
	}
	return m
}

// Count returns the reserve for t.
func (m AmmoMap) Count(t AmmoType) int {
	return m[t]
}

// Add increases the reserve for t. Negative amounts panic; use Take.
func (m AmmoMap) Add(t AmmoType, n int) {
	if n < 0 {
		panic(fmt.Sprintf("combat: AmmoMap.Add negative amount %d for %s", n, t))
	}
	m[t] += n
}

// Take removes up to n rounds of t and returns how many were removed.
func (m AmmoMap) Take(t AmmoType, n int) int {
	if n <= 0 {
		return 0
	}
	have := m[t]
	if n > have {
		n = have
	}
	m[t] = have - n
	return n
}
