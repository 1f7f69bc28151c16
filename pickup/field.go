// Package pickup tracks the bounded set of timed food and item pickups
package pickup

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/snakearena/core"
	"github.com/lixenwraith/snakearena/parameter"
)

// Kind identifies what a pickup grants
type Kind uint8

const (
	Food Kind = iota
	Revive
	Penetrate
)

func (k Kind) String() string {
	switch k {
	case Food:
		return "food"
	case Revive:
		return "revive"
	case Penetrate:
		return "penetrate"
	}
	return "unknown"
}

// IsItem reports whether the kind is a special item rather than food
func (k Kind) IsItem() bool {
	return k == Revive || k == Penetrate
}

// Pickup is one field object
type Pickup struct {
	Pos       core.Point
	Kind      Kind
	Value     int // Food value 1..6, zero for items
	SpawnedAt time.Time
}

// Field holds food and items with independent spawn times and a shared fixed lifetime
// Written by the orchestrator between ticks, read by every decision in a tick
type Field struct {
	size     int
	lifetime time.Duration
	maxFoods int
	foods    []Pickup
	items    []Pickup
}

// NewField creates an empty field for a size x size grid
func NewField(size int) *Field {
	return &Field{
		size:     size,
		lifetime: parameter.PickupLifetime,
		maxFoods: parameter.MaxFoods,
	}
}

// Foods returns current food pickups, the slice must not be modified
func (f *Field) Foods() []Pickup {
	return f.foods
}

// Items returns current revive and penetrate pickups, the slice must not be modified
func (f *Field) Items() []Pickup {
	return f.items
}

// Count returns total food and item count
func (f *Field) Count() int {
	return len(f.foods) + len(f.items)
}

// Has reports whether a pickup of kind is at pos
func (f *Field) Has(pos core.Point, kind Kind) bool {
	list := f.foods
	if kind.IsItem() {
		list = f.items
	}
	for _, p := range list {
		if p.Pos == pos && p.Kind == kind {
			return true
		}
	}
	return false
}

// At reports whether any pickup occupies pos
func (f *Field) At(pos core.Point) bool {
	for _, p := range f.foods {
		if p.Pos == pos {
			return true
		}
	}
	for _, p := range f.items {
		if p.Pos == pos {
			return true
		}
	}
	return false
}

// Update expires pickups whose age reached the lifetime
// Returns the number of removed pickups
func (f *Field) Update(now time.Time) int {
	before := f.Count()
	f.foods = f.expire(f.foods, now)
	f.items = f.expire(f.items, now)
	return before - f.Count()
}

func (f *Field) expire(list []Pickup, now time.Time) []Pickup {
	kept := list[:0]
	for _, p := range list {
		if now.Sub(p.SpawnedAt) < f.lifetime {
			kept = append(kept, p)
		}
	}
	return kept
}

// Remaining returns the fraction of lifetime left for p in [0,1]
func (f *Field) Remaining(p Pickup, now time.Time) float64 {
	left := 1 - float64(now.Sub(p.SpawnedAt))/float64(f.lifetime)
	if left < 0 {
		return 0
	}
	if left > 1 {
		return 1
	}
	return left
}

// Consume removes the first pickup exactly at head and returns it
// Applying the effect is the caller's responsibility
func (f *Field) Consume(head core.Point) (Pickup, bool) {
	for i, p := range f.foods {
		if p.Pos == head {
			f.foods = append(f.foods[:i], f.foods[i+1:]...)
			return p, true
		}
	}
	for i, p := range f.items {
		if p.Pos == head {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return p, true
		}
	}
	return Pickup{}, false
}

// Occupied reports whether a cell is unavailable for spawning
type Occupied func(p core.Point) bool

// SpawnFood places a random-value food on a random free cell
// Returns false when the food cap is reached or no cell is free
func (f *Field) SpawnFood(now time.Time, rng *rand.Rand, occupied Occupied) (Pickup, bool) {
	if len(f.foods) >= f.maxFoods {
		return Pickup{}, false
	}
	pos, ok := f.freeCell(rng, occupied)
	if !ok {
		return Pickup{}, false
	}
	p := Pickup{
		Pos:       pos,
		Kind:      Food,
		Value:     parameter.FoodMinValue + rng.Intn(parameter.FoodMaxValue-parameter.FoodMinValue+1),
		SpawnedAt: now,
	}
	f.foods = append(f.foods, p)
	return p, true
}

// SpawnItem places a revive or penetrate item, at most one of each kind exists
func (f *Field) SpawnItem(kind Kind, now time.Time, rng *rand.Rand, occupied Occupied) (Pickup, bool) {
	if !kind.IsItem() {
		return Pickup{}, false
	}
	for _, it := range f.items {
		if it.Kind == kind {
			return Pickup{}, false
		}
	}
	pos, ok := f.freeCell(rng, occupied)
	if !ok {
		return Pickup{}, false
	}
	p := Pickup{Pos: pos, Kind: kind, SpawnedAt: now}
	f.items = append(f.items, p)
	return p, true
}

// Place inserts a pickup directly, enforcing caps; used for scripted setups
func (f *Field) Place(p Pickup) bool {
	if !p.Kind.IsItem() {
		if len(f.foods) >= f.maxFoods {
			return false
		}
		f.foods = append(f.foods, p)
		return true
	}
	for _, it := range f.items {
		if it.Kind == p.Kind {
			return false
		}
	}
	f.items = append(f.items, p)
	return true
}

// freeCell picks a uniformly random cell free of bodies and pickups
func (f *Field) freeCell(rng *rand.Rand, occupied Occupied) (core.Point, bool) {
	free := make([]core.Point, 0, f.size*f.size)
	for y := 0; y < f.size; y++ {
		for x := 0; x < f.size; x++ {
			p := core.Point{X: x, Y: y}
			if occupied(p) || f.At(p) {
				continue
			}
			free = append(free, p)
		}
	}
	if len(free) == 0 {
		return core.Point{}, false
	}
	return free[rng.Intn(len(free))], true
}

// Resize rescales pickup positions to a new grid size and clamps them in bounds
func (f *Field) Resize(newSize int) {
	if newSize <= 0 || newSize == f.size {
		f.size = newSize
		return
	}
	scale := float64(newSize) / float64(f.size)
	rescale := func(list []Pickup) {
		for i := range list {
			list[i].Pos = core.Point{
				X: core.Clamp(int(float64(list[i].Pos.X)*scale), 0, newSize-1),
				Y: core.Clamp(int(float64(list[i].Pos.Y)*scale), 0, newSize-1),
			}
		}
	}
	rescale(f.foods)
	rescale(f.items)
	f.size = newSize
}

// Reset clears all pickups and sets the grid size
func (f *Field) Reset(size int) {
	f.size = size
	f.foods = nil
	f.items = nil
}

// Nearest returns the pickup in list closest to p by Manhattan distance
// Ties keep the earliest entry
func Nearest(p core.Point, list []Pickup) (Pickup, int, bool) {
	if len(list) == 0 {
		return Pickup{}, 0, false
	}
	best := list[0]
	bestDist := core.Manhattan(p, best.Pos)
	for _, c := range list[1:] {
		if d := core.Manhattan(p, c.Pos); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, bestDist, true
}
