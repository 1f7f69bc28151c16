// Package grid answers bounds and occupancy queries over agent bodies
// Occupancy is always derived from bodies; nothing here outlives a tick
package grid

import "github.com/lixenwraith/snakearena/core"

// Body is the read-only view of one agent the occupancy model is built from
type Body struct {
	ID        int
	Alive     bool
	Cells     []core.Point // Head first
	Direction core.Direction
}

// Head returns the first body cell, ok=false for an empty body
func (b Body) Head() (core.Point, bool) {
	if len(b.Cells) == 0 {
		return core.Point{}, false
	}
	return b.Cells[0], true
}

// Occupancy is the query surface used by movement resolution and search
type Occupancy interface {
	Size() int
	InBounds(p core.Point) bool
	// Occupied reports whether any living body covers p
	Occupied(p core.Point) bool
	// OccupiedByOther reports whether a living body other than id covers p
	OccupiedByOther(id int, p core.Point) bool
}

// InBounds reports whether p lies in [0,size) on both axes
func InBounds(size int, p core.Point) bool {
	return p.X >= 0 && p.X < size && p.Y >= 0 && p.Y < size
}

// Snapshot is an immutable occupancy view over a set of bodies
// Cell ownership is indexed once at construction
type Snapshot struct {
	size   int
	bodies []Body
	cells  map[core.Point][]int // cell -> owning living body ids
}

// NewSnapshot indexes the given bodies, cell slices are copied
func NewSnapshot(size int, bodies []Body) *Snapshot {
	s := &Snapshot{
		size:   size,
		bodies: make([]Body, len(bodies)),
		cells:  make(map[core.Point][]int),
	}
	for i, b := range bodies {
		cells := make([]core.Point, len(b.Cells))
		copy(cells, b.Cells)
		b.Cells = cells
		s.bodies[i] = b
		if !b.Alive {
			continue
		}
		for _, c := range cells {
			owners := s.cells[c]
			if len(owners) > 0 && owners[len(owners)-1] == b.ID {
				continue
			}
			s.cells[c] = append(owners, b.ID)
		}
	}
	return s
}

func (s *Snapshot) Size() int {
	return s.size
}

func (s *Snapshot) InBounds(p core.Point) bool {
	return InBounds(s.size, p)
}

func (s *Snapshot) Occupied(p core.Point) bool {
	return len(s.cells[p]) > 0
}

func (s *Snapshot) OccupiedByOther(id int, p core.Point) bool {
	for _, owner := range s.cells[p] {
		if owner != id {
			return true
		}
	}
	return false
}

// Bodies returns all bodies in construction order, dead ones included
func (s *Snapshot) Bodies() []Body {
	return s.bodies
}

// Others returns living bodies except id
func (s *Snapshot) Others(id int) []Body {
	out := make([]Body, 0, len(s.bodies))
	for _, b := range s.bodies {
		if b.ID != id && b.Alive {
			out = append(out, b)
		}
	}
	return out
}
