package grid

import "github.com/lixenwraith/snakearena/core"

// Collision is the classification of a proposed head cell
type Collision uint8

const (
	Free Collision = iota
	Wall
	SelfBody
	OtherBody
)

func (c Collision) String() string {
	switch c {
	case Free:
		return "free"
	case Wall:
		return "wall"
	case SelfBody:
		return "self"
	case OtherBody:
		return "other"
	}
	return "unknown"
}

// Classify resolves a candidate head cell for body against occ
// Own tail is excluded since it vacates this tick; any own cell outside bounds
// (left behind by a resize) classifies as Wall
func Classify(body Body, candidate core.Point, occ Occupancy) Collision {
	if !occ.InBounds(candidate) {
		return Wall
	}
	for _, c := range body.Cells {
		if !occ.InBounds(c) {
			return Wall
		}
	}
	for i := 0; i < len(body.Cells)-1; i++ {
		if body.Cells[i] == candidate {
			return SelfBody
		}
	}
	if occ.OccupiedByOther(body.ID, candidate) {
		return OtherBody
	}
	return Free
}

// Blocking reports whether the classification excludes a decision candidate
// OtherBody stays a candidate and is penalized by risk instead
func (c Collision) Blocking() bool {
	return c == Wall || c == SelfBody
}
