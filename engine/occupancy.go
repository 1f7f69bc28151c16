package engine

import (
	"github.com/lixenwraith/snakearena/agent"
	"github.com/lixenwraith/snakearena/core"
	"github.com/lixenwraith/snakearena/grid"
)

// liveOccupancy answers occupancy against current agent bodies
// Movement resolution uses it so each advance sees the moves already applied this tick
type liveOccupancy struct {
	size   int
	agents []*agent.Agent
}

func (o liveOccupancy) Size() int {
	return o.size
}

func (o liveOccupancy) InBounds(p core.Point) bool {
	return grid.InBounds(o.size, p)
}

func (o liveOccupancy) Occupied(p core.Point) bool {
	return o.OccupiedByOther(0, p)
}

func (o liveOccupancy) OccupiedByOther(id int, p core.Point) bool {
	for _, a := range o.agents {
		if !a.Alive || a.ID == id {
			continue
		}
		for _, c := range a.Body {
			if c == p {
				return true
			}
		}
	}
	return false
}
