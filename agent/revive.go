package agent

import (
	"math/rand"

	"github.com/lixenwraith/snakearena/core"
	"github.com/lixenwraith/snakearena/grid"
	"github.com/lixenwraith/snakearena/navigation"
	"github.com/lixenwraith/snakearena/parameter"
)

// Revive spends one revive charge and relocates to a random safe spawn
// No safe spawn ends the agent; the search is not retried
func (a *Agent) Revive(occ grid.Occupancy, rng *rand.Rand) bool {
	if !a.Alive || a.Revives <= 0 {
		return false
	}
	a.Revives--
	a.BlockedCount = 0
	a.awaitingRevive = false

	size := occ.Size()
	spawns := navigation.SafeSpawns(size, parameter.ReviveMargin, parameter.InitialBodyLength, parameter.ReviveClearAhead,
		func(p core.Point) bool { return occ.OccupiedByOther(a.ID, p) })
	if len(spawns) == 0 {
		a.Die()
		return false
	}

	sp := spawns[rng.Intn(len(spawns))]
	a.size = size
	a.Body = sp.Body(parameter.InitialBodyLength, size)
	a.Direction = sp.Direction
	a.Pending = sp.Direction
	a.Growth = 0
	return true
}

// Resize rescales body coordinates to a new grid size and clamps them into bounds
// Overlaps created by rounding are left for the next advance to resolve
func (a *Agent) Resize(newSize int) {
	if newSize <= 0 {
		return
	}
	if a.size > 0 && a.size != newSize {
		scale := float64(newSize) / float64(a.size)
		for i, c := range a.Body {
			a.Body[i] = core.Point{
				X: core.Clamp(int(float64(c.X)*scale), 0, newSize-1),
				Y: core.Clamp(int(float64(c.Y)*scale), 0, newSize-1),
			}
		}
	}
	a.size = newSize
}
