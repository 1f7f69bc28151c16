package ai

import (
	"math"

	"github.com/lixenwraith/snakearena/core"
	"github.com/lixenwraith/snakearena/grid"
	"github.com/lixenwraith/snakearena/parameter"
	"github.com/lixenwraith/snakearena/pickup"
)

// Candidate is one evaluated move
type Candidate struct {
	Direction core.Direction
	Cell      core.Point
	Risk      int
	Space     int
	Score     float64
}

// candidates lists non-reversing moves that do not hit a wall or the own body
// Moves into other bodies stay and carry maximum risk
func candidates(self grid.Body, snap *grid.Snapshot) []Candidate {
	head, ok := self.Head()
	if !ok {
		return nil
	}
	out := make([]Candidate, 0, len(core.Directions))
	for _, d := range core.Directions {
		if d.IsReverseOf(self.Direction) {
			continue
		}
		cell := head.Add(d)
		if grid.Classify(self, cell, snap).Blocking() {
			continue
		}
		out = append(out, Candidate{
			Direction: d,
			Cell:      cell,
			Risk:      collisionRisk(self.ID, cell, snap),
		})
	}
	return out
}

// collisionRisk rates a cell 0..AIRiskCap from body proximity and projected heads
// Every living body counts, the own body included
func collisionRisk(id int, cell core.Point, snap *grid.Snapshot) int {
	risk := 0
	for _, b := range snap.Bodies() {
		if !b.Alive {
			continue
		}
		for _, seg := range b.Cells {
			if seg == cell {
				return parameter.AIRiskOverlap
			}
			if d := core.Manhattan(seg, cell); d <= parameter.AIRiskRadius {
				risk += parameter.AIRiskRadius + 1 - d
			}
		}
		if b.ID == id {
			continue
		}
		if head, ok := b.Head(); ok && head.Add(b.Direction) == cell {
			risk += parameter.AIRiskHeadOn
		}
	}
	return min(risk, parameter.AIRiskCap)
}

// scoreInput is everything a candidate score depends on besides the cell
type scoreInput struct {
	id      int
	weights Weights
	forced  bool
	snap    *grid.Snapshot
	foods   []pickup.Pickup
	items   []pickup.Pickup
}

// score fills Score for c; Space must already be set
func score(c Candidate, in scoreInput) float64 {
	stag := 1.0
	riskWeight := parameter.AIRiskWeightCalm
	if in.forced {
		stag = parameter.AIStagnationMultiplier
		riskWeight = parameter.AIRiskWeightForce
	}
	w := in.weights

	space := float64(min(c.Space, parameter.AISpaceCap)) * parameter.AISpaceFactor * w.Space
	riskPenalty := float64(c.Risk) * riskWeight * w.Risk

	var item float64
	if p, d, ok := pickup.Nearest(c.Cell, in.items); ok {
		item = math.Max(0, itemPriority(p.Kind)*stag-float64(d)*parameter.AIItemDistanceFactor) * w.Item
	}

	var food float64
	if p, d, ok := pickup.Nearest(c.Cell, in.foods); ok {
		food = (math.Max(0, parameter.AIFoodBase*stag-float64(d)*parameter.AIFoodDistanceFactor) +
			float64(p.Value)*parameter.AIFoodValueFactor*stag) * w.Food
	}

	var attack float64
	if w.Attack > 0 {
		attack = attackScore(in.id, c.Cell, in.snap) * w.Attack
	}

	return space - riskPenalty + item + food + attack
}

func itemPriority(k pickup.Kind) float64 {
	switch k {
	case pickup.Revive:
		return parameter.AIItemPriorityRevive
	case pickup.Penetrate:
		return parameter.AIItemPriorityPenetrate
	}
	return parameter.AIItemPriorityDefault
}

// attackScore rewards cells close to other agents' heads
func attackScore(id int, cell core.Point, snap *grid.Snapshot) float64 {
	total := 0.0
	for _, b := range snap.Others(id) {
		head, ok := b.Head()
		if !ok || !b.Alive {
			continue
		}
		if d := core.Manhattan(head, cell); d <= parameter.AIAttackRadius {
			total += float64(parameter.AIAttackRadius+1-d) * parameter.AIAttackFactor
		}
	}
	return total
}

// awayFromBody picks the candidate whose cell is farthest from any own body cell
func awayFromBody(cands []Candidate, body []core.Point) Candidate {
	best := cands[0]
	bestDist := -1
	for _, c := range cands {
		minDist := math.MaxInt
		for _, seg := range body {
			minDist = min(minDist, core.Manhattan(seg, c.Cell))
		}
		if minDist > bestDist {
			bestDist = minDist
			best = c
		}
	}
	return best
}

// closestTo picks the candidate with the smallest Manhattan distance to target
func closestTo(cands []Candidate, target core.Point) (Candidate, int) {
	best := cands[0]
	bestDist := math.MaxInt
	for _, c := range cands {
		if d := core.Manhattan(c.Cell, target); d < bestDist {
			bestDist = d
			best = c
		}
	}
	return best, bestDist
}
