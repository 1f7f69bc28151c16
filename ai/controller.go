// Package ai picks a direction per tick for autonomous agents by scoring candidate
// moves against a shared start-of-tick snapshot
package ai

import (
	"math/rand"
	"sort"
	"time"

	"github.com/lixenwraith/snakearena/agent"
	"github.com/lixenwraith/snakearena/core"
	"github.com/lixenwraith/snakearena/grid"
	"github.com/lixenwraith/snakearena/navigation"
	"github.com/lixenwraith/snakearena/parameter"
	"github.com/lixenwraith/snakearena/pickup"
)

// Pickups is the read surface of the pickup field used for decisions
type Pickups interface {
	Foods() []pickup.Pickup
	Items() []pickup.Pickup
	Has(pos core.Point, kind pickup.Kind) bool
}

// World is the shared read-only input of one tick's decisions
type World struct {
	Snapshot *grid.Snapshot
	Pickups  Pickups
	Now      time.Time // Game time
}

// Controller is the decision context of one agent
// Not safe for concurrent use; the orchestrator calls it from the tick goroutine
type Controller struct {
	id       int
	rng      *rand.Rand
	searcher *navigation.Searcher

	strategy   Strategy
	lastSwitch time.Time

	steps     int
	threshold int
	target    pickup.Pickup
	hasTarget bool

	history     history
	lastScore   int
	lastCharges int
}

// NewController creates the decision context for a, sized for the agent's grid
func NewController(a *agent.Agent, rng *rand.Rand, now time.Time) *Controller {
	c := &Controller{
		id:          a.ID,
		rng:         rng,
		searcher:    navigation.NewSearcher(a.GridSize()),
		lastSwitch:  now,
		lastScore:   a.Score,
		lastCharges: a.Charges(),
	}
	c.strategy = randomStrategy(rng)
	c.threshold = c.randomThreshold()
	return c
}

// Strategy returns the current strategy tag
func (c *Controller) Strategy() Strategy {
	return c.strategy
}

// SetStrategy overrides the strategy and restarts the switch interval
func (c *Controller) SetStrategy(s Strategy, now time.Time) {
	c.strategy = s
	c.lastSwitch = now
}

func (c *Controller) randomThreshold() int {
	return parameter.AIStagnationMin + c.rng.Intn(parameter.AIStagnationMax-parameter.AIStagnationMin+1)
}

// maybeSwitch resamples the strategy once per interval of game time
func (c *Controller) maybeSwitch(now time.Time) {
	if now.Sub(c.lastSwitch) >= parameter.AIStrategySwitchInterval {
		c.strategy = randomStrategy(c.rng)
		c.lastSwitch = now
	}
}

// effectiveWeights replaces Survival with another strategy while the body is short
// The replacement sticks until the next resample
func (c *Controller) effectiveWeights(length int) Weights {
	if c.strategy == Survival && length <= parameter.AISurvivalMinLength {
		c.strategy = fallbackStrategy(c.rng)
	}
	return WeightsFor(c.strategy)
}

// checkGain resets stagnation tracking when score or charges grew since last seen
func (c *Controller) checkGain(a *agent.Agent) {
	gained := false
	if a.Score > c.lastScore {
		gained = true
	}
	if a.Charges() > c.lastCharges {
		gained = true
	}
	c.lastScore = a.Score
	c.lastCharges = a.Charges()

	if gained {
		c.steps = 0
		c.threshold = c.randomThreshold()
		c.hasTarget = false
		c.history.clear()
	}
}

// Decide returns the direction for a this tick
// A dead agent keeps its direction
func (c *Controller) Decide(a *agent.Agent, w World) core.Direction {
	head, ok := a.Head()
	if !a.Alive || !ok {
		return a.Direction
	}
	snap := w.Snapshot
	if c.searcher.Size() != snap.Size() {
		c.searcher.Resize(snap.Size())
	}

	c.maybeSwitch(w.Now)
	c.history.push(head)

	self := a.GridBody()
	cands := candidates(self, snap)
	if len(cands) == 0 {
		return anyMove(a.Direction)
	}

	c.checkGain(a)
	c.steps++
	forced := c.steps >= c.threshold
	looping := c.history.looping()

	if !forced && c.history.tailChasing(a.Body, len(cands)) {
		away := awayFromBody(cands, a.Body)
		c.history.clear()
		return away.Direction
	}

	if forced {
		if d, ok := c.forcedMove(a, head, cands, w); ok {
			return d
		}
	}

	c.evaluate(cands, a, w, forced)

	if looping && !forced {
		sort.SliceStable(cands, func(i, j int) bool { return cands[i].Space > cands[j].Space })
		if cands[0].Space > parameter.AILoopMinSpace {
			return cands[0].Direction
		}
	}

	sort.SliceStable(cands, func(i, j int) bool { return cands[i].Score > cands[j].Score })
	best := cands[0]

	if !forced && best.Risk >= parameter.AIHighRisk && len(cands) > 1 {
		safe := make([]Candidate, 0, len(cands))
		for _, cand := range cands {
			if cand.Risk < parameter.AISafeRisk {
				safe = append(safe, cand)
			}
		}
		if len(safe) > 0 {
			sort.SliceStable(safe, func(i, j int) bool { return safe[i].Space > safe[j].Space })
			return safe[0].Direction
		}
	}

	return best.Direction
}

// evaluate fills Space and Score of every candidate
func (c *Controller) evaluate(cands []Candidate, a *agent.Agent, w World, forced bool) {
	snap := w.Snapshot
	in := scoreInput{
		id:      a.ID,
		weights: c.effectiveWeights(a.Len()),
		forced:  forced,
		snap:    snap,
		foods:   w.Pickups.Foods(),
		items:   w.Pickups.Items(),
	}
	for i := range cands {
		cands[i].Space = c.searcher.ReachableCount(cands[i].Cell, parameter.NavSpaceDepth, snap.Occupied)
		cands[i].Score = score(cands[i], in)
	}
}

// forcedMove heads for the cached target, nearest item first, then nearest food
// A target that was consumed or expired is dropped and reselected
func (c *Controller) forcedMove(a *agent.Agent, head core.Point, cands []Candidate, w World) (core.Direction, bool) {
	if c.hasTarget && !w.Pickups.Has(c.target.Pos, c.target.Kind) {
		c.hasTarget = false
	}
	if !c.hasTarget {
		if p, _, ok := pickup.Nearest(head, w.Pickups.Items()); ok {
			c.target, c.hasTarget = p, true
		} else if p, _, ok := pickup.Nearest(head, w.Pickups.Foods()); ok {
			c.target, c.hasTarget = p, true
		}
	}
	if !c.hasTarget {
		return core.Direction{}, false
	}

	target := c.target.Pos
	best, dist := closestTo(cands, target)
	if dist <= 1 {
		return best.Direction, true
	}

	snap := w.Snapshot
	penetrating := a.Penetrates > 0
	// Own head is the search start and never tested
	blocked := func(p core.Point) bool {
		return !penetrating && snap.Occupied(p)
	}
	if path, ok := c.searcher.FindPath(head, target, parameter.NavPathMaxExpansions, blocked); ok && len(path) > 0 {
		for _, cand := range cands {
			if cand.Cell == path[0] {
				return cand.Direction, true
			}
		}
	}
	return best.Direction, true
}

// anyMove returns the first non-reversing direction in priority order
func anyMove(current core.Direction) core.Direction {
	for _, d := range core.Directions {
		if !d.IsReverseOf(current) {
			return d
		}
	}
	return current
}
