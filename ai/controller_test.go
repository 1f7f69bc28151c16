package ai

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/snakearena/agent"
	"github.com/lixenwraith/snakearena/core"
	"github.com/lixenwraith/snakearena/grid"
	"github.com/lixenwraith/snakearena/pickup"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func pt(x, y int) core.Point { return core.Point{X: x, Y: y} }

func snapshotOf(size int, agents ...*agent.Agent) *grid.Snapshot {
	bodies := make([]grid.Body, 0, len(agents))
	for _, a := range agents {
		bodies = append(bodies, a.GridBody())
	}
	return grid.NewSnapshot(size, bodies)
}

func place(t *testing.T, f *pickup.Field, p pickup.Pickup) {
	t.Helper()
	if p.SpawnedAt.IsZero() {
		p.SpawnedAt = epoch
	}
	require.True(t, f.Place(p))
}

func TestDecide_HeadsForFood(t *testing.T) {
	a := agent.New(1, agent.Autonomous, 10, pt(5, 5), core.Right)
	f := pickup.NewField(10)
	place(t, f, pickup.Pickup{Pos: pt(8, 5), Kind: pickup.Food, Value: 3})

	c := NewController(a, rand.New(rand.NewSource(7)), epoch)
	now := epoch
	for i := 0; i < 3; i++ {
		snap := snapshotOf(10, a)
		d := c.Decide(a, World{Snapshot: snap, Pickups: f, Now: now})
		require.Equal(t, core.Right, d, "tick %d", i)
		require.Equal(t, agent.Moved, a.Advance(d, snap, now).Outcome)
		now = now.Add(100 * time.Millisecond)
	}

	head, _ := a.Head()
	assert.Equal(t, pt(8, 5), head)
	p, ok := f.Consume(head)
	require.True(t, ok)
	a.Grow(p.Value)
	assert.Equal(t, 3, a.Score)

	for i := 0; i < 3; i++ {
		require.Equal(t, agent.Moved, a.Advance(core.Down, snapshotOf(10, a), now).Outcome)
	}
	assert.Equal(t, 6, a.Len())
}

func TestDecide_NoCandidateFallsBack(t *testing.T) {
	a := agent.New(1, agent.Autonomous, 10, pt(0, 0), core.Left)
	a.Body = []core.Point{pt(0, 0), pt(0, 1), pt(1, 1), pt(1, 2)}

	c := NewController(a, rand.New(rand.NewSource(1)), epoch)
	d := c.Decide(a, World{Snapshot: snapshotOf(10, a), Pickups: pickup.NewField(10), Now: epoch})
	assert.Equal(t, core.Up, d, "first non-reversing direction")
	assert.False(t, d.IsReverseOf(a.Direction))
}

func TestDecide_NeverReverses(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for _, dir := range core.Directions {
		a := agent.New(1, agent.Autonomous, 12, pt(6, 6), dir)
		other := agent.New(2, agent.Autonomous, 12, pt(2, 2), core.Right)
		f := pickup.NewField(12)
		place(t, f, pickup.Pickup{Pos: pt(6-dir.X*3, 6-dir.Y*3), Kind: pickup.Food, Value: 6})

		c := NewController(a, rng, epoch)
		d := c.Decide(a, World{Snapshot: snapshotOf(12, a, other), Pickups: f, Now: epoch})
		assert.False(t, d.IsReverseOf(dir), "heading %s chose %s", dir, d)
	}
}

func TestDecide_ForcedPrefersItemOverFood(t *testing.T) {
	a := agent.New(1, agent.Autonomous, 20, pt(5, 5), core.Right)
	f := pickup.NewField(20)
	place(t, f, pickup.Pickup{Pos: pt(5, 1), Kind: pickup.Revive})
	place(t, f, pickup.Pickup{Pos: pt(9, 5), Kind: pickup.Food, Value: 1})

	c := NewController(a, rand.New(rand.NewSource(3)), epoch)
	c.steps = c.threshold - 1

	w := World{Snapshot: snapshotOf(20, a), Pickups: f, Now: epoch}
	assert.Equal(t, core.Up, c.Decide(a, w))
	require.True(t, c.hasTarget)
	assert.Equal(t, pickup.Revive, c.target.Kind)

	// Target vanished: the next forced decision retargets the food
	_, ok := f.Consume(pt(5, 1))
	require.True(t, ok)
	assert.Equal(t, core.Right, c.Decide(a, w))
	assert.Equal(t, pickup.Food, c.target.Kind)
}

func TestDecide_GainResetsStagnation(t *testing.T) {
	a := agent.New(1, agent.Autonomous, 20, pt(5, 5), core.Right)
	f := pickup.NewField(20)
	c := NewController(a, rand.New(rand.NewSource(5)), epoch)
	c.steps = 5
	c.history.push(pt(1, 1))

	a.Grow(2)
	c.Decide(a, World{Snapshot: snapshotOf(20, a), Pickups: f, Now: epoch})
	assert.Equal(t, 1, c.steps, "reset then counted for this tick")
	assert.Equal(t, 2, c.lastScore)

	a.Penetrates = 1
	c.Decide(a, World{Snapshot: snapshotOf(20, a), Pickups: f, Now: epoch})
	assert.Equal(t, 1, c.steps)
	assert.Equal(t, 1, c.lastCharges)
}

func TestDecide_ShortBodyAvoidsSurvival(t *testing.T) {
	a := agent.New(1, agent.Autonomous, 20, pt(5, 5), core.Right)
	c := NewController(a, rand.New(rand.NewSource(9)), epoch)
	c.SetStrategy(Survival, epoch)

	c.Decide(a, World{Snapshot: snapshotOf(20, a), Pickups: pickup.NewField(20), Now: epoch})
	assert.NotEqual(t, Survival, c.Strategy())
	sticky := c.Strategy()

	c.Decide(a, World{Snapshot: snapshotOf(20, a), Pickups: pickup.NewField(20), Now: epoch.Add(time.Second)})
	assert.Equal(t, sticky, c.Strategy(), "fallback sticks until the next resample")
}

func TestDecide_StrategyResampledOnGameTime(t *testing.T) {
	a := agent.New(1, agent.Autonomous, 20, pt(5, 5), core.Right)
	c := NewController(a, rand.New(rand.NewSource(9)), epoch)
	c.SetStrategy(Length, epoch)

	c.Decide(a, World{Snapshot: snapshotOf(20, a), Pickups: pickup.NewField(20), Now: epoch.Add(4 * time.Second)})
	assert.Equal(t, epoch, c.lastSwitch)

	c.Decide(a, World{Snapshot: snapshotOf(20, a), Pickups: pickup.NewField(20), Now: epoch.Add(5 * time.Second)})
	assert.Equal(t, epoch.Add(5*time.Second), c.lastSwitch)
}

func TestScore_ForcedNotBelowCalm(t *testing.T) {
	a := agent.New(1, agent.Autonomous, 15, pt(7, 7), core.Right)
	other := agent.New(2, agent.Autonomous, 15, pt(9, 9), core.Left)
	f := pickup.NewField(15)
	place(t, f, pickup.Pickup{Pos: pt(12, 7), Kind: pickup.Food, Value: 4})
	place(t, f, pickup.Pickup{Pos: pt(7, 2), Kind: pickup.Penetrate})

	snap := snapshotOf(15, a, other)
	cands := candidates(a.GridBody(), snap)
	require.NotEmpty(t, cands)

	for _, s := range []Strategy{Survival, Length, Aggressive, ItemHunt} {
		for _, cand := range cands {
			cand.Space = 20
			in := scoreInput{id: a.ID, weights: WeightsFor(s), snap: snap, foods: f.Foods(), items: f.Items()}
			calm := score(cand, in)
			in.forced = true
			forced := score(cand, in)
			assert.GreaterOrEqual(t, forced, calm, "%s %s", s, cand.Direction)
		}
	}
}

func TestCollisionRisk(t *testing.T) {
	a := agent.New(1, agent.Autonomous, 20, pt(5, 5), core.Right)
	b := agent.New(2, agent.Autonomous, 20, pt(10, 5), core.Left)
	snap := snapshotOf(20, a, b)

	assert.Equal(t, 10, collisionRisk(1, pt(11, 5), snap), "overlap")
	assert.Equal(t, 0, collisionRisk(1, pt(15, 15), snap))
	// (9,5): b's head 1 away, b's second cell 2 away, b's projected head
	assert.Equal(t, 8, collisionRisk(1, pt(9, 5), snap))
	assert.Equal(t, 0, collisionRisk(1, pt(7, 8), snap))
	assert.Equal(t, 3, collisionRisk(1, pt(5, 4), snap), "own body counts")
}

func TestCandidates_ExcludeWallAndSelf(t *testing.T) {
	a := agent.New(1, agent.Autonomous, 10, pt(0, 5), core.Left)
	cands := candidates(a.GridBody(), snapshotOf(10, a))
	dirs := make([]core.Direction, 0, len(cands))
	for _, c := range cands {
		dirs = append(dirs, c.Direction)
	}
	assert.Equal(t, []core.Direction{core.Up, core.Down}, dirs)

	b := agent.New(2, agent.Autonomous, 10, pt(0, 4), core.Right)
	cands = candidates(a.GridBody(), snapshotOf(10, a, b))
	require.Len(t, cands, 2, "other bodies stay candidates")
	assert.Equal(t, 10, cands[0].Risk)
}

func TestHistory(t *testing.T) {
	var h history
	assert.False(t, h.looping())

	for _, p := range []core.Point{pt(0, 0), pt(1, 0), pt(2, 0), pt(1, 0), pt(2, 0)} {
		h.push(p)
	}
	assert.True(t, h.looping(), "A-B-A-B window")

	h.push(pt(3, 0))
	assert.False(t, h.looping())
	assert.Equal(t, pt(0, 0), h.at(0))

	h.push(pt(4, 0))
	assert.Equal(t, pt(1, 0), h.at(0), "oldest evicted at capacity")

	h.clear()
	assert.False(t, h.looping())
}

func TestHistory_TailChasing(t *testing.T) {
	body := []core.Point{pt(5, 5), pt(5, 6), pt(6, 6), pt(6, 5)}
	var h history
	for _, p := range []core.Point{pt(4, 5), pt(4, 6), pt(5, 7), pt(6, 7), pt(7, 6), pt(7, 5)} {
		h.push(p)
	}
	assert.True(t, h.tailChasing(body, 2))
	assert.False(t, h.tailChasing(body, 3), "too many candidates")

	h.push(pt(15, 15))
	assert.False(t, h.tailChasing(body, 2))
}

func TestAwayFromBody(t *testing.T) {
	body := []core.Point{pt(5, 5), pt(5, 6), pt(6, 6)}
	cands := []Candidate{
		{Direction: core.Down, Cell: pt(5, 7)},
		{Direction: core.Up, Cell: pt(5, 3)},
	}
	assert.Equal(t, core.Up, awayFromBody(cands, body).Direction)
}

func TestRegistry_DecideAll(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	ai1 := agent.New(1, agent.Autonomous, 20, pt(3, 3), core.Right)
	human := agent.New(2, agent.Human, 20, pt(16, 16), core.Left)
	dead := agent.New(3, agent.Autonomous, 20, pt(3, 16), core.Right)
	dead.Die()

	r := NewRegistry()
	for _, a := range []*agent.Agent{ai1, human, dead} {
		r.Add(NewController(a, rng, epoch))
	}
	for _, id := range []int{1, 2, 3} {
		_, ok := r.Get(id)
		assert.True(t, ok, "controller for seat %d", id)
	}

	agents := []*agent.Agent{ai1, human, dead}
	w := World{Snapshot: snapshotOf(20, agents...), Pickups: pickup.NewField(20), Now: epoch}

	out := r.DecideAll(agents, w)
	assert.Len(t, out, 1)
	assert.Contains(t, out, 1)

	human.Autopilot = true
	out = r.DecideAll(agents, w)
	assert.Len(t, out, 2)

	r.Remove(1)
	_, ok := r.Get(1)
	assert.False(t, ok)
	r.Clear()
	_, ok = r.Get(2)
	assert.False(t, ok)
	assert.Empty(t, r.DecideAll(agents, w))
}

func TestDecide_ForcedFollowsPathAroundBody(t *testing.T) {
	a := agent.New(1, agent.Autonomous, 20, pt(5, 10), core.Right)
	wall := agent.New(2, agent.Autonomous, 20, pt(6, 9), core.Up)
	wall.Body = []core.Point{pt(6, 9), pt(6, 10), pt(6, 11)}
	f := pickup.NewField(20)
	place(t, f, pickup.Pickup{Pos: pt(8, 10), Kind: pickup.Food, Value: 2})

	c := NewController(a, rand.New(rand.NewSource(3)), epoch)
	c.steps = c.threshold - 1

	// Right is the nearest cell to the food but enters the wall
	d := c.Decide(a, World{Snapshot: snapshotOf(20, a, wall), Pickups: f, Now: epoch})
	assert.Equal(t, core.Up, d, "first step of the detour")
}

func TestDecide_ForcedPathCapFallsBackToNearest(t *testing.T) {
	a := agent.New(1, agent.Autonomous, 20, pt(5, 10), core.Right)
	wall := agent.New(2, agent.Autonomous, 20, pt(6, 1), core.Up)
	wall.Body = wall.Body[:0]
	for y := 1; y < 20; y++ {
		wall.Body = append(wall.Body, pt(6, y))
	}
	f := pickup.NewField(20)
	place(t, f, pickup.Pickup{Pos: pt(8, 10), Kind: pickup.Food, Value: 2})

	c := NewController(a, rand.New(rand.NewSource(3)), epoch)
	c.steps = c.threshold - 1

	// The only way round is through (6,0), beyond the expansion cap
	d := c.Decide(a, World{Snapshot: snapshotOf(20, a, wall), Pickups: f, Now: epoch})
	assert.Equal(t, core.Right, d, "straight-line step toward the target")
	assert.True(t, c.hasTarget)
}

func TestDecide_TailChasingMovesAway(t *testing.T) {
	curled := func() *agent.Agent {
		a := agent.New(1, agent.Autonomous, 20, pt(5, 5), core.Up)
		a.Body = []core.Point{pt(5, 5), pt(5, 6), pt(6, 6), pt(6, 5), pt(6, 4)}
		return a
	}
	f := pickup.NewField(20)
	place(t, f, pickup.Pickup{Pos: pt(3, 5), Kind: pickup.Food, Value: 6})

	// Without history the food pulls left
	a := curled()
	calm := NewController(a, rand.New(rand.NewSource(4)), epoch)
	calm.SetStrategy(Length, epoch)
	assert.Equal(t, core.Left, calm.Decide(a, World{Snapshot: snapshotOf(20, a), Pickups: f, Now: epoch}))

	a = curled()
	c := NewController(a, rand.New(rand.NewSource(4)), epoch)
	c.SetStrategy(Length, epoch)
	for _, p := range []core.Point{pt(4, 6), pt(4, 7), pt(5, 7), pt(6, 7), pt(7, 6)} {
		c.history.push(p)
	}
	d := c.Decide(a, World{Snapshot: snapshotOf(20, a), Pickups: f, Now: epoch})
	assert.Equal(t, core.Up, d, "farthest from the own body")
	assert.Zero(t, c.history.n, "history cleared after breaking out")
}

func TestDecide_LoopTakesMostSpace(t *testing.T) {
	fresh := func() *agent.Agent {
		return agent.New(1, agent.Autonomous, 20, pt(2, 2), core.Up)
	}
	f := pickup.NewField(20)
	place(t, f, pickup.Pickup{Pos: pt(0, 2), Kind: pickup.Food, Value: 6})

	a := fresh()
	calm := NewController(a, rand.New(rand.NewSource(6)), epoch)
	calm.SetStrategy(Length, epoch)
	assert.Equal(t, core.Left, calm.Decide(a, World{Snapshot: snapshotOf(20, a), Pickups: f, Now: epoch}))

	a = fresh()
	c := NewController(a, rand.New(rand.NewSource(6)), epoch)
	c.SetStrategy(Length, epoch)
	// A-B-A with the current head completing A-B-A-B
	for _, p := range []core.Point{pt(2, 3), pt(2, 2), pt(2, 3)} {
		c.history.push(p)
	}
	d := c.Decide(a, World{Snapshot: snapshotOf(20, a), Pickups: f, Now: epoch})
	assert.Equal(t, core.Right, d, "away from the corner")
}

func TestDecide_HighRiskFallsBackToSafeSpace(t *testing.T) {
	a := agent.New(1, agent.Autonomous, 20, pt(5, 3), core.Right)
	rival := agent.New(2, agent.Autonomous, 20, pt(7, 3), core.Left)
	f := pickup.NewField(20)
	w := World{Snapshot: snapshotOf(20, a, rival), Pickups: f, Now: epoch}

	c := NewController(a, rand.New(rand.NewSource(8)), epoch)
	c.SetStrategy(Aggressive, epoch)

	// Attack pulls the top score into the head-on cell
	cands := candidates(a.GridBody(), w.Snapshot)
	c.evaluate(cands, a, w, false)
	top := cands[0]
	for _, cand := range cands[1:] {
		if cand.Score > top.Score {
			top = cand
		}
	}
	require.Equal(t, core.Right, top.Direction)
	require.Equal(t, 10, top.Risk)

	// Up and Down are both safe; Down has more room below the top edge
	assert.Equal(t, core.Down, c.Decide(a, w))
}
