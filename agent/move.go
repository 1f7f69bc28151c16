package agent

import (
	"time"

	"github.com/lixenwraith/snakearena/core"
	"github.com/lixenwraith/snakearena/grid"
	"github.com/lixenwraith/snakearena/parameter"
)

// Outcome is the result class of one advance
type Outcome uint8

const (
	Idle Outcome = iota // Agent was not alive
	Moved
	Penetrated
	Blocked
	NeedRevive
	Died
)

func (o Outcome) String() string {
	switch o {
	case Idle:
		return "idle"
	case Moved:
		return "moved"
	case Penetrated:
		return "penetrated"
	case Blocked:
		return "blocked"
	case NeedRevive:
		return "need_revive"
	case Died:
		return "died"
	}
	return "unknown"
}

// Result describes one advance
type Result struct {
	Outcome   Outcome
	Collision grid.Collision // Classification of the proposed cell
	Head      core.Point     // Head after the advance
}

// Step advances using the pending direction
func (a *Agent) Step(occ grid.Occupancy, now time.Time) Result {
	return a.Advance(a.Pending, occ, now)
}

// Advance resolves one proposed direction into a movement outcome
// A reverse or non-unit direction keeps the current heading
func (a *Agent) Advance(dir core.Direction, occ grid.Occupancy, now time.Time) Result {
	head, ok := a.Head()
	if !a.Alive || !ok {
		return Result{Outcome: Idle}
	}
	a.awaitingRevive = false

	if !dir.IsUnit() || dir.IsReverseOf(a.Direction) {
		dir = a.Direction
	}
	a.Direction = dir
	a.Pending = dir

	candidate := head.Add(dir)
	collision := grid.Classify(a.GridBody(), candidate, occ)

	if collision == grid.Free {
		a.moveTo(candidate)
		return Result{Outcome: Moved, Collision: collision, Head: candidate}
	}

	if a.Penetrates > 0 && !a.Penetrating {
		a.Penetrates--
		a.Penetrating = true
		a.penetrateTicks = parameter.PenetrateBlinkTicks
		target := penetrateTarget(candidate, collision, occ.Size())
		a.moveTo(target)
		return Result{Outcome: Penetrated, Collision: collision, Head: target}
	}

	a.BlockedCount++
	if a.BlockedCount >= parameter.MaxBlockedCount {
		if a.Revives > 0 {
			a.awaitingRevive = true
			return Result{Outcome: NeedRevive, Collision: collision, Head: head}
		}
		a.Die()
		return Result{Outcome: Died, Collision: collision}
	}

	a.Grow(parameter.BounceGrowth)
	a.startBlink(now)
	return Result{Outcome: Blocked, Collision: collision, Head: head}
}

// moveTo pushes a new head and pops the tail unless growth is pending
func (a *Agent) moveTo(head core.Point) {
	a.Body = append(a.Body, core.Point{})
	copy(a.Body[1:], a.Body[:len(a.Body)-1])
	a.Body[0] = head
	if a.Growth > 0 {
		a.Growth--
	} else {
		a.Body = a.Body[:len(a.Body)-1]
	}
	a.BlockedCount = 0
}

// penetrateTarget wraps to the opposite edge on each out-of-bounds axis for walls
// Body collisions pass straight into the blocked cell
func penetrateTarget(candidate core.Point, collision grid.Collision, size int) core.Point {
	if collision != grid.Wall {
		return candidate
	}
	p := candidate
	if p.X < 0 {
		p.X = size - 1
	}
	if p.X >= size {
		p.X = 0
	}
	if p.Y < 0 {
		p.Y = size - 1
	}
	if p.Y >= size {
		p.Y = 0
	}
	return p
}
