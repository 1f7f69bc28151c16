// Package agent implements the per-agent body state machine: movement, collision
// outcomes, bounce escalation, penetration and revive
package agent

import (
	"time"

	"github.com/lixenwraith/snakearena/core"
	"github.com/lixenwraith/snakearena/grid"
	"github.com/lixenwraith/snakearena/parameter"
)

// Kind is the controller of an agent
type Kind uint8

const (
	Human Kind = iota
	Autonomous
)

func (k Kind) String() string {
	if k == Human {
		return "human"
	}
	return "ai"
}

// State is the life-cycle state derived from agent fields
type State uint8

const (
	StateMoving State = iota
	StateBlocked
	StateAwaitingRevive
	StateDead
)

func (s State) String() string {
	switch s {
	case StateMoving:
		return "moving"
	case StateBlocked:
		return "blocked"
	case StateAwaitingRevive:
		return "awaiting_revive"
	case StateDead:
		return "dead"
	}
	return "unknown"
}

// Agent owns one body and its charges
// Mutated only by the orchestrator between ticks
type Agent struct {
	ID        int
	Kind      Kind
	Autopilot bool // Human seat currently driven by the decision engine

	Body      []core.Point // Head first
	Direction core.Direction
	Pending   core.Direction

	Alive  bool
	Score  int
	Growth int // Pending tail segments to keep

	Revives    int
	Penetrates int

	Penetrating    bool
	penetrateTicks int

	Blinking   bool
	blinkStart time.Time

	BlockedCount   int
	awaitingRevive bool

	size int
}

// New creates an agent at its seat with a fresh 3-cell body
func New(id int, kind Kind, size int, start core.Point, dir core.Direction) *Agent {
	a := &Agent{ID: id, Kind: kind}
	a.Reset(size, start, dir)
	return a
}

// Reset restores the start-of-match state at the given seat
func (a *Agent) Reset(size int, start core.Point, dir core.Direction) {
	a.size = size
	a.Body = freshBody(start, dir, size)
	a.Direction = dir
	a.Pending = dir
	a.Alive = true
	a.Score = 0
	a.Growth = 0
	a.Revives = 0
	a.Penetrates = 0
	a.Penetrating = false
	a.penetrateTicks = 0
	a.Blinking = false
	a.blinkStart = time.Time{}
	a.BlockedCount = 0
	a.awaitingRevive = false
	a.Autopilot = a.Kind == Autonomous
}

// freshBody lays InitialBodyLength cells behind head, clamped into the grid
func freshBody(head core.Point, dir core.Direction, size int) []core.Point {
	head = core.Point{X: core.Clamp(head.X, 0, size-1), Y: core.Clamp(head.Y, 0, size-1)}
	body := make([]core.Point, parameter.InitialBodyLength)
	for i := range body {
		body[i] = core.Point{
			X: core.Clamp(head.X-dir.X*i, 0, size-1),
			Y: core.Clamp(head.Y-dir.Y*i, 0, size-1),
		}
	}
	return body
}

// Head returns the head cell, ok=false for an empty body
func (a *Agent) Head() (core.Point, bool) {
	if len(a.Body) == 0 {
		return core.Point{}, false
	}
	return a.Body[0], true
}

// Len returns body length
func (a *Agent) Len() int {
	return len(a.Body)
}

// GridSize returns the grid side length the agent was last sized for
func (a *Agent) GridSize() int {
	return a.size
}

// Charges returns revive + penetrate counts, used for gain detection
func (a *Agent) Charges() int {
	return a.Revives + a.Penetrates
}

// Controlled reports whether the decision engine drives this agent
func (a *Agent) Controlled() bool {
	return a.Kind == Autonomous || a.Autopilot
}

// State derives the life-cycle state
func (a *Agent) State() State {
	switch {
	case !a.Alive:
		return StateDead
	case a.awaitingRevive:
		return StateAwaitingRevive
	case a.BlockedCount > 0:
		return StateBlocked
	}
	return StateMoving
}

// GridBody returns the occupancy view of this agent, sharing the body slice
func (a *Agent) GridBody() grid.Body {
	return grid.Body{ID: a.ID, Alive: a.Alive, Cells: a.Body, Direction: a.Direction}
}

// SetDirection stores the intent for the next advance
// The exact reverse of the current direction and non-unit vectors are rejected
func (a *Agent) SetDirection(d core.Direction) bool {
	if !d.IsUnit() || d.IsReverseOf(a.Direction) {
		return false
	}
	a.Pending = d
	return true
}

// Grow queues n tail segments and adds n to score
func (a *Agent) Grow(n int) {
	if n <= 0 {
		return
	}
	a.Growth += n
	a.Score += n
}

// Die clears the body and ends the agent
func (a *Agent) Die() {
	a.Alive = false
	a.Body = nil
	a.awaitingRevive = false
	a.Blinking = false
	a.Penetrating = false
}
