package engine

import (
	"time"

	"github.com/lixenwraith/snakearena/agent"
	"github.com/lixenwraith/snakearena/core"
	"github.com/lixenwraith/snakearena/parameter"
	"github.com/lixenwraith/snakearena/pickup"
)

// AgentState is a read-only copy of one agent for frontends
type AgentState struct {
	ID          int
	Kind        agent.Kind
	Autopilot   bool
	Phase       agent.State
	Body        []core.Point
	Direction   core.Direction
	Alive       bool
	Score       int
	Length      int
	Revives     int
	Penetrates  int
	Penetrating bool
	Blinking    bool
	Opacity     float64
	Strategy    string // Empty for seats not driven by the decision engine
}

// PickupState is a pickup with its remaining lifetime fraction
type PickupState struct {
	pickup.Pickup
	Remaining float64
}

// State is a consistent copy of the match taken under the game lock
type State struct {
	MatchID     string
	Tick        int64
	Elapsed     time.Duration
	GridSize    int
	SpeedLevel  int
	TickEvery   time.Duration
	NextShrink  time.Duration // Zero when shrinking is disabled or the arena is at minimum size
	Alive       int
	Total       int
	Over        bool
	WinnerID    int
	WinnerScore int
	Agents      []AgentState
	Pickups     []PickupState
}

// State returns a copy of the current match
func (g *Game) State() State {
	g.mu.RLock()
	defer g.mu.RUnlock()

	now := g.now()
	s := State{
		MatchID:     g.matchID,
		Tick:        g.tick,
		Elapsed:     g.elapsed,
		GridSize:    g.size,
		SpeedLevel:  g.speedLevel,
		TickEvery:   parameter.TickInterval(g.speedLevel),
		Total:       len(g.agents),
		Over:        g.over,
		WinnerID:    g.winnerID,
		WinnerScore: g.winnerScore,
		Agents:      make([]AgentState, 0, len(g.agents)),
	}
	if g.cfg.Shrink && g.size > parameter.MinGridSize {
		s.NextShrink = max(0, parameter.ShrinkInterval-(g.elapsed-g.lastShrink))
	}

	for _, a := range g.agents {
		if a.Alive {
			s.Alive++
		}
		body := make([]core.Point, len(a.Body))
		copy(body, a.Body)
		as := AgentState{
			ID:          a.ID,
			Kind:        a.Kind,
			Autopilot:   a.Autopilot,
			Phase:       a.State(),
			Body:        body,
			Direction:   a.Direction,
			Alive:       a.Alive,
			Score:       a.Score,
			Length:      a.Len(),
			Revives:     a.Revives,
			Penetrates:  a.Penetrates,
			Penetrating: a.Penetrating,
			Blinking:    a.Blinking,
			Opacity:     a.Opacity(now),
		}
		if c, ok := g.registry.Get(a.ID); ok && a.Controlled() {
			as.Strategy = c.Strategy().String()
		}
		s.Agents = append(s.Agents, as)
	}

	for _, list := range [][]pickup.Pickup{g.field.Foods(), g.field.Items()} {
		for _, p := range list {
			s.Pickups = append(s.Pickups, PickupState{Pickup: p, Remaining: g.field.Remaining(p, now)})
		}
	}
	return s
}
